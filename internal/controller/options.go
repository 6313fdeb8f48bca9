// Package controller orchestrates query sites: it decides which query is
// applied, issues fetches through a job.Source and publishes status and
// data through snapshots.
package controller

import (
	"time"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Option configures a controller
type Option func(*options)

type options struct {
	logger             *logging.Logger
	timeout            time.Duration
	clearSearchOnReset bool
}

func defaultOptions() *options {
	return &options{
		logger:  logging.NewNop(),
		timeout: 10 * time.Second,
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTimeout bounds each fetch. Expiry surfaces as a transport failure.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithClearSearchOnReset makes ResetFilters also clear the search term.
// Only List uses it.
func WithClearSearchOnReset(clear bool) Option {
	return func(o *options) {
		o.clearSearchOnReset = clear
	}
}
