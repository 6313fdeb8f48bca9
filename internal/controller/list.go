package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/honeycarbs/jobboard/internal/credential"
	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/filter"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/query"
	"github.com/honeycarbs/jobboard/internal/fetch"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// ListSnapshot is a consistent view of a List controller
type ListSnapshot struct {
	Status     fetch.Status
	Jobs       []domain.JobSummary // from the last successful fetch, kept across failures
	HasJobs    bool
	Applied    query.Applied // query of the latest issued fetch
	Staged     filter.Staged
	SearchTerm string // live, possibly not applied yet
	Seq        uint64
	Err        error
}

// List drives the searchable, filterable job list.
//
// Staged filter edits never affect results until ApplyFilters promotes
// them. Every fetch uses only the applied query and the latest issued
// fetch always wins.
type List struct {
	source  job.Source
	creds   credential.Provider
	staging *filter.Staging
	tracker *fetch.Tracker[[]domain.JobSummary]
	logger  *logging.Logger

	clearSearchOnReset bool

	mu      sync.Mutex
	term    string
	applied query.Applied
}

func NewList(source job.Source, creds credential.Provider, opts ...Option) (*List, error) {
	if source == nil {
		return nil, fmt.Errorf("controller.List: source is required")
	}
	if creds == nil {
		creds = credential.Static("")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger.Named("list")
	return &List{
		source:             source,
		creds:              creds,
		staging:            filter.NewStaging(),
		tracker:            fetch.NewTracker[[]domain.JobSummary](logger, o.timeout),
		logger:             logger,
		clearSearchOnReset: o.clearSearchOnReset,
	}, nil
}

// Initialize empties the applied query, goes Idle and performs the first
// fetch
func (l *List) Initialize() *fetch.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.term = ""
	l.tracker.Reset()
	return l.issue(query.Applied{}, "initialize")
}

// UpdateSearchTerm edits the live search term without fetching
func (l *List) UpdateSearchTerm(text string) {
	l.mu.Lock()
	l.term = text
	l.mu.Unlock()
}

// ToggleEmploymentType stages an employment type edit without fetching
func (l *List) ToggleEmploymentType(id string, included bool) {
	l.staging.ToggleEmploymentType(id, included)
}

// SetSalaryRange stages a salary range without fetching
func (l *List) SetSalaryRange(id string) {
	l.staging.SetSalaryRange(id)
}

// Search applies the live search term and keeps the applied filters.
// Staged filters are not promoted.
func (l *List) Search() *fetch.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.issue(l.applied.WithSearchTerm(l.term), "search")
}

// ApplyFilters promotes the staged filters together with the live term
func (l *List) ApplyFilters() *fetch.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	staged := l.staging.Snapshot()
	return l.issue(query.NewApplied(l.term, staged.EmploymentTypes, staged.Salary), "apply_filters")
}

// ResetFilters clears staged and applied filters. The search term is kept
// unless the controller was built WithClearSearchOnReset.
func (l *List) ResetFilters() *fetch.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.staging.Reset()
	if l.clearSearchOnReset {
		l.term = ""
	}
	return l.issue(query.NewApplied(l.term, nil, ""), "reset_filters")
}

// Retry re-issues the applied query unchanged. It is safe in any state.
func (l *List) Retry() *fetch.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.issue(l.applied, "retry")
}

// Dispose stops the controller. Pending and later fetches are ignored.
func (l *List) Dispose() {
	l.tracker.Dispose()
}

// Snapshot reads the applied query and tracker state under one lock, so
// Applied always belongs to Seq
func (l *List) Snapshot() ListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	st := l.tracker.State()
	return ListSnapshot{
		Status:     st.Status,
		Jobs:       st.Data,
		HasJobs:    st.HasData,
		Applied:    l.applied,
		Staged:     l.staging.Snapshot(),
		SearchTerm: l.term,
		Seq:        st.Seq,
		Err:        st.Err,
	}
}

// issue replaces the applied query and starts a fetch for it. Callers hold
// l.mu so applied order matches sequence order.
func (l *List) issue(next query.Applied, reason string) *fetch.Handle {
	if l.tracker.Disposed() {
		l.logger.Debug("list fetch ignored after dispose", "reason", reason)
		return l.tracker.Start(nil)
	}

	l.applied = next
	desc := next.Descriptor()

	h := l.tracker.Start(func(ctx context.Context) ([]domain.JobSummary, error) {
		token, _ := l.creds.Token(ctx)
		return l.source.ListJobs(ctx, desc, token)
	})
	l.logger.Debug("list fetch issued", "seq", h.Seq(), "reason", reason, "request", desc.Encode())
	return h
}
