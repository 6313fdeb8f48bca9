package controller

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobboard/internal/credential"
	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/query"
	"github.com/honeycarbs/jobboard/internal/fetch"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// DetailSnapshot is a consistent view of a Detail controller
type DetailSnapshot struct {
	JobID     string
	Status    fetch.Status
	Detail    domain.JobDetailResult
	HasDetail bool
	Seq       uint64
	Err       error
}

// Detail drives the single-job page: the job, its skills and similar jobs
type Detail struct {
	jobID   string
	desc    query.Descriptor
	source  job.Source
	creds   credential.Provider
	tracker *fetch.Tracker[domain.JobDetailResult]
	logger  *logging.Logger
}

func NewDetail(jobID string, source job.Source, creds credential.Provider, opts ...Option) (*Detail, error) {
	if jobID == "" {
		return nil, fmt.Errorf("controller.Detail: job id is required")
	}
	if source == nil {
		return nil, fmt.Errorf("controller.Detail: source is required")
	}
	if creds == nil {
		creds = credential.Static("")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger.Named("detail").With("job_id", jobID)
	return &Detail{
		jobID:   jobID,
		desc:    query.BuildDetail(jobID),
		source:  source,
		creds:   creds,
		tracker: fetch.NewTracker[domain.JobDetailResult](logger, o.timeout),
		logger:  logger,
	}, nil
}

// Initialize goes Idle and performs the first fetch
func (d *Detail) Initialize() *fetch.Handle {
	d.tracker.Reset()
	return d.issue("initialize")
}

// Retry refetches the job. It is safe in any state.
func (d *Detail) Retry() *fetch.Handle {
	return d.issue("retry")
}

func (d *Detail) Dispose() {
	d.tracker.Dispose()
}

func (d *Detail) JobID() string {
	return d.jobID
}

func (d *Detail) Snapshot() DetailSnapshot {
	st := d.tracker.State()
	return DetailSnapshot{
		JobID:     d.jobID,
		Status:    st.Status,
		Detail:    st.Data,
		HasDetail: st.HasData,
		Seq:       st.Seq,
		Err:       st.Err,
	}
}

func (d *Detail) issue(reason string) *fetch.Handle {
	h := d.tracker.Start(func(ctx context.Context) (domain.JobDetailResult, error) {
		token, _ := d.creds.Token(ctx)
		return d.source.JobDetail(ctx, d.desc, token)
	})
	d.logger.Debug("detail fetch issued", "seq", h.Seq(), "reason", reason)
	return h
}
