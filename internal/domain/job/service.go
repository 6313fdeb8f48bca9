package job

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/query"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Option configures Service
type Option func(*config)

type config struct {
	source        Source
	repo          Repository
	logger        *logging.Logger
	recordTimeout time.Duration
}

// WithSource sets the job source
func WithSource(source Source) Option {
	return func(c *config) {
		c.source = source
	}
}

// WithRepository sets the repository
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// NewService builds a Source that records every successful result in a
// Repository. Recording failures are logged and never fail the fetch.
func NewService(opts ...Option) (*Service, error) {
	cfg := &config{
		repo:          NopRepository{},
		logger:        logging.NewNop(),
		recordTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.source == nil {
		return nil, fmt.Errorf("job.Service: source is required")
	}

	return &Service{
		source:        cfg.source,
		repo:          cfg.repo,
		logger:        cfg.logger.Named("job"),
		recordTimeout: cfg.recordTimeout,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(source Source, repo Repository, logger *logging.Logger) (*Service, error) {
	return NewService(WithSource(source), WithRepository(repo), WithLogger(logger))
}

type Service struct {
	source        Source
	repo          Repository
	logger        *logging.Logger
	recordTimeout time.Duration
}

var _ Source = (*Service)(nil)

func (s *Service) Name() string {
	return s.source.Name()
}

// ListJobs fetches from the source and records the result
func (s *Service) ListJobs(ctx context.Context, desc query.Descriptor, token string) ([]domain.JobSummary, error) {
	jobs, err := s.source.ListJobs(ctx, desc, token)
	if err != nil {
		return nil, err
	}

	if len(jobs) > 0 {
		rctx, cancel := s.recordContext(ctx)
		defer cancel()
		if err := s.repo.RecordListing(rctx, jobs); err != nil {
			s.logger.Warn("failed to record listing", "count", len(jobs), "err", err)
		}
	}

	return jobs, nil
}

// JobDetail fetches from the source and records the result
func (s *Service) JobDetail(ctx context.Context, desc query.Descriptor, token string) (domain.JobDetailResult, error) {
	detail, err := s.source.JobDetail(ctx, desc, token)
	if err != nil {
		return domain.JobDetailResult{}, err
	}

	rctx, cancel := s.recordContext(ctx)
	defer cancel()
	if err := s.repo.RecordDetail(rctx, detail); err != nil {
		s.logger.Warn("failed to record job detail", "job_id", detail.Job.ID, "err", err)
	}

	return detail, nil
}

// recordContext detaches recording from fetch cancellation so a superseded
// fetch still gets its result stored
func (s *Service) recordContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), s.recordTimeout)
}
