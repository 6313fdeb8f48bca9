package job

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Repository records what has been browsed
type Repository interface {
	// RecordListing upserts jobs seen in a list result
	RecordListing(ctx context.Context, jobs []domain.JobSummary) error

	// RecordDetail upserts a job with its skills and similar-job edges
	RecordDetail(ctx context.Context, detail domain.JobDetailResult) error
}

// NopRepository records nothing
type NopRepository struct{}

func (NopRepository) RecordListing(context.Context, []domain.JobSummary) error { return nil }

func (NopRepository) RecordDetail(context.Context, domain.JobDetailResult) error { return nil }
