package job

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/query"
)

// Source executes a request descriptor against a job board and returns
// normalized entities
type Source interface {
	// e.g. "jobsapi"
	Name() string

	// ListJobs executes a list descriptor
	ListJobs(ctx context.Context, desc query.Descriptor, token string) ([]domain.JobSummary, error)

	// JobDetail executes a detail descriptor
	JobDetail(ctx context.Context, desc query.Descriptor, token string) (domain.JobDetailResult, error)
}
