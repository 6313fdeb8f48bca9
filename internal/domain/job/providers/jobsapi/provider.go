package jobsapi

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobboard/internal/domain"
	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/query"
	"github.com/honeycarbs/jobboard/pkg/jobsapi"
)

// executor describes the subset of the jobsapi client used by the provider.
type executor interface {
	Execute(ctx context.Context, path string, params []jobsapi.Param, token string, out any) error
}

// Provider implements job.Source on top of the job board API
type Provider struct {
	client executor
}

// NewProvider builds a jobsapi provider
func NewProvider(client executor) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("jobsapi provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "jobsapi"
}

// ListJobs executes a list descriptor and normalizes the payload
func (p *Provider) ListJobs(ctx context.Context, desc query.Descriptor, token string) ([]domain.JobSummary, error) {
	var resp jobsapi.ListResponse
	if err := p.client.Execute(ctx, desc.Path, desc.Params, token, &resp); err != nil {
		return nil, err
	}
	return NormalizeList(resp), nil
}

// JobDetail executes a detail descriptor and normalizes the payload
func (p *Provider) JobDetail(ctx context.Context, desc query.Descriptor, token string) (domain.JobDetailResult, error) {
	var resp jobsapi.DetailResponse
	if err := p.client.Execute(ctx, desc.Path, desc.Params, token, &resp); err != nil {
		return domain.JobDetailResult{}, err
	}
	return NormalizeDetail(resp), nil
}

var _ jobdomain.Source = (*Provider)(nil)
