//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/pkg/jobsapi"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - job board API
		provideJobsAPIConfig,
		jobsapi.NewClient,
		provideJobsProvider,

		// Infrastructure - optional integrations
		provideNeo4jClient,
		provideRedisClient,
		provideSheetsClient,

		// Repositories and credentials
		provideJobRepository,
		provideCredentialStore,
		provideCredentials,

		// Services
		job.NewServiceWithDeps,

		newResources,
	)

	return &Resources{}, nil
}
