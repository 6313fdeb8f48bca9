package mcp

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/credential"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	jobsapiProvider "github.com/honeycarbs/jobboard/internal/domain/job/providers/jobsapi"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	storage "github.com/honeycarbs/jobboard/internal/storage/neo4j"
	"github.com/honeycarbs/jobboard/pkg/jobsapi"
	"github.com/honeycarbs/jobboard/pkg/logging"
	n4j "github.com/honeycarbs/jobboard/pkg/neo4j"
	sheetsclient "github.com/honeycarbs/jobboard/pkg/sheets"
)

// Resources holds everything the tools depend on. Optional integrations
// are nil when not configured.
type Resources struct {
	JobService      *job.Service
	Credentials     credential.Provider
	CredentialStore *credential.RedisStore
	SheetsClient    tools.SheetsClient

	neo4jClient *n4j.Client
	redisClient *redis.Client
}

// Close releases connections held by optional integrations
func (r *Resources) Close(ctx context.Context) error {
	var errs []error
	if r.neo4jClient != nil {
		errs = append(errs, r.neo4jClient.Close(ctx))
	}
	if r.redisClient != nil {
		errs = append(errs, r.redisClient.Close())
	}
	return errors.Join(errs...)
}

// credentialStore returns the logout target, or nil without Redis
func (r *Resources) credentialStore() tools.CredentialStore {
	if r.CredentialStore == nil {
		return nil
	}
	return r.CredentialStore
}

// provideJobsAPIConfig extracts job board API config from main config
func provideJobsAPIConfig(cfg config.Config) jobsapi.Config {
	return jobsapi.Config{
		BaseURL: cfg.JobsAPI.BaseURL,
		Timeout: cfg.JobsAPI.Timeout,
	}
}

// provideJobsProvider adapts the API client into a job.Source
func provideJobsProvider(client *jobsapi.Client) (job.Source, error) {
	return jobsapiProvider.NewProvider(client)
}

// provideNeo4jClient connects to Neo4j when configured
func provideNeo4jClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*n4j.Client, error) {
	if !cfg.Neo4jEnabled() {
		logger.Info("Neo4j not configured, browsed jobs are not recorded")
		return nil, nil
	}

	client, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Neo4j client initialized", "uri", cfg.Neo4j.URI)
	return client, nil
}

// provideJobRepository records into Neo4j, or nowhere without it
func provideJobRepository(client *n4j.Client) job.Repository {
	if client == nil {
		return job.NopRepository{}
	}
	return storage.NewJobRepository(client)
}

// provideRedisClient connects to Redis when configured
func provideRedisClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*redis.Client, error) {
	if cfg.Credential.RedisURL == "" {
		return nil, nil
	}

	client, err := credential.NewRedisClient(ctx, cfg.Credential.RedisURL)
	if err != nil {
		return nil, err
	}

	logger.Info("Redis credential store initialized", "key", cfg.Credential.Key)
	return client, nil
}

func provideCredentialStore(client *redis.Client, cfg config.Config, logger *logging.Logger) *credential.RedisStore {
	if client == nil {
		return nil
	}
	return credential.NewRedisStore(client, cfg.Credential.Key, logger.Named("credential"))
}

// provideCredentials prefers a static JWT_TOKEN over the Redis store
func provideCredentials(cfg config.Config, store *credential.RedisStore) credential.Provider {
	chain := credential.Chain{credential.Static(cfg.Credential.Token)}
	if store != nil {
		chain = append(chain, store)
	}
	return chain
}

// provideSheetsClient builds the exporter when credentials are configured
func provideSheetsClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (tools.SheetsClient, error) {
	sheetsCfg := sheetsclient.Config{CredentialsPath: cfg.SheetsCredentialsPath}
	if !sheetsCfg.Enabled() {
		return nil, nil
	}

	client, err := sheetsclient.NewClient(ctx, sheetsCfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Google Sheets client initialized")
	return newSheetsClientAdapter(client), nil
}

// newResources creates Resources struct
func newResources(
	jobService *job.Service,
	credentials credential.Provider,
	store *credential.RedisStore,
	sheets tools.SheetsClient,
	neo4jClient *n4j.Client,
	redisClient *redis.Client,
) *Resources {
	return &Resources{
		JobService:      jobService,
		Credentials:     credentials,
		CredentialStore: store,
		SheetsClient:    sheets,
		neo4jClient:     neo4jClient,
		redisClient:     redisClient,
	}
}
