package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/credential"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// CredentialStore removes the stored bearer token
type CredentialStore interface {
	Clear(ctx context.Context) error
}

// LogoutResult reports the outcome of jobs_logout. StillAuthenticated is
// set when another credential, such as a configured JWT_TOKEN, keeps
// supplying a token after the store was cleared.
type LogoutResult struct {
	Cleared            bool   `json:"cleared"`
	StillAuthenticated bool   `json:"still_authenticated"`
	Message            string `json:"message"`
}

type logoutTool struct {
	store  CredentialStore
	creds  credential.Provider
	logger *logging.Logger
}

// WithLogout registers jobs_logout. With a nil store the tool reports that
// there is nothing to clear. creds is the provider fetches use and is asked
// afterwards whether a token is still in effect.
func WithLogout(store CredentialStore, creds credential.Provider) Option {
	return func(reg *registry) {
		t := logoutTool{store: store, creds: creds, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "jobs_logout",
			Description: "Remove the stored job board credential and report whether fetches still carry a token",
		}, t.handle)
	}
}

func (t logoutTool) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, _ OpenParams) (*sdkmcp.CallToolResult, any, error) {
	if t.store == nil {
		result := LogoutResult{StillAuthenticated: t.hasToken(ctx), Message: "no credential store configured"}
		return textResult("[jobs_logout] " + result.Message), result, nil
	}

	if err := t.store.Clear(ctx); err != nil {
		t.logger.Error("jobs_logout: failed to clear credential", "err", err)
		return nil, nil, fmt.Errorf("failed to clear credential: %w", err)
	}

	result := LogoutResult{Cleared: true, Message: "credential cleared, later fetches go out unauthenticated"}
	if t.hasToken(ctx) {
		result.StillAuthenticated = true
		result.Message = "stored credential cleared, a static JWT_TOKEN is still configured and stays in use"
	}

	t.logger.Info("credential cleared", "still_authenticated", result.StillAuthenticated)
	return textResult("[jobs_logout] " + result.Message), result, nil
}

func (t logoutTool) hasToken(ctx context.Context) bool {
	if t.creds == nil {
		return false
	}
	_, ok := t.creds.Token(ctx)
	return ok
}
