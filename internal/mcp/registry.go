package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

type ToolRegistry struct {
	logger *logging.Logger
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

// RegisterAll installs every browsing tool backed by sessions and res
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, sessions *Sessions, res *Resources) {
	tools.Register(server, r.logger,
		tools.WithListTools(sessions),
		tools.WithDetailTools(sessions),
		tools.WithSheetsExport(sessions, res.SheetsClient),
		tools.WithLogout(res.credentialStore(), res.Credentials),
	)
}
