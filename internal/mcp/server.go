package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/controller"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// StreamPath is where the streamable HTTP transport is mounted
const StreamPath = "/mcp/stream"

// Server wraps an MCP SDK server with an HTTP listener
type Server struct {
	logger    *logging.Logger
	config    config.Config
	resources *Resources
	sessions  *Sessions

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs a new MCP HTTP server
func NewServer(log *logging.Logger, cfg config.Config, res *Resources) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "jobboard",
		Version: "0.1.0",
	}

	mcpServer := sdkmcp.NewServer(impl, nil)

	sessions := NewSessions(res.JobService, res.Credentials, log,
		controller.WithTimeout(cfg.FetchTimeout),
		controller.WithClearSearchOnReset(cfg.ResetClearsSearch),
	)
	NewToolRegistry(log).RegisterAll(mcpServer, sessions, res)

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle(StreamPath, handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger:    log,
		config:    cfg,
		resources: res,
		sessions:  sessions,
		srv:       httpSrv,
	}
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops the listener, then disposes every browsing session and
// closes optional integrations
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP HTTP server")
	err := s.srv.Shutdown(ctx)
	if err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
	}

	s.sessions.DisposeAll()

	if cerr := s.resources.Close(ctx); cerr != nil {
		s.logger.Warn("failed to close resources", "err", cerr)
		err = errors.Join(err, cerr)
	}

	if err == nil {
		s.logger.Info("MCP HTTP server shutdown complete")
	}
	return err
}
