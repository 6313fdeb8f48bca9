package main

import (
	"context"
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/mcp"
	"github.com/honeycarbs/jobboard/pkg/logging"
	"github.com/honeycarbs/jobboard/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	res, err := mcp.InitializeResources(initCtx, cfg, logger)
	cancel()
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, res)

	done := make(chan struct{})
	go func() {
		defer close(done)
		shutdown.Graceful(
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			10*time.Second,
			logger,
			srv,
		)
	}()

	logger.Info("MCP server initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"jobs_api", cfg.JobsAPI.BaseURL,
		"fetch_timeout", cfg.FetchTimeout.String(),
	)

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		_ = res.Close(context.Background())
		os.Exit(1)
	}

	// wait for sessions and connections to be released
	<-done
	logger.Info("MCP server stopped")
}
