package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/reel/internal/config"
	"github.com/rpggio/reel/internal/domain/project"
	"github.com/rpggio/reel/internal/domain/session"
	"github.com/rpggio/reel/internal/mcp"
	"github.com/rpggio/reel/internal/metrics"
	"github.com/rpggio/reel/internal/sqlite"
	"github.com/rpggio/reel/internal/transport"
	"github.com/rpggio/reel/seed"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API or the stdio MCP server",
	Long: `Run the portfolio server.

On first start the seed catalog is imported into the database; later starts
read the stored catalog back.

Examples:
  # HTTP API, metrics and MCP on :8080
  reel serve

  # MCP over stdio for a local assistant
  REEL_TRANSPORT_MODE=stdio REEL_DB_PATH=:memory: reel serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer := newLogger(cfg)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		logger.Error("failed to load seed", "error", err)
		return err
	}

	projectSvc := project.NewService(sqlite.NewProjectRepository(db), logger)
	catalog, err := projectSvc.LoadOrImport(ctx, f.Projects)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return err
	}

	m := metrics.New()
	sessions := session.NewService(catalog, session.Config{
		IdleTTL:          cfg.Session.IdleTTL,
		SweepInterval:    cfg.Session.SweepInterval,
		CarouselInterval: cfg.Carousel.Interval,
	}, m, logger)

	sweepDone := make(chan struct{})
	go func() {
		defer close(sweepDone)
		sessions.Run(ctx)
	}()
	defer func() {
		stop()
		<-sweepDone
	}()

	mcpServer := mcp.NewServer(mcp.Config{
		Catalog:       catalog,
		Profile:       f.Profile,
		TransportMode: cfg.Transport.Mode,
		Version:       version,
		Logger:        logger,
	})

	if cfg.Transport.Mode == "stdio" {
		return runStdioMode(ctx, logger, mcpServer)
	}

	router := transport.NewServer(transport.Config{
		Catalog:  catalog,
		Profile:  f.Profile,
		Sessions: sessions,
		Metrics:  m,
		MCP:      mcp.NewHTTPHandler(mcpServer),
		Logger:   logger,
	})
	return runHTTPMode(ctx, logger, router, cfg.Server.Host, cfg.Server.Port)
}

func openDB(cfg config.Config, logger *slog.Logger) (*sqlite.DB, error) {
	if err := ensureParentDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		return nil, err
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, err
	}

	if err := db.RunMigrations(); err != nil {
		db.Close()
		logger.Error("failed to run migrations", "error", err)
		return nil, err
	}
	return db, nil
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or ctx is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		return err
	}
	logger.Info("shutting down")
	return nil
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, handler http.Handler, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	waitForShutdown(logger, httpServer)
	return nil
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
