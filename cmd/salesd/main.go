package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aevon-lab/sales-analytics/internal/analytics"
	corecfg "github.com/aevon-lab/sales-analytics/internal/core/config"
	"github.com/aevon-lab/sales-analytics/internal/core/storage/memory"
	"github.com/aevon-lab/sales-analytics/internal/ingestion"
	"github.com/aevon-lab/sales-analytics/internal/orders"
	"github.com/aevon-lab/sales-analytics/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config", "config", cfg)

	// 2. Initialize Storage (in-memory, copy-on-write snapshots)
	store := memory.NewStore()

	// 3. Initialize Ingestion (upload, list, clear)
	ingestionSvc := ingestion.NewService(store, ingestion.Options{
		MaxBodySizeMB:   cfg.Server.MaxBodySizeMB,
		DefaultPageSize: cfg.Analytics.DefaultPageSize,
		MaxPageSize:     cfg.Analytics.MaxPageSize,
	})

	// 4. Initialize Analytics (aggregation views)
	analyticsSvc := analytics.NewService(store, analytics.Options{
		DefaultTopLimit: cfg.Analytics.DefaultTopLimit,
		MaxTopLimit:     cfg.Analytics.MaxTopLimit,
		CacheEnabled:    cfg.Analytics.CacheEnabled,
	})

	// 5. Initialize Order Aggregator
	ordersSvc := orders.NewService(cfg.Server.MaxBodySizeMB)

	// 6. Initialize Server
	srv := server.New(cfg.Server.Addr(), store, cfg.Server.Mode)
	ingestionSvc.RegisterRoutes(srv.Engine)
	analyticsSvc.RegisterRoutes(srv.Engine)
	ordersSvc.RegisterRoutes(srv.Engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}
