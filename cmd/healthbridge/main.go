package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitae-lab/healthbridge/internal/config"
	"github.com/vitae-lab/healthbridge/internal/health"
	"github.com/vitae-lab/healthbridge/internal/native"
	"github.com/vitae-lab/healthbridge/internal/native/simstore"
	"github.com/vitae-lab/healthbridge/internal/server"
)

// version is stamped by the release build.
var version = "dev"

func main() {
	configPath := flag.String("config", "healthbridge.yaml", "Path to configuration file")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)
	slog.Info("Loaded config", "platform", cfg.Store.Platform, "dsn", cfg.Store.DSN)

	// 3. Initialize the simulated device store
	store, err := simstore.Open(cfg.Store.DSN, simstore.Options{
		Platform:    native.Platform(cfg.Store.Platform),
		SourceName:  cfg.Store.SourceName,
		Unavailable: cfg.Store.Unavailable,
		Reason:      cfg.Store.UnavailableReason,
	}, logger)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Store.SeedPath != "" {
		if err := store.LoadSeed(ctx, cfg.Store.SeedPath); err != nil {
			slog.Error("Failed to seed store", "error", err)
			os.Exit(1)
		}
	}

	// 4. Initialize the health service and server
	svc := health.NewService(store, version, logger)
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode)
	svc.RegisterRoutes(srv.Engine)

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

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
