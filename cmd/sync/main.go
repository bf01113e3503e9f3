package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/futdb-sync/internal/app"
	"github.com/riskibarqy/futdb-sync/internal/config"
	"github.com/riskibarqy/futdb-sync/internal/observability"
	"github.com/riskibarqy/futdb-sync/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		file := logging.RotatingFile(cfg.LogFile)
		defer func() {
			_ = file.Close()
		}()
		out = io.MultiWriter(os.Stdout, file)
	}

	logger := logging.New(out, cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace failed", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		return 1
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "reference sync starting",
		"base_url", cfg.FutDBBaseURL,
		"page_bound_policy", cfg.SyncPageBound,
	)
	metrics := observability.NewSyncMetrics()
	start := time.Now()
	result, err := app.Run(ctx, cfg, logger)
	metrics.Observe(result, time.Since(start), err)
	pushMetrics(cfg, metrics, logger)
	if err != nil {
		logger.ErrorContext(ctx, "reference sync failed",
			"records", result.Records(),
			"duration", time.Since(start),
			"error", err,
		)
		return 1
	}

	logger.InfoContext(ctx, "reference sync completed",
		"records", result.Records(),
		"endpoints", len(result.Kinds),
		"duration", time.Since(start),
	)
	return 0
}

func pushMetrics(cfg config.Config, metrics *observability.SyncMetrics, logger *logging.Logger) {
	if cfg.PushgatewayURL == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metrics.Push(ctx, cfg.PushgatewayURL, cfg.PushJobName); err != nil {
		logger.Warn("push sync metrics failed", "error", err)
	}
}
