// Command reconcile finishes chunk conversions that were interrupted
// mid-flight and have not moved for the configured stale period. It is
// intended to be invoked by an external cron job.
//
// Usage:
//
//	reconcile [--limit=100]
//
// Exit codes: 0 = success, 1 = error or at least one conversion failed.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/outcomes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/chunk"
	"github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/inbox"
	"github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/outcome"
	"github.com/heartmarshall/outcomes-backend/internal/adapter/postgres/preference"
	"github.com/heartmarshall/outcomes-backend/internal/app"
	"github.com/heartmarshall/outcomes-backend/internal/config"
	"github.com/heartmarshall/outcomes-backend/internal/service/conversion"
)

func main() {
	limit := flag.Int("limit", 100, "maximum number of stale conversions to resume")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, "outcomes-reconcile")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := conversion.NewService(
		logger,
		chunk.New(pool),
		outcome.New(pool),
		inbox.New(pool),
		preference.New(pool),
		audit.New(pool),
		postgres.NewTxManager(pool, cfg.Retry),
		cfg.Conversion,
	)

	report, err := svc.ResumeStale(ctx, *limit)
	if err != nil {
		logger.Error("reconcile failed",
			slog.String("error", err.Error()),
			slog.Int("found", report.Found),
			slog.Int("completed", report.Completed),
		)
		os.Exit(1)
	}

	logger.Info("reconcile completed",
		slog.Int("found", report.Found),
		slog.Int("completed", report.Completed),
		slog.Int("failed", report.Failed),
		slog.Duration("stale_after", cfg.Conversion.StaleAfter),
	)

	if report.Failed > 0 {
		os.Exit(1)
	}
}
