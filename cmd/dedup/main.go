// Command dedup removes duplicate glossary terms. Terms with the same
// headword and context (compared trimmed and case-insensitively) are
// collapsed to the most recently created one.
//
// Exit codes: 0 = success, 1 = error or at least one failed chunk.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/adapter/postgres/term"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/app"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/app/maintenance"
	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	jobs := maintenance.New(logger, term.New(pool), postgres.NewTxManager(pool), nil, cfg.Maintenance.ChunkSize)

	res, err := jobs.Deduplicate(ctx)
	if err != nil {
		logger.Error("dedup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.HasErrors() {
		os.Exit(1)
	}
}
