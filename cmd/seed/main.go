// Command seed loads glossary terms from a tab-separated or .xlsx data file.
//
// Flags:
//
//	-file   path to the data file (required)
//	-mode   seed adds every row as a new approved term; sync updates terms
//	        with the same headword and adds the rest (default: seed)
//
// Exit codes: 0 = success, 1 = error or at least one failed row.
package main

import (
	"context"
	"flag"
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

var _ maintenance.TermStore = (*term.Repo)(nil)

func main() {
	fileFlag := flag.String("file", "", "path to the .tsv or .xlsx data file")
	modeFlag := flag.String("mode", "seed", "seed or sync")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("-file is required")
	}
	if *modeFlag != "seed" && *modeFlag != "sync" {
		log.Fatalf("unknown mode %q", *modeFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	rows, err := maintenance.LoadFile(*fileFlag)
	if err != nil {
		logger.Error("read data file", slog.String("file", *fileFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	jobs := maintenance.New(logger, term.New(pool), postgres.NewTxManager(pool), nil, cfg.Maintenance.ChunkSize)

	run := jobs.Seed
	if *modeFlag == "sync" {
		run = jobs.Sync
	}

	res, err := run(ctx, rows)
	if err != nil {
		logger.Error(*modeFlag+" aborted", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.HasErrors() {
		os.Exit(1)
	}
}
