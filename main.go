package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/calebds/worldquery/cliparse"
	"github.com/calebds/worldquery/db"
	"github.com/calebds/worldquery/profile"
	"github.com/calebds/worldquery/runner"
	"github.com/calebds/worldquery/seed"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the engine
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "engine", cfg.DatabaseType)

	// Ctrl-C cancels the demonstration run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the sample dataset
	if err := seed.Load(ctx, dbConn, cfg); err != nil {
		slog.Error("sample data load failed", "error", err)
		os.Exit(1)
	}

	// Run the query corpus
	prof := profile.New(cfg.Profile)
	r := runner.New(dbConn, cfg, prof)

	slog.Info("Running query corpus", "steps", len(r.Steps()))
	if err := r.Run(ctx); err != nil {
		slog.Error("corpus run failed", "error", err)
		os.Exit(1)
	}

	prof.Summarize()
	slog.Info("Corpus run complete")
}
