// Command etl ingests the central bank's monthly interest-rate workbooks
// into the relational store. Each configured source sheet is processed in
// its own transaction; independent sheets run concurrently. Re-running
// over the same workbooks is a no-op on fact tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"nbsrates/internal/config"
	"nbsrates/internal/dataprocessing"
	"nbsrates/internal/infrastructure"
	"nbsrates/internal/ingest"
	"nbsrates/internal/store/sqlite"
	"nbsrates/pkg/contracts"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("ingestion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := ingest.ValidateLayouts(); err != nil {
		return err
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured")
	}

	logger := infrastructure.NewLogger(cfg.Logging, os.Stderr)
	slog.SetDefault(logger)
	logger.Info("starting ingestion", slog.String("version", contracts.VersionString()))

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	processor := ingest.NewProcessor(logger)

	group, ctx := errgroup.WithContext(context.Background())
	for _, source := range cfg.Sources {
		source := source
		group.Go(func() error {
			return ingestSource(ctx, logger, store, processor, source)
		})
	}
	return group.Wait()
}

func ingestSource(ctx context.Context, logger *slog.Logger, store *sqlite.Store, processor *ingest.Processor, source config.SourceConfig) error {
	category, err := source.ParsedCategory()
	if err != nil {
		return err
	}

	logger.Info("ingesting sheet",
		slog.String("file", source.File),
		slog.String("sheet", source.Sheet),
		slog.String("category", string(category)))

	grid, err := dataprocessing.LoadSheet(source.File, source.Sheet)
	if err != nil {
		return err
	}

	return store.WithSession(ctx, func(session *sqlite.Session) error {
		return processor.ProcessFrame(ctx, session, category, grid)
	})
}
