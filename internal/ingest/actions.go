package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/gutenberg-ingest/internal/common"
	"github.com/dtnitsch/gutenberg-ingest/models"
	"github.com/dtnitsch/gutenberg-ingest/pkg/catalog"
	dbpkg "github.com/dtnitsch/gutenberg-ingest/pkg/db"
	"github.com/dtnitsch/gutenberg-ingest/pkg/fetcher"
	"github.com/dtnitsch/gutenberg-ingest/pkg/index"
	"github.com/dtnitsch/gutenberg-ingest/pkg/mirror"
	"github.com/urfave/cli/v2"
)

const (
	DefaultIndexURL    = "https://www.gutenberg.org/dirs/GUTINDEX.ALL"
	DefaultWorkerCount = 10
	DefaultLanguage    = "French"
	DefaultOutputDir   = "books"
)

func IngestAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	cfg, err := buildConfig(c)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	f := fetcher.NewFetcher()
	if cfg.RatePerSec > 0 {
		f.SetRateLimit(cfg.RatePerSec)
	}

	indexText, source, err := common.LoadIndex(c.String("index-file"), cfg.IndexURL, f)
	if err != nil {
		// Without the index there is nothing to ingest.
		return fmt.Errorf("failed to load index: %w", err)
	}

	records := index.Extract(indexText, cfg.Language)
	if cfg.Limit > 0 && len(records) > cfg.Limit {
		records = records[:cfg.Limit]
	}
	logger.Info("Index parsed", "records", len(records), "language", cfg.Language, "source", source)

	if len(records) == 0 {
		fmt.Println("No matching records in index")
		return nil
	}

	store, err := mirror.NewStore(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	totals, succeeded := run(logger, records, cfg.MirrorRoot, store, f, cfg.WorkerCount)

	summary := models.RunSummary{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Source:      cfg.MirrorRoot,
		TotalBooks:  len(succeeded),
		Books:       succeeded,
	}
	catalogPath := filepath.Join(cfg.OutputDir, catalog.DefaultFileName)
	if err := catalog.Write(catalogPath, summary); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	recordRun(logger, c.String("db"), source, cfg, len(records), totals, succeeded, store, time.Since(startTime))

	fmt.Printf("Done: %d downloaded, %d skipped, %d failed of %d records in %s\n",
		totals.Downloaded, totals.Skipped, totals.Failed, len(records),
		time.Since(startTime).Round(time.Second))
	fmt.Printf("Catalog: %s\n", catalogPath)

	if totals.Failed == len(records) {
		os.Exit(2)
	}
	return nil
}

// buildConfig layers CLI flags over the optional YAML config file over
// built-in defaults.
func buildConfig(c *cli.Context) (*models.IngestConfig, error) {
	cfg := &models.IngestConfig{
		IndexURL:    DefaultIndexURL,
		MirrorRoot:  mirror.DefaultRoot,
		OutputDir:   DefaultOutputDir,
		Language:    DefaultLanguage,
		WorkerCount: DefaultWorkerCount,
	}

	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		applyConfig(cfg, loaded)
	}

	if c.IsSet("index-url") {
		cfg.IndexURL = c.String("index-url")
	}
	if c.IsSet("mirror-root") {
		cfg.MirrorRoot = c.String("mirror-root")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("language") {
		cfg.Language = c.String("language")
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("limit") {
		cfg.Limit = c.Int("limit")
	}
	if c.IsSet("rate") {
		cfg.RatePerSec = c.Float64("rate")
	}

	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.WorkerCount)
	}
	return cfg, nil
}

// applyConfig copies non-zero fields from a loaded config file.
func applyConfig(dst, src *models.IngestConfig) {
	if src.IndexURL != "" {
		dst.IndexURL = src.IndexURL
	}
	if src.MirrorRoot != "" {
		dst.MirrorRoot = src.MirrorRoot
	}
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.Language != "" {
		dst.Language = src.Language
	}
	if src.WorkerCount > 0 {
		dst.WorkerCount = src.WorkerCount
	}
	if src.Limit > 0 {
		dst.Limit = src.Limit
	}
	if src.RatePerSec > 0 {
		dst.RatePerSec = src.RatePerSec
	}
}

// recordRun persists run history and per-book rows. Losing history is
// not worth failing an otherwise successful run, so db errors only
// warn.
func recordRun(logger *slog.Logger, dbPath, source string, cfg *models.IngestConfig, total int, totals Totals, succeeded []models.Record, store *mirror.Store, duration time.Duration) {
	database, err := dbpkg.Open(dbPath)
	if err != nil {
		logger.Warn("Failed to open database", "error", err)
		return
	}
	defer database.Close()

	runID, err := database.InsertRun(source, cfg.MirrorRoot, cfg.Language, total, totals.Downloaded, totals.Skipped, totals.Failed, duration)
	if err != nil {
		logger.Warn("Failed to record run", "error", err)
		return
	}

	for _, rec := range succeeded {
		if err := database.UpsertBook(runID, rec, store.Path(rec.ID)); err != nil {
			logger.Warn("Failed to record book", "id", rec.ID, "error", err)
		}
	}
}
