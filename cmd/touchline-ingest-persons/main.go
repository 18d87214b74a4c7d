// Package main implements the touchline-ingest-persons bulk loader.
// It reads a JSON-Lines file of person records and upserts them into
// the event store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/touchline/touchline/internal/config"
	"github.com/touchline/touchline/internal/ingest"
	"github.com/touchline/touchline/internal/storage"
	"github.com/touchline/touchline/internal/store"
)

func main() {
	var (
		configFile   string
		dataDir      string
		batchSize    int
		ignoreErrors bool
		archive      bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.StringVar(&dataDir, "data-dir", "", "Base directory for all data files")
	flag.IntVar(&batchSize, "batch-size", 0, "Rows upserted per transaction (default 1000)")
	flag.BoolVar(&ignoreErrors, "ignore-errors", false, "Skip malformed lines instead of aborting")
	flag.BoolVar(&archive, "archive", false, "Archive the ingested file to object storage")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: touchline-ingest-persons [options] <persons.jsonl>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg, err := loadConfig(configFile, dataDir, batchSize, archive)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		log.Fatalf("Failed to open event store: %v", err)
	}
	defer st.Close()

	loaderCfg := ingest.LoaderConfig{
		BatchSize:    cfg.Ingest.BatchSize,
		IgnoreErrors: ignoreErrors,
	}
	if cfg.Ingest.Archive {
		loaderCfg.Archive, err = newArchiveStorage(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize archive storage: %v", err)
		}
	}

	loader := ingest.NewLoader(st, loaderCfg)

	start := time.Now()
	res, err := loader.LoadPersons(context.Background(), path)
	if err != nil {
		log.Fatalf("Ingest failed: %v", err)
	}

	log.Printf("Ingested %s in %v", path, time.Since(start).Round(time.Millisecond))
	log.Printf("  lines:      %d", res.Lines)
	log.Printf("  upserted:   %d", res.Inserted)
	log.Printf("  duplicates: %d (repeated lines)", res.Duplicates)
	if res.BadLines > 0 {
		log.Printf("  bad lines:  %d", res.BadLines)
	}
	if res.ArchiveKey != "" {
		log.Printf("  archived:   %s", res.ArchiveKey)
	}
}

func loadConfig(configFile, dataDir string, batchSize int, archive bool) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		cfg = config.DefaultConfig()
	}

	config.LoadFromEnv(cfg)

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if batchSize > 0 {
		cfg.Ingest.BatchSize = batchSize
	}
	if archive {
		cfg.Ingest.Archive = true
	}

	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	return cfg, nil
}

func newArchiveStorage(cfg *config.Config) (storage.ObjectStorage, error) {
	switch cfg.Storage.Type {
	case "local":
		return storage.NewLocalStorage(cfg.Storage.Path)
	case "s3":
		return storage.NewS3Storage(context.Background(), cfg.Storage.S3.Bucket, storage.S3Config{
			Region:   cfg.Storage.S3.Region,
			Endpoint: cfg.Storage.S3.Endpoint,
		})
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
