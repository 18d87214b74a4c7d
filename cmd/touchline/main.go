// Package main implements the touchline API server binary.
// It serves the customer-activity dashboard REST API and, when
// enabled, the gRPC bulk-ingest service.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/touchline/touchline/internal/app"
	"github.com/touchline/touchline/internal/config"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		configFile  string
		dataDir     string
		httpAddr    string
		grpcAddr    string
		grpcEnabled bool
		showVersion bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.StringVar(&dataDir, "data-dir", "", "Base directory for all data files")
	flag.StringVar(&httpAddr, "http-addr", "", "HTTP address for the API server")
	flag.StringVar(&grpcAddr, "grpc-addr", "", "gRPC server address")
	flag.BoolVar(&grpcEnabled, "grpc", false, "Enable the gRPC bulk-ingest service")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Touchline - customer activity dashboard backend\n\n")
		fmt.Fprintf(os.Stderr, "Usage: touchline [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  touchline --data-dir /data/touchline\n")
		fmt.Fprintf(os.Stderr, "  touchline --config /etc/touchline/config.yaml --grpc\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  TOUCHLINE_DATA_DIR       Base directory for data files\n")
		fmt.Fprintf(os.Stderr, "  TOUCHLINE_HTTP_ADDR      HTTP address for the API server\n")
		fmt.Fprintf(os.Stderr, "  TOUCHLINE_GRPC_ADDR      gRPC server address\n")
		fmt.Fprintf(os.Stderr, "  TOUCHLINE_STORAGE_TYPE   Archive storage type (local, s3)\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("touchline version %s (commit: %s)\n", version, commit)
		os.Exit(0)
	}

	// Load .env first so TOUCHLINE_* overrides from the file apply.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg, err := loadConfig(configFile, dataDir, httpAddr, grpcAddr, grpcEnabled)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	printBanner(cfg)

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Blocks until SIGTERM/SIGINT and runs graceful shutdown through
	// the app's shutdown manager. Stop then waits for the service
	// goroutines to finish.
	if err := application.WaitForShutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	if err := application.Stop(context.Background()); err != nil {
		log.Printf("Shutdown error: %v", err)
		os.Exit(1)
	}
}

// loadConfig loads configuration from file, environment, and command line flags.
func loadConfig(configFile, dataDir, httpAddr, grpcAddr string, grpcEnabled bool) (*config.Config, error) {
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

	// Command line flags take highest priority.
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if httpAddr != "" {
		cfg.HTTP.Addr = httpAddr
	}
	if grpcAddr != "" {
		cfg.GRPC.Addr = grpcAddr
	}
	if grpcEnabled {
		cfg.GRPC.Enabled = true
	}

	return cfg, nil
}

// printBanner prints the startup banner with configuration summary.
func printBanner(cfg *config.Config) {
	log.Printf("╔═══════════════════════════════════════════╗")
	log.Printf("║                TOUCHLINE                  ║")
	log.Printf("║   Customer Activity Dashboard Backend     ║")
	log.Printf("╚═══════════════════════════════════════════╝")
	log.Printf("")
	log.Printf("Configuration:")
	log.Printf("  Data Dir: %s", cfg.DataDir)
	log.Printf("  HTTP:     %s", cfg.HTTP.Addr)
	if cfg.GRPC.Enabled {
		log.Printf("  gRPC:     %s", cfg.GRPC.Addr)
	}
	log.Printf("  Storage:  %s", cfg.Storage.Type)
	log.Printf("")
}
