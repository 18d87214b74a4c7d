package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.Storage.Path == "" {
		t.Error("expected Resolve to default the archive path")
	}
	if got := cfg.DatabasePath(); filepath.Base(got) != "touchline.db" {
		t.Errorf("unexpected database path: %s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid local", func(c *Config) {}, false},
		{"valid s3", func(c *Config) {
			c.Storage.Type = "s3"
			c.Storage.S3.Bucket = "touchline-archive"
		}, false},
		{"bad storage type", func(c *Config) { c.Storage.Type = "ftp" }, true},
		{"s3 without bucket", func(c *Config) { c.Storage.Type = "s3" }, true},
		{"batch size too small", func(c *Config) { c.Ingest.BatchSize = 0 }, true},
		{"batch size too large", func(c *Config) { c.Ingest.BatchSize = 1000001 }, true},
		{"missing data dir", func(c *Config) { c.DataDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
data_dir: /var/lib/touchline
http:
  addr: ":9000"
grpc:
  enabled: true
ingest:
  batch_size: 250
storage:
  type: s3
  s3:
    bucket: touchline-archive
    region: eu-west-1
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.DataDir != "/var/lib/touchline" {
		t.Errorf("unexpected data_dir: %s", cfg.DataDir)
	}
	if cfg.HTTP.Addr != ":9000" {
		t.Errorf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if !cfg.GRPC.Enabled {
		t.Error("expected grpc enabled")
	}
	if cfg.Ingest.BatchSize != 250 {
		t.Errorf("unexpected batch size: %d", cfg.Ingest.BatchSize)
	}
	if cfg.Storage.S3.Region != "eu-west-1" {
		t.Errorf("unexpected region: %s", cfg.Storage.S3.Region)
	}
	// Untouched fields keep their defaults.
	if cfg.GRPC.Addr != ":9090" {
		t.Errorf("expected default grpc addr, got %s", cfg.GRPC.Addr)
	}
}

func TestLoadFromFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TOUCHLINE_DATA_DIR", "/tmp/touchline-env")
	t.Setenv("TOUCHLINE_HTTP_ADDR", ":7070")
	t.Setenv("TOUCHLINE_GRPC_ENABLED", "true")
	t.Setenv("TOUCHLINE_INGEST_BATCH_SIZE", "42")
	t.Setenv("TOUCHLINE_STORAGE_TYPE", "s3")
	t.Setenv("TOUCHLINE_S3_BUCKET", "bucket-from-env")

	cfg := DefaultConfig()
	LoadFromEnv(cfg)

	if cfg.DataDir != "/tmp/touchline-env" {
		t.Errorf("unexpected data dir: %s", cfg.DataDir)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if !cfg.GRPC.Enabled {
		t.Error("expected grpc enabled")
	}
	if cfg.Ingest.BatchSize != 42 {
		t.Errorf("unexpected batch size: %d", cfg.Ingest.BatchSize)
	}
	if cfg.Storage.Type != "s3" || cfg.Storage.S3.Bucket != "bucket-from-env" {
		t.Errorf("unexpected storage config: %+v", cfg.Storage)
	}
}
