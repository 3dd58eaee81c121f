package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `index_url: https://example.org/GUTINDEX.ALL
mirror_root: https://mirror.example.org
output_dir: /tmp/books
language: French
workers: 20
rate_per_sec: 2.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.IndexURL != "https://example.org/GUTINDEX.ALL" {
		t.Errorf("IndexURL = %q", cfg.IndexURL)
	}
	if cfg.WorkerCount != 20 {
		t.Errorf("WorkerCount = %d, want 20", cfg.WorkerCount)
	}
	if cfg.RatePerSec != 2.5 {
		t.Errorf("RatePerSec = %v, want 2.5", cfg.RatePerSec)
	}
	if cfg.Limit != 0 {
		t.Errorf("Limit = %d, want zero value for unset field", cfg.Limit)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() should fail for a missing file")
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("workers: [not a number"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail for malformed YAML")
	}
}
