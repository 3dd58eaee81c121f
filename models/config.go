// Package models defines data structures shared across the ingestion
// pipeline: catalog records, run summaries, and runtime configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IngestConfig holds runtime configuration for ingest operations.
// Values come from CLI flags, optionally seeded from a YAML file.
type IngestConfig struct {
	IndexURL    string  `yaml:"index_url"`
	MirrorRoot  string  `yaml:"mirror_root"`
	OutputDir   string  `yaml:"output_dir"`
	Language    string  `yaml:"language"`
	WorkerCount int     `yaml:"workers"`
	Limit       int     `yaml:"limit"`
	RatePerSec  float64 `yaml:"rate_per_sec"`
}

// LoadConfig reads an IngestConfig from a YAML file. Missing fields
// stay at their zero value so callers can layer defaults underneath.
func LoadConfig(path string) (*IngestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg IngestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
