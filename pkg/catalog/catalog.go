// Package catalog persists the durable record of what has been
// ingested. Each write replaces the previous catalog wholesale; the
// artifact tree itself is the source of truth for incremental re-runs.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dtnitsch/gutenberg-ingest/models"
)

const DefaultFileName = "books.json"

// Write marshals the run summary as indented JSON and replaces any
// existing catalog at path.
func Write(path string, summary models.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// Read loads a previously written catalog.
func Read(path string) (*models.RunSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var summary models.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &summary, nil
}
