// Package common holds helpers shared by the CLI verb packages.
package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dtnitsch/gutenberg-ingest/pkg/fetcher"
)

// NewLogger builds the slog logger used by all verbs. Quiet mode only
// surfaces errors.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// LoadIndex returns the raw index text plus the location it came from.
// A local file takes priority over the network. Failing to obtain the
// index is fatal to the caller: no partial ingestion is attempted.
func LoadIndex(localPath, indexURL string, f *fetcher.Fetcher) (string, string, error) {
	if localPath != "" {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return "", "", fmt.Errorf("failed to read index file: %w", err)
		}
		return string(data), localPath, nil
	}

	text, err := f.GetText(indexURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch index: %w", err)
	}
	return text, indexURL, nil
}
