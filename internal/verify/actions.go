package verify

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/gutenberg-ingest/internal/common"
	"github.com/dtnitsch/gutenberg-ingest/internal/ingest"
	"github.com/dtnitsch/gutenberg-ingest/pkg/langcheck"
	"github.com/urfave/cli/v2"
)

// headerSkip jumps past the archive's standard English boilerplate at
// the top of every file, which would otherwise skew detection.
const headerSkip = 4096

// sampleBytes is how much text the detector sees per artifact.
const sampleBytes = 16384

// VerifyAction spot-checks downloaded artifacts against the expected
// language. Read-only: mismatches are reported, never deleted.
func VerifyAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	outputDir := c.String("output-dir")
	if outputDir == "" {
		outputDir = ingest.DefaultOutputDir
	}
	expected := c.String("language")
	if expected == "" {
		expected = ingest.DefaultLanguage
	}

	paths, err := artifactPaths(outputDir)
	if err != nil {
		return fmt.Errorf("failed to scan artifacts: %w", err)
	}
	if len(paths) == 0 {
		fmt.Println("No artifacts found")
		return nil
	}
	if sample := c.Int("sample"); sample > 0 && len(paths) > sample {
		paths = paths[:sample]
	}

	logger.Info("Verifying artifacts", "count", len(paths), "language", expected, "dir", outputDir)
	checker := langcheck.NewChecker()

	var mismatched, unreadable int
	for _, p := range paths {
		text, err := readSample(p)
		if err != nil {
			unreadable++
			logger.Warn("Failed to read artifact", "path", p, "error", err)
			continue
		}

		ok, detected, err := checker.Matches(text, expected)
		if err != nil {
			unreadable++
			logger.Warn("Detection failed", "path", p, "error", err)
			continue
		}
		if !ok {
			mismatched++
			fmt.Printf("%s: detected %s, expected %s\n", p, detected, expected)
		}
	}

	fmt.Printf("Checked %d artifacts: %d mismatched, %d unreadable\n", len(paths), mismatched, unreadable)
	return nil
}

// artifactPaths collects every .txt artifact under the output tree.
func artifactPaths(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// readSample returns a detection-sized slice of the file, skipping the
// header boilerplate when the file is long enough to afford it.
func readSample(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) > headerSkip+sampleBytes {
		return string(data[headerSkip : headerSkip+sampleBytes]), nil
	}
	if len(data) > sampleBytes {
		return string(data[:sampleBytes]), nil
	}
	return string(data), nil
}
