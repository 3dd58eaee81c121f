package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dtnitsch/gutenberg-ingest/internal/common"
	"github.com/dtnitsch/gutenberg-ingest/internal/ingest"
	"github.com/dtnitsch/gutenberg-ingest/pkg/fetcher"
	"github.com/dtnitsch/gutenberg-ingest/pkg/index"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// ExtractAction parses the index and prints the record list without
// downloading anything. Useful for checking what a full ingest would
// cover.
func ExtractAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	indexURL := c.String("index-url")
	if indexURL == "" {
		indexURL = ingest.DefaultIndexURL
	}
	language := c.String("language")
	if language == "" {
		language = ingest.DefaultLanguage
	}

	f := fetcher.NewFetcher()
	indexText, source, err := common.LoadIndex(c.String("index-file"), indexURL, f)
	if err != nil {
		return fmt.Errorf("failed to load index: %w", err)
	}

	records := index.Extract(indexText, language)
	if limit := c.Int("limit"); limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	logger.Info("Index parsed", "records", len(records), "language", language, "source", source)

	var outputData []byte
	var marshalErr error
	if strings.ToLower(c.String("format")) == "yaml" {
		outputData, marshalErr = yaml.Marshal(records)
	} else {
		outputData, marshalErr = json.MarshalIndent(records, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal records", "error", marshalErr)
		os.Exit(2)
	}

	fmt.Println(string(outputData))
	return nil
}
