// Command gutenberg-ingest mirrors a single-language slice of a large
// text archive into a local directory tree: it fetches the master
// index, extracts matching catalog entries, and downloads each book
// with bounded concurrency and candidate fallback. Re-runs are
// incremental; already-present books are skipped.
package main

import (
	"log"
	"os"

	"github.com/dtnitsch/gutenberg-ingest/internal/extract"
	"github.com/dtnitsch/gutenberg-ingest/internal/ingest"
	"github.com/dtnitsch/gutenberg-ingest/internal/runs"
	"github.com/dtnitsch/gutenberg-ingest/internal/verify"
	"github.com/dtnitsch/gutenberg-ingest/pkg/mirror"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "gutenberg-ingest",
		Usage: "Bulk-download one language's catalog entries from a text archive mirror",
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Fetch the master index and download every matching book",
				Action: ingest.IngestAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file; flags override its values",
					},
					&cli.StringFlag{
						Name:  "index-url",
						Usage: "Master index URL",
						Value: ingest.DefaultIndexURL,
					},
					&cli.StringFlag{
						Name:  "index-file",
						Usage: "Read the index from a local file instead of the network",
					},
					&cli.StringFlag{
						Name:  "mirror-root",
						Usage: "Mirror root for book downloads",
						Value: mirror.DefaultRoot,
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Local artifact tree root",
						Value:   ingest.DefaultOutputDir,
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Language marker to filter index entries on",
						Value: ingest.DefaultLanguage,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent downloads",
						Value: ingest.DefaultWorkerCount,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Stop after N records (0 = all)",
					},
					&cli.Float64Flag{
						Name:  "rate",
						Usage: "Max requests per second (0 = unlimited)",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "SQLite database path (default: next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "extract",
				Usage:  "Parse the index and print matching records without downloading",
				Action: extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "index-url",
						Usage: "Master index URL",
						Value: ingest.DefaultIndexURL,
					},
					&cli.StringFlag{
						Name:  "index-file",
						Usage: "Read the index from a local file instead of the network",
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Language marker to filter index entries on",
						Value: ingest.DefaultLanguage,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Stop after N records (0 = all)",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or yaml",
						Value: "json",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "verify",
				Usage:  "Spot-check downloaded books against the expected language",
				Action: verify.VerifyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Local artifact tree root",
						Value:   ingest.DefaultOutputDir,
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "Expected language",
						Value: ingest.DefaultLanguage,
					},
					&cli.IntFlag{
						Name:  "sample",
						Usage: "Check at most N artifacts (0 = all)",
						Value: 50,
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Only log errors",
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "List past ingest runs",
				Action: runs.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Show at most N runs",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "SQLite database path (default: next to the binary)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
