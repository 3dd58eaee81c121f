package runs

import (
	"fmt"
	"strings"

	dbpkg "github.com/dtnitsch/gutenberg-ingest/pkg/db"
	"github.com/urfave/cli/v2"
)

// RunsAction lists past ingest runs from the local database.
func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-8s %-12s %-8s %-8s %-10s\n",
		"ID", "Started", "Language", "Total", "Downloaded", "Skipped", "Failed", "Duration")
	fmt.Println(strings.Repeat("-", 90))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-10s %-8d %-12d %-8d %-8d %-10s\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.Language,
			r.Total,
			r.Downloaded,
			r.Skipped,
			r.Failed,
			fmt.Sprintf("%.1fs", r.DurationSeconds),
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))

	books, err := database.CountBooks("")
	if err == nil {
		fmt.Printf("Books in catalog: %d\n", books)
	}

	return nil
}
