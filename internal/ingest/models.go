package ingest

import (
	"github.com/dtnitsch/gutenberg-ingest/models"
)

// Job is one record queued for download.
type Job struct {
	Record models.Record
}

// Result holds the outcome of one processed record. Exactly one
// Result is produced per record; Skipped means the artifact already
// existed and no transport call was made.
type Result struct {
	Record   models.Record
	FilePath string
	Skipped  bool
	Error    error
}

// Totals aggregates run-level counters. Only the collector goroutine
// in run() mutates it.
type Totals struct {
	Downloaded int
	Skipped    int
	Failed     int
	Completed  int
}
