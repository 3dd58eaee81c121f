package db

import (
	"fmt"
	"time"

	"github.com/dtnitsch/gutenberg-ingest/models"
)

// RunInfo summarizes one row of the runs table.
type RunInfo struct {
	RunID           int64
	StartedAt       time.Time
	Source          string
	Language        string
	Total           int
	Downloaded      int
	Skipped         int
	Failed          int
	DurationSeconds float64
}

// InsertRun records one pipeline invocation and returns its run_id.
func (db *DB) InsertRun(source, mirrorRoot, language string, total, downloaded, skipped, failed int, duration time.Duration) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (source, mirror_root, language, total, downloaded, skipped, failed, duration_seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, source, mirrorRoot, language, total, downloaded, skipped, failed, duration.Seconds())
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// UpsertBook inserts or refreshes the row for one ingested record.
// The catalog ID is the primary key, so re-runs update in place.
func (db *DB) UpsertBook(runID int64, rec models.Record, filePath string) error {
	_, err := db.Exec(`
		INSERT INTO books (book_id, title, author, language, file_path, last_run_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(book_id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			language = excluded.language,
			file_path = excluded.file_path,
			last_run_id = excluded.last_run_id,
			updated_at = CURRENT_TIMESTAMP
	`, rec.ID, rec.Title, rec.Author, rec.Language, filePath, runID)
	if err != nil {
		return fmt.Errorf("failed to upsert book %d: %w", rec.ID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]RunInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, started_at, source, language, total, downloaded, skipped, failed, duration_seconds
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(&r.RunID, &r.StartedAt, &r.Source, &r.Language, &r.Total, &r.Downloaded, &r.Skipped, &r.Failed, &r.DurationSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// CountBooks returns the number of books recorded for a language.
// An empty language counts everything.
func (db *DB) CountBooks(language string) (int, error) {
	var count int
	var err error
	if language == "" {
		err = db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count)
	} else {
		err = db.QueryRow("SELECT COUNT(*) FROM books WHERE language = ?", language).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}
