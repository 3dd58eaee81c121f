package db

import (
	"testing"
	"time"

	"github.com/dtnitsch/gutenberg-ingest/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestInsertRunAndList(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun("https://example.org/GUTINDEX.ALL", "https://mirror.example.org", "French", 100, 80, 15, 5, 90*time.Second)
	if err != nil {
		t.Fatalf("InsertRun() error: %v", err)
	}
	if runID == 0 {
		t.Error("InsertRun() returned 0 ID")
	}

	if _, err := db.InsertRun("https://example.org/GUTINDEX.ALL", "https://mirror.example.org", "French", 100, 100, 0, 0, 60*time.Second); err != nil {
		t.Fatalf("second InsertRun() error: %v", err)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runs))
	}
	// Newest first
	if runs[0].RunID <= runs[1].RunID {
		t.Errorf("runs not ordered newest first: %d then %d", runs[0].RunID, runs[1].RunID)
	}
	if runs[1].Downloaded != 80 || runs[1].Skipped != 15 || runs[1].Failed != 5 {
		t.Errorf("first run counters = %+v", runs[1])
	}
	if runs[1].DurationSeconds != 90 {
		t.Errorf("DurationSeconds = %v, want 90", runs[1].DurationSeconds)
	}
}

func TestUpsertBook(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun("index", "mirror", "French", 1, 1, 0, 0, time.Second)
	if err != nil {
		t.Fatalf("InsertRun() error: %v", err)
	}

	rec := models.Record{ID: 12345, Title: "Le Petit Prince", Author: "Antoine", Language: "French"}
	if err := db.UpsertBook(runID, rec, "books/1/2/3/4/12345/12345.txt"); err != nil {
		t.Fatalf("UpsertBook() error: %v", err)
	}

	// Second upsert for the same ID updates in place.
	rec.Title = "Le Petit Prince (corrected)"
	if err := db.UpsertBook(runID, rec, "books/1/2/3/4/12345/12345.txt"); err != nil {
		t.Fatalf("second UpsertBook() error: %v", err)
	}

	count, err := db.CountBooks("French")
	if err != nil {
		t.Fatalf("CountBooks() error: %v", err)
	}
	if count != 1 {
		t.Errorf("CountBooks() = %d, want 1 after upserting the same ID twice", count)
	}

	var title string
	if err := db.QueryRow("SELECT title FROM books WHERE book_id = ?", rec.ID).Scan(&title); err != nil {
		t.Fatalf("failed to read back book: %v", err)
	}
	if title != "Le Petit Prince (corrected)" {
		t.Errorf("title = %q, want the updated value", title)
	}
}

func TestCountBooksByLanguage(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	runID, err := db.InsertRun("index", "mirror", "French", 2, 2, 0, 0, time.Second)
	if err != nil {
		t.Fatalf("InsertRun() error: %v", err)
	}

	books := []models.Record{
		{ID: 1, Title: "Un", Language: "French"},
		{ID: 2, Title: "One", Language: "English"},
	}
	for _, rec := range books {
		if err := db.UpsertBook(runID, rec, "path"); err != nil {
			t.Fatalf("UpsertBook() error: %v", err)
		}
	}

	french, err := db.CountBooks("French")
	if err != nil {
		t.Fatalf("CountBooks(French) error: %v", err)
	}
	if french != 1 {
		t.Errorf("CountBooks(French) = %d, want 1", french)
	}

	all, err := db.CountBooks("")
	if err != nil {
		t.Fatalf("CountBooks() error: %v", err)
	}
	if all != 2 {
		t.Errorf("CountBooks(\"\") = %d, want 2", all)
	}
}
