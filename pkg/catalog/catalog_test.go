package catalog

import (
	"path/filepath"
	"testing"

	"github.com/dtnitsch/gutenberg-ingest/models"
)

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	summary := models.RunSummary{
		GeneratedAt: "2025-01-02T15:04:05Z",
		Source:      "https://mirror.example.org",
		TotalBooks:  2,
		Books: []models.Record{
			{ID: 12345, Title: "Le Petit Prince", Author: "Antoine", Language: "French"},
			{ID: 13579, Title: "Les Misérables", Author: "Victor Hugo", Language: "French"},
		},
	}

	if err := Write(path, summary); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got.TotalBooks != 2 || len(got.Books) != 2 {
		t.Errorf("Read() = %+v, want 2 books", got)
	}
	if got.Books[0].ID != 12345 || got.Books[1].Author != "Victor Hugo" {
		t.Errorf("round-tripped books = %+v", got.Books)
	}
}

func TestWriteReplacesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	first := models.RunSummary{
		TotalBooks: 2,
		Books: []models.Record{
			{ID: 1, Title: "One", Language: "French"},
			{ID: 2, Title: "Two", Language: "French"},
		},
	}
	if err := Write(path, first); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	second := models.RunSummary{
		TotalBooks: 1,
		Books:      []models.Record{{ID: 3, Title: "Three", Language: "French"}},
	}
	if err := Write(path, second); err != nil {
		t.Fatalf("second Write() error: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(got.Books) != 1 || got.Books[0].ID != 3 {
		t.Errorf("catalog should be replaced, not merged: %+v", got.Books)
	}
}
