package models

// Record is a single catalog entry extracted from the master index.
// Identity is the numeric ID; records are immutable once extracted.
//
// Some index lines carry a trailing uppercase volume letter after the
// ID. The letter is discarded during parsing, so multi-volume entries
// collapse to a single Record and the first-seen line wins.
type Record struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Language string `json:"language" yaml:"language"`
}

// RunSummary is the durable catalog of one ingestion run. Every book
// listed here has a corresponding artifact on disk (or was already
// present when the run started).
type RunSummary struct {
	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	Source      string   `json:"source" yaml:"source"`
	TotalBooks  int      `json:"total_books" yaml:"total_books"`
	Books       []Record `json:"books" yaml:"books"`
}
