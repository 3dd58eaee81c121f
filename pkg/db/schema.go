package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Ingest runs: one row per pipeline invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    source TEXT NOT NULL,          -- index URL or local index file
    mirror_root TEXT NOT NULL,
    language TEXT NOT NULL,
    total INTEGER NOT NULL,
    downloaded INTEGER NOT NULL,
    skipped INTEGER NOT NULL,
    failed INTEGER NOT NULL,
    duration_seconds REAL NOT NULL
);

-- Books: one row per ingested record, refreshed across runs
CREATE TABLE IF NOT EXISTS books (
    book_id INTEGER PRIMARY KEY,   -- the catalog ID, not autoincrement
    title TEXT NOT NULL,
    author TEXT,
    language TEXT NOT NULL,
    file_path TEXT NOT NULL,
    last_run_id INTEGER,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (last_run_id) REFERENCES runs(run_id)
);

CREATE INDEX IF NOT EXISTS idx_books_language ON books(language);
CREATE INDEX IF NOT EXISTS idx_books_last_run ON books(last_run_id);
`
