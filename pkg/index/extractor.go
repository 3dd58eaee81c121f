// Package index extracts structured catalog records from the
// free-form, line-oriented master index listing. Parsing is
// deliberately heuristic: the index is maintained by hand and carries
// section separators, continuation lines, and per-entry annotation
// lines in no fixed shape. Malformed lines are skipped, never fatal.
package index

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dtnitsch/gutenberg-ingest/models"
)

// entryPattern matches one catalog entry line after trimming: a
// non-greedy title capture, two or more spaces, then a numeric
// identifier with an optional single trailing uppercase letter
// (volume/part marker).
var entryPattern = regexp.MustCompile(`^(.+?)\s{2,}(\d+)([A-Z]?)$`)

// lookaheadWindow bounds how far below an entry line its language
// annotation may sit. Annotations appear on one of a small, variable
// number of following lines; the bound keeps one entry's annotations
// from leaking into the next entry's window.
const lookaheadWindow = 5

// Extract parses the index text into the ordered set of records whose
// annotation block mentions the given language. Identity is the
// numeric ID: the first occurrence wins and later duplicates are
// dropped. Output order is first-appearance order.
func Extract(indexText, language string) []models.Record {
	lines := strings.Split(indexText, "\n")
	marker := strings.ToLower(language)

	var records []models.Record
	seen := make(map[int]bool)

	for i, line := range lines {
		m := classify(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if !qualifies(lines, i, marker) {
			continue
		}

		// The optional volume letter in m[3] is discarded: the digits
		// alone identify the book, so volumes sharing an ID dedup to
		// the first line seen.
		id, err := strconv.Atoi(m[2])
		if err != nil || id <= 0 {
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		title, author := SplitTitleAuthor(m[1])
		records = append(records, models.Record{
			ID:       id,
			Title:    title,
			Author:   author,
			Language: language,
		})
	}
	return records
}

// classify runs the cheap per-line filters and then the entry pattern.
// It returns the pattern submatches, or nil when the line cannot be an
// entry: blank lines, lines under 10 characters, and lines starting
// with '~' or '=' are section separators or continuation noise.
func classify(trimmed string) []string {
	if len(trimmed) < 10 {
		return nil
	}
	if strings.HasPrefix(trimmed, "~") || strings.HasPrefix(trimmed, "=") {
		return nil
	}
	return entryPattern.FindStringSubmatch(trimmed)
}

// qualifies scans up to lookaheadWindow lines after position i for the
// language marker. Hitting a line that is itself an entry means the
// next book's listing has begun, so any marker past it belongs to that
// book and the current entry does not qualify.
func qualifies(lines []string, i int, marker string) bool {
	for j := i + 1; j <= i+lookaheadWindow && j < len(lines); j++ {
		next := strings.TrimSpace(lines[j])
		if strings.Contains(strings.ToLower(next), marker) {
			return true
		}
		if entryPattern.MatchString(next) {
			return false
		}
	}
	return false
}

// SplitTitleAuthor derives title and author from the captured title
// text. Separator priority is the first ", by ", then the first
// ", par ", then the last " by " occurrence; entries in the real
// catalog rely on this exact chain, so it must not be reordered.
// Without any separator the author is empty.
func SplitTitleAuthor(text string) (title, author string) {
	if idx := strings.Index(text, ", by "); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(", by "):])
	}
	if idx := strings.Index(text, ", par "); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(", par "):])
	}
	if idx := strings.LastIndex(text, " by "); idx >= 0 {
		return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(" by "):])
	}
	return strings.TrimSpace(text), ""
}
