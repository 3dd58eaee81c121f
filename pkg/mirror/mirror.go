// Package mirror maps catalog IDs onto the archive's digit-grouped
// directory convention, both for remote candidate URLs and for the
// local artifact tree. The two layouts are computed independently so
// storage layout and URL layout can diverge.
package mirror

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultRoot is the mirror used for book downloads. The main site
// rate-limits bulk traffic; mirrors are the sanctioned path.
const DefaultRoot = "https://aleph.gutenberg.org"

// BasePath returns the grouped-digit prefix for an ID: every decimal
// digit except the last becomes its own path component, so 1234 maps
// to "1/2/3". Single-digit IDs have an empty prefix.
func BasePath(id int) string {
	digits := strconv.Itoa(id)
	if len(digits) <= 1 {
		return ""
	}
	return strings.Join(strings.Split(digits[:len(digits)-1], ""), "/")
}

// CandidateURLs returns the three filename encodings to try for an ID,
// most preferred first: UTF-8 ("-0"), Latin-1 ("-8"), then the plain
// legacy file.
func CandidateURLs(root string, id int) [3]string {
	base := baseURL(root, id)
	return [3]string{
		fmt.Sprintf("%s/%d-0.txt", base, id),
		fmt.Sprintf("%s/%d-8.txt", base, id),
		fmt.Sprintf("%s/%d.txt", base, id),
	}
}

func baseURL(root string, id int) string {
	segments := []string{strings.TrimSuffix(root, "/")}
	if group := BasePath(id); group != "" {
		segments = append(segments, group)
	}
	segments = append(segments, strconv.Itoa(id))
	return strings.Join(segments, "/")
}

// ArtifactPath returns where the local copy of an ID lives:
// <baseDir>/<grouped digits>/<id>/<id>.txt. The idempotent-skip check
// depends on this layout staying stable across runs.
func ArtifactPath(baseDir string, id int) string {
	group := filepath.FromSlash(BasePath(id))
	return filepath.Join(baseDir, group, strconv.Itoa(id), fmt.Sprintf("%d.txt", id))
}

// Store persists downloaded artifacts under a base directory.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir, creating it if needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the root of the artifact tree.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the artifact path for an ID.
func (s *Store) Path(id int) string {
	return ArtifactPath(s.baseDir, id)
}

// Has reports whether the artifact for an ID already exists. Existing
// artifacts are never re-validated.
func (s *Store) Has(id int) bool {
	_, err := os.Stat(s.Path(id))
	return err == nil
}

// EnsureDir creates the containing directory for an ID's artifact.
// Two IDs sharing a parent directory may race here; already-exists is
// not an error.
func (s *Store) EnsureDir(id int) error {
	if err := os.MkdirAll(filepath.Dir(s.Path(id)), 0750); err != nil {
		return fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return nil
}

// Save writes the artifact body for an ID. Each ID owns exactly one
// artifact path, so there is no cross-record write contention.
func (s *Store) Save(id int, body []byte) error {
	if err := os.WriteFile(s.Path(id), body, 0644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}
