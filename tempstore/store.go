package tempstore

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store materializes in-memory uploads to disk for the duration of
// parsing. The scratch directory is created once at startup and is the
// only state shared across requests; every materialized path embeds a
// per-request token so concurrent uploads never collide.
type Store struct {
	dir string
}

// New creates the scratch directory if absent and returns a store
// rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the scratch directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Materialize writes data to a uniquely named file inside the scratch
// directory and returns its path. The caller owns the file and must
// Release it once parsing is done.
func (s *Store) Materialize(data []byte, suggestedName string) (string, error) {
	name := fmt.Sprintf("temp-%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], sanitizeName(suggestedName))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write temp file %s: %w", path, err)
	}
	return path, nil
}

// Release deletes a materialized file. Deletion failures are logged and
// swallowed so cleanup never overshadows the pipeline result that
// triggered it.
func (s *Store) Release(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		log.Printf("[TempStore] Failed to release %s: %v", path, err)
	}
}

// sanitizeName strips any path components and whitespace from a
// client-supplied filename before it is embedded in a scratch path.
func sanitizeName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return base
}
