// Package archive stores rejected uploads for later review. Saving is
// best-effort: a full disk or a bad mount must never change a verdict that
// has already been computed.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/plantsight/plantsight-api/internal/gate"
)

const timestampLayout = "20060102T150405Z"

type Store struct {
	dir string
}

// NewStore creates the review directory if needed. A store is returned even
// when the directory cannot be created; saves will then fail silently.
func NewStore(dir string) *Store {
	_ = os.MkdirAll(dir, 0o755)
	return &Store{dir: dir}
}

// Save writes the original upload bytes as {reason}_{UTC timestamp}.png and
// returns the path, or "" when the write fails. It never returns an error.
func (s *Store) Save(data []byte, reason gate.Reason) string {
	ts := time.Now().UTC().Format(timestampLayout)
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.png", reason, ts))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ""
	}
	return path
}
