package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File stores the record as a small JSON document:
//
//	{"total_races": 3, "wins": 1, "best_time": 27.4}
type File struct {
	path string
}

// NewFile returns a JSON-backed store at path. A leading ~ expands to the
// user's home directory.
func NewFile(path string) *File {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &File{path: path}
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// LoadStats reads the record. A missing file yields the zero record without
// error; a corrupt file yields the zero record and an error.
func (f *File) LoadStats() (Stats, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("stats: cannot read %s: %w", f.path, err)
	}

	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return Stats{}, fmt.Errorf("stats: cannot parse %s: %w", f.path, err)
	}
	if s.TotalRaces < 0 || s.Wins < 0 {
		return Stats{}, fmt.Errorf("stats: negative counters in %s", f.path)
	}
	return s, nil
}

// SaveStats writes the record, creating parent directories as needed.
func (f *File) SaveStats(s Stats) error {
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("stats: cannot create directory %s: %w", dir, err)
		}
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("stats: cannot encode: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("stats: cannot write %s: %w", f.path, err)
	}
	return nil
}

var _ Store = (*File)(nil)
