package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ashxudev/terminal-poker/internal/fileutil"
)

const statsFileName = "stats.json"

// DefaultStatsPath returns the stats file location under the user's config
// directory, e.g. ~/.config/terminal-poker/stats.json on Linux.
func DefaultStatsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "terminal-poker", statsFileName), nil
}

// Store persists lifetime counters as pretty-printed JSON at a fixed path.
type Store struct {
	path   string
	logger *log.Logger
	stats  *PlayerStats
}

// OpenStore loads the stats file at path. A missing file starts with zero
// counters; an unreadable or malformed file logs a warning and also starts
// fresh, so a corrupt stats file never blocks play. A nil logger discards.
func OpenStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("stats")

	stats := &PlayerStats{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run.
	case err != nil:
		logger.Warn("could not read stats file, starting fresh", "path", path, "err", err)
	default:
		if err := json.Unmarshal(data, stats); err != nil {
			logger.Warn("could not parse stats file, starting fresh", "path", path, "err", err)
			stats = &PlayerStats{}
		}
	}

	return &Store{path: path, logger: logger, stats: stats}
}

// Stats returns the loaded counters. The tracker mutates them in place, so
// Save picks up everything recorded since the store was opened.
func (s *Store) Stats() *PlayerStats { return s.stats }

// Path returns where the stats are persisted.
func (s *Store) Path() string { return s.path }

// Save writes the counters back atomically, creating the directory when
// needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating stats dir: %w", err)
	}

	data, err := json.MarshalIndent(s.stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	data = append(data, '\n')

	if err := fileutil.WriteFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing stats file: %w", err)
	}
	s.logger.Debug("stats saved", "path", s.path)
	return nil
}
