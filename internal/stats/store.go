package stats

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Store reads and writes stats as a flat text file of "key: value" lines.
// Persistence failures never stop the game: Load falls back to zero stats
// and callers treat Save errors as warnings.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (st *Store) Path() string {
	return st.path
}

// Load returns the saved stats. A missing or unreadable file yields zero
// stats; malformed lines are warned about and skipped, unknown keys are
// ignored.
func (st *Store) Load() Stats {
	content, err := os.ReadFile(st.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", st.path).Msg("could not load statistics")
		}
		return Stats{}
	}

	var s Stats
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			log.Warn().Str("line", line).Msg("skipping malformed stats line")
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			log.Warn().Str("line", line).Msg("skipping malformed stats line")
			continue
		}
		switch strings.TrimSpace(key) {
		case "games_played":
			s.GamesPlayed = n
		case "wins":
			s.Wins = n
		case "losses":
			s.Losses = n
		case "total_score":
			s.TotalScore = n
		default:
			// Unknown keys are ignored so newer files still load.
		}
	}
	return s
}

// Save writes the stats file, creating parent directories as needed.
func (st *Store) Save(s Stats) error {
	if dir := filepath.Dir(st.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating stats directory: %w", err)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "games_played: %d\n", s.GamesPlayed)
	fmt.Fprintf(&b, "wins: %d\n", s.Wins)
	fmt.Fprintf(&b, "losses: %d\n", s.Losses)
	fmt.Fprintf(&b, "total_score: %d\n", s.TotalScore)

	if err := os.WriteFile(st.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing stats file: %w", err)
	}
	return nil
}
