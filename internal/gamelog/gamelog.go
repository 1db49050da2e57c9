// Package gamelog writes the per-round log files.
//
// Each round gets its own directory, game_log/game<N>, where N comes from
// scanning the existing directories and taking max+1. The log itself is a
// human-readable report of the round and the cumulative totals.
package gamelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/samdwyer/gallows/internal/game"
	"github.com/samdwyer/gallows/internal/stats"
)

const separator = "============================================================"

// Store allocates game numbers and writes round reports under a base
// directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// NextGameNumber returns max+1 over the existing game<N> directories,
// starting at 1 when none exist. Entries that are not directories or do
// not parse as game numbers are skipped.
func (s *Store) NextGameNumber() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		// Missing base directory: this is the first game.
		return 1
	}

	next := 1
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		numStr, ok := strings.CutPrefix(e.Name(), "game")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}
		if n >= next {
			next = n + 1
		}
	}
	return next
}

// Append writes the report for a finished round to game<number>/log.txt.
func (s *Store) Append(number int, category string, st *game.State, score int, totals stats.Stats) error {
	dir := filepath.Join(s.dir, fmt.Sprintf("game%d", number))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating game log directory: %w", err)
	}

	path := filepath.Join(dir, "log.txt")
	if err := os.WriteFile(path, []byte(report(number, category, st, score, totals)), 0o644); err != nil {
		return fmt.Errorf("writing game log: %w", err)
	}
	return nil
}

func report(number int, category string, st *game.State, score int, totals stats.Stats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Game %d Log\n", number)
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "Category: %s\n", category)
	fmt.Fprintf(&b, "Word: %s\n", st.Word())
	fmt.Fprintf(&b, "Word Length: %d\n\n", st.WordLength())

	fmt.Fprintln(&b, "Guesses (in order):")
	for i, rec := range st.Log() {
		status := "Wrong"
		if rec.Correct {
			status = "Correct"
		}
		fmt.Fprintf(&b, "%d. %s -> %s\n", i+1, rec.Token, status)
	}

	wrongList := strings.Join(st.WrongGuesses(), ", ")
	if wrongList == "" {
		wrongList = "None"
	}
	result := "Loss"
	if st.Won() {
		result = "Win"
	}
	fmt.Fprintf(&b, "\nWrong Guesses List: %s\n", wrongList)
	fmt.Fprintf(&b, "Wrong Guesses Count: %d\n", st.WrongCount())
	fmt.Fprintf(&b, "Remaining Attempts: %d\n", st.RemainingAttempts())
	fmt.Fprintf(&b, "Result: %s\n", result)
	fmt.Fprintf(&b, "Points Earned: %d\n", score)
	fmt.Fprintf(&b, "Total Score: %d\n\n", totals.TotalScore)

	fmt.Fprintf(&b, "Games Played: %d\n", totals.GamesPlayed)
	fmt.Fprintf(&b, "Wins: %d\n", totals.Wins)
	fmt.Fprintf(&b, "Losses: %d\n", totals.Losses)
	if totals.GamesPlayed > 0 {
		fmt.Fprintf(&b, "Win Rate: %.2f%%\n", totals.WinRate())
	}

	fmt.Fprintf(&b, "\nDate & Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&b, separator)

	return b.String()
}
