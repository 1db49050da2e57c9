package gamelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/gallows/internal/game"
	"github.com/samdwyer/gallows/internal/stats"
)

func TestNextGameNumberFirstGame(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "game_log"))
	assert.Equal(t, 1, st.NextGameNumber())
}

func TestNextGameNumberScansDirectories(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"game1", "game7", "game3"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}
	// Junk that must not count: bad suffix, wrong prefix, and a plain
	// file that happens to look like a game directory.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "gameX"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backup"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game99"), []byte(""), 0o644))

	assert.Equal(t, 8, NewStore(dir).NextGameNumber())
}

func TestAppendWritesReport(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)

	s, err := game.NewState("cat")
	require.NoError(t, err)
	r := game.NewResolver()
	for _, tok := range []string{"x", "c", "a", "t"} {
		_, err := r.Resolve(s, tok)
		require.NoError(t, err)
	}
	require.True(t, s.Won())

	totals := stats.Stats{GamesPlayed: 2, Wins: 1, Losses: 1, TotalScore: 25}
	require.NoError(t, st.Append(2, "Animals", s, 25, totals))

	content, err := os.ReadFile(filepath.Join(dir, "game2", "log.txt"))
	require.NoError(t, err)

	report := string(content)
	assert.Contains(t, report, "Game 2 Log")
	assert.Contains(t, report, "Category: Animals")
	assert.Contains(t, report, "Word: cat")
	assert.Contains(t, report, "Word Length: 3")
	assert.Contains(t, report, "1. x -> Wrong")
	assert.Contains(t, report, "2. c -> Correct")
	assert.Contains(t, report, "Wrong Guesses List: x")
	assert.Contains(t, report, "Wrong Guesses Count: 1")
	assert.Contains(t, report, "Remaining Attempts: 5")
	assert.Contains(t, report, "Result: Win")
	assert.Contains(t, report, "Points Earned: 25")
	assert.Contains(t, report, "Win Rate: 50.00%")

	// The next round lands in the following directory.
	assert.Equal(t, 3, st.NextGameNumber())
}

func TestAppendLossReport(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)

	s, err := game.NewState("dog")
	require.NoError(t, err)
	r := game.NewResolver()
	for _, tok := range []string{"x", "y", "z", "q", "w", "e"} {
		_, err := r.Resolve(s, tok)
		require.NoError(t, err)
	}
	require.True(t, s.Lost())

	totals := stats.Stats{GamesPlayed: 1, Losses: 1}
	require.NoError(t, st.Append(1, "All Categories", s, 0, totals))

	content, err := os.ReadFile(filepath.Join(dir, "game1", "log.txt"))
	require.NoError(t, err)

	report := string(content)
	assert.Contains(t, report, "Result: Loss")
	assert.Contains(t, report, "Wrong Guesses List: x, y, z, q, w, e")
	assert.Contains(t, report, "Remaining Attempts: 0")
	assert.Contains(t, report, "Points Earned: 0")
}
