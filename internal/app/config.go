package app

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Config holds runtime options for a session.
type Config struct {
	// WordsDir optionally points at a directory holding categories/*.txt
	// word lists. When empty the embedded defaults are used.
	WordsDir string

	// StatsFile is the path of the cumulative statistics file.
	StatsFile string

	// LogDir is the base directory for per-round log files.
	LogDir string

	// Seed for random word selection. A seed of 0 means a random seed
	// will be generated.
	Seed int64
}

// FromEnv builds a Config from GALLOWS_* environment variables, falling
// back to the defaults the game has always used.
func FromEnv() Config {
	cfg := Config{
		StatsFile: "game_stats.txt",
		LogDir:    "game_log",
	}
	if v := os.Getenv("GALLOWS_WORDS_DIR"); v != "" {
		cfg.WordsDir = v
	}
	if v := os.Getenv("GALLOWS_STATS_FILE"); v != "" {
		cfg.StatsFile = v
	}
	if v := os.Getenv("GALLOWS_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("GALLOWS_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warn().Str("value", v).Msg("ignoring unparseable GALLOWS_SEED")
		} else {
			cfg.Seed = n
		}
	}
	return cfg
}
