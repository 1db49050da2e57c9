// Package app wires the collaborators together and runs a game session.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gallows/data"
	"github.com/samdwyer/gallows/internal/game"
	"github.com/samdwyer/gallows/internal/gamelog"
	"github.com/samdwyer/gallows/internal/stats"
	"github.com/samdwyer/gallows/internal/telemetry"
	"github.com/samdwyer/gallows/internal/ui"
	"github.com/samdwyer/gallows/internal/wordlist"
)

// App owns the collaborators for one interactive session: word lists,
// display, prompt, the stats store and the game log store.
type App struct {
	cfg      Config
	words    *wordlist.Registry
	display  *ui.ConsoleDisplay
	prompt   *ui.Prompt
	statsDB  *stats.Store
	gamelogs *gamelog.Store
	rng      *rand.Rand
}

// New creates an app instance, loading word lists and opening the prompt.
func New(cfg Config) (*App, error) {
	var fsys fs.FS = data.FS()
	if cfg.WordsDir != "" {
		fsys = os.DirFS(cfg.WordsDir)
	}
	words, err := wordlist.Load(fsys)
	if err != nil {
		return nil, fmt.Errorf("loading word lists: %w", err)
	}

	prompt, err := ui.NewPrompt()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &App{
		cfg:      cfg,
		words:    words,
		display:  ui.NewConsoleDisplay(os.Stdout),
		prompt:   prompt,
		statsDB:  stats.NewStore(cfg.StatsFile),
		gamelogs: gamelog.NewStore(cfg.LogDir),
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Run plays one session: load stats, pick a word, play the round, then
// record, persist and report. Quitting before a round starts exits
// without touching the stats.
func (a *App) Run(ctx context.Context) error {
	defer a.prompt.Close()

	tracer := telemetry.Tracer("app")
	ctx, initSpan := tracer.Start(ctx, "app.init")

	totals := a.statsDB.Load()

	a.display.Welcome()
	names := a.words.Names()
	a.display.CategoryMenu(names)

	category, err := a.prompt.CategoryChoice(names)
	if errors.Is(err, game.ErrQuit) {
		initSpan.End()
		return nil
	}
	if err != nil {
		initSpan.End()
		return err
	}

	player, err := a.prompt.PlayerName()
	if errors.Is(err, game.ErrQuit) {
		initSpan.End()
		return nil
	}
	if err != nil {
		initSpan.End()
		return err
	}

	word, label, err := a.words.Pick(a.rng, category)
	if err != nil {
		initSpan.End()
		// An empty pool is a fatal precondition; the round never starts.
		return fmt.Errorf("starting round in category %q: %w", category, err)
	}

	state, err := game.NewState(word)
	if err != nil {
		initSpan.End()
		return fmt.Errorf("starting round: %w", err)
	}

	number := a.gamelogs.NextGameNumber()

	initSpan.SetAttributes(
		attribute.Int("wordlist.categories", a.words.Count()),
		attribute.String("round.category", label),
		attribute.Int("round.word_length", state.WordLength()),
		attribute.Int("round.number", number),
	)
	initSpan.End()

	a.display.NewRound(label, state.WordLength())

	loop := game.NewLoop(a.prompt, a.display)
	score, err := loop.Run(ctx, state)
	if err != nil {
		return err
	}

	totals.Record(state.Won(), score)
	a.display.RenderResult(state, score, totals)

	if err := a.statsDB.Save(totals); err != nil {
		log.Warn().Err(err).Msg("could not save statistics")
		a.display.Warn("statistics were not saved")
	}
	if err := a.gamelogs.Append(number, label, state, score, totals); err != nil {
		log.Warn().Err(err).Msg("could not save game log")
		a.display.Warn("game log was not saved")
	}

	a.display.FinalStats(totals)
	a.display.Goodbye(player)
	return nil
}
