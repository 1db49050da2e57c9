package game

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gallows/internal/telemetry"
)

// ErrQuit signals that the player abandoned the round.
var ErrQuit = errors.New("player quit")

// InputSource supplies raw guess tokens. Implementations block until the
// player enters something.
type InputSource interface {
	// NextGuess returns the next raw token, or ErrQuit when the player
	// abandons the round.
	NextGuess() (string, error)
}

// Display renders round progress and per-guess feedback.
type Display interface {
	// Render draws the current round state before each guess.
	Render(s *State)
	// Report describes the outcome of the last guess.
	Report(res Result)
}

// Loop drives one round from the first guess to a terminal state. It owns
// the state exclusively for the round's duration.
type Loop struct {
	resolver *Resolver
	input    InputSource
	display  Display
}

// NewLoop creates a round loop over the given collaborators.
func NewLoop(input InputSource, display Display) *Loop {
	return &Loop{
		resolver: NewResolver(),
		input:    input,
		display:  display,
	}
}

// Run plays the round to completion and returns the final score. A quit
// signal ends the round as a loss without a wrong-guess penalty.
func (l *Loop) Run(ctx context.Context, s *State) (int, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "round.play")
	defer span.End()

	guesses := 0
	for !s.Terminal() {
		l.display.Render(s)

		raw, err := l.input.NextGuess()
		if errors.Is(err, ErrQuit) {
			s.Abandon()
			span.SetAttributes(attribute.Bool("round.abandoned", true))
			break
		}
		if err != nil {
			return 0, fmt.Errorf("reading guess: %w", err)
		}

		res, err := l.resolver.Resolve(s, raw)
		if err != nil {
			return 0, err
		}
		guesses++
		l.display.Report(res)
	}

	score := Score(s)
	span.SetAttributes(
		attribute.Int("round.word_length", s.WordLength()),
		attribute.Int("round.guesses", guesses),
		attribute.Int("round.wrong_count", s.WrongCount()),
		attribute.String("round.outcome", s.Outcome().String()),
		attribute.Int("round.score", score),
	)
	return score, nil
}
