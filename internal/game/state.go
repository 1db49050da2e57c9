// Package game implements a guessing round: state, guess resolution,
// scoring and the turn loop.
package game

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// MaxWrong is the number of failed guesses that ends a round.
const MaxWrong = 6

// Outcome represents the status of a round.
type Outcome int

const (
	// OutcomeInProgress is a round still accepting guesses.
	OutcomeInProgress Outcome = iota
	// OutcomeWon means every letter of the secret word was revealed.
	OutcomeWon
	// OutcomeLost means the wrong-guess limit was reached or the player quit.
	OutcomeLost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GuessRecord is one entry in the round's audit trail.
type GuessRecord struct {
	Token   string
	Correct bool
}

// State holds all mutable progress for a single round. It is created with
// a secret word, mutated only by Resolver, and becomes read-only once the
// outcome is terminal.
type State struct {
	word         string
	guessed      map[rune]bool
	correct      map[rune]bool
	wrongGuesses []string
	wrongCount   int
	outcome      Outcome
	log          []GuessRecord
}

// NewState creates the state for a fresh round. The secret word is
// lowercased and must be a non-empty run of letters.
func NewState(word string) (*State, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, errors.New("secret word is empty")
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return nil, errors.New("secret word must contain only letters")
		}
	}
	return &State{
		word:    word,
		guessed: make(map[rune]bool),
		correct: make(map[rune]bool),
	}, nil
}

// Word returns the secret word.
func (s *State) Word() string {
	return s.word
}

// WordLength returns the secret word's length in letters.
func (s *State) WordLength() int {
	return len([]rune(s.word))
}

// Outcome returns the round's current status.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Won reports whether the round ended in a win.
func (s *State) Won() bool {
	return s.outcome == OutcomeWon
}

// Lost reports whether the round ended in a loss.
func (s *State) Lost() bool {
	return s.outcome == OutcomeLost
}

// Terminal reports whether the round stopped accepting guesses.
func (s *State) Terminal() bool {
	return s.outcome != OutcomeInProgress
}

// Revealed reports whether the given letter has been confirmed present in
// the secret word.
func (s *State) Revealed(letter rune) bool {
	return s.correct[unicode.ToLower(letter)]
}

// Guessed reports whether the given letter was already attempted.
func (s *State) Guessed(letter rune) bool {
	return s.guessed[unicode.ToLower(letter)]
}

// GuessedLetters returns every attempted letter in alphabetical order.
func (s *State) GuessedLetters() []string {
	return sortedLetters(s.guessed)
}

// CorrectLetters returns every revealed letter in alphabetical order.
func (s *State) CorrectLetters() []string {
	return sortedLetters(s.correct)
}

// WrongGuesses returns the failed guess tokens in chronological order.
func (s *State) WrongGuesses() []string {
	out := make([]string, len(s.wrongGuesses))
	copy(out, s.wrongGuesses)
	return out
}

// WrongCount returns the number of failed guesses so far.
func (s *State) WrongCount() int {
	return s.wrongCount
}

// RemainingAttempts returns how many more wrong guesses the round allows,
// clamped at zero. A multi-letter batch can overshoot the limit.
func (s *State) RemainingAttempts() int {
	remaining := MaxWrong - s.wrongCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Log returns the full guess history, one record per guess event.
func (s *State) Log() []GuessRecord {
	out := make([]GuessRecord, len(s.log))
	copy(out, s.log)
	return out
}

// Abandon ends the round as a loss without recording a wrong guess.
// Quitting is an abandonment, not a failed attempt. It is a no-op on a
// round that already finished.
func (s *State) Abandon() {
	if s.Terminal() {
		return
	}
	s.outcome = OutcomeLost
}

func (s *State) appendLog(token string, correct bool) {
	s.log = append(s.log, GuessRecord{Token: token, Correct: correct})
}

// checkWin marks the round won when every distinct letter of the secret
// word has been revealed.
func (s *State) checkWin() {
	for _, r := range s.word {
		if !s.correct[r] {
			return
		}
	}
	s.outcome = OutcomeWon
}

// checkLoss marks the round lost when the wrong-guess limit is reached.
// A won round stays won.
func (s *State) checkLoss() {
	if s.outcome == OutcomeInProgress && s.wrongCount >= MaxWrong {
		s.outcome = OutcomeLost
	}
}

func sortedLetters(set map[rune]bool) []string {
	letters := lo.Map(lo.Keys(set), func(r rune, _ int) string {
		return string(r)
	})
	sort.Strings(letters)
	return letters
}
