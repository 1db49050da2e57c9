package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrRoundOver is returned when a guess arrives after the round finished.
// The loop stops on terminal state first, so this is a caller error.
var ErrRoundOver = errors.New("round already finished")

// Signal classifies how a guess was handled.
type Signal int

const (
	// SignalApplied means the guess was scored against the round.
	SignalApplied Signal = iota
	// SignalAlreadyGuessed means the letter was attempted before; nothing
	// changed and no penalty was taken.
	SignalAlreadyGuessed
	// SignalInvalidInput means the token contained non-letter characters;
	// nothing changed and the guess was not recorded.
	SignalInvalidInput
)

// Kind identifies the form of a guess token, classified by its length
// relative to the secret word.
type Kind int

const (
	// KindLetter is a single-letter guess.
	KindLetter Kind = iota
	// KindMulti is a batch of individual letters attempted together.
	KindMulti
	// KindWord is an attempt at the whole secret word.
	KindWord
)

// Result describes everything that happened when one guess was resolved.
type Result struct {
	Token  string
	Kind   Kind
	Signal Signal

	// Correct and Wrong hold the letters newly revealed or newly missed by
	// this guess. Skipped holds letters ignored because they were guessed
	// before (multi-letter batches only).
	Correct []string
	Wrong   []string
	Skipped []string

	// WordHit is set when a full-word guess matched the secret word.
	WordHit bool

	// Message is a short line describing the outcome for the player.
	Message string
}

// Resolver classifies raw guess tokens and applies them to a round's
// state. It performs no I/O; reporting is the caller's job.
type Resolver struct{}

// NewResolver creates a guess resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve normalizes and applies one guess. Tokens with non-letter
// characters are rejected without touching the state. Guessing against a
// finished round returns ErrRoundOver.
func (r *Resolver) Resolve(s *State, raw string) (Result, error) {
	if s.Terminal() {
		return Result{}, ErrRoundOver
	}

	token := strings.ToLower(strings.TrimSpace(raw))
	if !isAlphabetic(token) {
		return Result{
			Token:   raw,
			Signal:  SignalInvalidInput,
			Message: "Invalid input. Use letters only.",
		}, nil
	}

	letters := []rune(token)
	switch {
	case len(letters) == 1:
		return r.resolveLetter(s, letters[0]), nil
	case len(letters) == s.WordLength():
		return r.resolveWord(s, token), nil
	default:
		return r.resolveMulti(s, token, letters), nil
	}
}

// resolveLetter applies a single-letter guess.
func (r *Resolver) resolveLetter(s *State, letter rune) Result {
	res := Result{Token: string(letter), Kind: KindLetter, Signal: SignalApplied}

	if s.guessed[letter] {
		res.Signal = SignalAlreadyGuessed
		res.Message = fmt.Sprintf("'%c' already guessed.", letter)
		return res
	}

	s.guessed[letter] = true
	if strings.ContainsRune(s.word, letter) {
		s.correct[letter] = true
		res.Correct = append(res.Correct, string(letter))
		res.Message = fmt.Sprintf("Correct! '%c' is in the word.", letter)
		s.appendLog(string(letter), true)
		s.checkWin()
	} else {
		s.wrongGuesses = append(s.wrongGuesses, string(letter))
		s.wrongCount++
		res.Wrong = append(res.Wrong, string(letter))
		res.Message = fmt.Sprintf("Wrong! '%c' is not in the word.", letter)
		s.appendLog(string(letter), false)
		s.checkLoss()
	}
	return res
}

// resolveMulti applies a batch of letters. Letters attempted before are
// skipped without re-scoring; every new letter is resolved like a single
// guess. One aggregate log entry is written for the whole token and the
// win/loss check runs once, after the batch.
func (r *Resolver) resolveMulti(s *State, token string, letters []rune) Result {
	res := Result{Token: token, Kind: KindMulti, Signal: SignalApplied}

	for _, letter := range letters {
		if s.guessed[letter] {
			res.Skipped = append(res.Skipped, string(letter))
			continue
		}
		s.guessed[letter] = true
		if strings.ContainsRune(s.word, letter) {
			s.correct[letter] = true
			res.Correct = append(res.Correct, string(letter))
		} else {
			s.wrongGuesses = append(s.wrongGuesses, string(letter))
			s.wrongCount++
			res.Wrong = append(res.Wrong, string(letter))
		}
	}

	s.appendLog("MULTI:"+token, len(res.Correct) > 0)
	s.checkWin()
	s.checkLoss()
	return res
}

// resolveWord applies a full-word guess. A match reveals the whole word
// with no penalty, whatever the current wrong count. A miss costs exactly
// one attempt, the same as a single wrong letter.
func (r *Resolver) resolveWord(s *State, token string) Result {
	res := Result{Token: token, Kind: KindWord, Signal: SignalApplied}

	if token == s.word {
		s.guessed = letterSet(s.word)
		s.correct = letterSet(s.word)
		s.outcome = OutcomeWon
		res.WordHit = true
		res.Message = "Correct! You guessed the word!"
		s.appendLog("WORD:"+token, true)
	} else {
		s.wrongGuesses = append(s.wrongGuesses, "WORD:"+token)
		s.wrongCount++
		res.Message = fmt.Sprintf("Wrong! '%s' is not the word.", token)
		s.appendLog("WORD:"+token, false)
		s.checkLoss()
	}
	return res
}

func isAlphabetic(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func letterSet(word string) map[rune]bool {
	set := make(map[rune]bool, len(word))
	for _, r := range word {
		set[r] = true
	}
	return set
}
