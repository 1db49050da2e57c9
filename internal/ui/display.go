// Package ui provides the line-oriented console display and the
// readline-backed input prompt.
package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/samdwyer/gallows/internal/game"
	"github.com/samdwyer/gallows/internal/stats"
	"github.com/samdwyer/gallows/internal/wordlist"
)

const rule = "============================================================"

// ConsoleDisplay renders game output to a writer. It implements
// game.Display plus the session-level screens around a round.
type ConsoleDisplay struct {
	w io.Writer
}

// NewConsoleDisplay creates a display writing to w.
func NewConsoleDisplay(w io.Writer) *ConsoleDisplay {
	return &ConsoleDisplay{w: w}
}

// Welcome prints the banner and the rules.
func (d *ConsoleDisplay) Welcome() {
	fmt.Fprintln(d.w, rule)
	fmt.Fprintln(d.w, center("GALLOWS"))
	fmt.Fprintln(d.w, rule)
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, "Guess the word letter by letter!")
	fmt.Fprintf(d.w, "You have %d wrong guesses before losing.\n", game.MaxWrong)
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, "Three ways to guess:")
	fmt.Fprintln(d.w, "  1. Single letter (e.g., 'a')")
	fmt.Fprintln(d.w, "  2. Multiple letters (e.g., 'thon')")
	fmt.Fprintln(d.w, "  3. Complete word (e.g., 'python')")
	fmt.Fprintln(d.w, rule)
}

// CategoryMenu prints the numbered category list plus the aggregate entry.
func (d *ConsoleDisplay) CategoryMenu(names []string) {
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, rule)
	fmt.Fprintln(d.w, center("CHOOSE A CATEGORY"))
	fmt.Fprintln(d.w, rule)
	for i, name := range names {
		fmt.Fprintf(d.w, "  %d. %s\n", i+1, capitalize(name))
	}
	fmt.Fprintf(d.w, "  %d. %s (random)\n", len(names)+1, wordlist.AllLabel)
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, "  Type 'quit' to exit")
	fmt.Fprintln(d.w, rule)
}

// NewRound announces the chosen category and word length.
func (d *ConsoleDisplay) NewRound(label string, wordLength int) {
	fmt.Fprintf(d.w, "\nNew word from '%s' category (%d letters)\n", label, wordLength)
}

// Render draws the round state before each guess: progress, guessed and
// wrong letters, the gallows and the guess options.
func (d *ConsoleDisplay) Render(s *game.State) {
	fmt.Fprintln(d.w)
	fmt.Fprintf(d.w, "Word: %s\n", Progress(s))
	if guessed := s.GuessedLetters(); len(guessed) > 0 {
		fmt.Fprintf(d.w, "Guessed: %s\n", strings.Join(guessed, ", "))
	}
	if wrong := s.WrongGuesses(); len(wrong) > 0 {
		fmt.Fprintf(d.w, "Wrong: %s\n", strings.Join(wrong, ", "))
	}
	fmt.Fprintf(d.w, "Attempts left: %d\n", s.RemainingAttempts())
	fmt.Fprintln(d.w, Gallows(s.WrongCount()))
	fmt.Fprintln(d.w, "\nOptions: single letter / multiple letters / full word / 'quit'")
}

// Report prints the feedback for one resolved guess. Multi-letter guesses
// get a batch summary instead of a single line.
func (d *ConsoleDisplay) Report(res game.Result) {
	if res.Kind == game.KindMulti && res.Signal == game.SignalApplied {
		fmt.Fprintf(d.w, "\nChecking letters: %s\n", strings.ToUpper(res.Token))
		if len(res.Skipped) > 0 {
			fmt.Fprintf(d.w, "Already guessed: %s\n", strings.Join(res.Skipped, ", "))
		}
		if len(res.Correct) > 0 {
			fmt.Fprintf(d.w, "Correct letters: %s\n", strings.Join(res.Correct, ", "))
		}
		if len(res.Wrong) > 0 {
			fmt.Fprintf(d.w, "Wrong letters: %s\n", strings.Join(res.Wrong, ", "))
		}
		return
	}
	if res.Kind == game.KindWord && res.Signal == game.SignalApplied {
		fmt.Fprintf(d.w, "\nGuessing full word: %s\n", strings.ToUpper(res.Token))
	}
	if res.Message != "" {
		fmt.Fprintln(d.w, res.Message)
	}
}

// RenderResult prints the round outcome screen.
func (d *ConsoleDisplay) RenderResult(s *game.State, score int, totals stats.Stats) {
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, rule)
	if s.Won() {
		fmt.Fprintln(d.w, center("YOU WON!"))
	} else {
		fmt.Fprintln(d.w, center("GAME OVER"))
		fmt.Fprintln(d.w, Gallows(s.WrongCount()))
	}
	fmt.Fprintln(d.w, rule)
	fmt.Fprintf(d.w, "The word was: %s\n", strings.ToUpper(s.Word()))
	fmt.Fprintf(d.w, "Points earned: %d\n", score)
	fmt.Fprintf(d.w, "Total score: %d\n", totals.TotalScore)
}

// FinalStats prints the cumulative statistics screen.
func (d *ConsoleDisplay) FinalStats(totals stats.Stats) {
	fmt.Fprintln(d.w)
	fmt.Fprintln(d.w, rule)
	fmt.Fprintln(d.w, center("FINAL STATISTICS"))
	fmt.Fprintln(d.w, rule)
	fmt.Fprintf(d.w, "Games played: %d\n", totals.GamesPlayed)
	fmt.Fprintf(d.w, "Wins: %d\n", totals.Wins)
	fmt.Fprintf(d.w, "Losses: %d\n", totals.Losses)
	if totals.GamesPlayed > 0 {
		fmt.Fprintf(d.w, "Win rate: %.2f%%\n", totals.WinRate())
		fmt.Fprintf(d.w, "Average score: %.2f\n", totals.AverageScore())
	}
	fmt.Fprintf(d.w, "Total score: %d\n", totals.TotalScore)
	fmt.Fprintln(d.w, rule)
}

// Goodbye prints the parting line.
func (d *ConsoleDisplay) Goodbye(player string) {
	fmt.Fprintf(d.w, "\nThanks for playing, %s!\n", player)
}

// Warn prints a non-fatal problem to the player.
func (d *ConsoleDisplay) Warn(msg string) {
	fmt.Fprintf(d.w, "Warning: %s\n", msg)
}

// Progress formats the secret word with revealed letters uppercase and
// underscores for the rest, space separated.
func Progress(s *game.State) string {
	var b strings.Builder
	for i, r := range s.Word() {
		if i > 0 {
			b.WriteRune(' ')
		}
		if s.Revealed(r) {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func center(text string) string {
	width := len(rule)
	pad := (width - len(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

func capitalize(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
