package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"

	"github.com/samdwyer/gallows/internal/game"
	"github.com/samdwyer/gallows/internal/wordlist"
)

const guessPrompt = "\033[32mgallows>\033[0m "

// DefaultPlayerName is used when the player submits an empty name.
const DefaultPlayerName = "Player"

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Prompt reads player input through a readline instance. It implements
// game.InputSource; interrupt and EOF both map to the quit signal.
type Prompt struct {
	l *readline.Instance
}

// NewPrompt opens the terminal prompt.
func NewPrompt() (*Prompt, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          guessPrompt,
		HistoryFile:     filepath.Join(os.TempDir(), "gallows_history.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("opening prompt: %w", err)
	}
	return &Prompt{l: l}, nil
}

// Close releases the terminal.
func (p *Prompt) Close() error {
	return p.l.Close()
}

// NextGuess returns the next non-empty guess token, or game.ErrQuit when
// the player types "quit", interrupts, or closes the input.
func (p *Prompt) NextGuess() (string, error) {
	for {
		line, err := p.read(guessPrompt)
		if err != nil {
			return "", err
		}
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") {
			return "", game.ErrQuit
		}
		return line, nil
	}
}

// CategoryChoice asks for a category by number or name until the answer
// is valid. Number len(names)+1 and the name "all" select the aggregate
// pool.
func (p *Prompt) CategoryChoice(names []string) (string, error) {
	for {
		line, err := p.read("Choose a category (number or name): ")
		if err != nil {
			return "", err
		}
		line = strings.ToLower(line)

		if strings.EqualFold(line, "quit") {
			return "", game.ErrQuit
		}

		if num, err := strconv.Atoi(line); err == nil {
			switch {
			case num >= 1 && num <= len(names):
				return names[num-1], nil
			case num == len(names)+1:
				return wordlist.All, nil
			default:
				p.say("Invalid number. Try again.")
				continue
			}
		}

		if line == wordlist.All {
			return wordlist.All, nil
		}
		for _, name := range names {
			if line == name {
				return name, nil
			}
		}
		p.say("Invalid input. Please try again.")
	}
}

// PlayerName asks for the player's name; empty input falls back to the
// default, and the first letter is capitalized either way.
func (p *Prompt) PlayerName() (string, error) {
	line, err := p.read("\nEnter your name: ")
	if err != nil {
		return "", err
	}
	if line == "" {
		return DefaultPlayerName, nil
	}
	runes := []rune(line)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes), nil
}

// read blocks for one trimmed line under the given prompt, restoring the
// guess prompt afterwards. Interrupt and EOF become game.ErrQuit.
func (p *Prompt) read(prompt string) (string, error) {
	p.l.SetPrompt(prompt)
	defer p.l.SetPrompt(guessPrompt)

	line, err := p.l.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", game.ErrQuit
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompt) say(msg string) {
	io.WriteString(p.l.Stderr(), msg)
	io.WriteString(p.l.Stderr(), "\n")
}
