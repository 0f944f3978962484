// Package board implements the state of a single word-guessing round.
package board

import (
	"fmt"
	"strings"
)

const (
	// MaxMisses is the number of wrong guesses allowed before the round is lost.
	MaxMisses = 6

	// Placeholder is shown in place of letters that have not been revealed.
	Placeholder = '_'

	// MissSeparator joins missed letters in the status line.
	MissSeparator = ","

	// hidden marks an unrevealed slot. It is never an uppercase letter, so
	// it cannot be mistaken for a guess.
	hidden byte = 0
)

// Board tracks progress toward one target word.
type Board struct {
	target   []byte
	revealed []byte
	misses   []byte
}

// New creates a board for the given word. The word is normalized to
// uppercase and must consist of ASCII letters only.
func New(word string) (*Board, error) {
	target := []byte(strings.ToUpper(word))
	if len(target) == 0 {
		return nil, ErrInvalidWord
	}
	for _, c := range target {
		if !isUpper(c) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
		}
	}

	return &Board{
		target:   target,
		revealed: make([]byte, len(target)),
		misses:   make([]byte, 0, MaxMisses),
	}, nil
}

// Restore rebuilds a board from its serialized fields. revealed uses
// Placeholder for unrevealed slots. Any combination that could not have
// been reached through guessing is rejected with ErrInvalidState.
func Restore(target, revealed, misses string) (*Board, error) {
	b, err := New(target)
	if err != nil {
		return nil, fmt.Errorf("%w: target: %v", ErrInvalidState, err)
	}
	if target != string(b.target) {
		return nil, fmt.Errorf("%w: target %q is not uppercase", ErrInvalidState, target)
	}
	if len(revealed) != len(b.target) {
		return nil, fmt.Errorf("%w: revealed has %d slots, target has %d",
			ErrInvalidState, len(revealed), len(b.target))
	}

	for i := 0; i < len(revealed); i++ {
		switch c := revealed[i]; {
		case c == Placeholder:
		case c == b.target[i]:
			b.revealed[i] = c
		default:
			return nil, fmt.Errorf("%w: revealed slot %d holds %q, want %q or %q",
				ErrInvalidState, i, c, Placeholder, b.target[i])
		}
	}
	for i, c := range b.target {
		if b.revealed[i] == hidden && b.isRevealed(c) {
			return nil, fmt.Errorf("%w: letter %c is only partly revealed", ErrInvalidState, c)
		}
	}

	if len(misses) > MaxMisses {
		return nil, fmt.Errorf("%w: %d misses exceed the budget of %d",
			ErrInvalidState, len(misses), MaxMisses)
	}
	for i := 0; i < len(misses); i++ {
		c := misses[i]
		switch {
		case !isUpper(c):
			return nil, fmt.Errorf("%w: miss %q is not an uppercase letter", ErrInvalidState, c)
		case b.inTarget(c):
			return nil, fmt.Errorf("%w: miss %c occurs in the target", ErrInvalidState, c)
		case b.isMiss(c):
			return nil, fmt.Errorf("%w: miss %c is repeated", ErrInvalidState, c)
		}
		b.misses = append(b.misses, c)
	}

	return b, nil
}

// ValidateGuess checks that raw is exactly one ASCII letter and returns it
// in uppercase.
func ValidateGuess(raw string) (byte, error) {
	if len(raw) != 1 {
		return 0, ErrInvalidGuessFormat
	}
	c := raw[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if !isUpper(c) {
		return 0, ErrInvalidGuessFormat
	}
	return c, nil
}

// Guess applies one guess. A letter found in the target is revealed at
// every position it occurs; otherwise it is recorded as a miss.
func (b *Board) Guess(raw string) error {
	if b.IsWon() {
		return ErrAlreadyWon
	}
	if b.RemainingAttempts() <= 0 {
		return ErrAlreadyLost
	}

	c, err := ValidateGuess(raw)
	if err != nil {
		return err
	}
	if b.isRevealed(c) || b.isMiss(c) {
		return fmt.Errorf("%w: %c", ErrDuplicateGuess, c)
	}

	hit := false
	for i, t := range b.target {
		if t == c {
			b.revealed[i] = c
			hit = true
		}
	}
	if !hit {
		b.misses = append(b.misses, c)
	}
	return nil
}

// IsWon reports whether every letter of the target has been revealed.
func (b *Board) IsWon() bool {
	for i, c := range b.target {
		if b.revealed[i] != c {
			return false
		}
	}
	return true
}

// RemainingAttempts returns the miss budget left. It may be zero or less.
func (b *Board) RemainingAttempts() int {
	return MaxMisses - len(b.misses)
}

// Outcome returns whether the round is still being played, won or lost.
func (b *Board) Outcome() Outcome {
	switch {
	case b.IsWon():
		return OutcomeWon
	case b.RemainingAttempts() <= 0:
		return OutcomeLost
	default:
		return OutcomePlaying
	}
}

// WordAsDisplay returns the target letters separated by single spaces.
func (b *Board) WordAsDisplay() string {
	return spaced(b.target)
}

// Target returns the target word.
func (b *Board) Target() string {
	return string(b.target)
}

// Revealed returns the revealed slots with Placeholder for hidden ones.
func (b *Board) Revealed() string {
	out := make([]byte, len(b.revealed))
	for i, c := range b.revealed {
		if c == hidden {
			c = Placeholder
		}
		out[i] = c
	}
	return string(out)
}

// Misses returns the missed letters in the order they were guessed.
func (b *Board) Misses() string {
	return string(b.misses)
}

// Status is a read-only projection of a board for display.
type Status struct {
	MissCount int    // Number of misses, selects the gallows stage
	Word      string // Revealed slots separated by spaces
	Misses    string // Missed letters joined by MissSeparator
	Remaining int    // Miss budget left
	Outcome   Outcome
}

// RenderStatus returns the board's current display state.
func (b *Board) RenderStatus() Status {
	misses := make([]string, len(b.misses))
	for i, c := range b.misses {
		misses[i] = string(c)
	}
	return Status{
		MissCount: len(b.misses),
		Word:      spaced([]byte(b.Revealed())),
		Misses:    strings.Join(misses, MissSeparator),
		Remaining: b.RemainingAttempts(),
		Outcome:   b.Outcome(),
	}
}

func (b *Board) isRevealed(c byte) bool {
	for _, r := range b.revealed {
		if r == c {
			return true
		}
	}
	return false
}

func (b *Board) isMiss(c byte) bool {
	for _, m := range b.misses {
		if m == c {
			return true
		}
	}
	return false
}

func (b *Board) inTarget(c byte) bool {
	for _, t := range b.target {
		if t == c {
			return true
		}
	}
	return false
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// spaced joins single-byte letters with one space between each.
func spaced(letters []byte) string {
	var sb strings.Builder
	for i, c := range letters {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
