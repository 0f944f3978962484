package board

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, word string) *Board {
	t.Helper()
	b, err := New(word)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", word, err)
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b := mustNew(t, "apple")

	if b.Target() != "APPLE" {
		t.Errorf("Target() = %q, want %q", b.Target(), "APPLE")
	}
	if b.IsWon() {
		t.Error("new board should not be won")
	}
	if b.RemainingAttempts() != MaxMisses {
		t.Errorf("RemainingAttempts() = %d, want %d", b.RemainingAttempts(), MaxMisses)
	}
	if b.Revealed() != "_____" {
		t.Errorf("Revealed() = %q, want %q", b.Revealed(), "_____")
	}
	if b.Misses() != "" {
		t.Errorf("Misses() = %q, want empty", b.Misses())
	}
	if b.Outcome() != OutcomePlaying {
		t.Errorf("Outcome() = %v, want playing", b.Outcome())
	}
}

func TestNewBoardRejectsBadWords(t *testing.T) {
	for _, word := range []string{"", "ab1", "two words", "café"} {
		if _, err := New(word); !errors.Is(err, ErrInvalidWord) {
			t.Errorf("New(%q) error = %v, want ErrInvalidWord", word, err)
		}
	}
}

func TestWordAsDisplay(t *testing.T) {
	b := mustNew(t, "Letter")
	if got := b.WordAsDisplay(); got != "L E T T E R" {
		t.Errorf("WordAsDisplay() = %q, want %q", got, "L E T T E R")
	}
}

func TestValidateGuess(t *testing.T) {
	tests := []struct {
		input string
		want  byte
		valid bool
	}{
		{"a", 'A', true},
		{"Z", 'Z', true},
		{"m", 'M', true},
		{"ab", 0, false},
		{"1", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{" ", 0, false},
		{"[", 0, false},
		{"é", 0, false},
	}

	for _, tt := range tests {
		got, err := ValidateGuess(tt.input)
		if tt.valid {
			if err != nil {
				t.Errorf("ValidateGuess(%q) unexpected error: %v", tt.input, err)
			} else if got != tt.want {
				t.Errorf("ValidateGuess(%q) = %c, want %c", tt.input, got, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidGuessFormat) {
			t.Errorf("ValidateGuess(%q) error = %v, want ErrInvalidGuessFormat", tt.input, err)
		}
	}
}

func TestGuessRevealsAllOccurrences(t *testing.T) {
	b := mustNew(t, "LETTER")

	if err := b.Guess("e"); err != nil {
		t.Fatalf("Guess(e) failed: %v", err)
	}
	if b.Revealed() != "_E__E_" {
		t.Errorf("Revealed() = %q, want %q", b.Revealed(), "_E__E_")
	}
	if b.RemainingAttempts() != MaxMisses {
		t.Errorf("a hit should not cost an attempt, remaining = %d", b.RemainingAttempts())
	}
}

func TestGuessMissIsRecordedInOrder(t *testing.T) {
	b := mustNew(t, "APPLE")

	for _, g := range []string{"z", "Q", "x"} {
		if err := b.Guess(g); err != nil {
			t.Fatalf("Guess(%s) failed: %v", g, err)
		}
	}
	if b.Misses() != "ZQX" {
		t.Errorf("Misses() = %q, want %q", b.Misses(), "ZQX")
	}
	if b.RemainingAttempts() != MaxMisses-3 {
		t.Errorf("RemainingAttempts() = %d, want %d", b.RemainingAttempts(), MaxMisses-3)
	}
}

func TestGuessDuplicate(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
	}{
		{"hit same case", "a", "a"},
		{"hit other case", "a", "A"},
		{"miss same case", "z", "z"},
		{"miss other case", "Z", "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustNew(t, "APPLE")
			if err := b.Guess(tt.first); err != nil {
				t.Fatalf("Guess(%s) failed: %v", tt.first, err)
			}
			before := b.RenderStatus()

			err := b.Guess(tt.second)
			if !errors.Is(err, ErrDuplicateGuess) {
				t.Fatalf("Guess(%s) error = %v, want ErrDuplicateGuess", tt.second, err)
			}
			if after := b.RenderStatus(); after != before {
				t.Errorf("duplicate guess changed board: %+v -> %+v", before, after)
			}
		})
	}
}

func TestGuessInvalidFormat(t *testing.T) {
	b := mustNew(t, "APPLE")
	for _, in := range []string{"ab", "1", ""} {
		if err := b.Guess(in); !errors.Is(err, ErrInvalidGuessFormat) {
			t.Errorf("Guess(%q) error = %v, want ErrInvalidGuessFormat", in, err)
		}
	}
	if b.RemainingAttempts() != MaxMisses {
		t.Errorf("invalid guesses should not cost attempts, remaining = %d", b.RemainingAttempts())
	}
}

func TestGuessEveryLetterWins(t *testing.T) {
	words := []string{"APPLE", "LETTER", "MISSISSIPPI", "A", "BOOKKEEPER"}

	for _, word := range words {
		b := mustNew(t, word)
		seen := map[rune]bool{}
		for _, c := range word {
			if seen[c] {
				continue
			}
			seen[c] = true
			if err := b.Guess(string(c)); err != nil {
				t.Fatalf("%s: Guess(%c) failed: %v", word, c, err)
			}
		}
		if !b.IsWon() {
			t.Errorf("%s: expected win after guessing every letter, revealed %q", word, b.Revealed())
		}
		if b.Outcome() != OutcomeWon {
			t.Errorf("%s: Outcome() = %v, want won", word, b.Outcome())
		}
		if err := b.Guess("q"); !errors.Is(err, ErrAlreadyWon) {
			t.Errorf("%s: guess after win error = %v, want ErrAlreadyWon", word, err)
		}
	}
}

func TestGuessSixMissesLoses(t *testing.T) {
	b := mustNew(t, "APPLE")
	for _, g := range []string{"b", "c", "d", "f", "g", "h"} {
		if err := b.Guess(g); err != nil {
			t.Fatalf("Guess(%s) failed: %v", g, err)
		}
	}

	if b.RemainingAttempts() != 0 {
		t.Errorf("RemainingAttempts() = %d, want 0", b.RemainingAttempts())
	}
	if b.Outcome() != OutcomeLost {
		t.Errorf("Outcome() = %v, want lost", b.Outcome())
	}
	for _, g := range []string{"a", "b", "zz"} {
		if err := b.Guess(g); !errors.Is(err, ErrAlreadyLost) {
			t.Errorf("Guess(%q) after loss error = %v, want ErrAlreadyLost", g, err)
		}
	}
}

func TestRenderStatus(t *testing.T) {
	b := mustNew(t, "APPLE")
	for _, g := range []string{"p", "z", "q"} {
		if err := b.Guess(g); err != nil {
			t.Fatalf("Guess(%s) failed: %v", g, err)
		}
	}

	want := Status{
		MissCount: 2,
		Word:      "_ P P _ _",
		Misses:    "Z,Q",
		Remaining: 4,
		Outcome:   OutcomePlaying,
	}
	if got := b.RenderStatus(); got != want {
		t.Errorf("RenderStatus() = %+v, want %+v", got, want)
	}
}

func TestRestore(t *testing.T) {
	b, err := Restore("APPLE", "A____", "Z")
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if b.Target() != "APPLE" || b.Revealed() != "A____" || b.Misses() != "Z" {
		t.Errorf("Restore gave %q/%q/%q", b.Target(), b.Revealed(), b.Misses())
	}
	if b.RemainingAttempts() != MaxMisses-1 {
		t.Errorf("RemainingAttempts() = %d, want %d", b.RemainingAttempts(), MaxMisses-1)
	}
	if err := b.Guess("a"); !errors.Is(err, ErrDuplicateGuess) {
		t.Errorf("restored reveal should count as guessed, got %v", err)
	}
	if err := b.Guess("z"); !errors.Is(err, ErrDuplicateGuess) {
		t.Errorf("restored miss should count as guessed, got %v", err)
	}
}

func TestRestoreRejectsInconsistentState(t *testing.T) {
	tests := []struct {
		name                     string
		target, revealed, misses string
	}{
		{"empty target", "", "", ""},
		{"lowercase target", "apple", "_____", ""},
		{"digit in target", "APP1E", "_____", ""},
		{"short revealed", "APPLE", "____", ""},
		{"long revealed", "APPLE", "______", ""},
		{"wrong letter revealed", "APPLE", "B____", ""},
		{"partial reveal", "APPLE", "_P___", ""},
		{"miss in target", "APPLE", "_____", "A"},
		{"repeated miss", "APPLE", "_____", "ZZ"},
		{"lowercase miss", "APPLE", "_____", "z"},
		{"placeholder miss", "APPLE", "_____", "_"},
		{"too many misses", "APPLE", "_____", "BCDFGHI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.target, tt.revealed, tt.misses)
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("Restore(%q, %q, %q) error = %v, want ErrInvalidState",
					tt.target, tt.revealed, tt.misses, err)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomePlaying, "playing"},
		{OutcomeWon, "won"},
		{OutcomeLost, "lost"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}
