package save

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/hangman/internal/board"
)

// snapshot is the on-disk form of a board. Pointer fields distinguish a
// missing key from an empty list.
type snapshot struct {
	Target   *[]string `yaml:"target,flow"`
	Revealed *[]string `yaml:"revealed,flow"`
	Misses   *[]string `yaml:"misses,flow"`
}

// Encode serializes the full state of b.
func Encode(b *board.Board) ([]byte, error) {
	target := letters(b.Target())
	revealed := letters(b.Revealed())
	misses := letters(b.Misses())

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(snapshot{Target: &target, Revealed: &revealed, Misses: &misses}); err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reconstructs a board, returning ErrCorruptSave when the data does
// not describe a reachable board.
func Decode(data []byte) (*board.Board, error) {
	var snap snapshot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrCorruptSave)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}

	target, err := join("target", snap.Target)
	if err != nil {
		return nil, err
	}
	revealed, err := join("revealed", snap.Revealed)
	if err != nil {
		return nil, err
	}
	misses, err := join("misses", snap.Misses)
	if err != nil {
		return nil, err
	}

	b, err := board.Restore(target, revealed, misses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	return b, nil
}

// join checks that every entry of a field is a single character.
func join(field string, entries *[]string) (string, error) {
	if entries == nil {
		return "", fmt.Errorf("%w: missing %s", ErrCorruptSave, field)
	}
	var sb strings.Builder
	for i, e := range *entries {
		if len(e) != 1 {
			return "", fmt.Errorf("%w: %s[%d] = %q is not a single character", ErrCorruptSave, field, i, e)
		}
		sb.WriteString(e)
	}
	return sb.String(), nil
}

func letters(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i : i+1]
	}
	return out
}
