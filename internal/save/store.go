// Package save persists boards as named slot files in a per-game directory.
package save

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/hangman/internal/board"
	"github.com/samdwyer/hangman/internal/telemetry"
)

const (
	// Extension is appended to slot names to form file names.
	Extension = ".sv"

	// readBatch is how many directory entries Slots reads at a time.
	readBatch = 32
)

// Store manages the slot files under one directory.
type Store struct {
	dir string
}

// New creates a store rooted at <home>/<root>/<namespace>. Nothing is
// created on disk until EnsureDirectory is called.
func New(home, root, namespace string) *Store {
	return &Store{dir: filepath.Join(home, root, namespace)}
}

// Dir returns the directory holding the slot files.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file location for a slot name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

// EnsureDirectory creates the save directory and its parents if needed.
func (s *Store) EnsureDirectory() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create save directory %s: %w", s.dir, err)
	}
	return nil
}

// Slots yields the names of the slots currently on disk, in directory
// order. Each iteration rereads the directory. A missing directory yields
// nothing.
func (s *Store) Slots() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		dir, err := os.Open(s.dir)
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		if err != nil {
			yield("", fmt.Errorf("open save directory: %w", err))
			return
		}
		defer dir.Close()

		for {
			entries, err := dir.ReadDir(readBatch)
			for _, e := range entries {
				name, ok := strings.CutSuffix(e.Name(), Extension)
				if !ok || name == "" || !e.Type().IsRegular() {
					continue
				}
				if !yield(name, nil) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", fmt.Errorf("read save directory: %w", err))
				}
				return
			}
		}
	}
}

// SortedSlots collects Slots into a sorted list.
func (s *Store) SortedSlots() ([]string, error) {
	var names []string
	for name, err := range s.Slots() {
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Save writes b to the slot named by a "-save <name>" command, replacing
// any existing slot of that name, and returns the file written.
func (s *Store) Save(ctx context.Context, command string, b *board.Board) (string, error) {
	_, span := telemetry.Tracer("save").Start(ctx, "save.write")
	defer span.End()

	name, err := ParseSaveCommand(command)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.String("save.slot", name))

	data, err := Encode(b)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	path := s.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("write save %s: %w", path, err)
	}
	return path, nil
}

// Load asks p to pick one of slots, retrying until the choice is valid,
// and returns the reconstructed board with the file it came from. slots
// is expected to be sorted already.
func (s *Store) Load(ctx context.Context, slots []string, p Prompter) (*board.Board, string, error) {
	_, span := telemetry.Tracer("save").Start(ctx, "save.load")
	defer span.End()

	index, attempts, err := Select(slots, p)
	span.SetAttributes(attribute.Int("save.attempts", attempts))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, "", err
	}

	name := slots[index]
	span.SetAttributes(attribute.String("save.slot", name))

	b, err := s.LoadSlot(name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, "", err
	}
	return b, s.Path(name), nil
}

// LoadSlot reads a single slot by name.
func (s *Store) LoadSlot(name string) (*board.Board, error) {
	if err := validateSlotName(name); err != nil {
		return nil, err
	}
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save %s: %w", path, err)
	}
	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
