package gamedata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// WordRegistry holds the words eligible to be a round's target.
type WordRegistry struct {
	words []string
}

// NewWordRegistry keeps the alphabetic words whose length lies within
// [minLen, maxLen], uppercased. Blank lines and surrounding whitespace are
// ignored.
func NewWordRegistry(words []string, minLen, maxLen int) (*WordRegistry, error) {
	eligible := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if len(w) < minLen || len(w) > maxLen || !isAlpha(w) {
			continue
		}
		eligible = append(eligible, strings.ToUpper(w))
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("no words between %d and %d letters", minLen, maxLen)
	}
	return &WordRegistry{words: eligible}, nil
}

// LoadWordRegistry builds a registry from the embedded words.txt.
func LoadWordRegistry(minLen, maxLen int) (*WordRegistry, error) {
	content, err := loadText("words.txt")
	if err != nil {
		return nil, err
	}
	words, err := readLines(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	return NewWordRegistry(words, minLen, maxLen)
}

// LoadWordRegistryFile builds a registry from a newline-separated file on disk.
func LoadWordRegistryFile(path string, minLen, maxLen int) (*WordRegistry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return NewWordRegistry(words, minLen, maxLen)
}

// Random picks a word using rng.
func (r *WordRegistry) Random(rng *rand.Rand) string {
	return r.words[rng.Intn(len(r.words))]
}

// Contains reports whether word (any case) is in the registry.
func (r *WordRegistry) Contains(word string) bool {
	word = strings.ToUpper(word)
	for _, w := range r.words {
		if w == word {
			return true
		}
	}
	return false
}

// Count returns the number of eligible words.
func (r *WordRegistry) Count() int {
	return len(r.words)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.New("word list is empty")
	}
	return lines, nil
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
