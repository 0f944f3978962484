package save

import (
	"fmt"
	"strconv"
)

// Prompter shows the available slots and reads the user's choice.
type Prompter interface {
	// PromptSelection lists slots numbered from 1 and returns the raw reply.
	PromptSelection(slots []string) (string, error)
	// RejectSelection reports why a reply was not accepted.
	RejectSelection(err error)
}

// ParseSelection converts a 1-based reply into an index into a list of
// count slots.
func ParseSelection(input string, count int) (int, error) {
	if input == "" {
		return 0, fmt.Errorf("%w: selection must be a positive number", ErrInvalidSelection)
	}
	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return 0, fmt.Errorf("%w: selection must be a positive number", ErrInvalidSelection)
		}
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("%w: selection out of bounds", ErrInvalidSelection)
	}
	return n - 1, nil
}

// Select prompts until p returns a valid choice and returns its index
// along with the number of prompts it took.
func Select(slots []string, p Prompter) (index, attempts int, err error) {
	if len(slots) == 0 {
		return 0, 0, ErrNoSlots
	}
	for {
		attempts++
		reply, err := p.PromptSelection(slots)
		if err != nil {
			return 0, attempts, err
		}
		index, err := ParseSelection(reply, len(slots))
		if err != nil {
			p.RejectSelection(err)
			continue
		}
		return index, attempts, nil
	}
}
