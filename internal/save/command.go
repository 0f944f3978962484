package save

import (
	"fmt"
	"regexp"
	"strings"
)

// CommandPrefix marks raw input that should be routed to the store rather
// than treated as a guess.
const CommandPrefix = "-save"

var saveCommandPattern = regexp.MustCompile(`^` + regexp.QuoteMeta(CommandPrefix) + `\s(.+)$`)

// IsSaveCommand reports whether input is addressed to the store.
func IsSaveCommand(input string) bool {
	return strings.HasPrefix(input, CommandPrefix)
}

// ParseSaveCommand extracts the slot name from "-save <name>". The name is
// everything after the single separating whitespace character, verbatim.
func ParseSaveCommand(command string) (string, error) {
	m := saveCommandPattern.FindStringSubmatch(command)
	if m == nil {
		return "", fmt.Errorf("%w: expected %q", ErrInvalidSaveCommand, CommandPrefix+" <name>")
	}
	name := m[1]
	if err := validateSlotName(name); err != nil {
		return "", err
	}
	return name, nil
}

// validateSlotName keeps a slot inside the save directory.
func validateSlotName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`+"\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidSlotName, name)
	}
	return nil
}
