package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// StageDef is one picture of the gallows, shown after a given number of misses.
type StageDef struct {
	Misses int      `json:"misses"` // Miss count this stage is shown for
	Color  string   `json:"color"`  // Hex color code (e.g., "#FF0000")
	Art    []string `json:"art"`    // Lines of ASCII art, top to bottom
}

// TCellColor returns the color as a tcell.Color.
func (s *StageDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// StagesFile represents the structure of stages.json.
type StagesFile struct {
	Stages []StageDef `json:"stages"`
}

// LoadStages loads stage definitions from the embedded stages.json file.
func LoadStages() ([]StageDef, error) {
	file, err := Load[StagesFile]("stages.json")
	if err != nil {
		return nil, err
	}
	return file.Stages, nil
}

// StageRegistry maps miss counts to gallows stages.
type StageRegistry struct {
	stages []StageDef
}

// NewStageRegistry creates a registry from stage definitions. Stages must
// be ordered by miss count starting at zero with no gaps.
func NewStageRegistry(stages []StageDef) (*StageRegistry, error) {
	if len(stages) == 0 {
		return nil, errors.New("no gallows stages defined")
	}
	for i, s := range stages {
		if s.Misses != i {
			return nil, fmt.Errorf("stage %d is for %d misses, want %d", i, s.Misses, i)
		}
	}
	return &StageRegistry{stages: stages}, nil
}

// LoadStageRegistry loads and creates a registry from the embedded stages.json.
func LoadStageRegistry() (*StageRegistry, error) {
	stages, err := LoadStages()
	if err != nil {
		return nil, err
	}
	return NewStageRegistry(stages)
}

// ForMisses returns the stage for a miss count. Counts past the last stage
// get the last stage, negative counts the first.
func (r *StageRegistry) ForMisses(misses int) *StageDef {
	switch {
	case misses < 0:
		misses = 0
	case misses >= len(r.stages):
		misses = len(r.stages) - 1
	}
	return &r.stages[misses]
}

// Count returns the number of stages.
func (r *StageRegistry) Count() int {
	return len(r.stages)
}
