package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/board"
	"github.com/samdwyer/hangman/internal/gamedata"
)

// View is everything drawn in one frame.
type View struct {
	Stage      *gamedata.StageDef // nil before a board is shown
	Status     *board.Status
	Transcript []string
	Prompt     string
	Input      string
}

// line is one row of text with its style.
type line struct {
	text  string
	style tcell.Style
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the view and places the cursor at the end of the input.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	for y, l := range layout(v, height) {
		r.drawText(0, y, width, l.text, l.style)
	}

	inputLine := v.Prompt + v.Input
	r.screen.ShowCursor(min(len([]rune(inputLine)), width-1), height-1)
	r.screen.Show()
}

// layout arranges the view into at most height rows: the board panel on
// top, the prompt on the last row and as much of the transcript tail as
// fits between them.
func layout(v View, height int) []line {
	if height <= 0 {
		return nil
	}

	var panel []line
	if v.Stage != nil {
		artStyle := tcell.StyleDefault.Foreground(v.Stage.TCellColor())
		for _, a := range v.Stage.Art {
			panel = append(panel, line{a, artStyle})
		}
	}
	if v.Status != nil {
		text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		word := text.Bold(true)
		panel = append(panel,
			line{"Word: " + v.Status.Word, word},
			line{"Misses: " + v.Status.Misses, text},
			line{fmt.Sprintf("Remaining miss chances: %d", v.Status.Remaining), remainingStyle(v.Status.Remaining)},
			line{},
		)
	}

	rows := make([]line, 0, height)
	for _, l := range panel {
		if len(rows) == height-1 {
			break
		}
		rows = append(rows, l)
	}

	transcript := v.Transcript
	if room := height - 1 - len(rows); len(transcript) > room {
		transcript = transcript[len(transcript)-room:]
	}
	for _, t := range transcript {
		rows = append(rows, line{t, tcell.StyleDefault.Foreground(tcell.ColorGray)})
	}

	for len(rows) < height-1 {
		rows = append(rows, line{})
	}
	return append(rows, line{v.Prompt + v.Input, tcell.StyleDefault.Foreground(tcell.ColorYellow)})
}

// remainingStyle turns the attempts counter red as the budget runs out.
func remainingStyle(remaining int) tcell.Style {
	switch {
	case remaining <= 1:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case remaining <= board.MaxMisses/2:
		return tcell.StyleDefault.Foreground(tcell.ColorOrange)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
