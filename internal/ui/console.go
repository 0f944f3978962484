package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/board"
	"github.com/samdwyer/hangman/internal/gamedata"
)

// ErrClosed is returned by ReadLine when the player quits.
var ErrClosed = errors.New("console closed")

// maxTranscript bounds how many past lines are kept for scrollback.
const maxTranscript = 500

// Console is a line-oriented terminal on top of a tcell screen.
type Console struct {
	screen     *Screen
	renderer   *Renderer
	stages     *gamedata.StageRegistry
	status     *board.Status
	transcript []string
	prompt     string
	input      []rune
}

// NewConsole creates a console drawing gallows stages from stages.
func NewConsole(screen *Screen, stages *gamedata.StageRegistry) *Console {
	return &Console{
		screen:   screen,
		renderer: NewRenderer(screen),
		stages:   stages,
	}
}

// Println appends lines to the transcript.
func (c *Console) Println(lines ...string) {
	c.transcript = append(c.transcript, lines...)
	if over := len(c.transcript) - maxTranscript; over > 0 {
		c.transcript = append(c.transcript[:0], c.transcript[over:]...)
	}
	c.draw()
}

// ShowStatus replaces the board panel.
func (c *Console) ShowStatus(status board.Status) {
	c.status = &status
	c.draw()
}

// Transcript returns the lines printed so far.
func (c *Console) Transcript() []string {
	return c.transcript
}

// ReadLine shows prompt and collects keys until Enter. Escape or Ctrl-C
// returns ErrClosed. The submitted line is echoed into the transcript.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.prompt = prompt
	c.input = c.input[:0]
	defer func() { c.prompt = "" }()

	for {
		c.draw()

		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return "", ErrClosed
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrClosed
			case tcell.KeyEnter:
				text := string(c.input)
				c.input = c.input[:0]
				c.transcript = append(c.transcript, prompt+text)
				return text, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if n := len(c.input); n > 0 {
					c.input = c.input[:n-1]
				}
			case tcell.KeyRune:
				c.input = append(c.input, ev.Rune())
			}
		}
	}
}

func (c *Console) draw() {
	v := View{
		Status:     c.status,
		Transcript: c.transcript,
		Prompt:     c.prompt,
		Input:      string(c.input),
	}
	if c.status != nil {
		v.Stage = c.stages.ForMisses(c.status.MissCount)
	}
	c.renderer.Render(v)
}
