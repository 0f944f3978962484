// Package game runs an interactive round: loading a save, taking guesses
// and save commands, and reporting the result.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hangman/internal/board"
	"github.com/samdwyer/hangman/internal/config"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/save"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
)

// Console is the interactive surface a game talks to.
type Console interface {
	// ReadLine shows prompt and returns the submitted line. It returns
	// ui.ErrClosed when the player quits.
	ReadLine(prompt string) (string, error)
	// Println appends lines to the transcript.
	Println(lines ...string)
	// ShowStatus updates the board display.
	ShowStatus(status board.Status)
}

// Game holds the state of one interactive session.
type Game struct {
	console Console
	store   *save.Store
	words   *gamedata.WordRegistry
	rng     *rand.Rand
	log     zerolog.Logger
	board   *board.Board
	closers []func()
}

// New creates a game on the terminal from configuration.
func New(cfg config.Config, log zerolog.Logger) (*Game, error) {
	words, err := loadWords(cfg)
	if err != nil {
		return nil, err
	}

	store := save.New(cfg.Home, cfg.SaveRoot, cfg.Namespace)
	if err := store.EnsureDirectory(); err != nil {
		return nil, err
	}

	stages, err := gamedata.LoadStageRegistry()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := NewWithConsole(ui.NewConsole(screen, stages), store, words, rand.New(rand.NewSource(seed)), log)
	g.closers = append(g.closers, screen.Close)
	return g, nil
}

// NewWithConsole creates a game on the given console.
func NewWithConsole(console Console, store *save.Store, words *gamedata.WordRegistry, rng *rand.Rand, log zerolog.Logger) *Game {
	return &Game{
		console: console,
		store:   store,
		words:   words,
		rng:     rng,
		log:     log,
	}
}

func loadWords(cfg config.Config) (*gamedata.WordRegistry, error) {
	if cfg.WordsFile != "" {
		return gamedata.LoadWordRegistryFile(cfg.WordsFile, cfg.MinWordLength, cfg.MaxWordLength)
	}
	return gamedata.LoadWordRegistry(cfg.MinWordLength, cfg.MaxWordLength)
}

// Board returns the board currently in play, or nil before Run has started one.
func (g *Game) Board() *board.Board {
	return g.board
}

// Run plays one round to completion. Quitting from the console ends the
// round early without error.
func (g *Game) Run(ctx context.Context) error {
	err := g.run(ctx)
	if errors.Is(err, ui.ErrClosed) {
		g.log.Info().Msg("player quit")
		return nil
	}
	return err
}

func (g *Game) run(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.start")

	note, err := gamedata.RenderNote(gamedata.NoteData{
		MaxMisses:   board.MaxMisses,
		SaveCommand: save.CommandPrefix,
		SaveDir:     g.store.Dir(),
	})
	if err != nil {
		span.End()
		return err
	}
	g.console.Println(strings.Split(strings.TrimRight(note, "\n"), "\n")...)
	g.console.Println("")

	if err := g.offerLoad(ctx); err != nil {
		span.End()
		return err
	}
	if g.board == nil {
		b, err := board.New(g.words.Random(g.rng))
		if err != nil {
			span.End()
			return err
		}
		g.board = b
		g.log.Info().Int("letters", len(b.Target())).Msg("new game")
	}

	span.SetAttributes(
		attribute.Int("board.letters", len(g.board.Target())),
		attribute.Int("board.remaining", g.board.RemainingAttempts()),
	)
	span.End()

	for !g.board.Outcome().Terminal() {
		g.console.ShowStatus(g.board.RenderStatus())

		input, err := g.console.ReadLine("Make your guess: ")
		if err != nil {
			return err
		}
		if err := g.respond(ctx, input); err != nil {
			g.log.Debug().Str("input", input).Err(err).Msg("input rejected")
			g.console.Println(FormatError(err), "Try again...", "")
			continue
		}
		g.console.Println("")
	}

	g.finish()
	_, err = g.console.ReadLine("Press Enter to exit ")
	return err
}

// offerLoad asks whether to resume a saved game when any exist.
func (g *Game) offerLoad(ctx context.Context) error {
	slots, err := g.store.SortedSlots()
	if err != nil {
		g.log.Warn().Err(err).Msg("listing saves failed")
		return nil
	}
	if len(slots) == 0 {
		return nil
	}

	reply, err := g.console.ReadLine("Would you like to load a save file? [Y/n] ")
	if err != nil {
		return err
	}
	if strings.ToUpper(reply) != "Y" {
		g.console.Println("")
		return nil
	}

	g.console.Println("")
	b, path, err := g.store.Load(ctx, slots, consolePrompter{g.console})
	if err != nil {
		if errors.Is(err, ui.ErrClosed) {
			return err
		}
		g.log.Warn().Err(err).Msg("load failed")
		g.console.Println(FormatError(err), "Starting a new game instead.", "")
		return nil
	}

	g.board = b
	g.log.Info().Str("path", path).Msg("game loaded")
	g.console.Println("Loaded from "+path, "")
	return nil
}

// respond routes one line of input to the store or the board.
func (g *Game) respond(ctx context.Context, input string) error {
	if save.IsSaveCommand(input) {
		path, err := g.store.Save(ctx, input, g.board)
		if err != nil {
			return err
		}
		g.log.Info().Str("path", path).Msg("game saved")
		g.console.Println("Saved to " + path)
		return nil
	}

	_, span := telemetry.Tracer("game").Start(ctx, "board.guess")
	defer span.End()

	before := len(g.board.Misses())
	if err := g.board.Guess(input); err != nil {
		span.SetAttributes(attribute.String("guess.error", err.Error()))
		return err
	}
	span.SetAttributes(
		attribute.String("guess.letter", strings.ToUpper(input)),
		attribute.Bool("guess.hit", len(g.board.Misses()) == before),
		attribute.Int("board.remaining", g.board.RemainingAttempts()),
	)
	return nil
}

// finish reports how the round ended.
func (g *Game) finish() {
	g.console.ShowStatus(g.board.RenderStatus())

	outcome := g.board.Outcome()
	g.log.Info().Str("outcome", outcome.String()).Int("misses", len(g.board.Misses())).Msg("game over")

	switch outcome {
	case board.OutcomeWon:
		g.console.Println("Game Over! You Win!")
	case board.OutcomeLost:
		g.console.Println("Game Over! You Lose!", "The word was "+g.board.WordAsDisplay())
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	for _, c := range g.closers {
		c()
	}
	g.closers = nil
}

// FormatError renders a core error for the player.
func FormatError(err error) string {
	return fmt.Sprintf("[HANGMAN ERROR] %v", err)
}

// consolePrompter runs the save selection menu on a console.
type consolePrompter struct {
	console Console
}

func (p consolePrompter) PromptSelection(slots []string) (string, error) {
	p.console.Println("Please select a save file to load")
	for i, name := range slots {
		p.console.Println(fmt.Sprintf("%d) %s%s", i+1, name, save.Extension))
	}
	return p.console.ReadLine("> ")
}

func (p consolePrompter) RejectSelection(err error) {
	p.console.Println(FormatError(err), "Try again...", "")
}
