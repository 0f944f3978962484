package board

import "errors"

// Guess and construction errors. All are recoverable: the caller shows the
// message and asks again.
var (
	ErrInvalidGuessFormat = errors.New("a guess must be a single letter")
	ErrDuplicateGuess     = errors.New("letter was already guessed")
	ErrAlreadyWon         = errors.New("word was already guessed correctly")
	ErrAlreadyLost        = errors.New("man was already hanged")
	ErrInvalidWord        = errors.New("target word must be one or more letters")
	ErrInvalidState       = errors.New("board state is inconsistent")
)
