package engine

import (
	"errors"
	"log"
	"os"
)

var (
	ErrNoHistory     = errors.New("no move to undo")
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidFEN    = errors.New("invalid FEN")
	// ErrMissingKing signals a broken board invariant, never a game outcome.
	ErrMissingKing = errors.New("king missing from board")
)

var logger = log.New(os.Stderr, "engine: ", log.LstdFlags)

// SetLogger replaces the logger used to report invariant violations.
func SetLogger(l *log.Logger) {
	logger = l
}
