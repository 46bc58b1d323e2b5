package model

import "errors"

var (
	ErrGameFull    = errors.New("game is full")
	ErrNotInGame   = errors.New("player not in game")
	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game is over")
	ErrInvalidMode = errors.New("invalid game mode")
)
