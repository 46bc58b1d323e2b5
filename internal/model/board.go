package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessbot-backend/internal/engine"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func pieceType(k engine.PieceKind) PieceType {
	return PieceType(k.String())
}

// kind maps the client name (or a single letter) back to the engine kind.
func (p PieceType) kind() (engine.PieceKind, bool) {
	return engine.ParsePieceKind(string(p))
}

type BoardState struct {
	Board             [][]*Piece `json:"board"`
	BlackKingPosition Position   `json:"blackKingPosition"`
	WhiteKingPosition Position   `json:"whiteKingPosition"`
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    string    `json:"color"`
	Position Position  `json:"position"`
	HasMoved bool      `json:"hasMoved"`
}

// Position is a board coordinate as the client sees it: X is the file
// (0 = a), Y is the row from the top (0 = eighth rank).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func positionOf(sq engine.Square) Position {
	return Position{X: sq.File, Y: sq.Rank}
}

func (p Position) square() engine.Square {
	return engine.Square{Rank: p.Y, File: p.X}
}

func (p Position) valid() bool {
	return p.square().Valid()
}

func (p Position) String() string {
	return p.square().String()
}

// ParsePosition reads algebraic notation such as "e4".
func ParsePosition(s string) (Position, error) {
	sq, err := engine.ParseSquare(s)
	if err != nil {
		return Position{}, err
	}
	return positionOf(sq), nil
}

// UnmarshalJSON accepts both {"x":4,"y":6} and "e2".
func (p *Position) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		pos, err := ParsePosition(s)
		if err != nil {
			return err
		}
		*p = pos
		return nil
	}
	type plain Position
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	*p = Position(v)
	return nil
}

func pieceView(pc engine.Piece, sq engine.Square) *Piece {
	return &Piece{
		Type:     pieceType(pc.Kind),
		Color:    pc.Color.String(),
		Position: positionOf(sq),
		HasMoved: pc.HasMoved,
	}
}

func newBoardState(pos *engine.Position) *BoardState {
	board := &BoardState{Board: make([][]*Piece, 8)}
	cells := pos.Board()
	for y := 0; y < 8; y++ {
		board.Board[y] = make([]*Piece, 8)
		for x := 0; x < 8; x++ {
			pc := cells[y][x]
			if pc.IsZero() {
				continue
			}
			sq := engine.Square{Rank: y, File: x}
			board.Board[y][x] = pieceView(pc, sq)
			if pc.Kind == engine.King {
				if pc.Color == engine.White {
					board.WhiteKingPosition = positionOf(sq)
				} else {
					board.BlackKingPosition = positionOf(sq)
				}
			}
		}
	}
	return board
}
