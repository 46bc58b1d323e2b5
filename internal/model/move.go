package model

import "github.com/benbeisheim/chessbot-backend/internal/engine"

// WSMove is a move request from a client. Promotion may be empty, in which
// case a pawn reaching the last rank becomes a queen.
type WSMove struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion"`
}

type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

type Ply struct {
	Piece          *Piece          `json:"piece"`
	From           Position        `json:"from"`
	To             Position        `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion"`
	Notation       string          `json:"notation"`
}

// Move pairs white's ply with black's reply. BlackPly is nil until black
// has moved.
type Move struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

type SimpleMove struct {
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func simpleMove(m engine.Move) SimpleMove {
	s := SimpleMove{From: positionOf(m.From), To: positionOf(m.To)}
	if m.Kind == engine.Promotion {
		s.Promotion = pieceType(m.Promotion)
	}
	return s
}

func newPly(pm engine.PlayedMove) *Ply {
	m := pm.Move
	mover := engine.Piece{Kind: m.Piece, Color: pm.Color, HasMoved: true}
	if m.Kind == engine.Promotion {
		mover.Kind = m.Promotion
	}
	ply := &Ply{
		Piece:    pieceView(mover, m.To),
		From:     positionOf(m.From),
		To:       positionOf(m.To),
		Notation: pm.SAN,
	}
	if m.IsCapture() {
		ply.CapturedPiece = pieceView(m.Captured, m.CaptureSquare())
	}
	if m.Kind == engine.Promotion {
		ply.Promotion = pieceType(m.Promotion)
	}
	if m.Kind == engine.Castle {
		from, to := m.RookSquares()
		ply.CastleRookMove = &CastleRookMove{From: positionOf(from), To: positionOf(to)}
	}
	return ply
}

// moveHistory groups plies into numbered move pairs. A game that starts
// with black to move leaves the first WhitePly nil.
func moveHistory(played []engine.PlayedMove) []Move {
	history := make([]Move, 0, (len(played)+1)/2)
	for _, pm := range played {
		ply := newPly(pm)
		if pm.Color == engine.White {
			history = append(history, Move{WhitePly: ply})
			continue
		}
		if n := len(history); n > 0 && history[n-1].BlackPly == nil {
			history[n-1].BlackPly = ply
			continue
		}
		history = append(history, Move{BlackPly: ply})
	}
	return history
}
