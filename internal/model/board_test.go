package model

import (
	"encoding/json"
	"testing"

	"github.com/benbeisheim/chessbot-backend/internal/engine"
)

func TestPositionJSON(t *testing.T) {
	var mv WSMove
	if err := json.Unmarshal([]byte(`{"from":"e2","to":{"x":4,"y":4},"promotion":"q"}`), &mv); err != nil {
		t.Fatal(err)
	}
	if mv.From != (Position{X: 4, Y: 6}) || mv.To != (Position{X: 4, Y: 4}) || mv.Promotion != "q" {
		t.Fatalf("decoded = %+v", mv)
	}
	if err := json.Unmarshal([]byte(`{"from":"z9"}`), &mv); err == nil {
		t.Fatalf("bad square should fail")
	}
	out, err := json.Marshal(Position{X: 0, Y: 7})
	if err != nil || string(out) != `{"x":0,"y":7}` {
		t.Fatalf("marshal = %s, %v", out, err)
	}
}

func TestBoardStateView(t *testing.T) {
	b := newBoardState(engine.NewPosition())
	if b.WhiteKingPosition != (Position{X: 4, Y: 7}) || b.BlackKingPosition != (Position{X: 4, Y: 0}) {
		t.Fatalf("kings at %v and %v", b.WhiteKingPosition, b.BlackKingPosition)
	}
	if pc := b.Board[0][3]; pc == nil || pc.Type != Queen || pc.Color != "black" || pc.Position != (Position{X: 3, Y: 0}) {
		t.Fatalf("d8 = %+v", pc)
	}
	if b.Board[4][4] != nil {
		t.Fatalf("e4 should be empty")
	}
}

func TestMoveHistoryStartingWithBlack(t *testing.T) {
	p, err := engine.ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, uci := range []string{"e8d8", "e1d1", "d8c8"} {
		if _, err := p.PlayUCI(uci); err != nil {
			t.Fatal(err)
		}
	}
	h := moveHistory(p.Played())
	if len(h) != 2 || h[0].WhitePly != nil || h[0].BlackPly.Notation != "Kd8" {
		t.Fatalf("history = %+v", h)
	}
	if h[1].WhitePly.Notation != "Kd1" || h[1].BlackPly.Notation != "Kc8" {
		t.Fatalf("second pair = %+v / %+v", h[1].WhitePly, h[1].BlackPly)
	}
}

func TestCastlePly(t *testing.T) {
	cases := []struct {
		fen, uci, san string
		from, to      Position
	}{
		{"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1c1", "O-O-O", Position{X: 0, Y: 7}, Position{X: 3, Y: 7}},
		{"4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1g1", "O-O", Position{X: 7, Y: 7}, Position{X: 5, Y: 7}},
		{"r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", "e8g8", "O-O", Position{X: 7, Y: 0}, Position{X: 5, Y: 0}},
		{"r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", "e8c8", "O-O-O", Position{X: 0, Y: 0}, Position{X: 3, Y: 0}},
	}
	for _, tc := range cases {
		p, err := engine.ParseFEN(tc.fen)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := p.PlayUCI(tc.uci); err != nil {
			t.Fatal(err)
		}
		ply := newPly(p.Played()[0])
		if ply.Notation != tc.san || ply.CastleRookMove == nil {
			t.Fatalf("%s: ply = %+v", tc.uci, ply)
		}
		if ply.CastleRookMove.From != tc.from || ply.CastleRookMove.To != tc.to {
			t.Fatalf("%s: rook move = %+v", tc.uci, ply.CastleRookMove)
		}
	}
}
