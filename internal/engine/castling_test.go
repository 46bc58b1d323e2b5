package engine

import "testing"

func TestCastlingConditions(t *testing.T) {
	cases := []struct {
		name      string
		fen       string
		kingside  bool
		queenside bool
	}{
		{"both available", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"king in check", "4k3/8/8/4r3/8/8/8/R3K2R w KQ - 0 1", false, false},
		{"f1 attacked", "4k3/8/8/5r2/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"g1 attacked", "4k3/8/8/6r1/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"d1 attacked", "4k3/8/8/3r4/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"c1 attacked", "4k3/8/8/2r5/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"b1 attacked only", "4k3/8/8/1r6/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"g1 occupied", "4k3/8/8/8/8/8/8/R3K1NR w KQ - 0 1", false, true},
		{"b1 occupied", "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1", true, false},
		{"d1 occupied by enemy", "4k3/8/8/8/8/8/8/R2nK2R w KQ - 0 1", true, false},
		{"rights cleared", "4k3/8/8/8/8/8/8/R3K2R w Q - 0 1", false, true},
		{"rook missing", "4k3/8/8/8/8/8/8/4K2R w KQ - 0 1", true, false},
		{"black both", "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", true, true},
		{"black path attacked", "r3k2r/8/8/8/8/8/8/4KR2 b kq - 0 1", false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustFEN(t, c.fen)
			color := p.SideToMove()
			if got := p.CanCastle(color, Kingside); got != c.kingside {
				t.Errorf("kingside = %v, want %v", got, c.kingside)
			}
			if got := p.CanCastle(color, Queenside); got != c.queenside {
				t.Errorf("queenside = %v, want %v", got, c.queenside)
			}
			home := p.SideToMove().homeRank()
			kingMoves := p.LegalMovesFor(Square{Rank: home, File: kingFile})
			k := Square{Rank: home, File: kingFile}.String()
			if hasMove(kingMoves, k+Square{Rank: home, File: 6}.String()) != c.kingside {
				t.Errorf("kingside castle move presence != %v", c.kingside)
			}
			if hasMove(kingMoves, k+Square{Rank: home, File: 2}.String()) != c.queenside {
				t.Errorf("queenside castle move presence != %v", c.queenside)
			}
		})
	}
}

func TestCastlingMovesRook(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m, err := p.PlayUCI("e1g1")
	if err != nil {
		t.Fatal(err)
	}
	if m.Kind != Castle || m.Side != Kingside {
		t.Fatalf("e1g1 = %+v, want kingside castle", m)
	}
	if pc, ok := p.Piece(sq(t, "f1")); !ok || pc.Kind != Rook || !pc.HasMoved {
		t.Fatalf("f1 = %+v, want moved rook", pc)
	}
	if _, ok := p.Piece(sq(t, "h1")); ok {
		t.Fatalf("h1 should be empty after castling")
	}
	if got := p.Castling().String(); got != "kq" {
		t.Fatalf("rights = %s, want kq", got)
	}

	if _, err := p.PlayUCI("e8c8"); err != nil {
		t.Fatal(err)
	}
	if pc, ok := p.Piece(sq(t, "d8")); !ok || pc.Kind != Rook || pc.Color != Black {
		t.Fatalf("d8 = %+v, want black rook", pc)
	}
	if got := p.Castling().String(); got != "-" {
		t.Fatalf("rights = %s, want -", got)
	}
}

func TestCastlingRightsRevocation(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	steps := []struct {
		uci  string
		want string
	}{
		{"h1h2", "Qkq"},
		{"a8a7", "Qk"},
		{"h2h1", "Qk"},
		{"h8h1", "Q"},
	}
	for _, s := range steps {
		if _, err := p.PlayUCI(s.uci); err != nil {
			t.Fatalf("%s: %v", s.uci, err)
		}
		if got := p.Castling().String(); got != s.want {
			t.Fatalf("after %s rights = %s, want %s", s.uci, got, s.want)
		}
	}
	if p.CanCastle(White, Kingside) {
		t.Fatalf("white kingside must stay revoked after the rook returns")
	}
}

func TestCapturingHomeRookRevokesOpponentRight(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1")
	if _, err := p.PlayUCI("g2a8"); err != nil {
		t.Fatal(err)
	}
	if got := p.Castling().String(); got != "KQk" {
		t.Fatalf("rights = %s, want KQk", got)
	}
	if err := p.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := p.Castling().String(); got != "KQkq" {
		t.Fatalf("rights after undo = %s, want KQkq", got)
	}
}
