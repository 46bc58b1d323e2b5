package engine

import "testing"

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want int
	}{
		{"start is balanced", StartFEN, 0},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
		{"extra white queen", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", 900},
		{"extra black rook", "r3k3/8/8/8/8/8/8/4K3 w - - 0 1", -500},
		{"central white pawn", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", 120},
		{"mirrored pawns", "4k3/8/8/4p3/4P3/8/8/4K3 w - - 0 1", 0},
		{"rim knight", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", 270},
		{"bishop has no table", "4k3/8/8/8/3B4/8/8/4K3 w - - 0 1", 330},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := mustFEN(t, c.fen).Evaluate(); got != c.want {
				t.Fatalf("Evaluate() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestEvaluateIgnoresSideToMove(t *testing.T) {
	w := mustFEN(t, "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1").Evaluate()
	b := mustFEN(t, "4k3/8/8/8/4P3/8/8/4K3 b - - 0 1").Evaluate()
	if w != b {
		t.Fatalf("evaluation depends on side to move: %d vs %d", w, b)
	}
}

func TestPieceValues(t *testing.T) {
	want := map[PieceKind]int{Pawn: 100, Knight: 320, Bishop: 330, Rook: 500, Queen: 900, King: 20000}
	for k, v := range want {
		if k.Value() != v {
			t.Errorf("%s value = %d, want %d", k, k.Value(), v)
		}
	}
}
