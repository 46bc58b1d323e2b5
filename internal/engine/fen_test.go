package engine

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 12 40",
	}
	for _, fen := range fens {
		if got := mustFEN(t, fen).FEN(); got != fen {
			t.Errorf("round trip:\n got %s\nwant %s", got, fen)
		}
	}
}

func TestFENOptionalCounters(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b - -")
	if got, want := p.FEN(), "4k3/8/8/8/8/8/8/4K3 b - - 0 1"; got != want {
		t.Fatalf("FEN = %q, want %q", got, want)
	}
}

func TestFENInvalid(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 x - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w X - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - z9 0 1",
		"4k3/8/8/8/8/8/8/4K4 w - - 0 1",
		"4k3/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - -1 1",
		"4k3/8/8/8/8/8/8/4KK2 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2X w - - 0 1",
		"3r1k2/4P3/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/4R1K1 w - - 0 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) err = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestFENDerivesMoveFlags(t *testing.T) {
	p := mustFEN(t, "r3k2r/8/8/8/8/8/4P3/R3K2R w Kq - 0 1")
	cases := []struct {
		square string
		moved  bool
	}{
		{"e1", false},
		{"h1", false},
		{"a1", true},
		{"a8", false},
		{"h8", true},
		{"e8", false},
		{"e2", false},
	}
	for _, c := range cases {
		pc, ok := p.Piece(sq(t, c.square))
		if !ok {
			t.Fatalf("%s empty", c.square)
		}
		if pc.HasMoved != c.moved {
			t.Errorf("%s HasMoved = %v, want %v", c.square, pc.HasMoved, c.moved)
		}
	}
}
