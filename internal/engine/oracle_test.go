package engine

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

var perftPositions = []struct {
	name   string
	fen    string
	counts []uint64
}{
	{"start", StartFEN, []uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039}},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264}},
	{"discovered", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
}

func TestPerft(t *testing.T) {
	for _, pos := range perftPositions {
		p := mustFEN(t, pos.fen)
		for i, want := range pos.counts {
			depth := i + 1
			if got := p.Perft(depth); got != want {
				t.Errorf("%s perft(%d) = %d, want %d", pos.name, depth, got, want)
			}
		}
		if p.FEN() != pos.fen {
			t.Errorf("%s: perft changed the position to %s", pos.name, p.FEN())
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := mustFEN(t, perftPositions[1].fen)
	var total uint64
	for _, n := range p.PerftDivide(2) {
		total += n
	}
	if total != 2039 {
		t.Fatalf("divide total = %d, want 2039", total)
	}
}

func oracleMoves(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	sort.Strings(out)
	return out
}

func findOracleMove(b *dragontoothmg.Board, uci string) (dragontoothmg.Move, bool) {
	moves := b.GenerateLegalMoves()
	for i := range moves {
		if moves[i].String() == uci {
			return moves[i], true
		}
	}
	return 0, false
}

// TestMovesMatchOracle plays random games and compares the legal move set
// with an independent generator at every ply.
func TestMovesMatchOracle(t *testing.T) {
	games, plies := 20, 80
	if testing.Short() {
		games = 3
	}
	rng := rand.New(rand.NewSource(1))
	for _, pos := range perftPositions {
		for g := 0; g < games; g++ {
			p := mustFEN(t, pos.fen)
			oracle := dragontoothmg.ParseFen(pos.fen)
			for ply := 0; ply < plies; ply++ {
				ours := ucis(p.LegalMoves(p.SideToMove()))
				theirs := oracleMoves(&oracle)
				if strings.Join(ours, " ") != strings.Join(theirs, " ") {
					t.Fatalf("%s game %d ply %d (%s):\nours   %v\noracle %v", pos.name, g, ply, p.FEN(), ours, theirs)
				}
				if len(ours) == 0 {
					break
				}
				uci := ours[rng.Intn(len(ours))]
				if _, err := p.PlayUCI(uci); err != nil {
					t.Fatal(err)
				}
				om, ok := findOracleMove(&oracle, uci)
				if !ok {
					t.Fatalf("oracle cannot play %s", uci)
				}
				oracle.Apply(om)
			}
		}
	}
}
