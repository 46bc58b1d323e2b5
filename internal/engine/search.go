package engine

import "math/rand"

const (
	// MateScore is returned for a side with no legal move while in check:
	// negative when white is mated, positive when black is.
	MateScore = 99999
	infinity  = 1 << 30
)

// Searcher runs depth-limited minimax with alpha-beta pruning. A Searcher
// carries its own random source for root move shuffling and must not be
// shared between goroutines.
type Searcher struct {
	rng *rand.Rand

	// Nodes counts positions visited since the Searcher was created.
	Nodes int
}

// NewSearcher returns a Searcher whose root shuffling is driven by seed.
func NewSearcher(seed int64) *Searcher {
	return &Searcher{rng: rand.New(rand.NewSource(seed))}
}

// Minimax scores the position depth plies deep, from white's point of view.
// The maximizing side is white.
func (s *Searcher) Minimax(p *Position, depth, alpha, beta int, maximizing bool) int {
	s.Nodes++
	if depth == 0 {
		return p.Evaluate()
	}

	color := Black
	if maximizing {
		color = White
	}
	moves := p.LegalMoves(color)
	if len(moves) == 0 {
		if p.InCheck(color) {
			if maximizing {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	if maximizing {
		best := -infinity
		for _, m := range moves {
			restore := p.simulate(m)
			score := s.Minimax(p, depth-1, alpha, beta, false)
			restore()
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := infinity
	for _, m := range moves {
		restore := p.simulate(m)
		score := s.Minimax(p, depth-1, alpha, beta, true)
		restore()
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

// BestMove picks a move for c by searching depth plies. Moves are shuffled
// first so that equally scored moves vary between games. ok is false when c
// has no legal move. Depths below one are treated as one.
func (s *Searcher) BestMove(p *Position, c Color, depth int) (best Move, ok bool) {
	moves := p.LegalMoves(c)
	if len(moves) == 0 {
		return Move{}, false
	}
	if depth < 1 {
		depth = 1
	}
	s.shuffle(moves)

	bestScore := -infinity
	if c == Black {
		bestScore = infinity
	}
	best = moves[0]
	for _, m := range moves {
		restore := p.simulate(m)
		score := s.Minimax(p, depth-1, -infinity, infinity, c != White)
		restore()
		if (c == White && score > bestScore) || (c == Black && score < bestScore) {
			best, bestScore = m, score
		}
	}
	return best, true
}

func (s *Searcher) shuffle(moves []Move) {
	swap := func(i, j int) { moves[i], moves[j] = moves[j], moves[i] }
	if s.rng == nil {
		rand.Shuffle(len(moves), swap)
		return
	}
	s.rng.Shuffle(len(moves), swap)
}

// BestMove searches with a fresh Searcher using the global random source.
func (p *Position) BestMove(c Color, depth int) (Move, bool) {
	var s Searcher
	return s.BestMove(p, c, depth)
}
