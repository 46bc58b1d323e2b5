package engine

type delta struct {
	dr, df int
}

var (
	orthogonal = []delta{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal   = []delta{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	// allDirections lists the orthogonal rays first; IsSquareAttacked relies on it.
	allDirections = append(append([]delta{}, orthogonal...), diagonal...)
	knightJumps   = []delta{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
)

// movement describes how a non-pawn piece travels.
type movement struct {
	deltas []delta
	slides bool
}

// movements is indexed by PieceKind. Pawns have their own generator.
var movements = [...]movement{
	Knight: {deltas: knightJumps},
	Bishop: {deltas: diagonal, slides: true},
	Rook:   {deltas: orthogonal, slides: true},
	Queen:  {deltas: allDirections, slides: true},
	King:   {deltas: allDirections},
}

// PseudoLegalMoves returns the moves the piece on sq could make by its
// movement rules alone, ignoring whether its own king is left in check.
func (p *Position) PseudoLegalMoves(sq Square) []Move {
	pc, ok := p.Piece(sq)
	if !ok {
		return nil
	}
	return p.pseudoMoves(sq, pc, nil)
}

// pseudoMoves appends the pseudo-legal moves of pc standing on from.
func (p *Position) pseudoMoves(from Square, pc Piece, moves []Move) []Move {
	switch pc.Kind {
	case Pawn:
		return p.pawnMoves(from, pc, moves)
	case Knight, Bishop, Rook, Queen:
		return p.stepMoves(from, pc, movements[pc.Kind], moves)
	case King:
		moves = p.stepMoves(from, pc, movements[King], moves)
		return p.castleMoves(from, pc, moves)
	}
	return moves
}

func (p *Position) stepMoves(from Square, pc Piece, mv movement, moves []Move) []Move {
	for _, d := range mv.deltas {
		for to := from.offset(d.dr, d.df); to.Valid(); to = to.offset(d.dr, d.df) {
			target := p.at(to)
			if target.IsZero() {
				moves = append(moves, Move{Kind: Normal, From: from, To: to, Piece: pc.Kind})
			} else {
				if target.Color != pc.Color {
					moves = append(moves, Move{Kind: Normal, From: from, To: to, Piece: pc.Kind, Captured: target})
				}
				break
			}
			if !mv.slides {
				break
			}
		}
	}
	return moves
}

func (p *Position) pawnMoves(from Square, pc Piece, moves []Move) []Move {
	dir := pc.Color.forward()

	one := from.offset(dir, 0)
	if one.Valid() && p.empty(one) {
		moves = appendPawnAdvance(moves, from, one, pc.Color, Piece{})
		two := from.offset(2*dir, 0)
		if from.Rank == pc.Color.pawnRank() && p.empty(two) {
			moves = append(moves, Move{Kind: DoublePawnPush, From: from, To: two, Piece: Pawn})
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.offset(dir, df)
		if !to.Valid() {
			continue
		}
		if target := p.at(to); !target.IsZero() {
			if target.Color != pc.Color {
				moves = appendPawnAdvance(moves, from, to, pc.Color, target)
			}
			continue
		}
		if to == p.enPassant {
			victim := p.at(Square{Rank: from.Rank, File: to.File})
			if victim.Kind == Pawn && victim.Color != pc.Color {
				moves = append(moves, Move{Kind: EnPassant, From: from, To: to, Piece: Pawn, Captured: victim})
			}
		}
	}
	return moves
}

// appendPawnAdvance fans a pawn move landing on the far rank out into one
// move per promotion kind.
func appendPawnAdvance(moves []Move, from, to Square, c Color, captured Piece) []Move {
	if to.Rank != c.promotionRank() {
		return append(moves, Move{Kind: Normal, From: from, To: to, Piece: Pawn, Captured: captured})
	}
	for _, k := range promotionKinds {
		moves = append(moves, Move{Kind: Promotion, From: from, To: to, Piece: Pawn, Captured: captured, Promotion: k})
	}
	return moves
}

func (p *Position) castleMoves(from Square, king Piece, moves []Move) []Move {
	if king.HasMoved || from != (Square{Rank: king.Color.homeRank(), File: kingFile}) {
		return moves
	}
	for _, side := range [2]CastleSide{Kingside, Queenside} {
		if p.CanCastle(king.Color, side) {
			to := Square{Rank: from.Rank, File: side.kingTargetFile()}
			moves = append(moves, Move{Kind: Castle, From: from, To: to, Piece: King, Side: side})
		}
	}
	return moves
}

// CanCastle reports whether c may castle on side right now: the right is
// held, king and rook are unmoved on their home squares, the squares between
// them are empty, and the king neither stands in, passes through, nor lands
// on an attacked square.
func (p *Position) CanCastle(c Color, side CastleSide) bool {
	if !p.castling.Has(c, side) {
		return false
	}
	rank := c.homeRank()
	if king := p.board[rank][kingFile]; king.Kind != King || king.Color != c || king.HasMoved {
		return false
	}
	if p.InCheck(c) {
		return false
	}
	rook := p.board[rank][side.rookFile()]
	if rook.Kind != Rook || rook.Color != c || rook.HasMoved {
		return false
	}

	lo, hi := kingFile+1, side.rookFile()-1
	if side == Queenside {
		lo, hi = side.rookFile()+1, kingFile-1
	}
	for f := lo; f <= hi; f++ {
		if !p.board[rank][f].IsZero() {
			return false
		}
	}

	opp := c.Opposite()
	step := 1
	if side == Queenside {
		step = -1
	}
	for f := kingFile + step; f != side.kingTargetFile()+step; f += step {
		if p.IsSquareAttacked(Square{Rank: rank, File: f}, opp) {
			return false
		}
	}
	return true
}
