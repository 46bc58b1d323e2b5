package engine

// pieceValues is the material worth of each kind in centipawns.
var pieceValues = [...]int{
	NoKind: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// Value returns the material worth of k in centipawns.
func (k PieceKind) Value() int {
	return pieceValues[k]
}

// Piece-square tables from white's point of view, indexed [rank][file] with
// rank 0 being the eighth rank. Black reads them vertically mirrored. Only
// pawns and knights carry a positional bonus.
var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var pieceSquareTables = [...]*[8][8]int{
	Pawn:   &pawnTable,
	Knight: &knightTable,
	King:   nil,
}

func positionalBonus(pc Piece, sq Square) int {
	table := pieceSquareTables[pc.Kind]
	if table == nil {
		return 0
	}
	r := sq.Rank
	if pc.Color == Black {
		r = 7 - r
	}
	return table[r][sq.File]
}

// Evaluate scores the position from white's point of view: material plus
// the pawn and knight piece-square bonuses, positive for white.
func (p *Position) Evaluate() int {
	score := 0
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			pc := p.board[r][f]
			if pc.IsZero() {
				continue
			}
			v := pc.Kind.Value() + positionalBonus(pc, Square{Rank: r, File: f})
			if pc.Color == White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
