package engine

// LegalMovesFor returns the legal moves of the piece on sq. Off-board or
// empty squares, and pieces not belonging to the side to move, yield no
// moves.
func (p *Position) LegalMovesFor(sq Square) []Move {
	pc, ok := p.Piece(sq)
	if !ok || pc.Color != p.toMove {
		return nil
	}
	return p.filterLegal(pc.Color, p.pseudoMoves(sq, pc, nil))
}

// LegalMoves returns every legal move for c.
func (p *Position) LegalMoves(c Color) []Move {
	var moves []Move
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if pc := p.board[r][f]; !pc.IsZero() && pc.Color == c {
				moves = p.pseudoMoves(Square{Rank: r, File: f}, pc, moves)
			}
		}
	}
	return p.filterLegal(c, moves)
}

// filterLegal keeps the moves after which c's king is not in check. It
// filters in place.
func (p *Position) filterLegal(c Color, moves []Move) []Move {
	legal := moves[:0]
	for _, m := range moves {
		restore := p.simulate(m)
		exposed := p.InCheck(c)
		restore()
		if !exposed {
			legal = append(legal, m)
		}
	}
	return legal
}
