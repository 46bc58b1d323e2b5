package engine

// Apply commits m to the position. The move must come from LegalMovesFor or
// LegalMoves; Apply does not validate it. Committed moves are recorded with
// their SAN in Played.
func (p *Position) Apply(m Move) {
	p.applyMove(m, false)
}

// Undo reverses the most recent move.
func (p *Position) Undo() error {
	if len(p.history) == 0 {
		return ErrNoHistory
	}
	p.undoMove()
	return nil
}

// simulate applies m without recording it and returns the only way to take
// it back. The restore func must be called exactly once, before any older
// simulation is restored.
func (p *Position) simulate(m Move) (restore func()) {
	p.applyMove(m, true)
	depth := len(p.history)
	released := false
	return func() {
		if released {
			panic("engine: simulated move restored twice")
		}
		if len(p.history) != depth {
			panic("engine: simulated move restored out of order")
		}
		released = true
		p.undoMove()
	}
}

func (p *Position) applyMove(m Move, simulate bool) {
	mover := p.at(m.From)
	var san string
	if !simulate {
		san = p.SAN(m)
	}

	e := historyEntry{
		move:       m,
		capturedAt: NoSquare,
		castling:   p.castling,
		enPassant:  p.enPassant,
		toMove:     p.toMove,
		halfmove:   p.halfmove,
		fullmove:   p.fullmove,
		moverMoved: mover.HasMoved,
		committed:  !simulate,
	}

	capAt := m.CaptureSquare()
	if victim := p.at(capAt); !victim.IsZero() {
		e.captured, e.capturedAt = victim, capAt
		p.clear(capAt)
	}

	p.clear(m.From)
	mover.HasMoved = true
	if m.Kind == Promotion {
		mover.Kind = m.Promotion
	}
	p.set(m.To, mover)

	if m.Kind == Castle {
		rookFrom, rookTo := m.RookSquares()
		rook := p.at(rookFrom)
		e.rookMoved = rook.HasMoved
		rook.HasMoved = true
		p.clear(rookFrom)
		p.set(rookTo, rook)
	}

	if m.Kind == DoublePawnPush {
		p.enPassant = Square{Rank: (m.From.Rank + m.To.Rank) / 2, File: m.From.File}
	} else {
		p.enPassant = NoSquare
	}

	switch m.Piece {
	case King:
		p.castling.revokeAll(mover.Color)
	case Rook:
		p.revokeRookRight(mover.Color, m.From)
	}
	if e.captured.Kind == Rook {
		p.revokeRookRight(e.captured.Color, e.capturedAt)
	}

	if m.Piece == Pawn || !e.captured.IsZero() {
		p.halfmove = 0
	} else {
		p.halfmove++
	}
	if mover.Color == Black {
		p.fullmove++
	}

	p.history = append(p.history, e)
	p.toMove = p.toMove.Opposite()
	if !simulate {
		p.played = append(p.played, PlayedMove{Move: m, Color: mover.Color, SAN: san})
	}
}

// revokeRookRight clears c's right for the rook whose home square is sq.
func (p *Position) revokeRookRight(c Color, sq Square) {
	if sq.Rank != c.homeRank() {
		return
	}
	switch sq.File {
	case Kingside.rookFile():
		p.castling.revoke(c, Kingside)
	case Queenside.rookFile():
		p.castling.revoke(c, Queenside)
	}
}

func (p *Position) undoMove() {
	e := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]
	m := e.move

	mover := p.at(m.To)
	p.clear(m.To)
	mover.HasMoved = e.moverMoved
	if m.Kind == Promotion {
		mover.Kind = Pawn
	}
	p.set(m.From, mover)

	if m.Kind == Castle {
		rookFrom, rookTo := m.RookSquares()
		rook := p.at(rookTo)
		rook.HasMoved = e.rookMoved
		p.clear(rookTo)
		p.set(rookFrom, rook)
	}

	if !e.captured.IsZero() {
		p.set(e.capturedAt, e.captured)
	}

	p.castling = e.castling
	p.enPassant = e.enPassant
	p.toMove = e.toMove
	p.halfmove = e.halfmove
	p.fullmove = e.fullmove
	if e.committed {
		p.played = p.played[:len(p.played)-1]
	}
}
