package engine

import (
	"fmt"
	"strings"
)

// SAN formats m in standard algebraic notation for the current position,
// including disambiguation and the check or mate suffix. m must be legal.
func (p *Position) SAN(m Move) string {
	var b strings.Builder
	switch {
	case m.Kind == Castle && m.Side == Kingside:
		b.WriteString("O-O")
	case m.Kind == Castle:
		b.WriteString("O-O-O")
	default:
		if m.Piece != Pawn {
			b.WriteByte(m.Piece.Letter())
			b.WriteString(p.disambiguation(m))
		}
		if m.IsCapture() {
			if m.Piece == Pawn {
				b.WriteByte(byte('a' + m.From.File))
			}
			b.WriteByte('x')
		}
		b.WriteString(m.To.String())
		if m.Kind == Promotion {
			b.WriteByte('=')
			b.WriteByte(m.Promotion.Letter())
		}
	}
	b.WriteString(p.checkSuffix(m))
	return b.String()
}

func (p *Position) disambiguation(m Move) string {
	mover := p.at(m.From)
	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range p.LegalMoves(mover.Color) {
		if other.Piece != m.Piece || other.To != m.To || other.From == m.From {
			continue
		}
		ambiguous = true
		if other.From.File == m.From.File {
			sameFile = true
		}
		if other.From.Rank == m.From.Rank {
			sameRank = true
		}
	}
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return m.From.String()[:1]
	case !sameRank:
		return m.From.String()[1:]
	}
	return m.From.String()
}

func (p *Position) checkSuffix(m Move) string {
	opp := p.at(m.From).Color.Opposite()
	restore := p.simulate(m)
	defer restore()
	if !p.InCheck(opp) {
		return ""
	}
	if len(p.LegalMoves(opp)) == 0 {
		return "#"
	}
	return "+"
}

// FindMove resolves a UCI move string ("e2e4", "e7e8q") against the legal
// moves of the side to move. A promotion without a piece letter is rejected.
func (p *Position) FindMove(uci string) (Move, error) {
	if len(uci) != 4 && len(uci) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, uci)
	}
	from, err := ParseSquare(uci[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(uci[2:4])
	if err != nil {
		return Move{}, err
	}
	promo := NoKind
	if len(uci) == 5 {
		k, ok := ParsePieceKind(uci[4:])
		if !ok {
			return Move{}, fmt.Errorf("%w: promotion in %q", ErrIllegalMove, uci)
		}
		promo = k
	}
	for _, m := range p.LegalMovesFor(from) {
		if m.To == to && m.Promotion == promo {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
}

// PlayUCI finds and commits a move given in UCI form.
func (p *Position) PlayUCI(uci string) (Move, error) {
	m, err := p.FindMove(uci)
	if err != nil {
		return Move{}, err
	}
	p.Apply(m)
	return m, nil
}
