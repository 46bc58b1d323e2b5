package engine

import "fmt"

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.Valid() {
		return false
	}

	for i, d := range allDirections {
		ortho := i < len(orthogonal)
		for t := sq.offset(d.dr, d.df); t.Valid(); t = t.offset(d.dr, d.df) {
			pc := p.at(t)
			if pc.IsZero() {
				continue
			}
			if pc.Color == by && (pc.Kind == Queen || (ortho && pc.Kind == Rook) || (!ortho && pc.Kind == Bishop)) {
				return true
			}
			break
		}
	}

	for _, d := range knightJumps {
		if t := sq.offset(d.dr, d.df); t.Valid() {
			if pc := p.at(t); pc.Kind == Knight && pc.Color == by {
				return true
			}
		}
	}

	// A pawn of by attacks one rank ahead of itself, so look one rank behind sq.
	back := -by.forward()
	for _, df := range [2]int{-1, 1} {
		if t := sq.offset(back, df); t.Valid() {
			if pc := p.at(t); pc.Kind == Pawn && pc.Color == by {
				return true
			}
		}
	}

	for _, d := range allDirections {
		if t := sq.offset(d.dr, d.df); t.Valid() {
			if pc := p.at(t); pc.Kind == King && pc.Color == by {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether c's king is attacked. A board without that king
// is treated as in check so callers find no safe move for it.
func (p *Position) InCheck(c Color) bool {
	k, ok := p.kingSquare(c)
	if !ok {
		logger.Printf("invariant violated: %v", fmt.Errorf("%w: %s", ErrMissingKing, c))
		return true
	}
	return p.IsSquareAttacked(k, c.Opposite())
}
