package engine

// Status describes the situation of the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

var statusNames = [...]string{
	Ongoing:   "ongoing",
	Check:     "check",
	Checkmate: "checkmate",
	Stalemate: "stalemate",
}

func (s Status) String() string {
	return statusNames[s]
}

// Over reports whether the game has ended.
func (s Status) Over() bool {
	return s == Checkmate || s == Stalemate
}

// Status evaluates check, checkmate and stalemate for the side to move.
func (p *Position) Status() Status {
	inCheck := p.InCheck(p.toMove)
	if len(p.LegalMoves(p.toMove)) == 0 {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if inCheck {
		return Check
	}
	return Ongoing
}

// Winner returns the side that delivered checkmate.
func (p *Position) Winner() (Color, bool) {
	if p.Status() != Checkmate {
		return White, false
	}
	return p.toMove.Opposite(), true
}
