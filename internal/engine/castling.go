package engine

import "strings"

// CastleSide selects the rook a king castles with.
type CastleSide uint8

const (
	Kingside CastleSide = iota
	Queenside
)

func (s CastleSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

func (s CastleSide) rookFile() int {
	if s == Kingside {
		return 7
	}
	return 0
}

func (s CastleSide) kingTargetFile() int {
	if s == Kingside {
		return 6
	}
	return 2
}

func (s CastleSide) rookTargetFile() int {
	if s == Kingside {
		return 5
	}
	return 3
}

const kingFile = 4

// CastlingRights holds the independent kingside/queenside flags per color.
// Rights are only ever revoked while a game is played.
type CastlingRights [2][2]bool

// Has reports whether c may still castle on side s.
func (r CastlingRights) Has(c Color, s CastleSide) bool {
	return r[c][s]
}

func (r *CastlingRights) revoke(c Color, s CastleSide) {
	r[c][s] = false
}

func (r *CastlingRights) revokeAll(c Color) {
	r[c][Kingside] = false
	r[c][Queenside] = false
}

// String renders the rights in FEN form ("KQkq", "-").
func (r CastlingRights) String() string {
	var b strings.Builder
	if r[White][Kingside] {
		b.WriteByte('K')
	}
	if r[White][Queenside] {
		b.WriteByte('Q')
	}
	if r[Black][Kingside] {
		b.WriteByte('k')
	}
	if r[Black][Queenside] {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

var allCastlingRights = CastlingRights{{true, true}, {true, true}}
