package engine

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor accepts "white"/"w" and "black"/"b".
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return White, false
}

// forward is the rank step of a pawn advance. White plays up the board,
// towards rank index 0.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) homeRank() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) pawnRank() int {
	if c == White {
		return 6
	}
	return 1
}

func (c Color) promotionRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceKind is the closed set of chess piece types. NoKind marks an empty
// square or an absent optional kind (no capture, no promotion).
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{
	NoKind: "",
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

var kindLetters = [...]byte{
	NoKind: ' ',
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

func (k PieceKind) String() string {
	return kindNames[k]
}

// Letter returns the upper-case English piece letter used by FEN and SAN.
func (k PieceKind) Letter() byte {
	return kindLetters[k]
}

// promotionKinds lists promotion targets in the order moves are emitted.
var promotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// ParsePieceKind accepts full names ("queen") and letters in either case ("q", "Q").
func ParsePieceKind(s string) (PieceKind, bool) {
	for k := Pawn; k <= King; k++ {
		if s == kindNames[k] {
			return k, true
		}
	}
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		for k := Pawn; k <= King; k++ {
			if kindLetters[k] == c {
				return k, true
			}
		}
	}
	return NoKind, false
}

// Piece is a value owned by a single board square.
type Piece struct {
	Kind     PieceKind
	Color    Color
	HasMoved bool
}

// IsZero reports whether p represents an empty square.
func (p Piece) IsZero() bool {
	return p.Kind == NoKind
}

// fenLetter is upper case for white, lower case for black.
func (p Piece) fenLetter() byte {
	l := p.Kind.Letter()
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}
