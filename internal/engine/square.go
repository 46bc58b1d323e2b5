package engine

import "fmt"

// Square addresses one cell of the board. Rank 0 is black's back rank (the
// eighth rank in algebraic notation) and rank 7 is white's; file 0 is the
// a-file.
type Square struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

// NoSquare is the absent square, used for a missing en-passant target.
var NoSquare = Square{Rank: -1, File: -1}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Rank >= 0 && s.Rank < 8 && s.File >= 0 && s.File < 8
}

func (s Square) offset(dr, df int) Square {
	return Square{Rank: s.Rank + dr, File: s.File + df}
}

// String formats the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, 8-s.Rank)
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return Square{Rank: 8 - int(text[1]-'0'), File: int(text[0] - 'a')}, nil
}
