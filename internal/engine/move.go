package engine

// MoveKind tags the shape of a Move. Only the fields relevant to a kind are
// populated: Promotion for Promotion moves, Side for Castle moves.
type MoveKind uint8

const (
	// Normal is a plain move or an ordinary capture.
	Normal MoveKind = iota
	DoublePawnPush
	EnPassant
	Castle
	Promotion
)

var moveKindNames = [...]string{
	Normal:         "normal",
	DoublePawnPush: "double-pawn-push",
	EnPassant:      "en-passant",
	Castle:         "castle",
	Promotion:      "promotion",
}

func (k MoveKind) String() string {
	return moveKindNames[k]
}

// Move is a single ply. Captured is the zero Piece when nothing is taken;
// for EnPassant it holds the pawn removed from beside the origin square.
type Move struct {
	Kind      MoveKind
	From      Square
	To        Square
	Piece     PieceKind
	Captured  Piece
	Promotion PieceKind
	Side      CastleSide
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsZero()
}

// CaptureSquare is where the captured piece stands. It differs from To only
// for en passant, where the victim shares the origin's rank.
func (m Move) CaptureSquare() Square {
	if m.Kind == EnPassant {
		return Square{Rank: m.From.Rank, File: m.To.File}
	}
	return m.To
}

// UCI renders the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

func (m Move) String() string {
	return m.UCI()
}

// RookSquares reports where the rook of a castling move starts and lands.
// It is meaningless for other move kinds.
func (m Move) RookSquares() (from, to Square) {
	return Square{Rank: m.From.Rank, File: m.Side.rookFile()},
		Square{Rank: m.From.Rank, File: m.Side.rookTargetFile()}
}

// PlayedMove is the externally visible record of a committed move.
type PlayedMove struct {
	Move  Move
	Color Color
	SAN   string
}
