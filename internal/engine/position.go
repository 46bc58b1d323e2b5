// Package engine implements the chess rules and the computer opponent: a
// mutable position with a reversible history, pseudo-legal move generation,
// check detection, legality filtering, static evaluation and an alpha-beta
// minimax search.
//
// A Position is not safe for concurrent use. Search and legality checks
// mutate it in place and restore it before returning; callers that want to
// search in parallel must give each worker its own Clone.
package engine

// Position is a full chess position plus the undo log needed to reverse
// every applied move.
type Position struct {
	board     [8][8]Piece
	toMove    Color
	castling  CastlingRights
	enPassant Square
	halfmove  int
	fullmove  int

	history []historyEntry
	played  []PlayedMove
}

// historyEntry is everything applyMove overwrites.
type historyEntry struct {
	move       Move
	captured   Piece
	capturedAt Square
	castling   CastlingRights
	enPassant  Square
	toMove     Color
	halfmove   int
	fullmove   int
	moverMoved bool
	rookMoved  bool
	committed  bool
}

var backRank = [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset reinitializes the starting position and drops all history.
func (p *Position) Reset() {
	*p = Position{
		toMove:    White,
		castling:  allCastlingRights,
		enPassant: NoSquare,
		fullmove:  1,
	}
	for f, kind := range backRank {
		p.board[0][f] = Piece{Kind: kind, Color: Black}
		p.board[1][f] = Piece{Kind: Pawn, Color: Black}
		p.board[6][f] = Piece{Kind: Pawn, Color: White}
		p.board[7][f] = Piece{Kind: kind, Color: White}
	}
}

// Clone returns an independent deep copy, history included.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]historyEntry(nil), p.history...)
	c.played = append([]PlayedMove(nil), p.played...)
	return &c
}

// Piece returns the piece on sq. ok is false for empty or off-board squares.
func (p *Position) Piece(sq Square) (pc Piece, ok bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	pc = p.at(sq)
	return pc, !pc.IsZero()
}

// Board returns a copy of the piece grid indexed [rank][file].
func (p *Position) Board() [8][8]Piece {
	return p.board
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() Color {
	return p.toMove
}

// Castling returns the current castling rights.
func (p *Position) Castling() CastlingRights {
	return p.castling
}

// EnPassantTarget returns the square a pawn may capture into this ply.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.enPassant, p.enPassant.Valid()
}

// Plies returns the depth of the undo log.
func (p *Position) Plies() int {
	return len(p.history)
}

// Played lists committed moves, oldest first.
func (p *Position) Played() []PlayedMove {
	return append([]PlayedMove(nil), p.played...)
}

func (p *Position) at(sq Square) Piece {
	return p.board[sq.Rank][sq.File]
}

func (p *Position) set(sq Square, pc Piece) {
	p.board[sq.Rank][sq.File] = pc
}

func (p *Position) clear(sq Square) {
	p.board[sq.Rank][sq.File] = Piece{}
}

func (p *Position) empty(sq Square) bool {
	return p.board[sq.Rank][sq.File].IsZero()
}

func (p *Position) kingSquare(c Color) (Square, bool) {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if pc := p.board[r][f]; pc.Kind == King && pc.Color == c {
				return Square{Rank: r, File: f}, true
			}
		}
	}
	return NoSquare, false
}
