package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a position from Forsyth-Edwards Notation. The move
// counters are optional. Each side must have exactly one king.
//
// FEN carries no per-piece move flags, so HasMoved is derived: kings and
// rooks on their home squares are unmoved when a matching castling right is
// present, pawns are unmoved on their starting rank, everything else counts
// as unmoved. A position where the side not to move is in check is rejected:
// its king could be captured.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: want 4 to 6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	p := &Position{enPassant: NoSquare, fullmove: 1}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(rows))
	}
	var kings [2]int
	for r, row := range rows {
		f := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			color := White
			if c >= 'a' && c <= 'z' {
				color = Black
			}
			kind, ok := ParsePieceKind(string(c))
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, c)
			}
			if f >= 8 {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, 8-r)
			}
			if kind == King {
				kings[color]++
			}
			p.board[r][f] = Piece{Kind: kind, Color: color}
			f++
		}
		if f != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, 8-r, f)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, fmt.Errorf("%w: need one king per side", ErrInvalidFEN)
	}

	switch fields[1] {
	case "w":
		p.toMove = White
	case "b":
		p.toMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castling[White][Kingside] = true
			case 'Q':
				p.castling[White][Queenside] = true
			case 'k':
				p.castling[Black][Kingside] = true
			case 'q':
				p.castling[Black][Queenside] = true
			default:
				return nil, fmt.Errorf("%w: castling %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant: %v", ErrInvalidFEN, err)
		}
		p.enPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		p.halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		p.fullmove = n
	}

	p.deriveMoveFlags()
	if p.InCheck(p.toMove.Opposite()) {
		return nil, fmt.Errorf("%w: %s is in check but not to move", ErrInvalidFEN, p.toMove.Opposite())
	}
	return p, nil
}

func (p *Position) deriveMoveFlags() {
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			pc := &p.board[r][f]
			switch pc.Kind {
			case Pawn:
				pc.HasMoved = r != pc.Color.pawnRank()
			case King:
				home := r == pc.Color.homeRank() && f == kingFile
				pc.HasMoved = !home || !(p.castling.Has(pc.Color, Kingside) || p.castling.Has(pc.Color, Queenside))
			case Rook:
				pc.HasMoved = true
				if r == pc.Color.homeRank() {
					for _, side := range [2]CastleSide{Kingside, Queenside} {
						if f == side.rookFile() && p.castling.Has(pc.Color, side) {
							pc.HasMoved = false
						}
					}
				}
			}
		}
	}
}

// FEN renders the position in Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var b strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.board[r][f]
			if pc.IsZero() {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(pc.fenLetter())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if r != 7 {
			b.WriteByte('/')
		}
	}
	side := "w"
	if p.toMove == Black {
		side = "b"
	}
	fmt.Fprintf(&b, " %s %s %s %d %d", side, p.castling, p.enPassant, p.halfmove, p.fullmove)
	return b.String()
}
