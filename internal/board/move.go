package board

import (
	"fmt"
	"strings"
)

// Move records a single ply. Moves are produced by the generator and treated as
// immutable values afterwards; ApplyMove stores its own copy (with undo context) in
// the position history.
type Move struct {
	From     Square
	To       Square
	Piece    Piece // piece that moved
	Captured Piece // NoPiece for quiet moves; the captured pawn for en passant

	EnPassant bool
	Castle    bool
	Promotion bool
	PromoteTo PieceType // must be set when Promotion is true; NoPieceType otherwise

	// Undo context, filled in by ApplyMove.
	prevCastling  CastlingRights
	prevEnPassant Square
	rookFrom      Square
}

// NoMove is the zero-value sentinel for "no move".
var NoMove = Move{From: NoSquare, To: NoSquare, Piece: NoPiece, Captured: NoPiece, PromoteTo: NoPieceType}

func newMove(from, to Square, piece, captured Piece) Move {
	return Move{
		From:          from,
		To:            to,
		Piece:         piece,
		Captured:      captured,
		PromoteTo:     NoPieceType,
		prevEnPassant: NoSquare,
		rookFrom:      NoSquare,
	}
}

// Equal reports whether two moves share start and end squares.
// The promotion piece does not participate.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To
}

// IsNone reports whether m is NoMove.
func (m Move) IsNone() bool {
	return !m.From.IsValid()
}

// IsCapture returns true if the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsDoubleAdvance returns true for a two-square pawn push.
func (m Move) IsDoubleAdvance() bool {
	return m.Piece.Type() == Pawn && abs(m.To.Row-m.From.Row) == 2
}

// IsKingside returns true for a castle toward the h-file.
func (m Move) IsKingside() bool {
	return m.Castle && m.To.Col > m.From.Col
}

// String returns the coordinate form of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}

	s := m.From.String() + m.To.String()
	if m.Promotion {
		s += strings.ToLower(string(m.PromoteTo.Letter()))
	}
	return s
}

// Notation renders a basic algebraic form: piece letter, capture marker,
// destination, "0-0"/"0-0-0" for castling and "=Q" for promotions.
// No disambiguation is attempted.
func (m Move) Notation() string {
	if m.IsNone() {
		return "-"
	}
	if m.Castle {
		if m.IsKingside() {
			return "0-0"
		}
		return "0-0-0"
	}

	var sb strings.Builder
	pt := m.Piece.Type()
	if pt != Pawn {
		sb.WriteByte(pt.Letter())
	} else if m.IsCapture() {
		sb.WriteByte(m.From.File())
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Promotion {
		sb.WriteByte('=')
		sb.WriteByte(m.PromoteTo.Letter())
	}
	return sb.String()
}

// ParseCoordinates splits a coordinate move string ("e2e4", "e7e8q") into squares.
// The promotion suffix is accepted but ignored because moves are identified by
// their squares alone.
func ParseCoordinates(s string) (Square, Square, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, fmt.Errorf("%w: invalid move string %q", ErrIllegalMove, s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoSquare, NoSquare, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoSquare, NoSquare, err
	}
	return from, to, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
