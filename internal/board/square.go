// Package board implements a mailbox chess position with ray-cast legal move generation.
package board

import "fmt"

// Square addresses one of the 64 board squares.
// Row 0 is the far rank (rank 8, black's back rank); row 7 is rank 1.
// Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare marks the absence of a square (e.g. no en passant target).
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// IsValid returns true if the square lies on the board.
func (sq Square) IsValid() bool {
	return sq.Row >= 0 && sq.Row < 8 && sq.Col >= 0 && sq.Col < 8
}

// File returns the file letter of the square ('a'..'h').
func (sq Square) File() byte {
	return 'a' + byte(sq.Col)
}

// Rank returns the rank digit of the square ('1'..'8').
func (sq Square) Rank() byte {
	return '8' - byte(sq.Row)
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{sq.File(), sq.Rank()})
}

// Offset returns the square n steps away in direction d. The result may be off the board.
func (sq Square) Offset(d Direction, n int) Square {
	return Square{Row: sq.Row + d.Row*n, Col: sq.Col + d.Col*n}
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	sq := Square{Row: int('8') - int(s[1]), Col: int(s[0]) - int('a')}
	if !sq.IsValid() {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

// Direction is a (row, col) step.
type Direction struct {
	Row int
	Col int
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{Row: -d.Row, Col: -d.Col}
}

// IsDiagonal reports whether both components are non-zero.
func (d Direction) IsDiagonal() bool {
	return d.Row != 0 && d.Col != 0
}

var (
	orthogonals = [4]Direction{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	diagonals   = [4]Direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	// Queen directions: orthogonals first, then diagonals.
	queenDirections = [8]Direction{
		{-1, 0}, {0, -1}, {1, 0}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}

	knightOffsets = [8]Direction{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)
