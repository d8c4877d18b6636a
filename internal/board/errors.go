package board

import "errors"

// Sentinel errors returned by the board package. Inspect them with errors.Is.
var (
	// ErrIllegalMove indicates a move that does not fit the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidPosition indicates a layout that breaks a board invariant.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidSquare indicates a malformed square name.
	ErrInvalidSquare = errors.New("invalid square")
)
