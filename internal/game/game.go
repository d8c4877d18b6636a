// Package game wraps a board.Position with the bookkeeping a front end needs:
// the cached legal move list, check and game-over flags, and the notation log.
package game

import (
	"errors"
	"fmt"

	"github.com/hailam/chessmate/internal/board"
)

var (
	// ErrMoveNotFound is returned when a move is not in the current legal list.
	ErrMoveNotFound = errors.New("move not found")
	// ErrGameOver is returned when a move is played after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
)

// Result is the outcome of a game.
type Result uint8

const (
	Undecided Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the result in the usual score form.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Game is a single chess session. It is not safe for concurrent use.
type Game struct {
	pos *board.Position

	// Refreshed after every state change.
	legal   []board.Move
	inCheck bool
	status  board.Status

	notation []string
}

// New creates a game at the starting position.
func New() *Game {
	g := &Game{pos: board.NewPosition()}
	g.refresh()
	return g
}

// FromPosition creates a game that continues from pos. The game takes ownership of pos.
func FromPosition(pos *board.Position) *Game {
	g := &Game{pos: pos}
	for _, m := range pos.History() {
		g.notation = append(g.notation, m.Notation())
	}
	g.refresh()
	return g
}

// Reset returns to the starting position and clears the history.
func (g *Game) Reset() {
	g.pos.Reset()
	g.notation = nil
	g.refresh()
}

func (g *Game) refresh() {
	g.legal, g.inCheck, g.status = g.pos.Analyze()
}

// Board returns a snapshot of the board.
func (g *Game) Board() board.Grid {
	return g.pos.Board()
}

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq board.Square) board.Piece {
	return g.pos.PieceAt(sq)
}

// SideToMove returns the color to play.
func (g *Game) SideToMove() board.Color {
	return g.pos.SideToMove()
}

// KingSquare returns the king location for c.
func (g *Game) KingSquare(c board.Color) board.Square {
	return g.pos.KingSquare(c)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.inCheck
}

// Checkmate reports whether the side to move has been checkmated.
func (g *Game) Checkmate() bool {
	return g.status == board.Checkmate
}

// Stalemate reports whether the side to move has no moves and is not in check.
func (g *Game) Stalemate() bool {
	return g.status == board.Stalemate
}

// Status returns the current game status.
func (g *Game) Status() board.Status {
	return g.status
}

// Over reports whether no further moves can be played.
func (g *Game) Over() bool {
	return g.status != board.Ongoing
}

// Result returns the outcome implied by the current position.
func (g *Game) Result() Result {
	switch g.status {
	case board.Checkmate:
		if g.pos.SideToMove() == board.White {
			return BlackWins
		}
		return WhiteWins
	case board.Stalemate:
		return Draw
	}
	return Undecided
}

// ResultText describes a finished game, or returns "" while it is in progress.
func (g *Game) ResultText() string {
	switch g.Result() {
	case WhiteWins:
		return "White wins by checkmate!"
	case BlackWins:
		return "Black wins by checkmate!"
	case Draw:
		return "Draw by stalemate"
	}
	return ""
}

// LegalMoves returns a copy of the legal moves for the side to move.
func (g *Game) LegalMoves() []board.Move {
	return append([]board.Move(nil), g.legal...)
}

// MovesFrom returns the legal moves starting on sq.
func (g *Game) MovesFrom(sq board.Square) []board.Move {
	var moves []board.Move
	for _, m := range g.legal {
		if m.From == sq {
			moves = append(moves, m)
		}
	}
	return moves
}

// FindMove returns the legal move from src to dst. Dropping the king on its own
// rook's corner is read as castling toward that rook.
func (g *Game) FindMove(src, dst board.Square) (board.Move, bool) {
	for _, m := range g.legal {
		if m.From != src {
			continue
		}
		if m.To == dst {
			return m, true
		}
		if m.Castle && dst.Row == src.Row && castleCorner(m) == dst.Col {
			return m, true
		}
	}
	return board.NoMove, false
}

func castleCorner(m board.Move) int {
	if m.IsKingside() {
		return 7
	}
	return 0
}

// Play applies m, which must match a move in the current legal list.
// The generated move is applied, so callers may pass a move built from squares alone.
func (g *Game) Play(m board.Move) error {
	if g.Over() {
		return ErrGameOver
	}

	found, ok := g.FindMove(m.From, m.To)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMoveNotFound, m)
	}

	if err := g.pos.ApplyMove(found); err != nil {
		return err
	}
	g.refresh()
	g.notation = append(g.notation, found.Notation()+g.suffix())
	return nil
}

// PlayCoordinates parses a coordinate move such as "e2e4" and plays it.
func (g *Game) PlayCoordinates(s string) (board.Move, error) {
	from, to, err := board.ParseCoordinates(s)
	if err != nil {
		return board.NoMove, err
	}
	if err := g.Play(board.Move{From: from, To: to}); err != nil {
		return board.NoMove, err
	}
	return g.pos.LastMove(), nil
}

// suffix marks the move just played as giving check or mate.
func (g *Game) suffix() string {
	switch {
	case g.status == board.Checkmate:
		return "#"
	case g.inCheck:
		return "+"
	}
	return ""
}

// Undo takes back the last move. It returns false if there is nothing to undo.
func (g *Game) Undo() bool {
	if !g.pos.UndoMove() {
		return false
	}
	g.notation = g.notation[:len(g.notation)-1]
	g.refresh()
	return true
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []board.Move {
	return g.pos.History()
}

// Notation returns the notation log, one entry per ply.
func (g *Game) Notation() []string {
	return append([]string(nil), g.notation...)
}

// LastMove returns the most recent move, or board.NoMove.
func (g *Game) LastMove() board.Move {
	return g.pos.LastMove()
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return g.pos.Ply()
}

// Perft counts leaf nodes below the current position without disturbing it.
func (g *Game) Perft(depth int) int64 {
	return board.Perft(g.pos.Clone(), depth)
}

// Divide reports perft counts per root move.
func (g *Game) Divide(depth int) []board.DivideEntry {
	return board.Divide(g.pos.Clone(), depth)
}

// String renders the board.
func (g *Game) String() string {
	return g.pos.String()
}
