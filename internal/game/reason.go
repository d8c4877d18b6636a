package game

import "github.com/hailam/chessmate/internal/board"

// Reason explains why a requested move was rejected.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonWouldLeaveKingInCheck
	ReasonBlockedByOwnPiece
	ReasonInvalidPieceMovement
	ReasonNotYourTurn
	ReasonGameOver
)

// String returns a short human-readable explanation.
func (r Reason) String() string {
	switch r {
	case ReasonWouldLeaveKingInCheck:
		return "king would be in check"
	case ReasonBlockedByOwnPiece:
		return "square occupied by own piece"
	case ReasonInvalidPieceMovement:
		return "piece cannot move that way"
	case ReasonNotYourTurn:
		return "not your turn"
	case ReasonGameOver:
		return "game is over"
	default:
		return "no piece to move"
	}
}

// Explain classifies why src to dst is not a legal move. It should only be called
// for moves FindMove rejected.
func (g *Game) Explain(src, dst board.Square) Reason {
	if g.Over() {
		return ReasonGameOver
	}

	piece := g.pos.PieceAt(src)
	if piece == board.NoPiece || src == dst {
		return ReasonUnknown
	}
	if piece.Color() != g.pos.SideToMove() {
		return ReasonNotYourTurn
	}

	dest := g.pos.PieceAt(dst)
	if dest != board.NoPiece && dest.Color() == piece.Color() {
		return ReasonBlockedByOwnPiece
	}

	// An illegal king step can only land on an attacked square.
	if piece.Type() == board.King && abs(dst.Row-src.Row) <= 1 && abs(dst.Col-src.Col) <= 1 {
		return ReasonWouldLeaveKingInCheck
	}

	// Pins and checks are the only filters left once the movement rules allow it.
	for _, m := range g.pos.GenerateUnpinnedMoves() {
		if m.From == src && m.To == dst {
			return ReasonWouldLeaveKingInCheck
		}
	}
	return ReasonInvalidPieceMovement
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
