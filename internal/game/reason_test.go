package game

import (
	"testing"

	"github.com/hailam/chessmate/internal/board"
)

func TestExplain(t *testing.T) {
	pos, err := board.NewPositionFromGrid(board.Grid{
		0: {0: board.BlackKing, 4: board.BlackRook},
		5: {4: board.WhiteBishop},
		6: {0: board.WhitePawn},
		7: {4: board.WhiteKing, 5: board.WhiteKnight},
	}, board.White, board.NoCastling, board.NoSquare)
	if err != nil {
		t.Fatal(err)
	}
	g := FromPosition(pos)

	tests := []struct {
		from, to string
		want     Reason
	}{
		{"e3", "d4", ReasonWouldLeaveKingInCheck}, // pinned bishop
		{"e1", "f1", ReasonBlockedByOwnPiece},
		{"a2", "a5", ReasonInvalidPieceMovement},
		{"e3", "e4", ReasonInvalidPieceMovement},
		{"a8", "b8", ReasonNotYourTurn},
		{"c3", "c4", ReasonUnknown},
	}
	for _, tc := range tests {
		if got := g.Explain(sq(t, tc.from), sq(t, tc.to)); got != tc.want {
			t.Errorf("Explain(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestExplainKingIntoAttack(t *testing.T) {
	pos, err := board.NewPositionFromGrid(board.Grid{
		0: {0: board.BlackKing, 3: board.BlackRook},
		7: {4: board.WhiteKing},
	}, board.White, board.NoCastling, board.NoSquare)
	if err != nil {
		t.Fatal(err)
	}
	g := FromPosition(pos)

	if got := g.Explain(sq(t, "e1"), sq(t, "d1")); got != ReasonWouldLeaveKingInCheck {
		t.Errorf("Explain(e1, d1) = %v, want king in check", got)
	}
}
