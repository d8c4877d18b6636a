package board

import "testing"

func TestFoolsMate(t *testing.T) {
	pos := NewPosition()
	play(t, pos, "f2f3", "e7e5", "g2g4", "d8h4")

	moves, inCheck, status := pos.Analyze()
	if !inCheck {
		t.Error("expected white to be in check")
	}
	if len(moves) != 0 {
		t.Errorf("expected no legal moves, got %v", moves)
	}
	if status != Checkmate {
		t.Errorf("status = %v, want checkmate", status)
	}
	if !pos.IsCheckmate() || pos.IsStalemate() {
		t.Error("IsCheckmate/IsStalemate disagree with Analyze")
	}
}

func TestBackRankMate(t *testing.T) {
	pos := mustPosition(t, Black, NoCastling, "",
		"R......k",
		"......pp",
		"........",
		"........",
		"........",
		"........",
		"........",
		"K.......",
	)

	if !pos.IsCheckmate() {
		t.Error("expected checkmate")
	}
}

func TestNotCheckmate(t *testing.T) {
	// The king can capture the checking rook or step to h7.
	pos := mustPosition(t, Black, NoCastling, "",
		"......Rk",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"K.......",
	)

	moves, inCheck, status := pos.Analyze()
	if !inCheck {
		t.Error("expected black to be in check")
	}
	if status != Ongoing {
		t.Errorf("status = %v, want ongoing", status)
	}
	if len(moves) != 2 {
		t.Errorf("expected Kxg8 and Kh7, got %v", moves)
	}
	if m, ok := findMove(t, pos, "h8g8"); !ok || !m.IsCapture() {
		t.Errorf("expected Kxg8 to be a legal capture, got %v", m)
	}
}

func TestStalemate(t *testing.T) {
	pos := mustPosition(t, Black, NoCastling, "",
		"k.......",
		"........",
		".Q......",
		"........",
		"........",
		"........",
		"........",
		".......K",
	)

	moves, inCheck, status := pos.Analyze()
	if inCheck {
		t.Error("stalemated king must not be in check")
	}
	if len(moves) != 0 {
		t.Errorf("expected no legal moves, got %v", moves)
	}
	if status != Stalemate {
		t.Errorf("status = %v, want stalemate", status)
	}
	if pos.IsCheckmate() {
		t.Error("stalemate reported as checkmate")
	}
}

func TestCheckEvasionsOnly(t *testing.T) {
	// White is checked along the e-file: only the knight block and king steps
	// off the file are legal.
	pos := mustPosition(t, White, NoCastling, "",
		"k...r...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"...N....",
		"....K...",
	)

	moves, inCheck, _ := pos.Analyze()
	if !inCheck {
		t.Fatal("expected check")
	}
	for _, m := range moves {
		if m.Piece == WhiteKnight && m.To != mustSquare(t, "e4") {
			t.Errorf("knight move %v does not block the check", m)
		}
		if m.Piece == WhiteKing && m.To.Col == 4 {
			t.Errorf("king move %v stays on the checking file", m)
		}
	}
	if _, ok := findMove(t, pos, "d2e4"); !ok {
		t.Error("expected Ne4 block to be legal")
	}
}
