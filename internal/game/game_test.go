package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessmate/internal/board"
)

func sq(t *testing.T, s string) board.Square {
	t.Helper()
	v, err := board.ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func playAll(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, s := range moves {
		if _, err := g.PlayCoordinates(s); err != nil {
			t.Fatalf("PlayCoordinates(%s): %v", s, err)
		}
	}
}

func TestNewGame(t *testing.T) {
	g := New()

	if got := len(g.LegalMoves()); got != 20 {
		t.Errorf("legal moves = %d, want 20", got)
	}
	if g.InCheck() || g.Checkmate() || g.Stalemate() || g.Over() {
		t.Error("fresh game should be ongoing without check")
	}
	if g.Result() != Undecided || g.ResultText() != "" {
		t.Errorf("result = %s %q, want undecided", g.Result(), g.ResultText())
	}
	if !g.LastMove().IsNone() {
		t.Errorf("LastMove = %v, want none", g.LastMove())
	}
}

func TestFoolsMateNotation(t *testing.T) {
	g := New()
	playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	want := []string{"f3", "e5", "g4", "Qh4#"}
	if diff := cmp.Diff(want, g.Notation()); diff != "" {
		t.Errorf("notation mismatch (-want +got):\n%s", diff)
	}
	if !g.Checkmate() || !g.InCheck() {
		t.Error("expected checkmate")
	}
	if g.Result() != BlackWins {
		t.Errorf("result = %s, want 0-1", g.Result())
	}
	if len(g.LegalMoves()) != 0 {
		t.Error("no legal moves after mate")
	}

	if _, err := g.PlayCoordinates("a2a3"); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after mate error = %v, want ErrGameOver", err)
	}
}

func TestCheckSuffix(t *testing.T) {
	g := New()
	playAll(t, g, "e2e4", "f7f6", "d1h5")

	notation := g.Notation()
	if got := notation[len(notation)-1]; got != "Qh5+" {
		t.Errorf("last notation = %q, want Qh5+", got)
	}
	if !g.InCheck() {
		t.Error("black should be in check")
	}
}

func TestPlayRejectsIllegalMoves(t *testing.T) {
	g := New()

	tests := []string{"e2e5", "e7e5", "g1g3", "e1e2"}
	for _, s := range tests {
		_, err := g.PlayCoordinates(s)
		if !errors.Is(err, ErrMoveNotFound) {
			t.Errorf("PlayCoordinates(%s) error = %v, want ErrMoveNotFound", s, err)
		}
	}
	if g.Ply() != 0 {
		t.Errorf("rejected moves changed ply to %d", g.Ply())
	}

	if _, err := g.PlayCoordinates("e2"); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("malformed move error = %v, want board.ErrIllegalMove", err)
	}
}

func TestPlayUsesGeneratedMove(t *testing.T) {
	g := New()
	playAll(t, g, "e2e4", "d7d5")

	// A bare square pair still resolves to the capture.
	if err := g.Play(board.Move{From: sq(t, "e4"), To: sq(t, "d5")}); err != nil {
		t.Fatal(err)
	}
	last := g.LastMove()
	if !last.IsCapture() || last.Piece != board.WhitePawn {
		t.Errorf("LastMove = %+v, want pawn capture", last)
	}
	if got := g.Notation()[2]; got != "exd5" {
		t.Errorf("notation = %q, want exd5", got)
	}
}

func TestUndo(t *testing.T) {
	g := New()
	if g.Undo() {
		t.Error("Undo on a fresh game should report false")
	}

	playAll(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	if !g.Undo() {
		t.Fatal("Undo failed")
	}

	if g.Over() {
		t.Error("game should be ongoing after undoing mate")
	}
	if got, want := g.Notation(), []string{"f3", "e5", "g4"}; !cmp.Equal(got, want) {
		t.Errorf("notation = %v, want %v", got, want)
	}
	if g.SideToMove() != board.Black {
		t.Error("black should be to move after undo")
	}
	if len(g.LegalMoves()) == 0 {
		t.Error("legal moves should be refreshed after undo")
	}
}

func TestReset(t *testing.T) {
	g := New()
	playAll(t, g, "e2e4", "e7e5")
	g.Reset()

	if g.Ply() != 0 || len(g.Notation()) != 0 || len(g.History()) != 0 {
		t.Error("Reset should clear the history")
	}
	if diff := cmp.Diff(New().Board(), g.Board()); diff != "" {
		t.Errorf("board after reset (-want +got):\n%s", diff)
	}
	if len(g.LegalMoves()) != 20 {
		t.Error("legal moves should be refreshed after reset")
	}
}

func TestFindMoveCastlingOntoRook(t *testing.T) {
	g := New()
	playAll(t, g, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6")

	m, ok := g.FindMove(sq(t, "e1"), sq(t, "h1"))
	if !ok || !m.Castle || m.To != sq(t, "g1") {
		t.Fatalf("FindMove(e1, h1) = %v, %v; want castling", m, ok)
	}
	if err := g.Play(board.Move{From: sq(t, "e1"), To: sq(t, "h1")}); err != nil {
		t.Fatal(err)
	}
	if got := g.Notation()[6]; got != "0-0" {
		t.Errorf("notation = %q, want 0-0", got)
	}
}

func TestMovesFrom(t *testing.T) {
	g := New()

	knight := g.MovesFrom(sq(t, "g1"))
	if len(knight) != 2 {
		t.Errorf("knight on g1 has %d moves, want 2", len(knight))
	}
	if moves := g.MovesFrom(sq(t, "e1")); len(moves) != 0 {
		t.Errorf("king on e1 should be boxed in, got %v", moves)
	}
}

func TestStalemateResult(t *testing.T) {
	pos, err := board.NewPositionFromGrid(board.Grid{
		0: {board.BlackKing},
		2: {1: board.WhiteQueen},
		7: {7: board.WhiteKing},
	}, board.Black, board.NoCastling, board.NoSquare)
	if err != nil {
		t.Fatal(err)
	}

	g := FromPosition(pos)
	if !g.Stalemate() || g.Checkmate() {
		t.Error("expected stalemate")
	}
	if g.Result() != Draw || g.ResultText() != "Draw by stalemate" {
		t.Errorf("result = %s %q", g.Result(), g.ResultText())
	}
}

func TestPerftDoesNotDisturbGame(t *testing.T) {
	g := New()
	playAll(t, g, "e2e4")

	if got := g.Perft(2); got != 600 {
		t.Errorf("perft(2) after e4 = %d, want 600", got)
	}
	if entries := g.Divide(1); len(entries) != 20 {
		t.Errorf("divide(1) = %d entries, want 20", len(entries))
	}
	if g.Ply() != 1 || g.LastMove().String() != "e2e4" {
		t.Error("perft changed the game")
	}
}
