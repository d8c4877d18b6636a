package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessmate/internal/storage"
)

func run(t *testing.T, store *storage.Storage, script ...string) (*Console, string) {
	t.Helper()
	var out bytes.Buffer
	c := New(&out, store, false)
	if err := c.Run(strings.NewReader(strings.Join(script, "\n"))); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return c, out.String()
}

func TestPlayAndStatus(t *testing.T) {
	c, out := run(t, nil, "e2e4", "move e7e5", "status")

	if c.Game().Ply() != 2 {
		t.Errorf("ply = %d, want 2", c.Game().Ply())
	}
	for _, want := range []string{"played e4", "played e5", "White to move"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestIllegalMoveExplained(t *testing.T) {
	c, out := run(t, nil, "e2e5", "e1e2", "move")

	if c.Game().Ply() != 0 {
		t.Error("illegal moves must not be played")
	}
	for _, want := range []string{
		"error: illegal move e2e5: piece cannot move that way",
		"error: illegal move e1e2: square occupied by own piece",
		"error: usage: move",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownCommandContinues(t *testing.T) {
	c, out := run(t, nil, "fly", "e2e4")

	if !strings.Contains(out, `error: unknown command "fly"`) {
		t.Errorf("expected unknown command error:\n%s", out)
	}
	if c.Game().Ply() != 1 {
		t.Error("commands after an error should still run")
	}
}

func TestQuitStopsReading(t *testing.T) {
	c, _ := run(t, nil, "e2e4", "quit", "e7e5")
	if c.Game().Ply() != 1 {
		t.Errorf("ply = %d, commands after quit were executed", c.Game().Ply())
	}
}

func TestUndoAndHistory(t *testing.T) {
	c, out := run(t, nil, "undo", "e2e4", "e7e5", "g1f3", "undo", "history")

	if !strings.Contains(out, "nothing to undo") {
		t.Errorf("expected empty undo message:\n%s", out)
	}
	if !strings.Contains(out, "undone g1f3") {
		t.Errorf("expected undo message:\n%s", out)
	}
	if !strings.Contains(out, "1. e4 e5\n") {
		t.Errorf("expected history line:\n%s", out)
	}
	if c.Game().Ply() != 2 {
		t.Errorf("ply = %d, want 2", c.Game().Ply())
	}
}

func TestFormatMoveList(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"e4"}, "1. e4"},
		{[]string{"e4", "e5"}, "1. e4 e5"},
		{[]string{"f3", "e5", "g4", "Qh4#"}, "1. f3 e5 2. g4 Qh4#"},
	}
	for _, tc := range tests {
		if got := formatMoveList(tc.in); got != tc.want {
			t.Errorf("formatMoveList(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPerftAndDivide(t *testing.T) {
	_, out := run(t, nil, "perft 2", "divide 1", "perft zero")

	if !strings.Contains(out, "Nodes: 400\n") {
		t.Errorf("perft 2 should report 400 nodes:\n%s", out)
	}
	if !strings.Contains(out, "e2e4: 1\n") || !strings.Contains(out, "Nodes: 20\n") {
		t.Errorf("divide 1 output unexpected:\n%s", out)
	}
	if !strings.Contains(out, `error: invalid depth "zero"`) {
		t.Errorf("expected depth error:\n%s", out)
	}
}

func TestMateIsRecorded(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	_, out := run(t, store, "f2f3", "e7e5", "g2g4", "d8h4", "a2a3", "games")

	if !strings.Contains(out, "Black wins by checkmate! 0-1") {
		t.Errorf("expected mate announcement:\n%s", out)
	}
	if !strings.Contains(out, "error: game is over") {
		t.Errorf("moves after mate should be refused:\n%s", out)
	}
	if !strings.Contains(out, "#1 ") || !strings.Contains(out, "1. f3 e5 2. g4 Qh4#") {
		t.Errorf("games listing unexpected:\n%s", out)
	}

	games, err := store.RecentGames(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 {
		t.Fatalf("stored %d games, want 1", len(games))
	}
	want := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	if diff := cmp.Diff(want, games[0].Moves); diff != "" {
		t.Errorf("stored moves (-want +got):\n%s", diff)
	}
	if games[0].Result != storage.ResultBlackWins {
		t.Errorf("stored result = %q", games[0].Result)
	}
}

func TestAbandonedGameRecordedOnNew(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	// The empty game after "new" is not stored.
	run(t, store, "e2e4", "new", "quit")

	stats, err := store.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesPlayed != 1 || stats.Abandoned != 1 {
		t.Errorf("stats = %+v, want one abandoned game", stats)
	}
}

func TestGamesWithoutStorage(t *testing.T) {
	_, out := run(t, nil, "games")
	if !strings.Contains(out, "error: storage is disabled") {
		t.Errorf("expected storage error:\n%s", out)
	}
}
