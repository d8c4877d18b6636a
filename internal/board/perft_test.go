package board

import "testing"

// TestPerftStartingPosition tests move generation from the starting position.
func TestPerftStartingPosition(t *testing.T) {
	pos := NewPosition()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		if tc.depth > 3 && testing.Short() {
			continue
		}
		got := Perft(pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestPerftKiwipete exercises castling, en passant and pins together.
// r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -
func TestPerftKiwipete(t *testing.T) {
	pos := mustPosition(t, White, AllCastling, "",
		"r...k..r",
		"p.ppqpb.",
		"bn..pnp.",
		"...PN...",
		".p..P...",
		"..N..Q.p",
		"PPPBBPPP",
		"R...K..R",
	)

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, tc := range tests {
		if tc.depth > 2 && testing.Short() {
			continue
		}
		got := Perft(pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestPerftPosition3 tests en passant edge cases along a rank.
// 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -
func TestPerftPosition3(t *testing.T) {
	pos := mustPosition(t, White, NoCastling, "",
		"........",
		"..p.....",
		"...p....",
		"KP.....r",
		".R...p.k",
		"........",
		"....P.P.",
		"........",
	)

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}

	for _, tc := range tests {
		got := Perft(pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

// TestPerftEnPassantPin tests the horizontal en passant pin.
// Black pawn on e4 could capture d3 en passant, but that would expose the king
// on a4 to the rook on h4.
func TestPerftEnPassantPin(t *testing.T) {
	pos := mustPosition(t, Black, NoCastling, "d3",
		"........",
		"........",
		"........",
		"........",
		"k..Pp..R",
		"........",
		"........",
		"....K...",
	)

	for _, m := range pos.GenerateLegalMoves() {
		if m.EnPassant {
			t.Errorf("en passant move %v should be illegal (horizontal pin)", m)
		}
	}

	// Depth 1: Ka3, Ka5, Kb3, Kb4, Kb5, e3 = 6 moves
	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 6},
		{2, 94},
	}

	for _, tc := range tests {
		got := Perft(pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	pos := NewPosition()

	entries := Divide(pos, 3)
	if len(entries) != 20 {
		t.Fatalf("Divide returned %d root moves, want 20", len(entries))
	}

	var total int64
	for _, e := range entries {
		total += e.Nodes
	}
	if total != 8902 {
		t.Errorf("divide total = %d, want 8902", total)
	}
	if pos.Ply() != 0 {
		t.Errorf("Divide left %d moves in history", pos.Ply())
	}
}
