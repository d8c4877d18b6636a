package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// diagram builds a grid from eight rows of eight characters, rank 8 first.
// '.' marks an empty square.
func diagram(t *testing.T, rows ...string) Grid {
	t.Helper()
	if len(rows) != 8 {
		t.Fatalf("diagram needs 8 rows, got %d", len(rows))
	}
	var g Grid
	for r, row := range rows {
		if len(row) != 8 {
			t.Fatalf("diagram row %d has %d columns", r, len(row))
		}
		for c := 0; c < 8; c++ {
			if row[c] == '.' {
				continue
			}
			piece := PieceFromChar(row[c])
			if piece == NoPiece {
				t.Fatalf("diagram row %d: unknown piece %q", r, row[c])
			}
			g[r][c] = piece
		}
	}
	return g
}

func mustPosition(t *testing.T, side Color, castling CastlingRights, ep string, rows ...string) *Position {
	t.Helper()
	target := NoSquare
	if ep != "" {
		var err error
		if target, err = ParseSquare(ep); err != nil {
			t.Fatal(err)
		}
	}
	pos, err := NewPositionFromGrid(diagram(t, rows...), side, castling, target)
	if err != nil {
		t.Fatalf("NewPositionFromGrid: %v", err)
	}
	return pos
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

// findMove returns the legal move matching a coordinate string.
func findMove(t *testing.T, p *Position, s string) (Move, bool) {
	t.Helper()
	from, to, err := ParseCoordinates(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range p.GenerateLegalMoves() {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return NoMove, false
}

// play applies each coordinate move, failing if one is not legal.
func play(t *testing.T, p *Position, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, ok := findMove(t, p, s)
		if !ok {
			t.Fatalf("move %s is not legal in:%s", s, p)
		}
		if err := p.ApplyMove(m); err != nil {
			t.Fatalf("ApplyMove(%s): %v", s, err)
		}
	}
}

var positionCmp = []cmp.Option{
	cmp.AllowUnexported(Position{}, Move{}),
	cmpopts.EquateEmpty(),
}

func movesFrom(moves []Move, from Square) []Move {
	var out []Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}
