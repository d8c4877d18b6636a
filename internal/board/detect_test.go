package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		inCheck bool
		pins    []Pin
		checks  []Check
	}{
		{
			name: "quiet",
			rows: []string{
				"k.......",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"....K...",
			},
		},
		{
			name: "rook pin on file",
			rows: []string{
				"k...r...",
				"........",
				"........",
				"........",
				"........",
				"....N...",
				"........",
				"....K...",
			},
			pins: []Pin{{Square: Sq(5, 4), Dir: Direction{-1, 0}}},
		},
		{
			name: "bishop behind two allies does not pin",
			rows: []string{
				"k.......",
				"........",
				"........",
				".b......",
				"........",
				"...P....",
				"....P...",
				".....K..",
			},
		},
		{
			name: "rook on diagonal is harmless",
			rows: []string{
				"k.......",
				"........",
				"........",
				".r......",
				"........",
				"........",
				"........",
				".....K..",
			},
		},
		{
			name: "pawn check",
			rows: []string{
				"k.......",
				"........",
				"........",
				"........",
				"........",
				"...p....",
				"....K...",
				"........",
			},
			inCheck: true,
			checks:  []Check{{From: Sq(5, 3), Dir: Direction{-1, -1}}},
		},
		{
			name: "pawn behind the king does not check",
			rows: []string{
				"k.......",
				"........",
				"........",
				"........",
				"........",
				"....K...",
				"...p....",
				"........",
			},
		},
		{
			name: "double check",
			rows: []string{
				"k...r...",
				"........",
				"........",
				"........",
				"........",
				"...n....",
				"........",
				"....K...",
			},
			inCheck: true,
			checks: []Check{
				{From: Sq(0, 4), Dir: Direction{-1, 0}},
				{From: Sq(5, 3), Dir: Direction{-2, -1}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustPosition(t, White, NoCastling, "", tc.rows...)
			det := pos.Detect(White)

			if det.InCheck != tc.inCheck {
				t.Errorf("InCheck = %v, want %v", det.InCheck, tc.inCheck)
			}
			if diff := cmp.Diff(tc.pins, det.Pins, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("pins mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.checks, det.Checks, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("checks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPinDirection(t *testing.T) {
	det := Detection{Pins: []Pin{{Square: Sq(5, 4), Dir: Direction{-1, 0}}}}

	if d, ok := det.PinDirection(Sq(5, 4)); !ok || d != (Direction{-1, 0}) {
		t.Errorf("PinDirection(e3) = %v, %v", d, ok)
	}
	if _, ok := det.PinDirection(Sq(5, 5)); ok {
		t.Error("f3 is not pinned")
	}
}

func TestAttacked(t *testing.T) {
	pos := mustPosition(t, White, NoCastling, "",
		"k.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"......n.",
		"K.......",
	)

	tests := []struct {
		square string
		want   bool
	}{
		{"e1", true},  // knight
		{"f4", true},  // knight
		{"g1", false}, // knight cannot reach its own file
		{"b7", true},  // black king
		{"c6", false},
	}
	for _, tc := range tests {
		if got := pos.Attacked(mustSquare(t, tc.square), Black); got != tc.want {
			t.Errorf("Attacked(%s) = %v, want %v", tc.square, got, tc.want)
		}
	}
}

func TestDetectLeavesPositionUntouched(t *testing.T) {
	pos := mustPosition(t, White, NoCastling, "",
		"k...r...",
		"........",
		"........",
		"........",
		"........",
		"....B...",
		"........",
		"....K...",
	)
	before := pos.Clone()
	pos.Detect(White)
	pos.GenerateLegalMoves()
	if diff := cmp.Diff(before, pos, positionCmp...); diff != "" {
		t.Errorf("detection mutated the position (-want +got):\n%s", diff)
	}
}
