package board

import (
	"errors"
	"testing"
)

func TestSquareStrings(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{Sq(0, 0), "a8"},
		{Sq(7, 0), "a1"},
		{Sq(7, 7), "h1"},
		{Sq(4, 4), "e4"},
		{NoSquare, "-"},
	}
	for _, tc := range tests {
		if got := tc.sq.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.sq, got, tc.want)
		}
		if !tc.sq.IsValid() {
			continue
		}
		back, err := ParseSquare(tc.want)
		if err != nil || back != tc.sq {
			t.Errorf("ParseSquare(%q) = %v, %v", tc.want, back, err)
		}
	}

	for _, bad := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", bad, err)
		}
	}
}

func TestParseCoordinates(t *testing.T) {
	from, to, err := ParseCoordinates("e7e8q")
	if err != nil {
		t.Fatal(err)
	}
	if from != Sq(1, 4) || to != Sq(0, 4) {
		t.Errorf("ParseCoordinates(e7e8q) = %s, %s", from, to)
	}

	for _, bad := range []string{"e2", "e2e4e6", "z2e4"} {
		if _, _, err := ParseCoordinates(bad); err == nil {
			t.Errorf("ParseCoordinates(%q) should fail", bad)
		}
	}
}

func TestNotation(t *testing.T) {
	pos := mustPosition(t, White, WhiteKingSideCastle|WhiteQueenSideCastle, "d6",
		"....k...",
		"P.......",
		"........",
		"...pP...",
		".......n",
		"........",
		"......N.",
		"R...K..R",
	)

	tests := []struct {
		move string
		want string
	}{
		{"g2f4", "Nf4"},
		{"g2h4", "Nxh4"},
		{"g2e3", "Ne3"},
		{"h1h2", "Rh2"},
		{"e1g1", "0-0"},
		{"e1c1", "0-0-0"},
		{"e5e6", "e6"},
		{"e5d6", "exd6"},
		{"a7a8", "a8=Q"},
		{"e1f2", "Kf2"},
	}
	for _, tc := range tests {
		m, ok := findMove(t, pos, tc.move)
		if !ok {
			t.Errorf("%s is not legal", tc.move)
			continue
		}
		if got := m.Notation(); got != tc.want {
			t.Errorf("Notation(%s) = %q, want %q", tc.move, got, tc.want)
		}
	}

	if got := NoMove.Notation(); got != "-" {
		t.Errorf("NoMove.Notation() = %q", got)
	}
}

func TestMoveString(t *testing.T) {
	pos := mustPosition(t, White, NoCastling, "",
		"....k...",
		"P.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
	)
	m, ok := findMove(t, pos, "a7a8")
	if !ok {
		t.Fatal("a7a8 is not legal")
	}
	if got := m.String(); got != "a7a8q" {
		t.Errorf("String() = %q, want a7a8q", got)
	}
	if got := NoMove.String(); got != "0000" {
		t.Errorf("NoMove.String() = %q", got)
	}
}

func TestMoveEqualIgnoresPromotionPiece(t *testing.T) {
	a := newMove(Sq(1, 0), Sq(0, 0), WhitePawn, NoPiece)
	b := a
	b.Promotion = true
	b.PromoteTo = Queen
	if !a.Equal(b) {
		t.Error("moves between the same squares should be equal")
	}
	c := newMove(Sq(1, 0), Sq(0, 1), WhitePawn, BlackRook)
	if a.Equal(c) {
		t.Error("moves to different squares should differ")
	}
}
