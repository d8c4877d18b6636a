package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the castling rights in KQkq form.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castleRight(c, kingSide) != 0
}

func castleRight(c Color, kingSide bool) CastlingRights {
	if c == White {
		if kingSide {
			return WhiteKingSideCastle
		}
		return WhiteQueenSideCastle
	}
	if kingSide {
		return BlackKingSideCastle
	}
	return BlackQueenSideCastle
}

// Grid is an 8x8 board indexed [row][col]. The zero value is an empty board.
type Grid [8][8]Piece

// At returns the piece on sq, or NoPiece when sq is off the board.
func (g *Grid) At(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return g[sq.Row][sq.Col]
}

var startGrid = Grid{
	{BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook},
	{BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn},
	{},
	{},
	{},
	{},
	{WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn},
	{WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook},
}

// Position is the mutable state of a game. ApplyMove and UndoMove are its only
// mutators once it has been created.
type Position struct {
	board      Grid
	sideToMove Color

	// Cached king locations, indexed by Color.
	kingSquare [2]Square

	castling  CastlingRights
	enPassant Square // square skipped by the last double advance, NoSquare otherwise

	history []Move
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset reinitializes the position to the standard starting layout.
func (p *Position) Reset() {
	*p = Position{
		board:      startGrid,
		sideToMove: White,
		kingSquare: [2]Square{Sq(7, 4), Sq(0, 4)},
		castling:   AllCastling,
		enPassant:  NoSquare,
	}
}

// NewPositionFromGrid builds a position from an arbitrary layout.
// Castling rights whose king or rook is not on its original square are dropped.
// An en passant target is kept only if it sits behind a pawn that could have just
// made a double advance.
func NewPositionFromGrid(g Grid, side Color, castling CastlingRights, enPassant Square) (*Position, error) {
	p := &Position{
		board:      g,
		sideToMove: side,
		kingSquare: [2]Square{NoSquare, NoSquare},
		enPassant:  NoSquare,
	}
	if err := p.findKings(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	p.castling = castling & p.possibleCastling()

	if enPassant.IsValid() {
		mover := side.Other()
		pawnSq := enPassant.Offset(Direction{Row: mover.forward()}, 1)
		if enPassant.Row != mover.pawnRow()+mover.forward() || p.board.At(pawnSq) != NewPiece(Pawn, mover) {
			return nil, fmt.Errorf("%w: en passant target %s has no pawn behind it", ErrInvalidPosition, enPassant)
		}
		p.enPassant = enPassant
	}
	return p, nil
}

// findKings locates and caches the king positions.
func (p *Position) findKings() error {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			piece := p.board[r][c]
			if piece.Type() != King {
				continue
			}
			color := piece.Color()
			if p.kingSquare[color].IsValid() {
				return fmt.Errorf("%w: %s has more than one king", ErrInvalidPosition, color)
			}
			p.kingSquare[color] = Sq(r, c)
		}
	}
	return nil
}

// Validate checks the board invariants.
func (p *Position) Validate() error {
	for _, c := range []Color{White, Black} {
		ksq := p.kingSquare[c]
		if !ksq.IsValid() || p.board.At(ksq) != NewPiece(King, c) {
			return fmt.Errorf("%w: %s must have exactly one king", ErrInvalidPosition, c)
		}
	}

	for c := 0; c < 8; c++ {
		if p.board[0][c].Type() == Pawn || p.board[7][c].Type() == Pawn {
			return fmt.Errorf("%w: pawns cannot be on rank 1 or 8", ErrInvalidPosition)
		}
	}

	// The side that just moved cannot still be in check.
	if p.Detect(p.sideToMove.Other()).InCheck {
		return fmt.Errorf("%w: %s to move can capture the king", ErrInvalidPosition, p.sideToMove)
	}
	return nil
}

// possibleCastling returns the rights compatible with the kings and rooks on the board.
func (p *Position) possibleCastling() CastlingRights {
	var cr CastlingRights
	for _, c := range []Color{White, Black} {
		home := c.homeRow()
		if p.board[home][4] != NewPiece(King, c) {
			continue
		}
		if p.board[home][7] == NewPiece(Rook, c) {
			cr |= castleRight(c, true)
		}
		if p.board[home][0] == NewPiece(Rook, c) {
			cr |= castleRight(c, false)
		}
	}
	return cr
}

// Clone returns an independent copy of the position, history included.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]Move(nil), p.history...)
	return &c
}

// Board returns a snapshot of the board contents.
func (p *Position) Board() Grid {
	return p.board
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board.At(sq)
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// KingSquare returns the cached king location for c.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// CastlingRights returns the castling rights still held.
func (p *Position) CastlingRights() CastlingRights {
	return p.castling
}

// EnPassantTarget returns the current en passant target, or NoSquare.
func (p *Position) EnPassantTarget() Square {
	return p.enPassant
}

// History returns a copy of the applied moves, oldest first.
func (p *Position) History() []Move {
	return append([]Move(nil), p.history...)
}

// LastMove returns the most recently applied move, or NoMove.
func (p *Position) LastMove() Move {
	if len(p.history) == 0 {
		return NoMove
	}
	return p.history[len(p.history)-1]
}

// Ply returns the number of moves applied since the position was created.
func (p *Position) Ply() int {
	return len(p.history)
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.Detect(p.sideToMove).InCheck
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for r := 0; r < 8; r++ {
		fmt.Fprintf(&sb, "%d  ", 8-r)
		for c := 0; c < 8; c++ {
			sb.WriteString(p.board[r][c].String())
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.sideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.castling)
	fmt.Fprintf(&sb, "En passant: %s\n", p.enPassant)
	return sb.String()
}
