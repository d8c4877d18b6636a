package board

import "fmt"

// ApplyMove plays m on the position. m must match a move from GenerateLegalMoves
// on the current position, flags and promotion piece included. A stale or
// hand-built move that does not is rejected before it can corrupt the board.
func (p *Position) ApplyMove(m Move) error {
	if !m.From.IsValid() || !m.To.IsValid() {
		return fmt.Errorf("%w: %s is off the board", ErrIllegalMove, m)
	}
	if m.Piece.Color() != p.sideToMove || p.board.At(m.From) != m.Piece {
		return fmt.Errorf("%w: %s does not move a %s piece from %s", ErrIllegalMove, m, p.sideToMove, m.From)
	}

	expected := p.board.At(m.To)
	if m.EnPassant {
		if m.To != p.enPassant {
			return fmt.Errorf("%w: %s is not an en passant capture here", ErrIllegalMove, m)
		}
		expected = p.board.At(Sq(m.From.Row, m.To.Col))
	}
	if m.Captured != expected {
		return fmt.Errorf("%w: %s expects %s on the target, found %s", ErrIllegalMove, m, m.Captured, expected)
	}
	if expected.Type() == King {
		return fmt.Errorf("%w: %s captures a king", ErrIllegalMove, m)
	}

	legal, ok := p.matchLegal(m)
	if !ok {
		return fmt.Errorf("%w: %s is not legal here", ErrIllegalMove, m)
	}

	p.applyMove(legal)
	return nil
}

// matchLegal finds the legal move identical to m in everything but undo context.
func (p *Position) matchLegal(m Move) (Move, bool) {
	for _, l := range p.GenerateLegalMoves() {
		if l.From == m.From && l.To == m.To &&
			l.Piece == m.Piece && l.Captured == m.Captured &&
			l.EnPassant == m.EnPassant && l.Castle == m.Castle &&
			l.Promotion == m.Promotion && l.PromoteTo == m.PromoteTo {
			return l, true
		}
	}
	return NoMove, false
}

// applyMove performs the move without any checks.
func (p *Position) applyMove(m Move) {
	us := p.sideToMove

	m.prevCastling = p.castling
	m.prevEnPassant = p.enPassant
	m.rookFrom = NoSquare

	p.board[m.From.Row][m.From.Col] = NoPiece
	if m.Promotion {
		p.board[m.To.Row][m.To.Col] = NewPiece(m.PromoteTo, us)
	} else {
		p.board[m.To.Row][m.To.Col] = m.Piece
	}

	if m.EnPassant {
		p.board[m.From.Row][m.To.Col] = NoPiece
	}

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m)
		p.board[rookTo.Row][rookTo.Col] = p.board[rookFrom.Row][rookFrom.Col]
		p.board[rookFrom.Row][rookFrom.Col] = NoPiece
		m.rookFrom = rookFrom
	}

	if m.Piece.Type() == King {
		p.kingSquare[us] = m.To
	}

	if m.IsDoubleAdvance() {
		p.enPassant = Sq((m.From.Row+m.To.Row)/2, m.From.Col)
	} else {
		p.enPassant = NoSquare
	}

	p.castling &^= castlingLost(m)

	p.sideToMove = us.Other()
	p.history = append(p.history, m)
}

// UndoMove reverts the last applied move. It returns false when there is nothing to undo.
func (p *Position) UndoMove() bool {
	if len(p.history) == 0 {
		return false
	}

	m := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	us := m.Piece.Color()
	p.sideToMove = us

	p.board[m.From.Row][m.From.Col] = m.Piece
	if m.EnPassant {
		p.board[m.To.Row][m.To.Col] = NoPiece
		p.board[m.From.Row][m.To.Col] = m.Captured
	} else {
		p.board[m.To.Row][m.To.Col] = m.Captured
	}

	if m.Castle {
		_, rookTo := castleRookSquares(m)
		p.board[m.rookFrom.Row][m.rookFrom.Col] = p.board[rookTo.Row][rookTo.Col]
		p.board[rookTo.Row][rookTo.Col] = NoPiece
	}

	if m.Piece.Type() == King {
		p.kingSquare[us] = m.From
	}

	p.castling = m.prevCastling
	p.enPassant = m.prevEnPassant
	return true
}

// castleRookSquares returns the rook's corner and destination for a castling move.
func castleRookSquares(m Move) (Square, Square) {
	row := m.From.Row
	if m.IsKingside() {
		return Sq(row, 7), Sq(row, 5)
	}
	return Sq(row, 0), Sq(row, 3)
}

// castlingLost returns the rights removed by m: a king move loses both of its
// side's rights, a rook leaving its corner loses that side, and a capture on an
// enemy corner removes the opponent's right there.
func castlingLost(m Move) CastlingRights {
	var lost CastlingRights
	us := m.Piece.Color()

	switch m.Piece.Type() {
	case King:
		lost |= castleRight(us, true) | castleRight(us, false)
	case Rook:
		lost |= cornerRight(m.From, us)
	}

	if m.Captured.Type() == Rook {
		lost |= cornerRight(m.To, m.Captured.Color())
	}
	return lost
}

// cornerRight maps an original rook square of color c to its castling right.
func cornerRight(sq Square, c Color) CastlingRights {
	if sq.Row != c.homeRow() {
		return NoCastling
	}
	switch sq.Col {
	case 0:
		return castleRight(c, false)
	case 7:
		return castleRight(c, true)
	}
	return NoCastling
}
