package board

// generator holds the per-pass state shared by the piece generators.
type generator struct {
	p     *Position
	us    Color
	det   Detection
	moves []Move
}

// GeneratePseudoLegalMoves returns moves that follow piece movement and pin rules
// but are not yet verified against check.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	return p.pseudoLegal(p.Detect(p.sideToMove))
}

// GenerateUnpinnedMoves is GeneratePseudoLegalMoves with pins ignored. King steps
// onto attacked squares are still left out.
func (p *Position) GenerateUnpinnedMoves() []Move {
	return p.pseudoLegal(Detection{})
}

func (p *Position) pseudoLegal(det Detection) []Move {
	g := generator{
		p:     p,
		us:    p.sideToMove,
		det:   det,
		moves: make([]Move, 0, 48),
	}

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			piece := p.board[r][c]
			if piece.Color() != g.us {
				continue
			}
			from := Sq(r, c)
			switch piece.Type() {
			case Pawn:
				g.pawnMoves(from)
			case Knight:
				g.knightMoves(from)
			case Bishop:
				g.slideMoves(from, diagonals[:])
			case Rook:
				g.slideMoves(from, orthogonals[:])
			case Queen:
				g.slideMoves(from, orthogonals[:])
				g.slideMoves(from, diagonals[:])
			case King:
				g.kingMoves(from)
				g.castlingMoves(from)
			}
		}
	}
	return g.moves
}

// allowed reports whether the piece on from may move in direction d given pins.
func (g *generator) allowed(from Square, d Direction) bool {
	pinDir, pinned := g.det.PinDirection(from)
	return !pinned || pinDir == d || pinDir == d.Opposite()
}

func (g *generator) add(m Move) {
	g.moves = append(g.moves, m)
}

func (g *generator) pawnMoves(from Square) {
	p := g.p
	piece := p.board.At(from)
	fwd := g.us.forward()

	push := Direction{Row: fwd}
	one := from.Offset(push, 1)
	if one.IsValid() && p.board.At(one) == NoPiece && g.allowed(from, push) {
		g.addPawnMove(newMove(from, one, piece, NoPiece))

		two := from.Offset(push, 2)
		if from.Row == g.us.pawnRow() && p.board.At(two) == NoPiece {
			g.add(newMove(from, two, piece, NoPiece))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		d := Direction{Row: fwd, Col: dc}
		to := from.Offset(d, 1)
		if !to.IsValid() || !g.allowed(from, d) {
			continue
		}

		target := p.board.At(to)
		if target != NoPiece && target.Color() != g.us {
			g.addPawnMove(newMove(from, to, piece, target))
			continue
		}
		if to == p.enPassant {
			m := newMove(from, to, piece, p.board.At(Sq(from.Row, to.Col)))
			m.EnPassant = true
			g.add(m)
		}
	}
}

// addPawnMove adds m, flagging it as a promotion on the far rank.
// Promotion always yields a queen.
func (g *generator) addPawnMove(m Move) {
	if m.To.Row == g.us.promotionRow() {
		m.Promotion = true
		m.PromoteTo = Queen
	}
	g.add(m)
}

func (g *generator) knightMoves(from Square) {
	// A pinned knight can never stay on its pin line.
	if _, pinned := g.det.PinDirection(from); pinned {
		return
	}

	piece := g.p.board.At(from)
	for _, d := range knightOffsets {
		to := from.Offset(d, 1)
		if !to.IsValid() {
			continue
		}
		target := g.p.board.At(to)
		if target != NoPiece && target.Color() == g.us {
			continue
		}
		g.add(newMove(from, to, piece, target))
	}
}

// slideMoves walks each direction until the board edge, an ally (excluded) or an
// enemy (included).
func (g *generator) slideMoves(from Square, dirs []Direction) {
	piece := g.p.board.At(from)
	for _, d := range dirs {
		if !g.allowed(from, d) {
			continue
		}
		for n := 1; n < 8; n++ {
			to := from.Offset(d, n)
			if !to.IsValid() {
				break
			}
			target := g.p.board.At(to)
			if target == NoPiece {
				g.add(newMove(from, to, piece, NoPiece))
				continue
			}
			if target.Color() != g.us {
				g.add(newMove(from, to, piece, target))
			}
			break
		}
	}
}

func (g *generator) kingMoves(from Square) {
	piece := g.p.board.At(from)
	for _, d := range queenDirections {
		to := from.Offset(d, 1)
		if !to.IsValid() {
			continue
		}
		target := g.p.board.At(to)
		if target != NoPiece && target.Color() == g.us {
			continue
		}
		if g.p.kingSafeAt(g.us, to) {
			g.add(newMove(from, to, piece, target))
		}
	}
}

// kingSafeAt relocates the cached king square of c to sq, re-runs the detector
// and restores the cache.
func (p *Position) kingSafeAt(c Color, sq Square) bool {
	saved := p.kingSquare[c]
	p.kingSquare[c] = sq
	inCheck := p.Detect(c).InCheck
	p.kingSquare[c] = saved
	return !inCheck
}

func (g *generator) castlingMoves(from Square) {
	p := g.p
	if g.det.InCheck {
		return
	}
	home := g.us.homeRow()
	if from != Sq(home, 4) {
		return
	}
	them := g.us.Other()
	king := p.board.At(from)
	rook := NewPiece(Rook, g.us)

	if p.castling.CanCastle(g.us, true) && p.board[home][7] == rook &&
		p.board[home][5] == NoPiece && p.board[home][6] == NoPiece &&
		!p.Attacked(Sq(home, 5), them) && !p.Attacked(Sq(home, 6), them) {
		m := newMove(from, Sq(home, 6), king, NoPiece)
		m.Castle = true
		g.add(m)
	}

	// The b-file square must be empty but may be attacked.
	if p.castling.CanCastle(g.us, false) && p.board[home][0] == rook &&
		p.board[home][1] == NoPiece && p.board[home][2] == NoPiece && p.board[home][3] == NoPiece &&
		!p.Attacked(Sq(home, 3), them) && !p.Attacked(Sq(home, 2), them) {
		m := newMove(from, Sq(home, 2), king, NoPiece)
		m.Castle = true
		g.add(m)
	}
}
