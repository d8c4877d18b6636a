package board

// Status describes whether the game can continue.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// GenerateLegalMoves returns every legal move for the side to move, in board order.
func (p *Position) GenerateLegalMoves() []Move {
	moves, _ := p.legalMoves()
	return moves
}

// Analyze generates the legal moves and classifies the position.
func (p *Position) Analyze() ([]Move, bool, Status) {
	moves, inCheck := p.legalMoves()
	status := Ongoing
	if len(moves) == 0 {
		if inCheck {
			status = Checkmate
		} else {
			status = Stalemate
		}
	}
	return moves, inCheck, status
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	_, _, status := p.Analyze()
	return status == Checkmate
}

// IsStalemate returns true if the side to move has no legal moves and is not in check.
func (p *Position) IsStalemate() bool {
	_, _, status := p.Analyze()
	return status == Stalemate
}

func (p *Position) legalMoves() ([]Move, bool) {
	us := p.sideToMove
	det := p.Detect(us)
	candidates := p.pseudoLegal(det)

	legal := candidates[:0]
	for _, m := range candidates {
		// En passant removes two pawns from one rank, which a single pin cannot
		// describe, so it is always simulated.
		if (det.InCheck || m.EnPassant) && !p.leavesKingSafe(m) {
			continue
		}
		legal = append(legal, m)
	}
	return legal, det.InCheck
}

// leavesKingSafe plays m, tests the mover's king and takes the move back.
func (p *Position) leavesKingSafe(m Move) bool {
	us := p.sideToMove
	p.applyMove(m)
	inCheck := p.Detect(us).InCheck
	p.UndoMove()
	return !inCheck
}

// Perft counts the leaf nodes of the legal move tree at the given depth.
func Perft(p *Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		p.applyMove(m)
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// DivideEntry is the perft count below a single root move.
type DivideEntry struct {
	Move  Move
	Nodes int64
}

// Divide runs perft below each root move, in generation order.
func Divide(p *Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	moves := p.GenerateLegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		p.applyMove(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(p, depth-1)})
		p.UndoMove()
	}
	return entries
}
