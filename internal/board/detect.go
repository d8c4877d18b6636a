package board

// Pin records an ally piece that may only move along Dir (or its opposite).
// Dir points from the king toward the pinned piece.
type Pin struct {
	Square Square
	Dir    Direction
}

// Check records an enemy piece attacking the king. Dir points from the king toward
// the attacker; for knights it is the knight offset.
type Check struct {
	From Square
	Dir  Direction
}

// Detection is the result of scanning outward from a king.
type Detection struct {
	InCheck bool
	Pins    []Pin
	Checks  []Check
}

// PinDirection returns the pin line for sq, if the piece there is pinned.
func (d Detection) PinDirection(sq Square) (Direction, bool) {
	for _, pin := range d.Pins {
		if pin.Square == sq {
			return pin.Dir, true
		}
	}
	return Direction{}, false
}

// Detect scans from the cached king square of color c along the eight queen
// directions and the knight offsets. The first ally met on a ray becomes a pin
// candidate; an enemy able to attack along that ray then either checks the king
// (no candidate) or pins the candidate. Anything else blocks the ray.
// The king itself is transparent, so moving only the cached square tests a
// prospective king destination.
func (p *Position) Detect(c Color) Detection {
	return p.scan(p.kingSquare[c], c, true)
}

// Attacked reports whether sq is attacked by color by.
func (p *Position) Attacked(sq Square, by Color) bool {
	return p.scan(sq, by.Other(), false).InCheck
}

// scan classifies attacks on origin by the opponents of us. When collect is false
// it returns at the first attacker found and skips pin bookkeeping.
func (p *Position) scan(origin Square, us Color, collect bool) Detection {
	var det Detection
	them := us.Other()
	ownKing := NewPiece(King, us)

	for i, d := range queenDirections {
		orthogonal := i < 4
		pinned := NoSquare

		for n := 1; n < 8; n++ {
			sq := origin.Offset(d, n)
			if !sq.IsValid() {
				break
			}
			piece := p.board.At(sq)
			if piece == NoPiece || piece == ownKing {
				continue
			}

			if piece.Color() == us {
				if pinned.IsValid() {
					break // second ally, nothing behind can pin
				}
				pinned = sq
				continue
			}

			if !attacksAlong(piece.Type(), them, d, orthogonal, n) {
				break
			}
			if !pinned.IsValid() {
				det.InCheck = true
				if !collect {
					return det
				}
				det.Checks = append(det.Checks, Check{From: sq, Dir: d})
			} else if collect {
				det.Pins = append(det.Pins, Pin{Square: pinned, Dir: d})
			}
			break
		}
	}

	enemyKnight := NewPiece(Knight, them)
	for _, d := range knightOffsets {
		sq := origin.Offset(d, 1)
		if p.board.At(sq) != enemyKnight {
			continue
		}
		det.InCheck = true
		if !collect {
			return det
		}
		det.Checks = append(det.Checks, Check{From: sq, Dir: d})
	}

	return det
}

// attacksAlong reports whether an enemy piece of type pt and color them, found n
// steps from the origin in direction d, attacks the origin.
func attacksAlong(pt PieceType, them Color, d Direction, orthogonal bool, n int) bool {
	switch pt {
	case Queen:
		return true
	case Rook:
		return orthogonal
	case Bishop:
		return !orthogonal
	case King:
		return n == 1
	case Pawn:
		// A pawn captures toward its forward row, so it sits one step against
		// its own forward direction from the square it attacks.
		return n == 1 && !orthogonal && d.Row == -them.forward()
	}
	return false
}
