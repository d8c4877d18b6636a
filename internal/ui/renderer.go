package ui

import (
	"image/color"

	"github.com/hailam/chessmate/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},
	}
}

// Renderer draws the board, highlights and pieces.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool // black at the bottom
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// SetFlipped sets the board orientation.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether black is drawn at the bottom.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// DrawBoard draws the chess board squares and their coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.squareSize)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			vector.DrawFilledRect(screen, float32(col)*size, float32(row)*size, size, size, c, false)
		}
	}

	r.drawCoordinates(screen)
}

// drawCoordinates labels the bottom row with files and the left column with ranks.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetCoordFace()
	if face == nil {
		return
	}

	// Labels take the color of the opposite square shade.
	labelColor := func(row, col int) color.RGBA {
		if (row+col)%2 == 1 {
			return r.theme.LightSquare
		}
		return r.theme.DarkSquare
	}

	for i := 0; i < 8; i++ {
		sq := r.screenSquare(7, i)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64((i+1)*r.squareSize-10), float64(r.boardSize-16))
		op.ColorScale.ScaleWithColor(labelColor(7, i))
		text.Draw(screen, string(sq.File()), face, op)

		sq = r.screenSquare(i, 0)
		op = &text.DrawOptions{}
		op.GeoM.Translate(3, float64(i*r.squareSize+2))
		op.ColorScale.ScaleWithColor(labelColor(i, 0))
		text.Draw(screen, string(sq.Rank()), face, op)
	}
}

// DrawHighlights draws the last move, the selection and legal move targets.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets []board.Move, lastMove board.Move) {
	if !lastMove.IsNone() {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, m := range targets {
		r.drawLegalMoveIndicator(screen, m.To, m.IsCapture())
	}
}

// DrawCheck highlights the king's square if in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	r.highlightSquare(screen, kingSq, r.theme.CheckColor)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := float32(r.squareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// drawLegalMoveIndicator draws a dot on empty targets and a ring on captures.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square, capture bool) {
	x, y := r.SquareToScreen(sq)
	half := float32(r.squareSize) / 2
	cx := float32(x) + half
	cy := float32(y) + half

	if capture {
		vector.StrokeCircle(screen, cx, cy, half-4, 5, r.theme.LegalMoveColor, true)
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(r.squareSize)*0.15, r.theme.LegalMoveColor, true)
}

// DrawPieces draws the grid, skipping the dragged square and applying shake offsets.
func (r *Renderer) DrawPieces(screen *ebiten.Image, grid board.Grid, dragSquare board.Square, anims *AnimationManager) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := board.Sq(row, col)
			piece := grid.At(sq)
			if piece == board.NoPiece || sq == dragSquare {
				continue
			}

			x, y := r.SquareToScreen(sq)
			fx, fy := float64(x), float64(y)
			if anims != nil {
				dx, dy := anims.ShakeOffset(sq)
				fx += dx
				fy += dy
			}
			r.sprites.DrawPieceAt(screen, piece, fx, fy)
		}
	}
}

// DrawDraggedPiece draws the piece being dragged centered on the cursor.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	half := r.squareSize / 2
	r.sprites.DrawPieceAt(screen, piece, float64(mouseX-half), float64(mouseY-half))
}

// screenSquare maps a screen row and column to a board square.
func (r *Renderer) screenSquare(row, col int) board.Square {
	if r.flipped {
		return board.Sq(7-row, 7-col)
	}
	return board.Sq(row, col)
}

// SquareToScreen converts a board square to the top-left pixel of its cell.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	row, col := sq.Row, sq.Col
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return col * r.squareSize, row * r.squareSize
}

// ScreenToSquare converts screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	return r.screenSquare(y/r.squareSize, x/r.squareSize)
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
