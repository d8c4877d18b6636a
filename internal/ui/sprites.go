package ui

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hailam/chessmate/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// glyph is a piece outline on a 45x45 canvas.
type glyph struct {
	paths   []string
	circles [][3]float64 // cx, cy, r
	details []string     // drawn in the stroke color only
}

var glyphs = map[board.PieceType]glyph{
	board.Pawn: {
		paths: []string{
			"M 15 36 L 30 36 L 27.5 24 C 27.5 20 17.5 20 17.5 24 Z",
			"M 13 38 L 32 38 L 32 35.5 L 13 35.5 Z",
		},
		circles: [][3]float64{{22.5, 15, 5.5}},
	},
	board.Knight: {
		paths: []string{
			"M 14 36 L 33 36 L 31 30 C 30 22 32 14 24 10 L 22 6.5 L 20 10 " +
				"C 16 12 12 17 10.5 22 L 12.5 24.5 L 18 21 L 19 23 C 16 26 14 30 14 36 Z",
			"M 12 39 L 35 39 L 35 36 L 12 36 Z",
		},
		details: []string{"M 16.5 15.5 L 18 15.5"},
	},
	board.Bishop: {
		paths: []string{
			"M 15 32 C 15 26 17 19 22.5 13 C 28 19 30 26 30 32 Z",
			"M 11 38 L 34 38 L 34 34.5 L 11 34.5 Z",
		},
		circles: [][3]float64{{22.5, 10, 2.5}},
		details: []string{"M 20 24 L 25 24", "M 22.5 21.5 L 22.5 26.5"},
	},
	board.Rook: {
		paths: []string{
			"M 11 36 L 34 36 L 34 32 L 31 32 L 29 17 L 32 14 L 32 9 L 28 9 L 28 11.5 " +
				"L 24.5 11.5 L 24.5 9 L 20.5 9 L 20.5 11.5 L 17 11.5 L 17 9 L 13 9 L 13 14 " +
				"L 16 17 L 14 32 L 11 32 Z",
		},
		details: []string{"M 14 32 L 31 32", "M 16 17 L 29 17"},
	},
	board.Queen: {
		paths: []string{
			"M 11 36 L 34 36 L 32 30 L 36 14 L 29 24 L 26 11 L 22.5 23 L 19 11 " +
				"L 16 24 L 9 14 L 13 30 Z",
			"M 10 39 L 35 39 L 35 36 L 10 36 Z",
		},
		circles: [][3]float64{{9, 12.5, 2}, {19, 9.5, 2}, {26, 9.5, 2}, {36, 12.5, 2}},
	},
	board.King: {
		paths: []string{
			"M 12 36 L 33 36 L 32 30 C 36 24 32 17 26 20 L 22.5 23 L 19 20 C 13 17 9 24 13 30 Z",
			"M 21 5 L 24 5 L 24 8 L 27 8 L 27 11 L 24 11 L 24 17 L 21 17 L 21 11 " +
				"L 18 11 L 18 8 L 21 8 Z",
			"M 11 39 L 34 39 L 34 36 L 11 36 Z",
		},
		details: []string{"M 13 30 L 32 30"},
	},
}

// pieceColors returns fill and outline colors.
func pieceColors(c board.Color) (string, string) {
	if c == board.White {
		return "#f8f8f8", "#1a1a1a"
	}
	return "#2b2b2b", "#0a0a0a"
}

// pieceSVG renders the glyph for p as a standalone SVG document.
func pieceSVG(p board.Piece) []byte {
	g := glyphs[p.Type()]
	fill, stroke := pieceColors(p.Color())
	detail := stroke
	if p.Color() == board.Black {
		detail = "#d0d0d0"
	}

	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">`)
	for _, d := range g.paths {
		fmt.Fprintf(&sb, `<path d="%s" fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round"/>`, d, fill, stroke)
	}
	for _, c := range g.circles {
		fmt.Fprintf(&sb, `<circle cx="%g" cy="%g" r="%g" fill="%s" stroke="%s" stroke-width="1.5"/>`, c[0], c[1], c[2], fill, stroke)
	}
	for _, d := range g.details {
		fmt.Fprintf(&sb, `<path d="%s" fill="none" stroke="%s" stroke-width="1.2" stroke-linecap="round"/>`, d, detail)
	}
	sb.WriteString(`</svg>`)
	return []byte(sb.String())
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 2.0)
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 2.0,
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterizes every piece glyph.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			piece := board.NewPiece(pt, c)

			icon, err := oksvg.ReadIconStream(bytes.NewReader(pieceSVG(piece)))
			if err != nil {
				log.Printf("Failed to parse SVG for %s: %v", piece, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y float64) {
	sprite := sm.pieces[p]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
