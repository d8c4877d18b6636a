package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Panel dimensions
const (
	PanelPadding   = 20
	SectionSpacing = 28
	ButtonHeight   = 40
	SectionLabelH  = 20
	moveRowHeight  = 22
	statusBarH     = 70
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	moveRowAlt      = color.RGBA{44, 48, 54, 255}
	moveRowCurrent  = color.RGBA{76, 132, 96, 255}
	statusCheck     = color.RGBA{255, 120, 100, 255}
	statusGameOver  = color.RGBA{255, 200, 80, 255}
)

// Panel is the side panel with controls, the move list and the status bar.
type Panel struct {
	game *Game

	newGameBtn  *ModalButton
	undoBtn     *ModalButton
	flipBtn     *ModalButton
	settingsBtn *ModalButton

	scrollY    int
	maxScrollY int
	lastPlies  int
}

// NewPanel creates the panel for g.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}
	p.createButtons()
	return p
}

func (p *Panel) createButtons() {
	x := BoardSize + PanelPadding
	w := PanelWidth - PanelPadding*2
	y := PanelPadding + 8

	p.newGameBtn = NewModalButton(x, y, w, ButtonHeight, "New Game", true, p.game.NewGameAction)

	y += ButtonHeight + 8
	const gap = 8
	small := (w - gap*2) / 3
	h := ButtonHeight - 6
	p.undoBtn = NewModalButton(x, y, small, h, "Undo", false, p.game.UndoAction)
	p.flipBtn = NewModalButton(x+small+gap, y, small, h, "Flip", false, p.game.FlipAction)
	p.settingsBtn = NewModalButton(x+(small+gap)*2, y, small, h, "Settings", false, p.game.ShowSettings)
}

func (p *Panel) buttons() []*ModalButton {
	return []*ModalButton{p.newGameBtn, p.undoBtn, p.flipBtn, p.settingsBtn}
}

// HandleInput processes panel input and reports whether a button consumed it.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		top := p.historyStartY()
		if mx >= BoardSize && my >= top && my < ScreenHeight-statusBarH {
			p.scrollY = clamp(p.scrollY-int(wheelY*30), 0, p.maxScrollY)
		}
	}

	for _, btn := range p.buttons() {
		if btn.Update(input) {
			return true
		}
	}
	return false
}

// AnyButtonHovered returns true if the cursor is over a panel button.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

func (p *Panel) historyStartY() int {
	return p.settingsBtn.Y + p.settingsBtn.H + SectionSpacing - 4
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	rect{BoardSize, 0, PanelWidth, ScreenHeight}.fill(screen, panelBg)

	for _, btn := range p.buttons() {
		btn.Draw(screen)
	}

	top := p.historyStartY()
	DrawSectionHeader(screen, "Moves", BoardSize+PanelPadding, top)
	p.drawMoveHistory(screen, top+SectionLabelH)

	p.drawStatusBar(screen)
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	moves := p.game.Session().Notation()
	x := BoardSize + PanelPadding
	if len(moves) == 0 {
		drawText(screen, "No moves yet", face, float64(x), float64(startY+moveRowHeight/2), textMuted)
		p.scrollY, p.maxScrollY, p.lastPlies = 0, 0, 0
		return
	}

	maxY := ScreenHeight - statusBarH - 10
	visible := maxY - startY
	rows := (len(moves) + 1) / 2
	content := rows * moveRowHeight
	p.maxScrollY = max(0, content-visible)

	// Follow the game as it grows.
	if len(moves) > p.lastPlies {
		p.scrollY = p.maxScrollY
	}
	p.lastPlies = len(moves)
	p.scrollY = clamp(p.scrollY, 0, p.maxScrollY)

	rowW := PanelWidth - PanelPadding*2 + 8
	current := len(moves) - 1
	for row := p.scrollY / moveRowHeight; row < rows; row++ {
		y := startY + row*moveRowHeight - p.scrollY
		if y+moveRowHeight > maxY {
			break
		}
		if y < startY {
			continue
		}

		if row%2 == 1 {
			rect{x - 4, y, rowW, moveRowHeight}.fill(screen, moveRowAlt)
		}

		cy := float64(y + moveRowHeight/2)
		drawText(screen, fmt.Sprintf("%d.", row+1), face, float64(x), cy, textMuted)
		for i, col := range [2]int{x + 34, x + 120} {
			ply := row*2 + i
			if ply >= len(moves) {
				break
			}
			if ply == current {
				rect{col - 4, y + 2, 80, moveRowHeight - 4}.fill(screen, moveRowCurrent)
			}
			drawText(screen, moves[ply], face, float64(col), cy, textPrimary)
		}
	}

	if p.maxScrollY > 0 {
		pct := float32(p.scrollY) / float32(p.maxScrollY)
		barH := max(float32(20), float32(visible)*float32(visible)/float32(content))
		barY := float32(startY) + pct*(float32(visible)-barH)
		rect{BoardSize + PanelWidth - 8, int(barY), 4, int(barH)}.fill(screen, textMuted)
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := ScreenHeight - statusBarH
	x := BoardSize + PanelPadding
	DrawDivider(screen, x, y-10, PanelWidth-PanelPadding*2)

	username := p.game.Username()
	if len(username) > 12 {
		username = username[:12] + "..."
	}
	drawText(screen, username, face, float64(x), float64(y+8), textPrimary)

	if stats := p.game.Stats(); stats != nil && stats.GamesPlayed > 0 {
		summary := fmt.Sprintf("%d games  %.0f%% white", stats.GamesPlayed, stats.WhiteWinRate())
		w, _ := MeasureText(summary, face)
		drawText(screen, summary, face, float64(BoardSize+PanelWidth-PanelPadding)-w, float64(y+8), textSecondary)
	}

	session := p.game.Session()
	status, c := fmt.Sprintf("%s to move", session.SideToMove()), color.Color(textPrimary)
	switch {
	case session.Over():
		status, c = session.ResultText(), statusGameOver
	case session.InCheck():
		status, c = fmt.Sprintf("%s to move, in check", session.SideToMove()), statusCheck
	}
	drawText(screen, status, face, float64(x), float64(y+32), c)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
