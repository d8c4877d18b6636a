package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	widgetBg          = color.RGBA{48, 52, 58, 255}
	widgetHoverBg     = color.RGBA{65, 70, 78, 255}
	widgetBorder      = color.RGBA{68, 72, 78, 255}
	widgetFocusBorder = color.RGBA{76, 175, 120, 255}
	checkboxCheck     = color.RGBA{76, 175, 120, 255}
	inputTextColor    = color.RGBA{240, 240, 245, 255}
	inputPlaceholder  = color.RGBA{120, 125, 135, 255}
	primaryPressed    = color.RGBA{56, 155, 100, 255}
	primaryHover      = color.RGBA{96, 195, 140, 255}
)

// rect is a widget's screen area in logical pixels.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r rect) fill(screen *ebiten.Image, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (r rect) stroke(screen *ebiten.Image, width float32, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

// drawText draws s with its left edge at x, vertically centered on cy.
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, cy float64, c color.Color) {
	_, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, cy-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawCentered draws s centered in r.
func drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, r rect, c color.Color) {
	w, _ := MeasureText(s, face)
	drawText(screen, s, face, float64(r.X)+float64(r.W)/2-w/2, float64(r.Y)+float64(r.H)/2, c)
}

// TextInput is a single-line editable text field.
type TextInput struct {
	rect
	Value       string
	Placeholder string
	MaxLength   int
	focused     bool
	hovered     bool
	blink       int
}

// NewTextInput creates a new text input.
func NewTextInput(x, y, w, h int, placeholder string, maxLen int) *TextInput {
	return &TextInput{
		rect:        rect{x, y, w, h},
		Placeholder: placeholder,
		MaxLength:   maxLen,
	}
}

// Update handles focus and typing. It returns true while the input has focus.
func (ti *TextInput) Update(input *InputHandler) bool {
	ti.hovered = ti.contains(input.MousePosition())
	if input.IsLeftJustPressed() {
		ti.focused = ti.hovered
	}
	if !ti.focused {
		return false
	}

	ti.blink = (ti.blink + 1) % 60

	for _, c := range ebiten.AppendInputChars(nil) {
		if ti.MaxLength == 0 || utf8.RuneCountInString(ti.Value) < ti.MaxLength {
			ti.Value += string(c)
		}
	}
	if IsKeyJustPressed(ebiten.KeyBackspace) && ti.Value != "" {
		_, size := utf8.DecodeLastRuneInString(ti.Value)
		ti.Value = ti.Value[:len(ti.Value)-size]
	}
	if IsKeyJustPressed(ebiten.KeyEscape) {
		ti.focused = false
	}
	return true
}

// Draw renders the text input.
func (ti *TextInput) Draw(screen *ebiten.Image) {
	bg := widgetBg
	if ti.hovered && !ti.focused {
		bg = widgetHoverBg
	}
	ti.fill(screen, bg)

	border := widgetBorder
	if ti.focused {
		border = widgetFocusBorder
	} else if ti.hovered {
		border = accentColor
	}
	ti.stroke(screen, 2, border)

	face := GetRegularFace()
	if face == nil {
		return
	}

	textX := float64(ti.X + 10)
	cy := float64(ti.Y) + float64(ti.H)/2
	cursorX := float32(textX)
	if ti.Value != "" {
		drawText(screen, ti.Value, face, textX, cy, inputTextColor)
		w, _ := MeasureText(ti.Value, face)
		cursorX += float32(w) + 2
	} else if ti.Placeholder != "" {
		drawText(screen, ti.Placeholder, face, textX, cy, inputPlaceholder)
	}

	if ti.focused && ti.blink < 30 {
		vector.DrawFilledRect(screen, cursorX, float32(ti.Y+8), 2, float32(ti.H-16), inputTextColor, false)
	}
}

// IsFocused returns true if the input has focus.
func (ti *TextInput) IsFocused() bool {
	return ti.focused
}

// SetFocused sets the focus state.
func (ti *TextInput) SetFocused(focused bool) {
	ti.focused = focused
}

// Checkbox is a labelled toggle.
type Checkbox struct {
	rect
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox. The hit area spans the label.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{
		rect:    rect{x, y, 240, 24},
		Label:   label,
		Checked: checked,
	}
}

// Update toggles the checkbox on click and reports whether it changed.
func (cb *Checkbox) Update(input *InputHandler) bool {
	cb.hovered = cb.contains(input.MousePosition())
	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	box := rect{cb.X, cb.Y, 20, 20}

	bg := widgetBg
	if cb.hovered {
		bg = widgetHoverBg
	}
	box.fill(screen, bg)

	border := widgetBorder
	if cb.hovered {
		border = accentColor
	} else if cb.Checked {
		border = checkboxCheck
	}
	box.stroke(screen, 2, border)

	if cb.Checked {
		x, y := float32(box.X), float32(box.Y)
		vector.StrokeLine(screen, x+4, y+10, x+8, y+14, 2, checkboxCheck, false)
		vector.StrokeLine(screen, x+8, y+14, x+16, y+6, 2, checkboxCheck, false)
	}

	face := GetRegularFace()
	if face == nil {
		return
	}
	label := textSecondary
	if cb.Checked {
		label = textPrimary
	} else if cb.hovered {
		label = inputTextColor
	}
	drawText(screen, cb.Label, face, float64(cb.X+30), float64(cb.Y+10), label)
}

// ModalButton is a button for dialogs and the side panel.
type ModalButton struct {
	rect
	Label   string
	Primary bool
	OnClick func()
	hovered bool
	pressed bool
}

// NewModalButton creates a new button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		rect:    rect{x, y, w, h},
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// Update fires OnClick when pressed and reports whether it did.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mb.hovered = mb.contains(input.MousePosition())
	mb.pressed = input.IsLeftPressed() && mb.hovered

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	bg, border := buttonBg, widgetBorder
	switch {
	case mb.Primary && mb.pressed:
		bg, border = primaryPressed, primaryPressed
	case mb.Primary && mb.hovered:
		bg, border = primaryHover, primaryHover
	case mb.Primary:
		bg, border = accentColor, primaryPressed
	case mb.pressed:
		bg = buttonPressedBg
	case mb.hovered:
		bg, border = buttonHoverBg, accentColor
	}
	mb.fill(screen, bg)
	mb.stroke(screen, 1, border)

	if face := GetRegularFace(); face != nil {
		drawCentered(screen, mb.Label, face, mb.rect, textPrimary)
	}
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	rect{x, y, w, 1}.fill(screen, dividerColor)
}

// DrawSectionHeader draws a muted section label.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	if face := GetRegularFace(); face != nil {
		drawText(screen, label, face, float64(x), float64(y), textMuted)
	}
}
