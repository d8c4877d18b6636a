package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// dragThreshold is how far the cursor travels before a press becomes a drag.
const dragThreshold = 4

// InputHandler tracks the pointer for one frame.
type InputHandler struct {
	mouseX, mouseY int
	pressX, pressY int

	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update samples the pointer. Call this once per frame.
func (ih *InputHandler) Update() {
	ih.mouseX, ih.mouseY = ebiten.CursorPosition()

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if ih.leftJustPressed {
		ih.pressX, ih.pressY = ih.mouseX, ih.mouseY
	}
}

// MousePosition returns the cursor position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftJustReleased returns true if the left mouse button was just released.
func (ih *InputHandler) IsLeftJustReleased() bool {
	return ih.leftJustReleased
}

// IsLeftPressed returns true if the left mouse button is held.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// Dragged reports whether the cursor left the press point by more than the threshold.
func (ih *InputHandler) Dragged() bool {
	dx := ih.mouseX - ih.pressX
	dy := ih.mouseY - ih.pressY
	return dx*dx+dy*dy > dragThreshold*dragThreshold
}

// IsInBounds returns true if the cursor is within the given rectangle.
func (ih *InputHandler) IsInBounds(x, y, w, h int) bool {
	return ih.mouseX >= x && ih.mouseX < x+w && ih.mouseY >= y && ih.mouseY < y+h
}

// ClickedInBounds returns true if the left button was just pressed within the rectangle.
func (ih *InputHandler) ClickedInBounds(x, y, w, h int) bool {
	return ih.leftJustPressed && ih.IsInBounds(x, y, w, h)
}

// IsKeyJustPressed returns true if the key was pressed this frame.
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// IsModifierPressed returns true if Control or Meta is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}
