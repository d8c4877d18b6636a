package ui

import (
	"image/color"

	"github.com/hailam/chessmate/internal/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// Settings modal dimensions
const (
	SettingsWidth  = 380
	SettingsHeight = 360
	SettingsPadX   = 24
	SettingsPadY   = 20
	settingsHeader = 44
)

var (
	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// SettingsModal edits the player's preferences. On first launch it doubles as
// the welcome screen.
type SettingsModal struct {
	visible bool
	title   string
	frame   rect

	usernameInput *TextInput
	flipCheckbox  *Checkbox
	legalCheckbox *Checkbox
	soundCheckbox *Checkbox
	saveBtn       *ModalButton
	cancelBtn     *ModalButton

	base     storage.Preferences
	onSave   func(*storage.Preferences)
	onCancel func()
}

// NewSettingsModal creates a hidden settings modal centered on screen.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{
		frame: rect{
			X: (ScreenWidth - SettingsWidth) / 2,
			Y: (ScreenHeight - SettingsHeight) / 2,
			W: SettingsWidth,
			H: SettingsHeight,
		},
	}
	sm.createWidgets()
	return sm
}

func (sm *SettingsModal) createWidgets() {
	x := sm.frame.X + SettingsPadX
	w := SettingsWidth - SettingsPadX*2

	inputY := sm.frame.Y + settingsHeader + 32
	sm.usernameInput = NewTextInput(x, inputY, w, 36, "Enter your name", 20)

	boardY := inputY + 36 + 40
	sm.flipCheckbox = NewCheckbox(x, boardY, "Black at the bottom", false)
	sm.legalCheckbox = NewCheckbox(x, boardY+32, "Show legal moves", true)

	audioY := boardY + 32 + 60
	sm.soundCheckbox = NewCheckbox(x, audioY, "Sound effects", true)

	const btnW, btnH, gap = 100, 38, 12
	btnY := sm.frame.Y + SettingsHeight - SettingsPadY - btnH
	right := sm.frame.X + SettingsWidth - SettingsPadX
	sm.cancelBtn = NewModalButton(right-btnW*2-gap, btnY, btnW, btnH, "Cancel", false, sm.handleCancel)
	sm.saveBtn = NewModalButton(right-btnW, btnY, btnW, btnH, "Save", true, sm.handleSave)
}

// Show opens the modal with prefs loaded into the widgets.
func (sm *SettingsModal) Show(title string, prefs *storage.Preferences, onSave func(*storage.Preferences), onCancel func()) {
	sm.visible = true
	sm.title = title
	sm.base = *prefs
	sm.onSave = onSave
	sm.onCancel = onCancel

	sm.usernameInput.Value = prefs.Username
	sm.flipCheckbox.Checked = prefs.FlipBoard
	sm.legalCheckbox.Checked = prefs.ShowLegalMoves
	sm.soundCheckbox.Checked = prefs.SoundEnabled
}

// Hide closes the modal.
func (sm *SettingsModal) Hide() {
	sm.visible = false
	sm.usernameInput.SetFocused(false)
}

// IsVisible returns true if the modal is open.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) handleSave() {
	prefs := sm.base
	prefs.Username = sm.usernameInput.Value
	prefs.FlipBoard = sm.flipCheckbox.Checked
	prefs.ShowLegalMoves = sm.legalCheckbox.Checked
	prefs.SoundEnabled = sm.soundCheckbox.Checked
	if prefs.Username == "" {
		prefs.Username = storage.DefaultPreferences().Username
	}

	sm.Hide()
	if sm.onSave != nil {
		sm.onSave(&prefs)
	}
}

func (sm *SettingsModal) handleCancel() {
	sm.Hide()
	if sm.onCancel != nil {
		sm.onCancel()
	}
}

// Update handles input while the modal is open. It consumes all input.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEscape) && !sm.usernameInput.IsFocused() {
		sm.handleCancel()
		return true
	}
	if IsKeyJustPressed(ebiten.KeyEnter) {
		sm.handleSave()
		return true
	}

	sm.usernameInput.Update(input)
	sm.flipCheckbox.Update(input)
	sm.legalCheckbox.Update(input)
	sm.soundCheckbox.Update(input)
	if !sm.saveBtn.Update(input) {
		sm.cancelBtn.Update(input)
	}
	return true
}

// Draw renders the modal over a dimmed screen.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	rect{0, 0, ScreenWidth, ScreenHeight}.fill(screen, modalOverlay)
	sm.frame.fill(screen, modalBg)
	sm.frame.stroke(screen, 2, modalBorder)

	header := rect{sm.frame.X, sm.frame.Y, SettingsWidth, settingsHeader}
	header.fill(screen, modalHeader)
	if face := GetBoldFace(); face != nil {
		drawCentered(screen, sm.title, face, header, textPrimary)
	}

	x := sm.frame.X + SettingsPadX
	DrawSectionHeader(screen, "Player Name", x, sm.usernameInput.Y-14)
	DrawSectionHeader(screen, "Board", x, sm.flipCheckbox.Y-16)
	DrawSectionHeader(screen, "Audio", x, sm.soundCheckbox.Y-16)

	sm.usernameInput.Draw(screen)
	sm.flipCheckbox.Draw(screen)
	sm.legalCheckbox.Draw(screen)
	sm.soundCheckbox.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}
