package ui

import (
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/hailam/chessmate/internal/board"
	"github.com/hailam/chessmate/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastType selects a toast's colors.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

const toastFade = 200 * time.Millisecond

// Toast is a short message drawn over the board.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// alpha is the toast's opacity at now, fading at both ends.
func (t *Toast) alpha(now time.Time) float64 {
	elapsed := now.Sub(t.StartTime)
	switch {
	case elapsed < toastFade:
		return float64(elapsed) / float64(toastFade)
	case elapsed > t.Duration-toastFade:
		return math.Max(0, float64(t.Duration-elapsed)/float64(toastFade))
	default:
		return 1
	}
}

func (t *Toast) colors(alpha float64) (bg, fg color.RGBA) {
	a := uint8(220 * alpha)
	fg = color.RGBA{255, 255, 255, uint8(255 * alpha)}
	switch t.Type {
	case ToastWarning:
		return color.RGBA{180, 140, 20, a}, color.RGBA{40, 30, 0, uint8(255 * alpha)}
	case ToastError:
		return color.RGBA{180, 50, 50, a}, fg
	case ToastSuccess:
		return color.RGBA{50, 150, 50, a}, fg
	default:
		return color.RGBA{50, 100, 150, a}, fg
	}
}

// ToastManager keeps a short stack of toasts.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show adds a toast, dropping the oldest when the stack is full.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Clear removes every toast.
func (tm *ToastManager) Clear() {
	tm.toasts = nil
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders the toasts centered over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	const padding = 12.0
	now := time.Now()
	y := 50.0
	for _, t := range tm.toasts {
		bg, fg := t.colors(t.alpha(now))

		w, h := MeasureText(t.Message, face)
		boxW, boxH := w+padding*2, h+padding*2
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8
	}
}

// timedEffect is an animation attached to one square.
type timedEffect struct {
	square   board.Square
	start    time.Time
	duration time.Duration
}

func (e timedEffect) progress(now time.Time) float64 {
	return float64(now.Sub(e.start)) / float64(e.duration)
}

type shake struct {
	timedEffect
	intensity float64
}

type flash struct {
	timedEffect
	color color.RGBA
}

// AnimationManager runs piece shakes and square flashes.
type AnimationManager struct {
	shakes  []shake
	flashes []flash
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake shakes the piece on sq.
func (am *AnimationManager) StartShake(sq board.Square) {
	am.shakes = append(am.shakes, shake{
		timedEffect: timedEffect{square: sq, start: time.Now(), duration: 300 * time.Millisecond},
		intensity:   8,
	})
}

// StartFlash tints sq and fades out.
func (am *AnimationManager) StartFlash(sq board.Square, c color.RGBA) {
	am.flashes = append(am.flashes, flash{
		timedEffect: timedEffect{square: sq, start: time.Now(), duration: 400 * time.Millisecond},
		color:       c,
	})
}

// Update removes finished animations.
func (am *AnimationManager) Update() {
	now := time.Now()

	shakes := am.shakes[:0]
	for _, s := range am.shakes {
		if s.progress(now) < 1 {
			shakes = append(shakes, s)
		}
	}
	am.shakes = shakes

	flashes := am.flashes[:0]
	for _, f := range am.flashes {
		if f.progress(now) < 1 {
			flashes = append(flashes, f)
		}
	}
	am.flashes = flashes
}

// ShakeOffset returns the horizontal displacement for a piece on sq.
func (am *AnimationManager) ShakeOffset(sq board.Square) (float64, float64) {
	now := time.Now()
	for _, s := range am.shakes {
		if s.square != sq {
			continue
		}
		p := s.progress(now)
		if p >= 1 {
			return 0, 0
		}
		// Damped sine.
		return s.intensity * math.Exp(-5*p) * math.Sin(40*p), 0
	}
	return 0, 0
}

// DrawFlashes renders the active flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer) {
	now := time.Now()
	size := float32(renderer.SquareSize())
	for _, f := range am.flashes {
		p := f.progress(now)
		if p >= 1 {
			continue
		}
		c := f.color
		c.A = uint8(float64(c.A) * (1 - p))

		x, y := renderer.SquareToScreen(f.square)
		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}
}

// FeedbackManager turns game events into toasts, animations and sounds.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update advances toasts and animations.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders flashes and toasts.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer) {
	fm.animations.DrawFlashes(screen, renderer)
	fm.toasts.Draw(screen)
}

// Animations returns the animation manager for the renderer.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Audio returns the audio manager.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// Info shows a plain informational toast.
func (fm *FeedbackManager) Info(message string) {
	fm.toasts.Show(message, ToastInfo, 2*time.Second)
}

// Error shows an error toast.
func (fm *FeedbackManager) Error(message string) {
	fm.toasts.Show(message, ToastError, 3*time.Second)
}

// OnInvalidMove shakes the piece, flashes the target and explains the rejection.
func (fm *FeedbackManager) OnInvalidMove(from, to board.Square, reason game.Reason) {
	msg := reason.String()
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	fm.toasts.Show(msg, ToastWarning, 2*time.Second)
	fm.animations.StartShake(from)
	if to.IsValid() {
		fm.animations.StartFlash(to, color.RGBA{255, 80, 80, 150})
	}
	fm.audio.Play(SoundInvalid)
}

// OnMoveMade plays the sound matching the move.
func (fm *FeedbackManager) OnMoveMade(m board.Move, check bool) {
	switch {
	case check:
		fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
		fm.audio.Play(SoundCheck)
	case m.Castle:
		fm.audio.Play(SoundCastle)
	case m.Promotion:
		fm.audio.Play(SoundPromote)
	case m.IsCapture():
		fm.audio.Play(SoundCapture)
	default:
		fm.audio.Play(SoundMove)
	}
}

// OnGameOver announces the result.
func (fm *FeedbackManager) OnGameOver(g *game.Game) {
	kind := ToastInfo
	if g.Checkmate() {
		kind = ToastSuccess
	}
	fm.toasts.Show(g.ResultText(), kind, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// OnUndo clears stale toasts.
func (fm *FeedbackManager) OnUndo() {
	fm.toasts.Clear()
}
