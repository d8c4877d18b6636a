package ui

import (
	"log"
	"time"

	"github.com/hailam/chessmate/internal/board"
	"github.com/hailam/chessmate/internal/config"
	"github.com/hailam/chessmate/internal/game"
	"github.com/hailam/chessmate/internal/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// Game implements ebiten.Game on top of a game session.
type Game struct {
	session *game.Game
	cfg     config.Config
	started time.Time

	// Board interaction
	selectedSquare board.Square
	targets        []board.Move
	dragging       bool
	dragPiece      board.Piece
	dragSquare     board.Square

	// Storage
	storage  *storage.Storage
	prefs    *storage.Preferences
	stats    *storage.Stats
	recorded bool

	// Components
	renderer      *Renderer
	input         *InputHandler
	panel         *Panel
	feedback      *FeedbackManager
	settingsModal *SettingsModal
}

// NewGame creates the window state. Storage problems are logged and the game
// runs without persistence.
func NewGame(cfg config.Config) *Game {
	g := &Game{
		session:        game.New(),
		cfg:            cfg,
		started:        time.Now(),
		selectedSquare: board.NoSquare,
		dragSquare:     board.NoSquare,
		renderer:       NewRenderer(BoardSize, SquareSize),
		input:          NewInputHandler(),
		feedback:       NewFeedbackManager(),
		settingsModal:  NewSettingsModal(),
	}
	g.panel = NewPanel(g)

	if !cfg.NoStorage {
		var err error
		g.storage, err = storage.NewStorage(cfg.DataDir)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
		}
	}

	g.loadPreferences()
	g.loadStats()
	g.checkFirstLaunch()

	return g
}

// loadPreferences loads preferences and applies them.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	if g.storage != nil {
		prefs, err := g.storage.LoadPreferences()
		if err != nil {
			log.Printf("Warning: Failed to load preferences: %v", err)
		} else {
			g.prefs = prefs
		}
	}
	if g.cfg.FlipBoard {
		g.prefs.FlipBoard = true
	}
	g.applyPreferences()
}

func (g *Game) applyPreferences() {
	g.renderer.SetFlipped(g.prefs.FlipBoard)
	g.feedback.Audio().SetEnabled(g.cfg.Sound && g.prefs.SoundEnabled)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	g.prefs.LastPlayed = time.Now()
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

func (g *Game) loadStats() {
	if g.storage == nil {
		return
	}
	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
		return
	}
	g.stats = stats
}

// checkFirstLaunch opens the settings modal as a welcome screen on first launch.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}
	if !isFirst {
		return
	}

	done := func() {
		if err := g.storage.MarkFirstLaunchComplete(); err != nil {
			log.Printf("Warning: Failed to mark first launch complete: %v", err)
		}
	}
	g.settingsModal.Show("Welcome", g.prefs, func(prefs *storage.Preferences) {
		g.prefs = prefs
		g.applyPreferences()
		g.savePreferences()
		done()
	}, done)
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	switch {
	case g.settingsModal.IsVisible():
		g.settingsModal.Update(g.input)
	case g.panel.HandleInput(g.input):
	default:
		g.handleKeys()
		g.handleBoardInput()
	}

	g.updateCursor()
	return nil
}

// handleKeys processes keyboard shortcuts.
func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyZ), IsModifierPressed() && IsKeyJustPressed(ebiten.KeyBackspace):
		g.UndoAction()
	case IsKeyJustPressed(ebiten.KeyR):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyF):
		g.FlipAction()
	case IsKeyJustPressed(ebiten.KeyEscape):
		g.clearSelection()
	}
}

// updateCursor sets the pointer cursor over buttons.
func (g *Game) updateCursor() {
	if !g.settingsModal.IsVisible() && g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)

	if g.session.InCheck() {
		g.renderer.DrawCheck(screen, g.session.KingSquare(g.session.SideToMove()))
	}

	var targets []board.Move
	if g.prefs.ShowLegalMoves {
		targets = g.targets
	}
	g.renderer.DrawHighlights(screen, g.selectedSquare, targets, g.session.LastMove())

	dragSquare := board.NoSquare
	if g.dragging {
		dragSquare = g.dragSquare
	}
	g.renderer.DrawPieces(screen, g.session.Board(), dragSquare, g.feedback.Animations())

	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.dragPiece, mx, my)
	}

	g.feedback.Draw(screen, g.renderer)
	g.panel.Draw(screen)
	g.settingsModal.Draw(screen)
}

// Layout returns the logical screen size. Ebitengine scales it to the window
// and the device.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// handleBoardInput processes clicks and drags on the board.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()

	if g.input.IsLeftJustPressed() {
		sq := g.renderer.ScreenToSquare(mx, my)
		if sq == board.NoSquare {
			return
		}
		g.handlePress(sq)
		return
	}

	if g.dragging && g.input.IsLeftJustReleased() {
		g.handleDragRelease(mx, my)
	}
}

// handlePress selects own pieces, or tries the selected piece's move to sq.
func (g *Game) handlePress(sq board.Square) {
	if g.session.Over() {
		g.feedback.OnInvalidMove(sq, board.NoSquare, game.ReasonGameOver)
		return
	}

	piece := g.session.PieceAt(sq)
	if piece != board.NoPiece && piece.Color() == g.session.SideToMove() {
		// Dropping the king on its own rook castles.
		if g.selectedSquare != board.NoSquare {
			if m, ok := g.session.FindMove(g.selectedSquare, sq); ok {
				g.makeMove(m)
				return
			}
		}
		if sq == g.selectedSquare {
			g.clearSelection()
			return
		}
		g.selectSquare(sq)
		g.startDrag(sq)
		return
	}

	if g.selectedSquare == board.NoSquare {
		if piece != board.NoPiece {
			g.feedback.OnInvalidMove(sq, board.NoSquare, game.ReasonNotYourTurn)
		}
		return
	}

	g.tryMove(g.selectedSquare, sq)
}

// selectSquare selects a square and collects its legal moves.
func (g *Game) selectSquare(sq board.Square) {
	g.selectedSquare = sq
	g.targets = g.session.MovesFrom(sq)
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selectedSquare = board.NoSquare
	g.targets = nil
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoSquare
}

// startDrag begins dragging a piece.
func (g *Game) startDrag(sq board.Square) {
	g.dragging = true
	g.dragPiece = g.session.PieceAt(sq)
	g.dragSquare = sq
}

// handleDragRelease plays the dragged piece where it was dropped. A release
// without movement keeps the selection for a second click.
func (g *Game) handleDragRelease(mx, my int) {
	from := g.dragSquare
	g.dragging = false
	g.dragSquare = board.NoSquare

	target := g.renderer.ScreenToSquare(mx, my)
	if target == from || !g.input.Dragged() {
		return
	}
	if target == board.NoSquare {
		g.clearSelection()
		return
	}
	g.tryMove(from, target)
}

// tryMove plays src to dst if legal and otherwise explains why not.
func (g *Game) tryMove(src, dst board.Square) {
	if m, ok := g.session.FindMove(src, dst); ok {
		g.makeMove(m)
		return
	}
	g.feedback.OnInvalidMove(src, dst, g.session.Explain(src, dst))
	g.clearSelection()
}

// makeMove plays a legal move and reports it.
func (g *Game) makeMove(m board.Move) {
	if g.cfg.Verbose {
		log.Printf("[MOVE] %s plays %s", g.session.SideToMove(), m)
	}

	if err := g.session.Play(m); err != nil {
		g.feedback.Error(err.Error())
		g.clearSelection()
		return
	}

	g.clearSelection()
	g.feedback.OnMoveMade(m, g.session.InCheck() && !g.session.Over())
	g.checkGameEnd()
}

// checkGameEnd announces and records a finished game.
func (g *Game) checkGameEnd() {
	if !g.session.Over() {
		return
	}
	g.feedback.OnGameOver(g.session)
	g.recordGame()
}

// recordGame stores the current game once. Games still in progress are stored
// as abandoned.
func (g *Game) recordGame() {
	if g.storage == nil || g.recorded || g.session.Ply() == 0 {
		return
	}

	rec := &storage.GameRecord{
		StartedAt:  g.started,
		FinishedAt: time.Now(),
		Result:     g.session.Result().String(),
		Notation:   g.session.Notation(),
	}
	for _, m := range g.session.History() {
		rec.Moves = append(rec.Moves, m.String())
	}

	if err := g.storage.RecordGame(rec); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		return
	}
	g.recorded = true
	g.loadStats()
}

// NewGameAction records the current game and starts a new one.
func (g *Game) NewGameAction() {
	g.recordGame()
	g.session.Reset()
	g.started = time.Now()
	g.recorded = false
	g.clearSelection()
	g.feedback.Info("New game")
}

// UndoAction takes back the last move. Undoing a finished game reopens it.
func (g *Game) UndoAction() {
	if !g.session.Undo() {
		g.feedback.Info("Nothing to undo")
		return
	}
	g.clearSelection()
	g.feedback.OnUndo()
}

// FlipAction turns the board around and remembers the orientation.
func (g *Game) FlipAction() {
	g.prefs.FlipBoard = !g.renderer.Flipped()
	g.renderer.SetFlipped(g.prefs.FlipBoard)
	g.savePreferences()
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.clearSelection()
	g.settingsModal.Show("Settings", g.prefs, func(prefs *storage.Preferences) {
		g.prefs = prefs
		g.applyPreferences()
		g.savePreferences()
	}, nil)
}

// Session returns the underlying game session.
func (g *Game) Session() *game.Game {
	return g.session
}

// Username returns the player's name.
func (g *Game) Username() string {
	return g.prefs.Username
}

// Stats returns the stored totals, or nil without storage.
func (g *Game) Stats() *storage.Stats {
	return g.stats
}

// Close records an unfinished game and closes storage.
func (g *Game) Close() {
	g.recordGame()
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			log.Printf("Warning: Failed to close storage: %v", err)
		}
	}
}
