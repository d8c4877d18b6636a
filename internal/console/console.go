// Package console implements a line-oriented text front end for a game.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/chessmate/internal/board"
	"github.com/hailam/chessmate/internal/game"
	"github.com/hailam/chessmate/internal/storage"
)

const recentGames = 10

// Console reads commands from in and writes replies to out.
type Console struct {
	game  *game.Game
	store *storage.Storage // nil when running without persistence
	out   io.Writer

	verbose  bool
	started  time.Time
	recorded bool
}

// New creates a console for a fresh game. store may be nil.
func New(out io.Writer, store *storage.Storage, verbose bool) *Console {
	return &Console{
		game:    game.New(),
		store:   store,
		out:     out,
		verbose: verbose,
		started: time.Now(),
	}
}

// Game returns the game being played.
func (c *Console) Game() *game.Game {
	return c.game
}

// Run processes commands until quit or end of input.
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !c.Execute(line) {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs a single command line. It returns false when the console should exit.
func (c *Console) Execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "quit", "exit":
		c.handleQuit()
		return false
	case "help", "?":
		c.handleHelp()
	case "d", "board":
		fmt.Fprint(c.out, c.game.String())
	case "moves":
		c.handleMoves()
	case "move":
		if len(args) == 0 {
			c.errorf("usage: move <from><to>, e.g. move e2e4")
			break
		}
		c.handleMove(args[0])
	case "undo", "z":
		c.handleUndo()
	case "new", "reset":
		c.handleNewGame()
	case "status":
		c.printStatus()
	case "history":
		c.handleHistory()
	case "perft":
		c.handlePerft(args)
	case "divide":
		c.handleDivide(args)
	case "games":
		c.handleGames()
	default:
		if _, _, err := board.ParseCoordinates(cmd); err == nil {
			c.handleMove(cmd)
			break
		}
		c.errorf("unknown command %q (try help)", cmd)
	}
	return true
}

func (c *Console) errorf(format string, args ...any) {
	fmt.Fprintf(c.out, "error: "+format+"\n", args...)
}

func (c *Console) handleHelp() {
	fmt.Fprintln(c.out, "commands:")
	fmt.Fprintln(c.out, "  d, board        show the board")
	fmt.Fprintln(c.out, "  moves           list legal moves")
	fmt.Fprintln(c.out, "  move e2e4       play a move (the word move is optional)")
	fmt.Fprintln(c.out, "  undo            take back the last move")
	fmt.Fprintln(c.out, "  new, reset      start a new game")
	fmt.Fprintln(c.out, "  status          side to move, check and result")
	fmt.Fprintln(c.out, "  history         moves played so far")
	fmt.Fprintln(c.out, "  perft <n>       count move tree leaves")
	fmt.Fprintln(c.out, "  divide <n>      perft per root move")
	fmt.Fprintln(c.out, "  games           recently stored games")
	fmt.Fprintln(c.out, "  quit            leave")
}

func (c *Console) handleMoves() {
	moves := c.game.LegalMoves()
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	fmt.Fprintf(c.out, "%d legal moves: %s\n", len(moves), strings.Join(parts, " "))
}

func (c *Console) handleMove(s string) {
	m, err := c.game.PlayCoordinates(s)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrGameOver):
			c.errorf("game is over (%s); use undo or new", c.game.Result())
		case errors.Is(err, game.ErrMoveNotFound):
			from, to, _ := board.ParseCoordinates(s)
			c.errorf("illegal move %s: %s", s, c.game.Explain(from, to))
		default:
			c.errorf("%v", err)
		}
		return
	}

	notation := c.game.Notation()
	played := notation[len(notation)-1]
	if c.verbose {
		log.Printf("[MOVE] %s %s (%s)", m.Piece.Color(), m, played)
	}
	fmt.Fprintf(c.out, "played %s\n", played)

	if c.game.Over() {
		c.printStatus()
		c.recordGame()
	}
}

func (c *Console) handleUndo() {
	last := c.game.LastMove()
	if !c.game.Undo() {
		fmt.Fprintln(c.out, "nothing to undo")
		return
	}
	fmt.Fprintf(c.out, "undone %s\n", last)
}

func (c *Console) handleNewGame() {
	if !c.game.Over() && c.game.Ply() > 0 {
		c.recordGame()
	}
	c.game.Reset()
	c.started = time.Now()
	c.recorded = false
	fmt.Fprintln(c.out, "new game")
}

func (c *Console) handleQuit() {
	if !c.game.Over() && c.game.Ply() > 0 {
		c.recordGame()
	}
}

func (c *Console) printStatus() {
	switch {
	case c.game.Over():
		fmt.Fprintf(c.out, "%s %s\n", c.game.ResultText(), c.game.Result())
	case c.game.InCheck():
		fmt.Fprintf(c.out, "%s to move, in check\n", c.game.SideToMove())
	default:
		fmt.Fprintf(c.out, "%s to move\n", c.game.SideToMove())
	}
}

func (c *Console) handleHistory() {
	notation := c.game.Notation()
	if len(notation) == 0 {
		fmt.Fprintln(c.out, "no moves yet")
		return
	}
	fmt.Fprintln(c.out, formatMoveList(notation))
}

// formatMoveList numbers the plies in pairs: "1. e4 e5 2. Nf3".
func formatMoveList(notation []string) string {
	var sb strings.Builder
	for i, s := range notation {
		if i%2 == 0 {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		} else {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// parseDepth reads a positive depth argument, defaulting to def.
func parseDepth(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return 0, fmt.Errorf("invalid depth %q", args[0])
	}
	return depth, nil
}

func (c *Console) handlePerft(args []string) {
	depth, err := parseDepth(args, 3)
	if err != nil {
		c.errorf("%v", err)
		return
	}

	start := time.Now()
	nodes := c.game.Perft(depth)
	elapsed := time.Since(start)

	fmt.Fprintf(c.out, "Nodes: %d\n", nodes)
	fmt.Fprintf(c.out, "Time: %v\n", elapsed)
	if elapsed > 0 {
		nps := float64(nodes) / elapsed.Seconds()
		fmt.Fprintf(c.out, "NPS: %.0f\n", nps)
	}
}

func (c *Console) handleDivide(args []string) {
	depth, err := parseDepth(args, 1)
	if err != nil {
		c.errorf("%v", err)
		return
	}

	var total int64
	for _, e := range c.game.Divide(depth) {
		fmt.Fprintf(c.out, "%s: %d\n", e.Move, e.Nodes)
		total += e.Nodes
	}
	fmt.Fprintf(c.out, "Nodes: %d\n", total)
}

func (c *Console) handleGames() {
	if c.store == nil {
		c.errorf("storage is disabled")
		return
	}

	games, err := c.store.RecentGames(recentGames)
	if err != nil {
		c.errorf("load games: %v", err)
		return
	}
	if len(games) == 0 {
		fmt.Fprintln(c.out, "no stored games")
		return
	}
	for _, rec := range games {
		fmt.Fprintf(c.out, "#%d %s %s %d plies: %s\n",
			rec.ID, rec.FinishedAt.Format(time.DateTime), rec.Result, len(rec.Moves), formatMoveList(rec.Notation))
	}
}

// recordGame stores the current game once. Games still in progress are stored
// as abandoned.
func (c *Console) recordGame() {
	if c.store == nil || c.recorded {
		return
	}

	rec := &storage.GameRecord{
		StartedAt:  c.started,
		FinishedAt: time.Now(),
		Result:     c.game.Result().String(),
		Notation:   c.game.Notation(),
	}
	for _, m := range c.game.History() {
		rec.Moves = append(rec.Moves, m.String())
	}

	if err := c.store.RecordGame(rec); err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		return
	}
	c.recorded = true
}
