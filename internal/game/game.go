package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/ui"
)

const helpLine = "arrows/hjkl move  space reveal  f flag  d debug  n new  p preset  q quit"

// Game is the full-screen terminal front end.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	presets  *gamedata.PresetRegistry
	preset   *gamedata.PresetDef
	session  *Session
	opts     []SessionOption
	log      logrus.FieldLogger

	cursorRow, cursorCol int
	debug                bool
	message              string
	running              bool
}

// New creates a game on screen, starting with preset.
func New(screen *ui.Screen, theme *gamedata.Theme, presets *gamedata.PresetRegistry, preset *gamedata.PresetDef, debug bool, opts ...SessionOption) *Game {
	if preset == nil {
		preset = presets.Default()
	}
	o := sessionOptions{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		presets:  presets,
		preset:   preset,
		opts:     opts,
		log:      o.logger,
		debug:    debug,
		running:  true,
	}
}

// Run executes the main game loop until the player quits or ctx is cancelled,
// in which case it returns the context's error.
func (g *Game) Run(ctx context.Context) error {
	if err := g.newSession(ctx); err != nil {
		g.screen.Close()
		return err
	}

	stop := context.AfterFunc(ctx, g.screen.Interrupt)
	defer stop()

	for g.running {
		if err := ctx.Err(); err != nil {
			break
		}
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	return ctx.Err()
}

// newSession replaces the current board with a fresh one of the current preset.
func (g *Game) newSession(ctx context.Context) error {
	s, err := NewSession(ctx, *g.preset, g.opts...)
	if err != nil {
		return fmt.Errorf("start %s: %w", g.preset.ID, err)
	}
	g.session = s
	g.cursorRow, g.cursorCol = 0, 0
	g.message = g.preset.String()
	return nil
}

func (g *Game) render() {
	g.renderer.Render(ui.View{
		Grid:      g.session.Grid(),
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
		Debug:     g.debug,
		Status:    g.message,
		Help:      helpLine,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		// posted when ctx is cancelled; the loop checks ctx next
	case nil:
		// screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.moveCursor(-1, 0)
	case tcell.KeyDown:
		g.moveCursor(1, 0)
	case tcell.KeyLeft:
		g.moveCursor(0, -1)
	case tcell.KeyRight:
		g.moveCursor(0, 1)
	case tcell.KeyEnter:
		g.act(ctx, ActionReveal)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.moveCursor(-1, 0)
		case 'j':
			g.moveCursor(1, 0)
		case 'h':
			g.moveCursor(0, -1)
		case 'l':
			g.moveCursor(0, 1)
		case ' ', 'r':
			g.act(ctx, ActionReveal)
		case 'f':
			g.toggleFlag(ctx)
		case 'd':
			g.debug = !g.debug
		case 'n':
			g.restart(ctx, g.preset)
		case 'p':
			g.restart(ctx, g.presets.Next(g.preset))
		}
	}
}

// handleMouseEvent reveals on left click and toggles a flag on right click.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	x, y := ev.Position()
	row, col, ok := g.renderer.CellAt(g.session.Grid(), g.debug, x, y)
	if !ok {
		return
	}

	switch ev.Buttons() {
	case tcell.Button1:
		g.cursorRow, g.cursorCol = row, col
		g.act(ctx, ActionReveal)
	case tcell.Button2, tcell.Button3:
		g.cursorRow, g.cursorCol = row, col
		g.toggleFlag(ctx)
	}
}

// moveCursor moves the cursor by the given delta, staying on the board.
func (g *Game) moveCursor(dr, dc int) {
	grid := g.session.Grid()
	g.cursorRow = min(max(g.cursorRow+dr, 0), grid.Rows()-1)
	g.cursorCol = min(max(g.cursorCol+dc, 0), grid.Cols()-1)
}

func (g *Game) toggleFlag(ctx context.Context) {
	cell := g.session.Grid().CellAtIndex(g.cursorRow, g.cursorCol)
	if cell != nil && cell.Flagged() {
		g.act(ctx, ActionUnflag)
		return
	}
	g.act(ctx, ActionFlag)
}

// act sends the action at the cursor through the session, exactly as a typed
// console command would be.
func (g *Game) act(ctx context.Context, action Action) {
	cmd := Command{
		Action: action,
		Row:    board.RowLabel(g.cursorRow),
		Col:    strconv.Itoa(g.cursorCol + 1),
	}

	state, err := g.session.Apply(ctx, cmd)
	switch {
	case errors.Is(err, ErrGameOver) && state == StateWon:
		g.message = "You already won. Press n for a new game."
	case errors.Is(err, ErrGameOver):
		g.message = "Game over. Press n for a new game."
	case err != nil:
		g.message = err.Error()
	case state == StateWon:
		g.message = fmt.Sprintf("You win! %d moves. Press n for a new game.", g.session.Moves())
	case state == StateLost:
		g.message = "Game over. Press n for a new game."
	default:
		grid := g.session.Grid()
		g.message = fmt.Sprintf("%s  mines %d  flags %d", g.preset.String(), grid.MineCount(), grid.FlagCount())
	}
}

func (g *Game) restart(ctx context.Context, preset *gamedata.PresetDef) {
	prev := g.preset
	g.preset = preset
	if err := g.newSession(ctx); err != nil {
		g.log.WithError(err).Error("Failed to start session")
		g.preset = prev
		g.message = err.Error()
	}
}
