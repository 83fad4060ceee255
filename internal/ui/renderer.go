package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/gamedata"
)

// View is everything the renderer needs for one frame.
type View struct {
	Grid      *board.Grid
	CursorRow int
	CursorCol int
	Debug     bool
	Status    string
	Help      string
}

// Renderer handles drawing the board to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the board, the cursor and the message lines.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	g := v.Grid
	labelWidth, cellWidth := g.Layout(v.Debug)
	labelStyle := tcell.StyleDefault.Foreground(r.theme.Label)

	// Column header
	for c := 0; c < g.Cols(); c++ {
		r.screen.SetString(cellX(labelWidth, cellWidth, c), 0, strconv.Itoa(c+1), labelStyle)
	}

	for row := 0; row < g.Rows(); row++ {
		y := row + 1
		label := board.RowLabel(row)
		r.screen.SetString(labelWidth-len(label), y, label, labelStyle)

		for col := 0; col < g.Cols(); col++ {
			cell := g.CellAtIndex(row, col)
			style := tcell.StyleDefault.Foreground(r.theme.GlyphColor(cell.Glyph()))
			if row == v.CursorRow && col == v.CursorCol {
				style = style.Background(r.theme.Cursor).Bold(true)
			}
			r.screen.SetString(cellX(labelWidth, cellWidth, col), y, board.CellText(cell, v.Debug), style)
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(r.theme.Status)
	r.RenderMessage(v.Status, g.Rows()+2, statusStyle)
	r.RenderMessage(v.Help, g.Rows()+3, statusStyle.Dim(true))

	r.screen.Show()
}

// RenderMessage displays a message on line y.
func (r *Renderer) RenderMessage(msg string, y int, style tcell.Style) {
	r.screen.SetString(0, y, msg, style)
}

// CellAt maps a screen position to the board cell drawn there.
func (r *Renderer) CellAt(g *board.Grid, debug bool, x, y int) (row, col int, ok bool) {
	labelWidth, cellWidth := g.Layout(debug)
	row = y - 1
	if row < 0 || row >= g.Rows() || x < labelWidth+1 {
		return 0, 0, false
	}
	offset := x - (labelWidth + 1)
	col = offset / (cellWidth + 1)
	if col >= g.Cols() || offset%(cellWidth+1) >= cellWidth {
		return 0, 0, false
	}
	return row, col, true
}

// cellX returns the screen column where cell column col starts.
func cellX(labelWidth, cellWidth, col int) int {
	return labelWidth + 1 + col*(cellWidth+1)
}
