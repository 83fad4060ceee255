package board

import (
	"strconv"
	"strings"
)

const minColumnWidth = 2

// String renders the board as the player sees it.
func (g *Grid) String() string {
	return g.Render(false)
}

// CellText returns what Render writes for a cell.
func CellText(c *Cell, debug bool) string {
	if debug {
		return c.Debug()
	}
	return c.String()
}

// Layout returns the widths Render uses: the row label column and each cell
// column. Columns are separated by one space.
func (g *Grid) Layout(debug bool) (labelWidth, cellWidth int) {
	labelWidth = max(minColumnWidth, len(RowLabel(g.rows-1)))
	cellWidth = max(minColumnWidth, len(strconv.Itoa(g.cols)))
	if debug {
		for i := range g.cells {
			cellWidth = max(cellWidth, len(g.cells[i].Debug()))
		}
	}
	return labelWidth, cellWidth
}

// Render draws the board as text: a header of one-based column numbers, then
// one line per row prefixed with its label. With debug set each cell is
// written in its diagnostic form.
func (g *Grid) Render(debug bool) string {
	labelWidth, cellWidth := g.Layout(debug)

	var sb strings.Builder
	fields := make([]string, g.cols)

	for c := range fields {
		fields[c] = strconv.Itoa(c + 1)
	}
	writeLine(&sb, strings.Repeat(" ", labelWidth), fields, cellWidth)

	for r := 0; r < g.rows; r++ {
		for c := range fields {
			fields[c] = CellText(&g.cells[r*g.cols+c], debug)
		}
		label := RowLabel(r)
		writeLine(&sb, strings.Repeat(" ", labelWidth-len(label))+label, fields, cellWidth)
	}
	return sb.String()
}

// writeLine writes prefix, then each field after a space, left-justified to
// width. Trailing padding is trimmed.
func writeLine(sb *strings.Builder, prefix string, fields []string, width int) {
	var line strings.Builder
	line.WriteString(prefix)
	for _, f := range fields {
		line.WriteByte(' ')
		line.WriteString(f)
		line.WriteString(strings.Repeat(" ", width-len(f)))
	}
	sb.WriteString(strings.TrimRight(line.String(), " "))
	sb.WriteByte('\n')
}
