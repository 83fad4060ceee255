// Package board implements the minesweeper grid: cells, mine placement,
// coordinate resolution, flood-fill reveal and text rendering.
package board

import (
	"fmt"
	"strconv"
)

// MaxAdjacent is the largest possible number of mines around a cell.
const MaxAdjacent = 8

// Display glyphs.
const (
	GlyphFlag   = 'F'
	GlyphHidden = '-'
	GlyphMine   = 'M'
	GlyphEmpty  = '.'
)

// CellState is the player-visible state of a cell.
type CellState int

const (
	// Hidden cells can be flagged or cleared.
	Hidden CellState = iota
	// Flagged cells can only be unflagged.
	Flagged
	// Cleared is terminal.
	Cleared
)

// String returns a human-readable state name.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Cell is a single square of the grid. The grid owns every cell; a cell
// knows its own coordinates but nothing about its neighbors.
type Cell struct {
	row, col int
	cleared  bool
	mine     bool
	flagged  bool
	adjacent int
}

// newCell creates a hidden, empty cell at the given zero-based position.
func newCell(row, col int) Cell {
	return Cell{row: row, col: col}
}

// Row returns the zero-based row index.
func (c *Cell) Row() int { return c.row }

// Col returns the zero-based column index.
func (c *Cell) Col() int { return c.col }

// Cleared reports whether the cell has been revealed.
func (c *Cell) Cleared() bool { return c.cleared }

// IsMine reports whether the cell holds a mine.
func (c *Cell) IsMine() bool { return c.mine }

// Flagged reports whether the player has flagged the cell.
func (c *Cell) Flagged() bool { return c.flagged }

// AdjacentCount returns the number of mines among the cell's neighbors.
func (c *Cell) AdjacentCount() int { return c.adjacent }

// State returns the cell's position in the hidden/flagged/cleared state machine.
func (c *Cell) State() CellState {
	switch {
	case c.cleared:
		return Cleared
	case c.flagged:
		return Flagged
	default:
		return Hidden
	}
}

// Coords returns the cell's coordinates as the player types them, e.g. "B:3".
func (c *Cell) Coords() string {
	return RowLabel(c.row) + ":" + strconv.Itoa(c.col+1)
}

// Clear reveals the cell. Flagged and already cleared cells cannot be cleared.
func (c *Cell) Clear() error {
	if c.flagged {
		return fmt.Errorf("cell [%s]: %w", c.Coords(), ErrFlagged)
	}
	if c.cleared {
		return fmt.Errorf("cell [%s]: %w", c.Coords(), ErrAlreadyCleared)
	}
	c.cleared = true
	return nil
}

// forceClear reveals the cell regardless of its flag. Used for the
// end-of-game mine reveal only.
func (c *Cell) forceClear() {
	c.flagged = false
	c.cleared = true
}

// SetAdjacentCount stores the neighbor mine count, which must be within [0, 8].
func (c *Cell) SetAdjacentCount(n int) error {
	if n < 0 || n > MaxAdjacent {
		return fmt.Errorf("cell [%s]: %w: %d", c.Coords(), ErrCountOutOfRange, n)
	}
	c.adjacent = n
	return nil
}

// Flag marks the cell. Flagging a flagged cell is a no-op.
func (c *Cell) Flag() error {
	if c.cleared {
		return fmt.Errorf("cell [%s]: %w", c.Coords(), ErrClearedFlag)
	}
	c.flagged = true
	return nil
}

// Unflag removes the player's flag.
func (c *Cell) Unflag() error {
	if !c.flagged {
		return fmt.Errorf("cell [%s]: %w", c.Coords(), ErrNotFlagged)
	}
	c.flagged = false
	return nil
}

// Glyph returns the cell's display character.
func (c *Cell) Glyph() rune {
	switch {
	case c.flagged:
		return GlyphFlag
	case !c.cleared:
		return GlyphHidden
	case c.mine:
		return GlyphMine
	case c.adjacent > 0:
		return rune('0' + c.adjacent)
	default:
		return GlyphEmpty
	}
}

// String returns the glyph as a string.
func (c *Cell) String() string {
	return string(c.Glyph())
}

// Debug returns a compact diagnostic form: [coords]glyph|<mine><count><flag><cleared>.
func (c *Cell) Debug() string {
	mine, flag, cleared := '-', '-', '-'
	if c.mine {
		mine = 'B'
	}
	if c.flagged {
		flag = 'F'
	}
	if c.cleared {
		cleared = 'C'
	}
	return fmt.Sprintf("[%s]%c|%c%d%c%c", c.Coords(), c.Glyph(), mine, c.adjacent, flag, cleared)
}
