package board

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the board: a rows×cols arena of cells plus the running tallies
// needed for win detection.
type Grid struct {
	rows, cols  int
	cells       []Cell
	mineCount   int
	minesPlaced bool
	cleared     int
	sampler     Sampler
}

// Option configures a Grid.
type Option func(*Grid)

// WithSampler sets the sampler PlaceMines draws mine positions from.
func WithSampler(s Sampler) Option {
	return func(g *Grid) {
		if s != nil {
			g.sampler = s
		}
	}
}

// WithRand makes PlaceMines sample from rng.
func WithRand(rng *rand.Rand) Option {
	return func(g *Grid) {
		g.sampler = NewRandSampler(rng)
	}
}

// neighborOffsets is the 3×3 block around a cell minus its centre, row-major.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewGrid creates a grid of hidden, mine-free cells.
func NewGrid(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = newCell(r, c)
		}
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.sampler == nil {
		g.sampler = NewRandSampler(nil)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// MineCount returns the number of mines placed.
func (g *Grid) MineCount() int { return g.mineCount }

// MinesPlaced reports whether PlaceMines has run.
func (g *Grid) MinesPlaced() bool { return g.minesPlaced }

// ClearedCount returns how many non-mine cells have been revealed.
func (g *Grid) ClearedCount() int { return g.cleared }

// FlagCount returns how many cells are currently flagged.
func (g *Grid) FlagCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].flagged {
			n++
		}
	}
	return n
}

// IsClear reports whether every non-mine cell has been revealed.
func (g *Grid) IsClear() bool {
	return g.minesPlaced && g.cleared+g.mineCount == len(g.cells)
}

// inBounds reports whether the zero-based position lies on the grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cells yields every cell in row-major order.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// CellAtIndex returns the cell at zero-based indices, or nil if outside the grid.
func (g *Grid) CellAtIndex(row, col int) *Cell {
	if !g.inBounds(row, col) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// CellAt resolves player coordinates (row label, one-based column) to a cell.
func (g *Grid) CellAt(row, col string) (*Cell, error) {
	r, c, err := ParseCoordinates(row, col, g.rows, g.cols)
	if err != nil {
		return nil, err
	}
	return &g.cells[r*g.cols+c], nil
}

// CellAtPosition resolves a linear row-major position to a cell.
func (g *Grid) CellAtPosition(pos int) (*Cell, error) {
	if pos < 0 || pos/g.cols >= g.rows {
		return nil, fmt.Errorf("%w: position %d", ErrIndexOutOfRange, pos)
	}
	return &g.cells[pos], nil
}

// Neighbors yields the up-to-eight cells around (row, col) in row-major order,
// skipping positions that fall off the grid.
func (g *Grid) Neighbors(row, col int) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, off := range neighborOffsets {
			r, c := row+off[0], col+off[1]
			if !g.inBounds(r, c) {
				continue
			}
			if !yield(&g.cells[r*g.cols+c]) {
				return
			}
		}
	}
}

// PlaceMines places count mines at positions drawn from the grid's sampler.
func (g *Grid) PlaceMines(count int) error {
	if err := g.checkPlacement(count); err != nil {
		return err
	}
	return g.placeMines(count, g.sampler.Sample(len(g.cells), count))
}

// PlaceMinesAt places count mines at the first count of the given positions.
func (g *Grid) PlaceMinesAt(count int, positions []int) error {
	if err := g.checkPlacement(count); err != nil {
		return err
	}
	if len(positions) < count {
		return fmt.Errorf("%w: %d positions for %d mines", ErrInvalidMineCount, len(positions), count)
	}
	return g.placeMines(count, positions[:count])
}

func (g *Grid) checkPlacement(count int) error {
	if g.minesPlaced {
		return fmt.Errorf("%w (%d)", ErrMinesPlaced, g.mineCount)
	}
	if count < 0 || count >= len(g.cells) {
		return fmt.Errorf("%w: %d mines on %d cells", ErrInvalidMineCount, count, len(g.cells))
	}
	return nil
}

// placeMines validates every position before touching any cell.
func (g *Grid) placeMines(count int, positions []int) error {
	if len(positions) != count {
		return fmt.Errorf("%w: sampler returned %d of %d positions", ErrInvalidMineCount, len(positions), count)
	}
	seen := mapset.New[int]()
	for _, pos := range positions {
		if pos < 0 || pos >= len(g.cells) {
			return fmt.Errorf("%w: position %d", ErrIndexOutOfRange, pos)
		}
		if seen.Has(pos) {
			return fmt.Errorf("%w: %d", ErrDuplicatePosition, pos)
		}
		seen.Put(pos)
	}

	for _, pos := range positions {
		cell := &g.cells[pos]
		cell.mine = true
		for n := range g.Neighbors(cell.row, cell.col) {
			// at most 8 mines can surround a cell, so this cannot fail
			_ = n.SetAdjacentCount(n.adjacent + 1)
		}
	}
	g.mineCount = count
	g.minesPlaced = true
	return nil
}

// FlagCell flags the cell at player coordinates.
func (g *Grid) FlagCell(row, col string) (*Cell, error) {
	cell, err := g.CellAt(row, col)
	if err != nil {
		return nil, err
	}
	if err := cell.Flag(); err != nil {
		return nil, err
	}
	return cell, nil
}

// UnflagCell removes the flag from the cell at player coordinates.
func (g *Grid) UnflagCell(row, col string) (*Cell, error) {
	cell, err := g.CellAt(row, col)
	if err != nil {
		return nil, err
	}
	if err := cell.Unflag(); err != nil {
		return nil, err
	}
	return cell, nil
}

// RevealCell reveals the cell at player coordinates. It returns false when the
// cell was a mine; every mine is then revealed. Otherwise the connected region
// of empty cells around it is cleared and RevealCell returns true.
//
// Flagged and already cleared cells cannot be revealed; the grid is left
// unchanged in that case.
func (g *Grid) RevealCell(row, col string) (bool, error) {
	cell, err := g.CellAt(row, col)
	if err != nil {
		return false, err
	}
	if cell.flagged {
		return false, fmt.Errorf("cell [%s]: %w", cell.Coords(), ErrFlagged)
	}
	if cell.cleared {
		return false, fmt.Errorf("cell [%s]: %w", cell.Coords(), ErrAlreadyCleared)
	}
	if cell.mine {
		g.RevealAllMines()
		return false, nil
	}
	g.clearField(cell.row, cell.col)
	return true, nil
}

// RevealAllMines clears every mine, removing any flag on it.
func (g *Grid) RevealAllMines() {
	for i := range g.cells {
		if g.cells[i].mine && !g.cells[i].cleared {
			g.cells[i].forceClear()
		}
	}
}

// clearField flood-fills from (row, col). Pending cells are tracked in a set
// and processed last-in first-out; a cell is pending at most once, so each
// cell is cleared at most once. Flagged cells stop the cascade.
func (g *Grid) clearField(row, col int) {
	start := row*g.cols + col
	pending := mapset.New[int]()
	pending.Put(start)
	stack := []int{start}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pending.Remove(idx)

		// Only hidden, unflagged cells are ever pushed and each is pushed once,
		// so the Clear guards cannot trip here.
		cell := &g.cells[idx]
		cell.cleared = true
		g.cleared++

		if cell.adjacent != 0 {
			continue
		}
		for n := range g.Neighbors(cell.row, cell.col) {
			ni := n.row*g.cols + n.col
			if n.cleared || n.flagged || pending.Has(ni) {
				continue
			}
			pending.Put(ni)
			stack = append(stack, ni)
		}
	}
}
