package board

import (
	"errors"
	"testing"
)

func TestCellDefaults(t *testing.T) {
	cell := newCell(1, 2)

	if cell.Cleared() || cell.IsMine() || cell.Flagged() {
		t.Errorf("New cell should be hidden, mine-free and unflagged: %s", cell.Debug())
	}
	if cell.AdjacentCount() != 0 {
		t.Errorf("Expected count 0, got %d", cell.AdjacentCount())
	}
	if cell.Row() != 1 || cell.Col() != 2 {
		t.Errorf("Expected position (1,2), got (%d,%d)", cell.Row(), cell.Col())
	}
	if cell.State() != Hidden {
		t.Errorf("Expected state hidden, got %s", cell.State())
	}
	if cell.Coords() != "B:3" {
		t.Errorf("Expected coords B:3, got %s", cell.Coords())
	}
}

func TestCellClear(t *testing.T) {
	cell := newCell(0, 0)
	if err := cell.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if cell.State() != Cleared {
		t.Errorf("Expected cleared, got %s", cell.State())
	}

	err := cell.Clear()
	if !errors.Is(err, ErrAlreadyCleared) || !errors.Is(err, ErrInvalidState) {
		t.Errorf("Second clear should fail with ErrAlreadyCleared, got %v", err)
	}
}

func TestCellClearFlagged(t *testing.T) {
	cell := newCell(0, 0)
	if err := cell.Flag(); err != nil {
		t.Fatalf("Flag failed: %v", err)
	}

	err := cell.Clear()
	if !errors.Is(err, ErrFlagged) {
		t.Errorf("Clearing a flagged cell should fail with ErrFlagged, got %v", err)
	}
	if cell.Cleared() || !cell.Flagged() {
		t.Errorf("Failed clear changed state: %s", cell.Debug())
	}
}

func TestCellFlagUnflag(t *testing.T) {
	cell := newCell(3, 4)
	before := cell

	if err := cell.Flag(); err != nil {
		t.Fatalf("Flag failed: %v", err)
	}
	if cell.State() != Flagged {
		t.Errorf("Expected flagged, got %s", cell.State())
	}

	// Flagging twice is a no-op.
	if err := cell.Flag(); err != nil {
		t.Errorf("Second flag should succeed, got %v", err)
	}

	if err := cell.Unflag(); err != nil {
		t.Fatalf("Unflag failed: %v", err)
	}
	if cell != before {
		t.Errorf("Flag then unflag left residual state: %s vs %s", cell.Debug(), before.Debug())
	}

	err := cell.Unflag()
	if !errors.Is(err, ErrNotFlagged) || !errors.Is(err, ErrInvalidState) {
		t.Errorf("Unflagging a hidden cell should fail with ErrNotFlagged, got %v", err)
	}
}

func TestCellFlagCleared(t *testing.T) {
	cell := newCell(0, 0)
	_ = cell.Clear()

	err := cell.Flag()
	if !errors.Is(err, ErrClearedFlag) || !errors.Is(err, ErrInvalidState) {
		t.Errorf("Flagging a cleared cell should fail with ErrClearedFlag, got %v", err)
	}
	if cell.Flagged() {
		t.Error("Cleared cell became flagged")
	}
}

func TestCellSetAdjacentCount(t *testing.T) {
	tests := []struct {
		n     int
		valid bool
	}{
		{-1, false},
		{0, true},
		{4, true},
		{8, true},
		{9, false},
	}

	for _, tt := range tests {
		cell := newCell(0, 0)
		err := cell.SetAdjacentCount(tt.n)
		if tt.valid {
			if err != nil {
				t.Errorf("SetAdjacentCount(%d) should be valid, got %v", tt.n, err)
			} else if cell.AdjacentCount() != tt.n {
				t.Errorf("SetAdjacentCount(%d) stored %d", tt.n, cell.AdjacentCount())
			}
			continue
		}
		if !errors.Is(err, ErrCountOutOfRange) || !errors.Is(err, ErrInvariantViolation) {
			t.Errorf("SetAdjacentCount(%d) should fail with ErrCountOutOfRange, got %v", tt.n, err)
		}
		if cell.AdjacentCount() != 0 {
			t.Errorf("Failed SetAdjacentCount(%d) changed count to %d", tt.n, cell.AdjacentCount())
		}
	}
}

func TestCellGlyph(t *testing.T) {
	hidden := newCell(0, 0)

	flagged := newCell(0, 0)
	_ = flagged.Flag()

	mine := newCell(0, 0)
	mine.mine = true
	_ = mine.Clear()

	number := newCell(0, 0)
	_ = number.SetAdjacentCount(3)
	_ = number.Clear()

	empty := newCell(0, 0)
	_ = empty.Clear()

	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"hidden", hidden, "-"},
		{"flagged", flagged, "F"},
		{"mine", mine, "M"},
		{"number", number, "3"},
		{"empty", empty, "."},
	}

	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestCellDebug(t *testing.T) {
	cell := newCell(1, 2)
	_ = cell.SetAdjacentCount(2)
	if got := cell.Debug(); got != "[B:3]-|-2--" {
		t.Errorf("Unexpected debug form %q", got)
	}

	cell.mine = true
	_ = cell.Flag()
	if got := cell.Debug(); got != "[B:3]F|B2F-" {
		t.Errorf("Unexpected debug form %q", got)
	}
}

func TestCellForceClear(t *testing.T) {
	cell := newCell(0, 0)
	cell.mine = true
	_ = cell.Flag()

	cell.forceClear()
	if !cell.Cleared() || cell.Flagged() {
		t.Errorf("forceClear should clear and unflag, got %s", cell.Debug())
	}
	if cell.String() != "M" {
		t.Errorf("Expected M, got %s", cell.String())
	}
}
