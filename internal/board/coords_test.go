package board

import (
	"errors"
	"testing"
)

func TestLabelToIndex(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"A", 1},
		{"a", 1},
		{"Z", 26},
		{"AA", 27},
		{"AZ", 52},
		{"BA", 53},
		{"ZZ", 702},
		{"AAA", 703},
	}

	for _, tt := range tests {
		got, err := LabelToIndex(tt.label)
		if err != nil {
			t.Errorf("LabelToIndex(%q) failed: %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("LabelToIndex(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}

	for _, bad := range []string{"", "1", "A1", "-", "É", "ı", "ſ", "Aı"} {
		if _, err := LabelToIndex(bad); !errors.Is(err, ErrInvalidCoordinates) {
			t.Errorf("LabelToIndex(%q) should fail with ErrInvalidCoordinates, got %v", bad, err)
		}
	}
}

func TestRowLabelRoundTrip(t *testing.T) {
	for i := 0; i < 1000; i++ {
		label := RowLabel(i)
		got, err := LabelToIndex(label)
		if err != nil {
			t.Fatalf("LabelToIndex(RowLabel(%d)=%q) failed: %v", i, label, err)
		}
		if got-1 != i {
			t.Errorf("RowLabel(%d) = %q resolves to %d", i, label, got-1)
		}
	}

	if RowLabel(0) != "A" || RowLabel(25) != "Z" || RowLabel(26) != "AA" || RowLabel(51) != "AZ" {
		t.Errorf("Unexpected labels: %s %s %s %s", RowLabel(0), RowLabel(25), RowLabel(26), RowLabel(51))
	}
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		row, col string
		wantR    int
		wantC    int
		valid    bool
	}{
		{"A", "1", 0, 0, true},
		{"b", "3", 1, 2, true},
		{"AD", "32", 29, 31, true},
		{"AF", "32", 31, 31, true},
		{"", "1", 0, 0, false},
		{"A", "", 0, 0, false},
		{"A", "0", 0, 0, false},
		{"A", "33", 0, 0, false},
		{"AG", "1", 0, 0, false},
		{"A", "x", 0, 0, false},
		{"A", "-1", 0, 0, false},
		{"A", "+1", 0, 0, false},
		{"1", "1", 0, 0, false},
		{"ZZZZZZZZZZZZZZZZZZZZ", "1", 0, 0, false},
		{"A", "99999999999999999999999", 0, 0, false},
	}

	for _, tt := range tests {
		r, c, err := ParseCoordinates(tt.row, tt.col, 32, 32)
		if !tt.valid {
			if !errors.Is(err, ErrInvalidCoordinates) {
				t.Errorf("ParseCoordinates(%q, %q) should fail with ErrInvalidCoordinates, got %v", tt.row, tt.col, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCoordinates(%q, %q) failed: %v", tt.row, tt.col, err)
			continue
		}
		if r != tt.wantR || c != tt.wantC {
			t.Errorf("ParseCoordinates(%q, %q) = (%d,%d), want (%d,%d)", tt.row, tt.col, r, c, tt.wantR, tt.wantC)
		}
	}
}
