package board

import (
	"math/rand"
	"testing"
)

func TestRandSamplerDistinct(t *testing.T) {
	s := NewRandSampler(rand.New(rand.NewSource(99)))

	for _, tc := range [][2]int{{81, 10}, {256, 32}, {625, 77}, {1024, 126}, {5, 5}, {5, 0}} {
		n, k := tc[0], tc[1]
		got := s.Sample(n, k)
		if len(got) != k {
			t.Errorf("Sample(%d, %d) returned %d positions", n, k, len(got))
		}
		seen := make(map[int]bool, len(got))
		for _, pos := range got {
			if pos < 0 || pos >= n {
				t.Errorf("Sample(%d, %d) returned out-of-range %d", n, k, pos)
			}
			if seen[pos] {
				t.Errorf("Sample(%d, %d) returned duplicate %d", n, k, pos)
			}
			seen[pos] = true
		}
	}
}

func TestFixedSampler(t *testing.T) {
	s := FixedSampler{4, 1, 7}

	got := s.Sample(9, 2)
	if len(got) != 2 || got[0] != 4 || got[1] != 1 {
		t.Errorf("Expected [4 1], got %v", got)
	}
	if got := s.Sample(9, 5); len(got) != 3 {
		t.Errorf("Expected all 3 stored positions, got %v", got)
	}

	g, _ := NewGrid(3, 3, WithSampler(s))
	if err := g.PlaceMines(3); err != nil {
		t.Fatalf("PlaceMines failed: %v", err)
	}
	for _, pos := range s {
		cell, _ := g.CellAtPosition(pos)
		if !cell.IsMine() {
			t.Errorf("Expected a mine at %d", pos)
		}
	}
}
