package board

import (
	"strings"
	"testing"
)

func TestRenderPlain(t *testing.T) {
	g := newTestGrid(t, 2, 3, 0)
	if _, err := g.RevealCell("B", "3"); err != nil {
		t.Fatalf("RevealCell failed: %v", err)
	}

	want := "   1  2  3\n" +
		" A -  1  .\n" +
		" B -  1  .\n"
	if got := g.String(); got != want {
		t.Errorf("Unexpected rendering:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderFlagsAndLoss(t *testing.T) {
	g := newTestGrid(t, 2, 2, 0)
	_, _ = g.FlagCell("A", "2")
	if ok, _ := g.RevealCell("A", "1"); ok {
		t.Fatal("Expected a loss")
	}

	want := "   1  2\n" +
		" A M  F\n" +
		" B -  -\n"
	if got := g.String(); got != want {
		t.Errorf("Unexpected rendering:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderWideBoardAlignment(t *testing.T) {
	g, _ := NewGrid(28, 12)
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")

	if len(lines) != 29 {
		t.Fatalf("Expected 29 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[27], "AA -") || !strings.HasPrefix(lines[1], " A -") {
		t.Errorf("Unexpected row labels: %q / %q", lines[1], lines[27])
	}
	if !strings.HasSuffix(lines[0], "11 12") {
		t.Errorf("Unexpected header %q", lines[0])
	}
	header := lines[0]
	row := lines[1]
	if strings.Index(header, "12") != strings.LastIndex(row, "-") {
		t.Errorf("Last column misaligned:\n%s\n%s", header, row)
	}
}

func TestRenderDebug(t *testing.T) {
	g := newTestGrid(t, 1, 2, 1)
	got := g.Render(true)

	want := "   1" + strings.Repeat(" ", 11) + "2\n" +
		" A [A:1]-|-1-- [A:2]-|B0--\n"
	if got != want {
		t.Errorf("Unexpected debug rendering:\n%q\nwant:\n%q", got, want)
	}
}
