package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if len(presets) != 4 {
		t.Fatalf("Expected 4 presets, got %d", len(presets))
	}

	expected := []struct {
		id                string
		rows, cols, mines int
	}{
		{"small", 9, 9, 10},
		{"medium", 16, 16, 32},
		{"large", 25, 25, 77},
		{"xlarge", 32, 32, 126},
	}
	for i, want := range expected {
		p := presets[i]
		if p.ID != want.id || p.Rows != want.rows || p.Cols != want.cols || p.Mines != want.mines {
			t.Errorf("Preset %d: expected %s %dx%d/%d, got %s %dx%d/%d",
				i, want.id, want.rows, want.cols, want.mines, p.ID, p.Rows, p.Cols, p.Mines)
		}
	}
}

func TestPresetRegistry(t *testing.T) {
	registry, err := LoadPresetRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 presets, got %d", registry.Count())
	}

	for _, name := range []string{"x", "X", "xlarge", " XLarge "} {
		p := registry.Lookup(name)
		if p == nil || p.ID != "xlarge" {
			t.Errorf("Lookup(%q) should find xlarge, got %v", name, p)
		}
	}
	if registry.Lookup("huge") != nil {
		t.Error("Lookup of unknown preset should return nil")
	}

	if registry.Default().ID != "small" {
		t.Errorf("Expected default small, got %s", registry.Default().ID)
	}
	if next := registry.Next(registry.Lookup("xlarge")); next.ID != "small" {
		t.Errorf("Next should wrap to small, got %s", next.ID)
	}

	want := "[S]mall, [M]edium, [L]arge, E[X]tra Large"
	if got := registry.Menu(); got != want {
		t.Errorf("Expected menu %q, got %q", want, got)
	}
}

func TestPresetValidate(t *testing.T) {
	tests := []struct {
		preset PresetDef
		valid  bool
	}{
		{PresetDef{ID: "ok", Rows: 2, Cols: 2, Mines: 3}, true},
		{PresetDef{ID: "", Rows: 2, Cols: 2, Mines: 1}, false},
		{PresetDef{ID: "flat", Rows: 0, Cols: 2, Mines: 0}, false},
		{PresetDef{ID: "full", Rows: 2, Cols: 2, Mines: 4}, false},
		{PresetDef{ID: "neg", Rows: 2, Cols: 2, Mines: -1}, false},
	}

	for _, tt := range tests {
		err := tt.preset.Validate()
		if tt.valid && err != nil {
			t.Errorf("Preset %q should be valid, got %v", tt.preset.ID, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("Preset %q should be invalid", tt.preset.ID)
		}
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := Decode[PresetsFile]("broken.json", []byte("{")); err == nil {
		t.Error("Expected a parse error")
	}
	if _, err := Load[PresetsFile]("missing.json"); err == nil {
		t.Error("Expected a read error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"red", true},
		{"Silver", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		_, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, _ := ParseHexColor("#FF0000")
	if r, g, b := c.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("Expected pure red, got (%d,%d,%d)", r, g, b)
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme()
	if err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}

	for _, glyph := range "-FM.12345678" {
		if theme.GlyphColor(glyph) == tcell.ColorDefault {
			t.Errorf("Glyph %q has no color", glyph)
		}
	}
	if theme.GlyphColor('?') != tcell.ColorDefault {
		t.Error("Unknown glyph should use the default color")
	}
}

func TestThemeResolveErrors(t *testing.T) {
	bad := []ThemeDef{
		{Glyphs: map[string]string{"FF": "red"}, Label: "red", Cursor: "red", Status: "red"},
		{Glyphs: map[string]string{"F": "nope"}, Label: "red", Cursor: "red", Status: "red"},
		{Label: "nope", Cursor: "red", Status: "red"},
	}
	for i, def := range bad {
		if _, err := def.Resolve(); err == nil {
			t.Errorf("Theme %d should fail to resolve", i)
		}
	}
}
