package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ThemeDef maps board glyphs and UI elements to colors, as stored in theme.json.
type ThemeDef struct {
	Glyphs map[string]string `json:"glyphs"` // Glyph ("1", "F", "-") to color
	Label  string            `json:"label"`  // Row and column labels
	Cursor string            `json:"cursor"` // Cursor background
	Status string            `json:"status"` // Status and help lines
}

// Theme is a ThemeDef resolved to tcell colors.
type Theme struct {
	glyphs map[rune]tcell.Color
	Label  tcell.Color
	Cursor tcell.Color
	Status tcell.Color
}

// Resolve parses every color in the definition.
func (d *ThemeDef) Resolve() (*Theme, error) {
	t := &Theme{glyphs: make(map[rune]tcell.Color, len(d.Glyphs))}
	for glyph, name := range d.Glyphs {
		r := []rune(glyph)
		if len(r) != 1 {
			return nil, fmt.Errorf("theme glyph %q must be a single character", glyph)
		}
		c, err := ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("theme glyph %q: %w", glyph, err)
		}
		t.glyphs[r[0]] = c
	}

	var err error
	if t.Label, err = ParseColor(d.Label); err != nil {
		return nil, fmt.Errorf("theme label: %w", err)
	}
	if t.Cursor, err = ParseColor(d.Cursor); err != nil {
		return nil, fmt.Errorf("theme cursor: %w", err)
	}
	if t.Status, err = ParseColor(d.Status); err != nil {
		return nil, fmt.Errorf("theme status: %w", err)
	}
	return t, nil
}

// GlyphColor returns the color for a board glyph, or the default color.
func (t *Theme) GlyphColor(glyph rune) tcell.Color {
	if c, ok := t.glyphs[glyph]; ok {
		return c
	}
	return tcell.ColorDefault
}

// LoadTheme loads and resolves the embedded theme.json.
func LoadTheme() (*Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return nil, err
	}
	return def.Resolve()
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}
