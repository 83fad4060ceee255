package gamedata

import "fmt"

// PresetDef defines a board size loaded from JSON.
type PresetDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "small")
	Key   string `json:"key"`   // Single-letter menu shortcut (e.g., "S")
	Name  string `json:"name"`  // Display name (e.g., "Small")
	Rows  int    `json:"rows"`  // Grid height
	Cols  int    `json:"cols"`  // Grid width
	Mines int    `json:"mines"` // Mines to place
}

// Validate checks that the preset describes a playable board.
func (p *PresetDef) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("preset has no id")
	}
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("preset %s: invalid size %dx%d", p.ID, p.Rows, p.Cols)
	}
	if p.Mines < 0 || p.Mines >= p.Rows*p.Cols {
		return fmt.Errorf("preset %s: %d mines do not fit %dx%d", p.ID, p.Mines, p.Rows, p.Cols)
	}
	return nil
}

// String returns a menu line such as "Small (9x9, 10 mines)".
func (p *PresetDef) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", p.Name, p.Rows, p.Cols, p.Mines)
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads board presets from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Presets {
		if err := file.Presets[i].Validate(); err != nil {
			return nil, fmt.Errorf("presets.json: %w", err)
		}
	}
	return file.Presets, nil
}
