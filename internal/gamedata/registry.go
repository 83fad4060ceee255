package gamedata

import (
	"errors"
	"strings"
)

// PresetRegistry holds loaded presets in menu order.
type PresetRegistry struct {
	presets []PresetDef
	byName  map[string]*PresetDef
}

// NewPresetRegistry creates a registry from loaded preset definitions.
// Presets are looked up by id or key, case-insensitively.
func NewPresetRegistry(presets []PresetDef) *PresetRegistry {
	registry := &PresetRegistry{
		presets: presets,
		byName:  make(map[string]*PresetDef, len(presets)*2),
	}
	for i := range presets {
		registry.byName[strings.ToLower(presets[i].ID)] = &presets[i]
		if presets[i].Key != "" {
			registry.byName[strings.ToLower(presets[i].Key)] = &presets[i]
		}
	}
	return registry
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(presets), nil
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Lookup returns the preset whose id or key matches name, or nil.
func (r *PresetRegistry) Lookup(name string) *PresetDef {
	return r.byName[strings.ToLower(strings.TrimSpace(name))]
}

// Default returns the first preset.
func (r *PresetRegistry) Default() *PresetDef {
	if len(r.presets) == 0 {
		return nil
	}
	return &r.presets[0]
}

// Next returns the preset after p in menu order, wrapping around.
func (r *PresetRegistry) Next(p *PresetDef) *PresetDef {
	for i := range r.presets {
		if r.presets[i].ID == p.ID {
			return &r.presets[(i+1)%len(r.presets)]
		}
	}
	return r.Default()
}

// Menu returns the prompt listing every preset key, e.g. "[S]mall, [M]edium".
func (r *PresetRegistry) Menu() string {
	items := make([]string, 0, len(r.presets))
	for _, p := range r.presets {
		items = append(items, menuItem(p.Name, p.Key))
	}
	return strings.Join(items, ", ")
}

// menuItem brackets the first occurrence of key in name: "E[X]tra Large".
func menuItem(name, key string) string {
	if key == "" {
		return name
	}
	if i := strings.Index(strings.ToUpper(name), strings.ToUpper(key)); i >= 0 {
		return name[:i] + "[" + key + "]" + name[i+len(key):]
	}
	return "[" + key + "] " + name
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.presets)
}
