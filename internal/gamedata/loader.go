package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	return Decode[T](filename, content)
}

// Decode unmarshals JSON content; name is used in error messages only.
func Decode[T any](name string, content []byte) (T, error) {
	var result T
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", name, err)
	}
	return result, nil
}
