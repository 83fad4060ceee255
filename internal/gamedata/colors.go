package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a theme color to a tcell.Color. It accepts hex strings
// ("#FF0000" or "FF0000") and tcell color names ("red", "silver").
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") || isHex(s) {
		return ParseHexColor(s)
	}
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

func isHex(s string) bool {
	if len(s) != 6 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}
