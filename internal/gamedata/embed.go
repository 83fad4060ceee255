// Package gamedata provides embedded board presets and the display theme.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
