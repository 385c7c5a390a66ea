// Package gamedata provides the embedded levels and tile palette.
package gamedata

import "embed"

// dataFS holds levels.json and palette.json.
//
//go:embed *.json
var dataFS embed.FS
