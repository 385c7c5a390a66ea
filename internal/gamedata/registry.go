package gamedata

import (
	"errors"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// TileDef defines how one cell kind is drawn.
type TileDef struct {
	Kind  string `json:"kind"`  // Cell tag (e.g., "meal")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "*")
	Color string `json:"color"` // Hex code ("#5fd75f") or color name ("yellow")
	Bold  bool   `json:"bold"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// Style returns the tcell style for the tile.
func (d *TileDef) Style() tcell.Style {
	color, err := ParseColor(d.Color)
	if err != nil {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color).Bold(d.Bold)
}

// paletteFile represents the structure of palette.json.
type paletteFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Palette maps cell tags to their tile definitions.
type Palette struct {
	tiles map[string]*TileDef
}

// NewPalette creates a palette from tile definitions.
func NewPalette(tiles []TileDef) *Palette {
	p := &Palette{
		tiles: make(map[string]*TileDef, len(tiles)),
	}
	for i := range tiles {
		p.tiles[tiles[i].Kind] = &tiles[i]
	}
	return p
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[paletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) == 0 {
		return nil, errors.New("no tiles loaded from palette.json")
	}
	return NewPalette(file.Tiles), nil
}

// Lookup returns the tile for a cell tag, or nil if it is not defined.
func (p *Palette) Lookup(kind string) *TileDef {
	return p.tiles[kind]
}
