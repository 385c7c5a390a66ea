package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mealrun/internal/entity"
	"github.com/samdwyer/mealrun/internal/gamedata"
	"github.com/samdwyer/mealrun/internal/world"
)

const (
	gridTop   = 2 // first screen row of the grid
	cellWidth = 2 // screen columns per grid cell
	helpLine  = "wasd/arrows: face  space: start/stop  f: force stop  1-9: level  q: quit"
)

// Canvas is the drawing surface the renderer needs. *Screen implements it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// HUD is the text shown around the grid.
type HUD struct {
	Status  string
	Facing  string
	Message string
}

// Renderer draws the grid and HUD. Render may be called from the redraw
// timer and the input loop at once, so drawing is serialized.
type Renderer struct {
	mu      sync.Mutex
	canvas  Canvas
	palette *gamedata.Palette
}

// NewRenderer creates a renderer drawing onto canvas with the given palette.
func NewRenderer(canvas Canvas, palette *gamedata.Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render draws one full frame.
func (r *Renderer) Render(grid world.Snapshot, hud HUD) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.canvas.Clear()

	title := fmt.Sprintf("mealrun  level %s  meals %d/%d  facing %s  [%s]",
		levelLabel(grid.Level), grid.Eaten, grid.Target, hud.Facing, hud.Status)
	r.text(0, 0, title, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	for row, kinds := range grid.Kinds {
		for col, kind := range kinds {
			glyph, style := r.tile(kind)
			r.canvas.SetContent(col*cellWidth, gridTop+row, glyph, style)
		}
	}

	y := gridTop + len(grid.Kinds) + 1
	if hud.Message != "" {
		r.text(0, y, hud.Message, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	r.text(0, y+1, helpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.canvas.Show()
}

// tile returns the glyph and style for a cell kind.
func (r *Renderer) tile(kind entity.Kind) (rune, tcell.Style) {
	if r.palette != nil {
		if def := r.palette.Lookup(kind.String()); def != nil {
			return def.GlyphRune(), def.Style()
		}
	}
	return '?', tcell.StyleDefault
}

// text writes msg starting at (x, y).
func (r *Renderer) text(x, y int, msg string, style tcell.Style) {
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}

func levelLabel(id string) string {
	if id == "" {
		return "-"
	}
	return id
}
