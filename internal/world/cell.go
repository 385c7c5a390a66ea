// Package world provides the grid, the map registry and the movement rule.
package world

import (
	"fmt"

	"github.com/samdwyer/mealrun/internal/entity"
)

// Pos is a grid coordinate. Row 0 is the top row.
type Pos struct {
	Row, Col int
}

// Add returns the position offset by the given delta.
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String returns the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a fixed grid slot holding exactly one entity.
type Cell struct {
	pos     Pos
	content entity.Entity
}

// Pos returns the cell's grid position.
func (c *Cell) Pos() Pos {
	return c.pos
}

// Content returns the current occupant.
func (c *Cell) Content() entity.Entity {
	return c.content
}

// SetContent replaces the occupant. Callers validate the move.
func (c *Cell) SetContent(e entity.Entity) {
	c.content = e
}
