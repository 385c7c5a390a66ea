package world

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mealrun/internal/entity"
	"github.com/samdwyer/mealrun/internal/telemetry"
)

// MinSize is the minimum number of rows and columns of a map.
const MinSize = 2

// levelMap is an authored map after validation.
type levelMap struct {
	kinds     [][]entity.Kind
	mealCount int
	start     Pos
}

// Field holds the registered maps and the live grid of the current run.
type Field struct {
	maps    map[string]*levelMap
	order   []string // registration order of map ids
	current string   // selected map id, "" if none

	loaded     string // map id the live grid was built from
	grid       [][]*Cell
	player     Pos
	mealTarget int
	mealEaten  int
	finished   bool
}

// NewField creates an empty field with no maps.
func NewField() *Field {
	return &Field{maps: make(map[string]*levelMap)}
}

// AddMap validates an authored map and registers it under levelID.
// Rows are tables of tags (empty, wall, meal, enemy, player). A map must be
// rectangular, at least 2x2, with exactly one player and at least one meal.
// Registering an existing id replaces the earlier map.
func (f *Field) AddMap(ctx context.Context, levelID string, rows [][]string) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "field.add_map")
	defer span.End()
	span.SetAttributes(attribute.String("level.id", levelID))

	m, err := parseMap(rows)
	if err != nil {
		err = fmt.Errorf("level %s: %w", levelID, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid map")
		return err
	}

	if _, exists := f.maps[levelID]; !exists {
		f.order = append(f.order, levelID)
	}
	f.maps[levelID] = m
	if f.loaded == levelID {
		// Next start must rebuild from the new definition.
		f.loaded = ""
	}

	span.SetAttributes(
		attribute.Int("map.rows", len(m.kinds)),
		attribute.Int("map.cols", len(m.kinds[0])),
		attribute.Int("map.meal_count", m.mealCount),
	)
	return nil
}

// parseMap turns an authored tag table into a validated levelMap.
func parseMap(rows [][]string) (*levelMap, error) {
	if len(rows) < MinSize {
		return nil, ErrMapTooSmall
	}
	for _, row := range rows {
		if len(row) < MinSize {
			return nil, ErrMapTooSmall
		}
	}
	width := len(rows[0])
	for r, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, r, len(row), width)
		}
	}

	m := &levelMap{kinds: make([][]entity.Kind, len(rows))}
	hasPlayer := false
	for r, row := range rows {
		m.kinds[r] = make([]entity.Kind, width)
		for c, tag := range row {
			kind, err := entity.ParseKind(tag)
			if err != nil {
				return nil, fmt.Errorf("cell %v: %w", Pos{r, c}, err)
			}
			switch kind {
			case entity.KindPlayer:
				if hasPlayer {
					return nil, fmt.Errorf("%w: second player at %v", ErrDuplicatePlayer, Pos{r, c})
				}
				hasPlayer = true
				m.start = Pos{r, c}
			case entity.KindMeal:
				m.mealCount++
			}
			m.kinds[r][c] = kind
		}
	}

	if m.mealCount == 0 {
		return nil, ErrNoMeal
	}
	if !hasPlayer {
		return nil, ErrNoPlayer
	}
	return m, nil
}

// Levels returns the registered map ids in registration order.
func (f *Field) Levels() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// HasMap reports whether a map is registered under levelID.
func (f *Field) HasMap(levelID string) bool {
	_, ok := f.maps[levelID]
	return ok
}

// ChoiceMap selects a registered map as current. Unknown ids are ignored.
func (f *Field) ChoiceMap(levelID string) bool {
	if _, ok := f.maps[levelID]; !ok {
		return false
	}
	f.current = levelID
	return true
}

// CurrentMap returns the selected map id, or "" if none.
func (f *Field) CurrentMap() string {
	return f.current
}

// NeedsReload reports whether the live grid must be rebuilt before play:
// there is none, the last run ended, or another map was chosen since.
func (f *Field) NeedsReload() bool {
	return f.grid == nil || f.finished || f.loaded != f.current
}

// Instantiate builds a fresh live grid from the selected map.
func (f *Field) Instantiate() error {
	m, ok := f.maps[f.current]
	if !ok {
		return ErrNoMapSelected
	}

	grid := make([][]*Cell, len(m.kinds))
	for r, row := range m.kinds {
		grid[r] = make([]*Cell, len(row))
		for c, kind := range row {
			grid[r][c] = &Cell{pos: Pos{r, c}, content: entity.New(kind)}
		}
	}

	f.grid = grid
	f.loaded = f.current
	f.player = m.start
	f.mealTarget = m.mealCount
	f.mealEaten = 0
	f.finished = false
	return nil
}

// Live reports whether a run is in progress on the live grid.
func (f *Field) Live() bool {
	return f.grid != nil && !f.finished
}

// EndRun marks the current run as over and resets the eaten-meal counter.
// The grid is kept for display until the next Instantiate.
func (f *Field) EndRun() {
	f.finished = true
	f.mealEaten = 0
}

// GetCell returns the cell at (row, col), or nil when out of bounds.
func (f *Field) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(f.grid) {
		return nil
	}
	if col < 0 || col >= len(f.grid[row]) {
		return nil
	}
	return f.grid[row][col]
}

// PlayerPos returns the player's current position.
func (f *Field) PlayerPos() Pos {
	return f.player
}

// Player returns the player's payload, or nil without a live grid.
func (f *Field) Player() *entity.Player {
	cell := f.GetCell(f.player.Row, f.player.Col)
	if cell == nil {
		return nil
	}
	return cell.Content().Player()
}

// SetFacing changes the player's facing direction.
// It returns false when there is no player to turn.
func (f *Field) SetFacing(d entity.Direction) bool {
	p := f.Player()
	if p == nil {
		return false
	}
	p.Facing = d
	return true
}

// MealTarget returns the number of meals required to win the current map.
func (f *Field) MealTarget() int {
	return f.mealTarget
}

// MealEaten returns the number of meals eaten in the current run.
func (f *Field) MealEaten() int {
	return f.mealEaten
}

// Move attempts to move the player by the given delta.
//
// Win is checked after counting the meal but before the player is placed,
// so the winning move never puts the player on the last meal cell.
func (f *Field) Move(dRow, dCol int) Outcome {
	if !f.Live() {
		return OutcomeNone
	}

	target := f.player.Add(dRow, dCol)
	next := f.GetCell(target.Row, target.Col)
	if next == nil || !next.Content().Kind().Passable() {
		return OutcomeBlocked
	}

	kind := next.Content().Kind()
	if kind == entity.KindMeal {
		f.mealEaten++
	}
	if kind == entity.KindEnemy {
		return OutcomeDefeat
	}
	if f.mealEaten == f.mealTarget {
		return OutcomeWin
	}

	current := f.grid[f.player.Row][f.player.Col]
	next.SetContent(current.Content())
	current.SetContent(entity.Empty())
	f.player = target

	if kind == entity.KindMeal {
		return OutcomeAte
	}
	return OutcomeMoved
}

// MoveDir moves the player one cell in the given direction.
func (f *Field) MoveDir(d entity.Direction) Outcome {
	return f.Move(d.Delta())
}

// Step moves the player one cell in its facing direction.
func (f *Field) Step() Outcome {
	p := f.Player()
	if p == nil || !f.Live() {
		return OutcomeNone
	}
	return f.MoveDir(p.Facing)
}

// Snapshot is a read-only copy of the live grid for rendering.
type Snapshot struct {
	Level  string
	Kinds  [][]entity.Kind
	Player Pos
	Eaten  int
	Target int
}

// Snapshot copies the live grid. It is empty before the first Instantiate.
func (f *Field) Snapshot() Snapshot {
	s := Snapshot{
		Level:  f.loaded,
		Player: f.player,
		Eaten:  f.mealEaten,
		Target: f.mealTarget,
		Kinds:  make([][]entity.Kind, len(f.grid)),
	}
	for r, row := range f.grid {
		s.Kinds[r] = make([]entity.Kind, len(row))
		for c, cell := range row {
			s.Kinds[r][c] = cell.Content().Kind()
		}
	}
	return s
}

// String renders the grid row by row, each cell as its tag in brackets.
func (s Snapshot) String() string {
	var b strings.Builder
	for r, row := range s.Kinds {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, kind := range row {
			b.WriteByte('[')
			b.WriteString(kind.String())
			b.WriteByte(']')
		}
	}
	return b.String()
}

// String renders the live grid in the bracketed tag format.
func (f *Field) String() string {
	return f.Snapshot().String()
}
