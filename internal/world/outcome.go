package world

import "errors"

// Structural map errors. AddMap wraps them with the level id and position.
var (
	ErrMapTooSmall     = errors.New("map must be at least 2x2")
	ErrRaggedMap       = errors.New("map rows must have equal length")
	ErrDuplicatePlayer = errors.New("map cannot contain more than one player")
	ErrNoPlayer        = errors.New("map contains no player")
	ErrNoMeal          = errors.New("map contains no meal")
	ErrNoMapSelected   = errors.New("no map selected")
)

// Outcome is the result of a single move attempt.
type Outcome int

const (
	// OutcomeNone means there was no live run to move in.
	OutcomeNone Outcome = iota
	// OutcomeBlocked means the target was out of bounds or impassable.
	OutcomeBlocked
	// OutcomeMoved means the player moved onto an empty cell.
	OutcomeMoved
	// OutcomeAte means the player moved onto a meal and ate it.
	OutcomeAte
	// OutcomeWin means the last required meal was eaten. The player does not move.
	OutcomeWin
	// OutcomeDefeat means the player walked into an enemy. The player does not move.
	OutcomeDefeat
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWin:
		return "win"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the run.
func (o Outcome) Terminal() bool {
	return o == OutcomeWin || o == OutcomeDefeat
}
