// Package entity provides the occupants of grid cells and the player's facing.
package entity

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a map tag names no known cell type.
var ErrUnknownKind = errors.New("unknown cell type")

// Kind is the type tag of an entity. It is the only dispatch key the
// rest of the game uses.
type Kind int

const (
	// KindEmpty is a free cell.
	KindEmpty Kind = iota
	// KindWall blocks movement unconditionally.
	KindWall
	// KindMeal is collected when the player walks onto it.
	KindMeal
	// KindEnemy ends the run in defeat when the player walks into it.
	KindEnemy
	// KindPlayer is the single controllable entity.
	KindPlayer
)

// String returns the authoring tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindMeal:
		return "meal"
	case KindEnemy:
		return "enemy"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Passable reports whether the player may attempt to enter a cell of this kind.
// Enemies count as passable: entering one is a defeat, not a blocked move.
func (k Kind) Passable() bool {
	switch k {
	case KindEmpty, KindMeal, KindEnemy:
		return true
	default:
		return false
	}
}

// ParseKind converts an authoring tag into a Kind.
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "empty":
		return KindEmpty, nil
	case "wall":
		return KindWall, nil
	case "meal":
		return KindMeal, nil
	case "enemy":
		return KindEnemy, nil
	case "player":
		return KindPlayer, nil
	default:
		return KindEmpty, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
	}
}
