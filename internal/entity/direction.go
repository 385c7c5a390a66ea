package entity

// Direction is the way the player faces. Auto-step moves one cell this way.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirDown
	DirRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the row and column offset of a single step.
// Rows grow downward, columns grow to the right.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}
