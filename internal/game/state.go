// Package game provides the play session, its timers and the terminal loop.
package game

// Status is the running state of a session.
type Status int

const (
	// StatusStopped means no timers are active. This is the initial state.
	StatusStopped Status = iota
	// StatusRunning means the auto-step and redraw timers are active.
	StatusRunning
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}
