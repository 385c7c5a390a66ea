package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mealrun/internal/entity"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionFace
	ActionToggle
	ActionForceStop
	ActionChooseLevel
	ActionQuit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionFace:
		return "face"
	case ActionToggle:
		return "toggle"
	case ActionForceStop:
		return "force_stop"
	case ActionChooseLevel:
		return "choose_level"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a translated key press.
type Command struct {
	Action Action
	Dir    entity.Direction // for ActionFace
	Level  string           // for ActionChooseLevel
}

// TranslateKey maps a key event to a command. Unrecognized keys yield ActionNone.
func TranslateKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyUp:
		return face(entity.DirUp)
	case tcell.KeyDown:
		return face(entity.DirDown)
	case tcell.KeyLeft:
		return face(entity.DirLeft)
	case tcell.KeyRight:
		return face(entity.DirRight)
	case tcell.KeyRune:
		// Some terminals report Ctrl-C as a rune with the ctrl modifier.
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return Command{Action: ActionQuit}
		}
		return translateRune(ev.Rune())
	}
	return Command{}
}

func translateRune(r rune) Command {
	switch r {
	case 'w', 'W':
		return face(entity.DirUp)
	case 's', 'S':
		return face(entity.DirDown)
	case 'a', 'A':
		return face(entity.DirLeft)
	case 'd', 'D':
		return face(entity.DirRight)
	case ' ':
		return Command{Action: ActionToggle}
	case 'f', 'F':
		return Command{Action: ActionForceStop}
	case 'q', 'Q':
		return Command{Action: ActionQuit}
	}
	if r >= '1' && r <= '9' {
		return Command{Action: ActionChooseLevel, Level: string(r)}
	}
	return Command{}
}

func face(d entity.Direction) Command {
	return Command{Action: ActionFace, Dir: d}
}
