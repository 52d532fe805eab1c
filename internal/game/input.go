package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionToggleMinimap
	ActionCycleMode
	ActionRestart
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionForward
	case tcell.KeyDown:
		return ActionBack
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyTab:
		return ActionCycleMode
	case tcell.KeyEscape:
		return ActionQuit
	}
	if ev.Key() != tcell.KeyRune {
		return ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return ActionForward
	case 's', 'S':
		return ActionBack
	case 'a', 'A':
		return ActionStrafeLeft
	case 'd', 'D':
		return ActionStrafeRight
	case 'q', 'Q':
		return ActionTurnLeft
	case 'e', 'E':
		return ActionTurnRight
	case 'm', 'M':
		return ActionToggleMinimap
	case 'r', 'R':
		return ActionRestart
	}
	return ActionNone
}
