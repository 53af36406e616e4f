package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionPickup
	ActionInventory
	ActionDrop
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'k', 'K', '8':
		return ActionMoveN
	case 'j', 'J', '2':
		return ActionMoveS
	case 'l', 'L', '6':
		return ActionMoveE
	case 'h', 'H', '4':
		return ActionMoveW
	case 'y', 'Y', '7':
		return ActionMoveNW
	case 'u', 'U', '9':
		return ActionMoveNE
	case 'b', 'B', '1':
		return ActionMoveSW
	case 'n', 'N', '3':
		return ActionMoveSE
	case '.', '5':
		return ActionWait
	case ',', 'g', 'G':
		return ActionPickup
	case 'i', 'I':
		return ActionInventory
	case 'd', 'D':
		return ActionDrop
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}
