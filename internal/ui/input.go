package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lampdelve/internal/game"
)

// Action is what a key press asks the client to do.
type Action int

const (
	ActionNone Action = iota
	ActionCommand      // Send the command to the session
	ActionQuit         // Save and leave
)

// moveKeys maps runes to movement deltas: vi keys plus the numpad digits.
var moveKeys = map[rune][2]int{
	'h': {-1, 0}, 'l': {1, 0}, 'k': {0, -1}, 'j': {0, 1},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
	'4': {-1, 0}, '6': {1, 0}, '8': {0, -1}, '2': {0, 1},
	'7': {-1, -1}, '9': {1, -1}, '1': {-1, 1}, '3': {1, 1},
	'5': {0, 0}, '.': {0, 0},
}

// arrowDelta returns the movement delta for an arrow key.
func arrowDelta(k tcell.Key) (dx, dy int, ok bool) {
	switch k {
	case tcell.KeyUp:
		return 0, -1, true
	case tcell.KeyDown:
		return 0, 1, true
	case tcell.KeyLeft:
		return -1, 0, true
	case tcell.KeyRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// KeyCommand maps a key press on the map screen to an action.
func KeyCommand(ev *tcell.EventKey) (Action, game.Command) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return ActionQuit, game.Command{}
	case tcell.KeyEscape:
		return ActionCommand, game.Command{Kind: game.CmdPause}
	case tcell.KeyEnter:
		return ActionCommand, game.Command{Kind: game.CmdInteract}
	case tcell.KeyRune:
	default:
		if dx, dy, ok := arrowDelta(ev.Key()); ok {
			return ActionCommand, game.Move(dx, dy)
		}
		return ActionNone, game.Command{}
	}

	r := ev.Rune()
	if d, ok := moveKeys[r]; ok {
		return ActionCommand, game.Move(d[0], d[1])
	}
	switch r {
	case 'g', ',':
		return ActionCommand, game.Command{Kind: game.CmdPickUp}
	case 'd':
		return ActionCommand, game.Command{Kind: game.CmdDropTopmost}
	case 'i':
		return ActionCommand, game.Command{Kind: game.CmdOpenInventory}
	case 'p':
		return ActionCommand, game.Command{Kind: game.CmdPause}
	case 's':
		return ActionCommand, game.Command{Kind: game.CmdStatus}
	case '>', '<':
		return ActionCommand, game.Command{Kind: game.CmdInteract}
	case 'q', 'Q':
		return ActionQuit, game.Command{}
	}
	return ActionNone, game.Command{}
}

// inventoryIndex maps 'a'..'z' to an index and 'A'..'Z' to an index with
// equip set. ok is false for any other key.
func inventoryIndex(r rune) (index int, equip, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), false, true
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true, true
	}
	return 0, false, false
}
