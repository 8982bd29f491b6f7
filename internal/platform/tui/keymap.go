package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bomberboy/internal/core"
)

// holdExpiry is how long a directional key is considered held after its
// last repeat. Terminals report key repeats but no release events, so a
// release edge is synthesized once the repeat stream stops. The value has
// to sit above the typical terminal key-repeat interval or movement
// stutters mid-hold.
const holdExpiry = 300 * time.Millisecond

// chord identifies one player's logical key.
type chord struct {
	player core.PlayerID
	key    core.Key
}

// KeyTracker maps terminal key messages to per-player game key edges. In a
// two-player match the arrow keys drive player one and WASD drives player
// two; solo play accepts both.
type KeyTracker struct {
	players int
	held    map[chord]time.Time
}

// NewKeyTracker creates a tracker for a match with the given player count.
func NewKeyTracker(players int) *KeyTracker {
	return &KeyTracker{
		players: players,
		held:    make(map[chord]time.Time),
	}
}

// lookup maps a terminal key string to a player and game key.
func (t *KeyTracker) lookup(key string) (chord, bool) {
	second := core.Player1
	if t.players > 1 {
		second = core.Player2
	}

	switch key {
	case "up":
		return chord{core.Player1, core.KeyUp}, true
	case "down":
		return chord{core.Player1, core.KeyDown}, true
	case "left":
		return chord{core.Player1, core.KeyLeft}, true
	case "right":
		return chord{core.Player1, core.KeyRight}, true
	case " ":
		return chord{core.Player1, core.KeyBomb}, true
	case "w":
		return chord{second, core.KeyUp}, true
	case "s":
		return chord{second, core.KeyDown}, true
	case "a":
		return chord{second, core.KeyLeft}, true
	case "d":
		return chord{second, core.KeyRight}, true
	case "x":
		return chord{second, core.KeyBomb}, true
	case "p":
		return chord{core.Player1, core.KeyPause}, true
	case "esc", "b":
		return chord{core.Player1, core.KeyBack}, true
	case "ctrl+c", "q":
		return chord{core.Player1, core.KeyQuit}, true
	}
	return chord{}, false
}

// KeyMsg translates a terminal key message into a game key edge. A repeat
// of an already-held directional key refreshes its hold without emitting a
// new press.
func (t *KeyTracker) KeyMsg(msg tea.KeyMsg, now time.Time) (core.KeyEvent, bool) {
	c, ok := t.lookup(msg.String())
	if !ok {
		return core.KeyEvent{}, false
	}

	if !c.key.Directional() {
		return core.KeyEvent{Player: c.player, Key: c.key, Pressed: true}, true
	}

	_, alreadyHeld := t.held[c]
	t.held[c] = now
	if alreadyHeld {
		return core.KeyEvent{}, false
	}
	return core.KeyEvent{Player: c.player, Key: c.key, Pressed: true}, true
}

// Expired returns synthesized release edges for every held directional key
// whose repeat stream has gone quiet. Call once per tick.
func (t *KeyTracker) Expired(now time.Time) []core.KeyEvent {
	var events []core.KeyEvent
	for c, last := range t.held {
		if now.Sub(last) >= holdExpiry {
			delete(t.held, c)
			events = append(events, core.KeyEvent{Player: c.player, Key: c.key, Pressed: false})
		}
	}
	return events
}

// ReleaseAll synthesizes release edges for everything still held, for use
// when the match screen loses focus (pause, menu).
func (t *KeyTracker) ReleaseAll() []core.KeyEvent {
	var events []core.KeyEvent
	for c := range t.held {
		delete(t.held, c)
		events = append(events, core.KeyEvent{Player: c.player, Key: c.key, Pressed: false})
	}
	return events
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapMenuKey translates a key to a menu action.
func MapMenuKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
