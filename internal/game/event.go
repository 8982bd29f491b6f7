package game

import "bomberboy/internal/core"

// Event is the character's current or intended direction-or-stance. It is
// both the state of the character's finite state machine and the selector
// for the active animation clip.
type Event int

const (
	StopDown Event = iota
	StopUp
	StopLeft
	StopRight
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Win
	Die
	IncreaseSpeed
	IncreaseBomb
	IncreaseFire
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case StopDown:
		return "StopDown"
	case StopUp:
		return "StopUp"
	case StopLeft:
		return "StopLeft"
	case StopRight:
		return "StopRight"
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case Win:
		return "Win"
	case Die:
		return "Die"
	case IncreaseSpeed:
		return "IncreaseSpeed"
	case IncreaseBomb:
		return "IncreaseBomb"
	case IncreaseFire:
		return "IncreaseFire"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the event locks the state machine: once Win or
// Die is pending, no key edge may overwrite it.
func (e Event) Terminal() bool {
	return e == Win || e == Die
}

// Directional reports whether the event is an active move.
func (e Event) Directional() bool {
	switch e {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		return true
	}
	return false
}

// stance maps a move event to the stop event facing the same way.
var stance = map[Event]Event{
	MoveUp:    StopUp,
	MoveDown:  StopDown,
	MoveLeft:  StopLeft,
	MoveRight: StopRight,
}

// stopFor maps a released directional key to the stop event it implies.
var stopFor = map[core.Key]Event{
	core.KeyUp:    StopUp,
	core.KeyDown:  StopDown,
	core.KeyLeft:  StopLeft,
	core.KeyRight: StopRight,
}

// Intent is the velocity accumulator: one component per axis in {-1, 0, 1},
// mutated by key-down (add) and key-up (subtract) edges. It is never read
// directly for movement, only to derive the current move event.
type Intent struct {
	X, Y int
}

// press applies a key-down edge. Unknown keys are no-ops.
func (i *Intent) press(k core.Key) {
	switch k {
	case core.KeyLeft:
		i.X--
	case core.KeyRight:
		i.X++
	case core.KeyUp:
		i.Y--
	case core.KeyDown:
		i.Y++
	}
}

// release applies a key-up edge. Unknown keys are no-ops.
func (i *Intent) release(k core.Key) {
	switch k {
	case core.KeyLeft:
		i.X++
	case core.KeyRight:
		i.X--
	case core.KeyUp:
		i.Y++
	case core.KeyDown:
		i.Y--
	}
}

// Derive resolves the accumulated intent to a move event. The vertical axis
// takes priority over the horizontal one, and within each axis the positive
// direction wins: down beats up beats right beats left.
func (i Intent) Derive() (Event, bool) {
	switch {
	case i.Y == 1:
		return MoveDown, true
	case i.Y == -1:
		return MoveUp, true
	case i.X == 1:
		return MoveRight, true
	case i.X == -1:
		return MoveLeft, true
	}
	return StopDown, false
}
