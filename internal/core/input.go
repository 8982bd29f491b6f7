package core

// PlayerID identifies a player in a match. Local matches support up to two
// players sharing one keyboard.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Key represents a semantic game key, abstracted from physical key presses.
// The simulation consumes key-down/key-up edges of these keys; it never
// polls raw input state.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBomb  // Place a bomb on the current tile
	KeyBack  // B, Escape - leave the match / go back
	KeyPause // P - pause/unpause the match
	KeyQuit  // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyBomb:
		return "Bomb"
	case KeyBack:
		return "Back"
	case KeyPause:
		return "Pause"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Directional reports whether the key carries movement intent.
func (k Key) Directional() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}

// KeyEvent is a single key-down or key-up edge for one player.
// All motion intent is accumulated from these edges; the platform layer is
// responsible for producing a release edge when a key stops being held.
type KeyEvent struct {
	Player  PlayerID
	Key     Key
	Pressed bool // true for key-down, false for key-up
}
