package core

// RuntimeConfig contains configuration passed to a match at initialization.
// The platform uses this to adapt to screen size and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic map generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Mode identifies the active top-level screen. The match loop returns a Mode
// every frame; the screen director constructs and destroys screens when it
// changes.
type Mode int

const (
	ModeMenu Mode = iota
	ModeSetup
	ModePlaying
	ModePause
	ModeFinish
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModeSetup:
		return "Setup"
	case ModePlaying:
		return "Playing"
	case ModePause:
		return "Pause"
	case ModeFinish:
		return "Finish"
	default:
		return "Unknown"
	}
}
