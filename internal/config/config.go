// Package config provides YAML-based tuning configuration and difficulty
// presets for the game.
package config

// GameConfig contains all tuning parameters for a match.
type GameConfig struct {
	TileSize  float64         `yaml:"tile_size"`
	Character CharacterConfig `yaml:"character"`
	Bombs     BombConfig      `yaml:"bombs"`
	Grid      GridConfig      `yaml:"grid"`
	Match     MatchConfig     `yaml:"match"`
}

// CharacterConfig defines movement and resource parameters.
// Speeds are expressed in tiles per second; the motion resolver multiplies
// by tile size and the instantaneous frame delta.
type CharacterConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	StepsPerTile   float64 `yaml:"steps_per_tile"` // walk-cycle steps per tile crossed
	InitialBombs   int     `yaml:"initial_bombs"`
	InitialFire    int     `yaml:"initial_fire"`
	FireIncrement  int     `yaml:"fire_increment"`
}

// BombConfig defines bomb timing parameters.
type BombConfig struct {
	FuseSeconds  float64 `yaml:"fuse_seconds"`
	FlameSeconds float64 `yaml:"flame_seconds"`
}

// GridConfig defines map generation parameters.
type GridConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	BlockDensity  float64 `yaml:"block_density"` // fill chance per free interior tile
	FirePowerups  int     `yaml:"fire_powerups"`
	SpeedPowerups int     `yaml:"speed_powerups"`
	BombPowerups  int     `yaml:"bomb_powerups"`
}

// MatchConfig defines frame-loop parameters.
type MatchConfig struct {
	// MaxFrameDelta caps the per-tick simulation delta in seconds so a
	// frame-time spike cannot teleport characters through walls.
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.BlockDensity = 0.3
		cfg.Bombs.FuseSeconds = 3.5
	case DifficultyNormal:
		cfg.Grid.BlockDensity = 0.45
		cfg.Bombs.FuseSeconds = 3.0
	case DifficultyHard:
		cfg.Grid.BlockDensity = 0.6
		cfg.Bombs.FuseSeconds = 2.25
	}
}
