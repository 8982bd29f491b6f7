package config

import (
	_ "embed"
)

//go:embed defaults/bomberboy.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as a
// last resort if the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		TileSize: 32,
		Character: CharacterConfig{
			InitialSpeed:   3.0,
			MaxSpeed:       6.0,
			SpeedIncrement: 0.5,
			StepsPerTile:   2.0,
			InitialBombs:   1,
			InitialFire:    1,
			FireIncrement:  1,
		},
		Bombs: BombConfig{
			FuseSeconds:  3.0,
			FlameSeconds: 0.5,
		},
		Grid: GridConfig{
			Width:         15,
			Height:        13,
			BlockDensity:  0.45,
			FirePowerups:  2,
			SpeedPowerups: 2,
			BombPowerups:  2,
		},
		Match: MatchConfig{
			MaxFrameDelta: 0.1,
		},
	}
}
