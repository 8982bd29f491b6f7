package game

import (
	"math/rand"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
)

// spawnTiles returns the spawn tile for each player slot. Player one starts
// top-left, player two bottom-right.
func spawnTiles(w, h int) [][2]int {
	return [][2]int{
		{1, 1},
		{w - 2, h - 2},
	}
}

// Generate builds a classic match grid: a fixed-block border, a lattice of
// fixed blocks on even coordinates, a seeded fill of destructible blocks,
// and powerups plus the exit hidden under some of them. Spawn corners are
// kept clear so characters can always place and escape a first bomb.
func Generate(cfg config.GridConfig, tileSize float64, rng *rand.Rand) *TileMap {
	m := NewTileMap(cfg.Width, cfg.Height, tileSize)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			switch {
			case x == 0 || y == 0 || x == cfg.Width-1 || y == cfg.Height-1:
				m.Set(x, y, FixedBlock)
			case x%2 == 0 && y%2 == 0:
				m.Set(x, y, FixedBlock)
			}
		}
	}

	// Destructible fill, avoiding spawn zones.
	var blocks [][2]int
	for y := 1; y < cfg.Height-1; y++ {
		for x := 1; x < cfg.Width-1; x++ {
			if m.At(x, y) != Empty || nearSpawn(x, y, cfg.Width, cfg.Height) {
				continue
			}
			if rng.Float64() < cfg.BlockDensity {
				m.Set(x, y, Block)
				blocks = append(blocks, [2]int{x, y})
			}
		}
	}

	// Hide powerups and the exit under random destructible blocks.
	rng.Shuffle(len(blocks), func(i, j int) {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	})
	hidden := []Kind{ExitHidden}
	for i := 0; i < cfg.FirePowerups; i++ {
		hidden = append(hidden, PowerupFireHidden)
	}
	for i := 0; i < cfg.SpeedPowerups; i++ {
		hidden = append(hidden, PowerupSpeedHidden)
	}
	for i := 0; i < cfg.BombPowerups; i++ {
		hidden = append(hidden, PowerupBombHidden)
	}
	for i, k := range hidden {
		if i >= len(blocks) {
			break
		}
		m.Set(blocks[i][0], blocks[i][1], k)
	}

	return m
}

// nearSpawn reports whether a tile is inside a spawn clearance zone: the
// spawn corner itself plus its two adjacent corridor tiles.
func nearSpawn(x, y, w, h int) bool {
	for _, s := range spawnTiles(w, h) {
		sx, sy := s[0], s[1]
		if x == sx && y == sy {
			return true
		}
		if (x == sx && core.Abs(y-sy) == 1) || (y == sy && core.Abs(x-sx) == 1) {
			return true
		}
	}
	return false
}
