// Package game implements the match simulation: the tile map, character
// movement and collision, sprite animation, bombs, and the per-frame match
// loop. It contains pure logic with no terminal dependencies; the platform
// layer handles input mapping, timing, and rendering.
package game

import "bomberboy/internal/core"

// Kind is the obstacle code stored in one map tile.
type Kind uint8

const (
	Empty Kind = iota

	// Obstacles: these block character movement.
	Block              // destructible
	FixedBlock         // indestructible
	BombTile           // a placed, unexploded bomb
	PowerupFireHidden  // destructible block hiding a fire powerup
	PowerupSpeedHidden // destructible block hiding a speed powerup
	PowerupBombHidden  // destructible block hiding a bomb powerup
	ExitHidden         // destructible block hiding the exit

	// Walkable specials.
	PowerupFire  // revealed pickup: +1 blast length
	PowerupSpeed // revealed pickup: +speed
	PowerupBomb  // revealed pickup: +1 bomb capacity
	Exit         // revealed exit: reaching it wins the match
	FlameTile    // active explosion flame
)

// Blocks reports whether the tile kind stops character movement.
// Flames and revealed pickups are walkable (flames kill, they don't block).
func (k Kind) Blocks() bool {
	switch k {
	case Block, FixedBlock, BombTile,
		PowerupFireHidden, PowerupSpeedHidden, PowerupBombHidden, ExitHidden:
		return true
	}
	return false
}

// Destructible reports whether a flame destroys the tile.
func (k Kind) Destructible() bool {
	switch k {
	case Block, PowerupFireHidden, PowerupSpeedHidden, PowerupBombHidden, ExitHidden:
		return true
	}
	return false
}

// Reveal returns what a destructible tile leaves behind when destroyed.
func (k Kind) Reveal() Kind {
	switch k {
	case PowerupFireHidden:
		return PowerupFire
	case PowerupSpeedHidden:
		return PowerupSpeed
	case PowerupBombHidden:
		return PowerupBomb
	case ExitHidden:
		return Exit
	default:
		return Empty
	}
}

// TileMap is the grid of obstacle codes for one match. It is read-only
// during character updates; the match mutates it only at frame boundaries
// (bomb placement, explosions, pickups).
type TileMap struct {
	width, height int
	tileSize      float64
	cells         [][]Kind
}

// NewTileMap creates an empty map with the given dimensions.
func NewTileMap(width, height int, tileSize float64) *TileMap {
	cells := make([][]Kind, height)
	for y := range cells {
		cells[y] = make([]Kind, width)
	}
	return &TileMap{width: width, height: height, tileSize: tileSize, cells: cells}
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the map height in tiles.
func (m *TileMap) Height() int {
	return m.height
}

// TileSize returns the tile edge length in world pixels.
func (m *TileMap) TileSize() float64 {
	return m.tileSize
}

// At returns the obstacle code at the given tile coordinate.
// Out-of-range coordinates report FixedBlock, so diagonal lookups during
// corner assist never need a caller-side bounds guarantee.
func (m *TileMap) At(tx, ty int) Kind {
	if tx < 0 || tx >= m.width || ty < 0 || ty >= m.height {
		return FixedBlock
	}
	return m.cells[ty][tx]
}

// Set writes the obstacle code at the given tile coordinate.
// Out-of-range writes are ignored.
func (m *TileMap) Set(tx, ty int, k Kind) {
	if tx < 0 || tx >= m.width || ty < 0 || ty >= m.height {
		return
	}
	m.cells[ty][tx] = k
}

// TileOf returns the tile coordinate containing a world-pixel position.
func (m *TileMap) TileOf(p core.Vec2) (tx, ty int) {
	return int(p.X / m.tileSize), int(p.Y / m.tileSize)
}

// CenterOf returns the world-pixel center of a tile.
func (m *TileMap) CenterOf(tx, ty int) core.Vec2 {
	return core.Vec2{
		X: (float64(tx) + 0.5) * m.tileSize,
		Y: (float64(ty) + 0.5) * m.tileSize,
	}
}
