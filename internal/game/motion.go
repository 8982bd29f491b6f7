package game

import (
	"math"

	"bomberboy/internal/core"
)

// Resolve computes the "natural movement" for one tick: given the character
// center position and the requested move event, it returns the unit
// direction actually taken plus the possibly-redirected event. The caller
// scales the direction by speed, tile size and the frame delta.
//
// For each direction the rule is: if the tile ahead is open, the character
// may pass only while centered in the corridor (sub-tile offset within
// 45%-55% of the tile edge, snapped exactly to the centerline); off-center
// it is redirected sideways toward the centerline first. If the tile ahead
// is blocked, a diagonal neighbor that is open permits a corner-cutting
// redirect, but only within the near bands 0%-25% and 75%-100%. Offsets in
// (25%,45%] and [55%,75%) against a blocked tile are a hard stop. The four
// handlers run in sequence, so a sideways redirect is itself resolved
// against the corridor it turns into within the same tick.
//
// Resolve may mutate pos: centering snaps the cross-axis coordinate to the
// corridor centerline.
func Resolve(m *TileMap, pos *core.Vec2, ev Event) (dirX, dirY float64, out Event) {
	sq := m.TileSize()

	var dir core.Vec2
	switch ev {
	case MoveUp:
		dir = core.Vec2{X: 0, Y: -1}
	case MoveDown:
		dir = core.Vec2{X: 0, Y: 1}
	case MoveLeft:
		dir = core.Vec2{X: -1, Y: 0}
	case MoveRight:
		dir = core.Vec2{X: 1, Y: 0}
	}

	x := pos.X
	xTile := int(x / sq)

	// Upwards: sample the tile band below the head to find the occupied
	// row, then test the row above it.
	y := pos.Y + sq/2
	yTile := int(y / sq)
	if ev == MoveUp {
		fx := math.Mod(x, sq)
		switch {
		case !m.At(xTile, yTile-1).Blocks():
			switch {
			case sq*0.45 < fx && fx < sq*0.55:
				pos.X = (float64(xTile) + 0.5) * sq
			case fx <= sq*0.45:
				dir = core.Vec2{X: 1, Y: 0}
				ev = MoveRight
			default:
				dir = core.Vec2{X: -1, Y: 0}
				ev = MoveLeft
			}
		case !m.At(xTile-1, yTile-1).Blocks() && 0 < fx && fx < sq/4:
			dir = core.Vec2{X: -1, Y: 0}
			ev = MoveLeft
		case !m.At(xTile+1, yTile-1).Blocks() && 3*sq/4 < fx && fx < sq:
			dir = core.Vec2{X: 1, Y: 0}
			ev = MoveRight
		default:
			dir = core.Vec2{}
			ev = StopUp
		}
	}

	// Downwards.
	y = pos.Y - sq/2 - 1
	yTile = int(y / sq)
	if ev == MoveDown {
		fx := math.Mod(x, sq)
		switch {
		case !m.At(xTile, yTile+1).Blocks():
			switch {
			case sq*0.45 < fx && fx < sq*0.55:
				pos.X = (float64(xTile) + 0.5) * sq
			case fx <= sq*0.45:
				dir = core.Vec2{X: 1, Y: 0}
				ev = MoveRight
			default:
				dir = core.Vec2{X: -1, Y: 0}
				ev = MoveLeft
			}
		case !m.At(xTile-1, yTile+1).Blocks() && 0 <= fx && fx < sq/4:
			dir = core.Vec2{X: -1, Y: 0}
			ev = MoveLeft
		case !m.At(xTile+1, yTile+1).Blocks() && 3*sq/4 < fx && fx < sq:
			dir = core.Vec2{X: 1, Y: 0}
			ev = MoveRight
		default:
			dir = core.Vec2{}
			ev = StopDown
		}
	}

	y = pos.Y
	yTile = int(y / sq)

	// Rightwards.
	x = pos.X - sq/2 - 1
	xTile = int(x / sq)
	if ev == MoveRight {
		fy := math.Mod(y, sq)
		switch {
		case !m.At(xTile+1, yTile).Blocks():
			switch {
			case sq*0.45 < fy && fy < sq*0.55:
				pos.Y = (float64(yTile) + 0.5) * sq
			case fy <= sq*0.45:
				dir = core.Vec2{X: 0, Y: 1}
				ev = MoveDown
			default:
				dir = core.Vec2{X: 0, Y: -1}
				ev = MoveUp
			}
		case !m.At(xTile+1, yTile-1).Blocks() && 0 <= fy && fy < sq/4:
			dir = core.Vec2{X: 0, Y: -1}
			ev = MoveUp
		case !m.At(xTile+1, yTile+1).Blocks() && 3*sq/4 < fy && fy < sq:
			dir = core.Vec2{X: 0, Y: 1}
			ev = MoveDown
		default:
			dir = core.Vec2{}
			ev = StopRight
		}
	}

	// Leftwards.
	x = pos.X + sq/2
	xTile = int(x / sq)
	if ev == MoveLeft {
		fy := math.Mod(y, sq)
		switch {
		case !m.At(xTile-1, yTile).Blocks():
			switch {
			case sq*0.45 < fy && fy < sq*0.55:
				pos.Y = (float64(yTile) + 0.5) * sq
			case fy <= sq*0.45:
				dir = core.Vec2{X: 0, Y: 1}
				ev = MoveDown
			default:
				dir = core.Vec2{X: 0, Y: -1}
				ev = MoveUp
			}
		case !m.At(xTile-1, yTile-1).Blocks() && 0 <= fy && fy < sq/4:
			dir = core.Vec2{X: 0, Y: -1}
			ev = MoveUp
		case !m.At(xTile-1, yTile+1).Blocks() && 3*sq/4 < fy && fy < sq:
			dir = core.Vec2{X: 0, Y: 1}
			ev = MoveDown
		default:
			dir = core.Vec2{}
			ev = StopLeft
		}
	}

	return dir.X, dir.Y, ev
}
