package game

import (
	"math"
	"testing"

	"bomberboy/internal/core"
)

const sq = 32.0

// openMap returns a w x h map of empty tiles. Out-of-range queries still
// report fixed blocks, so the map behaves as if walled on all sides.
func openMap(w, h int) *TileMap {
	return NewTileMap(w, h, sq)
}

func TestResolveCenteredCorridorPasses(t *testing.T) {
	m := openMap(5, 5)

	// Exactly on the corridor centerline, moving up into open space.
	pos := core.Vec2{X: 2.5 * sq, Y: 2.5 * sq}
	dx, dy, out := Resolve(m, &pos, MoveUp)

	if dx != 0 || dy != -1 {
		t.Fatalf("dir = (%v,%v), want (0,-1)", dx, dy)
	}
	if out != MoveUp {
		t.Fatalf("out = %v, want MoveUp", out)
	}
	if pos.X != 2.5*sq {
		t.Fatalf("pos.X = %v, want unchanged %v", pos.X, 2.5*sq)
	}
}

func TestResolveCenteringSnap(t *testing.T) {
	m := openMap(5, 5)

	// Inside the centering band (45%..55%) but off the exact centerline:
	// the cross-axis coordinate snaps to the centerline.
	pos := core.Vec2{X: 2*sq + 15, Y: 2.5 * sq}
	_, _, out := Resolve(m, &pos, MoveUp)

	if out != MoveUp {
		t.Fatalf("out = %v, want MoveUp", out)
	}
	if pos.X != 2.5*sq {
		t.Fatalf("pos.X = %v, want snapped to %v", pos.X, 2.5*sq)
	}
}

func TestResolveRedirectTowardCenterline(t *testing.T) {
	m := openMap(5, 5)

	// Open corridor ahead but the character is well left of the
	// centerline: it is walked sideways toward the center first. The
	// sideways leg resolves through the rightwards handler in the same
	// call, which also snaps the vertical coordinate.
	pos := core.Vec2{X: 2*sq + 4, Y: 2.5*sq - 1}
	dx, dy, out := Resolve(m, &pos, MoveUp)

	if out != MoveRight {
		t.Fatalf("out = %v, want MoveRight", out)
	}
	if dx != 1 || dy != 0 {
		t.Fatalf("dir = (%v,%v), want (1,0)", dx, dy)
	}
	if pos.Y != 2.5*sq {
		t.Fatalf("pos.Y = %v, want snapped to %v", pos.Y, 2.5*sq)
	}
}

func TestResolveCornerAssist(t *testing.T) {
	tests := []struct {
		name    string
		fx      float64 // sub-tile x offset, pixels
		blockLD bool    // block the up-left diagonal
		blockRD bool    // block the up-right diagonal
		wantDir [2]float64
		wantOut Event
	}{
		{"near left edge, diagonal open", 4, false, true, [2]float64{-1, 0}, MoveLeft},
		{"near right edge, diagonal open", 28, true, false, [2]float64{1, 0}, MoveRight},
		{"near left edge, diagonal blocked", 4, true, true, [2]float64{0, 0}, StopUp},
		{"dead band left of center", 10, false, false, [2]float64{0, 0}, StopUp},
		{"dead band right of center", 20, false, false, [2]float64{0, 0}, StopUp},
		{"centered against wall", 16, false, false, [2]float64{0, 0}, StopUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := openMap(5, 5)
			m.Set(2, 1, Block) // tile straight ahead
			if tc.blockLD {
				m.Set(1, 1, Block)
			}
			if tc.blockRD {
				m.Set(3, 1, Block)
			}

			// Just past the vertical tile center so the handler probes
			// the next row up.
			pos := core.Vec2{X: 2*sq + tc.fx, Y: 2.5*sq - 1}
			before := pos
			dx, dy, out := Resolve(m, &pos, MoveUp)

			if dx != tc.wantDir[0] || dy != tc.wantDir[1] {
				t.Errorf("dir = (%v,%v), want (%v,%v)", dx, dy, tc.wantDir[0], tc.wantDir[1])
			}
			if out != tc.wantOut {
				t.Errorf("out = %v, want %v", out, tc.wantOut)
			}
			if out == StopUp && pos != before {
				t.Errorf("pos mutated on stop: %v -> %v", before, pos)
			}
		})
	}
}

func TestResolveBandMembership(t *testing.T) {
	// Against a blocked tile with both diagonals open, sweep the sub-tile
	// offset and verify which band each offset lands in.
	m := openMap(5, 5)
	m.Set(2, 1, Block)

	for px := 0; px < int(sq); px++ {
		fx := float64(px)
		pos := core.Vec2{X: 2*sq + fx, Y: 2.5*sq - 1}
		_, _, out := Resolve(m, &pos, MoveUp)

		var want Event
		switch {
		case 0 < fx && fx < sq/4:
			want = MoveLeft
		case 3*sq/4 < fx:
			want = MoveRight
		default:
			want = StopUp
		}
		if out != want {
			t.Errorf("fx=%v: out = %v, want %v", fx, out, want)
		}
	}
}

func TestResolveLeftRightMirror(t *testing.T) {
	// A corridor junction mirrored about the vertical axis must resolve
	// to mirrored outcomes.
	left := openMap(5, 5)
	left.Set(1, 2, Block)
	right := openMap(5, 5)
	right.Set(3, 2, Block)

	// Slightly above the horizontal centerline, inside the upper corner
	// band, with the diagonal open in both maps.
	fy := 4.0
	posL := core.Vec2{X: 2.5*sq - 1, Y: 2*sq + fy}
	posR := core.Vec2{X: 2.5*sq + 1, Y: 2*sq + fy}

	dxL, dyL, outL := Resolve(left, &posL, MoveLeft)
	dxR, dyR, outR := Resolve(right, &posR, MoveRight)

	if outL != MoveUp || outR != MoveUp {
		t.Fatalf("out = (%v,%v), want both MoveUp", outL, outR)
	}
	if dxL != 0 || dyL != -1 || dxR != 0 || dyR != -1 {
		t.Fatalf("dirs = (%v,%v)/(%v,%v), want both (0,-1)", dxL, dyL, dxR, dyR)
	}
}

func TestResolveEdgeSampling(t *testing.T) {
	// Heading down, the leading edge is the bottom of the sprite: a
	// character whose center has not yet crossed the tile centerline
	// still probes its own row, so nothing blocks it.
	m := openMap(5, 5)
	m.Set(2, 3, Block)

	// Center just above the centerline of row 2: bottom edge sample is
	// still inside row 2, next row probed is 3 (blocked), centered fx.
	pos := core.Vec2{X: 2.5 * sq, Y: 2.5*sq + 1}
	_, dy, out := Resolve(m, &pos, MoveDown)
	if out != StopDown || dy != 0 {
		t.Fatalf("past centerline: out = %v dy = %v, want StopDown 0", out, dy)
	}

	// Center above the centerline: the occupied row resolves one up, the
	// probe hits row 2 which is open, so movement continues.
	pos = core.Vec2{X: 2.5 * sq, Y: 2.5*sq - 1}
	_, dy, out = Resolve(m, &pos, MoveDown)
	if out != MoveDown || dy != 1 {
		t.Fatalf("before centerline: out = %v dy = %v, want MoveDown 1", out, dy)
	}
}

func TestResolveMapBorderBlocks(t *testing.T) {
	// Outside the allocated grid everything reads as a fixed block, so
	// the map border is a wall even without explicit border tiles.
	m := openMap(3, 3)
	pos := core.Vec2{X: 1.5 * sq, Y: 0.5*sq - 1}
	_, _, out := Resolve(m, &pos, MoveUp)
	if out != StopUp {
		t.Fatalf("out = %v, want StopUp at the map border", out)
	}
}

func TestResolveStepIsCallerScaled(t *testing.T) {
	// Resolve returns a unit direction only; verify it never scales.
	m := openMap(5, 5)
	pos := core.Vec2{X: 2.5 * sq, Y: 2.5 * sq}
	dx, dy, _ := Resolve(m, &pos, MoveDown)
	if math.Hypot(dx, dy) != 1 {
		t.Fatalf("|dir| = %v, want 1", math.Hypot(dx, dy))
	}
}
