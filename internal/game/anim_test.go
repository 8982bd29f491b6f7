package game

import (
	"testing"

	"bomberboy/internal/sprite"
)

func TestClipLoops(t *testing.T) {
	c := NewClip([]sprite.FrameID{"a", "b"}, []float64{0.1, 0.1})

	if got := c.Current(); got != "a" {
		t.Fatalf("initial frame = %q, want a", got)
	}
	if got := c.Advance(0.1); got != "b" {
		t.Fatalf("after 0.1s = %q, want b", got)
	}
	if got := c.Advance(0.1); got != "a" {
		t.Fatalf("after wrap = %q, want a", got)
	}
	if c.Finished() {
		t.Fatal("looping clip reported finished")
	}
}

func TestClipAdvanceSpansMultipleFrames(t *testing.T) {
	c := NewClip([]sprite.FrameID{"a", "b", "c"}, []float64{0.1, 0.1, 0.1})

	// One large delta skips across frames rather than stalling on one.
	if got := c.Advance(0.25); got != "c" {
		t.Fatalf("after 0.25s = %q, want c", got)
	}
}

func TestTerminalClipPins(t *testing.T) {
	c := NewTerminalClip([]sprite.FrameID{"a", "b"}, []float64{0.1, 0.1})

	c.Advance(0.1)
	if c.Finished() {
		t.Fatal("finished before the last frame elapsed")
	}
	if got := c.Advance(0.1); got != "b" {
		t.Fatalf("final frame = %q, want b", got)
	}
	if !c.Finished() {
		t.Fatal("not finished after the last frame elapsed")
	}
	if got := c.Advance(1.0); got != "b" {
		t.Fatalf("pinned frame = %q, want b", got)
	}
}

func TestClipReset(t *testing.T) {
	c := NewTerminalClip([]sprite.FrameID{"a", "b"}, []float64{0.1, 0.1})
	c.Advance(0.3)
	c.Reset()

	if c.Finished() {
		t.Fatal("finished after reset")
	}
	if got := c.Current(); got != "a" {
		t.Fatalf("frame after reset = %q, want a", got)
	}
}

func TestClipSetDurationsPreservesPhase(t *testing.T) {
	c := NewClip([]sprite.FrameID{"a", "b"}, []float64{0.2, 0.2})

	// 0.3s into a 0.4s clip: 75% through, showing frame b.
	if got := c.Advance(0.3); got != "b" {
		t.Fatalf("frame before retiming = %q, want b", got)
	}

	// Halving the durations keeps the 75% phase: still frame b, halfway
	// through it.
	c.SetDurations([]float64{0.1, 0.1})
	if got := c.Current(); got != "b" {
		t.Fatalf("frame after retiming = %q, want b", got)
	}
	// 0.05s remains on frame b; crossing it wraps to a.
	if got := c.Advance(0.06); got != "a" {
		t.Fatalf("frame after remaining time = %q, want a", got)
	}
}

func TestClipLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mismatched frame/duration lengths did not panic")
		}
	}()
	NewClip([]sprite.FrameID{"a"}, []float64{0.1, 0.2})
}
