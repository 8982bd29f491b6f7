package game

import (
	"bomberboy/internal/sprite"
)

// Clip is a cyclic or one-shot sequence of sprite frames with per-frame
// display durations in seconds. A looping clip wraps; a stop-at-end clip
// pins on its final frame and reports Finished, which is how the death
// sequence signals the character's removal.
type Clip struct {
	frames    []sprite.FrameID
	durations []float64
	total     float64
	index     int
	elapsed   float64 // time spent within the current frame
	stopAtEnd bool
	finished  bool
}

// NewClip creates a looping clip. frames and durations must be the same
// non-zero length.
func NewClip(frames []sprite.FrameID, durations []float64) *Clip {
	return newClip(frames, durations, false)
}

// NewTerminalClip creates a stop-at-end clip.
func NewTerminalClip(frames []sprite.FrameID, durations []float64) *Clip {
	return newClip(frames, durations, true)
}

func newClip(frames []sprite.FrameID, durations []float64, stop bool) *Clip {
	if len(frames) == 0 || len(frames) != len(durations) {
		panic("game: clip frames and durations must be the same non-zero length")
	}
	c := &Clip{
		frames:    frames,
		durations: append([]float64(nil), durations...),
		stopAtEnd: stop,
	}
	for _, d := range c.durations {
		c.total += d
	}
	return c
}

// Advance moves the cursor forward by dt seconds and returns the frame that
// should be visible.
func (c *Clip) Advance(dt float64) sprite.FrameID {
	if c.finished {
		return c.frames[len(c.frames)-1]
	}

	c.elapsed += dt
	for c.elapsed >= c.durations[c.index] {
		c.elapsed -= c.durations[c.index]
		c.index++
		if c.index >= len(c.frames) {
			if c.stopAtEnd {
				c.index = len(c.frames) - 1
				c.elapsed = 0
				c.finished = true
				return c.frames[c.index]
			}
			c.index = 0
		}
	}
	return c.frames[c.index]
}

// Current returns the visible frame without advancing the cursor.
func (c *Clip) Current() sprite.FrameID {
	return c.frames[c.index]
}

// Finished reports whether a stop-at-end clip has reached its final frame.
// Looping clips never finish.
func (c *Clip) Finished() bool {
	return c.finished
}

// Reset rewinds the cursor to the first frame.
func (c *Clip) Reset() {
	c.index = 0
	c.elapsed = 0
	c.finished = false
}

// SetDurations replaces the per-frame durations, taking effect on the next
// Advance. The cursor position is preserved as a fraction of the total clip
// duration so a mid-stride speed change does not pop the animation.
func (c *Clip) SetDurations(durations []float64) {
	if len(durations) != len(c.frames) {
		panic("game: clip duration count must match frame count")
	}

	var phase float64
	if c.total > 0 {
		pos := c.elapsed
		for i := 0; i < c.index; i++ {
			pos += c.durations[i]
		}
		phase = pos / c.total
	}

	c.durations = append(c.durations[:0], durations...)
	c.total = 0
	for _, d := range c.durations {
		c.total += d
	}

	pos := phase * c.total
	c.index = 0
	c.elapsed = 0
	for c.index < len(c.frames)-1 && pos >= c.durations[c.index] {
		pos -= c.durations[c.index]
		c.index++
	}
	c.elapsed = pos
}
