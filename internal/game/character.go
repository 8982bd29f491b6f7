package game

import (
	"bomberboy/internal/config"
	"bomberboy/internal/core"
	"bomberboy/internal/sprite"
)

// specialState is the one-shot sub-machine guarding a pending special event.
// While armed, key edges still mutate the velocity intent but may not
// overwrite the pending event; the guard disarms on the next update tick.
type specialState int

const (
	specialIdle specialState = iota
	specialArmed
)

// Character is one match participant: world-pixel position, velocity
// intent, the current/pending event pair driving movement and animation,
// and resource counters (bombs, fire, speed).
//
// Position is owned exclusively by the character and mutated only during an
// update tick. The tile map is read-only from the character's perspective.
type Character struct {
	id       core.PlayerID
	sheet    *sprite.Sheet
	tileSize float64
	tuning   config.CharacterConfig

	pos     core.Vec2
	intent  Intent
	current Event
	pending Event
	special specialState
	facing  Event // stop stance used when no movement intent remains

	speed        float64
	placedBombs  int
	bombCapacity int
	firePower    int

	clips     map[Event]*Clip
	lastDrawn Event
}

// NewCharacter creates a character standing on the given spawn tile.
func NewCharacter(id core.PlayerID, spawnTX, spawnTY int, m *TileMap, tuning config.CharacterConfig, sheet *sprite.Sheet) *Character {
	c := &Character{
		id:           id,
		sheet:        sheet,
		tileSize:     m.TileSize(),
		tuning:       tuning,
		pos:          m.CenterOf(spawnTX, spawnTY),
		current:      StopDown,
		pending:      StopDown,
		facing:       StopDown,
		lastDrawn:    StopDown,
		speed:        tuning.InitialSpeed,
		bombCapacity: tuning.InitialBombs,
		firePower:    tuning.InitialFire,
	}
	c.setupClips()
	return c
}

// setupClips builds the per-event animation clip set once; clips are reused
// every tick for the character's lifetime.
func (c *Character) setupClips() {
	walk := func(a, b sprite.FrameID) *Clip {
		d := 1 / (c.speed * c.tuning.StepsPerTile)
		return NewClip([]sprite.FrameID{a, b}, []float64{d, d})
	}
	stand := func(f sprite.FrameID) *Clip {
		return NewClip([]sprite.FrameID{f}, []float64{1})
	}

	// Dying: the character spins five times, then falls to the ground.
	dieFrames := make([]sprite.FrameID, 0, 27)
	dieDurations := make([]float64, 0, 27)
	for i := 0; i < 5; i++ {
		dieFrames = append(dieFrames, sprite.DieDown, sprite.DieRight, sprite.DieUp, sprite.DieLeft)
		dieDurations = append(dieDurations, 0.1, 0.1, 0.1, 0.1)
	}
	for _, f := range []sprite.FrameID{sprite.DieDown, sprite.Die1, sprite.Die1, sprite.Die3, sprite.Die4, sprite.Die5, sprite.Die6} {
		dieFrames = append(dieFrames, f)
		dieDurations = append(dieDurations, 0.5)
	}

	c.clips = map[Event]*Clip{
		MoveUp:    walk(sprite.MoveUp1, sprite.MoveUp2),
		MoveDown:  walk(sprite.MoveDown1, sprite.MoveDown2),
		MoveLeft:  walk(sprite.MoveLeft1, sprite.MoveLeft2),
		MoveRight: walk(sprite.MoveRight1, sprite.MoveRight2),

		StopUp:    stand(sprite.StandUp),
		StopDown:  stand(sprite.StandDown),
		StopLeft:  stand(sprite.StandLeft),
		StopRight: stand(sprite.StandRight),

		Win: NewClip(
			[]sprite.FrameID{sprite.Win1, sprite.Win2, sprite.Win3},
			[]float64{0.25, 0.25, 0.5}),
		Die: NewTerminalClip(dieFrames, dieDurations),
	}
}

// ID returns the owning player.
func (c *Character) ID() core.PlayerID {
	return c.id
}

// Pos returns the character's world-pixel center.
func (c *Character) Pos() core.Vec2 {
	return c.pos
}

// Sheet returns the sprite sheet the character draws from.
func (c *Character) Sheet() *sprite.Sheet {
	return c.sheet
}

// TileOn returns the tile coordinate containing the character's center.
func (c *Character) TileOn(m *TileMap) (tx, ty int) {
	return m.TileOf(c.pos)
}

// Speed returns the current speed in tiles per second.
func (c *Character) Speed() float64 {
	return c.speed
}

// FirePower returns the blast length of the character's bombs.
func (c *Character) FirePower() int {
	return c.firePower
}

// BombCapacity returns how many bombs may be placed concurrently.
func (c *Character) BombCapacity() int {
	return c.bombCapacity
}

// PlacedBombs returns how many of the character's bombs are currently live.
func (c *Character) PlacedBombs() int {
	return c.placedBombs
}

// Event returns the current event (the one driving this frame's animation).
func (c *Character) Event() Event {
	return c.current
}

// Terminal reports whether Win or Die has been signalled.
func (c *Character) Terminal() bool {
	return c.pending.Terminal() || c.current.Terminal()
}

// KeyDown applies a key-down edge: intent accumulates along the pressed
// axis, and the pending event is re-derived unless a special event guard is
// armed. No-op while winning or dying.
func (c *Character) KeyDown(k core.Key) {
	if c.pending.Terminal() {
		return
	}
	c.intent.press(k)
	if c.special == specialArmed {
		return
	}
	if ev, ok := c.intent.Derive(); ok {
		c.pending = ev
	}
}

// KeyUp applies a key-up edge: intent is reduced along the released axis
// and the pending event becomes the matching stop stance, unless another
// held direction takes over. No-op while winning or dying.
func (c *Character) KeyUp(k core.Key) {
	if c.pending.Terminal() {
		return
	}
	c.intent.release(k)
	if c.special == specialArmed {
		return
	}
	if stop, ok := stopFor[k]; ok {
		c.pending = stop
	}
	if ev, ok := c.intent.Derive(); ok {
		c.pending = ev
	}
}

// PlaceBomb tries to place a bomb. It succeeds iff the character has spare
// capacity; over-capacity attempts fail silently.
func (c *Character) PlaceBomb() bool {
	if c.placedBombs < c.bombCapacity {
		c.placedBombs++
		return true
	}
	return false
}

// BombExploded informs the character that one of its bombs went off,
// freeing capacity for another. Clamped at zero.
func (c *Character) BombExploded() {
	if c.placedBombs > 0 {
		c.placedBombs--
	}
}

// SpecialEvent force-sets the pending event from the match system (win,
// die, powerup pickup) and arms the one-shot guard. Die is sticky and
// overrides Win; nothing overrides Die.
func (c *Character) SpecialEvent(ev Event) {
	if c.pending == Die {
		return
	}
	if c.pending == Win && ev != Die {
		return
	}
	c.pending = ev
	c.special = specialArmed
}

// Update advances the state machine by one tick: the pending event becomes
// current, movement events run through the motion resolver, and resource
// events are applied exactly once. Returns false once the dying animation
// has finished, signalling the caller to drop the character; from then on
// the position is never mutated again.
func (c *Character) Update(m *TileMap, dt float64) bool {
	if c.clips[Die].Finished() {
		return false
	}

	c.current = c.pending
	if c.special == specialArmed {
		c.special = specialIdle
	}

	switch c.current {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		dx, dy, ev := Resolve(m, &c.pos, c.current)
		step := c.speed * m.TileSize() * dt
		c.pos = c.pos.Add(core.Vec2{X: dx, Y: dy}.Scale(step))
		c.current = ev
		if ev.Directional() {
			c.facing = stance[ev]
		} else {
			c.facing = ev
		}

	case IncreaseSpeed:
		c.speed += c.tuning.SpeedIncrement
		if c.speed > c.tuning.MaxSpeed {
			c.speed = c.tuning.MaxSpeed
		}
		freq := c.tuning.StepsPerTile * (c.tuning.InitialSpeed + c.speed/c.tuning.MaxSpeed)
		d := []float64{1 / freq, 1 / freq}
		for _, ev := range []Event{MoveUp, MoveDown, MoveLeft, MoveRight} {
			c.clips[ev].SetDurations(d)
		}
		c.consumePending()

	case IncreaseBomb:
		c.bombCapacity++
		c.consumePending()

	case IncreaseFire:
		c.firePower += c.tuning.FireIncrement
		c.consumePending()
	}

	return true
}

// consumePending clears a just-applied resource event, reverting to the
// velocity-derived move or the last facing stance.
func (c *Character) consumePending() {
	if ev, ok := c.intent.Derive(); ok {
		c.pending = ev
	} else {
		c.pending = c.facing
	}
	c.current = c.pending
}

// Draw selects the animation clip matching the current event, advances it
// by the frame delta, and returns the visible frame plus the anchor offset
// that keeps the sprite's bottom-center aligned with the character's tile
// footprint regardless of frame height. The clip cursor rewinds when its
// event becomes active again after being inactive.
func (c *Character) Draw(dt float64) (sprite.FrameID, core.Vec2) {
	if c.current != c.lastDrawn {
		if clip, ok := c.clips[c.current]; ok {
			clip.Reset()
		}
		c.lastDrawn = c.current
	}

	clip, ok := c.clips[c.current]
	if !ok {
		clip = c.clips[c.facing]
	}
	frame := clip.Advance(dt)
	h := c.sheet.Frame(frame).HeightPx
	anchor := core.Vec2{X: -c.tileSize / 2, Y: c.tileSize/2 - h}
	return frame, anchor
}
