package game

// Bomb is a placed, unexploded bomb occupying one tile.
type Bomb struct {
	TX, TY int
	Fuse   float64 // seconds until detonation
	Power  int     // blast length in tiles per direction
	Owner  *Character
}

// flame is one burning tile of an explosion. under is what the tile
// reverts to when the flame expires: revealed pickups burn away, but the
// exit survives.
type flame struct {
	ttl   float64
	under Kind
}

// tickBombs burns fuses and detonates due bombs, including chain reactions
// set off by a blast reaching another bomb. Runs at the frame boundary,
// after character updates.
func (m *Match) tickBombs(dt float64) {
	var exploding []*Bomb
	keep := m.bombs[:0]
	for _, b := range m.bombs {
		b.Fuse -= dt
		if b.Fuse <= 0 {
			exploding = append(exploding, b)
		} else {
			keep = append(keep, b)
		}
	}
	m.bombs = keep

	for len(exploding) > 0 {
		b := exploding[len(exploding)-1]
		exploding = exploding[:len(exploding)-1]
		exploding = m.explode(b, exploding)
	}
}

// explode detonates one bomb: a cross-shaped blast of the bomb's power in
// each direction, stopped by fixed blocks, consuming the first destructible
// block it meets (revealing whatever hides beneath), and chain-detonating
// any bomb it reaches. Returns the chain queue with newly triggered bombs
// appended.
func (m *Match) explode(b *Bomb, chain []*Bomb) []*Bomb {
	b.Owner.BombExploded()
	m.setFlame(b.TX, b.TY)

	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range dirs {
		for i := 1; i <= b.Power; i++ {
			tx, ty := b.TX+d[0]*i, b.TY+d[1]*i
			k := m.tiles.At(tx, ty)
			if k == FixedBlock {
				break
			}
			if k.Destructible() {
				m.tiles.Set(tx, ty, k.Reveal())
				m.addScore(b.Owner.ID(), scoreBlock)
				break
			}
			if k == BombTile {
				if other := m.removeBombAt(tx, ty); other != nil {
					chain = append(chain, other)
				}
				break
			}
			m.setFlame(tx, ty)
		}
	}
	return chain
}

// removeBombAt pulls a live bomb off the pending list so a chain reaction
// can detonate it immediately.
func (m *Match) removeBombAt(tx, ty int) *Bomb {
	for i, b := range m.bombs {
		if b.TX == tx && b.TY == ty {
			m.bombs = append(m.bombs[:i], m.bombs[i+1:]...)
			return b
		}
	}
	return nil
}

// setFlame marks a tile as burning. Revealed pickups are burned away; the
// exit survives underneath.
func (m *Match) setFlame(tx, ty int) {
	key := [2]int{tx, ty}
	under := Empty
	switch m.tiles.At(tx, ty) {
	case Exit:
		under = Exit
	case FlameTile:
		if f, ok := m.flames[key]; ok {
			under = f.under
		}
	}
	m.tiles.Set(tx, ty, FlameTile)
	m.flames[key] = flame{ttl: m.cfg.Bombs.FlameSeconds, under: under}
}

// tickFlames expires burning tiles, restoring what survives beneath them.
func (m *Match) tickFlames(dt float64) {
	for key, f := range m.flames {
		f.ttl -= dt
		if f.ttl <= 0 {
			m.tiles.Set(key[0], key[1], f.under)
			delete(m.flames, key)
			continue
		}
		m.flames[key] = f
	}
}
