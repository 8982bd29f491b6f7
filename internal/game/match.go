package game

import (
	"fmt"
	"math/rand"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
	"bomberboy/internal/sprite"
)

// Score values awarded to a bomb's owner.
const (
	scoreBlock   = 10
	scorePickup  = 50
	scoreVictory = 200
)

// Duration of the win celebration before the match reports finished.
const winCelebration = 1.5

// player sheets and spawn corners, in join order.
var playerSheets = map[core.PlayerID]string{
	core.Player1: "bomberboy_white",
	core.Player2: "bomberboy_black",
}

// Match drives one round: the tile grid, one or two characters, live bombs
// and flames. All map mutation happens inside Step, at the frame boundary,
// after characters have moved.
type Match struct {
	cfg   config.GameConfig
	tiles *TileMap

	order []core.PlayerID
	chars map[core.PlayerID]*Character

	bombs  []*Bomb
	flames map[[2]int]flame

	scores  map[core.PlayerID]int
	pickups map[core.PlayerID]int
	elapsed float64

	winner   core.PlayerID // 0 until decided
	finishIn float64       // celebration countdown once a winner is set
	over     bool
}

// NewMatch generates a fresh grid from cfg and spawns player characters in
// opposite corners. players must be 1 or 2.
func NewMatch(cfg config.GameConfig, players int, rng *rand.Rand) (*Match, error) {
	if players < 1 || players > 2 {
		return nil, fmt.Errorf("match: player count %d out of range", players)
	}

	tiles := Generate(cfg.Grid, cfg.TileSize, rng)
	spawns := spawnTiles(cfg.Grid.Width, cfg.Grid.Height)

	m := &Match{
		cfg:     cfg,
		tiles:   tiles,
		chars:   make(map[core.PlayerID]*Character, players),
		flames:  make(map[[2]int]flame),
		scores:  make(map[core.PlayerID]int, players),
		pickups: make(map[core.PlayerID]int, players),
	}
	for i := 0; i < players; i++ {
		id := core.PlayerID(i + 1)
		sheet, err := sprite.Lookup(playerSheets[id])
		if err != nil {
			return nil, err
		}
		m.order = append(m.order, id)
		m.chars[id] = NewCharacter(id, spawns[i][0], spawns[i][1], tiles, cfg.Character, sheet)
	}
	return m, nil
}

// Tiles returns the live grid. Callers must treat it as read-only.
func (m *Match) Tiles() *TileMap { return m.tiles }

// Players returns the ids of characters still in the match, in join order.
func (m *Match) Players() []core.PlayerID { return m.order }

// Character returns the character for id, or nil once it has been removed.
func (m *Match) Character(id core.PlayerID) *Character { return m.chars[id] }

// Score returns the running score for id.
func (m *Match) Score(id core.PlayerID) int { return m.scores[id] }

// Pickups returns how many powerups id has collected.
func (m *Match) Pickups(id core.PlayerID) int { return m.pickups[id] }

// Winner returns the winning player, or 0 for no winner (yet, or a draw).
func (m *Match) Winner() core.PlayerID { return m.winner }

// Elapsed returns match time in seconds.
func (m *Match) Elapsed() float64 { return m.elapsed }

// Over reports whether the match has concluded.
func (m *Match) Over() bool { return m.over }

func (m *Match) addScore(id core.PlayerID, pts int) {
	m.scores[id] += pts
}

// Step advances the match by one frame: it applies input edges, moves
// characters, then mutates the map (fuses, flames, reveals) and checks the
// tiles characters stand on. It returns the mode the application should be
// in after this frame.
func (m *Match) Step(events []core.KeyEvent, dt float64) core.Mode {
	dt = core.ClampF(dt, 0, m.cfg.Match.MaxFrameDelta)

	for _, ev := range events {
		switch {
		case ev.Key == core.KeyQuit && ev.Pressed:
			m.over = true
			return core.ModeFinish
		case ev.Key == core.KeyBack && ev.Pressed:
			m.over = true
			return core.ModeMenu
		case ev.Key == core.KeyPause && ev.Pressed:
			return core.ModePause
		case ev.Key == core.KeyBomb && ev.Pressed:
			if ch := m.chars[ev.Player]; ch != nil {
				m.placeBomb(ch)
			}
		case ev.Key.Directional():
			ch := m.chars[ev.Player]
			if ch == nil {
				continue
			}
			if ev.Pressed {
				ch.KeyDown(ev.Key)
			} else {
				ch.KeyUp(ev.Key)
			}
		}
	}

	if m.over {
		return core.ModeFinish
	}

	m.elapsed += dt

	// Move characters on the map as it stood at the start of the frame.
	for i := 0; i < len(m.order); i++ {
		id := m.order[i]
		ch := m.chars[id]
		if !ch.Update(m.tiles, dt) {
			m.removePlayer(i)
			i--
		}
	}

	// Frame boundary: the map mutates only here.
	m.tickBombs(dt)
	m.tickFlames(dt)

	for _, id := range m.order {
		m.checkTile(m.chars[id])
	}

	return m.settle(dt)
}

// placeBomb drops a bomb under ch if it has capacity left and the tile can
// take one.
func (m *Match) placeBomb(ch *Character) {
	if ch.Terminal() {
		return
	}
	tx, ty := ch.TileOn(m.tiles)
	if k := m.tiles.At(tx, ty); k != Empty {
		return
	}
	if !ch.PlaceBomb() {
		return
	}
	m.tiles.Set(tx, ty, BombTile)
	m.bombs = append(m.bombs, &Bomb{
		TX:    tx,
		TY:    ty,
		Fuse:  m.cfg.Bombs.FuseSeconds,
		Power: ch.FirePower(),
		Owner: ch,
	})
}

// checkTile applies the tile ch stands on: flames kill, revealed pickups
// apply and vanish, the revealed exit wins.
func (m *Match) checkTile(ch *Character) {
	if ch.Terminal() {
		return
	}
	tx, ty := ch.TileOn(m.tiles)
	switch m.tiles.At(tx, ty) {
	case FlameTile:
		ch.SpecialEvent(Die)
	case PowerupFire:
		ch.SpecialEvent(IncreaseFire)
		m.consumePickup(tx, ty, ch.ID())
	case PowerupSpeed:
		ch.SpecialEvent(IncreaseSpeed)
		m.consumePickup(tx, ty, ch.ID())
	case PowerupBomb:
		ch.SpecialEvent(IncreaseBomb)
		m.consumePickup(tx, ty, ch.ID())
	case Exit:
		m.declareWinner(ch)
	}
}

func (m *Match) consumePickup(tx, ty int, id core.PlayerID) {
	m.tiles.Set(tx, ty, Empty)
	m.pickups[id]++
	m.addScore(id, scorePickup)
}

func (m *Match) declareWinner(ch *Character) {
	if m.winner != 0 {
		return
	}
	ch.SpecialEvent(Win)
	m.winner = ch.ID()
	m.finishIn = winCelebration
	m.addScore(ch.ID(), scoreVictory)
}

// removePlayer drops a dead character (death animation finished) from the
// match. In a duel the survivor wins on the spot.
func (m *Match) removePlayer(i int) {
	id := m.order[i]
	delete(m.chars, id)
	m.order = append(m.order[:i], m.order[i+1:]...)

	if len(m.order) == 1 {
		if survivor := m.chars[m.order[0]]; !survivor.Terminal() {
			m.declareWinner(survivor)
		}
	}
}

// settle decides whether the frame ends the match.
func (m *Match) settle(dt float64) core.Mode {
	if len(m.order) == 0 {
		m.over = true
		return core.ModeFinish
	}
	if m.winner != 0 {
		m.finishIn -= dt
		if m.finishIn <= 0 {
			m.over = true
			return core.ModeFinish
		}
	}
	return core.ModePlaying
}

// CharacterFrame is what the renderer needs to place one character on
// screen for the current frame.
type CharacterFrame struct {
	Player core.PlayerID
	Sheet  *sprite.Sheet
	Frame  sprite.FrameID
	Pos    core.Vec2 // character center, world pixels
	Anchor core.Vec2 // offset from Pos to the frame's top-left corner
}

// Frames advances each surviving character's animation by dt and returns
// its drawable frame. Call once per Step, with the same dt.
func (m *Match) Frames(dt float64) []CharacterFrame {
	dt = core.ClampF(dt, 0, m.cfg.Match.MaxFrameDelta)
	out := make([]CharacterFrame, 0, len(m.order))
	for _, id := range m.order {
		ch := m.chars[id]
		frame, anchor := ch.Draw(dt)
		out = append(out, CharacterFrame{
			Player: id,
			Sheet:  ch.Sheet(),
			Frame:  frame,
			Pos:    ch.Pos(),
			Anchor: anchor,
		})
	}
	return out
}
