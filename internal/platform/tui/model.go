package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
	"bomberboy/internal/game"
	"bomberboy/internal/storage"
)

// MatchModel is the Bubble Tea model for one running match. It owns the
// simulation clock: each tick measures the real frame delta, feeds buffered
// input edges plus expired holds into the match, and renders the result.
type MatchModel struct {
	match  *game.Match
	screen *core.Screen
	keys   *KeyTracker
	cfg    config.GameConfig
	rt     core.RuntimeConfig

	store      *storage.Store
	playerName string
	difficulty config.DifficultyPreset

	pending  []core.KeyEvent
	lastTick time.Time
	mode     core.Mode
	saved    bool
	view     string
}

// NewMatchModel creates a match model for the given player count.
func NewMatchModel(cfg config.GameConfig, rt core.RuntimeConfig, players int, difficulty config.DifficultyPreset, store *storage.Store, playerName string) (*MatchModel, error) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	match, err := game.NewMatch(cfg, players, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	return &MatchModel{
		match:      match,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:       NewKeyTracker(players),
		cfg:        cfg,
		rt:         rt,
		store:      store,
		playerName: playerName,
		difficulty: difficulty,
		mode:       core.ModePlaying,
	}, nil
}

// Mode returns the mode the match asked for on its last frame.
func (m *MatchModel) Mode() core.Mode { return m.mode }

// Match exposes the simulation for the finish screen.
func (m *MatchModel) Match() *game.Match { return m.match }

// Init starts the simulation clock.
func (m *MatchModel) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m *MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := m.keys.KeyMsg(msg, time.Now()); ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick runs one simulation frame.
func (m *MatchModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastTick).Seconds()
	m.lastTick = now

	events := append(m.pending, m.keys.Expired(now)...)
	m.pending = m.pending[:0]

	m.mode = m.match.Step(events, dt)
	frames := m.match.Frames(dt)

	RenderMatch(m.screen, m.match, frames)
	m.view = RenderScreen(m.screen)

	if m.mode != core.ModePlaying {
		// The director takes over; the match screen stops ticking. Held
		// keys are released and the edges buffered so the first frame
		// after a resume starts quiet.
		m.pending = append(m.pending, m.keys.ReleaseAll()...)
		return m, nil
	}
	return m, tickCmd(m.rt.TickRate)
}

// Resume restarts the simulation clock after a pause.
func (m *MatchModel) Resume() tea.Cmd {
	m.mode = core.ModePlaying
	m.lastTick = time.Now()
	return tickCmd(m.rt.TickRate)
}

// View renders the last simulated frame.
func (m *MatchModel) View() string {
	return m.view
}

// ViewPaused punches a pause dialog over the last simulated frame. The next
// tick after a resume clears the buffer and redraws the match underneath.
func (m *MatchModel) ViewPaused() string {
	w := core.Min(38, m.rt.ScreenW)
	dialog := core.NewRect((m.rt.ScreenW-w)/2, core.Max(0, m.rt.ScreenH/2-2), w, 5)
	m.screen.DrawRect(dialog, ' ')
	m.screen.DrawBox(dialog)
	m.screen.DrawTextCentered(dialog.Y+2, "PAUSED   p: resume   esc: menu")
	return RenderScreen(m.screen)
}

// SaveResult persists the match outcome once. Best-effort: a missing store
// or write error never interrupts the UI flow.
func (m *MatchModel) SaveResult(endReason string) {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	winner := ""
	switch m.match.Winner() {
	case core.Player1:
		winner = m.playerName
	case core.Player2:
		winner = m.playerName + "-2"
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveMatch(storage.MatchResult{
		Players:    m.keys.players,
		Difficulty: string(m.difficulty),
		Winner:     winner,
		Score1:     m.match.Score(core.Player1),
		Score2:     m.match.Score(core.Player2),
		Pickups1:   m.match.Pickups(core.Player1),
		Pickups2:   m.match.Pickups(core.Player2),
		EndReason:  endReason,
		Duration:   int(m.match.Elapsed()),
	})
	if score := m.match.Score(core.Player1); score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(m.playerName, score)
	}
	if m.keys.players > 1 {
		if score := m.match.Score(core.Player2); score > 0 {
			//nolint:errcheck // Best-effort save
			m.store.SaveScore(m.playerName+"-2", score)
		}
	}
}
