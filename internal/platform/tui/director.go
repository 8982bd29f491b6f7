package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
	"bomberboy/internal/game"
	"bomberboy/internal/storage"
)

// Director is the top-level Bubble Tea model. It owns one screen per mode
// (menu, setup, match, pause, finish) and constructs or destroys screens
// when the mode changes. Pausing retains the match model so play resumes
// where it stopped.
type Director struct {
	store      *storage.Store
	gameCfg    config.GameConfig
	rt         core.RuntimeConfig
	playerName string

	mode   core.Mode
	menu   *MenuModel
	setup  *SetupModel
	scores *ScoreboardModel
	match  *MatchModel

	initCmd  tea.Cmd
	quitting bool
	err      error
}

// NewDirector creates the screen director starting at the main menu.
func NewDirector(gameCfg config.GameConfig, rt core.RuntimeConfig, store *storage.Store, playerName string) *Director {
	if playerName == "" {
		playerName = "player"
	}
	return &Director{
		store:      store,
		gameCfg:    gameCfg,
		rt:         rt,
		playerName: playerName,
		mode:       core.ModeMenu,
		menu:       NewMenuModel(rt.ScreenW, rt.ScreenH),
	}
}

// Err returns the error that aborted the session, if any.
func (d *Director) Err() error { return d.err }

// Init initializes the director.
func (d *Director) Init() tea.Cmd {
	return d.initCmd
}

// Update routes messages to the active screen.
func (d *Director) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		d.rt.ScreenW = wsm.Width
		d.rt.ScreenH = wsm.Height
		d.menu.Resize(wsm.Width, wsm.Height)
		if d.setup != nil {
			d.setup.Resize(wsm.Width, wsm.Height)
		}
		if d.scores != nil {
			d.scores.Resize(wsm.Width, wsm.Height)
		}
	}

	switch d.mode {
	case core.ModeMenu:
		return d.updateMenu(msg)
	case core.ModeSetup:
		return d.updateSetup(msg)
	case core.ModePlaying:
		return d.updateMatch(msg)
	case core.ModePause:
		return d.updatePause(msg)
	case core.ModeFinish:
		return d.updateFinish(msg)
	}
	return d, nil
}

func (d *Director) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Scoreboard is an overlay on the menu mode.
	if d.scores != nil {
		cmd := d.scores.Update(msg)
		if d.scores.Done() {
			d.scores = nil
		}
		return d, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch d.menu.HandleKey(key) {
	case menuChoiceQuit:
		d.quitting = true
		return d, tea.Quit
	case menuChoicePlay:
		d.setup = NewSetupModel(d.rt.ScreenW, d.rt.ScreenH)
		d.mode = core.ModeSetup
	case menuChoiceScores:
		d.scores = NewScoreboardModel(d.store, d.rt.ScreenW, d.rt.ScreenH)
	}
	return d, nil
}

func (d *Director) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch d.setup.HandleKey(key) {
	case setupQuit:
		d.quitting = true
		return d, tea.Quit
	case setupCancelled:
		d.setup = nil
		d.mode = core.ModeMenu
	case setupConfirmed:
		return d.startMatch()
	}
	return d, nil
}

// startMatch builds a fresh match from the setup selection.
func (d *Director) startMatch() (tea.Model, tea.Cmd) {
	cfg := d.gameCfg
	config.ApplyPreset(&cfg, d.setup.Difficulty())

	match, err := NewMatchModel(cfg, d.rt, d.setup.Players(), d.setup.Difficulty(), d.store, d.playerName)
	if err != nil {
		d.err = err
		d.quitting = true
		return d, tea.Quit
	}

	d.match = match
	d.mode = core.ModePlaying
	return d, d.match.Init()
}

func (d *Director) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := d.match.Update(msg)

	switch d.match.Mode() {
	case core.ModePause:
		d.mode = core.ModePause
		return d, nil
	case core.ModeMenu:
		d.match.SaveResult(storage.EndReasonQuit)
		d.leaveMatch()
		return d, nil
	case core.ModeFinish:
		d.match.SaveResult(finishReason(d.match.Match(), d.setup.Players()))
		d.mode = core.ModeFinish
		return d, nil
	}
	return d, cmd
}

func (d *Director) updatePause(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "p", " ", "enter":
		d.mode = core.ModePlaying
		return d, d.match.Resume()
	case "esc", "b":
		d.match.SaveResult(storage.EndReasonQuit)
		d.leaveMatch()
	case "ctrl+c", "q":
		d.quitting = true
		return d, tea.Quit
	}
	return d, nil
}

func (d *Director) updateFinish(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "enter", " ", "esc", "b":
		d.leaveMatch()
	case "ctrl+c", "q":
		d.quitting = true
		return d, tea.Quit
	}
	return d, nil
}

// leaveMatch tears the match down and returns to the menu.
func (d *Director) leaveMatch() {
	d.match = nil
	d.setup = nil
	d.mode = core.ModeMenu
}

// View renders the active screen.
func (d *Director) View() string {
	if d.quitting {
		return ""
	}

	switch d.mode {
	case core.ModeMenu:
		if d.scores != nil {
			return d.scores.View()
		}
		return d.menu.View()
	case core.ModeSetup:
		return d.setup.View()
	case core.ModePlaying:
		return d.match.View()
	case core.ModePause:
		return d.match.ViewPaused()
	case core.ModeFinish:
		return d.finishView()
	}
	return ""
}

// finishView renders the post-match summary with the player's all-time
// record from the score store, when one is attached.
func (d *Director) finishView() string {
	m := d.match.Match()
	s := core.NewScreen(d.rt.ScreenW, d.rt.ScreenH)

	panelW := core.Min(44, d.rt.ScreenW)
	panel := core.NewRect((d.rt.ScreenW-panelW)/2, 2, panelW, 12)
	s.DrawBox(panel)

	banner := "GAME OVER"
	switch m.Winner() {
	case core.Player1:
		banner = "PLAYER 1 WINS"
	case core.Player2:
		banner = "PLAYER 2 WINS"
	}
	s.DrawTextCentered(panel.Y+1, banner)
	s.DrawHLine(panel.X+1, panel.Y+2, panel.W-2, '─')

	y := panel.Y + 4
	s.DrawTextCentered(y, fmt.Sprintf("P1 score: %d", m.Score(core.Player1)))
	y++
	if d.setup != nil && d.setup.Players() > 1 {
		s.DrawTextCentered(y, fmt.Sprintf("P2 score: %d", m.Score(core.Player2)))
		y++
	}
	s.DrawTextCentered(y, fmt.Sprintf("time: %ds", int(m.Elapsed())))
	y += 2

	if d.store != nil {
		best, bestErr := d.store.HighScore(d.playerName)
		wins, winsErr := d.store.WinCount(d.playerName)
		if bestErr == nil && winsErr == nil {
			s.DrawTextCentered(y, fmt.Sprintf("%s all-time: best %d, wins %d", d.playerName, best, wins))
		}
	}

	s.DrawTextCentered(panel.Bottom()+1, "Enter: Menu  |  Q: Quit")
	return s.String()
}

// finishReason classifies how a finished match ended for persistence.
func finishReason(m *game.Match, players int) string {
	switch {
	case m.Winner() == 0 && len(m.Players()) > 0:
		return storage.EndReasonQuit
	case m.Winner() == 0:
		return storage.EndReasonDied
	case players == 2:
		return storage.EndReasonDuel
	default:
		return storage.EndReasonExit
	}
}

// Run starts the full-screen UI at the main menu and blocks until the
// player quits.
func Run(gameCfg config.GameConfig, rt core.RuntimeConfig, store *storage.Store, playerName string) error {
	return runProgram(NewDirector(gameCfg, rt, store, playerName))
}

// RunMatch starts the full-screen UI directly inside a match, skipping the
// menu and setup screens. Leaving the match still lands on the menu.
func RunMatch(gameCfg config.GameConfig, rt core.RuntimeConfig, players int, difficulty config.DifficultyPreset, store *storage.Store, playerName string) error {
	d := NewDirector(gameCfg, rt, store, playerName)

	d.setup = NewSetupModel(rt.ScreenW, rt.ScreenH)
	d.setup.players = players
	for i, preset := range difficulties {
		if preset == difficulty {
			d.setup.difficulty = i
		}
	}

	cfg := gameCfg
	config.ApplyPreset(&cfg, difficulty)
	match, err := NewMatchModel(cfg, rt, players, difficulty, store, d.playerName)
	if err != nil {
		return err
	}
	d.match = match
	d.mode = core.ModePlaying
	d.initCmd = match.Init()

	return runProgram(d)
}

func runProgram(d *Director) error {
	p := tea.NewProgram(d, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fd, ok := final.(*Director); ok && fd.Err() != nil {
		return fd.Err()
	}
	return nil
}
