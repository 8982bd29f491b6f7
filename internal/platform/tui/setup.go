package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"bomberboy/internal/config"
	"bomberboy/internal/core"
)

// setupResult is what the setup screen hands back to the director.
type setupResult int

const (
	setupPending setupResult = iota
	setupConfirmed
	setupCancelled
	setupQuit
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// SetupModel is the pre-match screen: player count and difficulty.
type SetupModel struct {
	cursor     int // 0 = players row, 1 = difficulty row
	players    int
	difficulty int
	width      int
	height     int
}

// NewSetupModel creates a setup screen with the default selection.
func NewSetupModel(width, height int) *SetupModel {
	return &SetupModel{
		players:    1,
		difficulty: 1, // normal
		width:      width,
		height:     height,
	}
}

// Resize updates the layout dimensions.
func (m *SetupModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Players returns the selected player count.
func (m *SetupModel) Players() int { return m.players }

// Difficulty returns the selected difficulty preset.
func (m *SetupModel) Difficulty() config.DifficultyPreset {
	return difficulties[m.difficulty]
}

// HandleKey processes one key and reports whether setup is done.
func (m *SetupModel) HandleKey(msg tea.KeyMsg) setupResult {
	switch MapMenuKey(msg) {
	case MenuActionQuit:
		return setupQuit
	case MenuActionBack:
		return setupCancelled
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		return setupConfirmed
	}
	return setupPending
}

func (m *SetupModel) adjust(delta int) {
	switch m.cursor {
	case 0:
		m.players = core.Clamp(m.players+delta, 1, 2)
	case 1:
		m.difficulty = core.Clamp(m.difficulty+delta, 0, len(difficulties)-1)
	}
}

// View renders the setup screen into a fresh screen buffer.
func (m *SetupModel) View() string {
	s := core.NewScreen(m.width, m.height)

	panelW := core.Min(44, m.width)
	panel := core.NewRect((m.width-panelW)/2, 2, panelW, 10)
	s.DrawBox(panel)
	s.DrawTextCentered(panel.Y+1, "MATCH SETUP")
	s.DrawHLine(panel.X+1, panel.Y+2, panel.W-2, '─')

	rows := []string{
		fmt.Sprintf("Players:    < %d >", m.players),
		fmt.Sprintf("Difficulty: < %s >", difficulties[m.difficulty]),
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		s.DrawText(panel.X+4, panel.Y+4+i, cursor+row)
	}

	hint := "Move: arrows/WASD   Bomb: space"
	if m.players == 2 {
		hint = "P1: arrows + space   P2: WASD + x"
	}
	s.DrawTextCentered(panel.Y+7, hint)
	s.DrawTextCentered(panel.Bottom()+1, "Left/Right: Change  |  Enter: Start  |  Esc: Back")
	return s.String()
}
