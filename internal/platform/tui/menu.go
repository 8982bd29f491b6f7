package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"bomberboy/internal/core"
)

// menuChoice is what the player picked on the main menu.
type menuChoice int

const (
	menuChoiceNone menuChoice = iota
	menuChoicePlay
	menuChoiceScores
	menuChoiceQuit
)

var menuItems = []struct {
	label  string
	choice menuChoice
}{
	{"Play", menuChoicePlay},
	{"Scores", menuChoiceScores},
	{"Quit", menuChoiceQuit},
}

// MenuModel is the main menu screen. It runs as a sub-model of the
// Director, which reads the choice after each key.
type MenuModel struct {
	cursor int
	width  int
	height int
}

// NewMenuModel creates a menu sized to the terminal.
func NewMenuModel(width, height int) *MenuModel {
	return &MenuModel{width: width, height: height}
}

// Resize updates the menu's layout dimensions.
func (m *MenuModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// HandleKey processes one key and returns the resulting choice, if any.
func (m *MenuModel) HandleKey(msg tea.KeyMsg) menuChoice {
	switch MapMenuKey(msg) {
	case MenuActionQuit:
		return menuChoiceQuit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return menuItems[m.cursor].choice
	}
	return menuChoiceNone
}

// View renders the menu into a fresh screen buffer.
func (m *MenuModel) View() string {
	s := core.NewScreen(m.width, m.height)

	panelW := core.Min(40, m.width)
	panel := core.NewRect((m.width-panelW)/2, 2, panelW, 9)
	s.DrawBox(panel)
	s.DrawTextCentered(panel.Y+1, "B O M B E R B O Y")
	s.DrawHLine(panel.X+1, panel.Y+2, panel.W-2, '─')

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		s.DrawText(panel.X+panelW/2-4, panel.Y+4+i, cursor+item.label)
	}

	s.DrawTextCentered(panel.Bottom()+1, "Up/Down: Navigate  |  Enter: Select  |  Q: Quit")
	return s.String()
}
