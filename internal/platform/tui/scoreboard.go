package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bomberboy/internal/storage"
)

const maxScoreRows = 100

// scoreboardTab selects which table is shown.
type scoreboardTab int

const (
	tabScores scoreboardTab = iota
	tabMatches
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "scores/matches"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows top scores and recent match results.
type ScoreboardModel struct {
	store  *storage.Store
	tab    scoreboardTab
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	done   bool
}

// NewScoreboardModel creates a scoreboard, loading the top scores tab.
func NewScoreboardModel(store *storage.Store, width, height int) *ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := &ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.rebuild()
	return m
}

// Done reports whether the player left the scoreboard.
func (m *ScoreboardModel) Done() bool { return m.done }

// Resize updates the layout dimensions.
func (m *ScoreboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.rebuild()
}

// rebuild recreates the table for the active tab.
func (m *ScoreboardModel) rebuild() {
	var columns []table.Column
	var rows []table.Row

	switch m.tab {
	case tabScores:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: 16},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 16},
		}
		rows = m.scoreRows()
	case tabMatches:
		columns = []table.Column{
			{Title: "When", Width: 16},
			{Title: "Players", Width: 8},
			{Title: "Winner", Width: 14},
			{Title: "End", Width: 6},
			{Title: "Time", Width: 6},
		}
		rows = m.matchRows()
	}

	height := m.height - 6
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m.table = t
}

func (m *ScoreboardModel) scoreRows() []table.Row {
	if m.store == nil {
		return nil
	}
	scores, err := m.store.TopScores(maxScoreRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m *ScoreboardModel) matchRows() []table.Row {
	if m.store == nil {
		return nil
	}
	matches, err := m.store.RecentMatches(maxScoreRows)
	if err != nil {
		return nil
	}
	rows := make([]table.Row, len(matches))
	for i, r := range matches {
		winner := r.Winner
		if winner == "" {
			winner = "-"
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Players),
			winner,
			r.EndReason,
			fmt.Sprintf("%ds", r.Duration),
		}
	}
	return rows
}

// Update handles scoreboard input.
func (m *ScoreboardModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Quit):
		m.done = true
		return nil
	case key.Matches(keyMsg, m.keys.NextTab):
		if m.tab == tabScores {
			m.tab = tabMatches
		} else {
			m.tab = tabScores
		}
		m.rebuild()
		return nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(keyMsg)
	return cmd
}

// View renders the scoreboard.
func (m *ScoreboardModel) View() string {
	title := "TOP SCORES"
	if m.tab == tabMatches {
		title = "RECENT MATCHES"
	}

	return "\n" + centerText(title, m.width) + "\n\n" +
		m.table.View() + "\n" +
		m.help.View(m.keys)
}
