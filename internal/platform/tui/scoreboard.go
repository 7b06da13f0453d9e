package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/backend"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// historyLimit caps how many past games the history screen loads.
const historyLimit = 50

// BoardKeyMap defines the key bindings for the table screens.
type BoardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
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

// newBoardTable creates a table with the shared board styling.
func newBoardTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
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

	return t
}

// boardHeight leaves room for the title, help line and margins.
func boardHeight(screenH int) int {
	h := screenH - 8
	if h < 3 {
		h = 3
	}
	return h
}

// LeaderboardModel shows the top players by high score.
type LeaderboardModel struct {
	svc       *backend.Service
	table     table.Model
	help      help.Model
	keys      BoardKeyMap
	width     int
	quitting  bool
	goingBack bool
	loadErr   error
}

// NewLeaderboardModel creates a leaderboard screen and loads the data.
func NewLeaderboardModel(svc *backend.Service, width, height int) LeaderboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 20},
		{Title: "High Score", Width: 12},
		{Title: "Games", Width: 8},
	}

	m := LeaderboardModel{
		svc:   svc,
		table: newBoardTable(columns, boardHeight(height)),
		help:  help.New(),
		keys:  DefaultBoardKeyMap(),
		width: width,
	}
	m.load()
	return m
}

func (m *LeaderboardModel) load() {
	players, err := m.svc.Leaderboard()
	if err != nil {
		m.loadErr = err
		return
	}

	rows := make([]table.Row, len(players))
	for i, p := range players {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			p.Name,
			fmt.Sprintf("%d", p.HighScore),
			fmt.Sprintf("%d", p.TotalGames),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the leaderboard model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(boardHeight(msg.Height))
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	if m.loadErr != nil {
		return "\n  Leaderboard unavailable: " + m.loadErr.Error() + "\n\n  esc/b to go back\n"
	}

	title := lipgloss.NewStyle().Bold(true).Render("  Top Runners")
	return "\n" + title + "\n\n" + m.table.View() + "\n\n  " + m.help.View(m.keys) + "\n"
}

// IsQuitting returns true if user requested to quit the program.
func (m LeaderboardModel) IsQuitting() bool { return m.quitting }

// GoingBack returns true if the user wants the menu back.
func (m LeaderboardModel) GoingBack() bool { return m.goingBack }

// HistoryModel shows a single player's recent games.
type HistoryModel struct {
	svc       *backend.Service
	player    *storage.Player
	table     table.Model
	help      help.Model
	keys      BoardKeyMap
	width     int
	quitting  bool
	goingBack bool
	loadErr   error
}

// NewHistoryModel creates a history screen for the player and loads it.
func NewHistoryModel(svc *backend.Service, player *storage.Player, width, height int) HistoryModel {
	columns := []table.Column{
		{Title: "Score", Width: 10},
		{Title: "Lvl", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Avoided", Width: 9},
		{Title: "Played", Width: 18},
	}

	m := HistoryModel{
		svc:    svc,
		player: player,
		table:  newBoardTable(columns, boardHeight(height)),
		help:   help.New(),
		keys:   DefaultBoardKeyMap(),
		width:  width,
	}
	m.load()
	return m
}

func (m *HistoryModel) load() {
	entries, err := m.svc.History(m.player.ID, historyLimit)
	if err != nil {
		m.loadErr = err
		return
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Difficulty),
			e.Duration.String(),
			fmt.Sprintf("%d", e.Avoided),
			e.PlayedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(boardHeight(msg.Height))
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}
	if m.loadErr != nil {
		return "\n  History unavailable: " + m.loadErr.Error() + "\n\n  esc/b to go back\n"
	}

	title := lipgloss.NewStyle().Bold(true).Render("  " + m.player.Name + " - Recent Runs")
	return "\n" + title + "\n\n" + m.table.View() + "\n\n  " + m.help.View(m.keys) + "\n"
}

// IsQuitting returns true if user requested to quit the program.
func (m HistoryModel) IsQuitting() bool { return m.quitting }

// GoingBack returns true if the user wants the menu back.
func (m HistoryModel) GoingBack() bool { return m.goingBack }
