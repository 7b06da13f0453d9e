package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/backend"
)

// liveRefreshInterval is how often the spectation screen re-reads the
// active set. The live store only changes on 500-point boundaries, so
// polling every second stays well ahead of it.
const liveRefreshInterval = time.Second

// liveRefreshMsg triggers a reload of the active games.
type liveRefreshMsg time.Time

func liveRefreshCmd() tea.Cmd {
	return tea.Tick(liveRefreshInterval, func(t time.Time) tea.Msg {
		return liveRefreshMsg(t)
	})
}

// LiveModel shows all currently running games, refreshed periodically.
type LiveModel struct {
	svc       *backend.Service
	table     table.Model
	help      help.Model
	keys      BoardKeyMap
	width     int
	quitting  bool
	goingBack bool
}

// NewLiveModel creates the live spectation screen.
func NewLiveModel(svc *backend.Service, width, height int) LiveModel {
	columns := []table.Column{
		{Title: "Player", Width: 20},
		{Title: "Score", Width: 10},
		{Title: "Running", Width: 10},
	}

	m := LiveModel{
		svc:   svc,
		table: newBoardTable(columns, boardHeight(height)),
		help:  help.New(),
		keys:  DefaultBoardKeyMap(),
		width: width,
	}
	m.load()
	return m
}

func (m *LiveModel) load() {
	games := m.svc.LiveGames()

	// Highest score first, like the board spectators care about.
	sort.Slice(games, func(i, j int) bool {
		return games[i].Score > games[j].Score
	})

	rows := make([]table.Row, len(games))
	for i, g := range games {
		rows[i] = table.Row{
			g.PlayerName,
			fmt.Sprintf("%d", g.Score),
			time.Since(g.StartedAt).Truncate(time.Second).String(),
		}
	}
	m.table.SetRows(rows)
}

// Init starts the refresh loop.
func (m LiveModel) Init() tea.Cmd {
	return liveRefreshCmd()
}

// Update handles messages for the live screen.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case liveRefreshMsg:
		m.load()
		return m, liveRefreshCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(boardHeight(msg.Height))
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the live screen.
func (m LiveModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("  Live Games")
	body := m.table.View()
	if len(m.table.Rows()) == 0 {
		body = "\n  Nobody is running right now.\n"
	}
	return "\n" + title + "\n\n" + body + "\n\n  " + m.help.View(m.keys) + "\n"
}

// IsQuitting returns true if user requested to quit the program.
func (m LiveModel) IsQuitting() bool { return m.quitting }

// GoingBack returns true if the user wants the menu back.
func (m LiveModel) GoingBack() bool { return m.goingBack }
