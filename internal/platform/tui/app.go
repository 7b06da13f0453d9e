package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/backend"
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/livesync"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// maxNameLength bounds player names both on entry and in storage.
const maxNameLength = 24

type appScreen int

const (
	screenNamePrompt appScreen = iota
	screenMenu
	screenGame
	screenLeaderboard
	screenLive
	screenHistory
)

// AppModel manages the full flow: name prompt -> menu -> game and the
// board screens, looping back to the menu. It is the top-level model for
// both local play and SSH sessions.
type AppModel struct {
	svc       *backend.Service
	pusher    *livesync.Pusher
	runnerCfg config.RunnerConfig
	rtCfg     core.RuntimeConfig

	screen appScreen
	player *storage.Player

	nameInput   textinput.Model
	nameErr     string
	menu        MenuModel
	game        *GameModel
	leaderboard LeaderboardModel
	live        LiveModel
	history     HistoryModel

	quitting bool
}

// NewAppModel creates the top-level model. If playerName is non-empty
// the name prompt is skipped; a resolution failure falls back to the
// prompt with the error shown.
func NewAppModel(svc *backend.Service, pusher *livesync.Pusher, playerName string, runnerCfg config.RunnerConfig, rtCfg core.RuntimeConfig) AppModel {
	m := AppModel{
		svc:       svc,
		pusher:    pusher,
		runnerCfg: runnerCfg,
		rtCfg:     rtCfg,
		screen:    screenNamePrompt,
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength + 2
	ti.Focus()
	m.nameInput = ti

	if playerName != "" {
		if err := m.resolvePlayer(playerName); err != nil {
			m.nameErr = err.Error()
		}
	}

	return m
}

// resolvePlayer binds the session to a persistent player and opens the menu.
func (m *AppModel) resolvePlayer(name string) error {
	p, err := m.svc.GetOrCreatePlayer(name)
	if err != nil {
		return err
	}
	m.player = p
	m.menu = NewMenuModel(p.Name, p.HighScore, m.rtCfg)
	m.screen = screenMenu
	return nil
}

// refreshMenu rebuilds the menu so the shown high score is current.
func (m *AppModel) refreshMenu() {
	if p, err := m.svc.GetOrCreatePlayer(m.player.Name); err == nil {
		m.player = p
	}
	m.menu = NewMenuModel(m.player.Name, m.player.HighScore, m.rtCfg)
	m.screen = screenMenu
}

// Init initializes the top-level model.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenNamePrompt {
		return textinput.Blink
	}
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.rtCfg.ScreenW = wsm.Width
		m.rtCfg.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenNamePrompt:
		return m.updateNamePrompt(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenLeaderboard:
		return m.updateLeaderboard(msg)
	case screenLive:
		return m.updateLive(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m, nil
}

func (m AppModel) updateNamePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				m.nameErr = "name must not be empty"
				return m, nil
			}
			if err := m.resolvePlayer(name); err != nil {
				m.nameErr = err.Error()
				return m, nil
			}
			return m, m.menu.Init()
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case MenuChoicePlay:
		m.rtCfg.Seed = time.Now().UnixNano()
		m.game = NewGameModel(m.svc, m.pusher, m.player, m.runnerCfg, m.rtCfg)
		m.screen = screenGame
		return m, m.game.Init()

	case MenuChoiceLeaderboard:
		m.leaderboard = NewLeaderboardModel(m.svc, m.rtCfg.ScreenW, m.rtCfg.ScreenH)
		m.screen = screenLeaderboard
		return m, m.leaderboard.Init()

	case MenuChoiceLive:
		m.live = NewLiveModel(m.svc, m.rtCfg.ScreenW, m.rtCfg.ScreenH)
		m.screen = screenLive
		return m, m.live.Init()

	case MenuChoiceHistory:
		m.history = NewHistoryModel(m.svc, m.player, m.rtCfg.ScreenW, m.rtCfg.ScreenH)
		m.screen = screenHistory
		return m, m.history.Init()
	}

	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	if gm, ok := newGame.(*GameModel); ok {
		m.game = gm
	}

	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.GoingBack() {
		m.game = nil
		m.refreshMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m AppModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.leaderboard.Update(msg)
	if lm, ok := newBoard.(LeaderboardModel); ok {
		m.leaderboard = lm
	}

	if m.leaderboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.leaderboard.GoingBack() {
		m.refreshMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m AppModel) updateLive(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLive, cmd := m.live.Update(msg)
	if lm, ok := newLive.(LiveModel); ok {
		m.live = lm
	}

	if m.live.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.live.GoingBack() {
		m.refreshMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m AppModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHist, cmd := m.history.Update(msg)
	if hm, ok := newHist.(HistoryModel); ok {
		m.history = hm
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.GoingBack() {
		m.refreshMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenNamePrompt:
		var b strings.Builder
		b.WriteString("\n\n")
		b.WriteString(centerText("L A N E   R U N N E R", m.rtCfg.ScreenW))
		b.WriteString("\n\n")
		b.WriteString(centerText("Who's running?", m.rtCfg.ScreenW))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.nameInput.View(), m.rtCfg.ScreenW))
		b.WriteString("\n")
		if m.nameErr != "" {
			b.WriteString("\n")
			b.WriteString(centerText(m.nameErr, m.rtCfg.ScreenW))
		}
		b.WriteString("\n\n")
		b.WriteString(centerText("Enter: continue  |  Esc: quit", m.rtCfg.ScreenW))
		return b.String()
	case screenMenu:
		return m.menu.View()
	case screenGame:
		return m.game.View()
	case screenLeaderboard:
		return m.leaderboard.View()
	case screenLive:
		return m.live.View()
	case screenHistory:
		return m.history.View()
	}
	return ""
}

// Run starts a local Bubble Tea program with the full app flow.
func Run(svc *backend.Service, pusher *livesync.Pusher, playerName string, runnerCfg config.RunnerConfig, rtCfg core.RuntimeConfig) error {
	model := NewAppModel(svc, pusher, playerName, runnerCfg, rtCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Swipe gestures
	)

	_, err := p.Run()
	return err
}
