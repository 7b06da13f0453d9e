package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/backend"
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/game"
	"github.com/vovakirdan/lane-runner/internal/livesync"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// maxDelta caps the simulated time of one frame, so a stalled terminal
// does not teleport obstacles through the collision band.
const maxDelta = 0.25

// GameModel is the Bubble Tea model for one run of the game.
type GameModel struct {
	svc    *backend.Service
	pusher *livesync.Pusher
	player *storage.Player

	runnerCfg config.RunnerConfig
	rtCfg     core.RuntimeConfig

	session   *game.Session
	sessionID string
	view      *TrackView
	screen    *core.Screen
	keyMapper *KeyMapper
	swipes    SwipeTracker

	inputFrame core.InputFrame
	lastTick   time.Time
	gameState  game.State
	summary    *storage.ResultSummary
	recorded   bool
	quitting   bool
	goingBack  bool
}

// NewGameModel creates a model for a fresh run by the given player.
func NewGameModel(svc *backend.Service, pusher *livesync.Pusher, player *storage.Player, runnerCfg config.RunnerConfig, rtCfg core.RuntimeConfig) *GameModel {
	if rtCfg.Seed == 0 {
		rtCfg.Seed = time.Now().UnixNano()
	}

	m := &GameModel{
		svc:        svc,
		pusher:     pusher,
		player:     player,
		runnerCfg:  runnerCfg,
		rtCfg:      rtCfg,
		view:       NewTrackView(runnerCfg),
		screen:     core.NewScreen(rtCfg.ScreenW, rtCfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.startRun()
	return m
}

// startRun begins a new session, both in the simulation and in the live
// registry.
func (m *GameModel) startRun() {
	m.session = game.NewSession(m.runnerCfg, m.rtCfg.Seed)
	m.sessionID = m.svc.StartSession(m.player.Name)
	m.gameState = m.session.State()
	m.summary = nil
	m.recorded = false
	m.lastTick = time.Time{}
}

// Init starts the tick loop.
func (m *GameModel) Init() tea.Cmd {
	return tickCmd(m.rtCfg.TickRate)
}

// Quitting reports whether the user asked to leave the program.
func (m *GameModel) Quitting() bool { return m.quitting }

// GoingBack reports whether the user asked to return to the menu.
func (m *GameModel) GoingBack() bool { return m.goingBack }

// Update handles messages and updates the model state.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.swipes.Track(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.rtCfg.ScreenW = msg.Width
		m.rtCfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.abandonRun()
		m.quitting = true
		return m, tea.Quit
	case "b", "esc":
		if m.gameState.GameOver {
			m.goingBack = true
			return m, tea.Quit
		}
		return m, nil
	case "r":
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

func (m *GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.rtCfg.Seed = time.Now().UnixNano()
		m.startRun()
		m.inputFrame.Clear()
		return m, tickCmd(m.rtCfg.TickRate)
	}

	delta := 1.0 / float64(m.rtCfg.TickRate)
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick).Seconds()
		if delta > maxDelta {
			delta = maxDelta
		}
	}
	m.lastTick = now

	result := m.session.Tick(m.inputFrame, delta)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.PushScore {
		m.pusher.Push(m.sessionID, result.State.Score)
	}

	if result.Ended != nil {
		m.finishRun(result.Ended)
	}

	return m, tickCmd(m.rtCfg.TickRate)
}

// finishRun retires the live record and persists the final result.
// The live session ends first so spectators never see a finished run.
func (m *GameModel) finishRun(stats *game.RunStats) {
	if m.recorded {
		return
	}
	m.recorded = true

	m.svc.EndSession(m.sessionID)

	sum, err := m.svc.RecordResult(m.player.ID, stats.Score, stats.Duration, stats.Avoided)
	if err != nil {
		// Best effort: the run is still shown locally.
		log.Warn("could not persist run", "player", m.player.Name, "err", err)
		return
	}
	m.summary = &sum
}

// abandonRun drops the live record for a run that ends without a
// game over, such as quitting mid-game. No result is persisted.
func (m *GameModel) abandonRun() {
	if !m.gameState.GameOver {
		m.svc.EndSession(m.sessionID)
	}
}

// View renders the current state to a string for display.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.view.Render(m.screen, m.session)

	if m.summary != nil && m.summary.IsNewRecord {
		m.screen.DrawTextCentered(m.screen.Height()/2-4, "★ NEW HIGH SCORE ★", core.ColorBrightYellow)
	}

	return RenderScreen(m.screen)
}
