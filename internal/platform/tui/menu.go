package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// MenuChoice identifies the screens reachable from the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceLeaderboard
	MenuChoiceLive
	MenuChoiceHistory
	MenuChoiceQuit
)

// menuItem is one selectable row of the main menu.
type menuItem struct {
	choice MenuChoice
	title  string
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items      []menuItem
	cursor     int
	width      int
	height     int
	playerName string
	highScore  int
	keyMapper  *KeyMapper
	quitting   bool
	selected   MenuChoice
}

// NewMenuModel creates the main menu for the given player.
func NewMenuModel(playerName string, highScore int, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items: []menuItem{
			{MenuChoicePlay, "Play"},
			{MenuChoiceLeaderboard, "Leaderboard"},
			{MenuChoiceLive, "Live Games"},
			{MenuChoiceHistory, "My History"},
			{MenuChoiceQuit, "Quit"},
		},
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		playerName: playerName,
		highScore:  highScore,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		m.selected = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.items[m.cursor].choice
		if m.selected == MenuChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  L A N E   R U N N E R  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	greeting := fmt.Sprintf("%s  |  best: %d", m.playerName, m.highScore)
	b.WriteString(centerText(greeting, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen menu entry, MenuChoiceNone if none yet.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
