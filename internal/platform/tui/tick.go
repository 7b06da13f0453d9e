// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, rendering, and the
// menu / play / game-over flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. It carries the send time so the
// model can compute the real elapsed delta between frames.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
