package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up": // Space or up for jump
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// Swipe gesture thresholds, in terminal cells. Cells are roughly twice
// as tall as wide, so the vertical threshold is half the horizontal one.
const (
	swipeThresholdX = 6
	swipeThresholdY = 3
)

// SwipeTracker turns mouse press/release pairs into swipe gestures:
// a horizontal drag past the threshold is a lane change, an upward drag
// past the threshold is a jump. The dominant axis wins.
type SwipeTracker struct {
	pressed bool
	startX  int
	startY  int
}

// Track consumes a mouse message and returns the action it completes.
// Press starts a gesture; release resolves it.
func (st *SwipeTracker) Track(msg tea.MouseMsg) core.Action {
	switch msg.Action {
	case tea.MouseActionPress:
		st.pressed = true
		st.startX = msg.X
		st.startY = msg.Y
		return core.ActionNone

	case tea.MouseActionRelease:
		if !st.pressed {
			return core.ActionNone
		}
		st.pressed = false

		dx := msg.X - st.startX
		dy := msg.Y - st.startY

		if core.Abs(dx) >= swipeThresholdX && core.Abs(dx) >= 2*core.Abs(dy) {
			if dx < 0 {
				return core.ActionLeft
			}
			return core.ActionRight
		}
		if dy <= -swipeThresholdY {
			return core.ActionJump
		}
		return core.ActionNone
	}

	return core.ActionNone
}
