package game

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// JumpPhase describes where the player is in the jump arc.
type JumpPhase int

const (
	Grounded JumpPhase = iota
	Ascending
	Descending
)

// Player holds the player's kinematic state.
// Invariant: JumpHeight == 0 exactly when Phase == Grounded, maintained by
// clamping at every integration step.
type Player struct {
	Lane       int     // Target discrete lane
	X          float64 // Continuous position, eases toward the lane's canonical X
	Phase      JumpPhase
	JumpHeight float64
}

// NewPlayer creates a player in the center lane, grounded.
func NewPlayer(cfg config.RunnerConfig) Player {
	center := cfg.Track.Lanes() / 2
	return Player{
		Lane: center,
		X:    cfg.Track.LaneX[center],
	}
}

// MoveLeft shifts the target lane one to the left. Requests beyond the edge
// are clamped, never an error.
func (p *Player) MoveLeft() {
	p.Lane = core.Clamp(p.Lane-1, 0, p.Lane)
}

// MoveRight shifts the target lane one to the right, clamped to the track.
func (p *Player) MoveRight(lanes int) {
	p.Lane = core.Clamp(p.Lane+1, 0, lanes-1)
}

// Jump starts (or restarts) an ascent. A jump pressed while falling resumes
// the ascent from the current height, which keeps the grounded invariant.
func (p *Player) Jump() {
	if p.Phase != Ascending {
		p.Phase = Ascending
	}
}

// Integrate advances the jump arc and lane easing by delta seconds.
func (p *Player) Integrate(delta float64, cfg config.RunnerConfig) {
	phys := cfg.Physics

	switch p.Phase {
	case Ascending:
		p.JumpHeight += delta * phys.AscendRate
		if p.JumpHeight >= phys.MaxJumpHeight {
			p.JumpHeight = phys.MaxJumpHeight
			p.Phase = Descending
		}
	case Descending:
		p.JumpHeight -= delta * phys.DescendRate
		if p.JumpHeight <= 0 {
			p.JumpHeight = 0
			p.Phase = Grounded
		}
	}

	// Convex combination: approaches the lane without overshooting.
	p.X = core.Lerp(p.X, cfg.Track.LaneX[p.Lane], delta*phys.LaneEaseRate)
}
