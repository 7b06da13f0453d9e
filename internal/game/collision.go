package game

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Outcome is the result of resolving one obstacle against the player.
// At most one of Hit and Passed is set.
type Outcome struct {
	Hit    bool // The obstacle struck the player; the run ends
	Passed bool // The obstacle moved beyond the track; it counts as avoided
}

// Resolver decides hit/pass outcomes. It is a pure value: identical inputs
// always yield identical outcomes, and resolving mutates nothing.
type Resolver struct {
	laneX   []float64
	passedZ float64
	col     config.CollisionConfig
}

// NewResolver creates a resolver from the runner configuration.
func NewResolver(cfg config.RunnerConfig) Resolver {
	return Resolver{
		laneX:   cfg.Track.LaneX,
		passedZ: cfg.Track.PassedZ,
		col:     cfg.Collision,
	}
}

// Resolve tests a single obstacle against the player's continuous X position
// and jump height.
//
// The lane test uses continuous distance rather than the discrete lane index,
// so an obstacle can still hit (or miss) the player mid-way through a lane
// transition. A collision is only possible while the obstacle is inside the
// narrow band where the player stands.
func (r Resolver) Resolve(playerX, jumpHeight float64, o Obstacle) Outcome {
	if o.Z > r.passedZ {
		return Outcome{Passed: true}
	}

	sameLane := core.AbsF(r.laneX[o.Lane]-playerX) < r.col.LaneTolerance
	atPlayer := o.Z > r.col.PlayerZMin && o.Z < r.col.PlayerZMax
	if !sameLane || !atPlayer {
		return Outcome{}
	}

	if o.Kind.Flying() {
		// Flying obstacles occupy a mid-air band: stay low or clear above.
		if jumpHeight > r.col.FlyingLow && jumpHeight < r.col.FlyingHigh {
			return Outcome{Hit: true}
		}
		return Outcome{}
	}

	// Ground obstacles are cleared by jumping high enough.
	if jumpHeight < r.col.GroundClear {
		return Outcome{Hit: true}
	}
	return Outcome{}
}
