// Package game implements the lane-runner simulation: player kinematics,
// obstacle spawning, collision resolution and the run state machine.
// The package is pure logic with no platform dependencies; the TUI layer
// drives it with one Tick per rendered frame.
package game

import (
	"time"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// State is a snapshot of the run communicated to the platform each tick.
type State struct {
	Score      int
	Difficulty int
	Avoided    int
	GameOver   bool
	Paused     bool
}

// RunStats are the frozen final statistics of a finished run.
type RunStats struct {
	Score      int
	Avoided    int
	Duration   time.Duration
	Difficulty int
}

// TickResult reports what happened during one simulation tick.
type TickResult struct {
	State State

	// PushScore is set when the score crossed a sync boundary this tick.
	// The platform forwards State.Score to the live store; the simulation
	// never waits on or inspects the result.
	PushScore bool

	// Ended is set exactly once, on the tick of the terminal transition.
	Ended *RunStats
}

// Session is one play-through from start to game over. A new run is a new
// Session, never a reused one; the game-over state is terminal.
//
// All mutation happens inside Tick, which the platform calls sequentially.
// Session is not safe for concurrent use and does not need to be.
type Session struct {
	cfg      config.RunnerConfig
	player   Player
	spawner  *Spawner
	resolver Resolver

	obstacles []Obstacle
	score     int
	avoided   int
	startedAt time.Time
	gameOver  bool
	paused    bool
}

// NewSession starts a run: player in the center lane, empty track, score 0.
func NewSession(cfg config.RunnerConfig, seed int64) *Session {
	return &Session{
		cfg:       cfg,
		player:    NewPlayer(cfg),
		spawner:   NewSpawner(seed, cfg),
		resolver:  NewResolver(cfg),
		obstacles: make([]Obstacle, 0, 16),
		startedAt: time.Now(),
	}
}

// Speed returns the obstacle speed for the current score.
func (s *Session) Speed() float64 {
	return s.cfg.Score.BaseSpeed + float64(s.score/s.cfg.Score.LevelScore)*s.cfg.Score.SpeedStep
}

// Difficulty returns the 1-based difficulty level for the current score.
func (s *Session) Difficulty() int {
	return s.score/s.cfg.Score.LevelScore + 1
}

// Player returns the current player state for rendering.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns the live obstacle set for rendering.
// Callers must not mutate the returned slice.
func (s *Session) Obstacles() []Obstacle {
	return s.obstacles
}

// State returns the current snapshot.
func (s *Session) State() State {
	return State{
		Score:      s.score,
		Difficulty: s.Difficulty(),
		Avoided:    s.avoided,
		GameOver:   s.gameOver,
		Paused:     s.paused,
	}
}

// Tick advances the simulation by delta seconds of real elapsed time.
// Once the run has ended, Tick is a no-op: no score, counter or obstacle
// mutation can happen after the terminal transition.
func (s *Session) Tick(in core.InputFrame, delta float64) TickResult {
	if s.gameOver {
		return TickResult{State: s.State()}
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return TickResult{State: s.State()}
	}

	// Intents first, so a lane change entered this frame affects this frame.
	if in.Has(core.ActionLeft) {
		s.player.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.player.MoveRight(s.cfg.Track.Lanes())
	}
	if in.Has(core.ActionJump) {
		s.player.Jump()
	}

	// Score accrues by survival time, truncated to whole points per tick.
	oldScore := s.score
	s.score += int(delta * float64(s.cfg.Score.Rate))
	pushScore := s.score/s.cfg.Score.SyncEvery > oldScore/s.cfg.Score.SyncEvery

	if o := s.spawner.Advance(s.score, delta*1000); o != nil {
		s.obstacles = append(s.obstacles, *o)
	}

	s.player.Integrate(delta, s.cfg)

	if ended := s.advanceObstacles(delta); ended != nil {
		return TickResult{State: s.State(), PushScore: pushScore, Ended: ended}
	}

	return TickResult{State: s.State(), PushScore: pushScore}
}

// advanceObstacles moves every obstacle toward the player and resolves it.
// Returns final run stats if an obstacle hit the player.
//
// Obstacles are processed in spawn order and the loop stops at the first
// hit: score, avoided count and the obstacle set are frozen as of that
// moment, and obstacles later in the slice are not advanced this tick.
func (s *Session) advanceObstacles(delta float64) *RunStats {
	speed := s.Speed()
	survivors := s.obstacles[:0:0]

	for i, o := range s.obstacles {
		o.Z += speed * delta

		out := s.resolver.Resolve(s.player.X, s.player.JumpHeight, o)
		switch {
		case out.Passed:
			s.avoided++
		case out.Hit:
			s.gameOver = true
			// Keep the not-yet-processed tail unmodified.
			survivors = append(survivors, s.obstacles[i:]...)
			s.obstacles = survivors
			return &RunStats{
				Score:      s.score,
				Avoided:    s.avoided,
				Duration:   time.Since(s.startedAt),
				Difficulty: s.Difficulty(),
			}
		default:
			survivors = append(survivors, o)
		}
	}

	s.obstacles = survivors
	return nil
}
