package game

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func TestPlayerLaneClamp(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)

	if p.Lane != 1 {
		t.Fatalf("new player should start in the center lane, got %d", p.Lane)
	}

	for i := 0; i < 5; i++ {
		p.MoveLeft()
	}
	if p.Lane != 0 {
		t.Errorf("repeated left moves should clamp at lane 0, got %d", p.Lane)
	}

	for i := 0; i < 5; i++ {
		p.MoveRight(cfg.Track.Lanes())
	}
	if p.Lane != 2 {
		t.Errorf("repeated right moves should clamp at lane 2, got %d", p.Lane)
	}
}

func TestPlayerJumpArcBounds(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)

	p.Jump()
	const delta = 1.0 / 60

	// Integrate a full arc and beyond; height must stay in [0, max] and the
	// grounded invariant must hold at every step.
	for i := 0; i < 120; i++ {
		p.Integrate(delta, cfg)

		if p.JumpHeight < 0 || p.JumpHeight > cfg.Physics.MaxJumpHeight {
			t.Fatalf("jump height %v out of [0, %v] at step %d", p.JumpHeight, cfg.Physics.MaxJumpHeight, i)
		}
		if (p.JumpHeight == 0) != (p.Phase == Grounded) {
			t.Fatalf("invariant broken at step %d: height=%v phase=%v", i, p.JumpHeight, p.Phase)
		}
	}

	if p.Phase != Grounded {
		t.Error("player should have landed after a full arc")
	}
}

func TestPlayerJumpReachesApexThenDescends(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)

	p.Jump()
	if p.Phase != Ascending {
		t.Fatal("jump should start the ascent")
	}

	// Ascend rate 8/s: a quarter second step overshoots the apex and clamps.
	p.Integrate(0.3, cfg)
	if p.JumpHeight != cfg.Physics.MaxJumpHeight {
		t.Errorf("apex should clamp to %v, got %v", cfg.Physics.MaxJumpHeight, p.JumpHeight)
	}
	if p.Phase != Descending {
		t.Error("reaching the apex should flip to descending")
	}
}

func TestPlayerJumpWhileFallingRestartsAscent(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)

	p.Jump()
	p.Integrate(0.3, cfg) // At apex, descending
	p.Integrate(0.05, cfg)
	midair := p.JumpHeight
	if midair <= 0 || midair >= cfg.Physics.MaxJumpHeight {
		t.Fatalf("expected mid-air height, got %v", midair)
	}

	p.Jump()
	if p.Phase != Ascending {
		t.Error("jump while falling should restart the ascent")
	}
	if p.JumpHeight != midair {
		t.Error("restarted ascent should continue from the current height")
	}
}

func TestPlayerLaneEasingNeverOvershoots(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)

	p.MoveRight(cfg.Track.Lanes())
	target := cfg.Track.LaneX[p.Lane]

	for i := 0; i < 200; i++ {
		p.Integrate(1.0/60, cfg)
		if p.X > target {
			t.Fatalf("easing overshot target %v at step %d: x=%v", target, i, p.X)
		}
	}

	if target-p.X > 0.01 {
		t.Errorf("player should have converged near x=%v, got %v", target, p.X)
	}

	// A huge delta clamps the easing factor instead of overshooting.
	p = NewPlayer(cfg)
	p.MoveLeft()
	p.Integrate(10, cfg)
	if p.X != cfg.Track.LaneX[0] {
		t.Errorf("large delta should land exactly on the lane, got %v", p.X)
	}
}
