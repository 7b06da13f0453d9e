package game

import (
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
)

func testResolver() Resolver {
	return NewResolver(config.DefaultRunnerConfig())
}

func TestResolveGroundHitWhenGrounded(t *testing.T) {
	r := testResolver()
	o := Obstacle{ID: 1, Kind: KindBarrier, Lane: 1, Z: 5}

	out := r.Resolve(0, 0, o)
	if !out.Hit {
		t.Error("grounded player in the same lane should hit a ground obstacle")
	}
	if out.Passed {
		t.Error("a hit obstacle must not also count as passed")
	}
}

func TestResolveGroundClearedByJump(t *testing.T) {
	r := testResolver()
	o := Obstacle{ID: 1, Kind: KindBarrier, Lane: 1, Z: 5}

	out := r.Resolve(0, 1.5, o)
	if out.Hit {
		t.Error("player at height 1.5 should clear a ground obstacle")
	}
}

func TestResolveFlyingByHeight(t *testing.T) {
	r := testResolver()
	o := Obstacle{ID: 1, Kind: KindDrone, Lane: 0, Z: 5}
	playerX := -1.2 // Lane 0 canonical X

	if out := r.Resolve(playerX, 0, o); out.Hit {
		t.Error("grounded player should pass under a flying obstacle")
	}
	if out := r.Resolve(playerX, 1.0, o); !out.Hit {
		t.Error("player at height 1.0 should hit a flying obstacle")
	}
	if out := r.Resolve(playerX, 1.8, o); out.Hit {
		t.Error("player above the flying band should clear the obstacle")
	}
}

func TestResolveOutsideLongitudinalBand(t *testing.T) {
	r := testResolver()

	for _, z := range []float64{-10, 3.9, 6.1, 9} {
		o := Obstacle{Kind: KindBarrier, Lane: 1, Z: z}
		if out := r.Resolve(0, 0, o); out.Hit {
			t.Errorf("obstacle at z=%v is outside the player band, got hit", z)
		}
	}
}

func TestResolveLaneToleranceIsContinuous(t *testing.T) {
	r := testResolver()
	o := Obstacle{Kind: KindBarrier, Lane: 0, Z: 5}

	// Player easing from center toward lane 0: still within tolerance.
	if out := r.Resolve(-0.5, 0, o); !out.Hit {
		t.Error("player 0.7 away from obstacle lane should still collide")
	}
	// Fully in the center lane: 1.2 away, out of tolerance.
	if out := r.Resolve(0, 0, o); out.Hit {
		t.Error("player a full lane away should not collide")
	}
}

func TestResolvePassedThreshold(t *testing.T) {
	r := testResolver()

	o := Obstacle{Kind: KindBarrier, Lane: 1, Z: 10.01}
	out := r.Resolve(0, 0, o)
	if !out.Passed {
		t.Error("obstacle beyond z=10 should be passed")
	}
	if out.Hit {
		t.Error("a passed obstacle cannot hit")
	}

	o.Z = 10
	if out := r.Resolve(0, 0, o); out.Passed {
		t.Error("obstacle exactly at z=10 is not yet passed")
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	r := testResolver()
	o := Obstacle{Kind: KindDart, Lane: 2, Z: 4.5}

	first := r.Resolve(1.2, 0.9, o)
	for i := 0; i < 10; i++ {
		if got := r.Resolve(1.2, 0.9, o); got != first {
			t.Fatalf("identical inputs produced different outcomes: %+v vs %+v", first, got)
		}
	}
}
