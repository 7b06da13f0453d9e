package game

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/config"
)

// Spawner decides when and what to spawn. It owns the obstacle id counter
// and the RNG, so independent sessions never interfere with each other.
type Spawner struct {
	rng       *rand.Rand
	cfg       config.SpawnConfig
	lanes     int
	spawnZ    float64
	nextID    int
	elapsedMs float64 // Simulated time since the last spawn
}

// NewSpawner creates a spawner seeded for deterministic runs.
func NewSpawner(seed int64, cfg config.RunnerConfig) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg.Spawn,
		lanes:  cfg.Track.Lanes(),
		spawnZ: cfg.Track.SpawnZ,
	}
}

// Interval returns the spawn interval in milliseconds for the given score.
// The interval shrinks in fixed steps as the score grows and never drops
// below the configured floor.
func (s *Spawner) Interval(score int) int {
	interval := s.cfg.BaseIntervalMs - (score/s.cfg.StepScore)*s.cfg.StepMs
	if interval < s.cfg.MinIntervalMs {
		interval = s.cfg.MinIntervalMs
	}
	return interval
}

// Advance accumulates simulated time and returns a new obstacle once the
// interval for the current score has elapsed, or nil otherwise. Lane and
// kind are chosen uniformly at random.
func (s *Spawner) Advance(score int, deltaMs float64) *Obstacle {
	s.elapsedMs += deltaMs
	if s.elapsedMs <= float64(s.Interval(score)) {
		return nil
	}
	s.elapsedMs = 0

	o := &Obstacle{
		ID:   s.nextID,
		Kind: Kind(s.rng.Intn(int(numKinds))),
		Lane: s.rng.Intn(s.lanes),
		Z:    s.spawnZ,
	}
	s.nextID++
	return o
}
