package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// These values define the reference gameplay; tests rely on them.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: TrackConfig{
			LaneX:   []float64{-1.2, 0, 1.2},
			SpawnZ:  -30,
			PassedZ: 10,
		},
		Physics: PhysicsConfig{
			AscendRate:    8,
			DescendRate:   10,
			MaxJumpHeight: 2,
			LaneEaseRate:  10,
		},
		Spawn: SpawnConfig{
			BaseIntervalMs: 800,
			StepMs:         50,
			StepScore:      200,
			MinIntervalMs:  400,
		},
		Collision: CollisionConfig{
			LaneTolerance: 0.8,
			PlayerZMin:    4,
			PlayerZMax:    6,
			GroundClear:   1.2,
			FlyingLow:     0.3,
			FlyingHigh:    1.5,
		},
		Score: ScoreConfig{
			Rate:       100,
			BaseSpeed:  8,
			SpeedStep:  2,
			LevelScore: 500,
			SyncEvery:  500,
		},
	}
}
