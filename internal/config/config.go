// Package config provides YAML-based game configuration loading for the
// runner. Defaults are embedded so the binary works with no config files
// installed.
package config

// RunnerConfig contains all tunables for the lane-runner simulation.
type RunnerConfig struct {
	Track     TrackConfig     `yaml:"track"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Collision CollisionConfig `yaml:"collision"`
	Score     ScoreConfig     `yaml:"score"`
}

// TrackConfig defines the track geometry.
type TrackConfig struct {
	// LaneX holds the canonical X coordinate of each lane, left to right.
	LaneX   []float64 `yaml:"lane_x"`
	SpawnZ  float64   `yaml:"spawn_z"`  // Longitudinal position obstacles spawn at
	PassedZ float64   `yaml:"passed_z"` // Position beyond which an obstacle counts as avoided
}

// PhysicsConfig defines player kinematics.
type PhysicsConfig struct {
	AscendRate    float64 `yaml:"ascend_rate"`     // Jump height gained per second while ascending
	DescendRate   float64 `yaml:"descend_rate"`    // Jump height lost per second while descending
	MaxJumpHeight float64 `yaml:"max_jump_height"` // Apex of the jump
	LaneEaseRate  float64 `yaml:"lane_ease_rate"`  // Exponential easing rate toward the target lane
}

// SpawnConfig defines the obstacle spawn cadence as a step function of score.
type SpawnConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // Interval at score 0
	StepMs         int `yaml:"step_ms"`          // Interval reduction per score step
	StepScore      int `yaml:"step_score"`       // Score points per reduction step
	MinIntervalMs  int `yaml:"min_interval_ms"`  // Interval floor
}

// CollisionConfig defines the hit windows of the collision resolver.
type CollisionConfig struct {
	LaneTolerance float64 `yaml:"lane_tolerance"` // Max |obstacleX - playerX| to share a lane
	PlayerZMin    float64 `yaml:"player_z_min"`   // Near edge of the player's standing band
	PlayerZMax    float64 `yaml:"player_z_max"`   // Far edge of the player's standing band
	GroundClear   float64 `yaml:"ground_clear"`   // Jump height needed to clear a ground obstacle
	FlyingLow     float64 `yaml:"flying_low"`     // Lower edge of the flying-obstacle hit band
	FlyingHigh    float64 `yaml:"flying_high"`    // Upper edge of the flying-obstacle hit band
}

// ScoreConfig defines score accumulation and difficulty scaling.
type ScoreConfig struct {
	Rate       int     `yaml:"rate"`        // Points per second of survival
	BaseSpeed  float64 `yaml:"base_speed"`  // Obstacle speed at score 0
	SpeedStep  float64 `yaml:"speed_step"`  // Speed added per difficulty level
	LevelScore int     `yaml:"level_score"` // Score points per difficulty level
	SyncEvery  int     `yaml:"sync_every"`  // Score boundary that triggers a live push
}

// Lanes returns the number of lanes on the track.
func (t TrackConfig) Lanes() int {
	return len(t.LaneX)
}
