package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML is broken: %v", err)
	}

	want := DefaultRunnerConfig()
	if cfg.Track.Lanes() != want.Track.Lanes() {
		t.Errorf("lanes = %d, want %d", cfg.Track.Lanes(), want.Track.Lanes())
	}
	if cfg.Score.BaseSpeed != want.Score.BaseSpeed || cfg.Score.LevelScore != want.Score.LevelScore {
		t.Errorf("score config drifted: %+v vs %+v", cfg.Score, want.Score)
	}
	if cfg.Spawn != want.Spawn {
		t.Errorf("spawn config drifted: %+v vs %+v", cfg.Spawn, want.Spawn)
	}
	if cfg.Collision != want.Collision {
		t.Errorf("collision config drifted: %+v vs %+v", cfg.Collision, want.Collision)
	}
	if cfg.Physics != want.Physics {
		t.Errorf("physics config drifted: %+v vs %+v", cfg.Physics, want.Physics)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	custom := `
track:
  lane_x: [-2.0, 0, 2.0]
  spawn_z: -40
  passed_z: 12
score:
  base_speed: 6
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Track.SpawnZ != -40 {
		t.Errorf("spawn_z = %v, want -40", cfg.Track.SpawnZ)
	}
	if cfg.Score.BaseSpeed != 6 {
		t.Errorf("base_speed = %v, want 6", cfg.Score.BaseSpeed)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	if _, err := LoadRunner("/no/such/file.yaml"); err == nil {
		t.Error("missing custom config should be an error, not a fallback")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("track: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("broken custom config should be an error")
	}
}

func TestDefaultConfigShape(t *testing.T) {
	cfg := DefaultRunnerConfig()

	if cfg.Track.Lanes() != 3 {
		t.Errorf("default lanes = %d, want 3", cfg.Track.Lanes())
	}
	if cfg.Track.LaneX[1] != 0 {
		t.Errorf("center lane should sit at x=0, got %v", cfg.Track.LaneX[1])
	}
	if cfg.Spawn.MinIntervalMs > cfg.Spawn.BaseIntervalMs {
		t.Error("min spawn interval exceeds base interval")
	}
	if cfg.Collision.PlayerZMin >= cfg.Collision.PlayerZMax {
		t.Error("player collision band is empty")
	}
	if cfg.Collision.FlyingLow >= cfg.Collision.FlyingHigh {
		t.Error("flying collision window is empty")
	}
}
