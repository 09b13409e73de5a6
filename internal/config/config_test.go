package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesCode(t *testing.T) {
	var fromYAML TetrisConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	want := DefaultTetrisConfig()
	if fromYAML != want {
		t.Fatalf("embedded default = %+v, want %+v", fromYAML, want)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	content := []byte(`
feel:
  das_ms: 120
  arr_ms: 20
  lock_delay_ms: 400
gravity:
  multiplier: 1.3
  soft_drop_multiplier: 2
randomizer:
  seed: 99
  avoid_szo_first: false
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg.Feel.DASMillis != 120 || cfg.Feel.ARRMillis != 20 || cfg.Feel.LockDelayMillis != 400 {
		t.Errorf("feel not loaded: %+v", cfg.Feel)
	}
	if cfg.Gravity.Multiplier != 1.3 || cfg.Gravity.SoftDropMultiplier != 2 {
		t.Errorf("gravity not loaded: %+v", cfg.Gravity)
	}
	if cfg.Randomizer.Seed != 99 || cfg.Randomizer.AvoidSZOFirst {
		t.Errorf("randomizer not loaded: %+v", cfg.Randomizer)
	}
}

func TestLoadTetrisMissingCustomPathFails(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("explicit missing path did not error")
	}
}

func TestLoadTetrisBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("feel: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTetris(path); err == nil {
		t.Fatal("malformed YAML did not error")
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		wantMult float64
		wantLock float64
		wantDAS  float64
	}{
		{DifficultyEasy, 0.7, 700, 170},
		{DifficultyNormal, 1.0, 500, 170},
		{DifficultyHard, 1.5, 350, 130},
		{DifficultyFixed, 1.0, 500, 170}, // untouched
	}

	for _, tt := range tests {
		cfg := DefaultTetrisConfig()
		ApplyTetrisPreset(&cfg, tt.preset)

		if cfg.Gravity.Multiplier != tt.wantMult {
			t.Errorf("%s: multiplier = %v, want %v", tt.preset, cfg.Gravity.Multiplier, tt.wantMult)
		}
		if cfg.Feel.LockDelayMillis != tt.wantLock {
			t.Errorf("%s: lock delay = %v, want %v", tt.preset, cfg.Feel.LockDelayMillis, tt.wantLock)
		}
		if cfg.Feel.DASMillis != tt.wantDAS {
			t.Errorf("%s: DAS = %v, want %v", tt.preset, cfg.Feel.DASMillis, tt.wantDAS)
		}
	}
}
