package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Figure.ThighAngle != 90 || cfg.Figure.ShinAngle != 45 {
		t.Errorf("unexpected default angles: %+v", cfg.Figure)
	}
	if cfg.Animation.Duration <= 0 || cfg.Animation.Cycles <= 0 {
		t.Error("animation defaults should be positive")
	}
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		t.Error("display defaults should be positive")
	}
}

func TestParametersRoundTrip(t *testing.T) {
	p := DefaultConfig().Parameters()
	if p.FemurLength != DefaultFemur || p.FeetLength != DefaultFeet {
		t.Errorf("unexpected parameters: %+v", p)
	}
	if p.Stature() != DefaultShin+DefaultFemur+DefaultTorso {
		t.Errorf("unexpected stature %f", p.Stature())
	}
}

func TestFrameOffset(t *testing.T) {
	cfg := DefaultConfig()
	want := cfg.Parameters().Stature() + DefaultHeadroom
	if got := cfg.Frame().Offset; got != want {
		t.Errorf("derived offset: expected %f, got %f", want, got)
	}

	cfg.Display.Offset = 2.0
	if got := cfg.Frame().Offset; got != 2.0 {
		t.Errorf("explicit offset: expected 2.0, got %f", got)
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "squat.yaml")

	cfg := DefaultConfig()
	cfg.Figure.Femur = 0.52
	cfg.Animation.Cycles = 5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Figure.Femur != 0.52 {
		t.Errorf("expected femur 0.52, got %f", loaded.Figure.Femur)
	}
	if loaded.Animation.Cycles != 5 {
		t.Errorf("expected 5 cycles, got %d", loaded.Animation.Cycles)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("figure:\n  femur: 0.51\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Figure.Femur != 0.51 {
		t.Errorf("expected femur 0.51, got %f", cfg.Figure.Femur)
	}
	// fields absent from the file keep their defaults
	if cfg.Figure.Shin != DefaultShin {
		t.Errorf("expected default shin, got %f", cfg.Figure.Shin)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("quarter")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Figure.ThighAngle != 45 {
		t.Errorf("expected thigh angle 45, got %f", cfg.Figure.ThighAngle)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"deep", "quarter", "slow"} {
		if !seen[want] {
			t.Errorf("missing preset %s", want)
		}
	}
}
