package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/squatlab/internal/anim"
	"github.com/san-kum/squatlab/internal/biomech"
)

const (
	DefaultThighAngle = 90.0
	DefaultShinAngle  = 45.0
	DefaultTorso      = 0.50
	DefaultFemur      = 0.48
	DefaultShin       = 0.41
	DefaultFeet       = 0.24
	DefaultDuration   = 2.0
	DefaultCycles     = 3
	DefaultFPS        = 30
	DefaultCanvasW    = 64
	DefaultCanvasH    = 26
	DefaultScale      = 28.0 // canvas columns per meter
	DefaultHeadroom   = 0.25 // meters above the standing head for the display offset
)

type Config struct {
	Figure    FigureConfig    `yaml:"figure"`
	Display   DisplayConfig   `yaml:"display"`
	Animation AnimationConfig `yaml:"animation"`
}

type FigureConfig struct {
	ThighAngle float64 `yaml:"thigh_angle"`
	ShinAngle  float64 `yaml:"shin_angle"`
	Torso      float64 `yaml:"torso"`
	Femur      float64 `yaml:"femur"`
	Shin       float64 `yaml:"shin"`
	Feet       float64 `yaml:"feet"`
}

type DisplayConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Offset float64 `yaml:"offset"` // vertical flip constant; 0 means derive from stature
}

type AnimationConfig struct {
	Duration   float64 `yaml:"duration"`
	Cycles     int     `yaml:"cycles"`
	SquatThigh float64 `yaml:"squat_thigh"`
	SquatShin  float64 `yaml:"squat_shin"`
	StandThigh float64 `yaml:"stand_thigh"`
	StandShin  float64 `yaml:"stand_shin"`
	FPS        int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Figure: FigureConfig{
			ThighAngle: DefaultThighAngle,
			ShinAngle:  DefaultShinAngle,
			Torso:      DefaultTorso,
			Femur:      DefaultFemur,
			Shin:       DefaultShin,
			Feet:       DefaultFeet,
		},
		Display: DisplayConfig{
			Width:  DefaultCanvasW,
			Height: DefaultCanvasH,
			Scale:  DefaultScale,
		},
		Animation: AnimationConfig{
			Duration:   DefaultDuration,
			Cycles:     DefaultCycles,
			SquatThigh: DefaultThighAngle,
			SquatShin:  DefaultShinAngle,
			FPS:        DefaultFPS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Parameters() biomech.Parameters {
	return biomech.Parameters{
		ThighAngle:  c.Figure.ThighAngle,
		ShinAngle:   c.Figure.ShinAngle,
		TorsoLength: c.Figure.Torso,
		FemurLength: c.Figure.Femur,
		ShinLength:  c.Figure.Shin,
		FeetLength:  c.Figure.Feet,
	}
}

func (c *Config) Schedule() anim.Schedule {
	return anim.Schedule{
		Duration: c.Animation.Duration,
		Cycles:   c.Animation.Cycles,
		Squat:    anim.Angles{Thigh: c.Animation.SquatThigh, Shin: c.Animation.SquatShin},
		Stand:    anim.Angles{Thigh: c.Animation.StandThigh, Shin: c.Animation.StandShin},
	}
}

// Frame resolves the display flip constant: the explicit offset if set,
// otherwise the figure's standing height plus headroom so the whole chain
// fits a top-left-origin viewport.
func (c *Config) Frame() biomech.DisplayFrame {
	offset := c.Display.Offset
	if offset == 0 {
		offset = c.Parameters().Stature() + DefaultHeadroom
	}
	return biomech.DisplayFrame{Offset: offset}
}
