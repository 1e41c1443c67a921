package config

import "sort"

var presets = map[string]func(*Config){
	"deep": func(c *Config) {
		c.Figure.ThighAngle = 90
		c.Figure.ShinAngle = 45
	},
	"quarter": func(c *Config) {
		c.Figure.ThighAngle = 45
		c.Figure.ShinAngle = 20
		c.Animation.SquatThigh = 45
		c.Animation.SquatShin = 20
	},
	"tall": func(c *Config) {
		c.Figure.Torso = 0.56
		c.Figure.Femur = 0.53
		c.Figure.Shin = 0.46
		c.Figure.Feet = 0.27
	},
	"compact": func(c *Config) {
		c.Figure.Torso = 0.46
		c.Figure.Femur = 0.43
		c.Figure.Shin = 0.37
		c.Figure.Feet = 0.22
	},
	"slow": func(c *Config) {
		c.Animation.Duration = 4.0
		c.Animation.Cycles = 2
	},
	"tempo": func(c *Config) {
		c.Animation.Duration = 1.2
		c.Animation.Cycles = 6
	},
}

// GetPreset returns the default config with the named preset applied, or
// nil when the name is unknown.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
