package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 1000.0
	DefaultHeight        = 600.0
	DefaultStiffness     = 0.15
	DefaultDamping       = 0.85
	DefaultResolution    = 0.01
	DefaultTangentCount  = 15
	DefaultTangentLength = 30.0
	DefaultFPS           = 60
)

type Config struct {
	Canvas   CanvasConfig   `yaml:"canvas"`
	Spring   SpringConfig   `yaml:"spring"`
	Sampling SamplingConfig `yaml:"sampling"`
	FPS      int            `yaml:"fps"`
	Theme    string         `yaml:"theme"`
}

type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpringConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

type SamplingConfig struct {
	Resolution    float64 `yaml:"resolution"`
	TangentCount  int     `yaml:"tangent_count"`
	TangentLength float64 `yaml:"tangent_length"`
}

func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Spring: SpringConfig{
			Stiffness: DefaultStiffness,
			Damping:   DefaultDamping,
		},
		Sampling: SamplingConfig{
			Resolution:    DefaultResolution,
			TangentCount:  DefaultTangentCount,
			TangentLength: DefaultTangentLength,
		},
		FPS:   DefaultFPS,
		Theme: "neon",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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
