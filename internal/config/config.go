// Package config loads and saves search configuration files. Field
// names and the three-element triplet layout are a compatibility
// contract with historical configuration files and must not change.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMinVel   = 92.0
	DefaultMaxVel   = 526.0
	DefaultVelSteps = 256
	DefaultAngBelow = 0.1
	DefaultAngAbove = 0.1
	DefaultAngSteps = 128
)

// SearchConfig is the top-level search configuration. Modern files
// select a strategy through the free-form generator_config mapping;
// legacy files express a polar grid through v_arr, ang_arr and
// average_angle at the top level.
type SearchConfig struct {
	// GeneratorConfig holds a strategy name plus its constructor
	// parameters. When present it takes precedence over the legacy
	// fields below.
	GeneratorConfig map[string]any `yaml:"generator_config"`

	// VArr is [min_vel, max_vel, vel_steps].
	VArr []float64 `yaml:"v_arr"`
	// AngArr is [angle_offset_below, angle_offset_above, ang_steps].
	AngArr []float64 `yaml:"ang_arr"`
	// AverageAngle is the central heading to search around, in radians.
	// Nil means unset; legacy resolution requires it.
	AverageAngle *float64 `yaml:"average_angle"`
}

func Default() *SearchConfig {
	avg := 0.0
	return &SearchConfig{
		VArr:         []float64{DefaultMinVel, DefaultMaxVel, DefaultVelSteps},
		AngArr:       []float64{DefaultAngBelow, DefaultAngAbove, DefaultAngSteps},
		AverageAngle: &avg,
	}
}

func Load(path string) (*SearchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &SearchConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *SearchConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
