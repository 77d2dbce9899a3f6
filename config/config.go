// Package config provides configuration loading for the navigation
// tools: embedded defaults overlaid by an optional user YAML file.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Walk       WalkConfig       `yaml:"walk"`
	Directions DirectionsConfig `yaml:"directions"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// GridConfig holds navigation grid parameters.
type GridConfig struct {
	CellSizeInches float64 `yaml:"cell_size_inches"`
}

// WalkConfig holds pace assumptions for time estimates.
type WalkConfig struct {
	SpeedFeetPerSecond float64 `yaml:"speed_feet_per_second"`
}

// DirectionsConfig holds direction generation parameters.
type DirectionsConfig struct {
	LandmarkRadiusCells float64 `yaml:"landmark_radius_cells"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	PlanFile string `yaml:"plan_file"`
	Watch    bool   `yaml:"watch"`
}

// LogConfig holds logging settings. An empty Path logs to stderr.
type LogConfig struct {
	Path  string `yaml:"path"`
	Debug bool   `yaml:"debug"`
}

// Load reads configuration from a YAML file merged over the embedded
// defaults. An empty path loads the defaults alone. Fields absent from
// the user file keep their default values.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Grid.CellSizeInches <= 0 {
		return fmt.Errorf("grid.cell_size_inches must be positive, got %v", c.Grid.CellSizeInches)
	}
	if c.Walk.SpeedFeetPerSecond <= 0 {
		return fmt.Errorf("walk.speed_feet_per_second must be positive, got %v", c.Walk.SpeedFeetPerSecond)
	}
	if c.Directions.LandmarkRadiusCells <= 0 {
		return fmt.Errorf("directions.landmark_radius_cells must be positive, got %v", c.Directions.LandmarkRadiusCells)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
