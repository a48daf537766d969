// Package config loads the windrose tool configuration from an optional
// YAML file and supplies defaults for everything left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config carries one run's settings. Defaults come from Default, a YAML
// file overrides the defaults, and command-line flags override the file.
// The rotation angle lives here rather than in any package state so one
// explicit value reaches every diagram in the run.
type Config struct {
	WindPath     string  `yaml:"wind-csv"`
	MapPath      string  `yaml:"map"`
	OutputDir    string  `yaml:"output-dir"`
	Angle        float64 `yaml:"angle"`
	Workers      int     `yaml:"workers"`
	UnifiedScale bool    `yaml:"unified-scale"`
	Stats        bool    `yaml:"stats"`
	Input        Input   `yaml:"input"`
}

// Input describes the observation file layout.
type Input struct {
	Encoding        string `yaml:"encoding"`
	TimeColumn      int    `yaml:"time-column"`
	SpeedColumn     int    `yaml:"speed-column"`
	DirectionColumn int    `yaml:"direction-column"`
}

// Default returns the built-in configuration: inputs in the working
// directory, diagrams under ./diagrams, no rotation, JMA column layout.
func Default() Config {
	return Config{
		WindPath:  "wind.csv",
		MapPath:   "map.png",
		OutputDir: "diagrams",
		Angle:     0,
		Workers:   4,
		Input: Input{
			Encoding:        "utf-8",
			TimeColumn:      0,
			SpeedColumn:     1,
			DirectionColumn: 3,
		},
	}
}

// Load reads a YAML configuration file over the defaults. Fields absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no run can work with.
func (c Config) Validate() error {
	if c.WindPath == "" {
		return fmt.Errorf("wind-csv must not be empty")
	}
	if c.MapPath == "" {
		return fmt.Errorf("map must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output-dir must not be empty")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Input.TimeColumn < 0 || c.Input.SpeedColumn < 0 || c.Input.DirectionColumn < 0 {
		return fmt.Errorf("input column indexes must not be negative")
	}
	return nil
}
