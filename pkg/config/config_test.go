package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.WindPath != "wind.csv" || cfg.MapPath != "map.png" || cfg.OutputDir != "diagrams" {
		t.Errorf("unexpected default paths: %+v", cfg)
	}
	if cfg.Angle != 0 {
		t.Errorf("default angle = %v, want 0", cfg.Angle)
	}
	if cfg.Input.TimeColumn != 0 || cfg.Input.SpeedColumn != 1 || cfg.Input.DirectionColumn != 3 {
		t.Errorf("unexpected default columns: %+v", cfg.Input)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `wind-csv: /data/wind2023.csv
angle: -25.5
unified-scale: true
input:
  encoding: shift-jis
  direction-column: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.WindPath != "/data/wind2023.csv" {
		t.Errorf("WindPath = %q", cfg.WindPath)
	}
	if cfg.Angle != -25.5 {
		t.Errorf("Angle = %v, want -25.5", cfg.Angle)
	}
	if !cfg.UnifiedScale {
		t.Error("UnifiedScale = false, want true")
	}
	if cfg.Input.Encoding != "shift-jis" {
		t.Errorf("Encoding = %q", cfg.Input.Encoding)
	}
	if cfg.Input.DirectionColumn != 2 {
		t.Errorf("DirectionColumn = %d, want 2", cfg.Input.DirectionColumn)
	}

	// Fields absent from the file keep their defaults.
	if cfg.MapPath != "map.png" {
		t.Errorf("MapPath = %q, want default map.png", cfg.MapPath)
	}
	if cfg.Input.SpeedColumn != 1 {
		t.Errorf("SpeedColumn = %d, want default 1", cfg.Input.SpeedColumn)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Load of a missing file returned no error")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("wind-csv: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed YAML returned no error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty wind path", mutate: func(c *Config) { c.WindPath = "" }},
		{name: "empty map path", mutate: func(c *Config) { c.MapPath = "" }},
		{name: "empty output dir", mutate: func(c *Config) { c.OutputDir = "" }},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }},
		{name: "negative column", mutate: func(c *Config) { c.Input.SpeedColumn = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted a broken config")
			}
		})
	}
}
