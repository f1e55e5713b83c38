package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Show.FPS != 4 {
		t.Errorf("expected fps 4, got %d", cfg.Show.FPS)
	}
	if cfg.Show.FrameCount != 100 {
		t.Errorf("expected frame count 100, got %d", cfg.Show.FrameCount)
	}
	if cfg.Show.Title != "Polyhedron Vertices" {
		t.Errorf("unexpected default title %q", cfg.Show.Title)
	}

	if cfg.Volume.XYMin != -20 || cfg.Volume.XYMax != 20 {
		t.Errorf("expected XY bounds (-20, 20), got (%g, %g)", cfg.Volume.XYMin, cfg.Volume.XYMax)
	}
	if cfg.Volume.ZMin != 0 || cfg.Volume.ZMax != 50 {
		t.Errorf("expected Z bounds (0, 50), got (%g, %g)", cfg.Volume.ZMin, cfg.Volume.ZMax)
	}

	if cfg.Speed.Min != 2 || cfg.Speed.Max != 6 || cfg.Speed.Target != 4 {
		t.Errorf("unexpected speed envelope %+v", cfg.Speed)
	}

	if cfg.Output.Filename != "vertices_show.skyc" {
		t.Errorf("unexpected default filename %q", cfg.Output.Filename)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "skyshow.yaml")

	yamlContent := `
show:
  fps: 5
  frame_count: 200
  title: "Big Show"

volume:
  xy_min: -50
  xy_max: 50
  z_min: 10
  z_max: 120

output:
  filename: "big.skyc"

logging:
  level: "debug"
  log_file: "export.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Show.FPS != 5 {
		t.Errorf("expected fps 5, got %d", cfg.Show.FPS)
	}
	if cfg.Show.FrameCount != 200 {
		t.Errorf("expected frame count 200, got %d", cfg.Show.FrameCount)
	}
	if cfg.Show.Title != "Big Show" {
		t.Errorf("expected title 'Big Show', got %q", cfg.Show.Title)
	}
	if cfg.Volume.XYMax != 50 || cfg.Volume.ZMax != 120 {
		t.Errorf("volume not loaded: %+v", cfg.Volume)
	}
	if cfg.Output.Filename != "big.skyc" {
		t.Errorf("expected filename 'big.skyc', got %q", cfg.Output.Filename)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// Sections absent from the file keep their defaults.
	if cfg.Speed.Target != 4 {
		t.Errorf("speed defaults lost: %+v", cfg.Speed)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
show:
  fps: not a number
  broken syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/skyshow.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero fps", func(c *Config) { c.Show.FPS = 0 }},
		{"negative frame count", func(c *Config) { c.Show.FrameCount = -1 }},
		{"inverted xy bounds", func(c *Config) { c.Volume.XYMin = 20; c.Volume.XYMax = -20 }},
		{"inverted z bounds", func(c *Config) { c.Volume.ZMin = 50; c.Volume.ZMax = 0 }},
		{"zero min speed", func(c *Config) { c.Speed.Min = 0 }},
		{"max below min speed", func(c *Config) { c.Speed.Max = 1 }},
		{"target outside envelope", func(c *Config) { c.Speed.Target = 10 }},
		{"zero sample fps", func(c *Config) { c.Speed.SampleFPS = 0 }},
		{"empty filename", func(c *Config) { c.Output.Filename = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "output flag",
			setup: func() { *flagOutput = "custom.skyc" },
			verify: func(cfg *Config) {
				if cfg.Output.Filename != "custom.skyc" {
					t.Errorf("expected filename 'custom.skyc', got %q", cfg.Output.Filename)
				}
			},
			teardown: func() { *flagOutput = "" },
		},
		{
			name:  "title flag",
			setup: func() { *flagTitle = "Flag Show" },
			verify: func(cfg *Config) {
				if cfg.Show.Title != "Flag Show" {
					t.Errorf("expected title 'Flag Show', got %q", cfg.Show.Title)
				}
			},
			teardown: func() { *flagTitle = "" },
		},
		{
			name:  "frames and fps flags",
			setup: func() { *flagFrames = 250; *flagFPS = 10 },
			verify: func(cfg *Config) {
				if cfg.Show.FrameCount != 250 {
					t.Errorf("expected frame count 250, got %d", cfg.Show.FrameCount)
				}
				if cfg.Show.FPS != 10 {
					t.Errorf("expected fps 10, got %d", cfg.Show.FPS)
				}
			},
			teardown: func() { *flagFrames = 0; *flagFPS = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "skyshow.yaml")

	yamlContent := `
show:
  fps: 8
  frame_count: 300
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFPS = 12
	defer func() {
		*flagConfig = ""
		*flagFPS = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// FPS comes from the flag, frame count from the file.
	if cfg.Show.FPS != 12 {
		t.Errorf("expected fps 12 from flag, got %d", cfg.Show.FPS)
	}
	if cfg.Show.FrameCount != 300 {
		t.Errorf("expected frame count 300 from file, got %d", cfg.Show.FrameCount)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "skyshow.yaml")

	cfg := Default()
	cfg.Show.Title = "Saved Show"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Show.Title != "Saved Show" {
		t.Errorf("round trip lost title: %q", loaded.Show.Title)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}
