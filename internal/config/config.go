// Package config handles exporter configuration loading and management.
package config

import "fmt"

// Config holds all exporter settings.
type Config struct {
	Show    ShowConfig    `yaml:"show"`
	Volume  VolumeConfig  `yaml:"volume"`
	Speed   SpeedConfig   `yaml:"speed"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShowConfig holds show timing parameters.
type ShowConfig struct {
	FPS        int    `yaml:"fps"`
	FrameCount int    `yaml:"frame_count"`
	Title      string `yaml:"title"`
}

// VolumeConfig holds the target flight volume bounds in meters. X and Y
// share the same bounds; Z is altitude.
type VolumeConfig struct {
	XYMin float64 `yaml:"xy_min"`
	XYMax float64 `yaml:"xy_max"`
	ZMin  float64 `yaml:"z_min"`
	ZMax  float64 `yaml:"z_max"`
}

// SpeedConfig holds the speed envelope for moving-path exports, in m/s,
// and the frame rate sampled shows are emitted at.
type SpeedConfig struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Target    float64 `yaml:"target"`
	SampleFPS float64 `yaml:"sample_fps"`
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Filename string `yaml:"filename"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the standard show parameters.
func Default() *Config {
	return &Config{
		Show: ShowConfig{
			FPS:        4,
			FrameCount: 100,
			Title:      "Polyhedron Vertices",
		},
		Volume: VolumeConfig{
			XYMin: -20,
			XYMax: 20,
			ZMin:  0,
			ZMax:  50,
		},
		Speed: SpeedConfig{
			Min:       2,
			Max:       6,
			Target:    4,
			SampleFPS: 25,
		},
		Output: OutputConfig{
			Filename: "vertices_show.skyc",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that show parameters and volume bounds are usable.
// Called once at startup; the pipeline assumes a validated config.
func (c *Config) Validate() error {
	if c.Show.FPS <= 0 {
		return fmt.Errorf("show.fps must be positive, got %d", c.Show.FPS)
	}
	if c.Show.FrameCount <= 0 {
		return fmt.Errorf("show.frame_count must be positive, got %d", c.Show.FrameCount)
	}
	if c.Volume.XYMin >= c.Volume.XYMax {
		return fmt.Errorf("volume xy bounds inverted: [%g, %g]", c.Volume.XYMin, c.Volume.XYMax)
	}
	if c.Volume.ZMin >= c.Volume.ZMax {
		return fmt.Errorf("volume z bounds inverted: [%g, %g]", c.Volume.ZMin, c.Volume.ZMax)
	}
	if c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("speed envelope invalid: min %g, max %g", c.Speed.Min, c.Speed.Max)
	}
	if c.Speed.Target < c.Speed.Min || c.Speed.Target > c.Speed.Max {
		return fmt.Errorf("speed.target %g outside [%g, %g]", c.Speed.Target, c.Speed.Min, c.Speed.Max)
	}
	if c.Speed.SampleFPS <= 0 {
		return fmt.Errorf("speed.sample_fps must be positive, got %g", c.Speed.SampleFPS)
	}
	if c.Output.Filename == "" {
		return fmt.Errorf("output.filename must not be empty")
	}
	return nil
}
