package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagOutput = flag.String("output", "", "Output .skyc file path")
	flagTitle  = flag.String("title", "", "Show title")
	flagFrames = flag.Int("frames", 0, "Trajectory frame count")
	flagFPS    = flag.Int("fps", 0, "Trajectory frames per second")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOutput != "" {
		cfg.Output.Filename = *flagOutput
	}
	if *flagTitle != "" {
		cfg.Show.Title = *flagTitle
	}
	if *flagFrames > 0 {
		cfg.Show.FrameCount = *flagFrames
	}
	if *flagFPS > 0 {
		cfg.Show.FPS = *flagFPS
	}
}
