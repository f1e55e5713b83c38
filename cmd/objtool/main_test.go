package main

import (
	"testing"

	"github.com/Faultbox/skyshow/internal/config"
)

func TestExportOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Show.FPS = 8
	cfg.Show.FrameCount = 40
	cfg.Show.Title = "Configured"
	cfg.Output.Filename = "configured.skyc"
	cfg.Volume.ZMax = 80

	opts := exportOptions(cfg, "", "")

	if opts.FPS != 8 || opts.FrameCount != 40 {
		t.Errorf("timing = %d fps / %d frames, want 8 / 40", opts.FPS, opts.FrameCount)
	}
	if opts.Title != "Configured" {
		t.Errorf("title = %q, want the configured title", opts.Title)
	}
	if opts.OutputPath != "configured.skyc" {
		t.Errorf("output = %q, want the configured filename", opts.OutputPath)
	}
	if opts.Volume.ZMax != 80 {
		t.Errorf("volume z max = %g, want 80", opts.Volume.ZMax)
	}
}

func TestExportOptionsFlagOverrides(t *testing.T) {
	cfg := config.Default()

	opts := exportOptions(cfg, "flag.skyc", "Flag Title")

	if opts.OutputPath != "flag.skyc" {
		t.Errorf("output = %q, want the -o override", opts.OutputPath)
	}
	if opts.Title != "Flag Title" {
		t.Errorf("title = %q, want the -title override", opts.Title)
	}
	// Everything else still comes from the config.
	if opts.FPS != cfg.Show.FPS || opts.FrameCount != cfg.Show.FrameCount {
		t.Errorf("timing = %d fps / %d frames, want config values", opts.FPS, opts.FrameCount)
	}
}
