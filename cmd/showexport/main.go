// showexport converts polyhedron vertices into a stationary drone-show
// .skyc archive. Input is either inline JSON ([[x,y,z], ...]) or a path to
// a Wavefront OBJ file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/skyshow/internal/config"
	"github.com/Faultbox/skyshow/internal/export"
	"github.com/Faultbox/skyshow/internal/logger"
	"github.com/Faultbox/skyshow/pkg/geom"
	"github.com/Faultbox/skyshow/pkg/obj"
)

var (
	flagFaces    = flag.String("faces", "", "Face index lists as JSON ([[0,1,2], ...])")
	flagPathShow = flag.Bool("path-show", false, "Treat JSON input as per-drone waypoint paths ([[[x,y,z], ...], ...])")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}
	input := flag.Arg(0)

	var summary export.Summary
	if *flagPathShow {
		summary, err = runPathShow(input, cfg)
	} else {
		summary, err = runVertexShow(input, cfg)
	}
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d agents to %s (%.2fs show)\n",
		summary.AgentCount, summary.Path, summary.DurationSeconds)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `showexport - export polyhedron vertices as a drone-show archive

Usage:
  showexport [flags] <vertices-json | mesh.obj>

Examples:
  showexport '[[0,0,0], [1,0,0], [0,1,0]]'
  showexport -faces '[[0,1,2]]' '[[0,0,0], [1,0,0], [0,1,0], [5,5,5]]'
  showexport -output cube.skyc model.obj
  showexport -path-show '[[[0,0,0], [10,0,5]], [[0,5,0], [10,5,5]]]'

Flags:`)
	flag.PrintDefaults()
}

func runVertexShow(input string, cfg *config.Config) (export.Summary, error) {
	vertices, faces, err := loadInput(input)
	if err != nil {
		return export.Summary{}, err
	}

	if *flagFaces != "" {
		faces, err = parseFaces(*flagFaces)
		if err != nil {
			return export.Summary{}, err
		}
	}

	return export.Run(vertices, faces, export.Options{
		OutputPath: cfg.Output.Filename,
		Title:      cfg.Show.Title,
		Volume:     volumeFromConfig(cfg),
		FPS:        cfg.Show.FPS,
		FrameCount: cfg.Show.FrameCount,
	})
}

func runPathShow(input string, cfg *config.Config) (export.Summary, error) {
	var raw [][][3]float64
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return export.Summary{}, fmt.Errorf("parsing paths JSON: %w", err)
	}

	paths := make([][]geom.Vec3, len(raw))
	for i, p := range raw {
		paths[i] = toVecs(p)
	}

	return export.RunPaths(paths, export.PathOptions{
		OutputPath: cfg.Output.Filename,
		Title:      cfg.Show.Title,
		Volume:     volumeFromConfig(cfg),
		Limits: export.SpeedLimits{
			Min:    cfg.Speed.Min,
			Max:    cfg.Speed.Max,
			Target: cfg.Speed.Target,
		},
		SampleFPS: cfg.Speed.SampleFPS,
	})
}

// loadInput reads vertices and faces from an OBJ file path or inline JSON.
func loadInput(input string) ([]geom.Vec3, [][]int, error) {
	if strings.HasSuffix(strings.ToLower(input), ".obj") {
		mesh, err := obj.Load(input)
		if err != nil {
			return nil, nil, err
		}
		return mesh.Vertices, mesh.Faces, nil
	}

	var raw [][3]float64
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return nil, nil, fmt.Errorf("parsing vertices JSON: %w", err)
	}
	return toVecs(raw), nil, nil
}

func parseFaces(s string) ([][]int, error) {
	var faces [][]int
	if err := json.Unmarshal([]byte(s), &faces); err != nil {
		return nil, fmt.Errorf("parsing faces JSON: %w", err)
	}
	return faces, nil
}

func toVecs(raw [][3]float64) []geom.Vec3 {
	out := make([]geom.Vec3, len(raw))
	for i, p := range raw {
		out[i] = geom.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	return out
}

func volumeFromConfig(cfg *config.Config) export.Volume {
	return export.Volume{
		XYMin: cfg.Volume.XYMin,
		XYMax: cfg.Volume.XYMax,
		ZMin:  cfg.Volume.ZMin,
		ZMax:  cfg.Volume.ZMax,
	}
}
