package export

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/skyshow/internal/logger"
	"github.com/Faultbox/skyshow/pkg/geom"
)

// DefaultFilename is used when the caller does not name the output file.
const DefaultFilename = "vertices_show.skyc"

// DefaultTitle is the show title when the caller does not supply one.
const DefaultTitle = "Polyhedron Vertices"

// Options control a single export run.
type Options struct {
	OutputPath string // DefaultFilename when empty
	Title      string // DefaultTitle when empty
	Volume     Volume
	FPS        int
	FrameCount int
}

// DefaultOptions returns the standard show parameters: 100 frames at 4 fps
// inside the default flight volume.
func DefaultOptions() Options {
	return Options{
		Volume:     DefaultVolume,
		FPS:        4,
		FrameCount: 100,
	}
}

// Run executes the export pipeline: select the face-referenced vertices,
// normalize them into the flight volume, synthesize stationary trajectories,
// assemble the show document, and pack the archive. Stages run strictly in
// order and the first failure aborts the rest.
//
// Run holds no shared state; concurrent calls are safe as long as they
// target distinct output paths.
func Run(vertices []geom.Vec3, faces [][]int, opts Options) (Summary, error) {
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultFilename
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}

	sel, err := Select(vertices, faces)
	if err != nil {
		return Summary{}, fmt.Errorf("selecting vertices: %w", err)
	}
	logger.Debug("selected vertices",
		zap.Int("input", len(vertices)),
		zap.Int("used", len(sel.Vertices)),
		zap.Int("faces", len(faces)))

	normalized, err := Normalize(sel.Vertices, opts.Volume)
	if err != nil {
		return Summary{}, fmt.Errorf("normalizing vertices: %w", err)
	}

	doc, err := BuildShow(normalized, opts.Title, opts.FPS, opts.FrameCount)
	if err != nil {
		return Summary{}, fmt.Errorf("building show: %w", err)
	}

	summary, err := Pack(doc, opts.OutputPath)
	if err != nil {
		return Summary{}, err
	}

	logger.Info("exported show",
		zap.String("path", summary.Path),
		zap.Int("agents", summary.AgentCount),
		zap.Float64("duration_s", summary.DurationSeconds))
	return summary, nil
}

// PathOptions control a moving-path export run.
type PathOptions struct {
	OutputPath string // DefaultFilename when empty
	Title      string // DefaultTitle when empty
	Volume     Volume
	Limits     SpeedLimits
	SampleFPS  float64 // fps the resampled trajectories are emitted at
}

// DefaultPathOptions returns the standard parameters for moving-path shows.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		Volume:    DefaultVolume,
		Limits:    DefaultSpeedLimits,
		SampleFPS: 25,
	}
}

// RunPaths exports moving trajectories, one drone per input path. All
// waypoints are normalized into the flight volume with a single shared
// transform so the paths keep their relative layout, then each path gets
// speed-limited timing and is resampled at opts.SampleFPS. The show
// duration is the longest per-drone duration.
func RunPaths(paths [][]geom.Vec3, opts PathOptions) (Summary, error) {
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultFilename
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if len(paths) == 0 {
		return Summary{}, fmt.Errorf("building show: %w", ErrNoAgents)
	}

	var all []geom.Vec3
	for i, p := range paths {
		if len(p) == 0 {
			return Summary{}, fmt.Errorf("path %d has no waypoints: %w", i, ErrEmptyInput)
		}
		all = append(all, p...)
	}
	box, ok := geom.BoundsOf(all)
	if !ok {
		return Summary{}, fmt.Errorf("normalizing paths: %w", ErrEmptyInput)
	}
	transform := ComputeTransform(box, opts.Volume)

	sampled := make([][]geom.Vec3, len(paths))
	times := make([][]float64, len(paths))
	var duration float64
	for i, p := range paths {
		normalized := transform.Apply(p)
		ts, total := ComputeTiming(normalized, opts.Limits)
		sampled[i], times[i] = Resample(normalized, ts, opts.SampleFPS)
		if total > duration {
			duration = total
		}
	}
	logger.Debug("timed paths",
		zap.Int("drones", len(paths)),
		zap.Float64("duration_s", duration))

	summary, err := packPaths(opts.Title, opts.SampleFPS, duration, sampled, times, opts.OutputPath)
	if err != nil {
		return Summary{}, err
	}

	logger.Info("exported path show",
		zap.String("path", summary.Path),
		zap.Int("agents", summary.AgentCount),
		zap.Float64("duration_s", summary.DurationSeconds))
	return summary, nil
}
