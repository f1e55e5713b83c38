package export

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Faultbox/skyshow/pkg/geom"
	"github.com/Faultbox/skyshow/pkg/skyc"
)

// Summary describes a successfully written show archive. It is the only
// data the boundary layer needs to report success.
type Summary struct {
	Path            string // absolute path of the written archive
	AgentCount      int
	DurationSeconds float64
}

// Pack serializes doc into a .skyc archive at outputPath, replacing any
// existing file there. Non-finite coordinates are rejected before writing;
// IO failures are returned with their cause attached. A failed pack leaves
// no file at outputPath.
func Pack(doc *ShowDocument, outputPath string) (Summary, error) {
	show := &skyc.Show{
		ID:         uuid.NewString(),
		Title:      doc.Title,
		FPS:        float64(doc.FPS),
		FrameCount: doc.FrameCount,
		Duration:   doc.DurationSeconds,
		Drones:     make([]skyc.Drone, len(doc.Agents)),
	}
	for i, a := range doc.Agents {
		p := a.Trajectory.Position
		show.Drones[i] = skyc.Drone{
			Name: fmt.Sprintf("Drone %d", a.ID+1),
			Home: [3]float64{p.X, p.Y, p.Z},
		}
	}

	if err := skyc.Write(outputPath, show); err != nil {
		return Summary{}, fmt.Errorf("packing show archive: %w", err)
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		abs = outputPath
	}
	return Summary{
		Path:            abs,
		AgentCount:      len(doc.Agents),
		DurationSeconds: doc.DurationSeconds,
	}, nil
}

// packPaths writes a show of moving drones, one per sampled path.
func packPaths(title string, fps, duration float64, paths [][]geom.Vec3, times [][]float64, outputPath string) (Summary, error) {
	show := &skyc.Show{
		ID:       uuid.NewString(),
		Title:    title,
		FPS:      fps,
		Duration: duration,
		Drones:   make([]skyc.Drone, len(paths)),
	}
	for i, path := range paths {
		frames := make([]skyc.Keyframe, len(path))
		for j, p := range path {
			frames[j] = skyc.Keyframe{T: times[i][j], Pos: [3]float64{p.X, p.Y, p.Z}}
		}
		home := frames[0].Pos
		show.Drones[i] = skyc.Drone{
			Name: fmt.Sprintf("Drone %d", i+1),
			Home: home,
			Path: frames,
		}
	}

	if err := skyc.Write(outputPath, show); err != nil {
		return Summary{}, fmt.Errorf("packing show archive: %w", err)
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		abs = outputPath
	}
	return Summary{Path: abs, AgentCount: len(paths), DurationSeconds: duration}, nil
}
