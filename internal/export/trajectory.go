package export

import "github.com/Faultbox/skyshow/pkg/geom"

// Trajectory is a stationary hover: one position held for the whole show.
// It stays compact (one waypoint plus timing) instead of materializing
// FrameCount duplicate samples; consumers expand it on demand.
type Trajectory struct {
	Position   geom.Vec3
	FPS        int
	FrameCount int
}

// Hover builds the stationary trajectory for one agent. fps and frameCount
// are process-wide constants validated once at startup, not per call.
func Hover(p geom.Vec3, fps, frameCount int) Trajectory {
	return Trajectory{Position: p, FPS: fps, FrameCount: frameCount}
}

// Duration returns the show length in seconds.
func (t Trajectory) Duration() float64 {
	return float64(t.FrameCount) / float64(t.FPS)
}
