package export

import "github.com/Faultbox/skyshow/pkg/geom"

// Agent is one aerial vehicle in the show.
type Agent struct {
	ID         int
	Trajectory Trajectory
}

// ShowDocument is the assembled in-memory show: timing parameters plus the
// ordered agent set. It is built once per export and never mutated.
type ShowDocument struct {
	Title           string
	FPS             int
	FrameCount      int
	DurationSeconds float64
	Agents          []Agent
}

// BuildShow assembles the show document from normalized points. Agent IDs
// are zero-based and equal to the point's position in the input, so they
// match the order produced by the selector. Returns ErrNoAgents when
// points is empty; a drone show with no drones is not a meaningful output.
func BuildShow(points []geom.Vec3, title string, fps, frameCount int) (*ShowDocument, error) {
	if len(points) == 0 {
		return nil, ErrNoAgents
	}

	doc := &ShowDocument{
		Title:           title,
		FPS:             fps,
		FrameCount:      frameCount,
		DurationSeconds: float64(frameCount) / float64(fps),
		Agents:          make([]Agent, len(points)),
	}
	for i, p := range points {
		doc.Agents[i] = Agent{ID: i, Trajectory: Hover(p, fps, frameCount)}
	}
	return doc, nil
}
