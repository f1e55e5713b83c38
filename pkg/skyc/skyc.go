// Package skyc writes Skybrush-compatible .skyc show archives.
//
// A .skyc file is a zip container holding a show.json document, a cues.json
// with show timing markers, and per drone a trajectory.json and lights.json
// under drones/Drone N/.
package skyc

import "errors"

// ErrNonFinite is returned when show data contains a NaN or infinite
// number. JSON cannot encode those, so they are rejected before any bytes
// are written.
var ErrNonFinite = errors.New("non-finite value in show data")

// Keyframe is one timed sample of a drone trajectory.
type Keyframe struct {
	T   float64 // seconds from show start
	Pos [3]float64
}

// Drone is one vehicle in the show. A nil Path means the drone hovers at
// Home for the whole show; the writer expands the hover into FrameCount
// samples while streaming, one drone at a time.
type Drone struct {
	Name string
	Home [3]float64
	Path []Keyframe
}

// Show is the full content of a .skyc archive.
type Show struct {
	ID         string // generated when empty
	Title      string
	FPS        float64
	FrameCount int // frames per hover trajectory
	Duration   float64
	Drones     []Drone
}
