package skyc

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Validation limits stamped into every show. Matches the limits the
// Skybrush player applies to generic outdoor shows.
const (
	maxAccelerationXY = 4.0
	maxAccelerationZ  = 4.0
	maxAltitude       = 150.0
	maxVelocityXY     = 10.0
	maxVelocityZ      = 2.0
	minDistance       = 3.0
	minNavAltitude    = 2.5
)

// defaultLightsData is a constant white lights program.
const defaultLightsData = "B4wlAAwK////"

type refDoc struct {
	Ref string `json:"$ref"`
}

type showDoc struct {
	Version  int `json:"version"`
	Settings struct {
		Cues       refDoc        `json:"cues"`
		Validation validationDoc `json:"validation"`
	} `json:"settings"`
	Swarm struct {
		Drones []droneDoc `json:"drones"`
	} `json:"swarm"`
	Environment struct {
		Type string `json:"type"`
	} `json:"environment"`
	Meta  metaDoc  `json:"meta"`
	Media struct{} `json:"media"`
}

type validationDoc struct {
	MaxAccelerationXY float64 `json:"maxAccelerationXY"`
	MaxAccelerationZ  float64 `json:"maxAccelerationZ"`
	MaxAltitude       float64 `json:"maxAltitude"`
	MaxVelocityXY     float64 `json:"maxVelocityXY"`
	MaxVelocityZ      float64 `json:"maxVelocityZ"`
	MinDistance       float64 `json:"minDistance"`
	MinNavAltitude    float64 `json:"minNavAltitude"`
}

type droneDoc struct {
	Type     string `json:"type"`
	Settings struct {
		Trajectory refDoc     `json:"trajectory"`
		Lights     refDoc     `json:"lights"`
		Home       [3]float64 `json:"home"`
		LandAt     [3]float64 `json:"landAt"`
		Name       string     `json:"name"`
	} `json:"settings"`
}

type metaDoc struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Segments struct {
		Takeoff [2]float64 `json:"takeoff"`
		Show    [2]float64 `json:"show"`
		Landing [2]float64 `json:"landing"`
	} `json:"segments"`
}

type cuesDoc struct {
	Version int       `json:"version"`
	Items   []cueItem `json:"items"`
}

type cueItem struct {
	Time float64 `json:"time"`
	Name string  `json:"name"`
}

type trajectoryDoc struct {
	Version int               `json:"version"`
	Points  []trajectoryPoint `json:"points"`
}

// trajectoryPoint marshals as [t, [x, y, z], [[cx, cy, cz]]]: timestamp,
// position, and one Bezier control point. The control point equals the
// position, which makes the segment to the next point a straight line.
type trajectoryPoint struct {
	T       float64
	Pos     [3]float64
	Control [3]float64
}

func (p trajectoryPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.T, p.Pos, [][3]float64{p.Control}})
}

type lightsDoc struct {
	Version int    `json:"version"`
	Data    string `json:"data"`
}

// Write creates the archive at path, replacing any existing file. The
// archive is assembled in a temp file in the target directory and renamed
// into place only once complete, so a failed write never leaves a partial
// or corrupt file at path.
func Write(path string, show *Show) error {
	if err := validate(show); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".skyc-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := writeArchive(tmp, show); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming archive into place: %w", err)
	}
	tmp = nil
	return nil
}

func writeArchive(f *os.File, show *Show) error {
	zw := zip.NewWriter(f)

	if err := writeJSON(zw, "show.json", buildShowDoc(show)); err != nil {
		return err
	}
	if err := writeJSON(zw, "cues.json", buildCuesDoc(show)); err != nil {
		return err
	}

	// One trajectory document at a time; hover trajectories are expanded
	// here rather than held in memory for the whole swarm.
	for i, d := range show.Drones {
		base := fmt.Sprintf("drones/Drone %d", i+1)
		if err := writeJSON(zw, base+"/trajectory.json", buildTrajectoryDoc(show, d)); err != nil {
			return err
		}
		lights := lightsDoc{Version: 1, Data: defaultLightsData}
		if err := writeJSON(zw, base+"/lights.json", lights); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

func buildShowDoc(show *Show) showDoc {
	var doc showDoc
	doc.Version = 1
	doc.Settings.Cues = refDoc{Ref: "./cues.json"}
	doc.Settings.Validation = validationDoc{
		MaxAccelerationXY: maxAccelerationXY,
		MaxAccelerationZ:  maxAccelerationZ,
		MaxAltitude:       maxAltitude,
		MaxVelocityXY:     maxVelocityXY,
		MaxVelocityZ:      maxVelocityZ,
		MinDistance:       minDistance,
		MinNavAltitude:    minNavAltitude,
	}
	doc.Environment.Type = "outdoor"

	id := show.ID
	if id == "" {
		id = uuid.NewString()
	}
	doc.Meta.ID = id
	doc.Meta.Title = show.Title
	doc.Meta.Segments.Takeoff = [2]float64{0, 0}
	doc.Meta.Segments.Show = [2]float64{0, show.Duration}
	doc.Meta.Segments.Landing = [2]float64{show.Duration, show.Duration}

	doc.Swarm.Drones = make([]droneDoc, len(show.Drones))
	for i, d := range show.Drones {
		var dd droneDoc
		dd.Type = "generic"
		dd.Settings.Trajectory = refDoc{Ref: fmt.Sprintf("./drones/Drone %d/trajectory.json#", i+1)}
		dd.Settings.Lights = refDoc{Ref: fmt.Sprintf("./drones/Drone %d/lights.json#", i+1)}
		dd.Settings.Home = d.Home
		dd.Settings.LandAt = d.Home
		dd.Settings.Name = d.Name
		doc.Swarm.Drones[i] = dd
	}
	return doc
}

func buildCuesDoc(show *Show) cuesDoc {
	return cuesDoc{
		Version: 1,
		Items: []cueItem{
			{Time: 0, Name: fmt.Sprintf("at %s", show.Title)},
			{Time: show.Duration, Name: fmt.Sprintf("%s ends", show.Title)},
		},
	}
}

func buildTrajectoryDoc(show *Show, d Drone) trajectoryDoc {
	doc := trajectoryDoc{Version: 1}
	if d.Path != nil {
		doc.Points = make([]trajectoryPoint, len(d.Path))
		for i, k := range d.Path {
			doc.Points[i] = trajectoryPoint{T: k.T, Pos: k.Pos, Control: k.Pos}
		}
		return doc
	}

	// Stationary drone: hold Home for FrameCount frames.
	dt := 1 / show.FPS
	doc.Points = make([]trajectoryPoint, show.FrameCount)
	for i := range doc.Points {
		doc.Points[i] = trajectoryPoint{T: float64(i) * dt, Pos: d.Home, Control: d.Home}
	}
	return doc
}

func writeJSON(zw *zip.Writer, name string, v any) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return nil
}

func validate(show *Show) error {
	if !finite(show.FPS) || !finite(show.Duration) {
		return fmt.Errorf("show timing: %w", ErrNonFinite)
	}
	for i, d := range show.Drones {
		if !finiteVec(d.Home) {
			return fmt.Errorf("drone %d home: %w", i+1, ErrNonFinite)
		}
		for j, k := range d.Path {
			if !finite(k.T) || !finiteVec(k.Pos) {
				return fmt.Errorf("drone %d keyframe %d: %w", i+1, j, ErrNonFinite)
			}
		}
	}
	return nil
}

func finiteVec(v [3]float64) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
