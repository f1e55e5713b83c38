package export

import (
	"math"

	"github.com/Faultbox/skyshow/pkg/geom"
)

// SpeedLimits constrain per-segment speeds for moving trajectories, in m/s.
type SpeedLimits struct {
	Min    float64
	Max    float64
	Target float64
}

// DefaultSpeedLimits is the standard cruise envelope for path shows.
var DefaultSpeedLimits = SpeedLimits{Min: 2, Max: 6, Target: 4}

// ComputeTiming assigns a timestamp to every waypoint so that each segment
// is flown as close to the target speed as the limits allow. A segment
// flown at Target that would violate Min or Max is clamped to the nearest
// legal duration. Near-zero segments take no time. Returns the cumulative
// timestamps and the total duration.
func ComputeTiming(path []geom.Vec3, limits SpeedLimits) (times []float64, total float64) {
	if len(path) < 2 {
		return []float64{0}, 0
	}

	times = make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		dist := path[i].Distance(path[i-1])

		var dt float64
		if dist >= 1e-6 {
			atTarget := dist / limits.Target
			fastest := dist / limits.Max // shortest legal duration
			slowest := dist / limits.Min
			dt = math.Min(math.Max(atTarget, fastest), slowest)
		}
		times[i] = times[i-1] + dt
	}
	return times, times[len(times)-1]
}

// Resample returns path sampled at a fixed frame rate by linear
// interpolation between the timed waypoints. The last sample always falls
// exactly at the total duration on the final waypoint, even when the
// duration is not a whole number of frames. Paths shorter than two points
// pass through unchanged.
func Resample(path []geom.Vec3, times []float64, fps float64) ([]geom.Vec3, []float64) {
	if len(path) < 2 {
		return path, times
	}

	total := times[len(times)-1]
	frameTime := 1 / fps

	var out []geom.Vec3
	var outTimes []float64
	for i := 0; ; i++ {
		t := float64(i) * frameTime
		if t >= total {
			out = append(out, path[len(path)-1])
			outTimes = append(outTimes, total)
			break
		}
		out = append(out, interpolate(path, times, t))
		outTimes = append(outTimes, t)
	}
	return out, outTimes
}

// interpolate evaluates the piecewise-linear path at time t.
func interpolate(path []geom.Vec3, times []float64, t float64) geom.Vec3 {
	if t <= times[0] {
		return path[0]
	}
	for i := 1; i < len(times); i++ {
		if t > times[i] {
			continue
		}
		span := times[i] - times[i-1]
		if span <= 0 {
			return path[i]
		}
		frac := (t - times[i-1]) / span
		return path[i-1].Add(path[i].Sub(path[i-1]).Scale(frac))
	}
	return path[len(path)-1]
}
