package export

import (
	"math"

	"github.com/Faultbox/skyshow/pkg/geom"
)

// Volume is the target flight volume agents are normalized into.
// XY bounds are shared by the X and Y axes; Z is altitude.
type Volume struct {
	XYMin, XYMax float64
	ZMin, ZMax   float64
}

// DefaultVolume is the standard safe flight volume: a 40x40 m square
// footprint with altitudes from 0 to 50 m.
var DefaultVolume = Volume{XYMin: -20, XYMax: 20, ZMin: 0, ZMax: 50}

// Transform maps points into a target volume, axis-wise out = in*scale + offset.
// X and Y share one uniform scale so the planar aspect ratio is preserved;
// Z scales independently because altitude has an asymmetric target range.
type Transform struct {
	ScaleXY float64
	ScaleZ  float64
	Offset  geom.Vec3
}

// ComputeTransform derives the transform that maps box into vol.
//
// The XY scale is the smallest span/extent ratio over the axes that have
// non-zero extent, so the scaled shape fits both target spans without
// distortion. If both XY extents are zero (a single point or a vertical
// line) no scaling is possible and ScaleXY is 1. The scaled shape is
// centered at the XY target midpoints.
//
// Z maps min.z to ZMin and max.z to ZMax; zero Z extent collapses every
// point to the target altitude midpoint (ScaleZ 0).
func ComputeTransform(box geom.BoundingBox, vol Volume) Transform {
	ext := box.Extent()
	spanXY := vol.XYMax - vol.XYMin

	scaleXY := 1.0
	switch {
	case ext.X > 0 && ext.Y > 0:
		scaleXY = math.Min(spanXY/ext.X, spanXY/ext.Y)
	case ext.X > 0:
		scaleXY = spanXY / ext.X
	case ext.Y > 0:
		scaleXY = spanXY / ext.Y
	}

	center := box.Center()
	midXY := (vol.XYMin + vol.XYMax) / 2

	var scaleZ, offsetZ float64
	if ext.Z > 0 {
		scaleZ = (vol.ZMax - vol.ZMin) / ext.Z
		offsetZ = vol.ZMin - box.Min.Z*scaleZ
	} else {
		offsetZ = (vol.ZMin + vol.ZMax) / 2
	}

	return Transform{
		ScaleXY: scaleXY,
		ScaleZ:  scaleZ,
		Offset: geom.Vec3{
			X: midXY - center.X*scaleXY,
			Y: midXY - center.Y*scaleXY,
			Z: offsetZ,
		},
	}
}

// Apply transforms points into a new slice; the input is not aliased.
func (t Transform) Apply(points []geom.Vec3) []geom.Vec3 {
	out := make([]geom.Vec3, len(points))
	for i, p := range points {
		out[i] = geom.Vec3{
			X: p.X*t.ScaleXY + t.Offset.X,
			Y: p.Y*t.ScaleXY + t.Offset.Y,
			Z: p.Z*t.ScaleZ + t.Offset.Z,
		}
	}
	return out
}

// Normalize computes the bounding box of points and maps them into vol.
// Returns ErrEmptyInput when there are no points.
func Normalize(points []geom.Vec3, vol Volume) ([]geom.Vec3, error) {
	box, ok := geom.BoundsOf(points)
	if !ok {
		return nil, ErrEmptyInput
	}
	return ComputeTransform(box, vol).Apply(points), nil
}
