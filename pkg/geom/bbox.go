package geom

// BoundingBox is an axis-aligned box enclosing a point set.
// Degenerate boxes (equal min and max on one or more axes) are valid.
type BoundingBox struct {
	Min, Max Vec3
}

// BoundsOf computes the axis-aligned bounding box of points.
// ok is false when points is empty; a box of zero points is undefined.
func BoundsOf(points []Vec3) (box BoundingBox, ok bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}

	box.Min = points[0]
	box.Max = points[0]
	for _, p := range points[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Min.Z = min(box.Min.Z, p.Z)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
		box.Max.Z = max(box.Max.Z, p.Z)
	}
	return box, true
}

// Extent returns the per-axis size of the box.
func (b BoundingBox) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b BoundingBox) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Contains reports whether p lies inside the box expanded by eps on all sides.
func (b BoundingBox) Contains(p Vec3, eps float64) bool {
	return p.X >= b.Min.X-eps && p.X <= b.Max.X+eps &&
		p.Y >= b.Min.Y-eps && p.Y <= b.Max.Y+eps &&
		p.Z >= b.Min.Z-eps && p.Z <= b.Max.Z+eps
}
