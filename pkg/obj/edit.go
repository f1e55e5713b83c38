package obj

import (
	"sort"

	"github.com/Faultbox/skyshow/pkg/geom"
)

// RemoveFaces removes faces by index. Duplicate and out-of-range indices
// are ignored. Returns the number of faces removed.
func (m *Mesh) RemoveFaces(indices []int) int {
	seen := make(map[int]bool, len(indices))
	var valid []int
	for _, idx := range indices {
		if idx >= 0 && idx < len(m.Faces) && !seen[idx] {
			seen[idx] = true
			valid = append(valid, idx)
		}
	}

	// Delete highest-first so earlier indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(valid)))
	for _, idx := range valid {
		m.Faces = append(m.Faces[:idx], m.Faces[idx+1:]...)
	}
	return len(valid)
}

// RemoveFacesWhere removes every face for which pred returns true.
// Returns the number of faces removed.
func (m *Mesh) RemoveFacesWhere(pred func(i int, face []int) bool) int {
	var kept [][]int
	removed := 0
	for i, face := range m.Faces {
		if pred(i, face) {
			removed++
			continue
		}
		kept = append(kept, face)
	}
	m.Faces = kept
	return removed
}

// RemoveUnusedVertices drops vertices not referenced by any face and
// reindexes the faces. Returns the number of vertices removed. A mesh with
// no faces is left untouched.
func (m *Mesh) RemoveUnusedVertices() int {
	if len(m.Faces) == 0 {
		return 0
	}

	used := make([]bool, len(m.Vertices))
	for _, face := range m.Faces {
		for _, idx := range face {
			used[idx] = true
		}
	}

	remap := make([]int, len(m.Vertices))
	var kept []geom.Vec3
	for i, u := range used {
		if u {
			remap[i] = len(kept)
			kept = append(kept, m.Vertices[i])
		}
	}

	for _, face := range m.Faces {
		for j, idx := range face {
			face[j] = remap[idx]
		}
	}

	removed := len(m.Vertices) - len(kept)
	m.Vertices = kept
	return removed
}

// Stats summarizes a mesh for inspection.
type Stats struct {
	VertexCount int
	FaceCount   int
	FaceArity   map[int]int // vertices-per-face histogram
	Bounds      geom.BoundingBox
	HasBounds   bool
}

// Info computes mesh statistics.
func (m *Mesh) Info() Stats {
	s := Stats{
		VertexCount: len(m.Vertices),
		FaceCount:   len(m.Faces),
		FaceArity:   make(map[int]int),
	}
	for _, face := range m.Faces {
		s.FaceArity[len(face)]++
	}
	s.Bounds, s.HasBounds = geom.BoundsOf(m.Vertices)
	return s
}
