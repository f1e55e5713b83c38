// Package export implements the vertex-to-show pipeline: selecting the
// vertices still referenced by a polyhedron's faces, normalizing them into
// the target flight volume, synthesizing stationary trajectories, and
// packaging the result as a .skyc show archive.
package export

import (
	"fmt"

	"github.com/Faultbox/skyshow/pkg/geom"
)

// Selection is the subset of a polyhedron's vertices referenced by its faces.
type Selection struct {
	// Vertices is the compacted vertex list, ordered by original index.
	Vertices []geom.Vec3
	// IndexMap maps an original vertex index to its compacted index.
	// Only referenced vertices have entries.
	IndexMap map[int]int
}

// Select computes the vertices actually referenced by faces, producing a
// compacted vertex list and the old-to-new index remap. Face removal in the
// viewer can leave vertices unreferenced; those are dropped here so the show
// only contains drones that belong to a visible face.
//
// When faces is empty the whole vertex list is kept unchanged. That is the
// viewer's vertices-only mode, where there is no face data to filter by.
func Select(vertices []geom.Vec3, faces [][]int) (Selection, error) {
	if len(faces) == 0 {
		sel := Selection{
			Vertices: append([]geom.Vec3(nil), vertices...),
			IndexMap: make(map[int]int, len(vertices)),
		}
		for i := range vertices {
			sel.IndexMap[i] = i
		}
		return sel, nil
	}

	used := make([]bool, len(vertices))
	for fi, face := range faces {
		for _, vi := range face {
			if vi < 0 || vi >= len(vertices) {
				return Selection{}, fmt.Errorf("face %d references vertex %d of %d: %w",
					fi, vi, len(vertices), ErrInvalidIndex)
			}
			used[vi] = true
		}
	}

	sel := Selection{IndexMap: make(map[int]int)}
	for i, u := range used {
		if u {
			sel.IndexMap[i] = len(sel.Vertices)
			sel.Vertices = append(sel.Vertices, vertices[i])
		}
	}
	return sel, nil
}
