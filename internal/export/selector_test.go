package export

import (
	"errors"
	"testing"

	"github.com/Faultbox/skyshow/pkg/geom"
)

func testVertices(n int) []geom.Vec3 {
	out := make([]geom.Vec3, n)
	for i := range out {
		out[i] = geom.Vec3{X: float64(i), Y: float64(i * 2), Z: float64(i * 3)}
	}
	return out
}

func TestSelectSubset(t *testing.T) {
	vertices := testVertices(6)
	faces := [][]int{{4, 1}, {1, 3}}

	sel, err := Select(vertices, faces)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	// Compacted list keeps original vertex order.
	want := []geom.Vec3{vertices[1], vertices[3], vertices[4]}
	if len(sel.Vertices) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(sel.Vertices), len(want))
	}
	for i := range want {
		if sel.Vertices[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, sel.Vertices[i], want[i])
		}
	}

	wantMap := map[int]int{1: 0, 3: 1, 4: 2}
	if len(sel.IndexMap) != len(wantMap) {
		t.Fatalf("index map has %d entries, want %d", len(sel.IndexMap), len(wantMap))
	}
	for old, to := range wantMap {
		if sel.IndexMap[old] != to {
			t.Errorf("IndexMap[%d] = %d, want %d", old, sel.IndexMap[old], to)
		}
	}
}

func TestSelectEmptyFacesKeepsAll(t *testing.T) {
	vertices := testVertices(4)

	sel, err := Select(vertices, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(sel.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(sel.Vertices))
	}
	for i := range vertices {
		if sel.Vertices[i] != vertices[i] {
			t.Errorf("vertex %d = %v, want %v", i, sel.Vertices[i], vertices[i])
		}
		if sel.IndexMap[i] != i {
			t.Errorf("IndexMap[%d] = %d, want identity", i, sel.IndexMap[i])
		}
	}
}

func TestSelectInvalidIndex(t *testing.T) {
	vertices := testVertices(3)

	tests := []struct {
		name  string
		faces [][]int
	}{
		{"out of range", [][]int{{0, 1, 3}}},
		{"negative", [][]int{{0, -1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(vertices, tt.faces)
			if !errors.Is(err, ErrInvalidIndex) {
				t.Errorf("got %v, want ErrInvalidIndex", err)
			}
		})
	}
}

func TestSelectIdempotent(t *testing.T) {
	vertices := testVertices(8)
	faces := [][]int{{7, 0, 2}, {2, 5}, {0, 5, 7}}

	first, err := Select(vertices, faces)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	second, err := Select(vertices, faces)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if len(first.Vertices) != len(second.Vertices) {
		t.Fatalf("runs disagree on count: %d vs %d", len(first.Vertices), len(second.Vertices))
	}
	for i := range first.Vertices {
		if first.Vertices[i] != second.Vertices[i] {
			t.Errorf("vertex %d differs between runs", i)
		}
	}
	for old, to := range first.IndexMap {
		if second.IndexMap[old] != to {
			t.Errorf("IndexMap[%d] differs between runs", old)
		}
	}
}
