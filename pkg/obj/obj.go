// Package obj reads, edits, and writes Wavefront OBJ meshes.
//
// Only vertex positions (v) and faces (f) are interpreted; texture
// coordinates, normals, and other records are skipped. Faces hold
// zero-based vertex indices; OBJ's 1-based indexing is converted on load
// and save.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/skyshow/pkg/geom"
)

// Mesh is an OBJ mesh: vertex positions and polygonal faces.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    [][]int
}

// Load reads an OBJ mesh from a file.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	mesh, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return mesh, nil
}

// Parse reads an OBJ mesh from r. Face vertex references may use any of
// the v, v/vt, v/vt/vn, and v//vn forms; only the vertex index is kept.
// Negative (relative) indices resolve against the vertices seen so far.
func Parse(r io.Reader) (*Mesh, error) {
	mesh := &Mesh{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var v geom.Vec3
			var err error
			if v.X, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if v.Y, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if v.Z, err = strconv.ParseFloat(fields[3], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idxStr, _, _ := strings.Cut(ref, "/")
				idx, err := strconv.Atoi(idxStr)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex reference %q: %w", lineNo, ref, err)
				}
				if idx < 0 {
					idx = len(mesh.Vertices) + idx
				} else {
					idx--
				}
				if idx < 0 || idx >= len(mesh.Vertices) {
					return nil, fmt.Errorf("line %d: face references vertex %s of %d",
						lineNo, idxStr, len(mesh.Vertices))
				}
				face = append(face, idx)
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// Save writes the mesh to a file, creating parent directories as needed.
func (m *Mesh) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := m.Write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Write writes the mesh in OBJ text format.
func (m *Mesh) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Vertices: %d\n", len(m.Vertices))
	fmt.Fprintf(bw, "# Faces: %d\n\n", len(m.Faces))

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	bw.WriteByte('\n')

	for _, face := range m.Faces {
		bw.WriteString("f")
		for _, idx := range face {
			fmt.Fprintf(bw, " %d", idx+1)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
