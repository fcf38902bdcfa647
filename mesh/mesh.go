// Package mesh provides the triangle mesh container used throughout
// the pipeline and readers/writers for the mesh file formats the
// dataset ships in.
package mesh

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh with optional per-face colors.
type Mesh struct {
	Vertices   []r3.Vec
	Faces      [][3]int
	FaceColors [][4]uint8 // nil, or one RGBA per face
}

// NumFaces returns the number of triangle faces.
func (m *Mesh) NumFaces() int {
	return len(m.Faces)
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int {
	return len(m.Vertices)
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: make([]r3.Vec, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Faces, m.Faces)
	if m.FaceColors != nil {
		out.FaceColors = make([][4]uint8, len(m.FaceColors))
		copy(out.FaceColors, m.FaceColors)
	}
	return out
}

// Validate checks internal consistency of the mesh indices and color
// array length.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d of %d", i, v, len(m.Vertices))
			}
		}
	}
	if m.FaceColors != nil && len(m.FaceColors) != len(m.Faces) {
		return fmt.Errorf("have %d face colors for %d faces", len(m.FaceColors), len(m.Faces))
	}
	return nil
}

// ReadFile reads a mesh file based on extension.
func ReadFile(filename string) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".glb":
		return ReadGLB(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// WriteFile writes a mesh file based on extension.
func WriteFile(filename string, m *Mesh) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".glb":
		return WriteGLB(filename, m)
	default:
		return fmt.Errorf("unsupported mesh format: %s", ext)
	}
}
