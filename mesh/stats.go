package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Stats summarizes a mesh's size and extent.
type Stats struct {
	NumVertices int
	NumFaces    int
	Min, Max    r3.Vec // axis-aligned bounding box
	Centroid    r3.Vec // mean of the vertex positions
	Colored     bool
}

// ComputeStats returns counts, the bounding box and the vertex
// centroid of m. The bounding box of an empty mesh is the zero box.
func ComputeStats(m *Mesh) (s Stats) {
	s.NumVertices = len(m.Vertices)
	s.NumFaces = len(m.Faces)
	s.Colored = m.FaceColors != nil
	if len(m.Vertices) == 0 {
		return
	}
	xs := make([]float64, len(m.Vertices))
	ys := make([]float64, len(m.Vertices))
	zs := make([]float64, len(m.Vertices))
	for i, v := range m.Vertices {
		xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
	}
	s.Min = r3.Vec{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)}
	s.Max = r3.Vec{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)}
	n := float64(len(m.Vertices))
	s.Centroid = r3.Vec{
		X: floats.Sum(xs) / n,
		Y: floats.Sum(ys) / n,
		Z: floats.Sum(zs) / n,
	}
	return
}

// Print writes the stats in a human readable form.
func (s Stats) Print() {
	fmt.Printf("Vertices: %d\n", s.NumVertices)
	fmt.Printf("Faces: %d\n", s.NumFaces)
	fmt.Printf("Face colors: %v\n", s.Colored)
	fmt.Printf("Bounding Box:\nXMin/XMax = %8.5f, %8.5f\nYMin/YMax = %8.5f, %8.5f\nZMin/ZMax = %8.5f, %8.5f\n",
		s.Min.X, s.Max.X, s.Min.Y, s.Max.Y, s.Min.Z, s.Max.Z)
	fmt.Printf("Centroid = (%8.5f, %8.5f, %8.5f)\n", s.Centroid.X, s.Centroid.Y, s.Centroid.Z)
}
