package mesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// testMesh returns a two-triangle mesh with float32-exact coordinates
// so values survive the GLB float32 encoding unchanged.
func testMesh() *Mesh {
	return &Mesh{
		Vertices: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0.5, Y: 1.25, Z: 0},
			{X: 0.5, Y: 0.5, Z: -2},
		},
		Faces: [][3]int{{0, 1, 2}, {1, 3, 2}},
	}
}

func TestGLBRoundTrip(t *testing.T) {
	m := testMesh()
	file := filepath.Join(t.TempDir(), "plain.glb")
	require.NoError(t, WriteGLB(file, m))

	got, err := ReadGLB(file)
	require.NoError(t, err)
	assert.Equal(t, m.Vertices, got.Vertices)
	assert.Equal(t, m.Faces, got.Faces)
	assert.Nil(t, got.FaceColors)
}

func TestGLBRoundTripColored(t *testing.T) {
	m := testMesh()
	m.FaceColors = [][4]uint8{
		{230, 25, 75, 255},
		{60, 180, 75, 255},
	}
	file := filepath.Join(t.TempDir(), "colored.glb")
	require.NoError(t, WriteGLB(file, m))

	got, err := ReadGLB(file)
	require.NoError(t, err)
	require.Equal(t, len(m.Faces), got.NumFaces())
	assert.Equal(t, m.FaceColors, got.FaceColors)

	// Colored export unshares vertices, so compare per-corner positions
	for i, f := range m.Faces {
		for c := 0; c < 3; c++ {
			want := m.Vertices[f[c]]
			have := got.Vertices[got.Faces[i][c]]
			assert.Equal(t, want, have, "face %d corner %d", i, c)
		}
	}
	assert.Equal(t, 3*len(m.Faces), got.NumVertices())
}

func TestReadFileDispatch(t *testing.T) {
	_, err := ReadFile("model.stl")
	assert.Error(t, err)
	err = WriteFile("model.obj", testMesh())
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "mesh.glb")
	require.NoError(t, WriteFile(file, testMesh()))
	m, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumFaces())
}

func TestReadGLBRejectsGarbage(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.glb")
	require.NoError(t, os.WriteFile(file, []byte("not a glb at all"), 0644))
	_, err := ReadGLB(file)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	m := testMesh()
	assert.NoError(t, m.Validate())

	m.Faces = append(m.Faces, [3]int{0, 1, 9})
	assert.Error(t, m.Validate())

	m = testMesh()
	m.FaceColors = [][4]uint8{{1, 2, 3, 4}}
	assert.Error(t, m.Validate())
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(testMesh())
	assert.Equal(t, 4, s.NumVertices)
	assert.Equal(t, 2, s.NumFaces)
	assert.False(t, s.Colored)
	assert.Equal(t, r3.Vec{X: 0, Y: 0, Z: -2}, s.Min)
	assert.Equal(t, r3.Vec{X: 1, Y: 1.25, Z: 0}, s.Max)
	assert.InDelta(t, 0.5, s.Centroid.X, 1e-12)
	assert.InDelta(t, 0.4375, s.Centroid.Y, 1e-12)
	assert.InDelta(t, -0.5, s.Centroid.Z, 1e-12)
}
