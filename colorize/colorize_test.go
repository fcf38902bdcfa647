package colorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/partviz/partviz/mesh"
	"github.com/partviz/partviz/palette"
)

func quadMesh() *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []r3.Vec{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

func TestColorFaces(t *testing.T) {
	m := quadMesh()
	gt := []int64{0, 5}
	colored, err := ColorFaces(m, gt)
	require.NoError(t, err)

	require.Equal(t, len(m.Faces), len(colored.FaceColors))
	assert.Equal(t, [4]uint8(palette.Color(0)), colored.FaceColors[0])
	assert.Equal(t, [4]uint8(palette.Color(5)), colored.FaceColors[1])
	for _, c := range colored.FaceColors {
		assert.Equal(t, uint8(255), c[3])
	}

	// Geometry is copied, not mutated
	assert.Equal(t, m.Vertices, colored.Vertices)
	assert.Equal(t, m.Faces, colored.Faces)
	assert.Nil(t, m.FaceColors)
}

func TestColorFacesCyclesPalette(t *testing.T) {
	m := quadMesh()
	gt := []int64{3, 3 + int64(palette.Len())}
	colored, err := ColorFaces(m, gt)
	require.NoError(t, err)
	// Labels 22 apart land on the same palette entry
	assert.Equal(t, colored.FaceColors[0], colored.FaceColors[1])
	assert.Equal(t, [4]uint8(palette.Color(3)), colored.FaceColors[0])
}

func TestColorFacesEqualLabelsEqualColors(t *testing.T) {
	m := quadMesh()
	colored, err := ColorFaces(m, []int64{7, 7})
	require.NoError(t, err)
	assert.Equal(t, colored.FaceColors[0], colored.FaceColors[1])
}

func TestColorFacesIdempotent(t *testing.T) {
	m := quadMesh()
	gt := []int64{1, 21}
	once, err := ColorFaces(m, gt)
	require.NoError(t, err)
	twice, err := ColorFaces(once, gt)
	require.NoError(t, err)
	assert.Equal(t, once.FaceColors, twice.FaceColors)
}

func TestColorFacesLengthMismatch(t *testing.T) {
	m := quadMesh()
	for _, gt := range [][]int64{nil, {1}, {1, 2, 3}} {
		colored, err := ColorFaces(m, gt)
		assert.Error(t, err)
		assert.Nil(t, colored)
	}
}

func TestColorFacesNegativeLabel(t *testing.T) {
	m := quadMesh()
	colored, err := ColorFaces(m, []int64{0, -1})
	assert.Error(t, err)
	assert.Nil(t, colored)
}
