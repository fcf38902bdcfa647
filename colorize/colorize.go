// Package colorize paints mesh faces by semantic part label and runs
// the batch pipeline that applies the coloring across the dataset.
package colorize

import (
	"fmt"

	"github.com/partviz/partviz/mesh"
	"github.com/partviz/partviz/palette"
)

// ColorFaces returns a copy of m with one RGBA color per face,
// assigned from the palette by the face's class index modulo the
// palette length. The input mesh is not modified. gt must hold
// exactly one non-negative label per face.
func ColorFaces(m *mesh.Mesh, gt []int64) (*mesh.Mesh, error) {
	if len(gt) != len(m.Faces) {
		return nil, fmt.Errorf("have %d labels for %d faces", len(gt), len(m.Faces))
	}
	for i, label := range gt {
		if label < 0 {
			return nil, fmt.Errorf("face %d: negative class index %d", i, label)
		}
	}
	out := m.Clone()
	out.FaceColors = make([][4]uint8, len(m.Faces))
	for i, label := range gt {
		out.FaceColors[i] = [4]uint8(palette.Color(int(label)))
	}
	return out, nil
}
