package colorize

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/partviz/partviz/dataset"
	"github.com/partviz/partviz/mesh"
	"github.com/partviz/partviz/palette"
)

// fixture writes a mesh and ground truth for each uid and returns the
// populated directories plus the matching label set.
func fixture(t *testing.T, gtByUID map[string][]int64) (ls *dataset.LabelSet, meshDir, gtDir string) {
	t.Helper()
	base := t.TempDir()
	meshDir = filepath.Join(base, "mesh")
	gtDir = filepath.Join(base, "gt")
	require.NoError(t, os.MkdirAll(meshDir, 0755))
	require.NoError(t, os.MkdirAll(gtDir, 0755))

	var entries []string
	for uid, gt := range gtByUID {
		m := &mesh.Mesh{
			Vertices: []r3.Vec{
				{X: 0, Y: 0, Z: 0},
				{X: 1, Y: 0, Z: 0},
				{X: 1, Y: 1, Z: 0},
				{X: 0, Y: 1, Z: 0},
			},
			Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
		}
		require.NoError(t, mesh.WriteFile(filepath.Join(meshDir, uid+".glb"), m))
		require.NoError(t, dataset.WriteSemanticGT(filepath.Join(gtDir, uid+".npy"), gt))
		entries = append(entries, `"`+uid+`": ["a", "b"]`)
	}
	doc := `{"cat": {` + strings.Join(entries, ", ") + `}}`
	ls, err := dataset.DecodeLabelSet(strings.NewReader(doc))
	require.NoError(t, err)
	return ls, meshDir, gtDir
}

func TestBatchColorsEveryUID(t *testing.T) {
	ls, meshDir, gtDir := fixture(t, map[string][]int64{
		"id1": {0, 1},
		"id2": {2, 2},
	})
	outDir := filepath.Join(t.TempDir(), "colored")
	b := &Batch{MeshDir: meshDir, GTDir: gtDir, OutDir: outDir, Workers: 2}

	summary, err := b.Run(ls)
	require.NoError(t, err)
	require.NoError(t, summary.Err())
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 0, summary.Failed)
	assert.False(t, summary.Skipped)

	names, err := filepath.Glob(filepath.Join(outDir, "*.glb"))
	require.NoError(t, err)
	assert.Equal(t, 2, len(names))

	m, err := mesh.ReadFile(filepath.Join(outDir, "id1.glb"))
	require.NoError(t, err)
	require.Equal(t, 2, m.NumFaces())
	assert.Equal(t, [4]uint8(palette.Color(0)), m.FaceColors[0])
	assert.Equal(t, [4]uint8(palette.Color(1)), m.FaceColors[1])

	var man Manifest
	data, err := os.ReadFile(filepath.Join(outDir, ManifestName))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &man))
	assert.Equal(t, 2, man.Total)
	assert.Equal(t, 0, man.Failed)
}

func TestBatchSkipsExistingOutputDir(t *testing.T) {
	ls, _, _ := fixture(t, map[string][]int64{"id1": {0, 1}})
	outDir := t.TempDir() // exists already

	// Mesh and GT dirs deliberately do not exist: a skipped batch must
	// not load anything
	b := &Batch{MeshDir: "/nonexistent/mesh", GTDir: "/nonexistent/gt", OutDir: outDir}
	summary, err := b.Run(ls)
	require.NoError(t, err)
	assert.True(t, summary.Skipped)
	assert.Equal(t, 0, summary.Total)

	// No filesystem changes either
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBatchCollectsPerUIDFailures(t *testing.T) {
	ls, meshDir, gtDir := fixture(t, map[string][]int64{
		"good": {0, 1},
		"bad":  {0, 1, 2}, // three labels for a two-face mesh
	})
	outDir := filepath.Join(t.TempDir(), "colored")
	b := &Batch{MeshDir: meshDir, GTDir: gtDir, OutDir: outDir}

	summary, err := b.Run(ls)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Failed)
	assert.Error(t, summary.Err())

	// The good mesh was still written
	_, err = os.Stat(filepath.Join(outDir, "good.glb"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "bad.glb"))
	assert.True(t, os.IsNotExist(err))

	var man Manifest
	data, err := os.ReadFile(filepath.Join(outDir, ManifestName))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &man))
	assert.Equal(t, 1, man.Failed)
	assert.Contains(t, man.Failures, "bad")
}

func TestBatchMissingInputFails(t *testing.T) {
	ls, meshDir, gtDir := fixture(t, map[string][]int64{"id1": {0, 1}})
	require.NoError(t, os.Remove(filepath.Join(gtDir, "id1.npy")))
	outDir := filepath.Join(t.TempDir(), "colored")
	b := &Batch{MeshDir: meshDir, GTDir: gtDir, OutDir: outDir}

	summary, err := b.Run(ls)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Error(t, summary.Err())
}
