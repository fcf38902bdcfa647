package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetParameters(t *testing.T) {
	ip := NewDatasetParameters()
	assert.Equal(t, "yhyang-myron/PartObjaverse-Tiny", ip.RepoID)
	assert.Equal(t, "PartObjaverse-Tiny_mesh", ip.MeshDir)
	assert.Equal(t, 0, ip.Workers)

	data := []byte(`
Title: "Custom Run"
RepoID: someone/else
Workers: 4
`)
	require.NoError(t, ip.Parse(data))
	assert.Equal(t, "Custom Run", ip.Title)
	assert.Equal(t, "someone/else", ip.RepoID)
	assert.Equal(t, 4, ip.Workers)
	// Fields absent from the document keep their defaults
	assert.Equal(t, "PartObjaverse-Tiny_semantic.json", ip.LabelFile)

	assert.Error(t, ip.Parse([]byte("Workers: [not, an, int]")))
}
