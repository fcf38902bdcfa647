package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Keys are deliberately not in lexical order: decoding must preserve
// source order, not sort.
const labelSetJSON = `{
	"Weapon": {
		"uidW1": ["blade", "handle"],
		"uidW2": ["barrel", "grip", "trigger"]
	},
	"Animal": {
		"uidA1": ["head", "body", "leg", "tail"]
	},
	"Robot": {
		"uidR1": ["torso"],
		"uidR2": ["arm", "wheel"],
		"uidR3": ["antenna"],
		"uidR4": ["track"],
		"uidR5": ["sensor"]
	}
}`

func TestDecodeLabelSetOrder(t *testing.T) {
	ls, err := DecodeLabelSet(strings.NewReader(labelSetJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"Weapon", "Animal", "Robot"}, ls.CategoryNames())
	assert.Equal(t, []string{"uidW1", "uidW2", "uidA1", "uidR1", "uidR2", "uidR3", "uidR4", "uidR5"},
		ls.FlatUIDs())
	assert.Equal(t, 8, ls.NumSamples())

	// Decoding the same document again yields the same order
	ls2, err := DecodeLabelSet(strings.NewReader(labelSetJSON))
	require.NoError(t, err)
	assert.Equal(t, ls.FlatUIDs(), ls2.FlatUIDs())
}

func TestLabelSetLookups(t *testing.T) {
	ls, err := DecodeLabelSet(strings.NewReader(labelSetJSON))
	require.NoError(t, err)

	labels, ok := ls.Labels("uidA1")
	require.True(t, ok)
	assert.Equal(t, []string{"head", "body", "leg", "tail"}, labels)

	_, ok = ls.Labels("nope")
	assert.False(t, ok)

	cat, ok := ls.Category("Robot")
	require.True(t, ok)
	assert.Equal(t, 5, len(cat.Samples))
	assert.Equal(t, "uidR2", cat.Samples[1].UID)

	_, ok = ls.Category("Vehicle")
	assert.False(t, ok)
}

func TestCategoryPaging(t *testing.T) {
	ls, err := DecodeLabelSet(strings.NewReader(labelSetJSON))
	require.NoError(t, err)

	robot, _ := ls.Category("Robot")
	assert.Equal(t, 2, robot.NumPages())
	page0 := robot.Page(0)
	require.Equal(t, 4, len(page0))
	assert.Equal(t, "uidR1", page0[0].UID)
	assert.Equal(t, "uidR4", page0[3].UID)
	page1 := robot.Page(1)
	require.Equal(t, 1, len(page1))
	assert.Equal(t, "uidR5", page1[0].UID)
	assert.Nil(t, robot.Page(2))
	assert.Nil(t, robot.Page(-1))

	animal, _ := ls.Category("Animal")
	assert.Equal(t, 1, animal.NumPages())
}

func TestDecodeLabelSetErrors(t *testing.T) {
	for _, bad := range []string{
		``,
		`[]`,
		`{"cat": ["uid"]}`,
		`{"cat": {"uid": "notalist"}}`,
		`{"cat": {"uid": ["a"]}, "cat2": {"uid": ["b"]}}`, // duplicate uid
		`{"cat": {"uid": ["a"]`,                           // truncated
	} {
		_, err := DecodeLabelSet(strings.NewReader(bad))
		assert.Error(t, err, "input %q", bad)
	}
}
