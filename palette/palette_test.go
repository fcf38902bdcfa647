package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex2RGB(t *testing.T) {
	r, g, b, err := Hex2RGB("#e6194B")
	assert.NoError(t, err)
	assert.Equal(t, [3]uint8{230, 25, 75}, [3]uint8{r, g, b})

	// Leading '#' is optional
	r, g, b, err = Hex2RGB("e6194B")
	assert.NoError(t, err)
	assert.Equal(t, [3]uint8{230, 25, 75}, [3]uint8{r, g, b})

	r, g, b, err = Hex2RGB("000075")
	assert.NoError(t, err)
	assert.Equal(t, [3]uint8{0, 0, 117}, [3]uint8{r, g, b})

	r, g, b, err = Hex2RGB("#ffffff")
	assert.NoError(t, err)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	for _, bad := range []string{"", "#", "fff", "#fffff", "#fffffff", "zzzzzz", "#e6194G"} {
		_, _, _, err = Hex2RGB(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestPaletteTable(t *testing.T) {
	assert.Equal(t, 22, Len())
	seen := make(map[string]bool)
	for _, hex := range Colors {
		_, _, _, err := Hex2RGB(hex)
		assert.NoError(t, err)
		assert.False(t, seen[hex], "duplicate palette entry %s", hex)
		seen[hex] = true
	}
}

func TestColorCycles(t *testing.T) {
	assert.Equal(t, RGBA{230, 25, 75, 255}, Color(0))
	assert.Equal(t, RGBA{60, 180, 75, 255}, Color(1))
	assert.Equal(t, RGBA{0, 0, 0, 255}, Color(21))
	for i := 0; i < 100; i++ {
		assert.Equal(t, Color(i%Len()), Color(i))
	}
	assert.Equal(t, Hex(3), Hex(3+Len()))
}
