// Package palette holds the fixed color table used to paint semantic
// part labels, cycling through the table by label index.
package palette

import "fmt"

// Colors is the set of visually distinct colors from
// https://sashamaps.net/docs/resources/20-colors/, in the order the
// dataset visualizations assign them to part-label indices.
var Colors = []string{
	"#e6194B",
	"#3cb44b",
	"#ffe119",
	"#4363d8",
	"#f58231",
	"#911eb4",
	"#42d4f4",
	"#f032e6",
	"#bfef45",
	"#fabed4",
	"#469990",
	"#dcbeff",
	"#9A6324",
	"#fffac8",
	"#800000",
	"#aaffc3",
	"#808000",
	"#ffd8b1",
	"#000075",
	"#a9a9a9",
	"#ffffff",
	"#000000",
}

// RGBA is one 8-bit-per-channel color with straight alpha.
type RGBA [4]uint8

// Len returns the number of palette entries.
func Len() int {
	return len(Colors)
}

// Hex returns the hex string for label index i, cycling through the
// palette.
func Hex(i int) string {
	return Colors[i%len(Colors)]
}

// Color returns the palette entry for label index i, cycling through
// the palette, with alpha 255.
func Color(i int) RGBA {
	r, g, b, err := Hex2RGB(Colors[i%len(Colors)])
	if err != nil {
		// The table above is static and valid
		panic(err)
	}
	return RGBA{r, g, b, 255}
}

// Hex2RGB decodes a 6-digit hex color, with or without a leading '#'.
func Hex2RGB(s string) (r, g, b uint8, err error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("hex color %q: want 6 hex digits", s)
	}
	var bytes [3]uint8
	for i := 0; i < 3; i++ {
		hi, err1 := hexDigit(s[2*i])
		lo, err2 := hexDigit(s[2*i+1])
		if err1 != nil {
			return 0, 0, 0, fmt.Errorf("hex color %q: %w", s, err1)
		}
		if err2 != nil {
			return 0, 0, 0, fmt.Errorf("hex color %q: %w", s, err2)
		}
		bytes[i] = hi<<4 | lo
	}
	return bytes[0], bytes[1], bytes[2], nil
}

func hexDigit(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("invalid hex digit %q", c)
}
