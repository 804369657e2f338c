package colorspace

import (
	"fmt"
	"math"
)

// VGA colors, as listed at
// https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
var ansi16Bytes = [16][3]uint8{
	{0x00, 0x00, 0x00}, // Black
	{0xAA, 0x00, 0x00}, // Red
	{0x00, 0xAA, 0x00}, // Green
	{0xAA, 0x55, 0x00}, // Yellow
	{0x00, 0x00, 0xAA}, // Blue
	{0xAA, 0x00, 0xAA}, // Magenta
	{0x00, 0xAA, 0xAA}, // Cyan
	{0xAA, 0xAA, 0xAA}, // White

	{0x55, 0x55, 0x55}, // Bright Black
	{0xFF, 0x55, 0x55}, // Bright Red
	{0x55, 0xFF, 0x55}, // Bright Green
	{0xFF, 0xFF, 0x55}, // Bright Yellow
	{0x55, 0x55, 0xFF}, // Bright Blue
	{0xFF, 0x55, 0xFF}, // Bright Magenta
	{0x55, 0xFF, 0xFF}, // Bright Cyan
	{0xFF, 0xFF, 0xFF}, // Bright White
}

// xterm color cube levels.
var cubeLevels = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// Palettes as opaque RGB, built once and never written afterwards.
var (
	ansi16Table  = buildAnsi16()
	ansi256Table = buildAnsi256()
)

func byteRGB(r, g, b uint8) RGB {
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, Alpha: 1}
}

func buildAnsi16() []RGB {
	res := make([]RGB, 0, len(ansi16Bytes))
	for _, c := range ansi16Bytes {
		res = append(res, byteRGB(c[0], c[1], c[2]))
	}
	return res
}

// buildAnsi256 lays out the base colors, the 6x6x6 cube at 16 + 36r + 6g + b
// and the 24 step gray ramp 8 + 10i.
func buildAnsi256() []RGB {
	res := make([]RGB, 0, 256)
	res = append(res, buildAnsi16()...)
	for i := range 216 {
		res = append(res, byteRGB(cubeLevels[i/36], cubeLevels[(i/6)%6], cubeLevels[i%6]))
	}
	for i := range 24 {
		gray := uint8(8 + 10*i)
		res = append(res, byteRGB(gray, gray, gray))
	}
	return res
}

// Ansi16RGB returns the opaque RGB of a 16 color palette entry.
func Ansi16RGB(code int) RGB {
	if code < 0 || code >= len(ansi16Table) {
		panic(fmt.Sprintf("colorspace: ansi16 code out of range: %d", code))
	}
	return ansi16Table[code]
}

// Ansi256RGB returns the opaque RGB of a 256 color palette entry.
func Ansi256RGB(code int) RGB {
	if code < 0 || code >= len(ansi256Table) {
		panic(fmt.Sprintf("colorspace: ansi256 code out of range: %d", code))
	}
	return ansi256Table[code]
}

// Ansi16Palette returns a copy of the 16 color palette.
func Ansi16Palette() []RGB {
	return append([]RGB(nil), ansi16Table...)
}

// Ansi256Palette returns a copy of the 256 color palette.
func Ansi256Palette() []RGB {
	return append([]RGB(nil), ansi256Table...)
}

// NearestIndex returns the index of the entry of table closest to c by
// squared Euclidean distance over R, G and B. Alpha is ignored. Ties go to
// the lowest index, and a NaN channel matches entry 0. An empty table
// returns -1.
func NearestIndex(c RGB, table []RGB) int {
	if len(table) == 0 {
		return -1
	}

	ret, bestSum := 0, math.Inf(1)
	for i, v := range table {
		dr := c.R - v.R
		dg := c.G - v.G
		db := c.B - v.B
		sum := dr*dr + dg*dg + db*db
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

func rgbToAnsi16(c RGB) Ansi16 {
	return Ansi16{Code: NearestIndex(c, ansi16Table), Alpha: c.Alpha}
}

func rgbToAnsi256(c RGB) Ansi256 {
	return Ansi256{Code: NearestIndex(c, ansi256Table), Alpha: c.Alpha}
}

func ansi16ToRGB(c Ansi16) RGB {
	res := Ansi16RGB(c.Code)
	res.Alpha = c.Alpha
	return res
}

func ansi256ToRGB(c Ansi256) RGB {
	res := Ansi256RGB(c.Code)
	res.Alpha = c.Alpha
	return res
}
