package colorspace

import "math"

// normalizeHue reduces an angle in degrees to [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360
	if h >= 360 {
		h = 0
	}
	return h
}

// hueChroma returns the hue shared by HSL, HSV and HWB together with the
// extremes of the channels. Zero chroma has hue 0.
func hueChroma(c RGB) (h, min, max float64) {
	min = math.Min(c.R, math.Min(c.G, c.B))
	max = math.Max(c.R, math.Max(c.G, c.B))
	delta := max - min
	if delta == 0 {
		return 0, min, max
	}

	switch max {
	case c.R:
		h = (c.G - c.B) / delta
	case c.G:
		h = 2 + (c.B-c.R)/delta
	default:
		h = 4 + (c.R-c.G)/delta
	}
	return normalizeHue(h * 60), min, max
}

// hueRGB returns the fully saturated color at hue h with lightness 0.5.
func hueRGB(h float64) (r, g, b float64) {
	h = normalizeHue(h) / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	switch {
	case h < 1:
		return 1, x, 0
	case h < 2:
		return x, 1, 0
	case h < 3:
		return 0, 1, x
	case h < 4:
		return 0, x, 1
	case h < 5:
		return x, 0, 1
	default:
		return 1, 0, x
	}
}

func rgbToHSL(c RGB) HSL {
	h, min, max := hueChroma(c)
	l := (min + max) / 2

	var s float64
	switch {
	case max == min:
		s = 0
	case l <= 0.5:
		s = (max - min) / (max + min)
	default:
		s = (max - min) / (2 - max - min)
	}

	return HSL{H: h, S: s, L: l, Alpha: c.Alpha}
}

func hslToRGB(c HSL) RGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	r, g, b := hueRGB(c.H)
	m := c.L - chroma/2
	return RGB{
		R:     r*chroma + m,
		G:     g*chroma + m,
		B:     b*chroma + m,
		Alpha: c.Alpha,
	}
}

func rgbToHSV(c RGB) HSV {
	h, min, max := hueChroma(c)

	var s float64
	if max != 0 {
		s = (max - min) / max
	}

	return HSV{H: h, S: s, V: max, Alpha: c.Alpha}
}

func hsvToRGB(c HSV) RGB {
	chroma := c.V * c.S
	r, g, b := hueRGB(c.H)
	m := c.V - chroma
	return RGB{
		R:     r*chroma + m,
		G:     g*chroma + m,
		B:     b*chroma + m,
		Alpha: c.Alpha,
	}
}

func rgbToHWB(c RGB) HWB {
	h, min, max := hueChroma(c)
	return HWB{H: h, W: min, B: 1 - max, Alpha: c.Alpha}
}

// hwbToRGB follows CSS Color 4: whiteness and blackness summing to 1 or more
// give the gray w/(w+b).
func hwbToRGB(c HWB) RGB {
	if c.W+c.B >= 1 {
		gray := c.W / (c.W + c.B)
		return RGB{R: gray, G: gray, B: gray, Alpha: c.Alpha}
	}

	r, g, b := hueRGB(c.H)
	scale := 1 - c.W - c.B
	return RGB{
		R:     r*scale + c.W,
		G:     g*scale + c.W,
		B:     b*scale + c.W,
		Alpha: c.Alpha,
	}
}

// rgbToCMYK maps pure black to C=M=Y=0, K=1.
func rgbToCMYK(c RGB) CMYK {
	k := 1 - math.Max(c.R, math.Max(c.G, c.B))
	if k == 1 {
		return CMYK{K: 1, Alpha: c.Alpha}
	}

	return CMYK{
		C:     (1 - c.R - k) / (1 - k),
		M:     (1 - c.G - k) / (1 - k),
		Y:     (1 - c.B - k) / (1 - k),
		K:     k,
		Alpha: c.Alpha,
	}
}

func cmykToRGB(c CMYK) RGB {
	return RGB{
		R:     (1 - c.C) * (1 - c.K),
		G:     (1 - c.M) * (1 - c.K),
		B:     (1 - c.Y) * (1 - c.K),
		Alpha: c.Alpha,
	}
}
