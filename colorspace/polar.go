package colorspace

import "math"

// toPolar returns chroma and hue in degrees of a Cartesian chroma plane.
// atan2(0, 0) is 0, so achromatic colors get hue 0.
func toPolar(a, b float64) (c, h float64) {
	return math.Hypot(a, b), normalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}

func fromPolar(c, h float64) (a, b float64) {
	rad := normalizeHue(h) * math.Pi / 180
	return c * math.Cos(rad), c * math.Sin(rad)
}

func labToLCH(c LAB) LCH {
	chroma, h := toPolar(c.A, c.B)
	return LCH{L: c.L, C: chroma, H: h, Alpha: c.Alpha}
}

func lchToLAB(c LCH) LAB {
	a, b := fromPolar(c.C, c.H)
	return LAB{L: c.L, A: a, B: b, Alpha: c.Alpha}
}

func luvToHCL(c LUV) HCL {
	chroma, h := toPolar(c.U, c.V)
	return HCL{H: h, C: chroma, L: c.L, Alpha: c.Alpha}
}

func hclToLUV(c HCL) LUV {
	u, v := fromPolar(c.C, c.H)
	return LUV{L: c.L, U: u, V: v, Alpha: c.Alpha}
}

func oklabToOklch(c Oklab) Oklch {
	chroma, h := toPolar(c.A, c.B)
	return Oklch{L: c.L, C: chroma, H: h, Alpha: c.Alpha}
}

func oklchToOklab(c Oklch) Oklab {
	a, b := fromPolar(c.C, c.H)
	return Oklab{L: c.L, A: a, B: b, Alpha: c.Alpha}
}
