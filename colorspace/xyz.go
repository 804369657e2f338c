package colorspace

import "math"

// D65 reference white, Y normalized to 1.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// CIE constants in their exact rational form.
const (
	cieE = 216.0 / 24389.0
	cieK = 24389.0 / 27.0
)

// u', v' chromaticity of the reference white.
var (
	whiteU = 4 * whiteX / (whiteX + 15*whiteY + 3*whiteZ)
	whiteV = 9 * whiteY / (whiteX + 15*whiteY + 3*whiteZ)
)

func linearRGBToXYZ(c LinearRGB) XYZ {
	return XYZ{
		X:     0.4124564*c.R + 0.3575761*c.G + 0.1804375*c.B,
		Y:     0.2126729*c.R + 0.7151522*c.G + 0.0721750*c.B,
		Z:     0.0193339*c.R + 0.1191920*c.G + 0.9503041*c.B,
		Alpha: c.Alpha,
	}
}

func xyzToLinearRGB(c XYZ) LinearRGB {
	return LinearRGB{
		R:     +3.2404542*c.X - 1.5371385*c.Y - 0.4985314*c.Z,
		G:     -0.9692660*c.X + 1.8760108*c.Y + 0.0415560*c.Z,
		B:     +0.0556434*c.X - 0.2040259*c.Y + 1.0572252*c.Z,
		Alpha: c.Alpha,
	}
}

// labCompress is the L*a*b* transfer function: a cube root above cieE and
// a line below it so the curve stays finite in slope at zero.
func labCompress(t float64) float64 {
	if t > cieE {
		return math.Cbrt(t)
	}
	return (cieK*t + 16) / 116
}

func labUncompress(ft float64) float64 {
	if ft3 := ft * ft * ft; ft3 > cieE {
		return ft3
	}
	return (116*ft - 16) / cieK
}

// lightnessToY inverts L* for both LAB and LUV.
func lightnessToY(l float64) float64 {
	if l > cieK*cieE {
		f := (l + 16) / 116
		return f * f * f
	}
	return l / cieK
}

func xyzToLAB(c XYZ) LAB {
	fx := labCompress(c.X / whiteX)
	fy := labCompress(c.Y / whiteY)
	fz := labCompress(c.Z / whiteZ)

	return LAB{
		L:     116*fy - 16,
		A:     500 * (fx - fy),
		B:     200 * (fy - fz),
		Alpha: c.Alpha,
	}
}

func labToXYZ(c LAB) XYZ {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	return XYZ{
		X:     labUncompress(fx) * whiteX,
		Y:     lightnessToY(c.L) * whiteY,
		Z:     labUncompress(fz) * whiteZ,
		Alpha: c.Alpha,
	}
}

// xyzToLUV treats a zero denominator (black) as having the chromaticity of
// the reference white, which gives u = v = 0.
func xyzToLUV(c XYZ) LUV {
	u, v := whiteU, whiteV
	if d := c.X + 15*c.Y + 3*c.Z; d != 0 {
		u = 4 * c.X / d
		v = 9 * c.Y / d
	}

	yr := c.Y / whiteY
	var l float64
	if yr > cieE {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = cieK * yr
	}

	return LUV{
		L:     l,
		U:     13 * l * (u - whiteU),
		V:     13 * l * (v - whiteV),
		Alpha: c.Alpha,
	}
}

// luvToXYZ maps L = 0 to black, and a zero v' (unreachable from real
// colors) to X = Z = 0.
func luvToXYZ(c LUV) XYZ {
	if c.L == 0 {
		return XYZ{Alpha: c.Alpha}
	}

	u := c.U/(13*c.L) + whiteU
	v := c.V/(13*c.L) + whiteV
	y := lightnessToY(c.L) * whiteY
	if v == 0 {
		return XYZ{Y: y, Alpha: c.Alpha}
	}

	return XYZ{
		X:     y * 9 * u / (4 * v),
		Y:     y,
		Z:     y * (12 - 3*u - 20*v) / (4 * v),
		Alpha: c.Alpha,
	}
}
