// based on:
// https://bottosson.github.io/posts/oklab/

package colorspace

import "math"

// xyzToOklab goes through the LMS cone space. XYZ must be D65 with Y = 1
// for white, which gives Oklab L = 1 for white.
func xyzToOklab(c XYZ) Oklab {
	var l, m, s float64
	l = math.Cbrt(0.8189330101*c.X + 0.3618667424*c.Y - 0.1288597137*c.Z)
	m = math.Cbrt(0.0329845436*c.X + 0.9293118715*c.Y + 0.0361456387*c.Z)
	s = math.Cbrt(0.0482003018*c.X + 0.2643662691*c.Y + 0.6338517070*c.Z)

	return Oklab{
		L:     0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A:     1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B:     0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
		Alpha: c.Alpha,
	}
}

func oklabToXYZ(c Oklab) XYZ {
	var l, m, s float64
	l = c.L + 0.3963377774*c.A + 0.2158037573*c.B
	l = l * l * l
	m = c.L - 0.1055613458*c.A - 0.0638541728*c.B
	m = m * m * m
	s = c.L - 0.0894841775*c.A - 1.2914855480*c.B
	s = s * s * s

	return XYZ{
		X:     +1.2270138511*l - 0.5577999807*m + 0.2812561490*s,
		Y:     -0.0405801784*l + 1.1122568696*m - 0.0716766787*s,
		Z:     -0.0763812845*l - 0.4214819784*m + 1.5861632204*s,
		Alpha: c.Alpha,
	}
}
