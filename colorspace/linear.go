// based on:
// https://bottosson.github.io/posts/colorwrong/#what-can-we-do%3F

package colorspace

import "math"

func rgbToLinearRGB(c RGB) LinearRGB {
	return LinearRGB{
		R:     toLinear(c.R),
		G:     toLinear(c.G),
		B:     toLinear(c.B),
		Alpha: c.Alpha,
	}
}

func linearRGBToRGB(c LinearRGB) RGB {
	return RGB{
		R:     fromLinear(c.R),
		G:     fromLinear(c.G),
		B:     fromLinear(c.B),
		Alpha: c.Alpha,
	}
}

// toLinear decodes one sRGB channel. Negative values mirror the curve.
func toLinear(x float64) float64 {
	if x < 0 {
		return -toLinear(-x)
	}
	if x >= 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	} else {
		return x / 12.92
	}
}

const pow float64 = 1.0 / 2.4

// fromLinear encodes one linear channel. Negative values mirror the curve.
func fromLinear(x float64) float64 {
	if x < 0 {
		return -fromLinear(-x)
	}
	if x >= 0.0031308 {
		return math.Pow(x, pow)*1.055 - 0.055
	} else {
		return x * 12.92
	}
}
