package colorspace

import "image/color"

// rgba64 implements color.Color for every model: convert to RGB, clamp to
// the gamut and premultiply.
func rgba64(c Color) (r, g, b, a uint32) {
	rgb := ToRGB(c)
	alpha := bound(rgb.Alpha, 0, 1)
	return scale16(rgb.R, alpha), scale16(rgb.G, alpha), scale16(rgb.B, alpha), uint32(alpha*0xffff + 0.5)
}

func scale16(x, alpha float64) uint32 {
	return uint32(bound(x, 0, 1)*alpha*0xffff + 0.5)
}

// FromImageColor converts any color.Color into RGB, undoing the alpha
// premultiplication of the standard library types.
func FromImageColor(c color.Color) RGB {
	if own, ok := c.(Color); ok {
		return ToRGB(own)
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	fa := float64(a)
	return RGB{
		R:     float64(r) / fa,
		G:     float64(g) / fa,
		B:     float64(b) / fa,
		Alpha: fa / 0xffff,
	}
}

// ImageModel returns a color.Model converting into m, so any model can be
// used with the image and draw packages.
func ImageModel(m Model) color.Model {
	m.info()
	return color.ModelFunc(func(c color.Color) color.Color {
		if own, ok := c.(Color); ok {
			return Convert(own, m)
		}
		return Convert(FromImageColor(c), m)
	})
}
