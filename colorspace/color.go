package colorspace

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/exp/constraints"
)

// Color is a value in one of the supported models. The set of
// implementations is closed: only the types in this package satisfy it.
type Color interface {
	color.Color

	// Model reports which component layout the value carries.
	Model() Model
	// Opacity is the alpha channel in [0,1].
	Opacity() float64
	// Array returns the components in canonical order followed by alpha.
	Array() []float64

	isColor()
}

var (
	_ Color = RGB{}
	_ Color = HSL{}
	_ Color = HSV{}
	_ Color = HWB{}
	_ Color = CMYK{}
	_ Color = LinearRGB{}
	_ Color = XYZ{}
	_ Color = LAB{}
	_ Color = LCH{}
	_ Color = LUV{}
	_ Color = HCL{}
	_ Color = Oklab{}
	_ Color = Oklch{}
	_ Color = Ansi16{}
	_ Color = Ansi256{}
)

// RGB is gamma encoded sRGB, channels in [0,1].
type RGB struct {
	R, G, B float64
	Alpha   float64
}

func NewRGB(r, g, b float64) RGB { return RGB{R: r, G: g, B: b, Alpha: 1} }

func (c RGB) Model() Model { return RGBModel }
func (c RGB) Opacity() float64 { return c.Alpha }
func (c RGB) Array() []float64 { return []float64{c.R, c.G, c.B, c.Alpha} }
func (c RGB) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (RGB) isColor() {}

type HSL struct {
	H     float64 // hue in degrees
	S     float64 // saturation
	L     float64 // lightness
	Alpha float64
}

func NewHSL(h, s, l float64) HSL { return HSL{H: h, S: s, L: l, Alpha: 1} }

func (c HSL) Model() Model { return HSLModel }
func (c HSL) Opacity() float64 { return c.Alpha }
func (c HSL) Array() []float64 { return []float64{c.H, c.S, c.L, c.Alpha} }
func (c HSL) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (HSL) isColor() {}

type HSV struct {
	H     float64 // hue in degrees
	S     float64 // saturation
	V     float64 // value
	Alpha float64
}

func NewHSV(h, s, v float64) HSV { return HSV{H: h, S: s, V: v, Alpha: 1} }

func (c HSV) Model() Model { return HSVModel }
func (c HSV) Opacity() float64 { return c.Alpha }
func (c HSV) Array() []float64 { return []float64{c.H, c.S, c.V, c.Alpha} }
func (c HSV) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (HSV) isColor() {}

type HWB struct {
	H     float64 // hue in degrees
	W     float64 // whiteness
	B     float64 // blackness
	Alpha float64
}

func NewHWB(h, w, b float64) HWB { return HWB{H: h, W: w, B: b, Alpha: 1} }

func (c HWB) Model() Model { return HWBModel }
func (c HWB) Opacity() float64 { return c.Alpha }
func (c HWB) Array() []float64 { return []float64{c.H, c.W, c.B, c.Alpha} }
func (c HWB) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (HWB) isColor() {}

type CMYK struct {
	C, M, Y, K float64
	Alpha      float64
}

func NewCMYK(c, m, y, k float64) CMYK { return CMYK{C: c, M: m, Y: y, K: k, Alpha: 1} }

func (c CMYK) Model() Model { return CMYKModel }
func (c CMYK) Opacity() float64 { return c.Alpha }
func (c CMYK) Array() []float64 { return []float64{c.C, c.M, c.Y, c.K, c.Alpha} }
func (c CMYK) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (CMYK) isColor() {}

// LinearRGB is sRGB with the transfer curve removed.
type LinearRGB struct {
	R, G, B float64
	Alpha   float64
}

func NewLinearRGB(r, g, b float64) LinearRGB { return LinearRGB{R: r, G: g, B: b, Alpha: 1} }

func (c LinearRGB) Model() Model { return LinearRGBModel }
func (c LinearRGB) Opacity() float64 { return c.Alpha }
func (c LinearRGB) Array() []float64 { return []float64{c.R, c.G, c.B, c.Alpha} }
func (c LinearRGB) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (LinearRGB) isColor() {}

// XYZ is CIE 1931 XYZ relative to D65, scaled so white has Y = 1.
type XYZ struct {
	X, Y, Z float64
	Alpha   float64
}

func NewXYZ(x, y, z float64) XYZ { return XYZ{X: x, Y: y, Z: z, Alpha: 1} }

func (c XYZ) Model() Model { return XYZModel }
func (c XYZ) Opacity() float64 { return c.Alpha }
func (c XYZ) Array() []float64 { return []float64{c.X, c.Y, c.Z, c.Alpha} }
func (c XYZ) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (XYZ) isColor() {}

// LAB is CIE L*a*b* under D65.
type LAB struct {
	L     float64 // lightness
	A     float64 // green/red
	B     float64 // blue/yellow
	Alpha float64
}

func NewLAB(l, a, b float64) LAB { return LAB{L: l, A: a, B: b, Alpha: 1} }

func (c LAB) Model() Model { return LABModel }
func (c LAB) Opacity() float64 { return c.Alpha }
func (c LAB) Array() []float64 { return []float64{c.L, c.A, c.B, c.Alpha} }
func (c LAB) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (LAB) isColor() {}

// LCH is the polar form of LAB.
type LCH struct {
	L     float64 // lightness
	C     float64 // chroma
	H     float64 // hue in degrees
	Alpha float64
}

func NewLCH(l, c, h float64) LCH { return LCH{L: l, C: c, H: h, Alpha: 1} }

func (c LCH) Model() Model { return LCHModel }
func (c LCH) Opacity() float64 { return c.Alpha }
func (c LCH) Array() []float64 { return []float64{c.L, c.C, c.H, c.Alpha} }
func (c LCH) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (LCH) isColor() {}

// LUV is CIE L*u*v* under D65.
type LUV struct {
	L, U, V float64
	Alpha   float64
}

func NewLUV(l, u, v float64) LUV { return LUV{L: l, U: u, V: v, Alpha: 1} }

func (c LUV) Model() Model { return LUVModel }
func (c LUV) Opacity() float64 { return c.Alpha }
func (c LUV) Array() []float64 { return []float64{c.L, c.U, c.V, c.Alpha} }
func (c LUV) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (LUV) isColor() {}

// HCL is the polar form of LUV, also known as LCh(uv).
type HCL struct {
	H     float64 // hue in degrees
	C     float64 // chroma
	L     float64 // luminance
	Alpha float64
}

func NewHCL(h, c, l float64) HCL { return HCL{H: h, C: c, L: l, Alpha: 1} }

func (c HCL) Model() Model { return HCLModel }
func (c HCL) Opacity() float64 { return c.Alpha }
func (c HCL) Array() []float64 { return []float64{c.H, c.C, c.L, c.Alpha} }
func (c HCL) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (HCL) isColor() {}

type Oklab struct {
	L     float64 // perceived lightness
	A     float64 // how green/red the color is
	B     float64 // how blue/yellow the color is
	Alpha float64
}

func NewOklab(l, a, b float64) Oklab { return Oklab{L: l, A: a, B: b, Alpha: 1} }

func (c Oklab) Model() Model { return OklabModel }
func (c Oklab) Opacity() float64 { return c.Alpha }
func (c Oklab) Array() []float64 { return []float64{c.L, c.A, c.B, c.Alpha} }
func (c Oklab) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (Oklab) isColor() {}

type Oklch struct {
	L     float64 // perceived lightness
	C     float64 // chroma
	H     float64 // hue in degrees
	Alpha float64
}

func NewOklch(l, c, h float64) Oklch { return Oklch{L: l, C: c, H: h, Alpha: 1} }

func (c Oklch) Model() Model { return OklchModel }
func (c Oklch) Opacity() float64 { return c.Alpha }
func (c Oklch) Array() []float64 { return []float64{c.L, c.C, c.H, c.Alpha} }
func (c Oklch) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (Oklch) isColor() {}

// Ansi16 is an index into the 16 color terminal palette.
type Ansi16 struct {
	Code  int
	Alpha float64
}

func NewAnsi16(code int) Ansi16 { return Ansi16{Code: code, Alpha: 1} }

func (c Ansi16) Model() Model { return Ansi16Model }
func (c Ansi16) Opacity() float64 { return c.Alpha }
func (c Ansi16) Array() []float64 { return []float64{float64(c.Code), c.Alpha} }
func (c Ansi16) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (Ansi16) isColor() {}

// Ansi256 is an index into the xterm 256 color palette.
type Ansi256 struct {
	Code  int
	Alpha float64
}

func NewAnsi256(code int) Ansi256 { return Ansi256{Code: code, Alpha: 1} }

func (c Ansi256) Model() Model { return Ansi256Model }
func (c Ansi256) Opacity() float64 { return c.Alpha }
func (c Ansi256) Array() []float64 { return []float64{float64(c.Code), c.Alpha} }
func (c Ansi256) RGBA() (r, g, b, a uint32) { return rgba64(c) }
func (Ansi256) isColor() {}

// FromArray builds a value of model m from its flattened form. The alpha may
// be omitted, in which case the color is opaque.
func FromArray(m Model, v []float64) (Color, error) {
	n := m.Len()
	alpha := 1.0
	switch len(v) {
	case n:
	case n + 1:
		alpha = v[n]
	default:
		return nil, fmt.Errorf("%w: %s takes %d or %d values, got %d", ErrComponentCount, m, n, n+1, len(v))
	}

	switch m {
	case RGBModel:
		return RGB{v[0], v[1], v[2], alpha}, nil
	case HSLModel:
		return HSL{v[0], v[1], v[2], alpha}, nil
	case HSVModel:
		return HSV{v[0], v[1], v[2], alpha}, nil
	case HWBModel:
		return HWB{v[0], v[1], v[2], alpha}, nil
	case CMYKModel:
		return CMYK{v[0], v[1], v[2], v[3], alpha}, nil
	case LinearRGBModel:
		return LinearRGB{v[0], v[1], v[2], alpha}, nil
	case XYZModel:
		return XYZ{v[0], v[1], v[2], alpha}, nil
	case LABModel:
		return LAB{v[0], v[1], v[2], alpha}, nil
	case LCHModel:
		return LCH{v[0], v[1], v[2], alpha}, nil
	case LUVModel:
		return LUV{v[0], v[1], v[2], alpha}, nil
	case HCLModel:
		return HCL{v[0], v[1], v[2], alpha}, nil
	case OklabModel:
		return Oklab{v[0], v[1], v[2], alpha}, nil
	case OklchModel:
		return Oklch{v[0], v[1], v[2], alpha}, nil
	case Ansi16Model:
		return Ansi16{int(math.Round(v[0])), alpha}, nil
	case Ansi256Model:
		return Ansi256{int(math.Round(v[0])), alpha}, nil
	}
	panic(fmt.Sprintf("colorspace: %v: %d", ErrUnknownModel, uint8(m)))
}

// Validate reports the first component of c outside its model's range.
// Circular components are never out of range.
func Validate(c Color) error {
	v := c.Array()
	for i, comp := range c.Model().info().components {
		if comp.Circular {
			continue
		}
		if v[i] < comp.Min || v[i] > comp.Max || math.IsNaN(v[i]) {
			return fmt.Errorf("%w: %s.%s = %g not in [%g, %g]", ErrOutOfRange, c.Model(), comp.Name, v[i], comp.Min, comp.Max)
		}
	}
	if a := c.Opacity(); a < 0 || a > 1 || math.IsNaN(a) {
		return fmt.Errorf("%w: %s.alpha = %g not in [0, 1]", ErrOutOfRange, c.Model(), a)
	}
	return nil
}

// Clamp pulls every component of c into its model's range, wrapping hues.
// Conversions never clamp on their own.
func Clamp(c Color) Color {
	v := c.Array()
	comps := c.Model().info().components
	for i, comp := range comps {
		if comp.Circular {
			v[i] = normalizeHue(v[i])
		} else {
			v[i] = bound(v[i], comp.Min, comp.Max)
		}
	}
	v[len(comps)] = bound(v[len(comps)], 0, 1)

	res, err := FromArray(c.Model(), v)
	if err != nil {
		panic(err)
	}
	return res
}

func bound[N constraints.Integer | constraints.Float](x, minimum, maximum N) N {
	return min(max(x, minimum), maximum)
}
