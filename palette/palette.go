package palette

import (
	"image/color"
	"math"

	"colorconv/colorspace"
)

// Palette is a list of colors held in a single model. Nearest entry searches
// measure distance in that model.
type Palette struct {
	model   colorspace.Model
	comps   []colorspace.Component
	entries []colorspace.Color
}

func New(m colorspace.Model, colors ...colorspace.Color) *Palette {
	p := &Palette{
		model: m,
		comps: m.Components(),
	}
	p.Add(colors...)
	return p
}

// FromImagePalette converts a standard library palette into model m.
func FromImagePalette(m colorspace.Model, pal color.Palette) *Palette {
	p := New(m)
	p.From(pal)
	return p
}

func (p *Palette) Model() colorspace.Model {
	return p.model
}

func (p *Palette) Len() int {
	return len(p.entries)
}

// At returns entry i, converted into the palette's model.
func (p *Palette) At(i int) colorspace.Color {
	return p.entries[i]
}

func (p *Palette) Add(colors ...colorspace.Color) {
	for _, c := range colors {
		p.entries = append(p.entries, colorspace.Convert(c, p.model))
	}
}

func (p *Palette) From(pal color.Palette) int64 {
	for _, col := range pal {
		p.entries = append(p.entries, colorspace.Convert(colorspace.FromImageColor(col), p.model))
	}

	return int64(len(pal))
}

// Convert returns the entry nearest to c, carrying the alpha of c.
func (p *Palette) Convert(c colorspace.Color) colorspace.Color {
	if len(p.entries) == 0 {
		return c
	}
	v := p.entries[p.Index(c)].Array()
	v[len(v)-1] = c.Opacity()
	res, err := colorspace.FromArray(p.model, v)
	if err != nil {
		panic(err)
	}
	return res
}

// Index returns the position of the entry nearest to c by squared distance
// over the model's components. Hue components measure the short arc and
// alpha is ignored. Ties go to the lowest index; an empty palette returns -1.
func (p *Palette) Index(c colorspace.Color) int {
	if len(p.entries) == 0 {
		return -1
	}

	want := colorspace.Convert(c, p.model).Array()
	ret, bestSum := 0, math.MaxFloat64
	for i, v := range p.entries {
		sum := p.distance(want, v.Array())
		if sum < bestSum {
			if sum == 0 {
				return i
			}
			ret, bestSum = i, sum
		}
	}
	return ret
}

func (p *Palette) distance(a, b []float64) float64 {
	var sum float64
	for i, comp := range p.comps {
		d := math.Abs(a[i] - b[i])
		if comp.Circular {
			d = math.Mod(d, 360)
			d = min(d, 360-d)
		}
		sum += d * d
	}
	return sum
}

// ImagePalette returns the entries as a palette usable by the image and
// draw packages.
func (p *Palette) ImagePalette() color.Palette {
	pal := make(color.Palette, len(p.entries))
	for i, c := range p.entries {
		pal[i] = c
	}
	return pal
}

// ImageModel returns a color.Model snapping any color to the nearest entry.
func (p *Palette) ImageModel() color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return p.Convert(colorspace.FromImageColor(c))
	})
}

func Terminal16() *Palette {
	return New(colorspace.RGBModel, rgbColors(colorspace.Ansi16Palette())...)
}

func Terminal256() *Palette {
	return New(colorspace.RGBModel, rgbColors(colorspace.Ansi256Palette())...)
}

func rgbColors(table []colorspace.RGB) []colorspace.Color {
	res := make([]colorspace.Color, len(table))
	for i, c := range table {
		res[i] = c
	}
	return res
}
