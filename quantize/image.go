package quantize

import (
	"image"
	"image/color"

	"colorconv/colorspace"
	"colorconv/palette"

	"golang.org/x/image/draw"
)

// Quantize maps every pixel of img to the nearest entry of p, measured in
// the palette's model. The result is anchored at the origin.
func Quantize(img image.Image, p *palette.Palette) *image.Paletted {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	dest := image.NewPaletted(dr, imagePalette(p))

	// photos repeat colors a lot and each lookup converts the pixel
	seen := make(map[color.RGBA64]uint8)
	for y := range sr.Dy() {
		for x := range sr.Dx() {
			r, g, b, a := img.At(sr.Min.X+x, sr.Min.Y+y).RGBA()
			key := color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}

			idx, ok := seen[key]
			if !ok {
				idx = uint8(p.Index(colorspace.FromImageColor(key)))
				seen[key] = idx
			}
			dest.SetColorIndex(x, y, idx)
		}
	}

	return dest
}

// Dither spreads the quantization error with Floyd-Steinberg. Matching is
// done by the draw package in RGB whatever the palette's model.
func Dither(img image.Image, p *palette.Palette) *image.Paletted {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	dest := image.NewPaletted(dr, imagePalette(p))

	draw.FloydSteinberg.Draw(dest, dr, img, sr.Min)
	return dest
}

func imagePalette(p *palette.Palette) color.Palette {
	pal := p.ImagePalette()
	for i, c := range pal {
		pal[i] = color.RGBAModel.Convert(c)
	}
	return pal
}
