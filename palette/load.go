package palette

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"colorconv/colorspace"
)

// Load returns a named terminal palette ("ansi16", "ansi256") or the
// palettes of a RIFF PAL file, all converted into model m.
func Load(name string, m colorspace.Model) (*Palette, error) {
	switch strings.ToLower(name) {
	case "ansi16":
		return convertTo(Terminal16(), m), nil
	case "ansi256":
		return convertTo(Terminal256(), m), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open palette %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close palette file", "name", name, "error", closeErr)
		}
	}()

	pals, err := ReadRIFF(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	}

	p := New(m)
	for _, pal := range pals {
		p.From(pal)
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}

	slog.Debug("loaded palette", "name", name, "palettes", len(pals), "colors", p.Len())
	return p, nil
}

// Save writes the palettes to a RIFF PAL file, one data chunk each.
func Save(name string, pals ...*Palette) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create palette %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close palette %q: %w", name, closeErr)
		}
	}()

	res := make([]color.Palette, len(pals))
	for i, p := range pals {
		res[i] = p.ImagePalette()
	}
	if _, err = WriteRIFF(f, res...); err != nil {
		return fmt.Errorf("could not save palette %q: %w", name, err)
	}
	return f.Sync()
}

func convertTo(p *Palette, m colorspace.Model) *Palette {
	if p.Model() == m {
		return p
	}
	res := New(m)
	for i := range p.Len() {
		res.Add(p.At(i))
	}
	return res
}
