package palette

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"colorconv/colorspace"
)

func TestTerminalMatchesEngine(t *testing.T) {
	p16, p256 := Terminal16(), Terminal256()
	if p16.Len() != 16 || p256.Len() != 256 {
		t.Fatalf("unexpected sizes %d, %d", p16.Len(), p256.Len())
	}

	for r := 0; r <= 8; r++ {
		for g := 0; g <= 8; g++ {
			for b := 0; b <= 8; b++ {
				c := colorspace.NewRGB(float64(r)/8, float64(g)/8, float64(b)/8)
				if got, want := p16.Index(c), colorspace.ToAnsi16(c).Code; got != want {
					t.Fatalf("ansi16 %v: palette %d, engine %d", c, got, want)
				}
				if got, want := p256.Index(c), colorspace.ToAnsi256(c).Code; got != want {
					t.Fatalf("ansi256 %v: palette %d, engine %d", c, got, want)
				}
			}
		}
	}
}

func TestIndexTies(t *testing.T) {
	p := New(colorspace.RGBModel, colorspace.NewRGB(0.5, 0, 0), colorspace.NewRGB(0, 0, 0))
	if got := p.Index(colorspace.NewRGB(0.25, 0, 0)); got != 0 {
		t.Fatalf("tie resolved to %d, want 0", got)
	}

	if got := New(colorspace.LABModel).Index(colorspace.NewRGB(0, 0, 0)); got != -1 {
		t.Fatalf("empty palette returned %d", got)
	}
}

func TestIndexCircularHue(t *testing.T) {
	p := New(colorspace.HSLModel,
		colorspace.NewHSL(350, 1, 0.5),
		colorspace.NewHSL(40, 1, 0.5),
	)

	// 10 is 20 degrees from 350 across 0 but 30 degrees from 40
	if got := p.Index(colorspace.NewHSL(10, 1, 0.5)); got != 0 {
		t.Fatalf("hue 10: got %d, want 0", got)
	}
	if got := p.Index(colorspace.NewHSL(20, 1, 0.5)); got != 1 {
		t.Fatalf("hue 20: got %d, want 1", got)
	}
}

func TestConvertKeepsAlpha(t *testing.T) {
	p := Terminal16()
	got := p.Convert(colorspace.RGB{R: 0.9, G: 0.1, B: 0.1, Alpha: 0.4})
	want := colorspace.Ansi16RGB(1)
	want.Alpha = 0.4
	if got != colorspace.Color(want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	empty := New(colorspace.RGBModel)
	in := colorspace.NewHSV(10, 0.5, 0.5)
	if got := empty.Convert(in); got != colorspace.Color(in) {
		t.Fatalf("empty palette changed color: %#v", got)
	}
}

func TestOklabPalette(t *testing.T) {
	p := New(colorspace.OklabModel,
		colorspace.NewRGB(0, 0, 0),
		colorspace.NewRGB(1, 1, 1),
		colorspace.NewRGB(1, 0, 0),
	)
	if p.At(0).Model() != colorspace.OklabModel {
		t.Fatalf("entries not converted: %v", p.At(0).Model())
	}
	if got := p.Index(colorspace.NewRGB(0.9, 0.9, 0.9)); got != 1 {
		t.Fatalf("light gray matched %d", got)
	}
	if got := p.Index(colorspace.NewRGB(0.8, 0.1, 0.05)); got != 2 {
		t.Fatalf("dark red matched %d", got)
	}
}

func TestImageModel(t *testing.T) {
	m := Terminal16().ImageModel()
	r, g, b, a := m.Convert(color.RGBA{R: 250, G: 250, B: 250, A: 255}).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Fatalf("got (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestRIFFRoundTrip(t *testing.T) {
	pals := []color.Palette{
		Terminal16().ImagePalette(),
		{color.RGBA{1, 2, 3, 255}, color.RGBA{250, 128, 0, 255}},
	}

	var buf bytes.Buffer
	n, err := WriteRIFF(&buf, pals...)
	if err != nil {
		t.Fatalf("WriteRIFF: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteRIFF reported %d bytes, wrote %d", n, buf.Len())
	}
	if size := binary.LittleEndian.Uint32(buf.Bytes()[4:]); int(size) != buf.Len()-8 {
		t.Fatalf("RIFF size %d, payload %d", size, buf.Len()-8)
	}

	got, err := ReadRIFF(&buf)
	if err != nil {
		t.Fatalf("ReadRIFF: %v", err)
	}
	if len(got) != len(pals) {
		t.Fatalf("read %d palettes, want %d", len(got), len(pals))
	}
	for i := range pals {
		if len(got[i]) != len(pals[i]) {
			t.Fatalf("palette %d has %d colors, want %d", i, len(got[i]), len(pals[i]))
		}
		for j := range pals[i] {
			want := color.RGBAModel.Convert(pals[i][j])
			if got[i][j] != want {
				t.Errorf("palette %d color %d = %v, want %v", i, j, got[i][j], want)
			}
		}
	}
}

func TestReadRIFFErrors(t *testing.T) {
	if _, err := ReadRIFF(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Fatalf("expected error for garbage input")
	}

	var buf bytes.Buffer
	if _, err := WriteRIFF(&buf, color.Palette{color.Black}); err != nil {
		t.Fatalf("WriteRIFF: %v", err)
	}
	data := buf.Bytes()
	data[20] = 0x01 // palVersion low byte
	if _, err := ReadRIFF(bytes.NewReader(data)); err == nil {
		t.Fatalf("expected error for bad version")
	}
}

func TestLoadAndSave(t *testing.T) {
	p, err := Load("ANSI256", colorspace.RGBModel)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Len() != 256 {
		t.Fatalf("ansi256 has %d colors", p.Len())
	}

	name := filepath.Join(t.TempDir(), "ansi16.pal")
	if err := Save(name, Terminal16()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(name, colorspace.LABModel)
	if err != nil {
		t.Fatalf("Load file: %v", err)
	}
	if loaded.Len() != 16 || loaded.Model() != colorspace.LABModel {
		t.Fatalf("loaded %d colors in %s", loaded.Len(), loaded.Model())
	}
	if got := loaded.Index(colorspace.NewRGB(1, 0, 0)); got != 1 {
		t.Fatalf("red matched %d in loaded palette", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.pal"), colorspace.RGBModel); err == nil {
		t.Fatalf("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.pal")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty, colorspace.RGBModel); err == nil {
		t.Fatalf("expected error for empty file")
	}
}
