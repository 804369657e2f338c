package colorspace

import (
	"slices"
	"sync"
	"testing"
)

func TestConvertIdentity(t *testing.T) {
	src := RGB{R: 0.3, G: 0.6, B: 0.9, Alpha: 0.8}
	for _, m := range Models() {
		c := Convert(src, m)
		if got := Convert(c, m); got != c {
			t.Errorf("%s: Convert to own model changed the value: %#v != %#v", m, got, c)
		}
	}

	// no round trip happens on the identity path, so even values that would
	// not survive one come back unchanged
	odd := LUV{L: 0, U: 12, V: -7, Alpha: 0.1}
	if got := Convert(odd, LUVModel); got != Color(odd) {
		t.Fatalf("identity conversion altered %#v into %#v", odd, got)
	}
}

func TestAlphaPreserved(t *testing.T) {
	const alpha = 0.3719
	src := RGB{R: 0.7, G: 0.2, B: 0.45, Alpha: alpha}

	for _, from := range Models() {
		start := Convert(src, from)
		if start.Opacity() != alpha {
			t.Fatalf("RGB -> %s lost alpha: %g", from, start.Opacity())
		}
		for _, to := range Models() {
			got := Convert(start, to)
			if got.Model() != to {
				t.Fatalf("%s -> %s produced a %s", from, to, got.Model())
			}
			if got.Opacity() != alpha {
				t.Errorf("%s -> %s: alpha %g, want %g", from, to, got.Opacity(), alpha)
			}
		}
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		from, to Model
		want     []Model
	}{
		{HSLModel, LABModel, []Model{HSLModel, RGBModel, LinearRGBModel, XYZModel, LABModel}},
		{LCHModel, HCLModel, []Model{LCHModel, LABModel, XYZModel, LUVModel, HCLModel}},
		{Ansi16Model, OklchModel, []Model{Ansi16Model, RGBModel, LinearRGBModel, XYZModel, OklabModel, OklchModel}},
		{Ansi16Model, Ansi256Model, []Model{Ansi16Model, RGBModel, Ansi256Model}},
		{CMYKModel, HWBModel, []Model{CMYKModel, RGBModel, HWBModel}},
		{XYZModel, LinearRGBModel, []Model{XYZModel, LinearRGBModel}},
		{RGBModel, RGBModel, []Model{RGBModel}},
	}

	for _, tt := range tests {
		if got := Path(tt.from, tt.to); !slices.Equal(got, tt.want) {
			t.Errorf("Path(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestEveryPairRouted(t *testing.T) {
	for _, from := range Models() {
		for _, to := range Models() {
			p := Path(from, to)
			if p[0] != from || p[len(p)-1] != to {
				t.Errorf("Path(%s, %s) = %v", from, to, p)
			}
			if from != to && len(p) < 2 {
				t.Errorf("Path(%s, %s) has no hops", from, to)
			}
		}
	}
}

func TestConvertUnknownModelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Convert(NewRGB(0, 0, 0), Model(99))
}

func TestConvertConcurrent(t *testing.T) {
	shared := NewHSL(200, 0.5, 0.4)
	want := ToOklch(shared)

	var wg sync.WaitGroup
	results := make([]Oklch, 64)
	for i := range results {
		wg.Go(func() {
			results[i] = ToOklch(shared)
		})
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Fatalf("result %d differs: %#v != %#v", i, got, want)
		}
	}
}
