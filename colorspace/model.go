// Package colorspace converts colors between RGB, the CIE spaces, Oklab and
// the terminal palettes. Every value carries an alpha that conversions copy
// without touching.
package colorspace

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownModel   = errors.New("unknown color model")
	ErrComponentCount = errors.New("wrong number of components")
	ErrOutOfRange     = errors.New("component out of range")
)

type Model uint8

const (
	RGBModel Model = iota
	HSLModel
	HSVModel
	Ansi16Model
	Ansi256Model
	CMYKModel
	XYZModel
	LABModel
	LCHModel
	LUVModel
	HCLModel
	HWBModel
	LinearRGBModel
	OklabModel
	OklchModel

	numModels
)

// Component describes one channel of a model. Circular components are hue
// angles in degrees and wrap instead of clamping.
type Component struct {
	Name     string
	Min, Max float64
	Circular bool
}

type modelInfo struct {
	name       string
	components []Component
}

func hue() Component {
	return Component{Name: "h", Min: 0, Max: 360, Circular: true}
}

func unit(name string) Component {
	return Component{Name: name, Min: 0, Max: 1}
}

var registry = [numModels]modelInfo{
	RGBModel:       {"rgb", []Component{unit("r"), unit("g"), unit("b")}},
	HSLModel:       {"hsl", []Component{hue(), unit("s"), unit("l")}},
	HSVModel:       {"hsv", []Component{hue(), unit("s"), unit("v")}},
	Ansi16Model:    {"ansi16", []Component{{Name: "code", Min: 0, Max: 15}}},
	Ansi256Model:   {"ansi256", []Component{{Name: "code", Min: 0, Max: 255}}},
	CMYKModel:      {"cmyk", []Component{unit("c"), unit("m"), unit("y"), unit("k")}},
	XYZModel:       {"xyz", []Component{{Name: "x", Max: whiteX}, {Name: "y", Max: whiteY}, {Name: "z", Max: whiteZ}}},
	LABModel:       {"lab", []Component{{Name: "l", Max: 100}, {Name: "a", Min: -128, Max: 127}, {Name: "b", Min: -128, Max: 127}}},
	LCHModel:       {"lch", []Component{{Name: "l", Max: 100}, {Name: "c", Max: 150}, hue()}},
	LUVModel:       {"luv", []Component{{Name: "l", Max: 100}, {Name: "u", Min: -134, Max: 220}, {Name: "v", Min: -140, Max: 122}}},
	HCLModel:       {"hcl", []Component{hue(), {Name: "c", Max: 180}, {Name: "l", Max: 100}}},
	HWBModel:       {"hwb", []Component{hue(), unit("w"), unit("b")}},
	LinearRGBModel: {"linearrgb", []Component{unit("r"), unit("g"), unit("b")}},
	OklabModel:     {"oklab", []Component{unit("l"), {Name: "a", Min: -0.4, Max: 0.4}, {Name: "b", Min: -0.4, Max: 0.4}}},
	OklchModel:     {"oklch", []Component{unit("l"), {Name: "c", Max: 0.4}, hue()}},
}

func (m Model) info() *modelInfo {
	if m >= numModels {
		panic(fmt.Sprintf("colorspace: %v: %d", ErrUnknownModel, uint8(m)))
	}
	return &registry[m]
}

func (m Model) String() string {
	if m >= numModels {
		return fmt.Sprintf("Model(%d)", uint8(m))
	}
	return registry[m].name
}

// Components returns the ordered component layout of m, alpha excluded.
func (m Model) Components() []Component {
	return append([]Component(nil), m.info().components...)
}

// Len is the number of components of m, alpha excluded.
func (m Model) Len() int {
	return len(m.info().components)
}

// Models lists every supported model in declaration order.
func Models() []Model {
	res := make([]Model, 0, numModels)
	for m := range numModels {
		res = append(res, m)
	}
	return res
}

func ParseModel(name string) (Model, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m := range numModels {
		if registry[m].name == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}
