package colorspace

import "fmt"

type transform struct {
	from, to Model
	apply    func(Color) Color
}

func edge[F, T Color](fn func(F) T) transform {
	var f F
	var t T
	return transform{
		from:  f.Model(),
		to:    t.Model(),
		apply: func(c Color) Color { return fn(c.(F)) },
	}
}

// edges lists every direct transform. RGB is the main hub and XYZ the hub of
// the CIE and Oklab families. Order matters: among equally short paths the
// router takes the one found first.
var edges = []transform{
	edge(rgbToLinearRGB),
	edge(linearRGBToRGB),
	edge(linearRGBToXYZ),
	edge(xyzToLinearRGB),

	edge(rgbToHSL),
	edge(hslToRGB),
	edge(rgbToHSV),
	edge(hsvToRGB),
	edge(rgbToHWB),
	edge(hwbToRGB),
	edge(rgbToCMYK),
	edge(cmykToRGB),

	edge(rgbToAnsi16),
	edge(ansi16ToRGB),
	edge(rgbToAnsi256),
	edge(ansi256ToRGB),

	edge(xyzToLAB),
	edge(labToXYZ),
	edge(labToLCH),
	edge(lchToLAB),
	edge(xyzToLUV),
	edge(luvToXYZ),
	edge(luvToHCL),
	edge(hclToLUV),
	edge(xyzToOklab),
	edge(oklabToXYZ),
	edge(oklabToOklch),
	edge(oklchToOklab),
}

// routes[from][to] is the chain of transforms converting from into to.
var routes = buildRoutes(edges)

func buildRoutes(edges []transform) [numModels][numModels][]transform {
	var adj [numModels][]transform
	for _, e := range edges {
		adj[e.from] = append(adj[e.from], e)
	}

	var res [numModels][numModels][]transform
	for src := range numModels {
		var prev [numModels]*transform
		var seen [numModels]bool
		seen[src] = true
		queue := []Model{src}
		for len(queue) > 0 {
			m := queue[0]
			queue = queue[1:]
			for i := range adj[m] {
				e := &adj[m][i]
				if seen[e.to] {
					continue
				}
				seen[e.to] = true
				prev[e.to] = e
				queue = append(queue, e.to)
			}
		}

		for dst := range numModels {
			if dst == src {
				continue
			}
			if !seen[dst] {
				panic(fmt.Sprintf("colorspace: no conversion path from %s to %s", src, dst))
			}
			var path []transform
			for m := dst; m != src; m = prev[m].from {
				path = append(path, *prev[m])
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			res[src][dst] = path
		}
	}
	return res
}

// Convert returns c expressed in model to. When c already is in model to it
// is returned as is. Alpha is copied through every step.
func Convert(c Color, to Model) Color {
	to.info()
	from := c.Model()
	if from == to {
		return c
	}

	for _, t := range routes[from][to] {
		c = t.apply(c)
	}
	return c
}

// Path returns the models visited when converting from one model to another,
// both ends included.
func Path(from, to Model) []Model {
	from.info()
	to.info()
	res := []Model{from}
	for _, t := range routes[from][to] {
		res = append(res, t.to)
	}
	return res
}

func ToRGB(c Color) RGB { return Convert(c, RGBModel).(RGB) }
func ToHSL(c Color) HSL { return Convert(c, HSLModel).(HSL) }
func ToHSV(c Color) HSV { return Convert(c, HSVModel).(HSV) }
func ToHWB(c Color) HWB { return Convert(c, HWBModel).(HWB) }
func ToCMYK(c Color) CMYK { return Convert(c, CMYKModel).(CMYK) }
func ToLinearRGB(c Color) LinearRGB { return Convert(c, LinearRGBModel).(LinearRGB) }
func ToXYZ(c Color) XYZ { return Convert(c, XYZModel).(XYZ) }
func ToLAB(c Color) LAB { return Convert(c, LABModel).(LAB) }
func ToLCH(c Color) LCH { return Convert(c, LCHModel).(LCH) }
func ToLUV(c Color) LUV { return Convert(c, LUVModel).(LUV) }
func ToHCL(c Color) HCL { return Convert(c, HCLModel).(HCL) }
func ToOklab(c Color) Oklab { return Convert(c, OklabModel).(Oklab) }
func ToOklch(c Color) Oklch { return Convert(c, OklchModel).(Oklch) }
func ToAnsi16(c Color) Ansi16 { return Convert(c, Ansi16Model).(Ansi16) }
func ToAnsi256(c Color) Ansi256 { return Convert(c, Ansi256Model).(Ansi256) }
