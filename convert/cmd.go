package convert

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"colorconv/colorspace"
	"colorconv/parallel"

	"github.com/alecthomas/kong"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/term"
)

type CLICmd struct {
	From   string    `help:"Model of the given values" default:"rgb"`
	To     string    `help:"Target model, or 'all' to print every model" default:"all"`
	Name   string    `help:"Take the source color from the SVG 1.1 color names" group:"source"`
	Input  string    `help:"File with one color per line: model v1 v2 ... [alpha]" type:"existingfile" group:"source"`
	Clamp  bool      `help:"Clamp results into the target model's range" default:"false"`
	Swatch string    `help:"Print a color swatch after each result" enum:"auto,always,never" default:"auto"`
	Values []float64 `arg:"" optional:"" help:"Component values, optionally followed by alpha. Put -- before negative values."`

	Out     io.Writer          `kong:"-"`
	Source  colorspace.Color   `kong:"-"`
	Targets []colorspace.Model `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.Targets, err = parseTargets(c.To); err != nil {
		return err
	}

	sources := 0
	for _, set := range []bool{len(c.Values) > 0, c.Name != "", c.Input != ""} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return fmt.Errorf("no color given: pass values, --name or --input")
	case sources > 1:
		return fmt.Errorf("values, --name and --input are mutually exclusive")
	}

	switch {
	case c.Name != "":
		c.Source, err = lookupName(c.Name)
	case len(c.Values) > 0:
		var from colorspace.Model
		if from, err = colorspace.ParseModel(c.From); err != nil {
			return err
		}
		if c.Source, err = colorspace.FromArray(from, c.Values); err == nil {
			err = checkSource(c.Source)
		}
	}

	return err
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	defer wait(true)

	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	w := bufio.NewWriter(out)
	defer func() {
		if err := w.Flush(); err != nil {
			slog.Error("could not flush output", "error", err)
		}
	}()

	swatches := useSwatch(c.Swatch, out)
	if c.Input == "" {
		for _, line := range c.results(c.Source, swatches) {
			fmt.Fprintln(w, line)
		}
		return nil
	}

	lines, err := readLines(c.Input)
	if err != nil {
		return err
	}

	type result struct {
		lines []string
		err   error
	}
	res := parallel.Map(worker, lines, func(_ int, l numberedLine) result {
		src, err := parseLine(l.text)
		if err != nil {
			return result{err: err}
		}
		return result{lines: c.results(src, swatches)}
	})

	var errCount int
	for i, r := range res {
		if r.err != nil {
			errCount++
			slog.Error("could not convert color", "file", c.Input, "line", lines[i].number, "error", r.err)
			continue
		}
		for _, line := range r.lines {
			fmt.Fprintln(w, line)
		}
	}

	slog.Info("stats", "converted", len(res)-errCount, "errors", errCount, "total", len(res))
	if errCount > 0 {
		return fmt.Errorf("error converting %d colors", errCount)
	}
	return nil
}

func (c *CLICmd) results(src colorspace.Color, swatches bool) []string {
	res := make([]string, 0, len(c.Targets))
	for _, m := range c.Targets {
		v := colorspace.Convert(src, m)
		if c.Clamp {
			v = colorspace.Clamp(v)
		}

		line := Format(v)
		if swatches {
			line += " " + Swatch(v)
		}
		res = append(res, line)
	}
	return res
}

func parseTargets(to string) ([]colorspace.Model, error) {
	if strings.EqualFold(strings.TrimSpace(to), "all") {
		return colorspace.Models(), nil
	}
	m, err := colorspace.ParseModel(to)
	if err != nil {
		return nil, err
	}
	return []colorspace.Model{m}, nil
}

// lookupName finds an SVG color name, ignoring case and spaces.
func lookupName(name string) (colorspace.Color, error) {
	key := strings.ReplaceAll(cases.Fold().String(name), " ", "")
	rgba, ok := colornames.Map[key]
	if !ok {
		return nil, fmt.Errorf("unknown color name %q", name)
	}
	return colorspace.FromImageColor(rgba), nil
}

// checkSource rejects terminal codes that have no table entry. Continuous
// models may carry any value.
func checkSource(c colorspace.Color) error {
	switch c.Model() {
	case colorspace.Ansi16Model, colorspace.Ansi256Model:
		return colorspace.Validate(c)
	}
	return nil
}

type numberedLine struct {
	number int
	text   string
}

func readLines(name string) ([]numberedLine, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open input %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close input", "name", name, "error", closeErr)
		}
	}()

	var res []numberedLine
	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		res = append(res, numberedLine{number: n, text: text})
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("could not read input %q: %w", name, err)
	}
	return res, nil
}

// parseLine reads "model v1 v2 ... [alpha]".
func parseLine(line string) (colorspace.Color, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty line")
	}

	m, err := colorspace.ParseModel(fields[0])
	if err != nil {
		return nil, err
	}

	v := make([]float64, len(fields)-1)
	for i, field := range fields[1:] {
		if v[i], err = strconv.ParseFloat(field, 64); err != nil {
			return nil, fmt.Errorf("invalid component %d %q: %w", i+1, field, err)
		}
	}

	c, err := colorspace.FromArray(m, v)
	if err != nil {
		return nil, err
	}
	return c, checkSource(c)
}

// Format prints the model name followed by the components and alpha.
func Format(c colorspace.Color) string {
	var sb strings.Builder
	sb.WriteString(c.Model().String())
	for _, v := range c.Array() {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(v, 'g', 6, 64))
	}
	return sb.String()
}

// Swatch returns a two cell block painted with c. Terminal codes use their
// own escape so the terminal's palette is shown.
func Swatch(c colorspace.Color) string {
	switch v := c.(type) {
	case colorspace.Ansi16:
		code := 40 + v.Code
		if v.Code >= 8 {
			code = 100 + v.Code - 8
		}
		return fmt.Sprintf("\x1b[%dm  \x1b[0m", code)
	case colorspace.Ansi256:
		return fmt.Sprintf("\x1b[48;5;%dm  \x1b[0m", v.Code)
	}

	rgb := colorspace.ToRGB(c)
	rgb.Alpha = 1
	r, g, b, _ := rgb.RGBA()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r>>8, g>>8, b>>8)
}

func useSwatch(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
