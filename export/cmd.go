package export

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"colorconv/colorspace"
	"colorconv/palette"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Palette []string `help:"Palettes to export (ansi16, ansi256 or PAL file). Each becomes one chunk." default:"ansi256"`
	Out     string   `help:"Destination PAL file" required:""`

	Palettes []*palette.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Out, err)
	}
	c.Out = out

	c.Palettes = c.Palettes[:0]
	for _, name := range c.Palette {
		p, err := palette.Load(name, colorspace.RGBModel)
		if err != nil {
			return err
		}
		c.Palettes = append(c.Palettes, p)
	}

	return nil
}

func (c *CLICmd) Run() error {
	if err := palette.Save(c.Out, c.Palettes...); err != nil {
		return err
	}

	var colors int
	for _, p := range c.Palettes {
		colors += p.Len()
	}
	slog.Info("exported", "file", c.Out, "palettes", len(c.Palettes), "colors", colors)
	return nil
}
