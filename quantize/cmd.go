package quantize

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"colorconv/colorspace"
	"colorconv/palette"
	"colorconv/parallel"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Scan    string `help:"Source folder to scan" default:"."`
	Dest    string `help:"Destination folder for quantized pictures. Relative to scan dir if not absolute." default:"quantized"`
	Palette string `help:"Palette name (ansi16, ansi256) or PAL file in RIFF format" default:"ansi256"`
	Space   string `help:"Model in which nearest colors are measured" default:"rgb"`
	Dither  bool   `help:"Apply Floyd-Steinberg dithering, matching in RGB" default:"false"`
	Format  string `help:"Output format. 'same' keeps the source format when it can be written, PNG otherwise" enum:"same,gif,png,bmp,tiff" default:"png"`

	Pal *palette.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}
	if c.Dest == c.Scan {
		return fmt.Errorf("destination must differ from the scan folder")
	}

	space, err := colorspace.ParseModel(c.Space)
	if err != nil {
		return err
	}
	switch space {
	case colorspace.Ansi16Model, colorspace.Ansi256Model:
		return fmt.Errorf("cannot measure distances in %s", space)
	}

	if c.Pal, err = palette.Load(c.Palette, space); err != nil {
		return err
	}
	if c.Pal.Len() > 256 {
		return fmt.Errorf("palette %q has %d colors, at most 256 fit a paletted image", c.Palette, c.Pal.Len())
	}
	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				if err := c.process(logger, filePath, fileName); err != nil {
					errCount.Add(1)
					logger.Error("could not quantize image", "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, filePath, fileName string) error {
	imgFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	logger.Debug("quantizing", "palette", c.Palette, "space", c.Pal.Model(), "colors", c.Pal.Len(), "dither", c.Dither)
	var out image.Image
	if c.Dither {
		out = Dither(img, c.Pal)
	} else {
		out = Quantize(img, c.Pal)
	}

	return save(out, imgType, c.Format, c.Dest, fileName)
}
