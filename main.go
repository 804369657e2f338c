package main

import (
	"log/slog"
	"os"

	"colorconv/convert"
	"colorconv/export"
	"colorconv/parallel"
	"colorconv/quantize"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Workers  int    `help:"Number of parallel workers, 0 uses every CPU" default:"0"`
	LogLevel string `help:"Minimum level of log messages" enum:"debug,info,warn,error" default:"info"`

	Convert  convert.CLICmd  `cmd:"" help:"Convert a color between models"`
	Export   export.CLICmd   `cmd:"" help:"Write palettes to a RIFF PAL file"`
	Quantize quantize.CLICmd `cmd:"" help:"Map every image in a folder onto a palette"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("colorconv"),
		kong.Description("Convert colors between color models and quantize them to palettes."),
		kong.UsageOnError(),
	)

	var level slog.Level
	kctx.FatalIfErrorf(level.UnmarshalText([]byte(cli.LogLevel)))
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool := parallel.Start(cli.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(pool.Do, pool.Wait)
	kctx.FatalIfErrorf(err)
}
