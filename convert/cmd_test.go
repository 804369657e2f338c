package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"colorconv/colorspace"
	"colorconv/parallel"

	"github.com/alecthomas/kong"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cli := struct {
		Convert CLICmd `cmd:""`
	}{Convert: CLICmd{Out: &out}}

	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	kctx, err := parser.Parse(append([]string{"convert", "--swatch", "never"}, args...))
	if err != nil {
		return "", err
	}

	pool := parallel.Start(2)
	err = kctx.Run(pool.Do, pool.Wait)
	return out.String(), err
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rgb to hsl", []string{"--to", "hsl", "1", "0", "0"}, "hsl 0 1 0.5 1\n"},
		{"alpha kept", []string{"--to", "hsv", "0", "0", "1", "0.25"}, "hsv 240 1 1 0.25\n"},
		{"to ansi16", []string{"--to", "ansi16", "1", "0", "0"}, "ansi16 1 1\n"},
		{"from ansi256", []string{"--from", "ansi256", "--to", "rgb", "196"}, "rgb 1 0 0 1\n"},
		{"negative values", []string{"--from", "hsl", "--to", "hsl", "--", "-10", "1", "0.5"}, "hsl -10 1 0.5 1\n"},
		{"clamp", []string{"--from", "hsl", "--to", "hsl", "--clamp", "--", "-10", "1.5", "0.5"}, "hsl 350 1 0.5 1\n"},
		{"name", []string{"--name", "Cornflower Blue", "--to", "rgb"}, "rgb 0.392157 0.584314 0.929412 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertAll(t *testing.T) {
	got, err := run(t, "1", "1", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	models := colorspace.Models()
	if len(lines) != len(models) {
		t.Fatalf("got %d lines, want %d", len(lines), len(models))
	}
	for i, m := range models {
		if !strings.HasPrefix(lines[i], m.String()+" ") {
			t.Errorf("line %d = %q, want model %s", i, lines[i], m)
		}
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no source", []string{"--to", "hsl"}},
		{"two sources", []string{"--name", "red", "1", "0", "0"}},
		{"unknown name", []string{"--name", "not a color"}},
		{"unknown model", []string{"--to", "yuv", "1", "0", "0"}},
		{"component count", []string{"--to", "hsl", "1", "0"}},
		{"ansi code", []string{"--from", "ansi16", "--to", "rgb", "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestConvertInput(t *testing.T) {
	name := filepath.Join(t.TempDir(), "colors.txt")
	data := "rgb 1 0 0\n# comment\n\nbogus 1 2 3\nhsl 120 1 0.5 0.5\n"
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := run(t, "--input", name, "--to", "ansi16")
	if err == nil {
		t.Fatalf("expected an error for the bad line")
	}
	if want := "ansi16 1 1\nansi16 2 0.5\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		name string
		c    colorspace.Color
		want string
	}{
		{"ansi16 base", colorspace.NewAnsi16(1), "\x1b[41m  \x1b[0m"},
		{"ansi16 bright", colorspace.NewAnsi16(9), "\x1b[101m  \x1b[0m"},
		{"ansi256", colorspace.NewAnsi256(196), "\x1b[48;5;196m  \x1b[0m"},
		{"true color", colorspace.NewRGB(1, 0, 0), "\x1b[48;2;255;0;0m  \x1b[0m"},
		{"translucent", colorspace.RGB{R: 0, G: 1, B: 0, Alpha: 0.2}, "\x1b[48;2;0;255;0m  \x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Swatch(tt.c); got != tt.want {
				t.Errorf("Swatch() = %q, want %q", got, tt.want)
			}
		})
	}

	if useSwatch("auto", &bytes.Buffer{}) {
		t.Errorf("auto swatch enabled for a buffer")
	}
}
