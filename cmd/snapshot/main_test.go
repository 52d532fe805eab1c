package main

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	_ "image/png"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"

	"maze-raycaster/internal/render"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want render.Features
	}{
		{"overview", render.ModeOverview},
		{"WALLS", render.ModeWalls},
		{"sprites", render.ModeSprites},
		{"full", render.ModeFull},
		{"", render.ModeFull},
	}
	for _, tc := range cases {
		got, err := parseMode(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("parseMode(%q) = %v, %v", tc.in, got, err)
		}
	}
	if _, err := parseMode("fisheye"); !errors.Is(err, errUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestRunWritesImages(t *testing.T) {
	for _, name := range []string{"frame.png", "frame.bmp"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), name)
			if err := run(options{out: out, mode: "full"}, zerolog.Nop()); err != nil {
				t.Fatalf("run: %v", err)
			}
			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			cfg, _, err := image.DecodeConfig(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if cfg.Width != 320 || cfg.Height != 200 {
				t.Errorf("image %dx%d, want 320x200", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestRunRejectsUnknownExtension(t *testing.T) {
	err := run(options{out: filepath.Join(t.TempDir(), "frame.gif")}, zerolog.Nop())
	if !errors.Is(err, errUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}
