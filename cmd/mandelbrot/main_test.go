package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	mandel "github.com/jccutler/mathvis"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		args       []string
		flags, pos []string
	}{
		{
			args: []string{"-2,1", "-1.5,1.5", "100", "50"},
			pos:  []string{"-2,1", "-1.5,1.5", "100", "50"},
		},
		{
			args:  []string{"-out", "m.png", "-2,1", "-1.5,1.5", "100", "50"},
			flags: []string{"-out", "m.png"},
			pos:   []string{"-2,1", "-1.5,1.5", "100", "50"},
		},
		{
			args:  []string{"-2,1", "-workers=4", "-1.5,1.5", "-v", "100", "--bounds", "80x40", "50"},
			flags: []string{"-workers=4", "-v", "--bounds", "80x40"},
			pos:   []string{"-2,1", "-1.5,1.5", "100", "50"},
		},
		{
			args:  []string{"-region", "full", "100", "-5"},
			flags: []string{"-region", "full"},
			pos:   []string{"100", "-5"},
		},
		{
			args:  []string{"-v", "--", "-workers", "3"},
			flags: []string{"-v"},
			pos:   []string{"-workers", "3"},
		},
		{
			args:  []string{"-h"},
			flags: []string{"-h"},
		},
	}
	for _, tt := range tests {
		fs := newFlagSet(&options{}, &bytes.Buffer{})
		flags, pos := splitArgs(fs, tt.args)
		if !reflect.DeepEqual(flags, tt.flags) {
			t.Errorf("splitArgs(%q) flags: got %q, want %q", tt.args, flags, tt.flags)
		}
		if !reflect.DeepEqual(pos, tt.pos) {
			t.Errorf("splitArgs(%q) positional: got %q, want %q", tt.args, pos, tt.pos)
		}
	}
}

func TestParseJob(t *testing.T) {
	j, err := parseJob(options{}, []string{"-2.0,1.0", "-1.5,1.5", "100", "1"})
	if err != nil {
		t.Fatalf("parseJob: %v", err)
	}
	want := job{region: mandel.Full, depth: 100, resolution: 1}
	if j != want {
		t.Errorf("got %+v, want %+v", j, want)
	}

	j, err = parseJob(options{region: "Seahorse-Valley"}, []string{"250", "4000"})
	if err != nil {
		t.Fatalf("parseJob with region: %v", err)
	}
	want = job{region: mandel.SeahorseValley, depth: 250, resolution: 4000}
	if j != want {
		t.Errorf("got %+v, want %+v", j, want)
	}
}

func TestParseJobErrors(t *testing.T) {
	tests := []struct {
		opts options
		pos  []string
	}{
		{options{}, nil},
		{options{}, []string{"-2,1", "-1,1", "100"}},
		{options{}, []string{"-2;1", "-1,1", "100", "10"}},
		{options{}, []string{"-2,x", "-1,1", "100", "10"}},
		{options{}, []string{"-2,1", "-1,1", "deep", "10"}},
		{options{}, []string{"-2,1", "-1,1", "100", "2.5"}},
		{options{region: "nowhere"}, []string{"100", "10"}},
		{options{region: "full"}, []string{"100"}},
	}
	for _, tt := range tests {
		if _, err := parseJob(tt.opts, tt.pos); !errors.Is(err, mandel.ErrInvalidArguments) {
			t.Errorf("parseJob(%+v, %q): got %v, want %v", tt.opts, tt.pos, err, mandel.ErrInvalidArguments)
		}
	}
}

func TestRunTooFewArguments(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-2,1", "-1,1"}, &out)
	if !errors.Is(err, mandel.ErrInvalidArguments) {
		t.Errorf("got %v, want %v", err, mandel.ErrInvalidArguments)
	}
	if !strings.Contains(out.String(), mandel.Usage) {
		t.Errorf("stdout = %q, want usage", out.String())
	}
}

func TestRunInvalidResolution(t *testing.T) {
	err := run([]string{"-out", filepath.Join(t.TempDir(), "m.png"), "-2,1", "-1.5,1.5", "100", "0"}, &bytes.Buffer{})
	if !errors.Is(err, mandel.ErrInvalidResolution) {
		t.Errorf("got %v, want %v", err, mandel.ErrInvalidResolution)
	}
}

func TestRunWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.png")
	err := run([]string{"-out", path, "-bounds", "90x60", "-workers", "2", "-2,1", "-1.5,1.5", "50", "20"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig: %v", err)
	}
	if cfg.Width != 60 || cfg.Height != 60 {
		t.Errorf("size = %dx%d, want 60x60", cfg.Width, cfg.Height)
	}
}
