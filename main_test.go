package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NewtonVan/RayTracing1/pkg/output"
	"github.com/NewtonVan/RayTracing1/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		overrides   renderer.CameraConfig
		depthSet    bool
		expectError bool
	}{
		{"default scene", "default", renderer.CameraConfig{}, false, false},
		{"spheregrid scene", "spheregrid", renderer.CameraConfig{}, false, false},
		{"inside scene", "inside", renderer.CameraConfig{}, false, false},
		{"default with overrides", "default", renderer.CameraConfig{Width: 16, SamplesPerPixel: 1}, false, false},
		{"explicit zero depth", "default", renderer.CameraConfig{}, true, false},

		// Invalid scenes
		{"unknown scene", "nonexistent", renderer.CameraConfig{}, false, true},
		{"empty scene name", "", renderer.CameraConfig{}, false, true},
		{"negative width override", "default", renderer.CameraConfig{Width: -4}, false, true},
		{"oversized image", "default", renderer.CameraConfig{Width: 2000000000, AspectRatio: 1}, false, true},
		{"negative depth", "default", renderer.CameraConfig{MaxDepth: -1}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType, tt.overrides, tt.depthSet)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", scene.CameraConfig.Width)
			}
			if tt.overrides.Width != 0 && scene.CameraConfig.Width != tt.overrides.Width {
				t.Errorf("Expected width override %d, got %d", tt.overrides.Width, scene.CameraConfig.Width)
			}
			if tt.depthSet && scene.CameraConfig.MaxDepth != tt.overrides.MaxDepth {
				t.Errorf("Expected explicit depth %d, got %d", tt.overrides.MaxDepth, scene.CameraConfig.MaxDepth)
			}
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expectErr bool
		check     func(t *testing.T, opts options)
	}{
		{
			name: "defaults",
			args: nil,
			check: func(t *testing.T, opts options) {
				if opts.sceneType != "default" || opts.format != "ppm" || opts.out != "" {
					t.Errorf("Unexpected defaults %+v", opts)
				}
				if opts.overrides != (renderer.CameraConfig{}) {
					t.Errorf("Expected no camera overrides, got %+v", opts.overrides)
				}
				if opts.seedSet || opts.depthSet {
					t.Error("Seed and depth should not be marked as set")
				}
			},
		},
		{
			name: "camera overrides",
			args: []string{"-width", "64", "-aspect", "2", "-spp", "3", "-depth", "7", "-seed", "9"},
			check: func(t *testing.T, opts options) {
				expected := renderer.CameraConfig{AspectRatio: 2, Width: 64, SamplesPerPixel: 3, MaxDepth: 7}
				if opts.overrides != expected {
					t.Errorf("Expected %+v, got %+v", expected, opts.overrides)
				}
				if !opts.seedSet || opts.seed != 9 {
					t.Errorf("Expected seed 9, got %d (set=%v)", opts.seed, opts.seedSet)
				}
			},
		},
		{
			name: "explicit zero seed counts as set",
			args: []string{"-seed", "0"},
			check: func(t *testing.T, opts options) {
				if !opts.seedSet {
					t.Error("Expected seed to be marked as set")
				}
			},
		},
		{
			name: "png inferred from output extension",
			args: []string{"-out", "render.PNG"},
			check: func(t *testing.T, opts options) {
				if opts.format != "png" {
					t.Errorf("Expected png format, got %q", opts.format)
				}
			},
		},
		{
			name: "explicit format wins over extension",
			args: []string{"-out", "render.png", "-format", "PPM"},
			check: func(t *testing.T, opts options) {
				if opts.format != "ppm" {
					t.Errorf("Expected ppm format, got %q", opts.format)
				}
			},
		},
		{name: "zero width", args: []string{"-width", "0"}, expectErr: true},
		{name: "negative aspect", args: []string{"-aspect", "-1"}, expectErr: true},
		{name: "zero samples", args: []string{"-spp", "0"}, expectErr: true},
		{
			name: "zero depth is an explicit override",
			args: []string{"-depth", "0"},
			check: func(t *testing.T, opts options) {
				if !opts.depthSet || opts.overrides.MaxDepth != 0 {
					t.Errorf("Expected explicit zero depth, got %d (set=%v)", opts.overrides.MaxDepth, opts.depthSet)
				}
			},
		},
		{name: "negative depth", args: []string{"-depth", "-1"}, expectErr: true},
		{name: "unknown format", args: []string{"-format", "exr"}, expectErr: true},
		{name: "unknown flag", args: []string{"-bogus"}, expectErr: true},
		{name: "stray argument", args: []string{"default"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args, io.Discard)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for %v", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.check(t, opts)
		})
	}
}

func TestParseFlags_InvalidWrapsCameraError(t *testing.T) {
	_, err := parseFlags([]string{"-spp", "-2"}, io.Discard)
	if !errors.Is(err, renderer.ErrInvalidSamples) {
		t.Errorf("Expected ErrInvalidSamples, got %v", err)
	}
}

func TestRun_PPMToStdout(t *testing.T) {
	opts, err := parseFlags([]string{"-width", "16", "-spp", "1", "-depth", "3", "-seed", "42"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	var stdout, logs bytes.Buffer
	if err := run(opts, &stdout, log.New(&logs, "", 0)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	img, err := output.DecodePPM(&stdout)
	if err != nil {
		t.Fatalf("stdout is not a valid PPM: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 9 {
		t.Errorf("Expected 16x9 image, got %v", img.Bounds())
	}

	for _, want := range []string{"seed 42", "Scanlines remaining: 9", "Done.", "Render completed"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, logs.String())
		}
	}
}

func TestRun_ZeroDepthRendersBlack(t *testing.T) {
	opts, err := parseFlags([]string{"-width", "16", "-spp", "2", "-depth", "0", "-seed", "1"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run(opts, &stdout, log.New(io.Discard, "", 0)); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 3+16*9 {
		t.Fatalf("Expected %d lines, got %d", 3+16*9, len(lines))
	}
	for _, line := range lines[3:] {
		if line != "0 0 0" {
			t.Fatalf("Expected every pixel black at depth 0, got %q", line)
		}
	}
}

func TestRun_SameSeedSameImage(t *testing.T) {
	render := func() string {
		opts, err := parseFlags([]string{"-scene", "spheregrid", "-width", "12", "-spp", "2", "-depth", "4", "-seed", "7"}, io.Discard)
		if err != nil {
			t.Fatal(err)
		}
		var stdout bytes.Buffer
		if err := run(opts, &stdout, log.New(io.Discard, "", 0)); err != nil {
			t.Fatal(err)
		}
		return stdout.String()
	}

	if render() != render() {
		t.Error("Expected identical output for identical seeds")
	}
}

func TestRun_PNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.png")
	opts, err := parseFlags([]string{"-width", "10", "-aspect", "1", "-spp", "1", "-depth", "2", "-out", path}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run(opts, &stdout, log.New(io.Discard, "", 0)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected nothing on stdout when -out is set, got %d bytes", stdout.Len())
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
		t.Errorf("Expected 10x10 image, got %v", img.Bounds())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts options
	}{
		{"unknown scene", options{sceneType: "nonexistent", format: "ppm"}},
		{"oversized png", options{sceneType: "default", format: "png",
			overrides: renderer.CameraConfig{Width: 2000000000, AspectRatio: 1}}},
		{"tiny aspect", options{sceneType: "default", format: "ppm",
			overrides: renderer.CameraConfig{AspectRatio: 1e-38}}},
		{"unwritable output", options{sceneType: "default", format: "ppm", out: filepath.Join(t.TempDir(), "missing", "out.ppm"),
			overrides: renderer.CameraConfig{Width: 4, SamplesPerPixel: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.opts, io.Discard, log.New(io.Discard, "", 0)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf)

	for _, want := range []string{"-scene", "-spp", "-format", "default", "spheregrid", "inside"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Expected help to mention %q", want)
		}
	}
}
