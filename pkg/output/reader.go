package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
)

// DecodePPM reads a plain-text PPM image as written by PPMWriter
func DecodePPM(r io.Reader) (*image.RGBA, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read %s: %w", what, err)
			}
			return "", fmt.Errorf("failed to read %s: %w", what, io.ErrUnexpectedEOF)
		}
		return scanner.Text(), nil
	}
	nextInt := func(what string, limit int) (int, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", what, tok, err)
		}
		if v < 0 || v > limit {
			return 0, fmt.Errorf("%s %d out of range [0, %d]", what, v, limit)
		}
		return v, nil
	}

	magic, err := next("magic")
	if err != nil {
		return nil, err
	}
	if magic != PPMMagic {
		return nil, fmt.Errorf("unsupported PPM magic %q", magic)
	}
	width, err := nextInt("width", math.MaxInt32)
	if err != nil {
		return nil, err
	}
	height, err := nextInt("height", math.MaxInt32)
	if err != nil {
		return nil, err
	}
	maxVal, err := nextInt("max value", 255)
	if err != nil {
		return nil, err
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("unsupported max value %d", maxVal)
	}

	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c [3]int
			for k := range c {
				if c[k], err = nextInt("channel", 255); err != nil {
					return nil, fmt.Errorf("pixel (%d, %d): %w", x, y, err)
				}
			}
			img.SetRGBA(x, y, color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255})
		}
	}

	if scanner.Scan() {
		return nil, fmt.Errorf("unexpected data after %dx%d pixels: %q", width, height, scanner.Text())
	}
	return img, nil
}

// MeanAbsoluteDifference returns the mean per-channel difference of two equally sized images, in [0, 1]
func MeanAbsoluteDifference(a, b image.Image) (float64, error) {
	if a.Bounds().Size() != b.Bounds().Size() {
		return 0, fmt.Errorf("image sizes differ: %v vs %v", a.Bounds().Size(), b.Bounds().Size())
	}

	ab, bb := a.Bounds(), b.Bounds()
	var total float64
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			r1, g1, b1, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			r2, g2, b2, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			total += absDiff(r1, r2) + absDiff(g1, g2) + absDiff(b1, b2)
		}
	}

	n := float64(ab.Dx() * ab.Dy() * 3)
	if n == 0 {
		return 0, nil
	}
	// RGBA returns 16-bit channels
	return total / n / 65535.0, nil
}

func absDiff(a, b uint32) float64 {
	return math.Abs(float64(a) - float64(b))
}
