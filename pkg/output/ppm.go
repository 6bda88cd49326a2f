// Package output provides sinks that receive rendered pixels in scanline order.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
)

// PPMMagic is the header token of a plain-text PPM image
const PPMMagic = "P3"

// MaxPixels bounds the images PNGWriter and DecodePPM will allocate
const MaxPixels = 1 << 28

var (
	// ErrHeaderNotWritten is returned when pixels arrive before the header
	ErrHeaderNotWritten = errors.New("header not written")
	// ErrImageTooLarge is returned for dimensions that are negative or exceed MaxPixels
	ErrImageTooLarge = errors.New("image dimensions out of range")
)

// checkDimensions rejects sizes that cannot be allocated as an image
func checkDimensions(width, height int) error {
	if width < 0 || height < 0 || width > MaxPixels || height > MaxPixels ||
		int64(width)*int64(height) > MaxPixels {
		return fmt.Errorf("%dx%d: %w", width, height, ErrImageTooLarge)
	}
	return nil
}

// PPMWriter streams a plain-text PPM image: a three line header, then one "r g b" line per pixel
type PPMWriter struct {
	w       *bufio.Writer
	started bool
}

// NewPPMWriter creates a PPM writer over w. Output is buffered until Close.
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the magic token, the dimensions and the maximum channel value
func (p *PPMWriter) WriteHeader(width, height int) error {
	if p.started {
		return errors.New("header already written")
	}
	p.started = true
	_, err := fmt.Fprintf(p.w, "%s\n%d %d\n255\n", PPMMagic, width, height)
	return err
}

// WritePixel writes one pixel; alpha is ignored
func (p *PPMWriter) WritePixel(c color.RGBA) error {
	if !p.started {
		return ErrHeaderNotWritten
	}
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", c.R, c.G, c.B)
	return err
}

// Close flushes buffered output. The underlying writer is not closed.
func (p *PPMWriter) Close() error {
	return p.w.Flush()
}
