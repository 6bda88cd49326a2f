package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// PNGWriter collects pixels into an image and encodes it as PNG on Close
type PNGWriter struct {
	w    io.Writer
	img  *image.RGBA
	next int
}

// NewPNGWriter creates a PNG writer over w
func NewPNGWriter(w io.Writer) *PNGWriter {
	return &PNGWriter{w: w}
}

// WriteHeader allocates the image buffer
func (p *PNGWriter) WriteHeader(width, height int) error {
	if p.img != nil {
		return fmt.Errorf("header already written")
	}
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	p.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// WritePixel stores the next pixel in scanline order
func (p *PNGWriter) WritePixel(c color.RGBA) error {
	if p.img == nil {
		return ErrHeaderNotWritten
	}
	width := p.img.Bounds().Dx()
	if p.next >= width*p.img.Bounds().Dy() {
		return fmt.Errorf("pixel %d beyond %dx%d image", p.next, width, p.img.Bounds().Dy())
	}
	p.img.SetRGBA(p.next%width, p.next/width, c)
	p.next++
	return nil
}

// Image returns the collected image, nil before WriteHeader
func (p *PNGWriter) Image() *image.RGBA {
	return p.img
}

// Close encodes the image. Missing pixels stay transparent black.
func (p *PNGWriter) Close() error {
	if p.img == nil {
		return ErrHeaderNotWritten
	}
	if err := png.Encode(p.w, p.img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
