package canvas

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrOutOfBounds is returned for pixel accesses outside the canvas
var ErrOutOfBounds = errors.New("pixel out of bounds")

// Canvas is a row-major RGB buffer, three bytes per pixel
type Canvas struct {
	width, height int
	pixels        []byte
}

// New creates a black canvas
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]byte, width*height*3),
	}, nil
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// Bytes exposes the raw buffer
func (c *Canvas) Bytes() []byte { return c.pixels }

// WritePixel stores a color at (x, y)
func (c *Canvas) WritePixel(x, y int, color core.Color) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("write (%d,%d) on %dx%d canvas: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	putColor(c.pixels[(y*c.width+x)*3:], color)
	return nil
}

// PixelAt returns the stored bytes at (x, y)
func (c *Canvas) PixelAt(x, y int) ([3]byte, error) {
	if !c.inBounds(x, y) {
		return [3]byte{}, fmt.Errorf("read (%d,%d) on %dx%d canvas: %w", x, y, c.width, c.height, ErrOutOfBounds)
	}
	i := (y*c.width + x) * 3
	return [3]byte{c.pixels[i], c.pixels[i+1], c.pixels[i+2]}, nil
}

// ColorAt returns the stored pixel at (x, y) converted back to a color
func (c *Canvas) ColorAt(x, y int) (core.Color, error) {
	p, err := c.PixelAt(x, y)
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColor(float64(p[0])/255, float64(p[1])/255, float64(p[2])/255), nil
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// ToByte converts a color channel to 0-255, rounding and clamping
func ToByte(v float64) byte {
	return byte(math.Max(0, math.Min(255, math.Round(v*255))))
}

func putColor(dst []byte, color core.Color) {
	dst[0] = ToByte(color.R)
	dst[1] = ToByte(color.G)
	dst[2] = ToByte(color.B)
}
