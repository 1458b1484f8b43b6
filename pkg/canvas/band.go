package canvas

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Band is a contiguous run of rows backed by the canvas buffer. Bands from
// the same canvas over disjoint rows can be written concurrently.
type Band struct {
	Y0, Y1 int // Rows [Y0, Y1)
	width  int
	pixels []byte
}

// Band returns the rows [y0, y1) as a writable band
func (c *Canvas) Band(y0, y1 int) (*Band, error) {
	if y0 < 0 || y1 > c.height || y0 >= y1 {
		return nil, fmt.Errorf("band [%d,%d) on %d rows: %w", y0, y1, c.height, ErrOutOfBounds)
	}
	start, end := y0*c.width*3, y1*c.width*3
	return &Band{
		Y0:     y0,
		Y1:     y1,
		width:  c.width,
		pixels: c.pixels[start:end:end],
	}, nil
}

// Bands splits the canvas into bands of at most height rows
func (c *Canvas) Bands(height int) []*Band {
	if height <= 0 {
		height = 1
	}
	var bands []*Band
	for y := 0; y < c.height; y += height {
		b, _ := c.Band(y, min(y+height, c.height))
		bands = append(bands, b)
	}
	return bands
}

// WritePixel stores a color at canvas coordinates (x, y), which must lie in the band
func (b *Band) WritePixel(x, y int, color core.Color) error {
	if x < 0 || x >= b.width || y < b.Y0 || y >= b.Y1 {
		return fmt.Errorf("write (%d,%d) on band rows [%d,%d): %w", x, y, b.Y0, b.Y1, ErrOutOfBounds)
	}
	putColor(b.pixels[((y-b.Y0)*b.width+x)*3:], color)
	return nil
}

// Rows returns the number of rows in the band
func (b *Band) Rows() int { return b.Y1 - b.Y0 }
