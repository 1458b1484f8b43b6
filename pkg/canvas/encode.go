package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ppmValuesPerLine keeps PPM lines under 70 characters
const ppmValuesPerLine = 15

// WritePPM encodes the canvas as plain PPM (P3)
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}

	for i, v := range c.pixels {
		switch {
		case i == 0:
		case i%ppmValuesPerLine == 0:
			bw.WriteByte('\n')
		default:
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(int(v)))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// ToPPM returns the PPM encoding as a string
func (c *Canvas) ToPPM() string {
	var sb strings.Builder
	c.WritePPM(&sb)
	return sb.String()
}

// ToImage copies the canvas into an opaque RGBA image
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			i := (y*c.width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: c.pixels[i], G: c.pixels[i+1], B: c.pixels[i+2], A: 255})
		}
	}
	return img
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// Save writes the canvas to path, choosing the format from the extension
func (c *Canvas) Save(path string) error {
	var encode func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = c.WritePNG
	case ".ppm":
		encode = c.WritePPM
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
