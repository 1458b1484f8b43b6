package renderer

import (
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Bands       int           // Number of bands the image was split into
	Workers     int           // Maximum number of bands rendered at once
	Duration    time.Duration // Wall time for the whole render
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of a
// canvas, each channel normalized to [0, 1]
func CalculateAverageLuminance(c *canvas.Canvas) float64 {
	pixels := c.Bytes()
	if len(pixels) == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(pixels); i += 3 {
		r := float64(pixels[i]) / 255
		g := float64(pixels[i+1]) / 255
		b := float64(pixels[i+2]) / 255
		total += 0.2126*r + 0.7152*g + 0.0722*b
	}
	return total / float64(len(pixels)/3)
}
