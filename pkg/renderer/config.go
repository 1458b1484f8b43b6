package renderer

import (
	"fmt"
	"runtime"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth   int // Reflection/refraction budget per camera ray
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	BandHeight int // Rows per parallel band (0 = one row per band)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:   integrator.DefaultMaxDepth,
		NumWorkers: 0,
		BandHeight: 0,
	}
}

// Validate rejects negative settings
func (c RenderConfig) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth %d is negative", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count %d is negative", c.NumWorkers)
	}
	if c.BandHeight < 0 {
		return fmt.Errorf("band height %d is negative", c.BandHeight)
	}
	return nil
}

func (c RenderConfig) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

func (c RenderConfig) bandHeight() int {
	if c.BandHeight <= 0 {
		return 1
	}
	return c.BandHeight
}
