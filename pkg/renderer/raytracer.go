package renderer

import (
	"context"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Raytracer renders a world through a camera into a canvas
type Raytracer struct {
	camera     *Camera
	world      *scene.World
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a raytracer using the Whitted integrator. A nil
// logger disables logging.
func NewRaytracer(camera *Camera, world *scene.World, config RenderConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewWhittedIntegrator(config.MaxDepth),
		config:     config,
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// Render shades every pixel in row order on the calling goroutine
func (rt *Raytracer) Render() (*canvas.Canvas, RenderStats, error) {
	start := time.Now()
	c, err := canvas.New(rt.camera.HSize, rt.camera.VSize)
	if err != nil {
		return nil, RenderStats{}, err
	}

	band, err := c.Band(0, c.Height())
	if err != nil {
		return nil, RenderStats{}, err
	}
	rt.logger.Printf("Rendering %dx%d sequentially (max depth %d)...\n", c.Width(), c.Height(), rt.config.MaxDepth)

	pixels, err := NewBandRenderer(rt.camera, rt.world, rt.integrator).RenderBand(band)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{TotalPixels: pixels, Bands: 1, Workers: 1, Duration: time.Since(start)}
	rt.logger.Printf("Render completed in %v\n", stats.Duration)
	return c, stats, nil
}

// RenderParallel splits the image into row bands rendered concurrently.
// Output is identical to Render.
func (rt *Raytracer) RenderParallel() (*canvas.Canvas, RenderStats, error) {
	return rt.RenderParallelContext(context.Background(), nil)
}

// RenderParallelContext is RenderParallel with cancellation and an optional
// per-band completion callback
func (rt *Raytracer) RenderParallelContext(ctx context.Context, onBand func(BandResult)) (*canvas.Canvas, RenderStats, error) {
	start := time.Now()
	c, err := canvas.New(rt.camera.HSize, rt.camera.VSize)
	if err != nil {
		return nil, RenderStats{}, err
	}

	bands := c.Bands(rt.config.bandHeight())
	pool := NewWorkerPool(NewBandRenderer(rt.camera, rt.world, rt.integrator), rt.config.workers())
	rt.logger.Printf("Rendering %dx%d in %d bands using %d workers (max depth %d)...\n",
		c.Width(), c.Height(), len(bands), pool.GetNumWorkers(), rt.config.MaxDepth)

	results, err := pool.Run(ctx, bands, onBand)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{Bands: len(bands), Workers: pool.GetNumWorkers()}
	for _, r := range results {
		stats.TotalPixels += r.Pixels
	}
	stats.Duration = time.Since(start)
	rt.logger.Printf("Render completed in %v\n", stats.Duration)
	return c, stats, nil
}

// Render renders world through camera sequentially with default settings
func Render(camera *Camera, world *scene.World) (*canvas.Canvas, error) {
	rt, err := NewRaytracer(camera, world, DefaultRenderConfig(), nil)
	if err != nil {
		return nil, err
	}
	c, _, err := rt.Render()
	return c, err
}

// RenderParallel renders world through camera across all CPUs with default settings
func RenderParallel(camera *Camera, world *scene.World) (*canvas.Canvas, error) {
	rt, err := NewRaytracer(camera, world, DefaultRenderConfig(), nil)
	if err != nil {
		return nil, err
	}
	c, _, err := rt.RenderParallel()
	return c, err
}
