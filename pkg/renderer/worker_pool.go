package renderer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
)

// BandResult contains the result from rendering a band
type BandResult struct {
	Y0, Y1 int
	Rows   int
	Pixels int
}

// WorkerPool renders bands concurrently with at most numWorkers in flight.
// Bands must be disjoint; each worker writes only its own band.
type WorkerPool struct {
	renderer   *BandRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *BandRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{renderer: renderer, numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every band and returns per-band results in band order.
// onBand, if set, is called from the worker goroutines as each band
// finishes. The first band error or context cancellation stops bands that
// have not started yet.
func (wp *WorkerPool) Run(ctx context.Context, bands []*canvas.Band, onBand func(BandResult)) ([]BandResult, error) {
	results := make([]BandResult, len(bands))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)
	for i, band := range bands {
		i, band := i, band
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pixels, err := wp.renderer.RenderBand(band)
			results[i] = BandResult{Y0: band.Y0, Y1: band.Y1, Rows: band.Rows(), Pixels: pixels}
			if err != nil {
				return fmt.Errorf("band [%d,%d): %w", band.Y0, band.Y1, err)
			}
			if onBand != nil {
				onBand(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
