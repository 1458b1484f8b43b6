package renderer

import (
	"bytes"
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

// Ensure testLogger implements core.Logger
var _ core.Logger = (*testLogger)(nil)

func (tl *testLogger) Printf(format string, args ...interface{}) {}

// MockIntegrator returns a fixed color for every ray
type MockIntegrator struct {
	returnColor core.Color
}

func (m *MockIntegrator) RayColor(ray core.Ray, world *scene.World) core.Color {
	return m.returnColor
}

func defaultWorldCamera(t *testing.T, size int) *Camera {
	t.Helper()
	c := NewCamera(size, size, math.Pi/2)
	view := core.ViewTransform(core.NewPoint(0, 0, -5), core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
	if err := c.SetTransform(view); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	return c
}

func TestRender_DefaultWorld(t *testing.T) {
	c, err := Render(defaultWorldCamera(t, 11), scene.DefaultWorld())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	p, err := c.PixelAt(5, 5)
	if err != nil {
		t.Fatalf("PixelAt: %v", err)
	}
	if expected := [3]byte{97, 121, 73}; p != expected {
		t.Errorf("Expected %v at the center, got %v", expected, p)
	}
}

func TestRenderParallel_MatchesSequential(t *testing.T) {
	s, err := scene.NewScene("showcase", scene.CameraConfig{Width: 48, Height: 27})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	camera, err := NewCameraFromConfig(s.Camera)
	if err != nil {
		t.Fatalf("NewCameraFromConfig: %v", err)
	}

	sequential, err := Render(camera, s.World)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	configs := []RenderConfig{
		{MaxDepth: integrator.DefaultMaxDepth, NumWorkers: 1},
		{MaxDepth: integrator.DefaultMaxDepth, NumWorkers: 4, BandHeight: 5},
		{MaxDepth: integrator.DefaultMaxDepth, NumWorkers: 0, BandHeight: 100},
	}
	for _, config := range configs {
		rt, err := NewRaytracer(camera, s.World, config, &testLogger{})
		if err != nil {
			t.Fatalf("NewRaytracer: %v", err)
		}
		parallel, stats, err := rt.RenderParallel()
		if err != nil {
			t.Fatalf("RenderParallel(%+v): %v", config, err)
		}
		if !bytes.Equal(sequential.Bytes(), parallel.Bytes()) {
			t.Errorf("RenderParallel(%+v) differs from Render", config)
		}
		if stats.TotalPixels != 48*27 {
			t.Errorf("Expected %d pixels, got %d", 48*27, stats.TotalPixels)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	camera := defaultWorldCamera(t, 16)
	world := scene.DefaultWorld()

	first, err := RenderParallel(camera, world)
	if err != nil {
		t.Fatalf("RenderParallel: %v", err)
	}
	second, err := RenderParallel(camera, world)
	if err != nil {
		t.Fatalf("RenderParallel: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("Expected identical buffers from repeated renders")
	}
}

func TestRaytracer_UsesIntegrator(t *testing.T) {
	rt, err := NewRaytracer(NewCamera(4, 3, math.Pi/2), scene.DefaultWorld(), DefaultRenderConfig(), &testLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer: %v", err)
	}
	rt.SetIntegrator(&MockIntegrator{returnColor: core.NewColor(0, 1, 0)})

	c, stats, err := rt.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if stats.TotalPixels != 12 || stats.Bands != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if p, _ := c.PixelAt(x, y); p != [3]byte{0, 255, 0} {
				t.Errorf("Pixel (%d,%d): expected green, got %v", x, y, p)
			}
		}
	}
}

func TestNewRaytracer_InvalidConfig(t *testing.T) {
	for _, config := range []RenderConfig{
		{MaxDepth: -1},
		{MaxDepth: 5, NumWorkers: -2},
		{MaxDepth: 5, BandHeight: -1},
	} {
		if _, err := NewRaytracer(NewCamera(2, 2, 1), scene.DefaultWorld(), config, nil); err == nil {
			t.Errorf("Expected error for %+v", config)
		}
	}
}

func TestRender_InvalidCanvasSize(t *testing.T) {
	if _, err := Render(NewCamera(0, 10, math.Pi/2), scene.DefaultWorld()); err == nil {
		t.Error("Expected error for zero-width camera")
	}
}

func TestBandRenderer_OutOfBoundsAborts(t *testing.T) {
	// Camera is wider than the canvas the band belongs to
	small, err := canvas.New(2, 2)
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	band, err := small.Band(0, 2)
	if err != nil {
		t.Fatalf("Band: %v", err)
	}

	br := NewBandRenderer(NewCamera(4, 2, math.Pi/2), scene.DefaultWorld(), &MockIntegrator{})
	pixels, err := br.RenderBand(band)
	if !errors.Is(err, canvas.ErrOutOfBounds) {
		t.Fatalf("Expected ErrOutOfBounds, got %v", err)
	}
	if pixels != 2 {
		t.Errorf("Expected to stop after the first row's in-bounds pixels, got %d", pixels)
	}

	pool := NewWorkerPool(br, 2)
	if _, err := pool.Run(context.Background(), small.Bands(1), nil); !errors.Is(err, canvas.ErrOutOfBounds) {
		t.Errorf("Expected pool to surface ErrOutOfBounds, got %v", err)
	}
}

func TestRenderParallelContext_Progress(t *testing.T) {
	rt, err := NewRaytracer(defaultWorldCamera(t, 12), scene.DefaultWorld(),
		RenderConfig{MaxDepth: 5, NumWorkers: 3, BandHeight: 4}, &testLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer: %v", err)
	}

	var mu sync.Mutex
	rows := 0
	_, stats, err := rt.RenderParallelContext(context.Background(), func(r BandResult) {
		mu.Lock()
		rows += r.Rows
		if r.Rows != r.Y1-r.Y0 || r.Pixels != r.Rows*12 {
			t.Errorf("Inconsistent band result %+v", r)
		}
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("RenderParallelContext: %v", err)
	}
	if rows != 12 || stats.Bands != 3 {
		t.Errorf("Expected 12 rows in 3 bands, got %d rows in %d bands", rows, stats.Bands)
	}
}

func TestRenderParallelContext_Cancelled(t *testing.T) {
	rt, err := NewRaytracer(defaultWorldCamera(t, 8), scene.DefaultWorld(), DefaultRenderConfig(), &testLogger{})
	if err != nil {
		t.Fatalf("NewRaytracer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := rt.RenderParallelContext(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
