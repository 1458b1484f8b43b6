package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera(160, 120, math.Pi/2)
	if c.HSize != 160 || c.VSize != 120 || c.FieldOfView != math.Pi/2 {
		t.Errorf("Unexpected camera %+v", c)
	}
	if !c.Transform().Equals(core.Identity()) {
		t.Errorf("Expected identity transform, got\n%v", c.Transform())
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.hsize, tt.vsize, math.Pi/2)
			if !core.FloatEquals(c.PixelSize(), 0.01) {
				t.Errorf("Expected pixel size 0.01, got %v", c.PixelSize())
			}
		})
	}
}

func TestCamera_HalfExtents(t *testing.T) {
	wide := NewCamera(200, 100, math.Pi/2)
	if !core.FloatEquals(wide.HalfWidth(), 1) || !core.FloatEquals(wide.HalfHeight(), 0.5) {
		t.Errorf("Wide: expected 1 x 0.5, got %v x %v", wide.HalfWidth(), wide.HalfHeight())
	}
	tall := NewCamera(100, 200, math.Pi/2)
	if !core.FloatEquals(tall.HalfWidth(), 0.5) || !core.FloatEquals(tall.HalfHeight(), 1) {
		t.Errorf("Tall: expected 0.5 x 1, got %v x %v", tall.HalfWidth(), tall.HalfHeight())
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	half := math.Sqrt2 / 2
	tests := []struct {
		name      string
		transform core.Matrix
		px, py    int
		origin    core.Tuple
		direction core.Tuple
	}{
		{
			name:      "center of the canvas",
			transform: core.Identity(),
			px:        100, py: 50,
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, -1),
		},
		{
			name:      "corner of the canvas",
			transform: core.Identity(),
			px:        0, py: 0,
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "transformed camera",
			transform: core.RotationY(math.Pi / 4).Multiply(core.Translation(0, -2, 5)),
			px:        100, py: 50,
			origin:    core.NewPoint(0, 2, -5),
			direction: core.NewVector(half, 0, -half),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(201, 101, math.Pi/2)
			if err := c.SetTransform(tt.transform); err != nil {
				t.Fatalf("SetTransform: %v", err)
			}
			r := c.RayForPixel(tt.px, tt.py)
			if !r.Origin.Equals(tt.origin) {
				t.Errorf("Expected origin %v, got %v", tt.origin, r.Origin)
			}
			if !r.Direction.Equals(tt.direction) {
				t.Errorf("Expected direction %v, got %v", tt.direction, r.Direction)
			}
		})
	}
}

func TestCamera_SetTransformRejectsSingular(t *testing.T) {
	c := NewCamera(10, 10, math.Pi/2)
	view := core.Translation(0, 0, -5)
	if err := c.SetTransform(view); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	err := c.SetTransform(core.Scaling(0, 1, 1))
	if !errors.Is(err, core.ErrNoInverse) {
		t.Fatalf("Expected ErrNoInverse, got %v", err)
	}
	if !c.Transform().Equals(view) {
		t.Errorf("Expected previous transform to stay in effect")
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	config := scene.CameraConfig{
		Width:       11,
		Height:      11,
		FieldOfView: math.Pi / 2,
		From:        core.NewPoint(0, 0, -5),
		To:          core.NewPoint(0, 0, 0),
		Up:          core.NewVector(0, 1, 0),
	}
	c, err := NewCameraFromConfig(config)
	if err != nil {
		t.Fatalf("NewCameraFromConfig: %v", err)
	}
	if !c.Transform().Equals(config.ViewTransform()) {
		t.Errorf("Expected view transform from config")
	}

	bad := []scene.CameraConfig{
		{Width: 0, Height: 10, FieldOfView: 1, From: config.From, To: config.To, Up: config.Up},
		{Width: 10, Height: 10, FieldOfView: 0, From: config.From, To: config.To, Up: config.Up},
		{Width: 10, Height: 10, FieldOfView: 1, From: config.From, To: config.From, Up: config.Up},
	}
	for i, b := range bad {
		if _, err := NewCameraFromConfig(b); err == nil {
			t.Errorf("Config %d: expected error", i)
		}
	}
}
