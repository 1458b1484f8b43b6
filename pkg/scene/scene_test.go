package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func TestBuiltinScenes_Build(t *testing.T) {
	for _, info := range BuiltinScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := NewScene(info.ID)
			if err != nil {
				t.Fatalf("NewScene(%q) error: %v", info.ID, err)
			}
			if s.Name != info.Name {
				t.Errorf("Expected name %q, got %q", info.Name, s.Name)
			}
			if s.World == nil || s.World.Len() == 0 {
				t.Fatalf("Scene %q has no objects", info.ID)
			}
			if s.Camera.Width <= 0 || s.Camera.Height <= 0 || s.Camera.FieldOfView <= 0 {
				t.Errorf("Invalid camera config %+v", s.Camera)
			}
			if _, err := s.Camera.ViewTransform().Inverse(); err != nil {
				t.Errorf("View transform not invertible: %v", err)
			}
			for i, o := range s.World.Objects() {
				if err := o.Material.Validate(); err != nil {
					t.Errorf("Object %d: %v", i, err)
				}
			}
		})
	}
}

func TestNewScene_Unknown(t *testing.T) {
	if _, err := NewScene("no-such-scene"); err == nil {
		t.Error("Expected error for unknown scene")
	}
}

func TestNewScene_CameraOverride(t *testing.T) {
	s, err := NewScene("default", CameraConfig{Width: 32, Height: 16})
	if err != nil {
		t.Fatalf("NewScene error: %v", err)
	}
	if s.Camera.Width != 32 || s.Camera.Height != 16 {
		t.Errorf("Expected 32x16, got %dx%d", s.Camera.Width, s.Camera.Height)
	}
	if s.Camera.FieldOfView != math.Pi/3 {
		t.Errorf("Expected field of view to be kept, got %v", s.Camera.FieldOfView)
	}
}

func TestNewScene_MultipleOverrides(t *testing.T) {
	overrides := []CameraConfig{
		{Width: 32, Height: 16},
		{Width: 20, FieldOfView: math.Pi / 2},
	}
	for _, id := range []string{"default", "cornell-box", "sphere-room"} {
		s, err := NewScene(id, overrides...)
		if err != nil {
			t.Fatalf("NewScene(%s): %v", id, err)
		}
		if s.Camera.Width != 20 || s.Camera.Height != 16 || s.Camera.FieldOfView != math.Pi/2 {
			t.Errorf("%s: expected every override folded in, got %+v", id, s.Camera)
		}
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := newCameraConfig(100, 50)
	merged := MergeCameraConfig(base, CameraConfig{
		FieldOfView: math.Pi / 2,
		From:        core.NewPoint(1, 2, 3),
	})

	if merged.Width != 100 || merged.Height != 50 {
		t.Errorf("Expected size to be kept, got %dx%d", merged.Width, merged.Height)
	}
	if merged.FieldOfView != math.Pi/2 {
		t.Errorf("Expected overridden field of view, got %v", merged.FieldOfView)
	}
	if !merged.From.Equals(core.NewPoint(1, 2, 3)) || !merged.To.Equals(base.To) || !merged.Up.Equals(base.Up) {
		t.Errorf("Unexpected view vectors %+v", merged)
	}
}

func TestSphereRoomScene_FloorIsFlattenedSphere(t *testing.T) {
	s := NewSphereRoomScene()
	floor := s.World.Object(0)
	if floor.ShapeName() != "sphere" {
		t.Fatalf("Expected sphere floor, got %s", floor.ShapeName())
	}
	if !floor.Transform().Equals(core.Scaling(10, 0.01, 10)) {
		t.Errorf("Unexpected floor transform\n%v", floor.Transform())
	}

	// The middle sphere sits at (-0.5, 1, 0.5) with radius 1
	xs := s.World.Intersect(core.NewRay(core.NewPoint(-0.5, 1, -5), core.NewVector(0, 0, 1)))
	hit, ok := xs.Hit()
	if !ok {
		t.Fatal("Expected a hit on the middle sphere")
	}
	if math.Abs(hit.T-4.5) > 1e-4 {
		t.Errorf("Expected t=4.5, got %v", hit.T)
	}
}

func TestStripedRoomScene_UsesPlanes(t *testing.T) {
	s := NewStripedRoomScene()
	planes := 0
	for _, o := range s.World.Objects() {
		if _, ok := o.Shape.(*geometry.Plane); ok {
			planes++
		}
	}
	if planes != 4 {
		t.Errorf("Expected 4 planes, got %d", planes)
	}
	if s.World.Object(4).Material.Pattern == nil {
		t.Error("Expected the middle sphere to carry a stripe pattern")
	}
}

func TestOklchToRGB(t *testing.T) {
	// Zero chroma is a neutral gray
	gray := oklchToRGB(0.6, 0, 120)
	if math.Abs(gray.R-gray.G) > 1e-6 || math.Abs(gray.G-gray.B) > 1e-6 {
		t.Errorf("Expected neutral gray, got %v", gray)
	}
	for _, h := range []float64{0, 90, 180, 270} {
		c := oklchToRGB(0.7, 0.4, h)
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Errorf("Hue %v: component %v outside [0, 1]", h, v)
			}
		}
	}
}
