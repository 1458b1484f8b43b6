package material

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

var (
	white = core.White
	black = core.Black
)

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()

	if !m.Color.Equals(white) {
		t.Errorf("Expected white color, got %v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected Phong coefficients: %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1 {
		t.Errorf("Unexpected optical parameters: reflective=%g transparency=%g index=%g",
			m.Reflective, m.Transparency, m.RefractiveIndex)
	}
	if m.Pattern != nil {
		t.Errorf("Expected no pattern by default")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Default material should validate, got %v", err)
	}
}

func TestMaterial_CloneSharesPattern(t *testing.T) {
	m := DefaultMaterial()
	m.Pattern = NewStripePattern(white, black)

	clone := m.Clone()
	if clone.Pattern != m.Pattern {
		t.Errorf("Expected clone to share the pattern")
	}

	clone.Ambient = 0.5
	if m.Ambient != 0.1 {
		t.Errorf("Changing the clone must not affect the original")
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Material)
		valid  bool
	}{
		{"glass", func(m *Material) { *m = NewGlass() }, true},
		{"mirror", func(m *Material) { m.Reflective = 1 }, true},
		{"negative reflective", func(m *Material) { m.Reflective = -0.1 }, false},
		{"transparency above one", func(m *Material) { m.Transparency = 1.5 }, false},
		{"index below one", func(m *Material) { m.RefractiveIndex = 0.9 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultMaterial()
			tt.modify(&m)
			err := m.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid material, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Expected validation error for %+v", m)
			}
		})
	}
}

func TestPatterns_AtPoint(t *testing.T) {
	stripe := NewStripePattern(white, black)
	gradient := NewGradientPattern(white, black)
	ring := NewRingPattern(white, black)
	checker := NewCheckerPattern(white, black)

	tests := []struct {
		name     string
		pattern  Pattern
		point    core.Tuple
		expected core.Color
	}{
		{"stripe constant in y", stripe, core.NewPoint(0, 1, 0), white},
		{"stripe constant in z", stripe, core.NewPoint(0, 0, 2), white},
		{"stripe at 0.9", stripe, core.NewPoint(0.9, 0, 0), white},
		{"stripe at 1", stripe, core.NewPoint(1, 0, 0), black},
		{"stripe at -0.1", stripe, core.NewPoint(-0.1, 0, 0), black},
		{"stripe at -1", stripe, core.NewPoint(-1, 0, 0), black},
		{"stripe at -1.1", stripe, core.NewPoint(-1.1, 0, 0), white},
		{"gradient at 0", gradient, core.NewPoint(0, 0, 0), white},
		{"gradient at 0.25", gradient, core.NewPoint(0.25, 0, 0), core.NewColor(0.75, 0.75, 0.75)},
		{"gradient at 0.5", gradient, core.NewPoint(0.5, 0, 0), core.NewColor(0.5, 0.5, 0.5)},
		{"gradient at 0.75", gradient, core.NewPoint(0.75, 0, 0), core.NewColor(0.25, 0.25, 0.25)},
		{"ring at origin", ring, core.NewPoint(0, 0, 0), white},
		{"ring at x=1", ring, core.NewPoint(1, 0, 0), black},
		{"ring at z=1", ring, core.NewPoint(0, 0, 1), black},
		{"ring on diagonal", ring, core.NewPoint(0.708, 0, 0.708), black},
		{"ring at x=2", ring, core.NewPoint(2, 0, 0), white},
		{"checker x 0.99", checker, core.NewPoint(0.99, 0, 0), white},
		{"checker x 1.01", checker, core.NewPoint(1.01, 0, 0), black},
		{"checker y 0.99", checker, core.NewPoint(0, 0.99, 0), white},
		{"checker y 1.01", checker, core.NewPoint(0, 1.01, 0), black},
		{"checker z 0.99", checker, core.NewPoint(0, 0, 0.99), white},
		{"checker z 1.01", checker, core.NewPoint(0, 0, 1.01), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pattern.AtPoint(tt.point); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPatternAtObject_Transforms(t *testing.T) {
	objectScale, err := core.Scaling(2, 2, 2).Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("object transformation", func(t *testing.T) {
		p := NewStripePattern(white, black)
		if got := PatternAtObject(p, objectScale, core.NewPoint(1.5, 0, 0)); !got.Equals(white) {
			t.Errorf("Expected white, got %v", got)
		}
	})

	t.Run("pattern transformation", func(t *testing.T) {
		p := NewStripePattern(white, black)
		if err := p.SetTransform(core.Scaling(2, 2, 2)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got := PatternAtObject(p, core.Identity(), core.NewPoint(1.5, 0, 0)); !got.Equals(white) {
			t.Errorf("Expected white, got %v", got)
		}
	})

	t.Run("both transformations", func(t *testing.T) {
		p := NewTestPattern()
		if err := p.SetTransform(core.Translation(0.5, 1, 1.5)); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got := PatternAtObject(p, objectScale, core.NewPoint(2.5, 3, 3.5))
		if !got.Equals(core.NewColor(0.75, 0.5, 0.25)) {
			t.Errorf("Expected color(0.75, 0.5, 0.25), got %v", got)
		}
	})

	t.Run("material without pattern ignores transforms", func(t *testing.T) {
		m := DefaultMaterial()
		m.Color = core.NewColor(0.2, 0.4, 0.6)
		if got := m.ColorAt(objectScale, core.NewPoint(9, 9, 9)); !got.Equals(m.Color) {
			t.Errorf("Expected material color, got %v", got)
		}
	})
}

func TestPatternTransform_RejectsSingular(t *testing.T) {
	p := NewRingPattern(white, black)
	if err := p.SetTransform(core.Scaling(1, 0, 1)); !errors.Is(err, core.ErrNoInverse) {
		t.Errorf("Expected ErrNoInverse, got %v", err)
	}
	if !p.Transform().Equals(core.Identity()) {
		t.Errorf("Rejected transform must leave identity in place")
	}
}

// halfPattern only writes AtPoint; the transform comes from the embedded field
type halfPattern struct {
	PatternTransform
}

func (h *halfPattern) AtPoint(point core.Tuple) core.Color {
	if point.X < 0 {
		return black
	}
	return white
}

func TestPattern_EmbeddedTransform(t *testing.T) {
	p := &halfPattern{}
	if err := p.SetTransform(core.Translation(1, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	var pattern Pattern = p
	if got := PatternAtObject(pattern, core.Identity(), core.NewPoint(0.5, 0, 0)); !got.Equals(black) {
		t.Errorf("Expected black left of the shifted edge, got %v", got)
	}
	if got := PatternAtObject(pattern, core.Identity(), core.NewPoint(1.5, 0, 0)); !got.Equals(white) {
		t.Errorf("Expected white right of the shifted edge, got %v", got)
	}
}
