package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern provides spatially-varying colors for materials.
// AtPoint is evaluated in pattern space; Inverse maps object space into it.
// A new pattern only writes AtPoint and embeds PatternTransform, which
// supplies Inverse along with SetTransform and Transform.
type Pattern interface {
	AtPoint(point core.Tuple) core.Color
	Inverse() core.Matrix
}

// PatternTransform holds a pattern's transform and its cached inverse.
// It is embedded by every pattern; the zero value is the identity.
type PatternTransform struct {
	transform core.Matrix
	inverse   core.Matrix
	set       bool
}

// SetTransform assigns the pattern transform, rejecting non-invertible matrices
func (pt *PatternTransform) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	pt.transform, pt.inverse, pt.set = m, inv, true
	return nil
}

// Transform returns the pattern transform
func (pt *PatternTransform) Transform() core.Matrix {
	if !pt.set {
		return core.Identity()
	}
	return pt.transform
}

// Inverse returns the cached inverse of the pattern transform
func (pt *PatternTransform) Inverse() core.Matrix {
	if !pt.set {
		return core.Identity()
	}
	return pt.inverse
}

// PatternAtObject evaluates a pattern for a world-space point on an object.
// worldToObject is the inverse of the object's transform.
func PatternAtObject(p Pattern, worldToObject core.Matrix, worldPoint core.Tuple) core.Color {
	objectPoint := worldToObject.MultiplyTuple(worldPoint)
	patternPoint := p.Inverse().MultiplyTuple(objectPoint)
	return p.AtPoint(patternPoint)
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}

// StripePattern alternates between A and B along x
type StripePattern struct {
	PatternTransform
	A, B core.Color
}

// NewStripePattern creates a stripe pattern
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{A: a, B: b}
}

// AtPoint implements Pattern
func (s *StripePattern) AtPoint(point core.Tuple) core.Color {
	if isEven(math.Floor(point.X)) {
		return s.A
	}
	return s.B
}

// GradientPattern blends linearly from A to B over each unit of x
type GradientPattern struct {
	PatternTransform
	A, B core.Color
}

// NewGradientPattern creates a gradient pattern
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{A: a, B: b}
}

// AtPoint implements Pattern
func (g *GradientPattern) AtPoint(point core.Tuple) core.Color {
	distance := g.B.Subtract(g.A)
	fraction := point.X - math.Floor(point.X)
	return g.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates concentric rings in the xz plane
type RingPattern struct {
	PatternTransform
	A, B core.Color
}

// NewRingPattern creates a ring pattern
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{A: a, B: b}
}

// AtPoint implements Pattern
func (r *RingPattern) AtPoint(point core.Tuple) core.Color {
	if isEven(math.Floor(math.Sqrt(point.X*point.X + point.Z*point.Z))) {
		return r.A
	}
	return r.B
}

// CheckerPattern alternates by the summed distance from the origin planes
type CheckerPattern struct {
	PatternTransform
	A, B core.Color
}

// NewCheckerPattern creates a 3D checker pattern
func NewCheckerPattern(a, b core.Color) *CheckerPattern {
	return &CheckerPattern{A: a, B: b}
}

// AtPoint implements Pattern
func (c *CheckerPattern) AtPoint(point core.Tuple) core.Color {
	if isEven(math.Floor(math.Abs(point.X) + math.Abs(point.Y) + math.Abs(point.Z))) {
		return c.A
	}
	return c.B
}

// TestPattern returns the pattern-space coordinates as a color
type TestPattern struct {
	PatternTransform
}

// NewTestPattern creates a coordinate-echo pattern
func NewTestPattern() *TestPattern {
	return &TestPattern{}
}

// AtPoint implements Pattern
func (t *TestPattern) AtPoint(point core.Tuple) core.Color {
	return core.NewColor(point.X, point.Y, point.Z)
}
