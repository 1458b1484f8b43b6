package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultMaxDepth bounds reflection and refraction recursion
const DefaultMaxDepth = 5

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along a camera ray. Implementations
	// must not mutate the world so rays can be traced concurrently.
	RayColor(ray core.Ray, world *scene.World) core.Color
}

// WhittedIntegrator traces one shadow ray per hit and follows mirror
// reflection and refraction until the depth budget runs out
type WhittedIntegrator struct {
	MaxDepth int
}

// NewWhittedIntegrator creates a Whitted integrator. A negative depth is
// treated as zero, which disables reflection and refraction.
func NewWhittedIntegrator(maxDepth int) *WhittedIntegrator {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &WhittedIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray
func (wi *WhittedIntegrator) RayColor(ray core.Ray, world *scene.World) core.Color {
	return ColorAt(world, ray, wi.MaxDepth)
}
