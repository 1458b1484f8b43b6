package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Shape is a geometric primitive in its own object space. Implementations
// never see world coordinates; Object handles the transforms.
type Shape interface {
	// LocalIntersect returns the t values where the ray meets the shape, ascending
	LocalIntersect(ray core.Ray) []float64
	// LocalNormalAt returns the outward normal at a point on the surface
	LocalNormalAt(point core.Tuple) core.Tuple
}

// Compile time checks that the reference shapes implement Shape
var (
	_ Shape = (*Sphere)(nil)
	_ Shape = (*Plane)(nil)
)
