package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane through the object-space origin
type Plane struct{}

var planeNormal = core.NewVector(0, 1, 0)

// LocalIntersect returns the single crossing of the y=0 plane
func (p *Plane) LocalIntersect(ray core.Ray) []float64 {
	// Parallel (or coplanar) rays never cross
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is +Y everywhere
func (p *Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return planeNormal
}
