package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ObjectHandle identifies an object within the world that owns it
type ObjectHandle int

// Intersection records where along a ray an object was crossed
type Intersection struct {
	T      float64
	Object ObjectHandle
}

// NewIntersection creates a new Intersection
func NewIntersection(t float64, object ObjectHandle) Intersection {
	return Intersection{T: t, Object: object}
}

// Equals compares t within Epsilon and the object by identity
func (i Intersection) Equals(other Intersection) bool {
	return i.Object == other.Object && core.FloatEquals(i.T, other.T)
}

// Intersections is a list of intersections along a single ray
type Intersections []Intersection

// Sort orders the list by ascending t, keeping the order of equal entries
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest strictly positive t.
// Ties go to the earlier entry. ok is false when the ray escapes.
func (xs Intersections) Hit() (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !ok || x.T < hit.T {
			hit, ok = x, true
		}
	}
	return hit, ok
}
