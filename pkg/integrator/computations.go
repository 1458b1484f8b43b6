package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Computations caches everything shading needs to know about one hit
type Computations struct {
	T      float64
	Handle geometry.ObjectHandle
	Object *geometry.Object

	Point      core.Tuple
	OverPoint  core.Tuple // Point nudged off the surface, origin for shadow and reflection rays
	UnderPoint core.Tuple // Point nudged below the surface, origin for refraction rays
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool

	N1 float64 // Refractive index of the medium being left
	N2 float64 // Refractive index of the medium being entered
}

// PrepareComputations derives shading state for hit. xs is the full sorted
// intersection list the hit came from and is walked to find n1 and n2.
func PrepareComputations(w *scene.World, hit geometry.Intersection, ray core.Ray, xs geometry.Intersections) Computations {
	obj := w.Object(hit.Object)
	comps := Computations{
		T:      hit.T,
		Handle: hit.Object,
		Object: obj,
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = obj.NormalAt(comps.Point)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(w, hit, xs)
	return comps
}

// refractiveIndices walks xs keeping the objects the ray is currently inside.
// An object is entered on its first intersection and left on the next.
func refractiveIndices(w *scene.World, hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = material.IndexVacuum, material.IndexVacuum
	var containers []geometry.ObjectHandle

	outermost := func() float64 {
		if len(containers) == 0 {
			return material.IndexVacuum
		}
		return w.Object(containers[len(containers)-1]).Material.RefractiveIndex
	}

	for _, i := range xs {
		isHit := i == hit
		if isHit {
			n1 = outermost()
		}

		if idx := indexOf(containers, i.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, i.Object)
		}

		if isHit {
			n2 = outermost()
			break
		}
	}
	return n1, n2
}

func indexOf(handles []geometry.ObjectHandle, h geometry.ObjectHandle) int {
	for i, x := range handles {
		if x == h {
			return i
		}
	}
	return -1
}
