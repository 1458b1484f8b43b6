package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// World owns a light and an arena of objects. Objects are addressed by the
// handle returned from Add, which stays valid for the World's lifetime.
type World struct {
	Light   lights.PointLight
	objects []*geometry.Object
}

// NewWorld creates a world lit by light containing objects, in order
func NewWorld(light lights.PointLight, objects ...*geometry.Object) (*World, error) {
	w := &World{Light: light}
	for _, o := range objects {
		if _, err := w.Add(o); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Add takes ownership of an object and returns its handle
func (w *World) Add(o *geometry.Object) (geometry.ObjectHandle, error) {
	if o == nil || o.Shape == nil {
		return -1, fmt.Errorf("cannot add object without a shape")
	}
	if err := o.Material.Validate(); err != nil {
		return -1, fmt.Errorf("object %d (%s): %w", len(w.objects), o.ShapeName(), err)
	}
	w.objects = append(w.objects, o)
	return geometry.ObjectHandle(len(w.objects) - 1), nil
}

// Object resolves a handle. It panics on a handle this world did not issue.
func (w *World) Object(h geometry.ObjectHandle) *geometry.Object {
	return w.objects[h]
}

// Objects returns the objects in handle order
func (w *World) Objects() []*geometry.Object {
	return w.objects
}

// Len returns the number of objects
func (w *World) Len() int {
	return len(w.objects)
}

// Intersect collects every object's intersections with the ray, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for i, o := range w.objects {
		for _, t := range o.Intersect(ray) {
			xs = append(xs, geometry.NewIntersection(t, geometry.ObjectHandle(i)))
		}
	}
	xs.Sort()
	return xs
}

// DefaultWorld returns the canonical two-sphere world: an outer unit sphere
// and a concentric sphere of radius 0.5, lit from the upper left
func DefaultWorld() *World {
	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	outer := geometry.NewSphere()
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)

	inner := geometry.NewSphere()
	mustTransform(inner, core.Scaling(0.5, 0.5, 0.5))

	w, err := NewWorld(light, outer, inner)
	if err != nil {
		panic(err)
	}
	return w
}

// mustTransform is for hard-coded scene transforms known to be invertible
func mustTransform(o *geometry.Object, m core.Matrix) {
	if err := o.SetTransform(m); err != nil {
		panic(err)
	}
}
