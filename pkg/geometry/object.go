package geometry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Object places a Shape in the world with its own transform and material
type Object struct {
	ID       uuid.UUID
	Shape    Shape
	Material material.Material

	transform    core.Matrix // object space -> world space
	inverse      core.Matrix // world space -> object space
	normalMatrix core.Matrix // transpose of inverse
}

// NewObject wraps a shape with the identity transform and default material
func NewObject(shape Shape) *Object {
	return &Object{
		ID:           uuid.New(),
		Shape:        shape,
		Material:     material.DefaultMaterial(),
		transform:    core.Identity(),
		inverse:      core.Identity(),
		normalMatrix: core.Identity(),
	}
}

// NewSphere creates a unit sphere object
func NewSphere() *Object {
	return NewObject(&Sphere{})
}

// NewPlane creates an xz plane object
func NewPlane() *Object {
	return NewObject(&Plane{})
}

// NewGlassSphere creates a unit sphere with a glass material
func NewGlassSphere() *Object {
	o := NewSphere()
	o.Material = material.NewGlass()
	return o
}

// SetTransform assigns the object transform. Non-invertible transforms are
// rejected and the previous transform stays in effect.
func (o *Object) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("object %s transform: %w", o.ID, err)
	}
	o.transform = m
	o.inverse = inv
	o.normalMatrix = inv.Transpose()
	return nil
}

// Transform returns the object-to-world transform
func (o *Object) Transform() core.Matrix { return o.transform }

// Inverse returns the world-to-object transform
func (o *Object) Inverse() core.Matrix { return o.inverse }

// SetMaterial replaces the object's material
func (o *Object) SetMaterial(m material.Material) {
	o.Material = m
}

// Intersect converts a world-space ray into object space and returns the
// shape's t values. t is preserved between spaces since the direction is
// not renormalized.
func (o *Object) Intersect(ray core.Ray) []float64 {
	return o.Shape.LocalIntersect(ray.Transform(o.inverse))
}

// NormalAt returns the world-space unit normal at a world-space point
func (o *Object) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := o.inverse.MultiplyTuple(worldPoint)
	localNormal := o.Shape.LocalNormalAt(localPoint)
	worldNormal := o.normalMatrix.MultiplyTuple(localNormal)
	return worldNormal.AsVector().Normalize()
}

// ColorAt returns the unlit surface color at a world-space point
func (o *Object) ColorAt(worldPoint core.Tuple) core.Color {
	return o.Material.ColorAt(o.inverse, worldPoint)
}

// Clone copies the object under a new identity. The material pattern is shared.
func (o *Object) Clone() *Object {
	c := *o
	c.ID = uuid.New()
	c.Material = o.Material.Clone()
	return &c
}

// ShapeName returns a short name for the shape variant
func (o *Object) ShapeName() string {
	switch o.Shape.(type) {
	case *Sphere:
		return "sphere"
	case *Plane:
		return "plane"
	default:
		return fmt.Sprintf("%T", o.Shape)
	}
}
