package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// PointLight is an infinitely small light source with no size or falloff
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting evaluates the Phong reflection model at a surface point.
// obj supplies the transform used to sample the material pattern and may be
// nil for an untransformed surface.
func Lighting(m material.Material, obj *geometry.Object, light PointLight, point, eye, normal core.Tuple, inShadow bool) core.Color {
	worldToObject := core.Identity()
	if obj != nil {
		worldToObject = obj.Inverse()
	}

	// Combine the surface color with the light's color/intensity
	effectiveColor := m.ColorAt(worldToObject, point).MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()

	// Cosine of the angle between light vector and normal; negative means
	// the light is on the other side of the surface
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal <= 0 {
		return ambient
	}
	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	// Cosine of the angle between reflection vector and eye; negative means
	// the light reflects away from the eye
	specular := core.Black
	reflectv := lightv.Negate().Reflect(normal)
	if reflectDotEye := reflectv.Dot(eye); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
