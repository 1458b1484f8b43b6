package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ColorAt returns the color seen along ray. Rays that escape are black.
// remaining is the reflection/refraction budget for this ray.
func ColorAt(w *scene.World, ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := PrepareComputations(w, hit, ray, xs)
	return ShadeHit(w, comps, remaining)
}

// ShadeHit combines direct Phong lighting with reflected and refracted light
func ShadeHit(w *scene.World, comps Computations, remaining int) core.Color {
	m := comps.Object.Material
	shadowed := IsShadowed(w, comps.OverPoint)
	surface := lights.Lighting(m, comps.Object, w.Light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)

	reflected := ReflectedColor(w, comps, remaining)
	refracted := RefractedColor(w, comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether anything lies between point and the light
func IsShadowed(w *scene.World, point core.Tuple) bool {
	v := w.Light.Position.Subtract(point)
	distance := v.Magnitude()
	if distance == 0 {
		return false
	}

	xs := w.Intersect(core.NewRay(point, v.Normalize()))
	hit, ok := xs.Hit()
	return ok && hit.T < distance
}

// ReflectedColor follows the mirror bounce at a hit
func ReflectedColor(w *scene.World, comps Computations, remaining int) core.Color {
	reflective := comps.Object.Material.Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return ColorAt(w, reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor follows the transmitted ray through a hit using Snell's law.
// Total internal reflection contributes black.
func RefractedColor(w *scene.World, comps Computations, remaining int) core.Color {
	transparency := comps.Object.Material.Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)
	return ColorAt(w, refractRay, remaining-1).Multiply(transparency)
}

// Schlick approximates the Fresnel reflectance at a hit, returning 1 under
// total internal reflection
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
