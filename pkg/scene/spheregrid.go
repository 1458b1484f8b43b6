package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> LMS
	lCube := l + 0.3963377774*a + 0.2158037573*b
	mCube := l - 0.1055613458*a - 0.0638541728*b
	sCube := l - 0.0894841775*a - 1.2914855480*b

	lCube = lCube * lCube * lCube
	mCube = mCube * mCube * mCube
	sCube = sCube * sCube * sCube

	// LMS -> linear RGB
	r := +4.0767416621*lCube - 3.3077115913*mCube + 0.2309699292*sCube
	g := -1.2684380046*lCube + 2.6097574011*mCube - 0.3413193965*sCube
	blue := -0.0041960863*lCube - 0.7034186147*mCube + 1.7076147010*sCube

	return core.NewColor(clamp01(r), clamp01(g), clamp01(blue))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// NewSphereGridScene creates a grid of colored spheres on a checkered floor.
// Hue varies along x, chroma along z, and every third sphere is glass.
func NewSphereGridScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := applyOverrides(CameraConfig{
		Width:       800,
		Height:      450,
		FieldOfView: 40 * math.Pi / 180,
		From:        core.NewPoint(4.5, 6, -9),
		To:          core.NewPoint(4.5, 0.8, 4.5),
		Up:          core.NewVector(0, 1, 0),
	}, cameraOverrides)

	light := lights.NewPointLight(core.NewPoint(-5, 15, -10), core.NewColor(1, 0.97, 0.9))
	w := mustWorld(NewWorld(light))

	floorMaterial := material.DefaultMaterial()
	checker := material.NewCheckerPattern(core.NewColor(0.55, 0.55, 0.55), core.NewColor(0.35, 0.35, 0.35))
	floorMaterial.Pattern = checker
	floorMaterial.Specular = 0
	floorMaterial.Reflective = 0.15
	floor := geometry.NewPlane()
	floor.SetMaterial(floorMaterial)
	if _, err := w.Add(floor); err != nil {
		panic(err)
	}

	gridSize := 8
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	radius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			m := material.DefaultMaterial()
			m.Color = oklchToRGB(lightness, chroma, hue)
			m.Diffuse = 0.7
			m.Specular = 0.6
			m.Shininess = 150
			m.Reflective = 0.1 + 0.2*float64((i+j)%3)/2.0
			if (i+j)%3 == 0 {
				m.Transparency = 0.8
				m.RefractiveIndex = material.IndexGlass
				m.Diffuse = 0.2
			}

			if _, err := w.Add(sphereAt(x, radius, z, radius, m)); err != nil {
				panic(err)
			}
		}
	}

	return &Scene{
		Name:   "Sphere Grid",
		World:  w,
		Camera: cameraConfig,
	}
}
