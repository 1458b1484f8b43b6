package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewShowcaseScene exercises every surface feature: a reflective checker
// floor, a ring-patterned wall, a hollow glass sphere, a mirror sphere and
// a gradient sphere
func NewShowcaseScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := applyOverrides(CameraConfig{
		Width:       640,
		Height:      360,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2, -6),
		To:          core.NewPoint(0, 0.8, 0),
		Up:          core.NewVector(0, 1, 0),
	}, cameraOverrides)

	floorMaterial := material.DefaultMaterial()
	floorMaterial.Pattern = material.NewCheckerPattern(core.White, core.NewColor(0.15, 0.15, 0.2))
	floorMaterial.Specular = 0
	floorMaterial.Reflective = 0.3
	floor := geometry.NewPlane()
	floor.SetMaterial(floorMaterial)

	rings := material.NewRingPattern(core.NewColor(0.9, 0.5, 0.2), core.NewColor(0.95, 0.85, 0.6))
	mustPatternTransform(rings, core.Scaling(0.5, 0.5, 0.5))
	wallMaterial := material.DefaultMaterial()
	wallMaterial.Pattern = rings
	wallMaterial.Specular = 0
	wall := geometry.NewPlane()
	mustTransform(wall, core.RotationX(math.Pi/2).Translate(0, 0, 8))
	wall.SetMaterial(wallMaterial)

	glassMaterial := material.NewGlass()
	glassMaterial.Color = core.Black
	glassMaterial.Ambient = 0
	glassMaterial.Diffuse = 0.1
	glassMaterial.Reflective = 1
	glassMaterial.Shininess = 300
	glass := sphereAt(0, 1, 0, 1, glassMaterial)

	bubbleMaterial := glassMaterial.Clone()
	bubbleMaterial.RefractiveIndex = material.IndexVacuum
	bubble := sphereAt(0, 1, 0, 0.5, bubbleMaterial)

	mirrorMaterial := material.DefaultMaterial()
	mirrorMaterial.Color = core.NewColor(0.2, 0.2, 0.25)
	mirrorMaterial.Diffuse = 0.3
	mirrorMaterial.Reflective = 0.8
	mirror := sphereAt(-2.2, 0.7, 1, 0.7, mirrorMaterial)

	gradient := material.NewGradientPattern(core.NewColor(0.2, 0.4, 1), core.NewColor(1, 0.2, 0.6))
	mustPatternTransform(gradient, core.Scaling(2, 1, 1).Translate(-1, 0, 0))
	gradientMaterial := matte(core.White, 0.8, 0.4)
	gradientMaterial.Pattern = gradient
	gradientSphere := sphereAt(2.2, 0.7, 1, 0.7, gradientMaterial)

	light := lights.NewPointLight(core.NewPoint(-6, 8, -8), core.White)
	w := mustWorld(NewWorld(light, floor, wall, glass, bubble, mirror, gradientSphere))

	return &Scene{
		Name:   "Showcase",
		World:  w,
		Camera: cameraConfig,
	}
}
