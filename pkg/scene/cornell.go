package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell-style box from planes with a mirror
// sphere and a glass sphere, lit by a point light just under the ceiling
func NewCornellScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := applyOverrides(CameraConfig{
		Width:       400,
		Height:      400,
		FieldOfView: math.Pi / 4,
		From:        core.NewPoint(0, 2.5, -9),
		To:          core.NewPoint(0, 2.5, 0),
		Up:          core.NewVector(0, 1, 0),
	}, cameraOverrides)

	// Box is 5 units on each side, open toward the camera
	const half = 2.5

	white := matte(core.NewColor(0.73, 0.73, 0.73), 0.9, 0)
	red := matte(core.NewColor(0.65, 0.05, 0.05), 0.9, 0)
	green := matte(core.NewColor(0.12, 0.45, 0.15), 0.9, 0)

	floor := geometry.NewPlane()
	floor.SetMaterial(white)

	ceiling := geometry.NewPlane()
	mustTransform(ceiling, core.Translation(0, 2*half, 0))
	ceiling.SetMaterial(white)

	backWall := geometry.NewPlane()
	mustTransform(backWall, core.RotationX(math.Pi/2).Translate(0, 0, half))
	backWall.SetMaterial(white)

	leftWall := geometry.NewPlane()
	mustTransform(leftWall, core.RotationZ(math.Pi/2).Translate(-half, 0, 0))
	leftWall.SetMaterial(red)

	rightWall := geometry.NewPlane()
	mustTransform(rightWall, core.RotationZ(math.Pi/2).Translate(half, 0, 0))
	rightWall.SetMaterial(green)

	mirror := material.DefaultMaterial()
	mirror.Color = core.NewColor(0.1, 0.1, 0.1)
	mirror.Diffuse = 0.2
	mirror.Reflective = 0.9

	glass := material.NewGlass()
	glass.Color = core.NewColor(0.05, 0.05, 0.05)
	glass.Diffuse = 0.1
	glass.Ambient = 0
	glass.Reflective = 0.9
	glass.Shininess = 300

	leftSphere := sphereAt(-1, 0.8, 1, 0.8, mirror)
	rightSphere := sphereAt(1.1, 0.9, -0.4, 0.9, glass)

	light := lights.NewPointLight(core.NewPoint(0, 2*half-0.2, 0), core.White)
	w := mustWorld(NewWorld(light, floor, ceiling, backWall, leftWall, rightWall, leftSphere, rightSphere))

	return &Scene{
		Name:   "Cornell Box",
		World:  w,
		Camera: cameraConfig,
	}
}
