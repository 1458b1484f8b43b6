package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// threeSpheres returns the middle, left and right spheres shared by the room scenes
func threeSpheres(middle, left, right material.Material) []*geometry.Object {
	m := geometry.NewSphere()
	mustTransform(m, core.Translation(-0.5, 1, 0.5))
	m.SetMaterial(middle)

	r := geometry.NewSphere()
	mustTransform(r, core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	r.SetMaterial(right)

	l := geometry.NewSphere()
	mustTransform(l, core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33)))
	l.SetMaterial(left)

	return []*geometry.Object{m, l, r}
}

// NewSphereRoomScene builds a room whose floor and walls are spheres
// flattened to slabs, with three spheres resting on the floor
func NewSphereRoomScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := applyOverrides(newCameraConfig(1000, 500), cameraOverrides)

	wallMaterial := material.DefaultMaterial()
	wallMaterial.Color = core.NewColor(1, 0.9, 0.9)
	wallMaterial.Specular = 0

	floor := geometry.NewSphere()
	mustTransform(floor, core.Scaling(10, 0.01, 10))
	floor.SetMaterial(wallMaterial)

	slab := core.Scaling(10, 0.01, 10).RotateX(math.Pi / 2)

	leftWall := geometry.NewSphere()
	mustTransform(leftWall, slab.RotateY(-math.Pi/4).Translate(0, 0, 5))
	leftWall.SetMaterial(wallMaterial.Clone())

	rightWall := geometry.NewSphere()
	mustTransform(rightWall, slab.RotateY(math.Pi/4).Translate(0, 0, 5))
	rightWall.SetMaterial(wallMaterial.Clone())

	objects := append([]*geometry.Object{floor, leftWall, rightWall}, threeSpheres(
		matte(core.NewColor(0.1, 1, 0.5), 0.7, 0.3),
		matte(core.NewColor(1, 0.8, 0.1), 0.7, 0.3),
		matte(core.NewColor(0.5, 1, 0.1), 0.7, 0.3),
	)...)

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	return &Scene{
		Name:   "Sphere Room",
		World:  mustWorld(NewWorld(light, objects...)),
		Camera: cameraConfig,
	}
}

// NewStripedRoomScene builds a room of planes around three spheres,
// the middle one wrapped in a fine stripe pattern
func NewStripedRoomScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := applyOverrides(newCameraConfig(1200, 800), cameraOverrides)

	floor := geometry.NewPlane()

	leftWall := geometry.NewPlane()
	mustTransform(leftWall, core.RotationZ(math.Pi/2).Translate(-15, 0, 0))
	leftWall.SetMaterial(matte(core.NewColor(1, 0.9, 0.3), 0.9, 0.2))

	rightWall := geometry.NewPlane()
	mustTransform(rightWall, core.RotationZ(math.Pi/2).Translate(15, 0, 0))
	rightWall.SetMaterial(matte(core.NewColor(1, 0.9, 0.3), 0.9, 0.5))

	ceiling := geometry.NewPlane()
	mustTransform(ceiling, core.Translation(0, 10, 0))
	ceiling.SetMaterial(matte(core.NewColor(0.5, 0.8, 0.9), 0.9, 0.9))

	stripes := material.NewStripePattern(core.White, core.Black)
	mustPatternTransform(stripes, core.RotationX(math.Pi).Scale(0.2, 0.2, 0.2))
	middle := matte(core.NewColor(0.1, 1, 0.5), 0.7, 0.3)
	middle.Pattern = stripes

	objects := append([]*geometry.Object{floor, leftWall, rightWall, ceiling}, threeSpheres(
		middle,
		matte(core.NewColor(1, 0.8, 0.4), 0.7, 0.8),
		matte(core.NewColor(0.56, 0.3, 0.8), 0.7, 0.3),
	)...)

	light := lights.NewPointLight(core.NewPoint(-5, 5, -10), core.White)
	return &Scene{
		Name:   "Striped Room",
		World:  mustWorld(NewWorld(light, objects...)),
		Camera: cameraConfig,
	}
}
