package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewDefaultScene frames the default world: two concentric spheres under a
// single white light
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := applyOverrides(CameraConfig{
		Width:       400,
		Height:      400,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 0, -5),
		To:          core.NewPoint(0, 0, 0),
		Up:          core.NewVector(0, 1, 0),
	}, cameraOverrides)

	return &Scene{
		Name:   "Default World",
		World:  DefaultWorld(),
		Camera: cameraConfig,
	}
}
