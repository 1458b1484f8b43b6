package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Scene pairs a world with the camera setup it was composed for
type Scene struct {
	Name   string
	World  *World
	Camera CameraConfig
}

// CameraConfig describes a pinhole camera. The renderer builds its Camera
// from this; From/To/Up feed the view transform.
type CameraConfig struct {
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	FieldOfView float64 // Horizontal or vertical angle in radians, whichever side is longer
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
}

// ViewTransform returns the world-to-camera matrix for this configuration
func (c CameraConfig) ViewTransform() core.Matrix {
	return core.ViewTransform(c.From, c.To, c.Up)
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FieldOfView > 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	return result
}

// newCameraConfig is the usual eye-level setup looking toward (0,1,0)
func newCameraConfig(width, height int) CameraConfig {
	return CameraConfig{
		Width:       width,
		Height:      height,
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
}

// applyOverrides merges overrides onto base in order, later ones winning
func applyOverrides(base CameraConfig, overrides []CameraConfig) CameraConfig {
	for _, o := range overrides {
		base = MergeCameraConfig(base, o)
	}
	return base
}

// sphereAt places a sphere of the given radius centered at (x, y, z)
func sphereAt(x, y, z, radius float64, m material.Material) *geometry.Object {
	s := geometry.NewSphere()
	mustTransform(s, core.Identity().Scale(radius, radius, radius).Translate(x, y, z))
	s.SetMaterial(m)
	return s
}

// matte returns the default material with the given color, diffuse and specular
func matte(c core.Color, diffuse, specular float64) material.Material {
	m := material.DefaultMaterial()
	m.Color = c
	m.Diffuse = diffuse
	m.Specular = specular
	return m
}

// mustPatternTransform is for hard-coded pattern transforms known to be invertible
func mustPatternTransform(p interface{ SetTransform(core.Matrix) error }, m core.Matrix) {
	if err := p.SetTransform(m); err != nil {
		panic(err)
	}
}

func mustWorld(w *World, err error) *World {
	if err != nil {
		panic(err)
	}
	return w
}
