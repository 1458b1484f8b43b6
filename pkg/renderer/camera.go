package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera maps pixels on a canvas one unit in front of the eye to world rays
type Camera struct {
	HSize       int     // Canvas width in pixels
	VSize       int     // Canvas height in pixels
	FieldOfView float64 // Radians

	halfWidth  float64
	halfHeight float64
	pixelSize  float64

	transform core.Matrix // world -> camera (view transform)
	inverse   core.Matrix
}

// NewCamera creates a camera at the origin looking down -z
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c
}

// NewCameraFromConfig builds a camera from a scene's camera configuration
func NewCameraFromConfig(config scene.CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("invalid camera size %dx%d", config.Width, config.Height)
	}
	if config.FieldOfView <= 0 || config.FieldOfView >= math.Pi {
		return nil, fmt.Errorf("field of view %g outside (0, pi)", config.FieldOfView)
	}
	if !config.From.IsPoint() || !config.To.IsPoint() || !config.Up.IsVector() {
		return nil, fmt.Errorf("camera needs from and to points and an up vector")
	}
	if config.From.Equals(config.To) || config.Up.Magnitude() == 0 {
		return nil, fmt.Errorf("degenerate camera orientation")
	}

	c := NewCamera(config.Width, config.Height, config.FieldOfView)
	if err := c.SetTransform(config.ViewTransform()); err != nil {
		return nil, err
	}
	return c, nil
}

// SetTransform assigns the view transform. Non-invertible transforms are
// rejected and the previous transform stays in effect.
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform, c.inverse = m, inv
	return nil
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// HalfWidth returns half the canvas width in world units
func (c *Camera) HalfWidth() float64 { return c.halfWidth }

// HalfHeight returns half the canvas height in world units
func (c *Camera) HalfHeight() float64 { return c.halfHeight }

// PixelSize returns the world-space size of one pixel
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the world ray through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
