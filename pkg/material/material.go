package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Common refractive indices
const (
	IndexVacuum  = 1.0
	IndexWater   = 1.333
	IndexGlass   = 1.5
	IndexDiamond = 2.417
)

// Material holds the Phong surface coefficients plus reflection and
// refraction parameters. Pattern, when set, replaces Color.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transparent
	RefractiveIndex float64
	Pattern         Pattern
}

// DefaultMaterial returns a white, opaque, non-reflective surface
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: IndexVacuum,
	}
}

// NewGlass returns the default material made fully transparent with the index of glass
func NewGlass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = IndexGlass
	return m
}

// Clone copies the material. The pattern is shared, not copied.
func (m Material) Clone() Material {
	return m
}

// Validate checks that reflection and refraction parameters are in range
func (m Material) Validate() error {
	if m.Reflective < 0 || m.Reflective > 1 {
		return fmt.Errorf("reflective %g outside [0, 1]", m.Reflective)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("transparency %g outside [0, 1]", m.Transparency)
	}
	if m.RefractiveIndex < 1 {
		return fmt.Errorf("refractive index %g below 1", m.RefractiveIndex)
	}
	return nil
}

// ColorAt returns the surface color at a world point, sampling the pattern
// through the object's inverse transform when one is set
func (m Material) ColorAt(worldToObject core.Matrix, worldPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return PatternAtObject(m.Pattern, worldToObject, worldPoint)
}
