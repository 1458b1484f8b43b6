package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// BandRenderer handles the actual rendering of individual bands using an integrator
type BandRenderer struct {
	camera     *Camera
	world      *scene.World
	integrator integrator.Integrator
}

// NewBandRenderer creates a new band renderer
func NewBandRenderer(camera *Camera, world *scene.World, integratorInst integrator.Integrator) *BandRenderer {
	return &BandRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
	}
}

// RenderBand shades every pixel in the band. The first write error aborts
// the band.
func (br *BandRenderer) RenderBand(band *canvas.Band) (int, error) {
	pixels := 0
	for y := band.Y0; y < band.Y1; y++ {
		for x := 0; x < br.camera.HSize; x++ {
			ray := br.camera.RayForPixel(x, y)
			color := br.integrator.RayColor(ray, br.world)
			if err := band.WritePixel(x, y, color); err != nil {
				return pixels, err
			}
			pixels++
		}
	}
	return pixels, nil
}
