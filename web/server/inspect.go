package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ObjectID     string                 `json:"objectId"`
	ObjectIndex  int                    `json:"objectIndex"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	Color        [3]float64             `json:"color"` // Shaded color, as rendered
	Pixel        string                 `json:"pixel"` // Hex color after clamping
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains the hit computations for an inspection ray
type InspectResult struct {
	Hit   bool
	Comps integrator.Computations
	Color core.Color
}

// inspectPixel casts the camera ray through a pixel and shades the first hit
func inspectPixel(sceneObj *scene.Scene, camera *renderer.Camera, maxDepth, pixelX, pixelY int) InspectResult {
	ray := camera.RayForPixel(pixelX, pixelY)
	xs := sceneObj.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResult{Hit: false}
	}

	comps := integrator.PrepareComputations(sceneObj.World, hit, ray, xs)
	return InspectResult{
		Hit:   true,
		Comps: comps,
		Color: integrator.ShadeHit(sceneObj.World, comps, maxDepth),
	}
}

// extractMaterialInfo describes the surface coefficients and pattern
func (s *Server) extractMaterialInfo(mat material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           hexColor(mat.Color),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflective":      mat.Reflective,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
	}

	switch p := mat.Pattern.(type) {
	case nil:
	case *material.StripePattern:
		properties["pattern"] = "stripe"
		properties["patternColors"] = []string{hexColor(p.A), hexColor(p.B)}
	case *material.GradientPattern:
		properties["pattern"] = "gradient"
		properties["patternColors"] = []string{hexColor(p.A), hexColor(p.B)}
	case *material.RingPattern:
		properties["pattern"] = "ring"
		properties["patternColors"] = []string{hexColor(p.A), hexColor(p.B)}
	case *material.CheckerPattern:
		properties["pattern"] = "checker"
		properties["patternColors"] = []string{hexColor(p.A), hexColor(p.B)}
	default:
		properties["pattern"] = fmt.Sprintf("%T", p)
	}
	return properties
}

// extractGeometryInfo describes the object's shape and placement
func (s *Server) extractGeometryInfo(obj *geometry.Object) map[string]interface{} {
	m := obj.Transform()
	rows := make([][]float64, 4)
	for r := range rows {
		rows[r] = []float64{m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3)}
	}
	origin := m.MultiplyTuple(core.NewPoint(0, 0, 0))
	return map[string]interface{}{
		"transform": rows,
		"origin":    [3]float64{origin.X, origin.Y, origin.Z},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}

	// Parse common scene parameters using shared function
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}
	maxDepth, err := parseIntParam(r.URL.Query(), "maxDepth", renderer.DefaultRenderConfig().MaxDepth, 0, MaxDepth)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	camera, err := renderer.NewCameraFromConfig(sceneObj.Camera)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Validate pixel coordinates against the resolved image size
	if pixelX < 0 || pixelX >= camera.HSize || pixelY < 0 || pixelY >= camera.VSize {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, camera, maxDepth, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, ObjectIndex: -1})
		return
	}

	comps := result.Comps
	response := InspectResponse{
		Hit:          true,
		ObjectID:     comps.Object.ID.String(),
		ObjectIndex:  int(comps.Handle),
		GeometryType: comps.Object.ShapeName(),
		Point:        [3]float64{comps.Point.X, comps.Point.Y, comps.Point.Z},
		Normal:       [3]float64{comps.NormalV.X, comps.NormalV.Y, comps.NormalV.Z},
		Distance:     comps.T,
		Inside:       comps.Inside,
		Color:        [3]float64{result.Color.R, result.Color.G, result.Color.B},
		Pixel:        hexColor(result.Color),
		Properties: map[string]interface{}{
			"material": s.extractMaterialInfo(comps.Object.Material),
			"geometry": s.extractGeometryInfo(comps.Object),
		},
	}
	writeJSON(w, http.StatusOK, response)
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", canvas.ToByte(c.R), canvas.ToByte(c.G), canvas.ToByte(c.B))
}
