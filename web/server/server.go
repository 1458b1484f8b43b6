package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits shared by render and inspect endpoints
const (
	MinImageSize = 10
	MaxImageSize = 2000
	MaxDepth     = 20
	MaxBand      = 256
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server reading scene files from scenesDir
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene      string  `json:"scene"`      // Scene id (e.g., "cornell-box" or "json:glass_marbles")
	Width      int     `json:"width"`      // Image width
	Height     int     `json:"height"`     // Image height
	FovDeg     float64 `json:"fovDeg"`     // Field of view override in degrees, 0 keeps the scene's
	MaxDepth   int     `json:"maxDepth"`   // Reflection/refraction depth
	Workers    int     `json:"workers"`    // Parallel workers, 0 = CPU count
	BandHeight int     `json:"bandHeight"` // Rows per parallel band
	Format     string  `json:"format"`     // "png" or "ppm" for /api/image
}

// Handler returns the router for all endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and scene files, grouped
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the camera defaults of a scene along with the
// request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneID := r.URL.Query().Get("scene")
	if sceneID == "" {
		sceneID = "cornell-box" // Default scene
	}

	sceneObj, err := s.createScene(&RenderRequest{Scene: sceneID})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	shapes := make([]string, 0, sceneObj.World.Len())
	for _, o := range sceneObj.World.Objects() {
		shapes = append(shapes, o.ShapeName())
	}

	camera := sceneObj.Camera
	response := map[string]interface{}{
		"scene":  sceneID,
		"name":   sceneObj.Name,
		"shapes": shapes,
		"defaults": map[string]interface{}{
			"width":    camera.Width,
			"height":   camera.Height,
			"fovDeg":   camera.FieldOfView * 180 / math.Pi,
			"maxDepth": renderer.DefaultRenderConfig().MaxDepth,
			"objects":  sceneObj.World.Len(),
		},
		"limits": map[string]interface{}{
			"width":      map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"height":     map[string]int{"min": MinImageSize, "max": MaxImageSize},
			"maxDepth":   map[string]int{"min": 0, "max": MaxDepth},
			"bandHeight": map[string]int{"min": 0, "max": MaxBand},
			"fovDeg":     map[string]float64{"min": 1, "max": 179},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// parseCommonSceneParams parses the scene id and image geometry shared by
// every endpoint. A zero width, height or fov keeps the scene's own value.
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	values := r.URL.Query()
	if sceneID := values.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	} else {
		req.Scene = "cornell-box" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(values, "height", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.FovDeg, err = parseFloatParam(values, "fov", 0, 1, 179); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene resolves the requested scene with the request's camera overrides
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	overrides := scene.CameraConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.FovDeg * math.Pi / 180,
	}
	return loaders.ResolveSceneID(req.Scene, s.scenesDir, overrides)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
