package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneID := flag.String("scene", "default", "Scene id, json:<name> for a file in scenes/, or a path to a .json scene")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	fovDeg := flag.Float64("fov", 0, "Field of view in degrees (0 = scene default)")
	maxDepth := flag.Int("depth", renderer.DefaultRenderConfig().MaxDepth, "Maximum reflection/refraction depth")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	bandHeight := flag.Int("band", 0, "Rows per parallel band (0 = one row)")
	sequential := flag.Bool("sequential", false, "Render on a single goroutine")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return
	}
	if *list {
		printScenes()
		return
	}

	if *format != "png" && *format != "ppm" {
		fmt.Printf("Unknown format %q, expected 'png' or 'ppm'\n", *format)
		os.Exit(1)
	}

	overrides := scene.CameraConfig{Width: *width, Height: *height, FieldOfView: *fovDeg * math.Pi / 180}
	selectedScene, err := createScene(*sceneID, overrides)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Using scene %q...\n", selectedScene.Name)

	camera, err := renderer.NewCameraFromConfig(selectedScene.Camera)
	if err != nil {
		fmt.Printf("Error creating camera: %v\n", err)
		os.Exit(1)
	}

	config := renderer.RenderConfig{MaxDepth: *maxDepth, NumWorkers: *workers, BandHeight: *bandHeight}
	raytracer, err := renderer.NewRaytracer(camera, selectedScene.World, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating raytracer: %v\n", err)
		os.Exit(1)
	}

	render := raytracer.RenderParallel
	if *sequential {
		render = raytracer.Render
	}
	img, stats, err := render()
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d pixels at %.0f pixels/s, average luminance %.3f\n",
		stats.TotalPixels, stats.PixelsPerSecond(), renderer.CalculateAverageLuminance(img))

	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(createOutputDir(*sceneID), fmt.Sprintf("render_%s.%s", timestamp, *format))
	}
	if err := img.Save(filename); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene resolves a built-in id, a json:<name> id or a scene file path
func createScene(sceneID string, overrides scene.CameraConfig) (*scene.Scene, error) {
	return loaders.ResolveScene(sceneID, scenesDir, overrides)
}

// createOutputDir returns output/<scene name>, using the file base name for
// scene files
func createOutputDir(sceneID string) string {
	name := sceneID
	if fileName, ok := scene.IsSceneFileID(sceneID); ok {
		name = fileName
	} else if strings.HasSuffix(sceneID, ".json") {
		name = strings.TrimSuffix(filepath.Base(sceneID), ".json")
	}
	if name == "" {
		name = "scene"
	}
	return filepath.Join("output", name)
}

func printScenes() {
	response, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		fmt.Printf("Error listing scenes: %v\n", err)
		return
	}
	fmt.Println("Available scenes:")
	for _, group := range response.Groups {
		fmt.Printf("  %s\n", group.Name)
		for _, s := range group.Scenes {
			fmt.Printf("    %-24s %s\n", s.ID, s.Description)
		}
	}
}
