package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneID     string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"sphere room", "sphere-room", false},
		{"striped room", "striped-room", false},
		{"cornell box", "cornell-box", false},
		{"sphere grid", "sphere-grid", false},
		{"showcase", "showcase", false},

		// Scene files
		{"scene file by id", "json:glass_marbles", false},
		{"scene file by path", "scenes/hall_of_mirrors.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"missing scene file", "json:nonexistent", true},
		{"invalid scene path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneID, scene.CameraConfig{Width: 16, Height: 9})

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneID)
				}
				if s != nil {
					t.Errorf("Expected nil scene for '%s', got %v", tt.sceneID, s.Name)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneID, err)
			}
			if s.Camera.Width != 16 || s.Camera.Height != 9 {
				t.Errorf("Expected 16x9 camera override, got %dx%d", s.Camera.Width, s.Camera.Height)
			}
			if s.World.Len() == 0 {
				t.Errorf("Expected objects in scene '%s'", tt.sceneID)
			}
		})
	}
}

func TestCreateOutputDir(t *testing.T) {
	tests := []struct {
		name         string
		sceneID      string
		expectedBase string
	}{
		{"built-in scene", "cornell-box", "cornell-box"},
		{"scene file id", "json:glass_marbles", "glass_marbles"},
		{"scene file path", "scenes/hall_of_mirrors.json", "hall_of_mirrors"},
		{"nested scene path", "scenes/subdir/my-scene.json", "my-scene"},
		{"empty scene", "", "scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := createOutputDir(tt.sceneID)

			if filepath.Base(outputDir) != tt.expectedBase {
				t.Errorf("Expected output directory ending in '%s', got '%s'", tt.expectedBase, outputDir)
			}
			if !strings.HasPrefix(outputDir, "output") {
				t.Errorf("Expected output directory under 'output', got '%s'", outputDir)
			}
		})
	}
}
