package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestResolveScene(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "simple.json"), []byte(testScene), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name        string
		id          string
		expectError bool
		objects     int
	}{
		{"built-in", "default", false, 2},
		{"scene file id", "json:simple", false, 3},
		{"scene file path", filepath.Join(dir, "simple.json"), false, 3},
		{"missing scene file", "json:missing", true, 0},
		{"path traversal", "json:../simple", true, 0},
		{"unknown built-in", "nonexistent", true, 0},
		{"empty id", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ResolveScene(tt.id, dir, scene.CameraConfig{Width: 10, Height: 5})
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q", tt.id)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveScene(%q): %v", tt.id, err)
			}
			if s.World.Len() != tt.objects {
				t.Errorf("Expected %d objects, got %d", tt.objects, s.World.Len())
			}
			if s.Camera.Width != 10 || s.Camera.Height != 5 {
				t.Errorf("Expected overridden 10x5 camera, got %dx%d", s.Camera.Width, s.Camera.Height)
			}
		})
	}
}

func TestResolveSceneID_NoFilePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simple.json")
	if err := os.WriteFile(path, []byte(testScene), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := ResolveSceneID("json:simple", dir); err != nil {
		t.Fatalf("ResolveSceneID(json:simple): %v", err)
	}
	for _, id := range []string{path, "../simple.json", "simple.json"} {
		if _, err := ResolveSceneID(id, dir); err == nil {
			t.Errorf("Expected error for file path %q", id)
		}
	}

	// The local variant still accepts the path
	if _, err := ResolveScene(path, dir); err != nil {
		t.Errorf("ResolveScene(%q): %v", path, err)
	}
}

func TestResolveScene_OverridesFoldInOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "simple.json"), []byte(testScene), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	overrides := []scene.CameraConfig{{Width: 30, Height: 15}, {Width: 12}}
	for _, id := range []string{"default", "json:simple"} {
		s, err := ResolveScene(id, dir, overrides...)
		if err != nil {
			t.Fatalf("ResolveScene(%q): %v", id, err)
		}
		if s.Camera.Width != 12 || s.Camera.Height != 15 {
			t.Errorf("%s: expected 12x15, got %dx%d", id, s.Camera.Width, s.Camera.Height)
		}
	}
}
