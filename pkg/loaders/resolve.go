package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ResolveSceneID builds a scene from an id as listed by scene.ListAllScenes.
// "json:<name>" ids load <dir>/<name>.json and anything else is a built-in
// scene. Ids never name a path outside dir.
func ResolveSceneID(id, dir string, overrides ...scene.CameraConfig) (*scene.Scene, error) {
	if id == "" {
		return nil, fmt.Errorf("empty scene id")
	}
	if name, ok := scene.IsSceneFileID(id); ok {
		if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("invalid scene file id %q", id)
		}
		return LoadSceneWithOverrides(filepath.Join(dir, name+".json"), overrides...)
	}
	return scene.NewScene(id, overrides...)
}

// ResolveScene is ResolveSceneID that also treats ids ending in .json as
// file paths. For local callers only.
func ResolveScene(id, dir string, overrides ...scene.CameraConfig) (*scene.Scene, error) {
	if strings.HasSuffix(id, ".json") {
		return LoadSceneWithOverrides(id, overrides...)
	}
	return ResolveSceneID(id, dir, overrides...)
}
