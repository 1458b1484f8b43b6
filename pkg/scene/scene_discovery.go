package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to scene file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

const (
	builtinGroup     = "Built-in Scenes"
	defaultFileGroup = "Scene Files"
	jsonIDPrefix     = "json:"
)

type builtinScene struct {
	info  SceneInfo
	build func(...CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{SceneInfo{ID: "default", Name: "Default World", Description: "Two concentric spheres under a white light"}, NewDefaultScene},
	{SceneInfo{ID: "sphere-room", Name: "Sphere Room", Description: "Three spheres in a room of flattened spheres"}, NewSphereRoomScene},
	{SceneInfo{ID: "striped-room", Name: "Striped Room", Description: "Three spheres in a room of planes, one striped"}, NewStripedRoomScene},
	{SceneInfo{ID: "cornell-box", Name: "Cornell Box", Description: "Plane walls with a mirror sphere and a glass sphere"}, NewCornellScene},
	{SceneInfo{ID: "sphere-grid", Name: "Sphere Grid", Description: "Grid of colored reflective and glass spheres"}, NewSphereGridScene},
	{SceneInfo{ID: "showcase", Name: "Showcase", Description: "Patterns, mirrors and a hollow glass sphere"}, NewShowcaseScene},
}

// BuiltinScenes returns metadata for the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		infos[i] = b.info
		infos[i].Group = builtinGroup
		infos[i].Type = "builtin"
	}
	return infos
}

// NewScene builds a built-in scene by id
func NewScene(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}

// ListSceneFiles scans dir for JSON scene files. A missing directory yields
// an empty list.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseSceneMetadata reads the name, description and group fields of a JSON
// scene file, falling back to values derived from the file name
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:       jsonIDPrefix + base,
		Name:     titleCase(base),
		Group:    defaultFileGroup,
		Type:     "json",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return info, fmt.Errorf("invalid scene file: %w", err)
	}

	if header.Name != "" {
		info.Name = header.Name
	}
	if header.Group != "" {
		info.Group = header.Group
	}
	info.Description = header.Description
	return info, nil
}

// ListAllScenes returns built-in scenes and the scene files in dir, grouped
// by category with built-ins first
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListSceneFiles(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	groupMap := make(map[string][]SceneInfo)
	for _, s := range append(BuiltinScenes(), fileScenes...) {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	var groupNames []string
	for name := range groupMap {
		if name != builtinGroup {
			groupNames = append(groupNames, name)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: groupMap[builtinGroup]})
	for _, name := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return response, nil
}

// IsSceneFileID reports whether id names a scene file rather than a built-in,
// returning the file base name
func IsSceneFileID(id string) (string, bool) {
	if strings.HasPrefix(id, jsonIDPrefix) {
		return strings.TrimPrefix(id, jsonIDPrefix), true
	}
	return "", false
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
