package loaders

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Camera defaults used when a scene file leaves fields out
const (
	DefaultWidth  = 400
	DefaultHeight = 300
	DefaultFovDeg = 60.0
)

// Vec3 is an x, y, z triple as written in scene files
type Vec3 [3]float64

// RGB is a color triple as written in scene files
type RGB [3]float64

func (v Vec3) point() core.Tuple  { return core.NewPoint(v[0], v[1], v[2]) }
func (v Vec3) vector() core.Tuple { return core.NewVector(v[0], v[1], v[2]) }
func (c RGB) color() core.Color   { return core.NewColor(c[0], c[1], c[2]) }

// SceneCfg is the top-level JSON scene document
type SceneCfg struct {
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Group       string      `json:"group,omitempty"`
	Camera      CameraCfg   `json:"camera"`
	Light       *LightCfg   `json:"light"`
	Objects     []ObjectCfg `json:"objects"`
}

// CameraCfg describes the camera. Angles are in degrees.
type CameraCfg struct {
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	FovDeg float64 `json:"fovDeg,omitempty"`
	From   *Vec3   `json:"from,omitempty"`
	To     *Vec3   `json:"to,omitempty"`
	Up     *Vec3   `json:"up,omitempty"`
}

type LightCfg struct {
	Position  Vec3 `json:"position"`
	Intensity *RGB `json:"intensity,omitempty"` // defaults to white
}

// TransformCfg is one step of a transform chain, e.g.
// {"op": "rotateY", "args": [45]}. Steps apply in list order.
type TransformCfg struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

type PatternCfg struct {
	Type      string         `json:"type"`
	A         RGB            `json:"a"`
	B         RGB            `json:"b"`
	Transform []TransformCfg `json:"transform,omitempty"`
}

// MaterialCfg overrides fields of the default material. Unset fields keep
// their defaults. Presets "glass", "water" and "diamond" start from a fully
// transparent material with that refractive index instead.
type MaterialCfg struct {
	Preset          string      `json:"preset,omitempty"`
	Color           *RGB        `json:"color,omitempty"`
	Ambient         *float64    `json:"ambient,omitempty"`
	Diffuse         *float64    `json:"diffuse,omitempty"`
	Specular        *float64    `json:"specular,omitempty"`
	Shininess       *float64    `json:"shininess,omitempty"`
	Reflective      *float64    `json:"reflective,omitempty"`
	Transparency    *float64    `json:"transparency,omitempty"`
	RefractiveIndex *float64    `json:"refractiveIndex,omitempty"`
	Pattern         *PatternCfg `json:"pattern,omitempty"`
}

type ObjectCfg struct {
	Type      string         `json:"type"`
	Transform []TransformCfg `json:"transform,omitempty"`
	Material  MaterialCfg    `json:"material"`
}

// BuildTransform composes a transform chain into a single matrix
func BuildTransform(steps []TransformCfg) (core.Matrix, error) {
	m := core.Identity()
	for i, s := range steps {
		next, err := s.apply(m)
		if err != nil {
			return core.Matrix{}, fmt.Errorf("transform step %d: %w", i, err)
		}
		m = next
	}
	return m, nil
}

func (s TransformCfg) apply(m core.Matrix) (core.Matrix, error) {
	a := s.Args
	want := func(n int) error {
		if len(a) != n {
			return fmt.Errorf("%s takes %d args, got %d", s.Op, n, len(a))
		}
		return nil
	}

	switch s.Op {
	case "translate":
		if err := want(3); err != nil {
			return m, err
		}
		return m.Translate(a[0], a[1], a[2]), nil
	case "scale":
		// A single arg scales uniformly
		if len(a) == 1 {
			return m.Scale(a[0], a[0], a[0]), nil
		}
		if err := want(3); err != nil {
			return m, err
		}
		return m.Scale(a[0], a[1], a[2]), nil
	case "rotateX", "rotateY", "rotateZ":
		if err := want(1); err != nil {
			return m, err
		}
		r := a[0] * math.Pi / 180
		switch s.Op {
		case "rotateX":
			return m.RotateX(r), nil
		case "rotateY":
			return m.RotateY(r), nil
		default:
			return m.RotateZ(r), nil
		}
	case "shear":
		if err := want(6); err != nil {
			return m, err
		}
		return m.Shear(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	default:
		return m, fmt.Errorf("unknown transform op %q", s.Op)
	}
}

// Build creates the pattern and assigns its transform
func (p PatternCfg) Build() (material.Pattern, error) {
	var (
		pattern material.Pattern
		setter  interface{ SetTransform(core.Matrix) error }
	)
	switch p.Type {
	case "stripe":
		s := material.NewStripePattern(p.A.color(), p.B.color())
		pattern, setter = s, s
	case "gradient":
		g := material.NewGradientPattern(p.A.color(), p.B.color())
		pattern, setter = g, g
	case "ring":
		r := material.NewRingPattern(p.A.color(), p.B.color())
		pattern, setter = r, r
	case "checker":
		c := material.NewCheckerPattern(p.A.color(), p.B.color())
		pattern, setter = c, c
	case "test":
		t := material.NewTestPattern()
		pattern, setter = t, t
	default:
		return nil, fmt.Errorf("unknown pattern type %q", p.Type)
	}

	if len(p.Transform) > 0 {
		m, err := BuildTransform(p.Transform)
		if err != nil {
			return nil, err
		}
		if err := setter.SetTransform(m); err != nil {
			return nil, err
		}
	}
	return pattern, nil
}

// Build returns the default (or preset) material with overrides applied
func (mc MaterialCfg) Build() (material.Material, error) {
	var m material.Material
	switch mc.Preset {
	case "":
		m = material.DefaultMaterial()
	case "glass":
		m = material.NewGlass()
	case "water":
		m = material.NewGlass()
		m.RefractiveIndex = material.IndexWater
	case "diamond":
		m = material.NewGlass()
		m.RefractiveIndex = material.IndexDiamond
	default:
		return m, fmt.Errorf("unknown material preset %q", mc.Preset)
	}

	if mc.Color != nil {
		m.Color = mc.Color.color()
	}
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{mc.Ambient, &m.Ambient},
		{mc.Diffuse, &m.Diffuse},
		{mc.Specular, &m.Specular},
		{mc.Shininess, &m.Shininess},
		{mc.Reflective, &m.Reflective},
		{mc.Transparency, &m.Transparency},
		{mc.RefractiveIndex, &m.RefractiveIndex},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if mc.Pattern != nil {
		p, err := mc.Pattern.Build()
		if err != nil {
			return m, err
		}
		m.Pattern = p
	}
	return m, m.Validate()
}

// Build creates the object with its transform and material
func (oc ObjectCfg) Build() (*geometry.Object, error) {
	var o *geometry.Object
	switch oc.Type {
	case "sphere":
		o = geometry.NewSphere()
	case "plane":
		o = geometry.NewPlane()
	default:
		return nil, fmt.Errorf("unknown object type %q", oc.Type)
	}

	m, err := BuildTransform(oc.Transform)
	if err != nil {
		return nil, err
	}
	if err := o.SetTransform(m); err != nil {
		return nil, err
	}

	mat, err := oc.Material.Build()
	if err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}
	o.SetMaterial(mat)
	return o, nil
}

// Build converts the camera section, filling defaults for missing fields
func (cc CameraCfg) Build() (scene.CameraConfig, error) {
	if cc.Width < 0 || cc.Height < 0 {
		return scene.CameraConfig{}, fmt.Errorf("invalid camera size %dx%d", cc.Width, cc.Height)
	}
	if cc.Width == 0 {
		cc.Width = DefaultWidth
	}
	if cc.Height == 0 {
		cc.Height = DefaultHeight
	}
	if cc.FovDeg == 0 {
		cc.FovDeg = DefaultFovDeg
	}
	if cc.FovDeg <= 0 || cc.FovDeg >= 180 {
		return scene.CameraConfig{}, fmt.Errorf("fovDeg %g outside (0, 180)", cc.FovDeg)
	}

	config := scene.CameraConfig{
		Width:       cc.Width,
		Height:      cc.Height,
		FieldOfView: cc.FovDeg * math.Pi / 180,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
	if cc.From != nil {
		config.From = cc.From.point()
	}
	if cc.To != nil {
		config.To = cc.To.point()
	}
	if cc.Up != nil {
		config.Up = cc.Up.vector()
	}
	if config.From.Equals(config.To) {
		return scene.CameraConfig{}, fmt.Errorf("camera from and to are the same point")
	}
	if config.Up.Magnitude() == 0 {
		return scene.CameraConfig{}, fmt.Errorf("camera up vector is zero")
	}
	return config, nil
}

// Build assembles the world and camera
func (sc SceneCfg) Build() (*scene.Scene, error) {
	if sc.Light == nil {
		return nil, fmt.Errorf("scene has no light")
	}
	intensity := core.White
	if sc.Light.Intensity != nil {
		intensity = sc.Light.Intensity.color()
	}

	camera, err := sc.Camera.Build()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	world, err := scene.NewWorld(lights.NewPointLight(sc.Light.Position.point(), intensity))
	if err != nil {
		return nil, err
	}
	for i, oc := range sc.Objects {
		o, err := oc.Build()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if _, err := world.Add(o); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}

	return &scene.Scene{Name: sc.Name, World: world, Camera: camera}, nil
}

// ParseScene decodes a JSON scene document. Unknown fields are rejected.
func ParseScene(data []byte) (*scene.Scene, error) {
	var cfg SceneCfg
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return cfg.Build()
}

// LoadScene reads and builds a JSON scene file. Scenes without a name are
// named after the file.
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// LoadSceneWithOverrides loads a scene file and overlays camera overrides
func LoadSceneWithOverrides(path string, overrides ...scene.CameraConfig) (*scene.Scene, error) {
	s, err := LoadScene(path)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		s.Camera = scene.MergeCameraConfig(s.Camera, o)
	}
	return s, nil
}
