package sceneio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mzmonsour/trace-lite/rtmath"
	"github.com/mzmonsour/trace-lite/scene"
)

// MeshRef names a mesh file (.obj, .gltf, or .glb) to import into the scene.
type MeshRef struct {
	Path string `yaml:"path"`
}

// LightSpec describes one light entry in a Manifest. Type selects which of
// Direction/Position is meaningful, mirroring scene.Light's tagged-variant
// shape rather than introducing a second light representation to keep in
// sync with it.
type LightSpec struct {
	Type      string     `yaml:"type"` // "directional" or "point"
	Color     [3]float64 `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Direction [3]float64 `yaml:"direction,omitempty"`
	Position  [3]float64 `yaml:"position,omitempty"`
}

// Manifest is the optional top-level scene description: a set of mesh
// files, their lights, and an optional camera-name override. It exists
// because neither OBJ nor glTF alone can carry a multi-mesh scene's lights,
// and OBJ carries no camera or hierarchy at all.
type Manifest struct {
	Meshes []MeshRef   `yaml:"meshes"`
	Lights []LightSpec `yaml:"lights"`
	Camera string      `yaml:"camera,omitempty"`
}

// LoadManifest reads and parses a YAML scene manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %q: %w", path, err)
	}
	return &m, nil
}

// BuildScene imports every mesh referenced by the manifest (relative to the
// manifest's own directory), attaches the manifest's lights, and resolves
// the optional camera name against the cameras discovered while importing
// glTF files.
func (m *Manifest) BuildScene(manifestPath string) (*scene.Scene, error) {
	dir := filepath.Dir(manifestPath)
	s := scene.NewScene()
	cameras := map[string]*scene.Camera{}

	for _, ref := range m.Meshes {
		path := ref.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		roots, foundCameras, err := ImportScene(path)
		if err != nil {
			return nil, fmt.Errorf("manifest mesh %q: %w", ref.Path, err)
		}
		for _, r := range roots {
			s.AddNode(r)
		}
		for name, cam := range foundCameras {
			cameras[name] = cam
		}
	}

	for _, spec := range m.Lights {
		light, err := spec.toLight()
		if err != nil {
			return nil, err
		}
		s.AddLight(light)
	}

	if m.Camera != "" {
		cam, ok := cameras[m.Camera]
		if !ok {
			return nil, fmt.Errorf("manifest: camera %q not found among imported meshes", m.Camera)
		}
		s.SetCamera(cam)
	} else if len(cameras) > 0 {
		for _, cam := range cameras {
			s.SetCamera(cam)
			break
		}
	}

	return s, nil
}

func (spec LightSpec) toLight() (*scene.Light, error) {
	color := rtmath.Vec3{X: rtmath.Scalar(spec.Color[0]), Y: rtmath.Scalar(spec.Color[1]), Z: rtmath.Scalar(spec.Color[2])}
	switch strings.ToLower(spec.Type) {
	case "directional":
		dir := rtmath.Vec3{X: rtmath.Scalar(spec.Direction[0]), Y: rtmath.Scalar(spec.Direction[1]), Z: rtmath.Scalar(spec.Direction[2])}
		return scene.NewDirectionalLight(color, rtmath.Scalar(spec.Intensity), dir), nil
	case "point":
		pos := rtmath.Vec3{X: rtmath.Scalar(spec.Position[0]), Y: rtmath.Scalar(spec.Position[1]), Z: rtmath.Scalar(spec.Position[2])}
		return scene.NewPointLight(color, rtmath.Scalar(spec.Intensity), pos), nil
	default:
		return nil, fmt.Errorf("manifest: unknown light type %q", spec.Type)
	}
}
