package sceneio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mzmonsour/trace-lite/scene"
)

// ImportScene dispatches to the OBJ or glTF importer based on path's
// extension and returns the resulting root nodes plus any cameras the
// format carried (only glTF/GLB carry cameras).
func ImportScene(path string) ([]*scene.Node, map[string]*scene.Camera, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		meshes, err := LoadOBJ(path)
		if err != nil {
			return nil, nil, err
		}
		var roots []*scene.Node
		for _, mesh := range meshes {
			n := scene.NewNode(mesh.Name)
			n.Mesh = mesh
			roots = append(roots, n)
		}
		return roots, nil, nil

	case ".gltf", ".glb":
		result, err := LoadGLTF(path)
		if err != nil {
			return nil, nil, err
		}
		return result.Roots, result.Cameras, nil

	default:
		return nil, nil, fmt.Errorf("unrecognized scene file extension %q", ext)
	}
}
