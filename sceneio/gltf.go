package sceneio

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
	"github.com/mzmonsour/trace-lite/scene"
)

// GLTFResult holds everything LoadGLTF extracted from a .glb/.gltf file:
// the top-level nodes of the scene hierarchy and, if the document defined
// one, a camera ready to render from.
type GLTFResult struct {
	Roots   []*scene.Node
	Cameras map[string]*scene.Camera // by glTF node name, for --camera lookups
}

// LoadGLTF opens a .glb or .gltf document and returns its node hierarchy
// (geometry only — materials and textures are out of scope) plus any
// cameras it defines. The node traversal mirrors the teacher engine's
// scene/gltf_loader.go: read mesh primitives, build one Node per glTF node,
// wire parent/child links, then collect either the default scene's roots or
// every parentless node.
func LoadGLTF(path string) (*GLTFResult, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	result := &GLTFResult{Cameras: map[string]*scene.Camera{}}

	meshPrims := make([][]*geom.Mesh, len(doc.Meshes))
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, *prim)
			if err != nil {
				fmt.Printf("gltf: mesh %d prim %d: %v, skipping\n", mi, pi, err)
				continue
			}
			meshPrims[mi] = append(meshPrims[mi], m)
		}
	}

	nodes := make([]*scene.Node, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", i)
		}
		n := scene.NewNode(name)

		t := gn.TranslationOrDefault()
		n.SetPosition(rtmath.Vec3{X: rtmath.Scalar(t[0]), Y: rtmath.Scalar(t[1]), Z: rtmath.Scalar(t[2])})

		sc := gn.ScaleOrDefault()
		n.SetScale(rtmath.Vec3{X: rtmath.Scalar(sc[0]), Y: rtmath.Scalar(sc[1]), Z: rtmath.Scalar(sc[2])})

		r := gn.RotationOrDefault() // [x, y, z, w]
		n.SetRotation(rtmath.Quaternion{X: rtmath.Scalar(r[0]), Y: rtmath.Scalar(r[1]), Z: rtmath.Scalar(r[2]), W: rtmath.Scalar(r[3])})

		if gn.Mesh != nil && int(*gn.Mesh) < len(meshPrims) {
			prims := meshPrims[*gn.Mesh]
			switch len(prims) {
			case 0:
			case 1:
				n.Mesh = prims[0]
			default:
				for pi, p := range prims {
					child := scene.NewNode(fmt.Sprintf("%s_prim%d", name, pi))
					child.Mesh = p
					n.AddChild(child)
				}
			}
		}
		nodes[i] = n
	}

	for i, gn := range doc.Nodes {
		for _, childIdx := range gn.Children {
			if int(childIdx) < len(nodes) && nodes[childIdx] != nil {
				nodes[i].AddChild(nodes[childIdx])
			}
		}
	}

	for i, gn := range doc.Nodes {
		if gn.Camera != nil && int(*gn.Camera) < len(doc.Cameras) {
			if cam := cameraFromGLTF(doc.Cameras[*gn.Camera], nodes[i]); cam != nil {
				result.Cameras[nodes[i].Name] = cam
			}
		}
	}

	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		for _, rootIdx := range doc.Scenes[*doc.Scene].Nodes {
			if int(rootIdx) < len(nodes) && nodes[rootIdx] != nil {
				result.Roots = append(result.Roots, nodes[rootIdx])
			}
		}
	} else {
		hasParent := make([]bool, len(nodes))
		for _, gn := range doc.Nodes {
			for _, c := range gn.Children {
				if int(c) < len(hasParent) {
					hasParent[c] = true
				}
			}
		}
		for i, n := range nodes {
			if n != nil && !hasParent[i] {
				result.Roots = append(result.Roots, n)
			}
		}
	}

	return result, nil
}

// cameraFromGLTF builds a scene.Camera from a glTF perspective camera and
// the node that references it; the node's accumulated world matrix (at load
// time, before any further edits) becomes the camera-to-world transform.
func cameraFromGLTF(gc *gltf.Camera, node *scene.Node) *scene.Camera {
	if gc.Perspective == nil {
		return nil // orthographic cameras are out of scope
	}
	aspect := rtmath.Scalar(1)
	if gc.Perspective.AspectRatio != nil {
		aspect = rtmath.Scalar(*gc.Perspective.AspectRatio)
	}
	cam := scene.NewCamera(node.WorldMatrix(), rtmath.Scalar(gc.Perspective.Yfov), aspect)
	return cam
}

// loadGLTFPrimitive converts one glTF mesh primitive into a geom.Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim gltf.Primitive) (*geom.Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var rawNormals [][3]float32
	var rawUVs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		rawNormals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		rawUVs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]rtmath.Vec3, len(positions))
	for i, p := range positions {
		verts[i] = rtmath.Vec3{X: rtmath.Scalar(p[0]), Y: rtmath.Scalar(p[1]), Z: rtmath.Scalar(p[2])}
	}
	var normals []rtmath.Vec3
	if len(rawNormals) == len(positions) {
		normals = make([]rtmath.Vec3, len(rawNormals))
		for i, n := range rawNormals {
			normals[i] = rtmath.Vec3{X: rtmath.Scalar(n[0]), Y: rtmath.Scalar(n[1]), Z: rtmath.Scalar(n[2])}
		}
	}
	var uvs []rtmath.Vec2
	if len(rawUVs) == len(positions) {
		uvs = make([]rtmath.Vec2, len(rawUVs))
		for i, uv := range rawUVs {
			uvs[i] = rtmath.Vec2{X: rtmath.Scalar(uv[0]), Y: rtmath.Scalar(uv[1])}
		}
	}

	var rawIndices []uint32
	if prim.Indices != nil {
		rawIndices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		rawIndices = make([]uint32, len(positions))
		for i := range rawIndices {
			rawIndices[i] = uint32(i)
		}
	}
	if len(rawIndices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(rawIndices))
	}

	faces := make([]geom.Face, 0, len(rawIndices)/3)
	for i := 0; i+2 < len(rawIndices); i += 3 {
		faces = append(faces, geom.Face{Index: [3]uint32{rawIndices[i], rawIndices[i+1], rawIndices[i+2]}})
	}

	return geom.NewMesh(name, verts, normals, uvs, faces)
}
