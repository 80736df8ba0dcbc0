package geom

import (
	"fmt"

	"github.com/mzmonsour/trace-lite/rtmath"
)

// Face is a triangle's three vertex indices into a Mesh's parallel
// attribute slices.
type Face struct {
	Index [3]uint32
}

// Mesh is an immutable, triangulated, object-space piece of geometry.
// Construction validates every face is a triangle and computes each face's
// plane normal and the mesh's local AABB once, up front, so later BVH and
// intersection work never re-derives them.
type Mesh struct {
	Name         string
	Vertices     []rtmath.Vec3
	Normals      []rtmath.Vec3 // parallel to Vertices; empty if the source had none
	UVs          []rtmath.Vec2 // parallel to Vertices; empty if the source had none
	Faces        []Face
	PlaneNormals []rtmath.Vec3 // one per face
	LocalAABB    AABB
}

// NewMesh builds a Mesh from raw per-vertex attributes and triangle faces.
// It returns an error (rather than panicking) if any face does not resolve
// to a triangle, so an importer can substitute an empty placeholder and keep
// loading the rest of the scene.
func NewMesh(name string, vertices, normals []rtmath.Vec3, uvs []rtmath.Vec2, faces []Face) (*Mesh, error) {
	if len(normals) != 0 && len(normals) != len(vertices) {
		return nil, fmt.Errorf("mesh %q: %d normals for %d vertices", name, len(normals), len(vertices))
	}
	if len(uvs) != 0 && len(uvs) != len(vertices) {
		return nil, fmt.Errorf("mesh %q: %d uvs for %d vertices", name, len(uvs), len(vertices))
	}
	for i, f := range faces {
		for _, idx := range f.Index {
			if int(idx) >= len(vertices) {
				return nil, fmt.Errorf("mesh %q: face %d references out-of-range vertex %d", name, i, idx)
			}
		}
	}

	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Normals:  normals,
		UVs:      uvs,
		Faces:    faces,
	}
	m.PlaneNormals = make([]rtmath.Vec3, len(faces))
	for i, f := range faces {
		p0 := vertices[f.Index[0]]
		p1 := vertices[f.Index[1]]
		p2 := vertices[f.Index[2]]
		m.PlaneNormals[i] = p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	}
	m.LocalAABB = aabbFromVertices(vertices)
	return m, nil
}

// EmptyMesh is the placeholder substituted for a mesh that failed to
// triangulate, so the rest of the scene still loads and renders.
func EmptyMesh(name string) *Mesh {
	return &Mesh{Name: name, LocalAABB: AABB{}}
}

// TriangleCount returns the number of faces in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// Triangle returns an accessor over the i'th face's vertices, normals, and
// UVs, abstracting over whether the mesh carries per-vertex normals/UVs at
// all. It is a lightweight value, cheap to create per intersection test.
type Triangle struct {
	mesh *Mesh
	face Face
}

// TriangleAt returns the Triangle view for face index i.
func (m *Mesh) TriangleAt(i int) Triangle {
	return Triangle{mesh: m, face: m.Faces[i]}
}

func (t Triangle) P0() rtmath.Vec3 { return t.mesh.Vertices[t.face.Index[0]] }
func (t Triangle) P1() rtmath.Vec3 { return t.mesh.Vertices[t.face.Index[1]] }
func (t Triangle) P2() rtmath.Vec3 { return t.mesh.Vertices[t.face.Index[2]] }

// PlaneNormal returns the face's precomputed flat normal, independent of any
// per-vertex normal data.
func (t Triangle) PlaneNormal(faceIdx int) rtmath.Vec3 {
	return t.mesh.PlaneNormals[faceIdx]
}

// SurfaceNormal interpolates the triangle's vertex normals at barycentric
// coordinates (w0, w1, w2). If the mesh carries no normals, it falls back to
// the triangle's flat plane normal rather than returning a zero vector, so
// every successful hit reports a usable shading normal.
func (t Triangle) SurfaceNormal(faceIdx int, w0, w1, w2 rtmath.Scalar) rtmath.Vec3 {
	if len(t.mesh.Normals) == 0 {
		return t.mesh.PlaneNormals[faceIdx]
	}
	n0 := t.mesh.Normals[t.face.Index[0]]
	n1 := t.mesh.Normals[t.face.Index[1]]
	n2 := t.mesh.Normals[t.face.Index[2]]
	return n0.Mul(w0).Add(n1.Mul(w1)).Add(n2.Mul(w2)).Normalize()
}

// SurfaceUV interpolates the triangle's vertex UVs, or returns the zero
// coordinate if the mesh carries none.
func (t Triangle) SurfaceUV(w0, w1, w2 rtmath.Scalar) rtmath.Vec2 {
	if len(t.mesh.UVs) == 0 {
		return rtmath.Vec2{}
	}
	uv0 := t.mesh.UVs[t.face.Index[0]]
	uv1 := t.mesh.UVs[t.face.Index[1]]
	uv2 := t.mesh.UVs[t.face.Index[2]]
	return uv0.Mul(w0).Add(uv1.Mul(w1)).Add(uv2.Mul(w2))
}
