package geom

import "github.com/mzmonsour/trace-lite/rtmath"

// MeshInstance places a Mesh in world space. The inverse transform is
// cached at construction so every ray/triangle test can transform the ray
// into object space once, without re-inverting the matrix per test.
type MeshInstance struct {
	Mesh      *Mesh
	Xform     rtmath.Mat4
	InvXform  rtmath.Mat4
	WorldAABB AABB
}

// NewMeshInstance places mesh in world space under xform, eagerly computing
// both the cached inverse transform and the world-space AABB (via the
// transformed-local-AABB-corners method, not a full vertex re-scan).
func NewMeshInstance(mesh *Mesh, xform rtmath.Mat4) MeshInstance {
	return MeshInstance{
		Mesh:      mesh,
		Xform:     xform,
		InvXform:  xform.Inverse(),
		WorldAABB: transformedAABB(mesh.LocalAABB, xform),
	}
}
