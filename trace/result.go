package trace

import (
	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
)

// IntersectionType classifies the outcome of an intersection test.
type IntersectionType int

const (
	// None means the ray never enters the tested volume/surface.
	None IntersectionType = iota
	// Intersected means the ray hits the volume/surface at a positive distance.
	Intersected
	// BehindRay means the volume/surface lies entirely behind the ray's origin.
	BehindRay
	// InsideVolume means the ray origin is already inside the tested AABB.
	InsideVolume
	// Degenerate means the test could not be evaluated. Neither
	// IntersectAABB nor IntersectMesh returns it; a ray parallel to a
	// triangle's plane is reported as None.
	Degenerate
)

func (t IntersectionType) String() string {
	switch t {
	case None:
		return "None"
	case Intersected:
		return "Intersected"
	case BehindRay:
		return "BehindRay"
	case InsideVolume:
		return "InsideVolume"
	case Degenerate:
		return "Degenerate"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a ray/AABB slab test: a classification and the
// entry distance (meaningful only when Type is Intersected).
type Result struct {
	Type     IntersectionType
	Distance rtmath.Scalar
}

// Info is the outcome of a full scene trace: classification, the hit
// instance (nil if none), world-space position and shading normal,
// barycentric coordinates within the hit triangle, and the hit distance.
type Info struct {
	Type       IntersectionType
	HitObj     *geom.MeshInstance
	HitFace    int
	HitPos     rtmath.Vec3
	HitNormal  rtmath.Vec3
	Barycenter rtmath.Vec3
	Distance   rtmath.Scalar
}
