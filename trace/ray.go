// Package trace implements the two geometry kernels the renderer is built
// on: ray/AABB slab intersection and ray/triangle barycentric intersection,
// plus the result types that carry their outcome.
package trace

import "github.com/mzmonsour/trace-lite/rtmath"

// Ray is a parametric ray: points on it are Origin + t*Direction for t >= 0.
// Direction is not required to be normalized; IntersectAABB and
// IntersectMesh both handle an unnormalized direction correctly, since the
// distance they report is the same parametric t consumers dereference the
// ray with, not a world-space distance.
type Ray struct {
	Origin    rtmath.Vec3
	Direction rtmath.Vec3
}

// At returns the point on the ray at parameter t.
func (r Ray) At(t rtmath.Scalar) rtmath.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray into the space defined by the inverse of xform's
// forward transform, i.e. m should already be an inverse transform. The
// direction is transformed as a direction (w=0) and deliberately left
// unnormalized, so a returned parametric distance still means the same
// thing it would in the space the ray started in.
func (r Ray) Transform(m rtmath.Mat4) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulDirection(r.Direction),
	}
}
