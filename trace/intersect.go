package trace

import (
	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
)

// barycentricTolerance is the slack applied to the barycentric containment
// test in IntersectMesh, absorbing the floating point error accumulated by
// the plane-intersection + 2x2 linear solve.
const barycentricTolerance rtmath.Scalar = 0.00005

// IntersectAABB performs the slab test of r against box, in whatever space
// both are already expressed in. It classifies the ray/box relationship
// rather than just returning a boolean, since a BVH traversal needs to tell
// "misses entirely" apart from "ray origin already inside the box".
func IntersectAABB(r Ray, box geom.AABB) Result {
	half := box.Half()
	center := box.Center()
	p := center.Sub(r.Origin)

	tmin := rtmath.Scalar(-rtmath.ScalarInf)
	tmax := rtmath.ScalarInf

	axis := func(e, h, f rtmath.Scalar) (rtmath.Scalar, rtmath.Scalar, bool) {
		if f > 1e-8 || f < -1e-8 {
			invF := 1 / f
			t1 := (e + h) * invF
			t2 := (e - h) * invF
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			return t1, t2, true
		}
		// Ray parallel to this slab: reject unless the origin already lies
		// within the slab's extent along this axis.
		if -e-h > 0 || -e+h < 0 {
			return 0, 0, false
		}
		return rtmath.Scalar(-rtmath.ScalarInf), rtmath.ScalarInf, true
	}

	coords := [3]rtmath.Scalar{p.X, p.Y, p.Z}
	dirs := [3]rtmath.Scalar{r.Direction.X, r.Direction.Y, r.Direction.Z}
	halves := [3]rtmath.Scalar{half.X, half.Y, half.Z}

	for c := 0; c < 3; c++ {
		t1, t2, ok := axis(coords[c], halves[c], dirs[c])
		if !ok {
			return Result{Type: None}
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return Result{Type: None}
		}
	}

	if tmax < 0 {
		return Result{Type: BehindRay}
	}
	if tmin > 0 {
		return Result{Type: Intersected, Distance: tmin}
	}
	return Result{Type: InsideVolume, Distance: 0}
}

// IntersectMesh finds the closest-hit triangle of inst's mesh along r,
// where r is already in world space. The ray is transformed into the
// instance's object space (without renormalizing the direction, so the
// returned distance stays in world-space ray-parameter units) and each
// triangle is tested via its plane equation followed by a 2x2 linear solve
// for the barycentric weights.
func IntersectMesh(r Ray, inst *geom.MeshInstance) Info {
	objRay := r.Transform(inst.InvXform)
	mesh := inst.Mesh

	best := Info{Type: None, Distance: rtmath.ScalarInf}

	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.TriangleAt(i)
		v0 := tri.P0()
		v1 := tri.P1()
		v2 := tri.P2()
		n := tri.PlaneNormal(i)

		denom := n.Dot(objRay.Direction)
		if denom > -1e-12 && denom < 1e-12 {
			continue // ray parallel to the triangle's plane
		}
		d := -n.Dot(v0)
		t := -(n.Dot(objRay.Origin) + d) / denom
		if t < 0 || t > best.Distance {
			continue
		}

		pout := objRay.At(t)
		r0 := pout.Sub(v0)
		q1 := v1.Sub(v0)
		q2 := v2.Sub(v0)

		q1q1 := q1.Dot(q1)
		q2q2 := q2.Dot(q2)
		q1q2 := q1.Dot(q2)
		det := q1q1*q2q2 - q1q2*q1q2
		if det > -1e-12 && det < 1e-12 {
			continue // degenerate triangle
		}
		invDet := 1 / det
		rq1 := r0.Dot(q1)
		rq2 := r0.Dot(q2)
		w1 := (rq1*q2q2 - rq2*q1q2) * invDet
		w2 := (rq2*q1q1 - rq1*q1q2) * invDet

		if w1 < -barycentricTolerance || w2 < -barycentricTolerance || w1+w2 > 1+barycentricTolerance {
			continue
		}

		w0 := 1 - w1 - w2
		best = Info{
			Type:       Intersected,
			HitObj:     inst,
			HitFace:    i,
			HitPos:     r.At(t),
			HitNormal:  inst.Xform.MulDirection(tri.SurfaceNormal(i, w0, w1, w2)).Normalize(),
			Barycenter: rtmath.Vec3{X: w0, Y: w1, Z: w2},
			Distance:   t,
		}
	}

	return best
}
