// Package geom holds the renderer's static geometry: axis-aligned bounding
// boxes, triangle meshes, and world-space mesh instances.
package geom

import "github.com/mzmonsour/trace-lite/rtmath"

// AABB is an axis-aligned bounding box in whatever space it was computed in.
type AABB struct {
	Min, Max rtmath.Vec3
}

// Index lets code that needs to iterate both bounds by an axis number do so
// without a switch at each call site.
func (b AABB) Index(axis int) (min, max rtmath.Scalar) {
	switch axis {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

// Center returns the midpoint of the box.
func (b AABB) Center() rtmath.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Half returns the half-extent of the box along each axis.
func (b AABB) Half() rtmath.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Union returns the smallest AABB enclosing both a and b.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: rtmath.Vec3Min(b.Min, other.Min), Max: rtmath.Vec3Max(b.Max, other.Max)}
}

// EmptyAABB is the identity for Union: any box unioned with it is unchanged.
var EmptyAABB = AABB{Min: rtmath.Vec3Maximum, Max: rtmath.Vec3Minimum}

// aabbFromVertices computes the tight bounding box of a set of positions.
func aabbFromVertices(positions []rtmath.Vec3) AABB {
	if len(positions) == 0 {
		return AABB{}
	}
	out := AABB{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		out.Min = rtmath.Vec3Min(out.Min, p)
		out.Max = rtmath.Vec3Max(out.Max, p)
	}
	return out
}

// transformedAABB transforms the 8 corners of a local-space AABB by xform
// and returns the axis-aligned box enclosing the result. This is cheaper and
// looser than re-deriving a box from transformed vertices, but is the
// standard way to bound an already-axis-aligned box under an arbitrary
// transform without re-scanning every vertex.
func transformedAABB(local AABB, xform rtmath.Mat4) AABB {
	var corners [8]rtmath.Vec3
	n := 0
	for i := 0; i < 2; i++ {
		x := local.Min.X
		if i == 1 {
			x = local.Max.X
		}
		for j := 0; j < 2; j++ {
			y := local.Min.Y
			if j == 1 {
				y = local.Max.Y
			}
			for k := 0; k < 2; k++ {
				z := local.Min.Z
				if k == 1 {
					z = local.Max.Z
				}
				corners[n] = xform.MulPoint(rtmath.Vec3{X: x, Y: y, Z: z})
				n++
			}
		}
	}
	return aabbFromVertices(corners[:])
}
