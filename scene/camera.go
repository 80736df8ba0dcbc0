package scene

import (
	"math"

	"github.com/mzmonsour/trace-lite/rtmath"
)

// Camera is a pinhole camera: Xform is the camera-to-world transform, FOV is
// the vertical field of view in radians (ComputeRay always reads it as
// vertical), and IsFovHorizontal records whether SetAspect should hold the
// horizontal field of view fixed instead of the vertical one.
type Camera struct {
	Xform           rtmath.Mat4
	FOV             rtmath.Scalar
	Aspect          rtmath.Scalar
	IsFovHorizontal bool
}

// NewCamera builds a camera with a vertical field of view, matching the
// original_source Camera(xform, fov, aspect) constructor's default.
func NewCamera(xform rtmath.Mat4, fov, aspect rtmath.Scalar) *Camera {
	return &Camera{Xform: xform, FOV: fov, Aspect: aspect}
}

// NewCameraLookAt builds a camera-to-world transform via a look-at basis,
// the same construction original_source uses when a camera's orientation
// comes from a target point rather than directly from a node's transform.
func NewCameraLookAt(eye, target, up rtmath.Vec3, fov, aspect rtmath.Scalar) *Camera {
	return NewCamera(rtmath.Mat4LookAt(eye, target, up), fov, aspect)
}

// SetFOV overrides the field of view directly, treating it as no longer
// tied to a horizontal/vertical preservation rule.
func (c *Camera) SetFOV(fov rtmath.Scalar) {
	c.FOV = fov
	c.IsFovHorizontal = false
}

// SetAspect changes the camera's aspect ratio. When keepVerticalFOV is false
// and IsFovHorizontal is set, the vertical FOV is rescaled to keep the same
// horizontal FOV under the new aspect ratio, matching original_source's
// set_aspect; otherwise the FOV is left unchanged.
func (c *Camera) SetAspect(aspect rtmath.Scalar, keepVerticalFOV bool) {
	if !keepVerticalFOV && c.IsFovHorizontal {
		c.FOV = (c.FOV * c.Aspect) / aspect
	}
	c.Aspect = aspect
}

// ComputeRay returns the world-space ray through screen-space position pos,
// whose components range over [-1, 1] across the image plane. The ray
// direction is built in camera space from the field of view and aspect
// ratio, then rotated (not translated) into world space by Xform; the
// origin is Xform's translation column.
func (c *Camera) ComputeRay(pos rtmath.Vec2) Ray {
	tanHalfFOV := rtmath.Scalar(math.Tan(float64(c.FOV) * 0.5))
	x := tanHalfFOV * c.Aspect * pos.X
	y := tanHalfFOV * pos.Y

	dir := c.Xform.MulDirection(rtmath.Vec3{X: x, Y: y, Z: -1}).Normalize()
	origin := c.Xform.MulPoint(rtmath.Vec3Zero)

	return Ray{Origin: origin, Direction: dir}
}

// Ray is a thin scene-space alias kept separate from trace.Ray so this
// package doesn't need to import trace just to describe a camera ray; the
// renderer converts it at the point of use.
type Ray struct {
	Origin, Direction rtmath.Vec3
}
