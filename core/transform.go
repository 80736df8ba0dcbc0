// Package core holds small value types shared across the scene graph and
// importers that don't belong to the pure math or geometry packages.
package core

import "github.com/mzmonsour/trace-lite/rtmath"

// Transform is a node's local position, rotation, and scale. Matrix composes
// them in translate-rotate-scale order, matching how node hierarchies
// accumulate world transforms on the way into a MeshInstance.
type Transform struct {
	Position rtmath.Vec3
	Rotation rtmath.Quaternion
	Scale    rtmath.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: rtmath.Vec3Zero,
		Rotation: rtmath.QuaternionIdentity(),
		Scale:    rtmath.Vec3One,
	}
}

func (t Transform) Matrix() rtmath.Mat4 {
	translation := rtmath.Mat4Translation(t.Position)
	rotation := t.Rotation.ToMat4()
	scale := rtmath.Mat4Scale(t.Scale)
	return translation.Mul(rotation).Mul(scale)
}

func (t Transform) Forward() rtmath.Vec3 {
	return t.Rotation.RotateVector(rtmath.Vec3Front)
}

func (t Transform) Right() rtmath.Vec3 {
	return t.Rotation.RotateVector(rtmath.Vec3Right)
}

func (t Transform) Up() rtmath.Vec3 {
	return t.Rotation.RotateVector(rtmath.Vec3Up)
}
