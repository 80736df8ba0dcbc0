// Package scene holds the node hierarchy, camera, and lights that describe
// a scene before it is flattened into world-space mesh instances for the
// BVH.
package scene

import (
	"github.com/mzmonsour/trace-lite/core"
	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
)

// Node is one entry in the scene graph: a transform, an optional mesh
// reference, and any number of children. World matrices are cached and
// recomputed lazily, same as the teacher engine's node graph, since a
// single import pass typically reads a node's world matrix exactly once
// during scene flattening.
type Node struct {
	Name      string
	Transform core.Transform
	Parent    *Node
	Children  []*Node
	Mesh      *geom.Mesh
	Visible   bool
	Id        uint32

	worldMatrixDirty bool
	worldMatrix      rtmath.Mat4
}

var nodeIdCounter uint32

func NewNode(name string) *Node {
	nodeIdCounter++
	return &Node{
		Name:             name,
		Transform:        core.NewTransform(),
		Visible:          true,
		Id:               nodeIdCounter,
		worldMatrixDirty: true,
	}
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.MarkWorldMatrixDirty()
			return
		}
	}
}

// WorldMatrix returns the node's accumulated transform, left-multiplying up
// the parent chain and caching the result until the transform is touched
// again.
func (n *Node) WorldMatrix() rtmath.Mat4 {
	if n.worldMatrixDirty {
		local := n.Transform.Matrix()
		if n.Parent != nil {
			n.worldMatrix = n.Parent.WorldMatrix().Mul(local)
		} else {
			n.worldMatrix = local
		}
		n.worldMatrixDirty = false
	}
	return n.worldMatrix
}

func (n *Node) MarkWorldMatrixDirty() {
	n.worldMatrixDirty = true
	for _, child := range n.Children {
		child.MarkWorldMatrixDirty()
	}
}

func (n *Node) SetPosition(pos rtmath.Vec3) {
	n.Transform.Position = pos
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetRotation(rot rtmath.Quaternion) {
	n.Transform.Rotation = rot
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetScale(scale rtmath.Vec3) {
	n.Transform.Scale = scale
	n.MarkWorldMatrixDirty()
}

// Traverse visits n and every descendant, depth-first.
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}

// Find locates the first descendant (including n itself) with the given name.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}
