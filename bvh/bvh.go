// Package bvh builds and traverses a bounding volume hierarchy over a
// scene's world-space mesh instances.
package bvh

import (
	"sort"

	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
	"github.com/mzmonsour/trace-lite/trace"
)

// Node is one node of the tree: an internal node has Left and Right and a
// nil Leaf; a leaf node has a non-nil Leaf and nil children. Volume always
// encloses everything beneath the node.
type Node struct {
	Volume      geom.AABB
	Leaf        *geom.MeshInstance
	Left, Right *Node
}

func (n *Node) IsLeaf() bool {
	return n.Leaf != nil
}

// BVH owns a tree built once over a fixed slice of mesh instances.
type BVH struct {
	Root *Node
}

// New builds a BVH over instances using a top-down median split: at each
// level the instances are sorted by their AABB-center along the longest
// axis of the enclosing box and split at the midpoint of the range.
func New(instances []geom.MeshInstance, log func(format string, args ...any)) *BVH {
	leaves := make([]*Node, len(instances))
	for i := range instances {
		inst := instances[i]
		leaves[i] = &Node{Volume: inst.WorldAABB, Leaf: &inst}
	}
	if log != nil {
		log("bvh: %d leaves", len(leaves))
		for _, l := range leaves {
			ext := l.Volume.Max.Sub(l.Volume.Min)
			log("bvh: leaf %q extent (%.3f, %.3f, %.3f)", l.Leaf.Mesh.Name, ext.X, ext.Y, ext.Z)
		}
	}
	return &BVH{Root: buildTopDown(leaves)}
}

func buildTopDown(nodes []*Node) *Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	}

	enclosing := geom.EmptyAABB
	for _, n := range nodes {
		enclosing = enclosing.Union(n.Volume)
	}
	axis := longestAxis(enclosing)

	sort.Slice(nodes, func(i, j int) bool {
		ci := axisComponent(nodes[i].Volume.Center(), axis)
		cj := axisComponent(nodes[j].Volume.Center(), axis)
		return ci < cj
	})

	mid := len(nodes) / 2
	left := buildTopDown(nodes[:mid])
	right := buildTopDown(nodes[mid:])

	vol := enclosing
	if left != nil && right != nil {
		vol = left.Volume.Union(right.Volume)
	}
	return &Node{Volume: vol, Left: left, Right: right}
}

func axisComponent(v rtmath.Vec3, axis int) rtmath.Scalar {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func longestAxis(box geom.AABB) int {
	extent := box.Max.Sub(box.Min)
	axis := 0
	best := extent.X
	if extent.Y > best {
		axis, best = 1, extent.Y
	}
	if extent.Z > best {
		axis = 2
	}
	return axis
}

type hitCandidate struct {
	node *Node
	dist rtmath.Scalar
}

// TraceRay finds the closest triangle hit along r across the whole tree.
// It first collects every leaf whose AABB the ray intersects, sorted by the
// AABB's entry distance, then runs the expensive per-triangle test only on
// leaves that could possibly beat the current best hit, stopping as soon as
// a candidate's own AABB distance can no longer improve on it.
func (b *BVH) TraceRay(r trace.Ray) trace.Info {
	info := trace.Info{Type: trace.None, Distance: rtmath.ScalarInf}
	if b.Root == nil {
		return info
	}

	var candidates []hitCandidate
	stack := []*Node{b.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		res := trace.IntersectAABB(r, n.Volume)
		if res.Type != trace.Intersected && res.Type != trace.InsideVolume {
			continue
		}
		if n.IsLeaf() {
			candidates = append(candidates, hitCandidate{node: n, dist: res.Distance})
			continue
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	for _, c := range candidates {
		if info.Distance < c.dist {
			break
		}
		hit := trace.IntersectMesh(r, c.node.Leaf)
		if hit.Type == trace.Intersected && hit.Distance < info.Distance {
			info = hit
		}
	}

	return info
}
