package bvh

import (
	"testing"

	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
	"github.com/mzmonsour/trace-lite/trace"
)

func quadInstance(t *testing.T, center rtmath.Vec3) geom.MeshInstance {
	t.Helper()
	verts := []rtmath.Vec3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: -1, Y: 1, Z: 0},
	}
	faces := []geom.Face{
		{Index: [3]uint32{0, 1, 2}},
		{Index: [3]uint32{0, 2, 3}},
	}
	mesh, err := geom.NewMesh("quad", verts, nil, nil, faces)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return geom.NewMeshInstance(mesh, rtmath.Mat4Translation(center))
}

func TestBVHEmptyTreeMisses(t *testing.T) {
	tree := New(nil, nil)
	info := tree.TraceRay(trace.Ray{Origin: rtmath.Vec3Zero, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}})
	if info.Type != trace.None {
		t.Fatalf("Type = %v, want None for empty tree", info.Type)
	}
}

func TestBVHTraceRayFindsClosestHit(t *testing.T) {
	near := quadInstance(t, rtmath.Vec3{X: 0, Y: 0, Z: 5})
	far := quadInstance(t, rtmath.Vec3{X: 0, Y: 0, Z: 10})
	tree := New([]geom.MeshInstance{far, near}, nil)

	r := trace.Ray{Origin: rtmath.Vec3Zero, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}}
	info := tree.TraceRay(r)
	if info.Type != trace.Intersected {
		t.Fatalf("Type = %v, want Intersected", info.Type)
	}
	if info.Distance < 4 || info.Distance > 6 {
		t.Errorf("Distance = %v, want close to 5 (the nearer quad)", info.Distance)
	}
}

func TestBVHTraceRayMissesEverything(t *testing.T) {
	a := quadInstance(t, rtmath.Vec3{X: 100, Y: 0, Z: 5})
	b := quadInstance(t, rtmath.Vec3{X: -100, Y: 0, Z: 5})
	tree := New([]geom.MeshInstance{a, b}, nil)

	r := trace.Ray{Origin: rtmath.Vec3Zero, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}}
	info := tree.TraceRay(r)
	if info.Type != trace.None {
		t.Fatalf("Type = %v, want None", info.Type)
	}
}

func TestLongestAxisPicksWidestExtent(t *testing.T) {
	box := geom.AABB{Min: rtmath.Vec3{X: 0, Y: 0, Z: 0}, Max: rtmath.Vec3{X: 1, Y: 5, Z: 2}}
	if axis := longestAxis(box); axis != 1 {
		t.Errorf("longestAxis() = %d, want 1 (Y)", axis)
	}
}

func TestBuildTopDownSingleLeafIsRoot(t *testing.T) {
	inst := quadInstance(t, rtmath.Vec3Zero)
	leaf := &Node{Volume: inst.WorldAABB, Leaf: &inst}
	root := buildTopDown([]*Node{leaf})
	if root != leaf {
		t.Errorf("buildTopDown([single]) did not return the sole leaf unchanged")
	}
}
