package trace

import (
	"math"
	"testing"

	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
)

func unitBox() geom.AABB {
	return geom.AABB{Min: rtmath.Vec3{X: -1, Y: -1, Z: -1}, Max: rtmath.Vec3{X: 1, Y: 1, Z: 1}}
}

func TestIntersectAABBHit(t *testing.T) {
	r := Ray{Origin: rtmath.Vec3{X: 0, Y: 0, Z: -5}, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}}
	res := IntersectAABB(r, unitBox())
	if res.Type != Intersected {
		t.Fatalf("Type = %v, want Intersected", res.Type)
	}
	if math.Abs(float64(res.Distance-4)) > 1e-3 {
		t.Errorf("Distance = %v, want 4", res.Distance)
	}
}

func TestIntersectAABBMiss(t *testing.T) {
	r := Ray{Origin: rtmath.Vec3{X: 5, Y: 5, Z: -5}, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}}
	res := IntersectAABB(r, unitBox())
	if res.Type != None {
		t.Fatalf("Type = %v, want None", res.Type)
	}
}

func TestIntersectAABBBehindRay(t *testing.T) {
	r := Ray{Origin: rtmath.Vec3{X: 0, Y: 0, Z: 5}, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}}
	res := IntersectAABB(r, unitBox())
	if res.Type != BehindRay {
		t.Fatalf("Type = %v, want BehindRay", res.Type)
	}
}

func TestIntersectAABBInsideVolume(t *testing.T) {
	r := Ray{Origin: rtmath.Vec3{X: 0, Y: 0, Z: 0}, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}}
	res := IntersectAABB(r, unitBox())
	if res.Type != InsideVolume {
		t.Fatalf("Type = %v, want InsideVolume", res.Type)
	}
}

func unitTriangleInstance(t *testing.T) *geom.MeshInstance {
	t.Helper()
	verts := []rtmath.Vec3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	faces := []geom.Face{{Index: [3]uint32{0, 1, 2}}}
	mesh, err := geom.NewMesh("tri", verts, nil, nil, faces)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	inst := geom.NewMeshInstance(mesh, rtmath.Mat4Identity())
	return &inst
}

func TestIntersectMeshFrontFaceHit(t *testing.T) {
	inst := unitTriangleInstance(t)
	r := Ray{Origin: rtmath.Vec3{X: 0, Y: 0, Z: 5}, Direction: rtmath.Vec3{X: 0, Y: 0, Z: -1}}
	info := IntersectMesh(r, inst)
	if info.Type != Intersected {
		t.Fatalf("Type = %v, want Intersected", info.Type)
	}
	if math.Abs(float64(info.Distance-5)) > 1e-3 {
		t.Errorf("Distance = %v, want 5", info.Distance)
	}
	if info.HitNormal.Z <= 0 {
		t.Errorf("HitNormal = %+v, want +Z facing", info.HitNormal)
	}
}

func TestIntersectMeshMissOutsideTriangle(t *testing.T) {
	inst := unitTriangleInstance(t)
	r := Ray{Origin: rtmath.Vec3{X: 5, Y: 5, Z: -5}, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}}
	info := IntersectMesh(r, inst)
	if info.Type != None {
		t.Fatalf("Type = %v, want None", info.Type)
	}
}

func TestIntersectMeshMissParallelRay(t *testing.T) {
	inst := unitTriangleInstance(t)
	r := Ray{Origin: rtmath.Vec3{X: 0, Y: 0, Z: -5}, Direction: rtmath.Vec3{X: 1, Y: 0, Z: 0}}
	info := IntersectMesh(r, inst)
	if info.Type != None {
		t.Fatalf("Type = %v, want None for ray parallel to triangle plane", info.Type)
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: rtmath.Vec3{X: 1, Y: 2, Z: 3}, Direction: rtmath.Vec3{X: 0, Y: 0, Z: 1}}
	got := r.At(4)
	want := rtmath.Vec3{X: 1, Y: 2, Z: 7}
	if got != want {
		t.Errorf("At(4) = %+v, want %+v", got, want)
	}
}
