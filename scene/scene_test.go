package scene

import (
	"testing"

	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
)

func triMesh(t *testing.T) *geom.Mesh {
	t.Helper()
	verts := []rtmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	faces := []geom.Face{{Index: [3]uint32{0, 1, 2}}}
	mesh, err := geom.NewMesh("tri", verts, nil, nil, faces)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return mesh
}

func TestFlattenSkipsMeshlessAndInvisibleNodes(t *testing.T) {
	s := NewScene()
	withMesh := NewNode("withMesh")
	withMesh.Mesh = triMesh(t)
	s.AddNode(withMesh)

	group := NewNode("group")
	s.AddNode(group)

	hidden := NewNode("hidden")
	hidden.Mesh = triMesh(t)
	hidden.Visible = false
	group.AddChild(hidden)

	instances := Flatten(s.Root)
	if len(instances) != 1 {
		t.Fatalf("Flatten() returned %d instances, want 1", len(instances))
	}
}

func TestFlattenAccumulatesParentTransform(t *testing.T) {
	s := NewScene()
	parent := NewNode("parent")
	parent.SetPosition(rtmath.Vec3{X: 10, Y: 0, Z: 0})
	s.AddNode(parent)

	child := NewNode("child")
	child.SetPosition(rtmath.Vec3{X: 0, Y: 5, Z: 0})
	child.Mesh = triMesh(t)
	parent.AddChild(child)

	instances := Flatten(s.Root)
	if len(instances) != 1 {
		t.Fatalf("Flatten() returned %d instances, want 1", len(instances))
	}
	origin := instances[0].Xform.MulPoint(rtmath.Vec3Zero)
	want := rtmath.Vec3{X: 10, Y: 5, Z: 0}
	if origin != want {
		t.Errorf("world origin = %+v, want %+v", origin, want)
	}
}

func TestNodeWorldMatrixCachedUntilDirtied(t *testing.T) {
	n := NewNode("n")
	n.SetPosition(rtmath.Vec3{X: 1, Y: 0, Z: 0})
	m1 := n.WorldMatrix()
	n.SetPosition(rtmath.Vec3{X: 2, Y: 0, Z: 0})
	m2 := n.WorldMatrix()
	if m1 == m2 {
		t.Error("WorldMatrix() did not change after SetPosition")
	}
}

func TestNodeFind(t *testing.T) {
	root := NewNode("root")
	child := NewNode("target")
	root.AddChild(child)
	if found := root.Find("target"); found != child {
		t.Errorf("Find(target) = %v, want %v", found, child)
	}
	if found := root.Find("missing"); found != nil {
		t.Errorf("Find(missing) = %v, want nil", found)
	}
}

func TestDirectionalLightIrradianceIsConstant(t *testing.T) {
	l := NewDirectionalLight(rtmath.Vec3One, 2.0, rtmath.Vec3{X: 0, Y: -1, Z: 0})
	el, toLight := l.Irradiance(rtmath.Vec3{X: 100, Y: 100, Z: 100})
	if el != (rtmath.Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Irradiance el = %+v, want (2,2,2)", el)
	}
	if toLight != (rtmath.Vec3{X: 0, Y: 1, Z: 0}) {
		t.Errorf("Irradiance toLight = %+v, want (0,1,0)", toLight)
	}
}

func TestPointLightIrradianceFallsOffWithDistanceSquared(t *testing.T) {
	l := NewPointLight(rtmath.Vec3One, 1.0, rtmath.Vec3{X: 0, Y: 0, Z: 2})
	el, _ := l.Irradiance(rtmath.Vec3Zero)
	want := rtmath.Scalar(0.25) // intensity 1 / distSqr 4
	if el.X != want {
		t.Errorf("Irradiance el.X = %v, want %v", el.X, want)
	}
}

func TestCameraSetAspectRescalesHorizontalFOV(t *testing.T) {
	cam := NewCamera(rtmath.Mat4Identity(), 1.0, 1.0)
	cam.IsFovHorizontal = true
	cam.SetAspect(2.0, false)
	want := rtmath.Scalar(0.5) // (1.0 * 1.0) / 2.0
	if cam.FOV != want {
		t.Errorf("FOV after SetAspect = %v, want %v", cam.FOV, want)
	}
}

func TestCameraSetAspectKeepsVerticalFOVWhenRequested(t *testing.T) {
	cam := NewCamera(rtmath.Mat4Identity(), 1.0, 1.0)
	cam.IsFovHorizontal = true
	cam.SetAspect(2.0, true)
	if cam.FOV != 1.0 {
		t.Errorf("FOV after SetAspect(keepVertical) = %v, want unchanged 1.0", cam.FOV)
	}
	// SetAspect always records the new aspect ratio, even when the FOV
	// itself is held fixed; a caller that wants the camera's aspect left
	// untouched entirely must skip calling SetAspect, not rely on it here.
	if cam.Aspect != 2.0 {
		t.Errorf("Aspect after SetAspect(keepVertical) = %v, want 2.0", cam.Aspect)
	}
}

func TestCameraNativeAspectUntouchedWhenSetAspectNotCalled(t *testing.T) {
	cam := NewCamera(rtmath.Mat4Identity(), 1.0, 1.5)
	// Mirrors cmd/tracelite's --no-aspect-override handling: the caller
	// skips the SetAspect call entirely rather than passing a flag through
	// to it, so the camera's native aspect must survive untouched.
	if cam.Aspect != 1.5 {
		t.Errorf("Aspect = %v, want unchanged native 1.5", cam.Aspect)
	}
}

func TestCameraComputeRayOriginAtTransformTranslation(t *testing.T) {
	xform := rtmath.Mat4Translation(rtmath.Vec3{X: 0, Y: 0, Z: 5})
	cam := NewCamera(xform, 1.0, 1.0)
	ray := cam.ComputeRay(rtmath.Vec2{X: 0, Y: 0})
	if ray.Origin != (rtmath.Vec3{X: 0, Y: 0, Z: 5}) {
		t.Errorf("ray.Origin = %+v, want (0,0,5)", ray.Origin)
	}
	if ray.Direction.Z >= 0 {
		t.Errorf("ray.Direction = %+v, want forward (-Z)", ray.Direction)
	}
}
