package render

import (
	"testing"

	"github.com/mzmonsour/trace-lite/bvh"
	"github.com/mzmonsour/trace-lite/geom"
	"github.com/mzmonsour/trace-lite/rtmath"
	"github.com/mzmonsour/trace-lite/scene"
)

func TestLinearToSRGBIsMonotonic(t *testing.T) {
	lo := linearToSRGB(0.1)
	hi := linearToSRGB(0.9)
	if !(lo < hi) {
		t.Errorf("linearToSRGB(0.1)=%v should be less than linearToSRGB(0.9)=%v", lo, hi)
	}
	if linearToSRGB(0) != 0 {
		t.Errorf("linearToSRGB(0) = %v, want 0", linearToSRGB(0))
	}
}

func TestClamp01(t *testing.T) {
	if clamp01(-1) != 0 {
		t.Errorf("clamp01(-1) = %v, want 0", clamp01(-1))
	}
	if clamp01(2) != 1 {
		t.Errorf("clamp01(2) = %v, want 1", clamp01(2))
	}
	if clamp01(0.5) != 0.5 {
		t.Errorf("clamp01(0.5) = %v, want 0.5", clamp01(0.5))
	}
}

func TestRenderEmptySceneIsBlack(t *testing.T) {
	tree := bvh.New(nil, nil)
	cam := scene.NewCameraLookAt(rtmath.Vec3{X: 0, Y: 0, Z: 5}, rtmath.Vec3Zero, rtmath.Vec3Up, 1.0, 1.0)
	r := New(tree, nil, nil)
	fb := r.Render(cam, Options{Width: 4, Height: 4, Concurrency: 2})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := fb.At(x, y)
			if p.R != 0 || p.G != 0 || p.B != 0 {
				t.Fatalf("pixel (%d,%d) = %+v, want black for empty scene", x, y, p)
			}
		}
	}
}

func quadMeshInstance(t *testing.T) geom.MeshInstance {
	t.Helper()
	verts := []rtmath.Vec3{
		{X: -10, Y: -10, Z: 0},
		{X: 10, Y: -10, Z: 0},
		{X: 10, Y: 10, Z: 0},
		{X: -10, Y: 10, Z: 0},
	}
	faces := []geom.Face{
		{Index: [3]uint32{0, 1, 2}},
		{Index: [3]uint32{0, 2, 3}},
	}
	mesh, err := geom.NewMesh("quad", verts, nil, nil, faces)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	return geom.NewMeshInstance(mesh, rtmath.Mat4Identity())
}

func TestRenderNormalColoringIsDeterministicSolidColor(t *testing.T) {
	inst := quadMeshInstance(t)
	tree := bvh.New([]geom.MeshInstance{inst}, nil)
	cam := scene.NewCameraLookAt(rtmath.Vec3{X: 0, Y: 0, Z: 5}, rtmath.Vec3Zero, rtmath.Vec3Up, 1.0, 1.0)
	r := New(tree, nil, nil)
	fb := r.Render(cam, Options{Width: 8, Height: 8, Concurrency: 1, Debug: DebugNormalColoring, MaxRecursion: 1})

	center := fb.At(4, 4)
	corner := fb.At(0, 0)
	if center != corner {
		t.Errorf("normal coloring over a flat quad should be uniform: center=%+v corner=%+v", center, corner)
	}
	// Facing +Z toward the camera: normal (0,0,1) maps to (0.5,0.5,1.0).
	if center.B < 200 {
		t.Errorf("center pixel B channel = %d, want near 255 for a +Z-facing normal", center.B)
	}
}

func TestRenderConcurrencyDoesNotChangeOutput(t *testing.T) {
	inst := quadMeshInstance(t)
	cam := scene.NewCameraLookAt(rtmath.Vec3{X: 0, Y: 0, Z: 5}, rtmath.Vec3Zero, rtmath.Vec3Up, 1.0, 1.0)

	render := func(concurrency int) *Framebuffer {
		tree := bvh.New([]geom.MeshInstance{inst}, nil)
		r := New(tree, nil, nil)
		return r.Render(cam, Options{Width: 16, Height: 16, Concurrency: concurrency, Debug: DebugNormalColoring, MaxRecursion: 1})
	}

	a := render(1)
	b := render(4)
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("pixel %d differs between concurrency=1 (%+v) and concurrency=4 (%+v)", i, a.Pixels[i], b.Pixels[i])
		}
	}
}
