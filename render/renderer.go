package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/mzmonsour/trace-lite/bvh"
	"github.com/mzmonsour/trace-lite/rtmath"
	"github.com/mzmonsour/trace-lite/scene"
	"github.com/mzmonsour/trace-lite/trace"
)

// Renderer traces a fixed scene (BVH + lights) against a camera.
type Renderer struct {
	BVH    *bvh.BVH
	Lights []*scene.Light
	Log    io.Writer
}

// New builds a Renderer that traces rays through tree and shades hits with
// lights; progress lines go to log when it is non-nil.
func New(tree *bvh.BVH, lights []*scene.Light, log io.Writer) *Renderer {
	return &Renderer{BVH: tree, Lights: lights, Log: log}
}

// Render produces a full framebuffer by partitioning the image into
// Options.Concurrency horizontal stripes, rendering each on its own
// goroutine, and joining before returning. Partitioning is static (no work
// stealing) so the same render always assigns the same rows to the same
// stripe index regardless of how fast any one goroutine runs, keeping
// output deterministic.
func (r *Renderer) Render(cam *scene.Camera, opts Options) *Framebuffer {
	runID := uuid.New()
	fb := NewFramebuffer(int(opts.Width), int(opts.Height))

	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > int(opts.Height) {
		concurrency = int(opts.Height)
	}

	stripeHeight := int(opts.Height) / concurrency
	r.logf("render %s: starting %dx%d, %d stripes", runID, opts.Width, opts.Height, concurrency)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		y0 := i * stripeHeight
		h := stripeHeight
		if i == concurrency-1 {
			h = int(opts.Height) - y0
		}
		wg.Add(1)
		go func(y0, h int) {
			defer wg.Done()
			r.renderRange(fb, cam, opts, y0, h)
		}(y0, h)
	}
	wg.Wait()

	r.logf("render %s: done", runID)
	return fb
}

// renderRange renders rows [y0, y0+h) of fb, sequentially, with MSAA
// supersampling per pixel when enabled.
func (r *Renderer) renderRange(fb *Framebuffer, cam *scene.Camera, opts Options, y0, h int) {
	grid := opts.sampleGrid()
	sampleCount := grid * grid
	width, height := rtmath.Scalar(opts.Width), rtmath.Scalar(opts.Height)

	for y := y0; y < y0+h; y++ {
		for x := 0; x < int(opts.Width); x++ {
			var sum rtmath.Vec3
			for s := 0; s < sampleCount; s++ {
				sx := rtmath.Scalar(s % grid)
				sy := rtmath.Scalar(s / grid)
				g := rtmath.Scalar(grid)
				px := (rtmath.Scalar(x)*g + sx) / (width * g)
				py := (rtmath.Scalar(y)*g + sy) / (height * g)

				screen := rtmath.Vec2{
					X: px*2 - 1,
					Y: 1 - py*2,
				}
				camRay := cam.ComputeRay(screen)
				ray := trace.Ray{Origin: camRay.Origin, Direction: camRay.Direction}

				sample := r.computeRayColor(ray, opts, opts.MaxRecursion)
				sum = sum.Add(rtmath.Vec3{
					X: clamp01(sample.X),
					Y: clamp01(sample.Y),
					Z: clamp01(sample.Z),
				})
			}
			avg := sum.Mul(1 / rtmath.Scalar(sampleCount))

			var out RGB
			if opts.Debug != DebugNone {
				out = toRGBNoEncode(avg)
			} else {
				out = toRGBSRGB(avg)
			}
			fb.Set(x, y, out)
		}
	}
}

// computeRayColor traces a single ray and shades the result. steps is a
// recursion budget inherited from the original engine's reflective-material
// path; trace-lite has no reflective materials so it is only ever consulted
// at the top level, returning black once exhausted.
func (r *Renderer) computeRayColor(ray trace.Ray, opts Options, steps int) rtmath.Vec3 {
	if steps <= 0 {
		return rtmath.Vec3Zero
	}

	info := r.BVH.TraceRay(ray)
	if info.Type != trace.Intersected {
		return rtmath.Vec3Zero
	}

	switch {
	case opts.Debug&DebugNormalColoring != 0:
		n := info.HitNormal
		return rtmath.Vec3{X: n.X + 1, Y: n.Y + 1, Z: n.Z + 1}.Mul(0.5)
	case opts.Debug&DebugInterpColoring != 0:
		return info.Barycenter
	default:
		return shade(info.HitPos, info.HitNormal, r.Lights)
	}
}

func toRGBSRGB(c rtmath.Vec3) RGB {
	return RGB{
		R: uint8(linearToSRGB(c.X)*255 + 0.5),
		G: uint8(linearToSRGB(c.Y)*255 + 0.5),
		B: uint8(linearToSRGB(c.Z)*255 + 0.5),
	}
}

func toRGBNoEncode(c rtmath.Vec3) RGB {
	return RGB{
		R: uint8(clamp01(c.X)*255 + 0.5),
		G: uint8(clamp01(c.Y)*255 + 0.5),
		B: uint8(clamp01(c.Z)*255 + 0.5),
	}
}

func (r *Renderer) logf(format string, args ...any) {
	if r.Log == nil {
		return
	}
	fmt.Fprintf(r.Log, format+"\n", args...)
}
