package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mzmonsour/trace-lite/bvh"
	"github.com/mzmonsour/trace-lite/render"
	"github.com/mzmonsour/trace-lite/rtmath"
	"github.com/mzmonsour/trace-lite/scene"
	"github.com/mzmonsour/trace-lite/sceneio"
)

type cliOptions struct {
	output           string
	width, height    uint16
	noAspectOverride bool
	camera           string
	normalColoring   bool
	interpColoring   bool
	fov              float64
	msaa             bool
	threads          int
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "tracelite <input>",
		Short: "Offline CPU ray tracer",
		Long:  "tracelite renders a mesh file or scene manifest to a PNG image using a BVH-accelerated CPU ray tracer.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "render.png", "output image path")
	flags.Uint16VarP(&opts.width, "width", "w", 1920, "image width in pixels")
	flags.Uint16VarP(&opts.height, "height", "h", 1080, "image height in pixels")
	flags.BoolVar(&opts.noAspectOverride, "no-aspect-override", false, "keep the camera's native aspect ratio instead of setting it to the output width/height")
	flags.StringVarP(&opts.camera, "camera", "c", "", "name of the camera to render from (default: a camera from the scene file, or a default camera; with several cameras in the file, which one is used is not defined)")
	flags.BoolVar(&opts.normalColoring, "normal-coloring", false, "visualize hit surface normals instead of shading")
	flags.BoolVar(&opts.interpColoring, "interp-coloring", false, "visualize barycentric coordinates instead of shading")
	flags.Float64Var(&opts.fov, "fov", 0, "override the camera's vertical field of view, in degrees")
	flags.BoolVar(&opts.msaa, "msaa", false, "enable 2x2 supersampling")
	flags.IntVarP(&opts.threads, "threads", "t", 0, "number of rendering goroutines (0 = number of CPUs)")

	return cmd
}

func runRender(input string, opts *cliOptions) error {
	s, err := loadScene(input)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	if len(s.Lights) == 0 {
		// Neither OBJ nor a bare glTF file necessarily carries lights;
		// fall back to a single default directional light so the scene is
		// never rendered pitch black. The light is added only when the scene
		// has none, so lights coming from a manifest are kept as they are.
		s.AddLight(scene.NewDirectionalLight(rtmath.Vec3One, 1.0, rtmath.Vec3{X: 1, Y: -1, Z: 0}))
	}

	cam := resolveCamera(s, opts)
	if opts.fov > 0 {
		cam.SetFOV(rtmath.Scalar(opts.fov * math.Pi / 180))
	}
	if !opts.noAspectOverride {
		aspect := rtmath.Scalar(opts.width) / rtmath.Scalar(opts.height)
		cam.SetAspect(aspect, false)
	}

	instances := scene.Flatten(s.Root)
	tree := bvh.New(instances, func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	})

	threads := opts.threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var debug render.DebugMode
	if opts.normalColoring {
		debug |= render.DebugNormalColoring
	}
	if opts.interpColoring {
		debug |= render.DebugInterpColoring
	}

	ropts := render.Options{
		Width:        opts.width,
		Height:       opts.height,
		Debug:        debug,
		MSAA:         opts.msaa,
		MaxRecursion: 1,
		Concurrency:  threads,
	}

	renderer := render.New(tree, s.Lights, os.Stderr)
	fmt.Fprintf(os.Stderr, "tracelite: rendering %dx%d with %d threads...\n", opts.width, opts.height, threads)
	fb := renderer.Render(cam, ropts)
	fmt.Fprintln(os.Stderr, "tracelite: done")

	if err := sceneio.WritePNG(fb, opts.output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func loadScene(input string) (*scene.Scene, error) {
	ext := strings.ToLower(filepath.Ext(input))
	if ext == ".yaml" || ext == ".yml" {
		manifest, err := sceneio.LoadManifest(input)
		if err != nil {
			return nil, err
		}
		return manifest.BuildScene(input)
	}

	roots, cameras, err := sceneio.ImportScene(input)
	if err != nil {
		return nil, err
	}
	s := scene.NewScene()
	for _, r := range roots {
		s.AddNode(r)
	}
	for _, cam := range cameras {
		s.SetCamera(cam)
		break
	}
	return s, nil
}

// resolveCamera picks the render camera: an explicit --camera name looked
// up by node name, else the camera stored on the scene (when the scene file
// defines several cameras, loadScene stores one of them and which one is not
// defined), else a synthesized default camera at (0, 0, 5) looking down -Z
// toward the origin when the scene carries no camera at all (matching
// original_source main.cpp's "no cameras imported, falling back to default"
// diagnostic).
func resolveCamera(s *scene.Scene, opts *cliOptions) *scene.Camera {
	if opts.camera != "" {
		if n := s.Root.Find(opts.camera); n != nil {
			return scene.NewCamera(n.WorldMatrix(), defaultFOV, 1)
		}
		fmt.Fprintf(os.Stderr, "tracelite: camera %q not found, falling back to default\n", opts.camera)
	}
	if s.Camera != nil {
		return s.Camera
	}
	fmt.Fprintln(os.Stderr, "tracelite: no cameras imported, falling back to default")
	return scene.NewCameraLookAt(rtmath.Vec3{X: 0, Y: 0, Z: 5}, rtmath.Vec3Zero, rtmath.Vec3Up, defaultFOV, 1)
}

const defaultFOV = 60 * math.Pi / 180
