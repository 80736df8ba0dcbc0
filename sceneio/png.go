package sceneio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/mzmonsour/trace-lite/render"
)

// WritePNG encodes fb to path as an 8-bit RGB PNG, matching the original
// engine's libpng-backed writer but using the standard library's codec, the
// same way the teacher engine already uses image/png on the decode side.
func WritePNG(fb *render.Framebuffer, path string) error {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png %q: %w", path, err)
	}
	return nil
}
