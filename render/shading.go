package render

import (
	"math"

	"github.com/mzmonsour/trace-lite/rtmath"
	"github.com/mzmonsour/trace-lite/scene"
)

const invPi = 1.0 / math.Pi

// linearToSRGB approximates the sRGB transfer function with a single power
// curve (x^(1/2.2)), the same approximation original_source uses rather
// than the piecewise-linear exact sRGB curve.
func linearToSRGB(c rtmath.Scalar) rtmath.Scalar {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 1
	}
	return rtmath.Scalar(math.Pow(float64(c), 1.0/2.2))
}

// shade evaluates Lambertian direct lighting at a hit point with a fixed
// white albedo (physically-based materials are out of scope), summing each
// light's contribution per original_source's compute_ray_color: each light
// contributes albedo/pi * irradiance * max(0, dot(L, N)).
func shade(hitPos, normal rtmath.Vec3, lights []*scene.Light) rtmath.Vec3 {
	albedo := rtmath.Vec3One
	color := rtmath.Vec3Zero
	for _, l := range lights {
		el, toLight := l.Irradiance(hitPos)
		ndotl := normal.Dot(toLight)
		if ndotl <= 0 {
			continue
		}
		color = color.Add(albedo.Mul(invPi).MulVec(el).Mul(ndotl))
	}
	return color
}

func clamp01(c rtmath.Scalar) rtmath.Scalar {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
