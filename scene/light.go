package scene

import "github.com/mzmonsour/trace-lite/rtmath"

// Kind tags which variant of Light is populated, so the shading loop
// branches on a closed set of cases instead of testing which fields happen
// to be non-zero.
type Kind int

const (
	Directional Kind = iota
	Point
)

// Light is a tagged-variant light source: Direction is meaningful only for
// Directional lights, Position only for Point lights. A flat struct with a
// Kind tag (rather than an interface per light type) keeps the renderer's
// per-sample shading loop allocation-free and lets a switch over Kind be
// checked for exhaustiveness at the one place it matters.
type Light struct {
	Kind      Kind
	Color     rtmath.Vec3
	Intensity rtmath.Scalar
	Direction rtmath.Vec3 // Directional: direction the light travels
	Position  rtmath.Vec3 // Point: world-space position of the light
}

func NewDirectionalLight(color rtmath.Vec3, intensity rtmath.Scalar, direction rtmath.Vec3) *Light {
	return &Light{Kind: Directional, Color: color, Intensity: intensity, Direction: direction.Normalize()}
}

func NewPointLight(color rtmath.Vec3, intensity rtmath.Scalar, position rtmath.Vec3) *Light {
	return &Light{Kind: Point, Color: color, Intensity: intensity, Position: position}
}

// Irradiance returns the incident radiance El and the unit direction toward
// the light L, evaluated at world-space point hitPos, per the original
// engine's compute_ray_color lighting loop: a directional light's
// irradiance is constant, a point light's falls off with the inverse square
// of distance.
func (l *Light) Irradiance(hitPos rtmath.Vec3) (el rtmath.Vec3, toLight rtmath.Vec3) {
	switch l.Kind {
	case Directional:
		return l.Color.Mul(l.Intensity), l.Direction.Negate()
	case Point:
		delta := l.Position.Sub(hitPos)
		distSqr := delta.LengthSqr()
		if distSqr <= 0 {
			return rtmath.Vec3Zero, rtmath.Vec3Up
		}
		return l.Color.Mul(l.Intensity / distSqr), delta.Normalize()
	default:
		return rtmath.Vec3Zero, rtmath.Vec3Up
	}
}
