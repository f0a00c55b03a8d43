package scene

import "github.com/avasilakis/orion/types"

// ColorFunc procedurally evaluates a surface color at a world-space point.
// Implementations must be pure; they are invoked concurrently by every
// tracer in the pool against the same immutable material.
type ColorFunc func(point types.Vec3) types.Vec3

// Material describes the surface response of a primitive. The surface color
// is either a constant or a procedural function of the hit point; when
// ColorFn is non-nil it takes precedence over Color.
type Material struct {
	Color   types.Vec3
	ColorFn ColorFunc

	// Fraction of the shading result contributed by a recursively traced
	// mirror reflection. 0 disables reflection tracing for the surface.
	Reflectivity float32

	// Lambertian diffuse coefficient.
	Diffuse float32

	// Specular highlight intensity and exponent.
	SpecIntensity float32
	SpecExponent  float32
}

// Create a material with the default surface coefficients.
func NewMaterial() *Material {
	return &Material{
		Color:         types.XYZ(1, 1, 1),
		Diffuse:       0.5,
		SpecIntensity: 0.5,
		SpecExponent:  50,
	}
}

// Evaluate the surface color at a world-space point.
func (m *Material) ColorAt(point types.Vec3) types.Vec3 {
	if m.ColorFn != nil {
		return m.ColorFn(point)
	}
	return m.Color
}

// GridColorFunc builds a procedural grid pattern: points whose X
// or Z coordinate lands on a multiple of cellSize get the line color, the
// rest get the fill color.
func GridColorFunc(cellSize int, line, fill types.Vec3) ColorFunc {
	return func(point types.Vec3) types.Vec3 {
		if int(point[0])%cellSize == 0 || int(point[2])%cellSize == 0 {
			return line
		}
		return fill
	}
}
