package cpu

import (
	"github.com/chewxy/math32"

	"github.com/avasilakis/orion/scene"
	"github.com/avasilakis/orion/types"
)

// Kernel evaluates the recursive backward-raytracing shading model against
// an immutable scene. Kernels hold no mutable state and may be shared by
// any number of goroutines.
type Kernel struct {
	Scene *scene.Scene

	// Flat base illumination applied to every visible surface and
	// returned on its own when a ray escapes the scene.
	Ambient float32

	// Backward displacement of the hit point along the incoming ray,
	// keeping secondary rays from re-intersecting the surface they left.
	HitEpsilon float32

	// Upper bound on the reflection recursion depth. Enforced regardless
	// of material reflectivity values.
	MaxReflections int
}

// Resolve the closest primitive hit by the ray. Primitives are visited in
// insertion order and a later primitive only wins a strictly smaller
// distance, so equal-distance ties keep the earlier one. Returns a nil
// primitive when the ray escapes the scene.
func (k *Kernel) closestHit(origin, dir types.Vec3) (*scene.Primitive, float32) {
	var hit *scene.Primitive
	var hitDist float32

	for _, prim := range k.Scene.Primitives {
		dist := prim.Intersect(origin, dir)
		if dist >= 0 && (hit == nil || dist < hitDist) {
			hit = prim
			hitDist = dist
		}
	}

	return hit, hitDist
}

// Report whether any primitive occludes the ray from point toward a light.
func (k *Kernel) occluded(point, lightDir types.Vec3) bool {
	for _, prim := range k.Scene.Primitives {
		if prim.Intersect(point, lightDir) >= 0 {
			return true
		}
	}
	return false
}

// Trace follows a ray backwards through the scene and returns its color.
// The direction must be unit length. Channel values are non-negative but
// not clamped; the display side quantizes them. The recursion is bounded by
// MaxReflections, so at most MaxReflections+1 nested calls occur even in a
// hall of perfect mirrors.
func (k *Kernel) Trace(origin, dir types.Vec3, depth int) types.Vec3 {
	hit, hitDist := k.closestHit(origin, dir)
	if hit == nil {
		return types.XYZ(k.Ambient, k.Ambient, k.Ambient)
	}

	// Back the hit point off along the ray so shadow and reflection rays
	// start just off the surface.
	point := origin.Add(dir.Mul(hitDist - k.HitEpsilon))

	local := hit.ColorAt(point)
	result := local.Mul(k.Ambient)

	if depth >= k.MaxReflections {
		return result
	}

	mat := hit.Material
	normal := hit.NormalAt(point)

	for _, light := range k.Scene.Lights {
		lightDir := light.Sub(point).Normalize()
		if k.occluded(point, lightDir) {
			continue
		}

		if diff := normal.Dot(lightDir); diff > 0 {
			result = result.Add(local.Mul(mat.Diffuse * diff))
		}

		// Blinn-Phong highlight: half vector between the light direction
		// and the reversed view direction, added as uncolored light.
		half := lightDir.Sub(dir).Normalize()
		if spec := normal.Dot(half); spec > 0 {
			intensity := mat.SpecIntensity * math32.Pow(spec, mat.SpecExponent)
			result = result.Add(types.XYZ(intensity, intensity, intensity))
		}
	}

	if mat.Reflectivity > 0 {
		reflected := k.Trace(point, dir.Reflect(normal), depth+1)
		result = result.Add(reflected.MulVec(local).Mul(mat.Reflectivity))
	}

	return result
}
