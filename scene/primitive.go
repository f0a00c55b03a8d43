package scene

import (
	"github.com/chewxy/math32"

	"github.com/avasilakis/orion/types"
)

type PrimitiveType uint32

const (
	SpherePrimitive PrimitiveType = iota
	PlanePrimitive
)

// Any negative intersection distance reads as a miss; tests against the
// sentinel should use < 0 rather than equality.
const Miss float32 = -1

// A denominator smaller than this treats a ray as parallel to a plane.
const parallelEpsilon = 1e-6

// Defines a scene primitive. The primitive set is closed; dispatch happens
// via a switch on the type tag rather than an open interface.
type Primitive struct {
	// The primitive type.
	Type PrimitiveType

	// Sphere center or a point on the plane.
	Origin types.Vec3

	// Unit plane normal. Unused for spheres.
	Normal types.Vec3

	// Sphere radius. Unused for planes.
	Radius float32

	// The primitive material. Must be added to the scene before the primitive.
	Material *Material
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32, material *Material) *Primitive {
	return &Primitive{
		Type:     SpherePrimitive,
		Origin:   center,
		Radius:   radius,
		Material: material,
	}
}

// Create new plane primitive.
func NewPlane(point, normal types.Vec3, material *Material) *Primitive {
	return &Primitive{
		Type:     PlanePrimitive,
		Origin:   point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Intersect the primitive with a ray. The direction must be unit length.
// Returns the smallest non-negative distance along the ray, or a negative
// value when the ray misses the primitive or only the backward extension of
// the ray would hit it.
func (prim *Primitive) Intersect(origin, dir types.Vec3) float32 {
	switch prim.Type {
	case SpherePrimitive:
		return prim.intersectSphere(origin, dir)
	default:
		return prim.intersectPlane(origin, dir)
	}
}

// Solve the quadratic formed by substituting the ray equation into the
// sphere equation. With a unit direction the a term is 1.
func (prim *Primitive) intersectSphere(origin, dir types.Vec3) float32 {
	oc := origin.Sub(prim.Origin)
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - prim.Radius*prim.Radius

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return Miss
	}

	root := math32.Sqrt(discriminant)
	near := (-b - root) / 2
	if near >= 0 {
		return near
	}

	// The near root is behind the origin; the far root is still valid when
	// the ray starts inside the sphere.
	far := (-b + root) / 2
	if far >= 0 {
		return far
	}

	return Miss
}

func (prim *Primitive) intersectPlane(origin, dir types.Vec3) float32 {
	denom := dir.Dot(prim.Normal)
	if math32.Abs(denom) < parallelEpsilon {
		return Miss
	}

	dist := prim.Origin.Sub(origin).Dot(prim.Normal) / denom
	if dist < 0 {
		return Miss
	}
	return dist
}

// Get the unit surface normal at a point on the primitive.
func (prim *Primitive) NormalAt(point types.Vec3) types.Vec3 {
	switch prim.Type {
	case SpherePrimitive:
		return point.Sub(prim.Origin).Mul(1 / prim.Radius)
	default:
		return prim.Normal
	}
}

// Get the surface color at a point on the primitive.
func (prim *Primitive) ColorAt(point types.Vec3) types.Vec3 {
	return prim.Material.ColorAt(point)
}
