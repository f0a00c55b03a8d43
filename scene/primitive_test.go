package scene

import (
	"math"
	"testing"

	"github.com/avasilakis/orion/types"
)

const testEpsilon = 1e-4

func TestSphereIntersect(t *testing.T) {
	type spec struct {
		center  types.Vec3
		radius  float32
		origin  types.Vec3
		dir     types.Vec3
		expDist float32
	}
	specs := []spec{
		// Ray from (0,0,-d) toward +z hits at d-r
		spec{types.XYZ(0, 0, 0), 50, types.XYZ(0, 0, -300), types.XYZ(0, 0, 1), 250},
		spec{types.XYZ(0, 0, 0), 1, types.XYZ(0, 0, -5), types.XYZ(0, 0, 1), 4},
		// Grazing miss
		spec{types.XYZ(0, 0, 0), 1, types.XYZ(0, 5, -5), types.XYZ(0, 0, 1), Miss},
		// Sphere behind the ray origin
		spec{types.XYZ(0, 0, -10), 1, types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), Miss},
		// Origin inside the sphere still yields the forward exit point
		spec{types.XYZ(0, 0, 0), 2, types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), 2},
	}

	for index, s := range specs {
		sphere := NewSphere(s.center, s.radius, NewMaterial())
		got := sphere.Intersect(s.origin, s.dir)
		if s.expDist < 0 {
			if got >= 0 {
				t.Fatalf("[spec %d] expected a miss; got distance %f", index, got)
			}
			continue
		}
		if math.Abs(float64(got-s.expDist)) > testEpsilon {
			t.Fatalf("[spec %d] expected distance %f; got %f", index, s.expDist, got)
		}
	}
}

func TestPlaneIntersect(t *testing.T) {
	floor := NewPlane(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), NewMaterial())

	type spec struct {
		origin  types.Vec3
		dir     types.Vec3
		expDist float32
	}
	specs := []spec{
		// Straight down from height 10
		spec{types.XYZ(0, 10, 0), types.XYZ(0, -1, 0), 10},
		// Parallel to the plane
		spec{types.XYZ(0, 10, 0), types.XYZ(1, 0, 0), Miss},
		// Pointing away from the plane
		spec{types.XYZ(0, 10, 0), types.XYZ(0, 1, 0), Miss},
	}

	for index, s := range specs {
		got := floor.Intersect(s.origin, s.dir)
		if s.expDist < 0 {
			if got >= 0 {
				t.Fatalf("[spec %d] expected a miss; got distance %f", index, got)
			}
			continue
		}
		if math.Abs(float64(got-s.expDist)) > testEpsilon {
			t.Fatalf("[spec %d] expected distance %f; got %f", index, s.expDist, got)
		}
	}
}

func TestSphereNormal(t *testing.T) {
	sphere := NewSphere(types.XYZ(1, 2, 3), 4, NewMaterial())

	points := []types.Vec3{
		types.XYZ(5, 2, 3),
		types.XYZ(1, 6, 3),
		types.XYZ(1, 2, -1),
	}

	for index, point := range points {
		normal := sphere.NormalAt(point)
		if math.Abs(float64(normal.Len()-1)) > testEpsilon {
			t.Fatalf("[spec %d] expected unit normal; got length %f", index, normal.Len())
		}

		// The normal must point away from the center
		outward := point.Sub(sphere.Origin)
		if normal.Dot(outward) <= 0 {
			t.Fatalf("[spec %d] normal %v points toward the sphere center", index, normal)
		}
	}
}

func TestProceduralColor(t *testing.T) {
	line := types.XYZ(0.3, 0.3, 0.3)
	fill := types.XYZ(0.15, 0.15, 0.15)

	mat := NewMaterial()
	mat.ColorFn = GridColorFunc(100, line, fill)
	floor := NewPlane(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0), mat)

	if got := floor.ColorAt(types.XYZ(100, 0, 31)); got != line {
		t.Fatalf("expected grid line color at x=100; got %v", got)
	}
	if got := floor.ColorAt(types.XYZ(31, 0, 57)); got != fill {
		t.Fatalf("expected grid fill color off the lines; got %v", got)
	}
}

func TestConstantColor(t *testing.T) {
	mat := NewMaterial()
	mat.Color = types.XYZ(0.75, 0.125, 0.125)
	sphere := NewSphere(types.XYZ(0, 0, 0), 1, mat)

	if got := sphere.ColorAt(types.XYZ(0, 0, -1)); got != mat.Color {
		t.Fatalf("expected constant color %v; got %v", mat.Color, got)
	}
}
