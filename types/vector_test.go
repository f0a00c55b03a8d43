package types

import (
	"math"
	"testing"
)

const testEpsilon = 1e-5

func vecNear(a, b Vec3) bool {
	return math.Abs(float64(a[0]-b[0])) < testEpsilon &&
		math.Abs(float64(a[1]-b[1])) < testEpsilon &&
		math.Abs(float64(a[2]-b[2])) < testEpsilon
}

func TestNormalize(t *testing.T) {
	type spec struct {
		in     Vec3
		expLen float32
	}
	specs := []spec{
		spec{XYZ(3, 4, 0), 1},
		spec{XYZ(0, 0, 100), 1},
		spec{XYZ(-1, -1, -1), 1},
		// Degenerate input yields the zero vector
		spec{XYZ(0, 0, 0), 0},
	}

	for index, s := range specs {
		got := s.in.Normalize().Len()
		if math.Abs(float64(got-s.expLen)) > testEpsilon {
			t.Fatalf("[spec %d] expected normalized length %f; got %f", index, s.expLen, got)
		}
	}
}

func TestDotAndCross(t *testing.T) {
	x := XYZ(1, 0, 0)
	y := XYZ(0, 1, 0)
	z := XYZ(0, 0, 1)

	if got := x.Dot(y); got != 0 {
		t.Fatalf("expected orthogonal dot product to be 0; got %f", got)
	}
	if got := x.Cross(y); !vecNear(got, z) {
		t.Fatalf("expected x cross y to equal z; got %v", got)
	}
}

func TestMulVec(t *testing.T) {
	got := XYZ(0.5, 1, 2).MulVec(XYZ(2, 3, 0.25))
	if !vecNear(got, XYZ(1, 3, 0.5)) {
		t.Fatalf("expected component-wise product (1, 3, 0.5); got %v", got)
	}
}

func TestReflect(t *testing.T) {
	type spec struct {
		in     Vec3
		normal Vec3
		exp    Vec3
	}
	specs := []spec{
		// Head-on hit bounces straight back
		spec{XYZ(0, 0, 1), XYZ(0, 0, -1), XYZ(0, 0, -1)},
		// 45 degree hit on a floor plane
		spec{XYZ(1, -1, 0).Normalize(), XYZ(0, 1, 0), XYZ(1, 1, 0).Normalize()},
	}

	for index, s := range specs {
		got := s.in.Reflect(s.normal)
		if !vecNear(got, s.exp) {
			t.Fatalf("[spec %d] expected reflection %v; got %v", index, s.exp, got)
		}
	}
}

func TestRotateY(t *testing.T) {
	type spec struct {
		in    Vec3
		angle float32
		exp   Vec3
	}
	specs := []spec{
		spec{XYZ(1, 0, 0), math.Pi / 2, XYZ(0, 0, -1)},
		spec{XYZ(1, 0, 0), math.Pi, XYZ(-1, 0, 0)},
		spec{XYZ(0, 5, 0), 1.234, XYZ(0, 5, 0)},
		spec{XYZ(1, 2, 3), 2 * math.Pi, XYZ(1, 2, 3)},
	}

	for index, s := range specs {
		got := s.in.RotateY(s.angle)
		if !vecNear(got, s.exp) {
			t.Fatalf("[spec %d] expected rotation %v; got %v", index, s.exp, got)
		}

		if math.Abs(float64(got.Len()-s.in.Len())) > testEpsilon {
			t.Fatalf("[spec %d] rotation changed vector length from %f to %f", index, s.in.Len(), got.Len())
		}
	}
}
