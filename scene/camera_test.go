package scene

import (
	"math"
	"testing"

	"github.com/avasilakis/orion/types"
)

func TestCameraCenterRay(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, -300), types.XYZ(0, 0, 1), types.XYZ(0, 1, 0), 640, 480)

	origin, dir := cam.Ray(320, 240, 0)
	if origin != cam.Position {
		t.Fatalf("expected unrotated ray origin %v; got %v", cam.Position, origin)
	}

	// The ray through the screen center must match the forward direction
	if math.Abs(float64(dir[0])) > testEpsilon || math.Abs(float64(dir[1])) > testEpsilon || math.Abs(float64(dir[2]-1)) > testEpsilon {
		t.Fatalf("expected center ray to point along +z; got %v", dir)
	}
}

func TestCameraRayIsUnitLength(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 100, -300), types.XYZ(0, -0.25, 1), types.XYZ(0, 1, 0), 640, 480)

	type spec struct {
		px, py float32
		angle  float32
	}
	specs := []spec{
		spec{0, 0, 0},
		spec{639.5, 479.5, 0},
		spec{320.25, 240.75, 1.3},
		spec{12, 460, math.Pi},
	}

	for index, s := range specs {
		_, dir := cam.Ray(s.px, s.py, s.angle)
		if math.Abs(float64(dir.Len()-1)) > testEpsilon {
			t.Fatalf("[spec %d] expected unit direction; got length %f", index, dir.Len())
		}
	}
}

func TestCameraSubPixelOffsets(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), types.XYZ(0, 1, 0), 64, 64)

	// Moving right within a pixel must nudge the direction toward +x
	_, left := cam.Ray(10.25, 32, 0)
	_, right := cam.Ray(10.75, 32, 0)
	if right[0] <= left[0] {
		t.Fatalf("expected sub-pixel offset to move ray toward +x; got %f -> %f", left[0], right[0])
	}

	// Moving down within a pixel must nudge the direction toward -y
	_, top := cam.Ray(32, 10.25, 0)
	_, bottom := cam.Ray(32, 10.75, 0)
	if bottom[1] >= top[1] {
		t.Fatalf("expected sub-pixel offset to move ray toward -y; got %f -> %f", top[1], bottom[1])
	}
}

func TestCameraOrbit(t *testing.T) {
	cam := NewCamera(types.XYZ(0, 0, -300), types.XYZ(0, 0, 1), types.XYZ(0, 1, 0), 640, 480)

	// A half orbit puts the camera on the opposite side, looking back
	origin, dir := cam.Ray(320, 240, math.Pi)
	if math.Abs(float64(origin[2]-300)) > 1e-2 || math.Abs(float64(origin[0])) > 1e-2 {
		t.Fatalf("expected orbited origin near (0, 0, 300); got %v", origin)
	}
	if math.Abs(float64(dir[2]+1)) > testEpsilon {
		t.Fatalf("expected orbited center ray to point along -z; got %v", dir)
	}

	// Orbiting must not change the camera's own state
	origin, dir = cam.Ray(320, 240, 0)
	if origin != cam.Position || math.Abs(float64(dir[2]-1)) > testEpsilon {
		t.Fatalf("camera state changed after orbited ray generation")
	}
}
