package renderer

import (
	"testing"

	"github.com/avasilakis/orion/types"
)

func TestFramebufferSetAt(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	c := types.XYZ(0.25, 0.5, 2)
	fb.Set(3, 2, c)
	if got := fb.At(3, 2); got != c {
		t.Fatalf("expected color %v at (3,2); got %v", c, got)
	}
	if got := fb.At(0, 0); got != types.XYZ(0, 0, 0) {
		t.Fatalf("expected untouched cell to be black; got %v", got)
	}
}

func TestFramebufferQuantization(t *testing.T) {
	type spec struct {
		in  types.Vec3
		exp [3]uint8
	}
	specs := []spec{
		// In-range channels scale to 0..255
		spec{types.XYZ(0, 0.5, 1), [3]uint8{0, 127, 255}},
		// Overbright channels clamp instead of wrapping
		spec{types.XYZ(2.5, 1.1, 100), [3]uint8{255, 255, 255}},
		// Negative values clamp to zero
		spec{types.XYZ(-0.1, -5, 0), [3]uint8{0, 0, 0}},
	}

	for index, s := range specs {
		fb := NewFramebuffer(1, 1)
		fb.Set(0, 0, s.in)
		got := fb.RGBA().RGBAAt(0, 0)
		if got.R != s.exp[0] || got.G != s.exp[1] || got.B != s.exp[2] {
			t.Fatalf("[spec %d] expected rgb (%d, %d, %d); got (%d, %d, %d)",
				index, s.exp[0], s.exp[1], s.exp[2], got.R, got.G, got.B)
		}
		if got.A != 0xff {
			t.Fatalf("[spec %d] expected opaque alpha; got %d", index, got.A)
		}
	}
}
