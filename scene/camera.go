package scene

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/avasilakis/orion/types"
)

// The camera type maps screen pixels to primary rays. The orientation is
// fixed at construction; the per-frame orbit is expressed as a rotation
// angle applied to both the ray origin and direction, so the camera circles
// the scene without mutating its own state.
type Camera struct {
	Position types.Vec3

	// Orthonormal basis derived from the look direction and up hint.
	forward types.Vec3
	right   types.Vec3
	up      types.Vec3

	// Logical screen dimensions.
	Width  int
	Height int

	// Distance from the eye to the projection plane, derived from the
	// horizontal field of view.
	focal float32
}

// Camera horizontal field of view in radians.
const FOV float32 = math.Pi / 3

// Create a new camera at position, looking along dir, with the screen
// plane spanning width x height logical pixels. The up hint does not need
// to be orthogonal to dir; the basis is re-orthogonalized.
func NewCamera(position, dir, up types.Vec3, width, height int) *Camera {
	forward := dir.Normalize()
	right := up.Cross(forward).Normalize()

	return &Camera{
		Position: position,
		forward:  forward,
		right:    right,
		up:       forward.Cross(right),
		Width:    width,
		Height:   height,
		focal:    float32(width) * 0.5 / math32.Tan(FOV*0.5),
	}
}

// Generate the primary ray through the (possibly fractional) pixel
// coordinate (px, py), with the orbit rotation angle applied. The returned
// direction is unit length. Fractional coordinates address sub-pixel
// positions for oversampling; (x+0.5, y+0.5) is the center of pixel (x, y).
func (c *Camera) Ray(px, py, angle float32) (origin, dir types.Vec3) {
	u := px - float32(c.Width)*0.5
	v := float32(c.Height)*0.5 - py

	dir = c.forward.Mul(c.focal).
		Add(c.right.Mul(u)).
		Add(c.up.Mul(v)).
		Normalize()

	if angle != 0 {
		return c.Position.RotateY(angle), dir.RotateY(angle)
	}
	return c.Position, dir
}
