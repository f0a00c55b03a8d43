package tracer

import (
	"time"

	"github.com/avasilakis/orion/types"
)

// A unit of work that is processed by a tracer: a contiguous band of frame
// rows rendered at a fixed orbit angle.
type BlockRequest struct {
	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// Camera orbit angle for this frame, in radians.
	Angle float32

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error
}

// Tracer statistics.
type Stats struct {
	// The rendered block height.
	BlockH uint32

	// The time taken to render this block.
	RenderTime time.Duration
}

// Framebuffer is the mutable output surface a tracer writes shaded pixels
// into. Color channels are non-negative and unclamped; clamping and
// quantization belong to whatever presents the surface. Each tracer only
// ever writes the rows of its assigned block, so concurrent Set calls never
// target the same cell.
type Framebuffer interface {
	Set(x, y int, color types.Vec3)
	Dims() (width, height int)
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracer's relative computation speed estimate.
	Speed() uint32

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last block statistics.
	Stats() *Stats

	// Shutdown and cleanup tracer.
	Close()
}
