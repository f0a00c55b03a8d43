package renderer

type Renderer interface {
	// Render a frame at the given camera orbit angle.
	Render(angle float32) error

	// Get the output surface frames are rendered into.
	Framebuffer() *Framebuffer

	// Get render statistics.
	Stats() FrameStats

	// Shutdown renderer and any attached tracers.
	Close()
}
