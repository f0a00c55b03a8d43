package renderer

import (
	"image"
	"image/color"

	"github.com/avasilakis/orion/types"
)

// Framebuffer is a width x height grid of unclamped float RGB values. The
// tracer pool writes into it with disjoint row bands; RGBA quantizes it for
// display, clamping each channel to [0, 255].
type Framebuffer struct {
	width  int
	height int
	pix    []float32
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*3),
	}
}

// Get framebuffer dimensions.
func (fb *Framebuffer) Dims() (width, height int) {
	return fb.width, fb.height
}

// Set the color at a given location. Channels may exceed 1; clamping
// happens at quantization time.
func (fb *Framebuffer) Set(x, y int, c types.Vec3) {
	offset := (y*fb.width + x) * 3
	fb.pix[offset] = c[0]
	fb.pix[offset+1] = c[1]
	fb.pix[offset+2] = c[2]
}

// Get the color at a given location.
func (fb *Framebuffer) At(x, y int) types.Vec3 {
	offset := (y*fb.width + x) * 3
	return types.XYZ(fb.pix[offset], fb.pix[offset+1], fb.pix[offset+2])
}

// Quantize the framebuffer into an 8-bit RGBA image.
func (fb *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			offset := (y*fb.width + x) * 3
			img.SetRGBA(x, y, color.RGBA{
				R: quantize(fb.pix[offset]),
				G: quantize(fb.pix[offset+1]),
				B: quantize(fb.pix[offset+2]),
				A: 0xff,
			})
		}
	}
	return img
}

func quantize(channel float32) uint8 {
	scaled := 255 * channel
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
