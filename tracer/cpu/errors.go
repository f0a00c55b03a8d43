package cpu

import "errors"

var (
	ErrNoSceneData   = errors.New("cpu tracer: no scene defined")
	ErrNoCameraData  = errors.New("cpu tracer: no camera defined")
	ErrNoFramebuffer = errors.New("cpu tracer: no target framebuffer defined")
)
