package renderer

import "time"

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of cpu tracers in the pool. Defaults to the number of
	// logical CPUs.
	NumWorkers int

	// Sub-samples per pixel axis for antialiasing.
	Oversample int

	// Upper bound on reflection recursion depth.
	MaxReflections int

	// Flat base illumination level.
	Ambient float32

	// Secondary-ray self-intersection backoff.
	HitEpsilon float32

	// Time for one full camera orbit in interactive mode.
	OrbitPeriod time.Duration
}

const (
	defaultOversample     = 2
	defaultMaxReflections = 10
	defaultAmbient        = 0.3
	defaultHitEpsilon     = 0.01
	defaultOrbitPeriod    = 30 * time.Second
)

// Fill in defaults for any unset option.
func (opts *Options) applyDefaults() {
	if opts.Oversample < 1 {
		opts.Oversample = defaultOversample
	}
	if opts.MaxReflections <= 0 {
		opts.MaxReflections = defaultMaxReflections
	}
	if opts.Ambient == 0 {
		opts.Ambient = defaultAmbient
	}
	if opts.HitEpsilon == 0 {
		opts.HitEpsilon = defaultHitEpsilon
	}
	if opts.OrbitPeriod <= 0 {
		opts.OrbitPeriod = defaultOrbitPeriod
	}
}
