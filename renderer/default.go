package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/avasilakis/orion/log"
	"github.com/avasilakis/orion/scene"
	"github.com/avasilakis/orion/tracer"
	"github.com/avasilakis/orion/tracer/cpu"
)

// The default renderer drives a fixed pool of cpu tracers: every frame is a
// fork-join where the scheduler splits the frame rows into one contiguous
// band per tracer, all bands are enqueued, and the call blocks until every
// tracer reports its band done.
type defaultRenderer struct {
	logger log.Logger

	options   Options
	scheduler tracer.BlockScheduler

	fb      *Framebuffer
	tracers []tracer.Tracer

	// Completion and failure signals shared by all in-flight blocks.
	doneChan chan uint32
	errChan  chan error

	stats FrameStats
}

// Create a new renderer for the given immutable scene and camera backed by
// a pool of cpu tracers. A tracer that cannot be started aborts the whole
// renderer; there is no degraded mode with a partial pool.
func NewDefault(sc *scene.Scene, camera *scene.Camera, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW < 1 || opts.FrameH < 1 {
		return nil, ErrInvalidFrameDims
	}
	opts.applyDefaults()

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		options:   opts,
		scheduler: scheduler,
		fb:        NewFramebuffer(int(opts.FrameW), int(opts.FrameH)),
		tracers:   make([]tracer.Tracer, 0, numWorkers),
		doneChan:  make(chan uint32, numWorkers),
		errChan:   make(chan error, numWorkers),
	}

	cfg := cpu.Config{
		Scene:          sc,
		Camera:         camera,
		Target:         r.fb,
		Oversample:     opts.Oversample,
		Ambient:        opts.Ambient,
		HitEpsilon:     opts.HitEpsilon,
		MaxReflections: opts.MaxReflections,
	}

	for idx := 0; idx < numWorkers; idx++ {
		tr, err := cpu.NewTracer(fmt.Sprintf("cpu-%d", idx), cfg)
		if err != nil {
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	r.logger.Noticef("attached %d cpu tracers", len(r.tracers))
	return r, nil
}

// Render a frame at the given camera orbit angle. Blocks until every tracer
// has written its row band into the framebuffer.
func (r *defaultRenderer) Render(angle float32) error {
	if len(r.tracers) == 0 {
		return ErrNoTracers
	}

	startTime := time.Now()
	blockAssignments := r.scheduler.Schedule(r.tracers, r.options.FrameH)

	var blockY uint32
	pending := 0
	for idx, tr := range r.tracers {
		blockH := blockAssignments[idx]
		if blockH == 0 {
			continue
		}

		tr.Enqueue(tracer.BlockRequest{
			BlockY:   blockY,
			BlockH:   blockH,
			Angle:    angle,
			DoneChan: r.doneChan,
			ErrChan:  r.errChan,
		})
		blockY += blockH
		pending++
	}

	// Join barrier: a frame is only complete once every band is done. A
	// tracer failure is fatal for the frame.
	var err error
	for pending > 0 {
		select {
		case <-r.doneChan:
			pending--
		case trErr := <-r.errChan:
			err = trErr
			pending--
		}
	}
	if err != nil {
		return err
	}

	r.collectStats(blockAssignments, time.Since(startTime))
	return nil
}

func (r *defaultRenderer) collectStats(blockAssignments []uint32, renderTime time.Duration) {
	frameStats := FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}

	for idx, tr := range r.tracers {
		trStats := tr.Stats()
		frameStats.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			BlockH:       blockAssignments[idx],
			FramePercent: 100 * float32(blockAssignments[idx]) / float32(r.options.FrameH),
			RenderTime:   trStats.RenderTime,
		}
	}

	r.stats = frameStats
}

// Get the output surface frames are rendered into.
func (r *defaultRenderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

// Shutdown renderer and any attached tracers.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = r.tracers[:0]
}
