package cpu

import (
	"sync"
	"time"

	"github.com/avasilakis/orion/log"
	"github.com/avasilakis/orion/scene"
	"github.com/avasilakis/orion/tracer"
	"github.com/avasilakis/orion/types"
)

// Config describes everything a cpu tracer needs to shade its row bands.
// The scene and camera are shared read-only across the whole pool; the
// framebuffer is shared too but each tracer only writes its own rows.
type Config struct {
	Scene  *scene.Scene
	Camera *scene.Camera
	Target tracer.Framebuffer

	// Sub-samples per pixel axis; each pixel is shaded Oversample^2 times
	// on a fixed centered grid and the results are averaged.
	Oversample int

	// Shading model knobs, see Kernel.
	Ambient        float32
	HitEpsilon     float32
	MaxReflections int
}

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	kernel Kernel

	camera     *scene.Camera
	target     tracer.Framebuffer
	oversample int

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for the last rendered block.
	stats *tracer.Stats
}

// Create and start a cpu tracer. The returned tracer processes block
// requests on its own goroutine until Close is called.
func NewTracer(id string, cfg Config) (tracer.Tracer, error) {
	if cfg.Scene == nil {
		return nil, ErrNoSceneData
	}
	if cfg.Camera == nil {
		return nil, ErrNoCameraData
	}
	if cfg.Target == nil {
		return nil, ErrNoFramebuffer
	}
	if cfg.Oversample < 1 {
		cfg.Oversample = 1
	}

	tr := &cpuTracer{
		logger: log.New("cpu tracer (" + id + ")"),
		id:     id,
		kernel: Kernel{
			Scene:          cfg.Scene,
			Ambient:        cfg.Ambient,
			HitEpsilon:     cfg.HitEpsilon,
			MaxReflections: cfg.MaxReflections,
		},
		camera:       cfg.Camera,
		target:       cfg.Target,
		oversample:   cfg.Oversample,
		blockReqChan: make(chan tracer.BlockRequest),
		stats:        &tracer.Stats{},
	}
	tr.startWorker()

	return tr, nil
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Get the tracer's relative computation speed estimate. All cpu tracers in
// a pool run on identical hardware so the estimate is flat.
func (tr *cpuTracer) Speed() uint32 {
	return 1
}

// Retrieve last block statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close and shutdown channel
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
	}
	tr.wg.Wait()
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	select {
	case tr.blockReqChan <- blockReq:
	default:
		// drop the request if the worker is not listening
		tr.logger.Error("request processor did not receive block request")
	}
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	if tr.closeChan != nil {
		return
	}
	tr.closeChan = make(chan struct{})

	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var blockReq tracer.BlockRequest
		var startTime time.Time
		close(readyChan)
		for {
			select {
			case blockReq = <-tr.blockReqChan:
				startTime = time.Now()
				tr.renderBlock(&blockReq)

				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime = time.Since(startTime)

				blockReq.DoneChan <- blockReq.BlockH
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Render every pixel of the assigned row band. Each pixel is shaded on an
// oversample x oversample grid of sub-rays centered in their sub-cells and
// averaged before the single write into the framebuffer.
func (tr *cpuTracer) renderBlock(blockReq *tracer.BlockRequest) {
	width, _ := tr.target.Dims()
	grid := tr.oversample
	step := 1 / float32(grid)
	invSamples := 1 / float32(grid*grid)

	yEnd := int(blockReq.BlockY + blockReq.BlockH)
	for y := int(blockReq.BlockY); y < yEnd; y++ {
		for x := 0; x < width; x++ {
			var sum types.Vec3
			for sy := 0; sy < grid; sy++ {
				for sx := 0; sx < grid; sx++ {
					px := float32(x) + (float32(sx)+0.5)*step
					py := float32(y) + (float32(sy)+0.5)*step
					origin, dir := tr.camera.Ray(px, py, blockReq.Angle)
					sum = sum.Add(tr.kernel.Trace(origin, dir, 0))
				}
			}
			tr.target.Set(x, y, sum.Mul(invSamples))
		}
	}
}
