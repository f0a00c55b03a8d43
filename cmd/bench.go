package cmd

import (
	"math"
	"time"

	"github.com/urfave/cli"

	"github.com/avasilakis/orion/renderer"
	"github.com/avasilakis/orion/scene"
	"github.com/avasilakis/orion/tracer"
)

// Render a fixed number of frames headless, advancing the orbit as the
// interactive renderer would, and report aggregate timings.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := rendererOptions(ctx)
	frames := ctx.Int("frames")
	if frames < 1 {
		frames = 1
	}

	r, err := renderer.NewDefault(scene.Default(), defaultCamera(int(opts.FrameW), int(opts.FrameH)), tracer.NaiveScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	var total time.Duration
	for frame := 0; frame < frames; frame++ {
		angle := float32(2 * math.Pi * float64(frame) / float64(frames))
		if err = r.Render(angle); err != nil {
			return err
		}

		stats := r.Stats()
		total += stats.RenderTime
		logger.Infof("frame %03d rendered in %s", frame, stats.RenderTime)
	}

	logger.Noticef("rendered %d frames in %s (%.1f ms/frame avg)",
		frames, total, float64(total.Milliseconds())/float64(frames))
	displayFrameStats(r.Stats())

	return nil
}
