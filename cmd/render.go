package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/avasilakis/orion/renderer"
	"github.com/avasilakis/orion/scene"
	"github.com/avasilakis/orion/tracer"
	"github.com/avasilakis/orion/types"
)

// The default orbit scene camera, matching the fixed scene in scene.Default.
func defaultCamera(width, height int) *scene.Camera {
	return scene.NewCamera(
		types.XYZ(0, 100, -300), // Look from here
		types.XYZ(0, -0.25, 1),  // Look in this direction
		types.XYZ(0, 1, 0),      // Up is up
		width,
		height,
	)
}

func rendererOptions(ctx *cli.Context) renderer.Options {
	return renderer.Options{
		FrameW:         uint32(ctx.Int("width")),
		FrameH:         uint32(ctx.Int("height")),
		NumWorkers:     ctx.Int("workers"),
		Oversample:     ctx.Int("oversample"),
		MaxReflections: ctx.Int("reflections"),
		OrbitPeriod:    time.Duration(ctx.Int("orbit-period")) * time.Second,
	}
}

// Render a still frame to a png file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := rendererOptions(ctx)

	r, err := renderer.NewDefault(scene.Default(), defaultCamera(int(opts.FrameW), int(opts.FrameH)), tracer.NaiveScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	angle := float32(ctx.Float64("angle"))
	if err = r.Render(angle); err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	// Export PNG
	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = png.Encode(f, r.Framebuffer().RGBA()); err != nil {
		return fmt.Errorf("error encoding png file: %s", err.Error())
	}
	logger.Noticef("wrote frame to %s", imgFile)

	return nil
}

// Use opengl to render a continuously updating orbit of the scene.
func RenderInteractive(ctx *cli.Context) error {
	setupLogging(ctx)

	// glfw event handling must run on the main OS thread
	runtime.LockOSThread()

	opts := rendererOptions(ctx)

	r, err := renderer.NewInteractive(scene.Default(), defaultCamera(int(opts.FrameW), int(opts.FrameH)), tracer.NaiveScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Render(0)
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
