package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/avasilakis/orion/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	frameFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 640,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 480,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "number of cpu tracers (0 = one per logical cpu)",
		},
		cli.IntFlag{
			Name:  "oversample",
			Value: 2,
			Usage: "antialiasing sub-samples per pixel axis",
		},
		cli.IntFlag{
			Name:  "reflections",
			Value: 10,
			Usage: "max reflection recursion depth",
		},
		cli.IntFlag{
			Name:  "orbit-period",
			Value: 30,
			Usage: "seconds per full camera orbit",
		},
	}

	app := cli.NewApp()
	app.Name = "orion"
	app.Usage = "render an orbiting view of a raytraced scene"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render scene",
			Subcommands: []cli.Command{
				{
					Name:        "frame",
					Usage:       "render single frame",
					Description: `Render a single frame of the orbit at a fixed angle and save it as a png image.`,
					Flags: append(frameFlags,
						cli.Float64Flag{
							Name:  "angle",
							Value: 0,
							Usage: "camera orbit angle in radians",
						},
						cli.StringFlag{
							Name:  "out, o",
							Value: "frame.png",
							Usage: "image filename for the rendered frame",
						},
					),
					Action: cmd.RenderFrame,
				},
				{
					Name:        "interactive",
					Usage:       "render interactive view of the scene",
					Description: `Open a window and continuously re-render the scene while the camera orbits it. Press Esc to quit.`,
					Flags:       frameFlags,
					Action:      cmd.RenderInteractive,
				},
			},
		},
		{
			Name:  "bench",
			Usage: "benchmark the tracer pool over a number of headless frames",
			Flags: append(frameFlags,
				cli.IntFlag{
					Name:  "frames",
					Value: 30,
					Usage: "number of frames to render",
				},
			),
			Action: cmd.Bench,
		},
	}

	app.Run(os.Args)
}
