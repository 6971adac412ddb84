package main

import (
	"fmt"
	"os"

	"github.com/rsolis096/RealTimeRT/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlags := []cli.Flag{
		cli.Int64Flag{
			Name:  "scene-seed",
			Usage: "seed for the random scene generator (0 picks a random seed)",
		},
		cli.Float64Flag{
			Name:  "box-chance",
			Usage: "chance that a grid cell holds a cube instead of a sphere",
		},
		cli.BoolFlag{
			Name:  "ground-only",
			Usage: "only add the ground sphere to the scene",
		},
	}

	app := cli.NewApp()
	app.Name = "realtimert"
	app.Usage = "interactive real-time ray tracing on the gpu"
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
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a YAML file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render interactive view of the scene",
			Description: `
Generate a scene of spheres and boxes, upload it to the gpu and trace it
with an opengl compute shader every frame.

Controls:
  W/A/S/D, Space, Left Ctrl   move the camera
  mouse                       look around
  ` + "`" + `                           toggle mouse look
  [ and ]                     decrease/increase samples per pixel
  - and =                     decrease/increase max ray depth
  Esc                         quit`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "window height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (1-5)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "max ray depth (1-10)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "seed for the per-frame kernel seed sequence",
				},
				cli.BoolFlag{
					Name:  "vsync",
					Usage: "sync buffer swaps to the display refresh rate",
				},
				cli.StringFlag{
					Name:  "compute",
					Usage: "path or url of the compute (tracing) shader",
				},
				cli.StringFlag{
					Name:  "vertex",
					Usage: "path or url of the vertex shader",
				},
				cli.StringFlag{
					Name:  "fragment",
					Usage: "path or url of the fragment shader",
				},
				cli.StringSliceFlag{
					Name:  "include, I",
					Value: &cli.StringSlice{},
					Usage: "search path for shader includes",
				},
			}, sceneFlags...),
			Action: cmd.RenderInteractive,
		},
		{
			Name:   "scene-info",
			Usage:  "display the generated scene and the size of its gpu buffers",
			Flags:  sceneFlags,
			Action: cmd.ShowSceneInfo,
		},
		{
			Name:   "device-info",
			Usage:  "display opengl device capabilities",
			Action: cmd.ListDevices,
		},
		{
			Name:      "write-config",
			Usage:     "write the effective configuration to a YAML file",
			ArgsUsage: "config.yaml",
			Action:    cmd.WriteConfig,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
