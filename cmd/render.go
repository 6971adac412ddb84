package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/rsolis096/RealTimeRT/renderer"
	"github.com/urfave/cli"
)

// Render an interactive view of the scene.
func RenderInteractive(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}
	logger.Infof("scene information:\n%s", sc.Stats())

	shaders, err := loadShaders(cfg)
	if err != nil {
		return err
	}

	opts := renderer.Options{
		FrameW:           cfg.Window.Width,
		FrameH:           cfg.Window.Height,
		SamplesPerPixel:  cfg.Render.SamplesPerPixel,
		MaxDepth:         cfg.Render.MaxDepth,
		MouseSensitivity: cfg.Camera.MouseSensitivity,
		MoveSpeed:        cfg.Camera.MoveSpeed,
		VSync:            cfg.Window.VSync,
		Seed:             cfg.Render.Seed,
		Shaders:          shaders,
	}

	r, err := renderer.NewInteractive(sc, cfg.NewCamera(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	err = r.Render()

	// Display stats
	displayFrameStats(r.Stats())

	return err
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Scene uploads", "Last frame", "Avg frame", "Total"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%d", stats.SceneUploads),
		stats.LastFrameTime.String(),
		stats.AvgFrameTime().String(),
		stats.TotalTime.String(),
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
