package cmd

import (
	"github.com/rsolis096/RealTimeRT/scene/compiler"
	"github.com/urfave/cli"
)

// Generate the configured scene and display its contents and the size of
// the packed GPU buffers.
func ShowSceneInfo(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	sc, err := buildScene(cfg)
	if err != nil {
		return err
	}
	logger.Noticef("scene information:\n%s", sc.Stats())

	buffers, err := compiler.BuildBuffers(sc)
	if err != nil {
		return err
	}
	logger.Noticef("gpu buffers:\n%s", buffers.Stats())

	return nil
}
