package cmd

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rsolis096/RealTimeRT/asset"
	"github.com/rsolis096/RealTimeRT/config"
	"github.com/rsolis096/RealTimeRT/scene"
	"github.com/rsolis096/RealTimeRT/scene/generator"
	"github.com/rsolis096/RealTimeRT/tracer/opengl"
	"github.com/urfave/cli"
)

// Load the configuration file and apply any command line overrides.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.GlobalString("config"))
	if err != nil {
		return cfg, err
	}

	for _, flag := range []struct {
		name string
		dst  *uint32
	}{
		{"width", &cfg.Window.Width},
		{"height", &cfg.Window.Height},
		{"spp", &cfg.Render.SamplesPerPixel},
		{"depth", &cfg.Render.MaxDepth},
	} {
		if !ctx.IsSet(flag.name) {
			continue
		}
		*flag.dst, err = positiveUint32(flag.name, ctx.Int(flag.name))
		if err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet("vsync") {
		cfg.Window.VSync = ctx.Bool("vsync")
	}
	if ctx.IsSet("seed") {
		cfg.Render.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("scene-seed") {
		cfg.Scene.Seed = ctx.Int64("scene-seed")
	}
	if ctx.IsSet("box-chance") {
		cfg.Scene.BoxChance = float32(ctx.Float64("box-chance"))
	}
	if ctx.IsSet("ground-only") {
		cfg.Scene.GroundOnly = ctx.Bool("ground-only")
	}
	if ctx.IsSet("compute") {
		cfg.Shaders.Compute = ctx.String("compute")
	}
	if ctx.IsSet("vertex") {
		cfg.Shaders.Vertex = ctx.String("vertex")
	}
	if ctx.IsSet("fragment") {
		cfg.Shaders.Fragment = ctx.String("fragment")
	}
	if ctx.IsSet("include") {
		cfg.Shaders.IncludePaths = ctx.StringSlice("include")
	}

	if cfg.Window.Width == 0 || cfg.Window.Height == 0 {
		return cfg, errors.New("width and height must be positive")
	}

	setupLogging(ctx, cfg.Level())
	return cfg, nil
}

// Convert an integer flag value that must be strictly positive.
func positiveUint32(name string, v int) (uint32, error) {
	if v <= 0 || int64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%s must be a positive integer; got %d", name, v)
	}
	return uint32(v), nil
}

// Build the scene described by the configuration. A zero scene seed picks
// a time based seed which is logged so the scene can be reproduced.
func buildScene(cfg config.Config) (*scene.Scene, error) {
	if cfg.Scene.GroundOnly {
		return generator.GroundOnly()
	}

	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Noticef("using scene seed %d", seed)
	}

	opts := generator.DefaultOptions()
	opts.BoxChance = cfg.Scene.BoxChance

	start := time.Now()
	sc, err := generator.RandomScene(generator.NewRandomSource(seed), opts)
	if err != nil {
		return nil, err
	}
	logger.Infof("generated scene in %d ms", time.Since(start).Nanoseconds()/1e6)

	return sc, nil
}

// Load the shader sources and expand their includes.
func loadShaders(cfg config.Config) (opengl.ShaderSources, error) {
	var (
		sources opengl.ShaderSources
		err     error
	)

	loader := asset.NewShaderLoader(cfg.Shaders.IncludePaths...)
	for _, shader := range []struct {
		path string
		dst  *string
	}{
		{cfg.Shaders.Compute, &sources.Compute},
		{cfg.Shaders.Vertex, &sources.Vertex},
		{cfg.Shaders.Fragment, &sources.Fragment},
	} {
		*shader.dst, err = loader.Load(shader.path)
		if err != nil {
			return sources, err
		}
	}

	return sources, nil
}

// Write the effective configuration to a YAML file.
func WriteConfig(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("missing output file argument")
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	err = config.Save(cfg, ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("wrote configuration to %s", ctx.Args().First())
	return nil
}
