package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rsolis096/RealTimeRT/log"
	"github.com/rsolis096/RealTimeRT/scene"
	"github.com/rsolis096/RealTimeRT/types"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFrameDims = errors.New("config: window width and height must be positive")

// Config holds the settings that can be supplied through a YAML file.
// Command line flags override the loaded values.
type Config struct {
	LogLevel string `yaml:"log_level"`

	Window  WindowConfig `yaml:"window"`
	Render  RenderConfig `yaml:"render"`
	Camera  CameraConfig `yaml:"camera"`
	Scene   SceneConfig  `yaml:"scene"`
	Shaders ShaderConfig `yaml:"shaders"`
}

type WindowConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type RenderConfig struct {
	SamplesPerPixel uint32 `yaml:"samples_per_pixel"`
	MaxDepth        uint32 `yaml:"max_depth"`
	Seed            int64  `yaml:"seed"`
}

type CameraConfig struct {
	LookFrom      [3]float32 `yaml:"look_from,flow"`
	LookAt        [3]float32 `yaml:"look_at,flow"`
	FOV           float32    `yaml:"fov"`
	DefocusAngle  float32    `yaml:"defocus_angle"`
	FocusDistance float32    `yaml:"focus_distance"`

	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
}

type SceneConfig struct {
	Seed       int64   `yaml:"seed"`
	GroundOnly bool    `yaml:"ground_only"`
	BoxChance  float32 `yaml:"box_chance"`
}

type ShaderConfig struct {
	Compute      string   `yaml:"compute"`
	Vertex       string   `yaml:"vertex"`
	Fragment     string   `yaml:"fragment"`
	IncludePaths []string `yaml:"include_paths"`
}

// Get the default configuration.
func Default() Config {
	return Config{
		LogLevel: log.Notice.String(),
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
		},
		Render: RenderConfig{
			SamplesPerPixel: 1,
			MaxDepth:        5,
		},
		Camera: CameraConfig{
			LookFrom:         scene.DefaultLookFrom,
			LookAt:           scene.DefaultLookAt,
			FOV:              scene.DefaultFOV,
			FocusDistance:    scene.DefaultFocusDistance,
			MouseSensitivity: 0.3,
			MoveSpeed:        2.5,
		},
		Shaders: ShaderConfig{
			Compute:      "shaders/source/comp.glsl",
			Vertex:       "shaders/source/vert.glsl",
			Fragment:     "shaders/source/frag.glsl",
			IncludePaths: []string{"shaders/include"},
		},
	}
}

// Load the configuration from a YAML file. Settings missing from the file
// keep their default values. An empty path or a missing file yields the
// default configuration.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && err != io.EOF {
		return Default(), fmt.Errorf("config: could not parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Write the configuration to a YAML file, creating the parent directory if
// needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Check that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return ErrInvalidFrameDims
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Get the configured log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.Notice
	}
	return level
}

// Create a camera using the configured pose and lens.
func (c *Config) NewCamera() *scene.Camera {
	cam := scene.NewCamera(types.Vec3(c.Camera.LookFrom), types.Vec3(c.Camera.LookAt), c.Camera.FOV)
	cam.DefocusAngle = c.Camera.DefocusAngle
	cam.FocusDistance = c.Camera.FocusDistance
	return cam
}
