package renderer

import (
	"github.com/rsolis096/RealTimeRT/tracer"
	"github.com/rsolis096/RealTimeRT/tracer/opengl"
)

const (
	DefaultFrameW uint32 = 1280
	DefaultFrameH uint32 = 720

	DefaultSamplesPerPixel uint32 = 1
	DefaultMaxDepth        uint32 = 5

	// Degrees of yaw/pitch per pixel of cursor movement.
	DefaultMouseSensitivity float32 = 0.3

	// Camera movement speed in world units per second.
	DefaultMoveSpeed float32 = 2.5
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples per pixel and max ray bounces. Values outside the
	// range supported by the kernel are clamped.
	SamplesPerPixel uint32
	MaxDepth        uint32

	// Input mapping.
	MouseSensitivity float32
	MoveSpeed        float32

	// Sync buffer swaps to the display refresh rate.
	VSync bool

	// Seed for the per-frame kernel seed sequence.
	Seed int64

	// Kernel and presentation shader sources.
	Shaders opengl.ShaderSources
}

// Get the default renderer options. Shader sources are left empty.
func DefaultOptions() Options {
	return Options{
		FrameW:           DefaultFrameW,
		FrameH:           DefaultFrameH,
		SamplesPerPixel:  DefaultSamplesPerPixel,
		MaxDepth:         DefaultMaxDepth,
		MouseSensitivity: DefaultMouseSensitivity,
		MoveSpeed:        DefaultMoveSpeed,
	}
}

// Check the options and replace out of range values.
func (o *Options) normalize() error {
	if o.FrameW == 0 || o.FrameH == 0 {
		return ErrInvalidFrameDims
	}
	if o.Shaders.Compute == "" || o.Shaders.Vertex == "" || o.Shaders.Fragment == "" {
		return ErrMissingShaders
	}

	o.SamplesPerPixel = tracer.ClampSamples(o.SamplesPerPixel)
	o.MaxDepth = tracer.ClampDepth(o.MaxDepth)
	if o.MouseSensitivity <= 0 {
		o.MouseSensitivity = DefaultMouseSensitivity
	}
	if o.MoveSpeed <= 0 {
		o.MoveSpeed = DefaultMoveSpeed
	}

	return nil
}
