package renderer

import (
	"testing"

	"github.com/rsolis096/RealTimeRT/tracer"
	"github.com/rsolis096/RealTimeRT/tracer/opengl"
)

func TestOptionsNormalize(t *testing.T) {
	opts := Options{
		FrameW:          640,
		FrameH:          480,
		SamplesPerPixel: 64,
		MaxDepth:        0,
		Shaders: opengl.ShaderSources{
			Compute:  "c",
			Vertex:   "v",
			Fragment: "f",
		},
	}

	if err := opts.normalize(); err != nil {
		t.Fatal(err)
	}

	if opts.SamplesPerPixel != tracer.MaxSamplesPerPixel {
		t.Fatalf("expected samples to be clamped to %d; got %d", tracer.MaxSamplesPerPixel, opts.SamplesPerPixel)
	}
	if opts.MaxDepth != tracer.MinDepth {
		t.Fatalf("expected depth to be clamped to %d; got %d", tracer.MinDepth, opts.MaxDepth)
	}
	if opts.MouseSensitivity != DefaultMouseSensitivity {
		t.Fatalf("expected mouse sensitivity to be %f; got %f", DefaultMouseSensitivity, opts.MouseSensitivity)
	}
	if opts.MoveSpeed != DefaultMoveSpeed {
		t.Fatalf("expected move speed to be %f; got %f", DefaultMoveSpeed, opts.MoveSpeed)
	}
}

func TestOptionsNormalizeErrors(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.normalize(); err != ErrMissingShaders {
		t.Fatalf("expected error to be %v; got %v", ErrMissingShaders, err)
	}

	opts.FrameH = 0
	if err := opts.normalize(); err != ErrInvalidFrameDims {
		t.Fatalf("expected error to be %v; got %v", ErrInvalidFrameDims, err)
	}
}

func TestNewInteractiveRequiresSceneAndCamera(t *testing.T) {
	if _, err := NewInteractive(nil, nil, DefaultOptions()); err != ErrSceneNotDefined {
		t.Fatalf("expected error to be %v; got %v", ErrSceneNotDefined, err)
	}
}
