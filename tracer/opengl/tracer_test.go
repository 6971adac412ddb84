package opengl

import (
	"strings"
	"testing"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/rsolis096/RealTimeRT/tracer"
)

func TestWorkGroups(t *testing.T) {
	type spec struct {
		size      uint32
		expGroups uint32
	}
	specs := []spec{
		{1, 1},
		{15, 1},
		{16, 1},
		{17, 2},
		{720, 45},
		{1280, 80},
		{1281, 81},
	}

	for index, s := range specs {
		if got := workGroups(s.size); got != s.expGroups {
			t.Fatalf("[spec %d] expected %d pixels to need %d work groups; got %d", index, s.size, s.expGroups, got)
		}
	}
}

func TestShaderTypeName(t *testing.T) {
	type spec struct {
		shaderType uint32
		expName    string
	}
	specs := []spec{
		{gl.COMPUTE_SHADER, "compute"},
		{gl.VERTEX_SHADER, "vertex"},
		{gl.FRAGMENT_SHADER, "fragment"},
		{0, "unknown"},
	}

	for index, s := range specs {
		if got := shaderTypeName(s.shaderType); got != s.expName {
			t.Fatalf("[spec %d] expected shader type name to be %q; got %q", index, s.expName, got)
		}
	}
}

func TestDeviceInfoSupportsKernel(t *testing.T) {
	info := DeviceInfo{
		Version:                 "4.6.0",
		Vendor:                  "test",
		Renderer:                "test renderer",
		MaxWorkGroupCount:       [3]int32{65535, 65535, 65535},
		MaxWorkGroupSize:        [3]int32{1024, 1024, 64},
		MaxWorkGroupInvocations: 1024,
		MaxStorageBlockSize:     1 << 27,
	}
	if !info.SupportsKernel() {
		t.Fatal("expected device to support the tracing kernel")
	}
	if !strings.Contains(info.String(), "test renderer") {
		t.Fatalf("expected device info table to mention the renderer; got\n%s", info.String())
	}

	info.MaxWorkGroupInvocations = 128
	if info.SupportsKernel() {
		t.Fatal("expected device with 128 invocations per work group not to support the tracing kernel")
	}
}

func TestUninitializedTracer(t *testing.T) {
	tr := NewTracer("test", ShaderSources{})
	if tr.Id() != "test" {
		t.Fatalf("expected tracer id to be %q; got %q", "test", tr.Id())
	}

	// State updates are queued without touching the GL context.
	tr.UpdateState(tracer.CameraData, nil)
	tr.UpdateState(tracer.CameraData, nil)

	if err := tr.Trace(&tracer.FrameRequest{SamplesPerPixel: 1, MaxDepth: 1}); err != ErrNotInitialized {
		t.Fatalf("expected error to be %v; got %v", ErrNotInitialized, err)
	}
	if err := tr.Present(); err != ErrNotInitialized {
		t.Fatalf("expected error to be %v; got %v", ErrNotInitialized, err)
	}
	if tr.Stats().FrameCount != 0 {
		t.Fatalf("expected frame count to be 0; got %d", tr.Stats().FrameCount)
	}
}
