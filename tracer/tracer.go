package tracer

import "time"

type UpdateType uint8

const (
	FrameDimensions UpdateType = iota
	SceneData
	CameraData
)

func (ut UpdateType) String() string {
	switch ut {
	case FrameDimensions:
		return "frame dimensions"
	case SceneData:
		return "scene data"
	case CameraData:
		return "camera data"
	}
	return "unknown"
}

// A request for tracing a single frame.
type FrameRequest struct {
	// A pseudo-random seed for the kernel's random number generator. The
	// seed must advance between frames.
	Seed float32

	// The number of emitted rays per traced pixel.
	SamplesPerPixel uint32

	// The maximum number of ray bounces.
	MaxDepth uint32
}

// Tracer statistics.
type Stats struct {
	// Time spent dispatching and waiting for the last frame.
	TraceTime time.Duration

	// Time spent uploading the pending updates for the last frame.
	UpdateTime time.Duration

	// Number of times the scene buffers were uploaded.
	SceneUploads uint32

	// Number of traced frames.
	FrameCount uint64
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Setup the tracer for the given output dimensions.
	Init(frameW, frameH uint32) error

	// Shutdown and cleanup tracer.
	Close()

	// Queue a state update. Updates are grouped by type; a newer update
	// replaces any pending update of the same type. Pending updates are
	// applied by the next call to Trace.
	UpdateState(UpdateType, interface{})

	// Apply pending updates and trace a frame into the output image.
	Trace(*FrameRequest) error

	// Draw the traced image to the current framebuffer.
	Present() error

	// Retrieve last frame statistics.
	Stats() *Stats
}
