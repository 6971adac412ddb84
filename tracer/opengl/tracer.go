package opengl

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/rsolis096/RealTimeRT/log"
	"github.com/rsolis096/RealTimeRT/scene"
	"github.com/rsolis096/RealTimeRT/scene/compiler"
	"github.com/rsolis096/RealTimeRT/tracer"
)

// Size of a compute work group along each axis. Must match the
// local_size_x/local_size_y declared by the compute shader.
const workGroupSize = 16

// ShaderSources holds the source text of the tracing kernel and of the
// program that draws the traced image.
type ShaderSources struct {
	Compute  string
	Vertex   string
	Fragment string
}

// FrameDims is the payload for FrameDimensions updates.
type FrameDims struct {
	W uint32
	H uint32
}

type glTracer struct {
	logger log.Logger

	sync.Mutex

	// The tracer id.
	id string

	shaders ShaderSources

	// Programs and GL objects.
	computeProgram  uint32
	graphicsProgram uint32
	vao             uint32
	outputTex       uint32

	// The allocated buffers.
	buffers *bufferSet

	// Output image dimensions.
	frameW uint32
	frameH uint32

	// A buffer for queuing updates. Updates are grouped by type and
	// latest updates always overwrite the previous ones.
	updateBuffer map[tracer.UpdateType]interface{}

	// True once scene data has been uploaded.
	hasSceneData bool

	// Statistics for last rendered frame.
	stats *tracer.Stats
}

// Create a new opengl compute tracer. The tracer must be initialized and
// used from the goroutine that owns the current GL context.
func NewTracer(id string, shaders ShaderSources) tracer.Tracer {
	return &glTracer{
		logger:       log.New(fmt.Sprintf("opengl tracer (%s)", id)),
		id:           id,
		shaders:      shaders,
		updateBuffer: make(map[tracer.UpdateType]interface{}),
		stats:        &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *glTracer) Id() string {
	return tr.id
}

// Compile the shader programs and allocate the output image and uniform
// blocks.
func (tr *glTracer) Init(frameW, frameH uint32) error {
	var err error
	tr.Lock()
	defer tr.Unlock()

	if frameW == 0 || frameH == 0 {
		return ErrInvalidFrameDims
	}

	start := time.Now()
	tr.computeProgram, err = NewProgram(map[uint32]string{
		gl.COMPUTE_SHADER: tr.shaders.Compute,
	})
	if err != nil {
		tr.cleanup()
		return err
	}

	tr.graphicsProgram, err = NewProgram(map[uint32]string{
		gl.VERTEX_SHADER:   tr.shaders.Vertex,
		gl.FRAGMENT_SHADER: tr.shaders.Fragment,
	})
	if err != nil {
		tr.cleanup()
		return err
	}
	tr.logger.Infof("compiled shader programs in %d ms", time.Since(start).Nanoseconds()/1e6)

	// The fullscreen triangle is generated in the vertex shader but a vao
	// must be bound for draw calls to succeed.
	gl.GenVertexArrays(1, &tr.vao)

	tr.buffers = newBufferSet(tr.logger)
	err = tr.buffers.Init()
	if err != nil {
		tr.cleanup()
		return err
	}

	err = tr.resize(frameW, frameH)
	if err != nil {
		tr.cleanup()
		return err
	}

	return nil
}

// Shutdown and cleanup tracer.
func (tr *glTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	tr.cleanup()
}

// Cleanup tracer. This method is meant to be called while holding tr.Lock()
func (tr *glTracer) cleanup() {
	if tr.buffers != nil {
		tr.buffers.Release()
		tr.buffers = nil
	}

	if tr.outputTex != 0 {
		gl.DeleteTextures(1, &tr.outputTex)
		tr.outputTex = 0
	}

	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}

	for _, program := range []*uint32{&tr.computeProgram, &tr.graphicsProgram} {
		if *program != 0 {
			gl.DeleteProgram(*program)
			*program = 0
		}
	}

	tr.hasSceneData = false
	tr.updateBuffer = make(map[tracer.UpdateType]interface{})
}

// Append a change to the tracer's update buffer.
func (tr *glTracer) UpdateState(updateType tracer.UpdateType, data interface{}) {
	tr.Lock()
	defer tr.Unlock()

	tr.updateBuffer[updateType] = data
}

// Retrieve last frame statistics.
func (tr *glTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Apply pending updates and dispatch the compute kernel.
func (tr *glTracer) Trace(req *tracer.FrameRequest) error {
	var err error
	tr.Lock()
	defer tr.Unlock()

	if tr.buffers == nil {
		return ErrNotInitialized
	}

	// Apply any pending changes
	if len(tr.updateBuffer) != 0 {
		start := time.Now()
		err = tr.commitUpdates()
		if err != nil {
			return err
		}
		tr.stats.UpdateTime = time.Since(start)
	}

	if !tr.hasSceneData {
		return ErrNoSceneData
	}

	start := time.Now()
	err = tr.buffers.UploadFrame(tracer.PackFrameUniforms(req, tr.frameW, tr.frameH, tr.buffers.counts))
	if err != nil {
		return err
	}

	gl.UseProgram(tr.computeProgram)
	gl.BindImageTexture(outputImageUnit, tr.outputTex, 0, false, 0, gl.WRITE_ONLY, gl.RGBA32F)
	gl.DispatchCompute(workGroups(tr.frameW), workGroups(tr.frameH), 1)
	gl.MemoryBarrier(gl.SHADER_IMAGE_ACCESS_BARRIER_BIT | gl.TEXTURE_FETCH_BARRIER_BIT)

	tr.stats.TraceTime = time.Since(start)
	tr.stats.FrameCount++
	return glError("compute dispatch")
}

// Draw the output image as a fullscreen triangle.
func (tr *glTracer) Present() error {
	tr.Lock()
	defer tr.Unlock()

	if tr.buffers == nil {
		return ErrNotInitialized
	}

	gl.Viewport(0, 0, int32(tr.frameW), int32(tr.frameH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(tr.graphicsProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tr.outputTex)
	gl.BindImageTexture(outputImageUnit, tr.outputTex, 0, false, 0, gl.READ_ONLY, gl.RGBA32F)
	gl.BindVertexArray(tr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)

	return glError("present")
}

// Commit queued changes. This method is meant to be called while holding tr.Lock()
func (tr *glTracer) commitUpdates() error {
	var err error

	// Dimensions first so that the frame block of this frame sees them.
	if data, ok := tr.updateBuffer[tracer.FrameDimensions]; ok {
		dims := data.(FrameDims)
		err = tr.resize(dims.W, dims.H)
		if err != nil {
			return err
		}
	}

	for updateType, data := range tr.updateBuffer {
		switch updateType {
		case tracer.FrameDimensions:
			// already applied
		case tracer.SceneData:
			start := time.Now()
			err = tr.buffers.UploadSceneData(data.(*compiler.Buffers))
			if err == nil {
				tr.hasSceneData = true
				tr.stats.SceneUploads++
				tr.logger.Infof("uploaded scene data in %d ms", time.Since(start).Nanoseconds()/1e6)
			}
		case tracer.CameraData:
			err = tr.buffers.UploadCamera(data.(scene.CameraBlock))
		default:
			return fmt.Errorf("opengl tracer: unsupported update type %d", updateType)
		}

		if err != nil {
			return err
		}
	}

	tr.updateBuffer = make(map[tracer.UpdateType]interface{})
	return nil
}

// (Re)allocate the output image. This method is meant to be called while
// holding tr.Lock()
func (tr *glTracer) resize(frameW, frameH uint32) error {
	if frameW == 0 || frameH == 0 {
		return ErrInvalidFrameDims
	}
	if tr.outputTex != 0 && frameW == tr.frameW && frameH == tr.frameH {
		return nil
	}

	// Immutable texture storage can not be resized so the texture is
	// recreated.
	if tr.outputTex != 0 {
		gl.DeleteTextures(1, &tr.outputTex)
	}

	gl.GenTextures(1, &tr.outputTex)
	gl.BindTexture(gl.TEXTURE_2D, tr.outputTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexStorage2D(gl.TEXTURE_2D, 1, gl.RGBA32F, int32(frameW), int32(frameH))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	tr.frameW, tr.frameH = frameW, frameH
	tr.logger.Debugf("allocated %dx%d output image", frameW, frameH)

	return glError("output image")
}

// Number of work groups needed to cover size pixels.
func workGroups(size uint32) uint32 {
	return (size + workGroupSize - 1) / workGroupSize
}
