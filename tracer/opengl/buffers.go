package opengl

import (
	"reflect"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/rsolis096/RealTimeRT/log"
	"github.com/rsolis096/RealTimeRT/scene"
	"github.com/rsolis096/RealTimeRT/scene/compiler"
	"github.com/rsolis096/RealTimeRT/tracer"
)

// Binding points shared with the shading kernel.
const (
	// Shader storage blocks.
	sphereBinding   uint32 = 0
	materialBinding uint32 = 1
	boxBinding      uint32 = 2
	hittableBinding uint32 = 3

	// Uniform blocks.
	cameraBinding uint32 = 0
	frameBinding  uint32 = 1

	// Image unit for the traced output.
	outputImageUnit uint32 = 0
)

type bufferSet struct {
	logger log.Logger

	// Scene data
	Spheres   *Buffer
	Materials *Buffer
	Boxes     *Buffer
	Hittables *Buffer

	// Per-frame uniform blocks
	Camera *Buffer
	Frame  *Buffer

	// Record counts of the last scene upload.
	counts compiler.Counts
}

// Allocate new buffer set.
func newBufferSet(logger log.Logger) *bufferSet {
	return &bufferSet{
		logger:    logger,
		Spheres:   newBuffer("spheres", gl.SHADER_STORAGE_BUFFER, sphereBinding),
		Materials: newBuffer("materials", gl.SHADER_STORAGE_BUFFER, materialBinding),
		Boxes:     newBuffer("boxes", gl.SHADER_STORAGE_BUFFER, boxBinding),
		Hittables: newBuffer("hittables", gl.SHADER_STORAGE_BUFFER, hittableBinding),
		Camera:    newBuffer("camera", gl.UNIFORM_BUFFER, cameraBinding),
		Frame:     newBuffer("frame", gl.UNIFORM_BUFFER, frameBinding),
	}
}

// Allocate the uniform blocks.
func (bs *bufferSet) Init() error {
	var err error

	err = bs.Camera.Allocate(scene.SizeofGPUCamera, gl.DYNAMIC_DRAW)
	if err != nil {
		return err
	}

	return bs.Frame.Allocate(tracer.SizeofGPUFrame, gl.DYNAMIC_DRAW)
}

// Release all buffers.
func (bs *bufferSet) Release() {
	reflVal := reflect.ValueOf(*bs)
	for fieldIndex := 0; fieldIndex < reflVal.NumField(); fieldIndex++ {
		field := reflVal.Field(fieldIndex)
		if !field.CanInterface() {
			continue
		}
		if buf, ok := field.Interface().(*Buffer); ok {
			buf.Release()
		}
	}
}

// Upload packed scene data to the storage buffers. Arrays without records
// are backed by a single zeroed record since zero sized storage buffers
// can not be bound; the kernel relies on the counts in the frame block.
func (bs *bufferSet) UploadSceneData(buffers *compiler.Buffers) error {
	var err error

	type target struct {
		buf        *Buffer
		data       []byte
		recordSize int
	}
	targets := []target{
		{bs.Spheres, buffers.SphereBytes(), scene.SizeofGPUSphere},
		{bs.Materials, buffers.MaterialBytes(), scene.SizeofGPUMaterial},
		{bs.Boxes, buffers.BoxBytes(), scene.SizeofGPUBox},
		{bs.Hittables, buffers.HittableBytes(), scene.SizeofGPUHittable},
	}

	for _, t := range targets {
		data := t.data
		if len(data) == 0 {
			data = make([]byte, t.recordSize)
		}
		err = t.buf.AllocateAndWriteData(data, gl.STATIC_DRAW)
		if err != nil {
			return err
		}
		bs.logger.Debugf("uploaded %d bytes to %s buffer (binding %d)", t.buf.Size(), t.buf.Name(), t.buf.Binding())
	}

	bs.counts = buffers.Counts()
	return nil
}

// Upload the camera uniform block.
func (bs *bufferSet) UploadCamera(block scene.CameraBlock) error {
	packed := block.Pack()
	buf := make([]byte, scene.SizeofGPUCamera)
	packed.Marshal(buf)
	return bs.Camera.WriteData(buf, 0)
}

// Upload the frame uniform block.
func (bs *bufferSet) UploadFrame(frame tracer.GPUFrame) error {
	buf := make([]byte, tracer.SizeofGPUFrame)
	frame.Marshal(buf)
	return bs.Frame.WriteData(buf, 0)
}
