package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Buffer wraps a GL buffer object that is attached to an indexed binding
// point of a storage or uniform block.
type Buffer struct {
	// Handle to the GL buffer object.
	handle uint32

	// Buffer target (SHADER_STORAGE_BUFFER or UNIFORM_BUFFER) and binding index.
	target  uint32
	binding uint32

	// A name for identifying the buffer.
	name string

	// Allocated size.
	size int
}

func newBuffer(name string, target, binding uint32) *Buffer {
	return &Buffer{
		name:    name,
		target:  target,
		binding: binding,
	}
}

// Get buffer size.
func (b *Buffer) Size() int {
	return b.size
}

// Get buffer name.
func (b *Buffer) Name() string {
	return b.name
}

// Get the binding index of the buffer.
func (b *Buffer) Binding() uint32 {
	return b.binding
}

// Allocate a zero-filled buffer with the given size and usage hint and
// attach it to its binding point.
func (b *Buffer) Allocate(size int, usage uint32) error {
	if size <= 0 {
		return fmt.Errorf("opengl tracer: invalid size %d for buffer %s", size, b.name)
	}

	b.ensureHandle()
	gl.BindBuffer(b.target, b.handle)
	gl.BufferData(b.target, size, nil, usage)
	gl.BindBufferBase(b.target, b.binding, b.handle)
	gl.BindBuffer(b.target, 0)

	b.size = size
	return glError(b.name)
}

// Allocate a buffer large enough to hold data, copy data into it and attach
// it to its binding point.
func (b *Buffer) AllocateAndWriteData(data []byte, usage uint32) error {
	if len(data) == 0 {
		return fmt.Errorf("opengl tracer: no data supplied for buffer %s", b.name)
	}

	b.ensureHandle()
	gl.BindBuffer(b.target, b.handle)
	gl.BufferData(b.target, len(data), gl.Ptr(&data[0]), usage)
	gl.BindBufferBase(b.target, b.binding, b.handle)
	gl.BindBuffer(b.target, 0)

	b.size = len(data)
	return glError(b.name)
}

// Write data to the buffer starting at the given byte offset.
func (b *Buffer) WriteData(data []byte, offset int) error {
	if len(data) == 0 {
		return nil
	}
	if offset+len(data) > b.size {
		return fmt.Errorf("opengl tracer: insufficient buffer space (%d) in %s for copying data of length %d at offset %d", b.size, b.name, len(data), offset)
	}

	gl.BindBuffer(b.target, b.handle)
	gl.BufferSubData(b.target, offset, len(data), gl.Ptr(&data[0]))
	gl.BindBuffer(b.target, 0)

	return glError(b.name)
}

// Release buffer.
func (b *Buffer) Release() {
	if b.handle != 0 {
		gl.DeleteBuffers(1, &b.handle)
		b.handle = 0
	}
	b.size = 0
}

func (b *Buffer) ensureHandle() {
	if b.handle == 0 {
		gl.GenBuffers(1, &b.handle)
	}
}

// Check the GL error flag and convert it into an error that mentions the
// resource being processed.
func glError(resource string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl tracer: error 0x%x while processing %s", code, resource)
	}
	return nil
}
