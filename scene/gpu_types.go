package scene

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Byte sizes of the packed records. All records use std430 layout and are
// tightly packed when stored in arrays.
const (
	SizeofGPUMaterial = 32
	SizeofGPUSphere   = 32
	SizeofGPUBox      = 32
	SizeofGPUHittable = 8
	SizeofGPUCamera   = 48
)

// GPUMaterial is the packed representation of a Material.
// Size: 32 bytes.
type GPUMaterial struct {
	AlbedoFuzz [4]float32 // offset  0: rgb = albedo, w = fuzz
	TypeIORPad [4]float32 // offset 16: x = type (as float), y = ior, zw = padding
}

// Size returns the size of the GPUMaterial struct in bytes.
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the record into buf which must hold at least
// SizeofGPUMaterial bytes.
func (g *GPUMaterial) Marshal(buf []byte) {
	putVec4(buf[0:16], g.AlbedoFuzz)
	putVec4(buf[16:32], g.TypeIORPad)
}

// GPUSphere is the packed representation of a Sphere.
// Size: 32 bytes.
type GPUSphere struct {
	CenterRadius [4]float32 // offset  0: xyz = center, w = radius
	ColorMatID   [4]float32 // offset 16: rgb = color, w = material index (as float)
}

// Size returns the size of the GPUSphere struct in bytes.
func (g *GPUSphere) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the record into buf which must hold at least
// SizeofGPUSphere bytes.
func (g *GPUSphere) Marshal(buf []byte) {
	putVec4(buf[0:16], g.CenterRadius)
	putVec4(buf[16:32], g.ColorMatID)
}

// GPUBox is the packed representation of an axis-aligned Box.
// Size: 32 bytes.
type GPUBox struct {
	MinPad   [4]float32 // offset  0: xyz = min corner, w = unused
	MaxMatID [4]float32 // offset 16: xyz = max corner, w = material index (as float)
}

// Size returns the size of the GPUBox struct in bytes.
func (g *GPUBox) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the record into buf which must hold at least
// SizeofGPUBox bytes.
func (g *GPUBox) Marshal(buf []byte) {
	putVec4(buf[0:16], g.MinPad)
	putVec4(buf[16:32], g.MaxMatID)
}

// GPUHittable indirects into one of the per-kind primitive arrays so the
// kernel can walk a heterogeneous primitive list.
// Size: 8 bytes.
type GPUHittable struct {
	Type  int32 // offset 0: 0 = sphere, 1 = box
	Index int32 // offset 4: index into the spheres or boxes array
}

// Size returns the size of the GPUHittable struct in bytes.
func (g *GPUHittable) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the record into buf which must hold at least
// SizeofGPUHittable bytes.
func (g *GPUHittable) Marshal(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], uint32(g.Type))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(g.Index))
}

// GPUCamera is the camera uniform block (std140).
// Size: 48 bytes.
type GPUCamera struct {
	LookFromFov     [4]float32 // offset  0: xyz = look-from, w = vertical fov (degrees)
	LookAtDefocus   [4]float32 // offset 16: xyz = look-at, w = defocus angle (degrees)
	UpFocusDistance [4]float32 // offset 32: xyz = up, w = focus distance
}

// Size returns the size of the GPUCamera struct in bytes.
func (g *GPUCamera) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the camera block into buf, which must be at least
// SizeofGPUCamera bytes long.
func (g *GPUCamera) Marshal(buf []byte) {
	putVec4(buf[0:16], g.LookFromFov)
	putVec4(buf[16:32], g.LookAtDefocus)
	putVec4(buf[32:48], g.UpFocusDistance)
}

func putVec4(buf []byte, v [4]float32) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v[3]))
}
