package tracer

import (
	"encoding/binary"
	"math"
	"math/rand"
	"unsafe"

	"github.com/rsolis096/RealTimeRT/scene/compiler"
)

// Limits for the user adjustable frame parameters.
const (
	MinSamplesPerPixel uint32 = 1
	MaxSamplesPerPixel uint32 = 5

	MinDepth uint32 = 1
	MaxDepth uint32 = 10
)

const SizeofGPUFrame = 48

// GPUFrame is the per-frame uniform block (std140).
// Size: 48 bytes.
type GPUFrame struct {
	FrameW          uint32    // offset  0
	FrameH          uint32    // offset  4
	SamplesPerPixel uint32    // offset  8
	MaxDepth        uint32    // offset 12
	Seed            float32   // offset 16
	_               [3]uint32 // offset 20: padding
	SphereCount     uint32    // offset 32
	BoxCount        uint32    // offset 36
	HittableCount   uint32    // offset 40
	MaterialCount   uint32    // offset 44
}

// Size returns the size of the GPUFrame struct in bytes.
func (g *GPUFrame) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the frame block into buf, which must be at least
// SizeofGPUFrame bytes long. Padding bytes are left untouched.
func (g *GPUFrame) Marshal(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:], g.FrameW)
	binary.LittleEndian.PutUint32(buf[4:], g.FrameH)
	binary.LittleEndian.PutUint32(buf[8:], g.SamplesPerPixel)
	binary.LittleEndian.PutUint32(buf[12:], g.MaxDepth)
	binary.LittleEndian.PutUint32(buf[16:], math.Float32bits(g.Seed))
	binary.LittleEndian.PutUint32(buf[32:], g.SphereCount)
	binary.LittleEndian.PutUint32(buf[36:], g.BoxCount)
	binary.LittleEndian.PutUint32(buf[40:], g.HittableCount)
	binary.LittleEndian.PutUint32(buf[44:], g.MaterialCount)
}

// Pack the per-frame scalars together with the output dimensions and the
// uploaded record counts. Sample and depth counts are clamped to their
// supported ranges.
func PackFrameUniforms(req *FrameRequest, frameW, frameH uint32, counts compiler.Counts) GPUFrame {
	return GPUFrame{
		FrameW:          frameW,
		FrameH:          frameH,
		SamplesPerPixel: ClampSamples(req.SamplesPerPixel),
		MaxDepth:        ClampDepth(req.MaxDepth),
		Seed:            req.Seed,
		SphereCount:     uint32(counts.Spheres),
		BoxCount:        uint32(counts.Boxes),
		HittableCount:   uint32(counts.Hittables),
		MaterialCount:   uint32(counts.Materials),
	}
}

// Clamp a samples per pixel value to [MinSamplesPerPixel, MaxSamplesPerPixel].
func ClampSamples(spp uint32) uint32 {
	return clampU32(spp, MinSamplesPerPixel, MaxSamplesPerPixel)
}

// Clamp a bounce depth value to [MinDepth, MaxDepth].
func ClampDepth(depth uint32) uint32 {
	return clampU32(depth, MinDepth, MaxDepth)
}

func clampU32(v, min, max uint32) uint32 {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

// SeedSequence generates per-frame kernel seeds. Each seed is the frame
// number plus a random fraction so consecutive seeds never decrease.
type SeedSequence struct {
	rng   *rand.Rand
	frame uint32
}

// Create a seed sequence.
func NewSeedSequence(seed int64) *SeedSequence {
	return &SeedSequence{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Get the next seed value.
func (s *SeedSequence) Next() float32 {
	s.frame++
	return float32(s.frame) + s.rng.Float32()
}
