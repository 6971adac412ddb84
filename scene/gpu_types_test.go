package scene

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGPUTypeSizes(t *testing.T) {
	type spec struct {
		name    string
		size    int
		expSize int
	}
	specs := []spec{
		{"GPUMaterial", (&GPUMaterial{}).Size(), SizeofGPUMaterial},
		{"GPUSphere", (&GPUSphere{}).Size(), SizeofGPUSphere},
		{"GPUBox", (&GPUBox{}).Size(), SizeofGPUBox},
		{"GPUHittable", (&GPUHittable{}).Size(), SizeofGPUHittable},
		{"GPUCamera", (&GPUCamera{}).Size(), SizeofGPUCamera},
	}

	for _, s := range specs {
		if s.size != s.expSize {
			t.Fatalf("expected %s size to be %d; got %d", s.name, s.expSize, s.size)
		}
	}
}

func TestGPUSphereMarshalLayout(t *testing.T) {
	sphere := GPUSphere{
		CenterRadius: [4]float32{1, 2, 3, 4},
		ColorMatID:   [4]float32{5, 6, 7, 8},
	}
	buf := make([]byte, SizeofGPUSphere)
	sphere.Marshal(buf)

	for i := 0; i < 8; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != float32(i+1) {
			t.Fatalf("expected float at offset %d to be %f; got %f", i*4, float32(i+1), got)
		}
	}
}

func TestGPUHittableMarshalLayout(t *testing.T) {
	hittable := GPUHittable{Type: int32(BoxPrimitive), Index: 12}
	buf := make([]byte, SizeofGPUHittable)
	hittable.Marshal(buf)

	if got := int32(binary.LittleEndian.Uint32(buf[0:4])); got != 1 {
		t.Fatalf("expected hittable type to be 1; got %d", got)
	}
	if got := int32(binary.LittleEndian.Uint32(buf[4:8])); got != 12 {
		t.Fatalf("expected hittable index to be 12; got %d", got)
	}
}

func TestGPUCameraMarshalLayout(t *testing.T) {
	cam := DefaultCamera().DeriveUniformBlock().Pack()
	if cam.Size() != SizeofGPUCamera {
		t.Fatalf("expected camera block to be %d bytes; got %d", SizeofGPUCamera, cam.Size())
	}
	buf := make([]byte, SizeofGPUCamera)
	cam.Marshal(buf)

	readF32 := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	if got := readF32(12); got != DefaultFOV {
		t.Fatalf("expected fov at offset 12 to be %f; got %f", DefaultFOV, got)
	}
	if got := readF32(44); got != DefaultFocusDistance {
		t.Fatalf("expected focus distance at offset 44 to be %f; got %f", DefaultFocusDistance, got)
	}
	if got := readF32(36); got != 1 {
		t.Fatalf("expected up.y at offset 36 to be 1; got %f", got)
	}
}
