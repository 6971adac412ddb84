package scene

import (
	"github.com/rsolis096/RealTimeRT/types"
)

type MaterialType uint8

const (
	DiffuseMaterial MaterialType = iota
	MetalMaterial
	GlassMaterial
)

func (mt MaterialType) String() string {
	switch mt {
	case DiffuseMaterial:
		return "diffuse"
	case MetalMaterial:
		return "metal"
	case GlassMaterial:
		return "glass"
	}
	return "unknown"
}

// Defines a surface material. Materials are values and are never modified
// after construction; use one of the Make* functions to create them.
type Material struct {
	// The type of the material.
	Type MaterialType

	// Surface color. Glass materials are always opaque white.
	Albedo types.Vec3

	// Reflection blur in [0, 1] (metal materials only).
	Fuzz float32

	// Index of refraction (glass materials only).
	IOR float32
}

// Create a diffuse (lambertian) material.
func MakeDiffuse(albedo types.Vec3) Material {
	return Material{
		Type:   DiffuseMaterial,
		Albedo: albedo,
	}
}

// Create a metal material. Fuzz values outside [0, 1] are clamped.
func MakeMetal(albedo types.Vec3, fuzz float32) Material {
	return Material{
		Type:   MetalMaterial,
		Albedo: albedo,
		Fuzz:   types.Clamp(fuzz, 0, 1),
	}
}

// Create a glass (dielectric) material with the given refraction index.
func MakeGlass(ior float32) Material {
	return Material{
		Type:   GlassMaterial,
		Albedo: types.Splat3(1.0),
		IOR:    ior,
	}
}

// Pack material into its GPU representation. Fields that do not apply to
// the material type are written as zero.
func (m Material) Pack() GPUMaterial {
	var fuzz, ior float32
	switch m.Type {
	case MetalMaterial:
		fuzz = m.Fuzz
	case GlassMaterial:
		ior = m.IOR
	}

	return GPUMaterial{
		AlbedoFuzz: [4]float32{m.Albedo[0], m.Albedo[1], m.Albedo[2], fuzz},
		TypeIORPad: [4]float32{float32(m.Type), ior, 0, 0},
	}
}

// MaterialRegistry is an ordered, append-only material list. The index
// returned by Register is the value primitives use to reference a material.
type MaterialRegistry struct {
	materials []Material
}

// Create an empty material registry.
func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{
		materials: make([]Material, 0),
	}
}

// Append a material and return its index.
func (r *MaterialRegistry) Register(m Material) int {
	r.materials = append(r.materials, m)
	return len(r.materials) - 1
}

// Get the material at the given index.
func (r *MaterialRegistry) Get(index int) (Material, bool) {
	if index < 0 || index >= len(r.materials) {
		return Material{}, false
	}
	return r.materials[index], true
}

// Number of registered materials.
func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}

// Return a copy of all registered materials in insertion order.
func (r *MaterialRegistry) All() []Material {
	out := make([]Material, len(r.materials))
	copy(out, r.materials)
	return out
}
