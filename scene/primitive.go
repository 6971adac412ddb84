package scene

import "github.com/rsolis096/RealTimeRT/types"

type PrimitiveType int32

const (
	SpherePrimitive PrimitiveType = iota
	BoxPrimitive

	numPrimitiveTypes = 2
)

func (pt PrimitiveType) String() string {
	switch pt {
	case SpherePrimitive:
		return "sphere"
	case BoxPrimitive:
		return "box"
	}
	return "unknown"
}

// A MaterialRef links a primitive to its material. It either holds a
// material value that gets registered when the primitive is added to a
// scene or the index of an already registered material.
type MaterialRef struct {
	index    int32
	material Material
	embedded bool
}

// Reference a material that is already registered with the scene.
func MaterialIndex(index int) MaterialRef {
	return MaterialRef{index: int32(index)}
}

// Embed a material value into the primitive.
func EmbeddedMaterial(m Material) MaterialRef {
	return MaterialRef{index: -1, material: m, embedded: true}
}

// Get the referenced material index. The second value is false for embedded
// materials that have not been registered yet.
func (ref MaterialRef) Index() (int, bool) {
	if ref.embedded {
		return -1, false
	}
	return int(ref.index), true
}

// Get the embedded material value.
func (ref MaterialRef) Material() (Material, bool) {
	return ref.material, ref.embedded
}

// Defines a sphere primitive.
type Sphere struct {
	Center types.Vec3
	Radius float32

	// Optional base color; the shading kernel uses the material albedo.
	Color types.Vec3

	Material MaterialRef
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32, material MaterialRef) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

func (s Sphere) TypeTag() PrimitiveType {
	return SpherePrimitive
}

// Check the sphere geometry.
func (s Sphere) Validate() error {
	if !(s.Radius > 0) {
		return ErrInvalidRadius
	}
	return nil
}

// Pack sphere into its GPU representation. The material index is written
// as-is; callers must validate it before uploading.
func (s Sphere) Pack() GPUSphere {
	return GPUSphere{
		CenterRadius: [4]float32{s.Center[0], s.Center[1], s.Center[2], s.Radius},
		ColorMatID:   [4]float32{s.Color[0], s.Color[1], s.Color[2], float32(s.Material.index)},
	}
}

// Defines an axis-aligned box primitive.
type Box struct {
	Min types.Vec3
	Max types.Vec3

	Material MaterialRef
}

// Create new box primitive from its min and max corners.
func NewBox(min, max types.Vec3, material MaterialRef) Box {
	return Box{
		Min:      min,
		Max:      max,
		Material: material,
	}
}

// Create a new cube primitive centered at center.
func NewCube(center types.Vec3, halfExtent float32, material MaterialRef) Box {
	ext := types.Splat3(halfExtent)
	return NewBox(center.Sub(ext), center.Add(ext), material)
}

func (b Box) TypeTag() PrimitiveType {
	return BoxPrimitive
}

// Check the box geometry.
func (b Box) Validate() error {
	for i := 0; i < 3; i++ {
		if !(b.Min[i] <= b.Max[i]) {
			return ErrInvalidBox
		}
	}
	return nil
}

// Pack box into its GPU representation. The material index is written
// as-is; callers must validate it before uploading.
func (b Box) Pack() GPUBox {
	return GPUBox{
		MinPad:   [4]float32{b.Min[0], b.Min[1], b.Min[2], 0},
		MaxMatID: [4]float32{b.Max[0], b.Max[1], b.Max[2], float32(b.Material.index)},
	}
}

// Primitive is a closed sum over the supported primitive kinds. Only the
// field selected by Type is meaningful.
type Primitive struct {
	Type   PrimitiveType
	Sphere Sphere
	Box    Box
}

// Wrap a sphere into a primitive.
func SphereShape(s Sphere) Primitive {
	return Primitive{Type: SpherePrimitive, Sphere: s}
}

// Wrap a box into a primitive.
func BoxShape(b Box) Primitive {
	return Primitive{Type: BoxPrimitive, Box: b}
}

// Per-kind operations. Indexed by PrimitiveType.
var primitiveOps = [numPrimitiveTypes]struct {
	validate func(p *Primitive) error
	bounds   func(p *Primitive) (types.Vec3, types.Vec3)
	matRef   func(p *Primitive) *MaterialRef
}{
	SpherePrimitive: {
		validate: func(p *Primitive) error { return p.Sphere.Validate() },
		bounds: func(p *Primitive) (types.Vec3, types.Vec3) {
			r := types.Splat3(p.Sphere.Radius)
			return p.Sphere.Center.Sub(r), p.Sphere.Center.Add(r)
		},
		matRef: func(p *Primitive) *MaterialRef { return &p.Sphere.Material },
	},
	BoxPrimitive: {
		validate: func(p *Primitive) error { return p.Box.Validate() },
		bounds:   func(p *Primitive) (types.Vec3, types.Vec3) { return p.Box.Min, p.Box.Max },
		matRef:   func(p *Primitive) *MaterialRef { return &p.Box.Material },
	},
}

func (p Primitive) known() bool {
	return p.Type >= 0 && p.Type < numPrimitiveTypes
}

func (p Primitive) TypeTag() PrimitiveType {
	return p.Type
}

// Check the primitive geometry.
func (p Primitive) Validate() error {
	if !p.known() {
		return ErrUnknownPrimitive
	}
	return primitiveOps[p.Type].validate(&p)
}

// Get the axis-aligned bounding box of the primitive.
func (p Primitive) Bounds() (min, max types.Vec3) {
	if !p.known() {
		return types.Vec3{}, types.Vec3{}
	}
	return primitiveOps[p.Type].bounds(&p)
}

// Get the material reference of the primitive.
func (p Primitive) MaterialRef() MaterialRef {
	if !p.known() {
		return MaterialRef{index: -1}
	}
	return *primitiveOps[p.Type].matRef(&p)
}

// Return a copy of the primitive with its material reference replaced.
func (p Primitive) withMaterialRef(ref MaterialRef) Primitive {
	if p.known() {
		*primitiveOps[p.Type].matRef(&p) = ref
	}
	return p
}
