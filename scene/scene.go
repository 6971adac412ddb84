package scene

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/rsolis096/RealTimeRT/types"
)

// Scene is an ordered collection of primitives and the materials they
// reference. Primitives are never removed or modified once added.
type Scene struct {
	materials  *MaterialRegistry
	primitives []Primitive

	// Number of primitives per kind.
	counts [numPrimitiveTypes]int
}

// Create an empty scene.
func NewScene() *Scene {
	return &Scene{
		materials:  NewMaterialRegistry(),
		primitives: make([]Primitive, 0),
	}
}

// Get the scene material registry.
func (s *Scene) Materials() *MaterialRegistry {
	return s.materials
}

// Register a material with the scene and return its index.
func (s *Scene) AddMaterial(m Material) int {
	return s.materials.Register(m)
}

// Add a sphere and return its primitive index.
func (s *Scene) AddSphere(sphere Sphere) (int, error) {
	return s.Add(SphereShape(sphere))
}

// Add a box and return its primitive index.
func (s *Scene) AddBox(box Box) (int, error) {
	return s.Add(BoxShape(box))
}

// Add a primitive to the scene and return its index. Primitives with an
// embedded material get it registered before the primitive is appended so
// that material indices follow insertion order.
func (s *Scene) Add(p Primitive) (int, error) {
	if err := p.Validate(); err != nil {
		return -1, &ValidationError{Primitive: -1, Type: p.Type, Err: err}
	}

	ref := p.MaterialRef()
	if m, embedded := ref.Material(); embedded {
		p = p.withMaterialRef(MaterialIndex(s.materials.Register(m)))
	} else if index, _ := ref.Index(); index < 0 || index >= s.materials.Len() {
		return -1, &ValidationError{Primitive: -1, Type: p.Type, Err: ErrMaterialIndexOutOfRange}
	}

	s.primitives = append(s.primitives, p)
	s.counts[p.Type]++
	return len(s.primitives) - 1, nil
}

// Get the scene primitives in insertion order. The returned slice must not
// be modified.
func (s *Scene) Primitives() []Primitive {
	return s.primitives
}

// Number of scene primitives.
func (s *Scene) Len() int {
	return len(s.primitives)
}

// Number of primitives of the given type.
func (s *Scene) Count(pt PrimitiveType) int {
	if pt < 0 || pt >= numPrimitiveTypes {
		return 0
	}
	return s.counts[pt]
}

// Check that every primitive is well-formed and references a registered
// material.
func (s *Scene) Validate() error {
	matCount := s.materials.Len()
	for index, p := range s.primitives {
		if err := p.Validate(); err != nil {
			return &ValidationError{Primitive: index, Type: p.Type, Err: err}
		}

		matIndex, resolved := p.MaterialRef().Index()
		if !resolved {
			return &ValidationError{Primitive: index, Type: p.Type, Err: ErrUnresolvedMaterial}
		}
		if matIndex < 0 || matIndex >= matCount {
			return &ValidationError{Primitive: index, Type: p.Type, Err: ErrMaterialIndexOutOfRange}
		}
	}
	return nil
}

// Get the axis-aligned bounds enclosing every primitive. An empty scene
// reports zero vectors.
func (s *Scene) Extent() (min, max types.Vec3) {
	for index, p := range s.primitives {
		pMin, pMax := p.Bounds()
		if index == 0 {
			min, max = pMin, pMax
			continue
		}
		min = types.MinVec3(min, pMin)
		max = types.MaxVec3(max, pMax)
	}
	return min, max
}

// Build a tabular representation of scene statistics.
func (s *Scene) Stats() string {
	var matCounts [3]int
	for _, m := range s.materials.materials {
		if int(m.Type) < len(matCounts) {
			matCounts[m.Type]++
		}
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Count"})
	table.Append([]string{"Primitives", "---", fmt.Sprint(len(s.primitives))})
	table.Append([]string{"", "Spheres", fmt.Sprint(s.Count(SpherePrimitive))})
	table.Append([]string{"", "Boxes", fmt.Sprint(s.Count(BoxPrimitive))})
	if len(s.primitives) != 0 {
		min, max := s.Extent()
		table.Append([]string{"", "Extent", fmt.Sprintf(
			"(%.2f, %.2f, %.2f) - (%.2f, %.2f, %.2f)",
			min[0], min[1], min[2], max[0], max[1], max[2],
		)})
	}
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Materials", "---", fmt.Sprint(s.materials.Len())})
	for mt, count := range matCounts {
		table.Append([]string{"", MaterialType(mt).String(), fmt.Sprint(count)})
	}

	table.Render()
	return buf.String()
}
