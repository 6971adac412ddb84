package scene

import (
	"errors"
	"testing"

	"github.com/rsolis096/RealTimeRT/types"
)

func TestSpherePack(t *testing.T) {
	s := NewSphere(types.XYZ(1, 2, 3), 0.5, MaterialIndex(7))
	s.Color = types.XYZ(0.1, 0.2, 0.3)
	packed := s.Pack()

	expCR := [4]float32{1, 2, 3, 0.5}
	if packed.CenterRadius != expCR {
		t.Fatalf("expected center_radius to be %v; got %v", expCR, packed.CenterRadius)
	}
	expCM := [4]float32{0.1, 0.2, 0.3, 7}
	if packed.ColorMatID != expCM {
		t.Fatalf("expected color_matId to be %v; got %v", expCM, packed.ColorMatID)
	}
}

func TestBoxPack(t *testing.T) {
	b := NewBox(types.XYZ(-1, 0, -1), types.XYZ(1, 2, 1), MaterialIndex(3))
	packed := b.Pack()

	expMin := [4]float32{-1, 0, -1, 0}
	if packed.MinPad != expMin {
		t.Fatalf("expected min_pad to be %v; got %v", expMin, packed.MinPad)
	}
	expMax := [4]float32{1, 2, 1, 3}
	if packed.MaxMatID != expMax {
		t.Fatalf("expected max_matId to be %v; got %v", expMax, packed.MaxMatID)
	}
}

func TestTypeTags(t *testing.T) {
	s := NewSphere(types.XYZ(0, 0, 0), 1, MaterialIndex(0))
	b := NewCube(types.XYZ(0, 0, 0), 1, MaterialIndex(0))

	if s.TypeTag() != 0 || SphereShape(s).TypeTag() != 0 {
		t.Fatalf("expected sphere type tag to be 0; got %d", s.TypeTag())
	}
	if b.TypeTag() != 1 || BoxShape(b).TypeTag() != 1 {
		t.Fatalf("expected box type tag to be 1; got %d", b.TypeTag())
	}
}

func TestPrimitiveValidate(t *testing.T) {
	type spec struct {
		prim   Primitive
		expErr error
	}
	specs := []spec{
		{SphereShape(NewSphere(types.XYZ(0, 0, 0), 1, MaterialIndex(0))), nil},
		{SphereShape(NewSphere(types.XYZ(0, 0, 0), 0, MaterialIndex(0))), ErrInvalidRadius},
		{SphereShape(NewSphere(types.XYZ(0, 0, 0), -2, MaterialIndex(0))), ErrInvalidRadius},
		{BoxShape(NewBox(types.XYZ(0, 0, 0), types.XYZ(0, 0, 0), MaterialIndex(0))), nil},
		{BoxShape(NewBox(types.XYZ(0, 1, 0), types.XYZ(1, 0, 1), MaterialIndex(0))), ErrInvalidBox},
		{Primitive{Type: PrimitiveType(9)}, ErrUnknownPrimitive},
	}

	for index, s := range specs {
		err := s.prim.Validate()
		if !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error to be %v; got %v", index, s.expErr, err)
		}
	}
}

func TestPrimitiveBounds(t *testing.T) {
	sphere := SphereShape(NewSphere(types.XYZ(1, 2, 3), 0.5, MaterialIndex(0)))
	min, max := sphere.Bounds()
	if min != types.XYZ(0.5, 1.5, 2.5) || max != types.XYZ(1.5, 2.5, 3.5) {
		t.Fatalf("expected sphere bounds to be [(0.5,1.5,2.5), (1.5,2.5,3.5)]; got [%v, %v]", min, max)
	}

	cube := BoxShape(NewCube(types.XYZ(0, 1, 0), 0.25, MaterialIndex(0)))
	min, max = cube.Bounds()
	if min != types.XYZ(-0.25, 0.75, -0.25) || max != types.XYZ(0.25, 1.25, 0.25) {
		t.Fatalf("expected cube bounds to be [(-0.25,0.75,-0.25), (0.25,1.25,0.25)]; got [%v, %v]", min, max)
	}
}

func TestMaterialRef(t *testing.T) {
	ref := MaterialIndex(4)
	if index, ok := ref.Index(); !ok || index != 4 {
		t.Fatalf("expected index ref to resolve to 4; got %d (%t)", index, ok)
	}
	if _, embedded := ref.Material(); embedded {
		t.Fatal("expected index ref not to embed a material")
	}

	glass := MakeGlass(1.5)
	ref = EmbeddedMaterial(glass)
	if _, ok := ref.Index(); ok {
		t.Fatal("expected embedded ref to be unresolved")
	}
	if m, embedded := ref.Material(); !embedded || m != glass {
		t.Fatalf("expected embedded material to be %v; got %v", glass, m)
	}

	// Unresolved embedded materials pack with a negative index
	packed := NewSphere(types.XYZ(0, 0, 0), 1, ref).Pack()
	if packed.ColorMatID[3] != -1 {
		t.Fatalf("expected unresolved material index to pack as -1; got %f", packed.ColorMatID[3])
	}
}
