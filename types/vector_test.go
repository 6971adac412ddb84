package types

import "testing"

func TestVec3Normalize(t *testing.T) {
	type spec struct {
		in  Vec3
		exp Vec3
	}
	specs := []spec{
		{Vec3{3, 0, 0}, Vec3{1, 0, 0}},
		{Vec3{0, -2, 0}, Vec3{0, -1, 0}},
		{Vec3{0, 0, 0}, Vec3{0, 0, 0}},
		{Vec3{1e-9, 0, 0}, Vec3{0, 0, 0}},
	}

	for index, s := range specs {
		out := s.in.Normalize()
		if !out.ApproxEqual(s.exp, 1e-6) {
			t.Fatalf("[spec %d] expected normalized vector to be %v; got %v", index, s.exp, out)
		}
	}
}

func TestVec3Cross(t *testing.T) {
	x := XYZ(1, 0, 0)
	y := XYZ(0, 1, 0)

	exp := XYZ(0, 0, 1)
	if out := x.Cross(y); out != exp {
		t.Fatalf("expected x cross y to be %v; got %v", exp, out)
	}

	exp = XYZ(0, 0, -1)
	if out := y.Cross(x); out != exp {
		t.Fatalf("expected y cross x to be %v; got %v", exp, out)
	}
}

func TestMinMaxVec3(t *testing.T) {
	v1 := XYZ(1, -2, 3)
	v2 := XYZ(-1, 2, 3)

	expMin := XYZ(-1, -2, 3)
	if out := MinVec3(v1, v2); out != expMin {
		t.Fatalf("expected min to be %v; got %v", expMin, out)
	}

	expMax := XYZ(1, 2, 3)
	if out := MaxVec3(v1, v2); out != expMax {
		t.Fatalf("expected max to be %v; got %v", expMax, out)
	}
}

func TestClamp(t *testing.T) {
	type spec struct {
		v, min, max, exp float32
	}
	specs := []spec{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{90, -89, 89, 89},
	}

	for index, s := range specs {
		if out := Clamp(s.v, s.min, s.max); out != s.exp {
			t.Fatalf("[spec %d] expected clamped value to be %f; got %f", index, s.exp, out)
		}
	}
}

func TestRadiansDegrees(t *testing.T) {
	for _, deg := range []float32{-89, 0, 20, 90, 180} {
		out := Degrees(Radians(deg))
		d := out - deg
		if d < -1e-4 || d > 1e-4 {
			t.Fatalf("expected round-trip of %f degrees to be %f; got %f", deg, deg, out)
		}
	}
}
