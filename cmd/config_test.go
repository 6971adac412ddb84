package cmd

import "testing"

func TestPositiveUint32(t *testing.T) {
	type spec struct {
		in     int
		exp    uint32
		expErr bool
	}
	specs := []spec{
		{1, 1, false},
		{1280, 1280, false},
		{1 << 20, 1 << 20, false},
		{0, 0, true},
		{-1, 0, true},
		{-720, 0, true},
	}

	for index, s := range specs {
		got, err := positiveUint32("width", s.in)
		if s.expErr {
			if err == nil {
				t.Fatalf("[spec %d] expected an error for value %d; got %d", index, s.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", index, err)
		}
		if got != s.exp {
			t.Fatalf("[spec %d] expected value to be %d; got %d", index, s.exp, got)
		}
	}
}
