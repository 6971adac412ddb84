package renderer

import (
	"testing"

	"github.com/rsolis096/RealTimeRT/scene"
	"github.com/rsolis096/RealTimeRT/types"
)

func TestApplyInputMouse(t *testing.T) {
	opts := DefaultOptions()
	cam := scene.DefaultCamera()
	yaw, pitch := cam.Yaw, cam.Pitch

	in := &InputState{}
	in.AddMouseDelta(10, 0)
	in.AddMouseDelta(5, 2)

	if !ApplyInput(cam, in, &opts, 0.016) {
		t.Fatal("expected mouse movement to change the camera")
	}

	expYaw := yaw + 15*opts.MouseSensitivity
	if diff := cam.Yaw - expYaw; diff > 1e-4 || diff < -1e-4 {
		t.Fatalf("expected yaw to be %f; got %f", expYaw, cam.Yaw)
	}
	expPitch := pitch + 2*opts.MouseSensitivity
	if diff := cam.Pitch - expPitch; diff > 1e-4 || diff < -1e-4 {
		t.Fatalf("expected pitch to be %f; got %f", expPitch, cam.Pitch)
	}

	if in.MouseDX != 0 || in.MouseDY != 0 {
		t.Fatalf("expected mouse deltas to be consumed; got (%f, %f)", in.MouseDX, in.MouseDY)
	}

	// Nothing left to apply
	if ApplyInput(cam, in, &opts, 0.016) {
		t.Fatal("expected camera to be unchanged without input")
	}
}

func TestApplyInputMovement(t *testing.T) {
	type spec struct {
		dir     scene.CameraDirection
		expAxis types.Vec3
	}

	opts := DefaultOptions()
	dt := float32(0.5)
	step := opts.MoveSpeed * dt

	specs := []spec{
		{scene.Up, types.XYZ(0, step, 0)},
		{scene.Down, types.XYZ(0, -step, 0)},
	}

	for index, s := range specs {
		cam := scene.DefaultCamera()
		from := cam.LookFrom

		in := &InputState{}
		in.SetMoving(s.dir, true)
		if !ApplyInput(cam, in, &opts, dt) {
			t.Fatalf("[spec %d] expected movement to change the camera", index)
		}

		exp := from.Add(s.expAxis)
		if !cam.LookFrom.ApproxEqual(exp, 1e-4) {
			t.Fatalf("[spec %d] expected camera position to be %v; got %v", index, exp, cam.LookFrom)
		}

		// Held keys keep applying
		if !in.Moving[s.dir] {
			t.Fatalf("[spec %d] expected key to remain held", index)
		}
	}
}

func TestApplyInputForwardKeepsFacing(t *testing.T) {
	opts := DefaultOptions()
	cam := scene.DefaultCamera()
	front := cam.Front()
	dist := cam.LookDistance()

	in := &InputState{}
	in.SetMoving(scene.Forward, true)
	ApplyInput(cam, in, &opts, 1)

	if !cam.Front().ApproxEqual(front, 1e-4) {
		t.Fatalf("expected front to be %v; got %v", front, cam.Front())
	}
	if diff := cam.LookDistance() - dist; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("expected look distance to be %f; got %f", dist, cam.LookDistance())
	}
}

func TestApplyInputZeroFrameTime(t *testing.T) {
	opts := DefaultOptions()
	cam := scene.DefaultCamera()
	from := cam.LookFrom

	in := &InputState{}
	in.SetMoving(scene.Left, true)
	if ApplyInput(cam, in, &opts, 0) {
		t.Fatal("expected zero frame time not to move the camera")
	}
	if cam.LookFrom != from {
		t.Fatalf("expected camera position to be %v; got %v", from, cam.LookFrom)
	}
}

func TestInputStateReset(t *testing.T) {
	in := &InputState{}
	in.AddMouseDelta(1, 1)
	in.SetMoving(scene.Right, true)
	in.SetMoving(scene.CameraDirection(200), true)
	in.Reset()

	if *in != (InputState{}) {
		t.Fatalf("expected input state to be cleared; got %+v", *in)
	}
}

func TestStepClamped(t *testing.T) {
	type spec struct {
		v      uint32
		delta  int
		expOut uint32
	}
	specs := []spec{
		{1, -1, 1},
		{1, 1, 2},
		{5, 1, 5},
		{3, -10, 1},
		{3, 10, 5},
	}

	for index, s := range specs {
		if got := stepClamped(s.v, s.delta, 1, 5); got != s.expOut {
			t.Fatalf("[spec %d] expected %d%+d to clamp to %d; got %d", index, s.v, s.delta, s.expOut, got)
		}
	}
}
