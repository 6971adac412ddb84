package renderer

import "github.com/rsolis096/RealTimeRT/scene"

const numDirections = int(scene.Down) + 1

// InputState accumulates user input between frames.
type InputState struct {
	// Cursor movement in pixels. Positive DY means the cursor moved up.
	MouseDX float32
	MouseDY float32

	// Held movement keys indexed by scene.CameraDirection.
	Moving [numDirections]bool
}

func (in *InputState) AddMouseDelta(dx, dy float32) {
	in.MouseDX += dx
	in.MouseDY += dy
}

func (in *InputState) SetMoving(dir scene.CameraDirection, pressed bool) {
	if int(dir) < numDirections {
		in.Moving[dir] = pressed
	}
}

// Drop any accumulated input.
func (in *InputState) Reset() {
	*in = InputState{}
}

// Apply accumulated input to the camera for a frame that lasted dt
// seconds. Mouse deltas are consumed; held keys stay held. Returns true if
// the camera changed.
func ApplyInput(cam *scene.Camera, in *InputState, opts *Options, dt float32) bool {
	changed := false

	if in.MouseDX != 0 || in.MouseDY != 0 {
		cam.ProcessMouseDelta(in.MouseDX*opts.MouseSensitivity, in.MouseDY*opts.MouseSensitivity)
		in.MouseDX, in.MouseDY = 0, 0
		changed = true
	}

	step := opts.MoveSpeed * dt
	if step <= 0 {
		return changed
	}
	for dir, pressed := range in.Moving {
		if pressed {
			cam.ProcessKeyboardDelta(step, scene.CameraDirection(dir))
			changed = true
		}
	}

	return changed
}

// Add delta to v and clamp the result to [min, max].
func stepClamped(v uint32, delta int, min, max uint32) uint32 {
	next := int64(v) + int64(delta)
	if next < int64(min) {
		return min
	}
	if next > int64(max) {
		return max
	}
	return uint32(next)
}
