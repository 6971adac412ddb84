package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/rsolis096/RealTimeRT/types"
)

// Pitch limits in degrees. The view direction never reaches the poles so
// it can not become parallel to the up vector.
const (
	MinPitch float32 = -89.0
	MaxPitch float32 = 89.0
)

// Default camera pose and lens.
var (
	DefaultLookFrom = types.XYZ(13, 2, 3)
	DefaultLookAt   = types.XYZ(0, 0, 0)
)

const (
	DefaultFOV           float32 = 20.0
	DefaultFocusDistance float32 = 10.0
)

type CameraDirection uint8

const (
	Forward CameraDirection = iota
	Backward
	Left
	Right
	Up
	Down
)

func (d CameraDirection) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// The camera type controls the scene camera. Orientation is tracked as
// absolute yaw/pitch angles (in degrees) and the look-at point is always
// derived from them so that repeated updates do not drift.
type Camera struct {
	LookFrom types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	Yaw   float32
	Pitch float32

	// Vertical field of view in degrees.
	FOV float32

	// Thin lens parameters. A zero defocus angle disables depth of field
	// and a zero focus distance focuses at the look-at point.
	DefocusAngle  float32
	FocusDistance float32
}

// CameraBlock holds the parameters the shading kernel needs to generate
// primary rays.
type CameraBlock struct {
	LookFrom      types.Vec3
	LookAt        types.Vec3
	Up            types.Vec3
	VerticalFOV   float32
	DefocusAngle  float32
	FocusDistance float32
}

// Create a camera at lookFrom facing lookAt. The two points must differ.
func NewCamera(lookFrom, lookAt types.Vec3, fov float32) *Camera {
	c := &Camera{
		LookFrom: lookFrom,
		LookAt:   lookAt,
		Up:       types.XYZ(0, 1, 0),
		FOV:      fov,
	}

	view := lookAt.Sub(lookFrom)
	dist := view.Len()
	dir := view.Normalize()
	pitch := types.Degrees(math32.Asin(types.Clamp(dir[1], -1, 1)))
	c.Pitch = types.Clamp(pitch, MinPitch, MaxPitch)
	c.Yaw = types.Degrees(math32.Atan2(dir[2], dir[0]))

	// A clamped pitch moves the view direction; keep the look-at point on it.
	if c.Pitch != pitch {
		c.LookAt = lookFrom.Add(c.direction().Mul(dist))
	}

	return c
}

// Create a camera using the default pose.
func DefaultCamera() *Camera {
	c := NewCamera(DefaultLookFrom, DefaultLookAt, DefaultFOV)
	c.FocusDistance = DefaultFocusDistance
	return c
}

// Unit vector pointing from the eye towards the look-at point.
func (c *Camera) Front() types.Vec3 {
	return c.LookAt.Sub(c.LookFrom).Normalize()
}

// Unit vector pointing to the right of the view direction.
func (c *Camera) Right() types.Vec3 {
	return c.Front().Cross(c.Up).Normalize()
}

// Distance between the eye and the look-at point.
func (c *Camera) LookDistance() float32 {
	return c.LookAt.Sub(c.LookFrom).Len()
}

// Rotate the camera by the given yaw/pitch deltas (in degrees).
func (c *Camera) ProcessMouseDelta(dx, dy float32) {
	dist := c.LookDistance()

	c.Yaw += dx
	c.Pitch = types.Clamp(c.Pitch+dy, MinPitch, MaxPitch)

	c.LookAt = c.LookFrom.Add(c.direction().Mul(dist))
}

// Move the camera by delta units in the given direction. The facing
// direction and the look-at distance are preserved.
func (c *Camera) ProcessKeyboardDelta(delta float32, dir CameraDirection) {
	front := c.Front()
	right := front.Cross(c.Up).Normalize()
	dist := c.LookDistance()

	var offset types.Vec3
	switch dir {
	case Forward:
		offset = front.Mul(delta)
	case Backward:
		offset = front.Mul(-delta)
	case Left:
		offset = right.Mul(-delta)
	case Right:
		offset = right.Mul(delta)
	case Up:
		offset = c.Up.Mul(delta)
	case Down:
		offset = c.Up.Mul(-delta)
	default:
		return
	}

	c.LookFrom = c.LookFrom.Add(offset)
	c.LookAt = c.LookFrom.Add(front.Mul(dist))
}

// Derive the parameter block used by the shading kernel.
func (c *Camera) DeriveUniformBlock() CameraBlock {
	focusDist := c.FocusDistance
	if focusDist <= 0 {
		focusDist = c.LookDistance()
	}

	return CameraBlock{
		LookFrom:      c.LookFrom,
		LookAt:        c.LookAt,
		Up:            c.Up,
		VerticalFOV:   c.FOV,
		DefocusAngle:  c.DefocusAngle,
		FocusDistance: focusDist,
	}
}

// Convert yaw/pitch to a unit direction vector.
func (c *Camera) direction() types.Vec3 {
	yaw := types.Radians(c.Yaw)
	pitch := types.Radians(c.Pitch)
	return types.XYZ(
		math32.Cos(yaw)*math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw)*math32.Cos(pitch),
	).Normalize()
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nFrom : (%3.3f, %3.3f, %3.3f)\nAt   : (%3.3f, %3.3f, %3.3f)\nYaw  : %3.2f\nPitch: %3.2f\nFOV  : %3.1f",
		c.LookFrom[0], c.LookFrom[1], c.LookFrom[2],
		c.LookAt[0], c.LookAt[1], c.LookAt[2],
		c.Yaw, c.Pitch, c.FOV,
	)
}

// Pack the camera block into its GPU representation.
func (b CameraBlock) Pack() GPUCamera {
	return GPUCamera{
		LookFromFov:     b.LookFrom.Vec4(b.VerticalFOV),
		LookAtDefocus:   b.LookAt.Vec4(b.DefocusAngle),
		UpFocusDistance: b.Up.Vec4(b.FocusDistance),
	}
}
