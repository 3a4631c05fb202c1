// Package camera provides camera controllers for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Controller is the common surface of the two navigation modes.
// The active mode is selected once at startup; there is no live switch.
type Controller interface {
	// ViewMatrix returns the view transform for the current pose.
	ViewMatrix() mgl32.Mat4

	// Reset restores the pose captured at construction.
	Reset()
}

// OrbitCamera rotates around the world origin at a clamped distance.
// Angles are in degrees.
type OrbitCamera struct {
	RotationX float32 // Rotation about the X axis
	RotationY float32 // Rotation about the Y axis
	Distance  float32

	RotateStep  float32
	ZoomStep    float32
	MinDistance float32
	MaxDistance float32

	initial orbitPose
}

type orbitPose struct {
	rotationX, rotationY, distance float32
}

// NewOrbitCamera creates an orbit camera and captures its reset snapshot.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		RotationX:   0,
		RotationY:   0,
		Distance:    10.0,
		RotateStep:  1.0,
		ZoomStep:    0.5,
		MinDistance: 2.0,
		MaxDistance: 20.0,
	}
	c.initial = orbitPose{c.RotationX, c.RotationY, c.Distance}
	return c
}

// Rotate applies held-key rotation in step units: dPitch adjusts
// RotationX, dYaw adjusts RotationY.
func (c *OrbitCamera) Rotate(dPitch, dYaw float32) {
	c.RotationX += dPitch * c.RotateStep
	c.RotationY += dYaw * c.RotateStep
}

// ZoomIn moves the eye closer, clamped to MinDistance.
func (c *OrbitCamera) ZoomIn() {
	c.Distance -= c.ZoomStep
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
}

// ZoomOut moves the eye away, clamped to MaxDistance.
func (c *OrbitCamera) ZoomOut() {
	c.Distance += c.ZoomStep
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Reset restores rotation and distance to the startup snapshot.
func (c *OrbitCamera) Reset() {
	c.RotationX = c.initial.rotationX
	c.RotationY = c.initial.rotationY
	c.Distance = c.initial.distance
}

// ViewMatrix places the eye at (d, d, d) looking at the origin, then
// rotates the scene by RotationX about X and RotationY about Y.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	eye := mgl32.Vec3{c.Distance, c.Distance, c.Distance}
	view := mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	view = view.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.RotationX)))
	view = view.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.RotationY)))
	return view
}

// FlyCamera is a free-flight camera driven by look direction and
// directional input. Yaw and pitch are in degrees; pitch is clamped to
// avoid gimbal flip.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	MoveSpeed   float32 // World units per tick
	Sensitivity float32 // Degrees per pixel of mouse motion

	MinPitch float32
	MaxPitch float32

	initial flyPose
}

type flyPose struct {
	position   mgl32.Vec3
	yaw, pitch float32
}

// NewFlyCamera creates a fly camera at the given pose and captures its
// reset snapshot.
func NewFlyCamera(position mgl32.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		Yaw:         yaw,
		Pitch:       pitch,
		MoveSpeed:   0.2,
		Sensitivity: 0.1,
		MinPitch:    -89.0,
		MaxPitch:    89.0,
	}
	c.initial = flyPose{position, yaw, pitch}
	return c
}

// HandleMouse applies a relative mouse-motion delta to yaw and pitch.
func (c *FlyCamera) HandleMouse(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// Forward returns the unit look direction derived from yaw and pitch.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	return mgl32.Vec3{
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
	}
}

// Right returns the forward direction yawed -90 degrees with zero pitch.
func (c *FlyCamera) Right() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw - 90))
	return mgl32.Vec3{
		float32(gomath.Sin(yaw)),
		0,
		float32(gomath.Cos(yaw)),
	}
}

// Move displaces the camera: forward/strafe along the look-derived
// axes, vertical along world up. Inputs are in step units (-1, 0, +1
// per held key); each step covers MoveSpeed world units.
func (c *FlyCamera) Move(forward, strafe, vertical float32) {
	c.Position = c.Position.Add(c.Forward().Mul(forward * c.MoveSpeed))
	c.Position = c.Position.Add(c.Right().Mul(strafe * c.MoveSpeed))
	c.Position[1] += vertical * c.MoveSpeed
}

// Reset restores position, yaw and pitch to the startup snapshot.
func (c *FlyCamera) Reset() {
	c.Position = c.initial.position
	c.Yaw = c.initial.yaw
	c.Pitch = c.initial.pitch
}

// ViewMatrix looks from the camera position along the forward direction.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}
