package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxFOV is the widest field of view ZoomOut will reach, in degrees.
	MaxFOV float32 = 90.0
)

// Sensitivity holds the fixed step sizes applied by camera commands.
type Sensitivity struct {
	Zoom   float32 // degrees per zoom step
	Move   float32 // world units per move step
	Rotate float32 // radians per rotation unit
}

// DefaultSensitivity returns the stock step sizes.
func DefaultSensitivity() Sensitivity {
	return Sensitivity{Zoom: 2.0, Move: 5.0, Rotate: 0.01}
}

// Params describes a camera at construction time. Reset returns to it.
type Params struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FOV       float32 // degrees
	NearPlane float32
	FarPlane  float32

	Sensitivity Sensitivity
}

// DefaultParams places the camera at the origin looking down +Z.
func DefaultParams() Params {
	return Params{
		Eye:         mgl32.Vec3{0, 0, 0},
		Target:      mgl32.Vec3{0, 0, 1},
		Up:          mgl32.Vec3{0, 1, 0},
		FOV:         30.0,
		NearPlane:   1.0,
		FarPlane:    10000.0,
		Sensitivity: DefaultSensitivity(),
	}
}

// Camera handles the view and projection matrices.
//
// The view matrix is updated in place by every move and rotate call. Nothing
// re-derives it from a stored orientation, so long sessions accumulate
// floating-point drift exactly as repeated matrix products do.
type Camera struct {
	init Params

	Sensitivity Sensitivity

	FOV         float32
	NearPlane   float32
	FarPlane    float32
	AspectRatio float32

	ViewMatrix       mgl32.Mat4
	ProjectionMatrix mgl32.Mat4

	moving bool
}

// New creates a camera from p. The projection stays identity until the first
// UpdateWindowSize supplies an aspect ratio.
func New(p Params) *Camera {
	return &Camera{
		init:             p,
		Sensitivity:      p.Sensitivity,
		FOV:              p.FOV,
		NearPlane:        p.NearPlane,
		FarPlane:         p.FarPlane,
		ViewMatrix:       mgl32.LookAtV(p.Eye, p.Target, p.Up),
		ProjectionMatrix: mgl32.Ident4(),
	}
}

// NewDefault is New(DefaultParams()).
func NewDefault() *Camera {
	return New(DefaultParams())
}

// MovingState reports whether a drag is in progress.
func (c *Camera) MovingState() bool {
	return c.moving
}

// SetMovingState is toggled by the left mouse button.
func (c *Camera) SetMovingState(moving bool) {
	c.moving = moving
}

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 {
	return c.ViewMatrix.Inv().Col(3).Vec3()
}

// Pitch rotates about the camera's right axis, read from row 0 of the view matrix.
func (c *Camera) Pitch(angle int) {
	c.rotate(angle, c.ViewMatrix.Row(0).Vec3())
}

// Yaw rotates about the camera's up axis, read from row 1 of the view matrix.
func (c *Camera) Yaw(angle int) {
	c.rotate(angle, c.ViewMatrix.Row(1).Vec3())
}

// RotateAroundWorldY spins the view about the world Y axis through the origin.
func (c *Camera) RotateAroundWorldY(angle int) {
	c.rotate(angle, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) rotate(angle int, axis mgl32.Vec3) {
	if axis.Len() == 0 {
		return
	}
	rad := float32(angle) * c.Sensitivity.Rotate
	c.ViewMatrix = c.ViewMatrix.Mul4(mgl32.HomogRotate3D(rad, axis.Normalize()))
}

// MoveForward and friends shift the eye one move step along a camera-local axis.
func (c *Camera) MoveForward()  { c.translate(mgl32.Vec3{0, 0, -1}, 1) }
func (c *Camera) MoveBackward() { c.translate(mgl32.Vec3{0, 0, 1}, 1) }
func (c *Camera) MoveLeft()     { c.translate(mgl32.Vec3{-1, 0, 0}, 1) }
func (c *Camera) MoveRight()    { c.translate(mgl32.Vec3{1, 0, 0}, 1) }
func (c *Camera) MoveUp()       { c.translate(mgl32.Vec3{0, 1, 0}, 1) }
func (c *Camera) MoveDown()     { c.translate(mgl32.Vec3{0, -1, 0}, 1) }

// Dolly moves the eye along the local forward axis by steps*scale move steps.
// Negative steps move backward.
func (c *Camera) Dolly(steps int, scale float32) {
	c.translate(mgl32.Vec3{0, 0, -1}, float32(steps)*scale)
}

// translate moves the eye by dir (camera space) scaled by the move step.
// Moving the eye by d is the same as moving the world by -d in front of the view.
func (c *Camera) translate(dir mgl32.Vec3, factor float32) {
	d := dir.Mul(c.Sensitivity.Move * factor)
	c.ViewMatrix = mgl32.Translate3D(-d[0], -d[1], -d[2]).Mul4(c.ViewMatrix)
}

// ZoomIn narrows the field of view by one zoom step while it stays above zero.
// The result never exceeds MaxFOV, whatever the sign of the step.
func (c *Camera) ZoomIn() {
	next := min(c.FOV-c.Sensitivity.Zoom, MaxFOV)
	if next <= 0 {
		return
	}
	c.FOV = next
	c.updateProjection()
}

// ZoomOut widens the field of view by one zoom step, capped at MaxFOV.
func (c *Camera) ZoomOut() {
	if c.FOV >= MaxFOV {
		return
	}
	next := min(c.FOV+c.Sensitivity.Zoom, MaxFOV)
	if next <= 0 {
		return
	}
	c.FOV = next
	c.updateProjection()
}

// Reset restores the construction-time view, field of view and projection.
func (c *Camera) Reset() {
	c.ViewMatrix = mgl32.LookAtV(c.init.Eye, c.init.Target, c.init.Up)
	c.FOV = c.init.FOV
	c.updateProjection()
}

// UpdateWindowSize sets the aspect ratio to width/height and rebuilds the projection.
func (c *Camera) UpdateWindowSize(width, height int) {
	if height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
	c.updateProjection()
}

// ProjectionFor is the projection this camera uses for the given parameters.
func ProjectionFor(fov, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}

func (c *Camera) updateProjection() {
	if c.AspectRatio <= 0 {
		c.ProjectionMatrix = mgl32.Ident4()
		return
	}
	c.ProjectionMatrix = ProjectionFor(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix.Mul4(c.ViewMatrix)
}
