// Package camera implements a first person fly camera that produces the view
// and projection transforms consumed by [gterrain.Terrain.Render].
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/math/ms1"
)

// Movement is a direction the camera can be flown in.
type Movement uint8

const (
	Forward  Movement = iota // W
	Backward                 // S
	Left                     // A
	Right                    // D
	Up                       // Space
	Down                     // C
)

// Camera limits and defaults, angles in degrees.
const (
	DefaultFOV         = 45
	DefaultYaw         = -90
	DefaultSpeed       = 1
	DefaultSensitivity = 0.1

	MinFOV   = 1
	MaxFOV   = 90
	MaxPitch = 89

	Near = 0.01
	// Far is the default far clipping distance. FrameMesh may push it further out.
	Far = 100
)

// Camera is a yaw/pitch fly camera with a perspective projection.
// The zero value is not usable; use [New].
type Camera struct {
	// Speed is the translation speed in world units per second.
	Speed float32
	// Sensitivity scales cursor movement in pixels to degrees of rotation.
	Sensitivity float32

	pos   mgl32.Vec3
	front mgl32.Vec3
	up    mgl32.Vec3
	fov   float32
	yaw   float32
	pitch float32
	far   float32

	lastX, lastY float32
	firstLook    bool
}

// New returns a camera at (0,0,3) looking down the negative Z axis.
func New() *Camera {
	c := &Camera{
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		pos:         mgl32.Vec3{0, 0, 3},
		up:          mgl32.Vec3{0, 1, 0},
		fov:         DefaultFOV,
		yaw:         DefaultYaw,
		far:         Far,
		firstLook:   true,
	}
	c.updateFront()
	return c
}

// Position returns the camera eye position.
func (c *Camera) Position() mgl32.Vec3 { return c.pos }

// Front returns the unit view direction.
func (c *Camera) Front() mgl32.Vec3 { return c.front }

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float32 { return c.fov }

// FarPlane returns the far clipping distance used by [Camera.Projection].
func (c *Camera) FarPlane() float32 { return c.far }

// Angles returns yaw and pitch in degrees.
func (c *Camera) Angles() (yaw, pitch float32) { return c.yaw, c.pitch }

// SetPosition moves the eye to pos without changing the view direction.
func (c *Camera) SetPosition(pos mgl32.Vec3) { c.pos = pos }

// SetAngles sets the view direction. Pitch is clamped to ±89 degrees.
func (c *Camera) SetAngles(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = ms1.Clamp(pitch, -MaxPitch, MaxPitch)
	c.updateFront()
}

// Move flies the camera in direction m for dt seconds.
func (c *Camera) Move(m Movement, dt float32) {
	step := c.Speed * dt
	switch m {
	case Forward:
		c.pos = c.pos.Add(c.front.Mul(step))
	case Backward:
		c.pos = c.pos.Sub(c.front.Mul(step))
	case Up:
		c.pos = c.pos.Add(c.up.Mul(step))
	case Down:
		c.pos = c.pos.Sub(c.up.Mul(step))
	case Left:
		c.pos = c.pos.Sub(c.right().Mul(step))
	case Right:
		c.pos = c.pos.Add(c.right().Mul(step))
	}
}

// Look rotates the camera from an absolute cursor position in window pixels.
// The first call after [Camera.ResetLook] only records the position.
func (c *Camera) Look(x, y float32) {
	if c.firstLook {
		c.lastX, c.lastY = x, y
		c.firstLook = false
		return
	}
	dx := (x - c.lastX) * c.Sensitivity
	dy := (c.lastY - y) * c.Sensitivity // Window Y grows downward.
	c.lastX, c.lastY = x, y
	c.SetAngles(c.yaw+dx, c.pitch+dy)
}

// ResetLook makes the next Look call a reference point so the camera does not
// jump when the cursor is recaptured.
func (c *Camera) ResetLook() { c.firstLook = true }

// Zoom narrows the field of view by dy degrees, within [1,90].
func (c *Camera) Zoom(dy float32) {
	c.fov = ms1.Clamp(c.fov-dy, MinFOV, MaxFOV)
}

// View returns the world to camera transform.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.pos, c.pos.Add(c.front), c.up)
}

// Projection returns the perspective transform for a viewport of the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, Near, c.far)
}

// FrameMesh places the camera in front of and above the box looking at its center.
// The far plane is extended when needed so the whole box stays visible.
func (c *Camera) FrameMesh(bounds ms3.Box) {
	center := ms3.Scale(0.5, ms3.Add(bounds.Min, bounds.Max))
	size := ms3.Sub(bounds.Max, bounds.Min)
	extent := math32.Max(size.X, size.Z)
	if extent <= 0 {
		extent = 1
	}
	c.pos = mgl32.Vec3{center.X, bounds.Max.Y + 0.5*extent, center.Z + extent}
	toCenter := mgl32.Vec3{center.X, center.Y, center.Z}.Sub(c.pos)
	reach := toCenter.Len() + 0.5*ms3.Norm(size)
	c.far = math32.Max(Far, 2*reach)
	dir := toCenter.Normalize()
	yaw := mgl32.RadToDeg(math32.Atan2(dir.Z(), dir.X()))
	pitch := mgl32.RadToDeg(math32.Asin(dir.Y()))
	c.SetAngles(yaw, pitch)
}

func (c *Camera) right() mgl32.Vec3 {
	return c.front.Cross(c.up).Normalize()
}

func (c *Camera) updateFront() {
	ys, yc := math32.Sincos(mgl32.DegToRad(c.yaw))
	ps, pc := math32.Sincos(mgl32.DegToRad(c.pitch))
	c.front = mgl32.Vec3{yc * pc, ps, ys * pc}.Normalize()
}
