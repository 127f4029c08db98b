// Package camera implements a free-look fly camera: WASD-style movement,
// mouse-look while a button is held, and view/projection matrices for a
// shader uniform.
package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AspectMode selects how the viewport aspect ratio is computed
type AspectMode int

const (
	// AspectExact divides width by height in floating point
	AspectExact AspectMode = iota
	// AspectTruncated divides in integers first, so 1024x720 yields 1.
	// Kept for scenes tuned against that behaviour. A viewport narrower than
	// it is tall yields 0, and the projection matrix degenerates to +Inf.
	AspectTruncated
)

// Camera implements a 3D fly camera
type Camera struct {
	// Pose. orientation and up are unit length.
	position    mgl32.Vec3
	orientation mgl32.Vec3
	up          mgl32.Vec3

	// Viewport in logical pixels
	width  int
	height int

	// Camera options
	moveSpeed       float32
	lookSensitivity float32
	aspectMode      AspectMode

	// Set while the look button is up so the next press recenters the cursor
	firstClick bool
}

// NewCamera creates a camera at position looking along -Z.
// It panics if width or height is not positive.
func NewCamera(width, height int, position mgl32.Vec3) *Camera {
	mustViewport(width, height)

	return &Camera{
		position:        position,
		orientation:     DefaultOrientation,
		up:              DefaultUp,
		width:           width,
		height:          height,
		moveSpeed:       DefaultMoveSpeed,
		lookSensitivity: DefaultLookSensitivity,
		aspectMode:      AspectExact,
		firstClick:      true,
	}
}

func mustViewport(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("camera: viewport must be positive, got %dx%d", width, height))
	}
}

// Matrices returns the view and projection matrices for the current pose
func (c *Camera) Matrices(fovDegrees, nearPlane, farPlane float32) (view, proj mgl32.Mat4) {
	view = mgl32.LookAtV(c.position, c.position.Add(c.orientation), c.up)
	proj = mgl32.Perspective(mgl32.DegToRad(fovDegrees), c.Aspect(), nearPlane, farPlane)
	return view, proj
}

// Matrix returns projection * view
func (c *Camera) Matrix(fovDegrees, nearPlane, farPlane float32) mgl32.Mat4 {
	view, proj := c.Matrices(fovDegrees, nearPlane, farPlane)
	return proj.Mul4(view)
}

// Export uploads projection * view to the sink under the given uniform name
func (c *Camera) Export(sink UniformSink, uniform string, fovDegrees, nearPlane, farPlane float32) {
	sink.SetMat4(uniform, c.Matrix(fovDegrees, nearPlane, farPlane))
}

// Aspect returns the viewport aspect ratio according to the aspect mode
func (c *Camera) Aspect() float32 {
	if c.aspectMode == AspectTruncated {
		return float32(c.width / c.height)
	}
	return float32(c.width) / float32(c.height)
}

// Update moves and turns the camera from one frame of input.
// dt is the frame time in seconds.
func (c *Camera) Update(in Input, dt float32) {
	right := c.Right()
	step := c.moveSpeed * dt

	// The first key of each pair wins when both are held
	if in.KeyDown(Forward) {
		c.position = c.position.Add(c.orientation.Mul(step))
	} else if in.KeyDown(Backward) {
		c.position = c.position.Sub(c.orientation.Mul(step))
	}

	if in.KeyDown(StrafeLeft) {
		c.position = c.position.Sub(right.Mul(step))
	} else if in.KeyDown(StrafeRight) {
		c.position = c.position.Add(right.Mul(step))
	}

	if in.KeyDown(Ascend) {
		c.position = c.position.Add(c.up.Mul(step))
	} else if in.KeyDown(Descend) {
		c.position = c.position.Sub(c.up.Mul(step))
	}

	if !in.LookDown() {
		in.SetCursorHidden(false)
		c.firstClick = true
		return
	}

	in.SetCursorHidden(true)

	centerX := float64(c.width) / 2
	centerY := float64(c.height) / 2

	if c.firstClick {
		in.SetCursorPos(centerX, centerY)
		c.firstClick = false
		return
	}

	mouseX, mouseY := in.CursorPos()

	// Degrees, scaled so a full viewport of travel turns by the sensitivity
	rotX := c.lookSensitivity * float32(mouseY-centerY) / float32(c.height)
	rotY := c.lookSensitivity * float32(mouseX-centerX) / float32(c.width)

	// Pitching down by rotX grows the angle to up by rotX. Checking the
	// unwrapped angle rejects deltas that would swing through a pole.
	target := c.UpAngle() + rotX
	if target >= MinUpAngle && target <= MaxUpAngle {
		c.orientation = rotate(c.orientation, -rotX, right)
	}

	c.orientation = rotate(c.orientation, -rotY, c.up).Normalize()

	in.SetCursorPos(centerX, centerY)
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the unit forward vector
func (c *Camera) Orientation() mgl32.Vec3 {
	return c.orientation
}

// SetOrientation points the camera along dir, clamping pitch to the
// allowed band. A zero vector is ignored.
func (c *Camera) SetOrientation(dir mgl32.Vec3) {
	if dir.Len() == 0 {
		return
	}
	c.orientation = c.clampToUp(dir.Normalize())
}

// LookAt makes the camera look at a specific point
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.SetOrientation(target.Sub(c.position))
}

// Up returns the reference up vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Right returns the camera's right direction vector
func (c *Camera) Right() mgl32.Vec3 {
	return c.orientation.Cross(c.up).Normalize()
}

// UpAngle returns the angle between the forward vector and up, in degrees
func (c *Camera) UpAngle() float32 {
	return angleBetween(c.orientation, c.up)
}

// Viewport returns the viewport size
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// SetViewport updates the viewport size after a resize.
// It panics if width or height is not positive.
func (c *Camera) SetViewport(width, height int) {
	mustViewport(width, height)
	c.width = width
	c.height = height
}

// MoveSpeed returns the movement speed in world units per second
func (c *Camera) MoveSpeed() float32 {
	return c.moveSpeed
}

// SetMoveSpeed sets the movement speed in world units per second
func (c *Camera) SetMoveSpeed(speed float32) {
	c.moveSpeed = speed
}

// LookSensitivity returns the degrees turned per full viewport of mouse travel
func (c *Camera) LookSensitivity() float32 {
	return c.lookSensitivity
}

// SetLookSensitivity sets how many degrees a full viewport of mouse travel turns
func (c *Camera) SetLookSensitivity(sensitivity float32) {
	c.lookSensitivity = sensitivity
}

// AspectMode returns how the aspect ratio is computed
func (c *Camera) AspectMode() AspectMode {
	return c.aspectMode
}

// SetAspectMode selects how the aspect ratio is computed
func (c *Camera) SetAspectMode(mode AspectMode) {
	c.aspectMode = mode
}

// clampToUp pulls a unit direction back inside [MinUpAngle, MaxUpAngle]
// while keeping its heading around up.
func (c *Camera) clampToUp(dir mgl32.Vec3) mgl32.Vec3 {
	angle := angleBetween(dir, c.up)
	if angle >= MinUpAngle && angle <= MaxUpAngle {
		return dir
	}

	heading := flatten(dir, c.up)
	if heading.Len() < 1e-6 {
		// Straight up or down: keep the current heading
		heading = flatten(c.orientation, c.up)
	}
	heading = heading.Normalize()

	rad := float64(mgl32.DegToRad(mgl32.Clamp(angle, MinUpAngle, MaxUpAngle)))
	return c.up.Mul(float32(math.Cos(rad))).Add(heading.Mul(float32(math.Sin(rad)))).Normalize()
}

// flatten removes the component of v along the unit axis
func flatten(v, axis mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(axis.Mul(v.Dot(axis)))
}

// rotate turns v about a unit axis by the given angle in degrees
func rotate(v mgl32.Vec3, degrees float32, axis mgl32.Vec3) mgl32.Vec3 {
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), axis).Rotate(v)
}

func angleBetween(a, b mgl32.Vec3) float32 {
	cos := mgl32.Clamp(a.Normalize().Dot(b.Normalize()), -1, 1)
	return mgl32.RadToDeg(float32(math.Acos(float64(cos))))
}
