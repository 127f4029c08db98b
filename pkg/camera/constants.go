package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera defaults
const (
	DefaultMoveSpeed       = 1.0
	DefaultLookSensitivity = 100.0

	// Field of view and clip planes used by the demo scenes
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// Pitch constraints, in degrees between the forward vector and up
const (
	MinUpAngle = 5.0
	MaxUpAngle = 175.0
)

var (
	// DefaultOrientation looks along negative Z
	DefaultOrientation = mgl32.Vec3{0, 0, -1}
	// DefaultUp is the Y-up world axis
	DefaultUp = mgl32.Vec3{0, 1, 0}
)
