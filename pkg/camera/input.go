package camera

import "github.com/go-gl/mathgl/mgl32"

// Action is a discrete movement control polled by the camera
type Action int

const (
	// Forward moves along the view direction
	Forward Action = iota
	// Backward moves against the view direction
	Backward
	// StrafeLeft moves against the right vector
	StrafeLeft
	// StrafeRight moves along the right vector
	StrafeRight
	// Ascend moves along up
	Ascend
	// Descend moves against up
	Descend
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case StrafeLeft:
		return "strafe-left"
	case StrafeRight:
		return "strafe-right"
	case Ascend:
		return "ascend"
	case Descend:
		return "descend"
	default:
		return "unknown"
	}
}

// Input is the input state a Camera samples once per Update.
//
// Cursor coordinates are in the same logical pixel space as the camera's
// viewport, with the origin in the top-left corner.
type Input interface {
	// KeyDown reports whether the key bound to the action is held
	KeyDown(action Action) bool
	// LookDown reports whether the look-engage button is held
	LookDown() bool
	// CursorPos returns the current cursor position
	CursorPos() (x, y float64)
	// SetCursorPos moves the cursor, used to recenter it while looking
	SetCursorPos(x, y float64)
	// SetCursorHidden hides the cursor while looking and shows it otherwise
	SetCursorHidden(hidden bool)
}

// UniformSink receives the camera matrix, usually a shader program
type UniformSink interface {
	SetMat4(name string, mat mgl32.Mat4)
}
