package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-flycam/internal/openglhelper"
	"github.com/leterax/go-flycam/pkg/camera"
)

// windowInput polls a GLFW window on behalf of the camera
type windowInput struct {
	window     *openglhelper.Window
	bindings   map[camera.Action]glfw.Key
	lookButton glfw.MouseButton
}

var _ camera.Input = (*windowInput)(nil)

func newWindowInput(window *openglhelper.Window) *windowInput {
	return &windowInput{
		window:     window,
		bindings:   DefaultBindings,
		lookButton: LookButton,
	}
}

func (in *windowInput) KeyDown(action camera.Action) bool {
	key, ok := in.bindings[action]
	return ok && in.window.GetKeyState(key) == Press
}

func (in *windowInput) LookDown() bool {
	return in.window.GetMouseButtonState(in.lookButton) == Press
}

func (in *windowInput) CursorPos() (x, y float64) {
	return in.window.CursorPos()
}

func (in *windowInput) SetCursorPos(x, y float64) {
	in.window.SetCursorPos(x, y)
}

func (in *windowInput) SetCursorHidden(hidden bool) {
	in.window.SetCursorHidden(hidden)
}
