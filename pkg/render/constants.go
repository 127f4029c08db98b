package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/camera"
)

// Press is the action reported for held keys and buttons
const Press = glfw.Press

// KeyClose closes the window
const KeyClose = glfw.KeyEscape

// LookButton engages mouse-look while held
const LookButton = glfw.MouseButtonLeft

// DefaultBindings maps camera actions to keys
var DefaultBindings = map[camera.Action]glfw.Key{
	camera.Forward:     glfw.KeyW,
	camera.Backward:    glfw.KeyS,
	camera.StrafeLeft:  glfw.KeyA,
	camera.StrafeRight: glfw.KeyD,
	camera.Ascend:      glfw.KeyQ,
	camera.Descend:     glfw.KeyE,
}

// Uniform names shared with shaders/*.glsl
const (
	UniformCamera          = "camMatrix"
	UniformModel           = "model"
	UniformLit             = "lit"
	UniformLightPos        = "lightPos"
	UniformLightColor      = "lightColor"
	UniformViewPos         = "viewPos"
	UniformAmbientStrength = "ambientStrength"
)

// Scroll zoom: degrees of field of view per wheel notch, and the band it stays in
const (
	ZoomStep   float32 = 2
	MinZoomFOV float32 = 1
	MaxZoomFOV float32 = 90
)

// Scene lighting
var (
	LightPosition = mgl32.Vec3{1.0, 1.5, 1.5}
	LightColor    = mgl32.Vec3{1.0, 1.0, 1.0}
)

// AmbientStrength is the light a lit mesh receives on faces turned away from the light
const AmbientStrength = 0.2
