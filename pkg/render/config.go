package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/camera"
	"github.com/leterax/go-flycam/pkg/scene"
)

// Config holds everything needed to open a window and draw a scene
type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	// Scene is one of scene.Names()
	Scene      string
	ClearColor mgl32.Vec4

	CameraPosition  mgl32.Vec3
	FOV             float32 // Vertical, in degrees
	Near            float32
	Far             float32
	MoveSpeed       float32
	LookSensitivity float32
	// TruncateAspect computes the aspect ratio with integer division
	TruncateAspect bool

	// Optional shader overrides. Both or neither must be set.
	VertexShaderPath   string
	FragmentShaderPath string
}

// DefaultConfig returns the settings used when no flags are given
func DefaultConfig() Config {
	return Config{
		Width:           1024,
		Height:          720,
		Title:           "flycam",
		VSync:           true,
		Scene:           "pyramid",
		ClearColor:      mgl32.Vec4{0.07, 0.13, 0.17, 1.0},
		CameraPosition:  mgl32.Vec3{0, 0, 2},
		FOV:             camera.DefaultFOV,
		Near:            camera.DefaultNear,
		Far:             camera.DefaultFar,
		MoveSpeed:       camera.DefaultMoveSpeed,
		LookSensitivity: camera.DefaultLookSensitivity,
	}
}

// Validate reports the first setting the renderer cannot work with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("field of view must be between 0 and 180 degrees, got %v", c.FOV)
	}
	if c.Near <= 0 {
		return fmt.Errorf("near plane must be positive, got %v", c.Near)
	}
	if c.Far <= c.Near {
		return fmt.Errorf("far plane %v must be beyond near plane %v", c.Far, c.Near)
	}
	if c.MoveSpeed < 0 {
		return fmt.Errorf("move speed must not be negative, got %v", c.MoveSpeed)
	}
	if (c.VertexShaderPath == "") != (c.FragmentShaderPath == "") {
		return errors.New("vertex and fragment shader paths must be given together")
	}
	if _, err := scene.ByName(c.Scene); err != nil {
		return err
	}
	return nil
}

// aspectMode maps the config flag to the camera setting
func (c Config) aspectMode() camera.AspectMode {
	if c.TruncateAspect {
		return camera.AspectTruncated
	}
	return camera.AspectExact
}
