package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-flycam/pkg/camera"
	"github.com/leterax/go-flycam/pkg/scene"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.aspectMode() != camera.AspectExact {
		t.Fatalf("default aspect mode = %v, want exact", cfg.aspectMode())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero height", func(c *Config) { c.Height = 0 }, "window size"},
		{"negative width", func(c *Config) { c.Width = -5 }, "window size"},
		{"fov too wide", func(c *Config) { c.FOV = 180 }, "field of view"},
		{"zero fov", func(c *Config) { c.FOV = 0 }, "field of view"},
		{"zero near", func(c *Config) { c.Near = 0 }, "near plane"},
		{"far before near", func(c *Config) { c.Far = c.Near }, "far plane"},
		{"negative speed", func(c *Config) { c.MoveSpeed = -1 }, "move speed"},
		{"vertex shader only", func(c *Config) { c.VertexShaderPath = "a.glsl" }, "shader paths"},
		{"fragment shader only", func(c *Config) { c.FragmentShaderPath = "b.glsl" }, "shader paths"},
		{"unknown scene", func(c *Config) { c.Scene = "teapot" }, "unknown scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestConfigUnknownSceneIsSentinel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene = "cube"

	if err := cfg.Validate(); !errors.Is(err, scene.ErrUnknownScene) {
		t.Fatalf("Validate() = %v, want ErrUnknownScene", err)
	}
}

func TestConfigAcceptsEveryScene(t *testing.T) {
	for _, name := range scene.Names() {
		cfg := DefaultConfig()
		cfg.Scene = name
		if err := cfg.Validate(); err != nil {
			t.Fatalf("scene %q: %v", name, err)
		}
	}
}

func TestTruncateAspect(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TruncateAspect = true
	if cfg.aspectMode() != camera.AspectTruncated {
		t.Fatalf("aspect mode = %v, want truncated", cfg.aspectMode())
	}
}

func TestDefaultBindings(t *testing.T) {
	actions := []camera.Action{
		camera.Forward, camera.Backward,
		camera.StrafeLeft, camera.StrafeRight,
		camera.Ascend, camera.Descend,
	}

	seen := map[glfw.Key]camera.Action{}
	for _, action := range actions {
		key, ok := DefaultBindings[action]
		if !ok {
			t.Fatalf("no key bound to %v", action)
		}
		if other, dup := seen[key]; dup {
			t.Fatalf("key %v bound to both %v and %v", key, other, action)
		}
		if key == KeyClose {
			t.Fatalf("%v bound to the close key", action)
		}
		seen[key] = action
	}
}

func TestEmbeddedShadersDeclareUniforms(t *testing.T) {
	sources := vertexShaderSource + fragmentShaderSource
	for _, name := range []string{
		UniformCamera, UniformModel, UniformLit, UniformLightPos,
		UniformLightColor, UniformViewPos, UniformAmbientStrength,
	} {
		if !strings.Contains(sources, "uniform") || !strings.Contains(sources, " "+name+";") {
			t.Fatalf("embedded shaders do not declare uniform %q", name)
		}
	}
	if !strings.HasPrefix(vertexShaderSource, "#version 410 core") {
		t.Fatalf("vertex shader has unexpected version line")
	}
}

func TestZoomFOV(t *testing.T) {
	tests := []struct {
		name string
		fov  float32
		yoff float64
		want float32
	}{
		{"wheel up narrows", 45, 1, 43},
		{"wheel down widens", 45, -2, 49},
		{"no scroll", 45, 0, 45},
		{"clamped at min", 2, 5, MinZoomFOV},
		{"clamped at max", 88, -10, MaxZoomFOV},
		{"wide start pulled into band", 120, 1, MaxZoomFOV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zoomFOV(tt.fov, tt.yoff); got != tt.want {
				t.Fatalf("zoomFOV(%v, %v) = %v, want %v", tt.fov, tt.yoff, got, tt.want)
			}
		})
	}

	// The default stays valid after zooming all the way in or out
	cfg := DefaultConfig()
	for _, yoff := range []float64{100, -100} {
		cfg.FOV = zoomFOV(DefaultConfig().FOV, yoff)
		if err := cfg.Validate(); err != nil {
			t.Fatalf("zoomed config invalid: %v", err)
		}
	}
}
