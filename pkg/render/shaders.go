package render

import (
	_ "embed"

	"github.com/leterax/go-flycam/internal/openglhelper"
)

//go:embed shaders/vert.glsl
var vertexShaderSource string

//go:embed shaders/frag.glsl
var fragmentShaderSource string

// loadShader compiles the embedded shaders unless the config points at files
func loadShader(cfg Config) (*openglhelper.Shader, error) {
	if cfg.VertexShaderPath != "" {
		return openglhelper.LoadShaderFromFiles(cfg.VertexShaderPath, cfg.FragmentShaderPath)
	}
	return openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
}
