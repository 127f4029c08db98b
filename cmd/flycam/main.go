package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/render"
	"github.com/leterax/go-flycam/pkg/scene"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg := render.DefaultConfig()

	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height")
	flag.StringVar(&cfg.Title, "title", cfg.Title, "Window title")
	flag.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "Enable vsync")
	flag.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene to draw: "+strings.Join(scene.Names(), ", "))
	fov := flag.Float64("fov", float64(cfg.FOV), "Vertical field of view in degrees")
	near := flag.Float64("near", float64(cfg.Near), "Near clip plane")
	far := flag.Float64("far", float64(cfg.Far), "Far clip plane")
	speed := flag.Float64("speed", float64(cfg.MoveSpeed), "Camera speed in units per second")
	sensitivity := flag.Float64("sensitivity", float64(cfg.LookSensitivity), "Degrees turned per window of mouse travel")
	flag.BoolVar(&cfg.TruncateAspect, "truncate-aspect", cfg.TruncateAspect, "Compute the aspect ratio with integer division")
	flag.StringVar(&cfg.VertexShaderPath, "vert", "", "Vertex shader file (default: built-in)")
	flag.StringVar(&cfg.FragmentShaderPath, "frag", "", "Fragment shader file (default: built-in)")
	flag.Parse()

	cfg.FOV = float32(*fov)
	cfg.Near = float32(*near)
	cfg.Far = float32(*far)
	cfg.MoveSpeed = float32(*speed)
	cfg.LookSensitivity = float32(*sensitivity)

	fmt.Println("Starting flycam...")

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	renderer.Camera().LookAt(mgl32.Vec3{0, 0, 0})

	renderer.Run()
}
