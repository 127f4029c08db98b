package render

import (
	"fmt"
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/internal/openglhelper"
	"github.com/leterax/go-flycam/pkg/camera"
	"github.com/leterax/go-flycam/pkg/scene"
)

// Renderer handles rendering logic and the frame loop
type Renderer struct {
	cfg    Config
	window *openglhelper.Window
	camera *camera.Camera
	input  *windowInput

	shader *openglhelper.Shader
	mesh   *openglhelper.Mesh
	model  mgl32.Mat4
	lit    bool

	// Timing
	lastFrameTime float64
	deltaTime     float32

	// Title bar stats, refreshed once per second
	frameCount int
	statsTime  float64
}

// NewRenderer opens a window and prepares the configured scene
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	mesh, err := scene.ByName(cfg.Scene)
	if err != nil {
		return nil, err
	}

	window, err := openglhelper.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := loadShader(cfg)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	width, height := window.Size()
	cam := camera.NewCamera(width, height, cfg.CameraPosition)
	cam.SetMoveSpeed(cfg.MoveSpeed)
	cam.SetLookSensitivity(cfg.LookSensitivity)
	cam.SetAspectMode(cfg.aspectMode())

	r := &Renderer{
		cfg:    cfg,
		window: window,
		camera: cam,
		input:  newWindowInput(window),
		shader: shader,
		mesh:   openglhelper.NewMesh(mesh.Vertices, mesh.Indices, openglhelper.VertexLayout{3, 3, 3}),
		// Center the mesh on the origin the camera starts out facing
		model: mgl32.Translate3D(mesh.Center().Mul(-1).Elem()),
		lit:   mesh.Lit,
	}

	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetSizeCallback(r.sizeCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)

	log.Printf("scene %q: %d vertices, %d triangles", mesh.Name, mesh.VertexCount(), len(mesh.Indices)/3)

	return r, nil
}

// Camera returns the camera driven by the renderer
func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// render draws one frame
func (r *Renderer) render() {
	r.window.Clear(r.cfg.ClearColor)

	r.shader.Use()
	r.camera.Export(r.shader, UniformCamera, r.cfg.FOV, r.cfg.Near, r.cfg.Far)
	r.shader.SetMat4(UniformModel, r.model)

	r.shader.SetBool(UniformLit, r.lit)
	if r.lit {
		r.shader.SetVec3(UniformLightPos, LightPosition)
		r.shader.SetVec3(UniformLightColor, LightColor)
		r.shader.SetVec3(UniformViewPos, r.camera.Position())
		r.shader.SetFloat(UniformAmbientStrength, AmbientStrength)
	}

	r.mesh.Draw()
}

// Run starts the main rendering loop and cleans up when the window closes
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()
	r.statsTime = r.lastFrameTime

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		r.deltaTime = float32(currentTime - r.lastFrameTime)
		r.lastFrameTime = currentTime

		r.camera.Update(r.input, r.deltaTime)

		r.render()
		r.updateStats(currentTime)

		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	r.Cleanup()
}

func (r *Renderer) updateStats(now float64) {
	r.frameCount++
	if elapsed := now - r.statsTime; elapsed >= 1.0 {
		pos := r.camera.Position()
		r.window.SetTitle(fmt.Sprintf("%s - %s | %.0f fps | (%.2f, %.2f, %.2f)",
			r.window.Title(), r.cfg.Scene, float64(r.frameCount)/elapsed, pos.X(), pos.Y(), pos.Z()))
		r.frameCount = 0
		r.statsTime = now
	}
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	r.mesh.Delete()
	r.shader.Delete()
	r.window.Close()
}

func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == KeyClose && action == Press {
		r.window.SetShouldClose(true)
	}
}

// sizeCallback tracks the window size in screen coordinates, the space cursor
// positions are reported in. A minimized window reports zero and is ignored.
func (r *Renderer) sizeCallback(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.window.OnResize(width, height)
	r.camera.SetViewport(width, height)
}

// scrollCallback narrows the field of view on wheel up and widens it on wheel down
func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoff float64) {
	r.cfg.FOV = zoomFOV(r.cfg.FOV, yoff)
}

// zoomFOV applies a scroll offset to fov, staying within [MinZoomFOV, MaxZoomFOV]
func zoomFOV(fov float32, yoff float64) float32 {
	return mgl32.Clamp(fov-ZoomStep*float32(yoff), MinZoomFOV, MaxZoomFOV)
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.window.OnFramebufferResize(width, height)
}
