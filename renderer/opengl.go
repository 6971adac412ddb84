package renderer

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rsolis096/RealTimeRT/log"
	"github.com/rsolis096/RealTimeRT/scene"
	"github.com/rsolis096/RealTimeRT/scene/compiler"
	"github.com/rsolis096/RealTimeRT/tracer"
	"github.com/rsolis096/RealTimeRT/tracer/opengl"
	"github.com/rsolis096/RealTimeRT/types"
)

const (
	windowTitle = "RealTimeRT"

	// Seconds between refreshes of the fps counter in the window title.
	fpsRefreshInterval float32 = 1.0
)

// Held keys that move the camera.
var movementKeys = map[glfw.Key]scene.CameraDirection{
	glfw.KeyW:           scene.Forward,
	glfw.KeyS:           scene.Backward,
	glfw.KeyA:           scene.Left,
	glfw.KeyD:           scene.Right,
	glfw.KeySpace:       scene.Up,
	glfw.KeyLeftControl: scene.Down,
}

// An interactive opengl-based renderer.
type interactiveGLRenderer struct {
	logger log.Logger

	options Options
	camera  *scene.Camera
	buffers *compiler.Buffers

	window *glfw.Window
	tracer tracer.Tracer
	seeds  *tracer.SeedSequence

	// input state
	input         InputState
	cursorLocked  bool
	lastCursorPos types.Vec2

	stats FrameStats
	fps   fpsCounter
}

// Create a new interactive renderer for the given scene. The scene is
// packed once; the camera is re-sent to the tracer every frame.
//
// The renderer must be created and used from the main goroutine.
func NewInteractive(sc *scene.Scene, camera *scene.Camera, opts Options) (Renderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	buffers, err := compiler.BuildBuffers(sc)
	if err != nil {
		return nil, err
	}

	r := &interactiveGLRenderer{
		logger:  log.New("renderer"),
		options: opts,
		camera:  camera,
		buffers: buffers,
		seeds:   tracer.NewSeedSequence(opts.Seed),
		fps:     fpsCounter{interval: fpsRefreshInterval},
	}

	err = r.initGL()
	if err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

func (r *interactiveGLRenderer) initGL() error {
	var err error

	// GL contexts are bound to the OS thread that created them.
	runtime.LockOSThread()

	if err = glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	r.window, err = glfw.CreateWindow(int(r.options.FrameW), int(r.options.FrameH), windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("could not create opengl window: %s", err.Error())
	}
	r.window.MakeContextCurrent()

	if r.options.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err = gl.Init(); err != nil {
		return fmt.Errorf("could not init opengl: %s", err.Error())
	}

	info := opengl.GetDeviceInfo()
	r.logger.Infof("using %s (%s)", info.Renderer, info.Version)
	if !info.SupportsKernel() {
		r.logger.Warningf("device may not support the tracing kernel:\n%s", info)
	}

	// On high-DPI displays the framebuffer is larger than the window.
	fbW, fbH := r.window.GetFramebufferSize()

	r.tracer = opengl.NewTracer("opengl", r.options.Shaders)
	err = r.tracer.Init(uint32(fbW), uint32(fbH))
	if err != nil {
		return err
	}
	r.tracer.UpdateState(tracer.SceneData, r.buffers)
	r.logger.Debugf("scene buffers:\n%s", r.buffers.Stats())

	// Bind event callbacks
	r.window.SetKeyCallback(r.onKeyEvent)
	r.window.SetCursorPosCallback(r.onCursorPosEvent)
	r.window.SetFramebufferSizeCallback(r.onFramebufferSizeEvent)
	r.setCursorLock(true)

	return nil
}

// Run the interactive render loop until the window is closed.
func (r *interactiveGLRenderer) Render() error {
	lastTime := glfw.GetTime()
	for !r.window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		start := time.Now()
		if r.cursorLocked {
			r.pollMovementKeys()
			ApplyInput(r.camera, &r.input, &r.options, dt)
		} else {
			r.input.Reset()
		}
		r.tracer.UpdateState(tracer.CameraData, r.camera.DeriveUniformBlock())

		err := r.tracer.Trace(&tracer.FrameRequest{
			Seed:            r.seeds.Next(),
			SamplesPerPixel: r.options.SamplesPerPixel,
			MaxDepth:        r.options.MaxDepth,
		})
		if err != nil {
			return err
		}

		err = r.tracer.Present()
		if err != nil {
			return err
		}

		r.window.SwapBuffers()
		r.stats.record(time.Since(start))

		if r.fps.update(dt) {
			r.window.SetTitle(r.overlayTitle())
		}
	}

	return nil
}

func (r *interactiveGLRenderer) Close() {
	if r.tracer != nil {
		r.stats.SceneUploads = r.tracer.Stats().SceneUploads
		r.tracer.Close()
		r.tracer = nil
	}
	if r.window != nil {
		r.window.Destroy()
		r.window = nil
	}
	glfw.Terminate()
}

func (r *interactiveGLRenderer) Stats() FrameStats {
	stats := r.stats
	if r.tracer != nil {
		stats.SceneUploads = r.tracer.Stats().SceneUploads
	}
	return stats
}

func (r *interactiveGLRenderer) overlayTitle() string {
	return fmt.Sprintf(
		"%s | %.1f fps | %d spp | depth %d",
		windowTitle, r.fps.fps, r.options.SamplesPerPixel, r.options.MaxDepth,
	)
}

func (r *interactiveGLRenderer) pollMovementKeys() {
	for key, dir := range movementKeys {
		r.input.SetMoving(dir, r.window.GetKey(key) == glfw.Press)
	}
}

// Lock the cursor to the window for mouse look or release it.
func (r *interactiveGLRenderer) setCursorLock(locked bool) {
	r.cursorLocked = locked
	if !locked {
		r.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return
	}

	// Recenter so that locking does not produce a large jump.
	w, h := r.window.GetSize()
	r.window.SetCursorPos(float64(w)/2, float64(h)/2)
	r.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	r.lastCursorPos = types.XY(float32(w)/2, float32(h)/2)
	r.input.Reset()
}

func (r *interactiveGLRenderer) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyEscape:
		r.window.SetShouldClose(true)
	case glfw.KeyGraveAccent:
		if action == glfw.Press {
			r.setCursorLock(!r.cursorLocked)
		}
	case glfw.KeyLeftBracket:
		r.options.SamplesPerPixel = stepClamped(r.options.SamplesPerPixel, -1, tracer.MinSamplesPerPixel, tracer.MaxSamplesPerPixel)
	case glfw.KeyRightBracket:
		r.options.SamplesPerPixel = stepClamped(r.options.SamplesPerPixel, 1, tracer.MinSamplesPerPixel, tracer.MaxSamplesPerPixel)
	case glfw.KeyMinus:
		r.options.MaxDepth = stepClamped(r.options.MaxDepth, -1, tracer.MinDepth, tracer.MaxDepth)
	case glfw.KeyEqual:
		r.options.MaxDepth = stepClamped(r.options.MaxDepth, 1, tracer.MinDepth, tracer.MaxDepth)
	default:
		return
	}

	r.window.SetTitle(r.overlayTitle())
}

func (r *interactiveGLRenderer) onCursorPosEvent(w *glfw.Window, xPos, yPos float64) {
	newPos := types.XY(float32(xPos), float32(yPos))
	delta := newPos.Sub(r.lastCursorPos)
	r.lastCursorPos = newPos

	if !r.cursorLocked {
		return
	}

	// Window y coordinates grow downwards.
	r.input.AddMouseDelta(delta[0], -delta[1])
}

func (r *interactiveGLRenderer) onFramebufferSizeEvent(w *glfw.Window, width, height int) {
	// Minimized windows report a zero sized framebuffer.
	if width <= 0 || height <= 0 {
		return
	}

	r.logger.Debugf("framebuffer resized to %dx%d", width, height)
	r.tracer.UpdateState(tracer.FrameDimensions, opengl.FrameDims{W: uint32(width), H: uint32(height)})
}
