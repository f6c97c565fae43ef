// Package app owns the window and drives the render loop.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cube-mapping/internal/camera"
	"cube-mapping/internal/config"
	"cube-mapping/internal/console"
	"cube-mapping/internal/controls"
	"cube-mapping/internal/graphics"
	"cube-mapping/internal/graphics/renderables/cube"
	renderer "cube-mapping/internal/graphics/renderer"
	"cube-mapping/internal/input"
	"cube-mapping/internal/profiling"
	"cube-mapping/internal/texture"
	"cube-mapping/internal/texture/video"
	"cube-mapping/internal/watch"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var clearColor = mgl32.Vec4{1, 1, 1, 1}

// App runs the cube-mapping viewer. All methods must be called from the
// main OS thread.
type App struct {
	cfg     config.Config
	logger  *slog.Logger
	console *console.Console

	state State

	window       *glfw.Window
	camera       *camera.Camera
	controller   *controls.Controller
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	cube         *cube.Cube
	watcher      *watch.Watcher

	frames  *profiling.FrameCounter
	limiter *FPSLimiter
}

// New initializes glfw, opens the window and uploads the cube. On error
// glfw is terminated again.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize glfw: %w", err)
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		console: console.New(os.Stdout),
		state:   StateClosed,
	}
	if err := a.initialize(); err != nil {
		glfw.Terminate()
		return nil, err
	}
	return a, nil
}

// State reports whether the window is live.
func (a *App) State() State {
	return a.state
}

func (a *App) initialize() error {
	window, err := setupWindow(a.cfg.Window)
	if err != nil {
		return err
	}
	a.window = window

	a.camera = camera.New(a.cfg.CameraParams())

	a.inputManager = input.NewInputManager()
	if err := a.inputManager.ApplyBindings(a.cfg.Controls.Bindings); err != nil {
		a.window.Destroy()
		return fmt.Errorf("key bindings: %w", err)
	}

	dir, ext := a.cfg.TextureSet()
	a.cube = cube.NewCube(a.cfg.Cube.HalfLength, mgl32.Vec4(a.cfg.Cube.Color), a.cfg.Cube.ShaderDir, a.opener(dir, ext), a.logger)
	a.renderer, err = renderer.NewRenderer(clearColor, a.cube)
	if err != nil {
		a.window.Destroy()
		return err
	}

	a.controller = controls.NewController(a.camera, a.cfg.Scheme(), a.cfg.Controls.DollyScale, a.hooks())
	a.setupInputHandlers()

	fbw, fbh := a.window.GetFramebufferSize()
	a.controller.Resize(fbw, fbh)

	a.console.Banner(append(graphics.Info(),
		console.Field{Label: "Textures", Value: filepath.Join(dir, "*"+ext)},
		console.Field{Label: "Controls", Value: a.controller.Scheme().String()},
	))

	if a.cfg.Textures.Watch && !a.cfg.Textures.Video {
		a.watcher, err = watch.New(dir, func(name string) bool {
			return strings.EqualFold(filepath.Ext(name), ext)
		}, a.logger)
		if err != nil {
			// Reloading is a convenience; keep running without it.
			a.logger.Warn("texture watch disabled", "dir", dir, "err", err)
			a.watcher = nil
		}
	}

	a.frames = profiling.NewFrameCounter(time.Second, time.Now())
	if a.cfg.Window.VSync {
		a.limiter = NewFPSLimiter(0)
	} else {
		a.limiter = NewFPSLimiter(a.cfg.Window.FPSLimit)
	}
	a.state = StateRunning
	a.logger.Info("initialized", "width", fbw, "height", fbh, "textures", dir)
	return nil
}

func (a *App) opener(dir, ext string) cube.Opener {
	if a.cfg.Textures.Video {
		return func() (*texture.Cube, error) { return video.OpenCube(dir, ext) }
	}
	return func() (*texture.Cube, error) { return texture.OpenImages(dir, ext) }
}

// Play runs the render loop until the window is asked to close, then
// releases the window and GPU resources. Calling Play again after that
// opens a fresh window.
func (a *App) Play() error {
	if a.state == StateClosed {
		if err := a.initialize(); err != nil {
			return err
		}
	}

	for !a.window.ShouldClose() {
		a.tick()
	}

	a.shutdown()
	return nil
}

func (a *App) tick() {
	profiling.ResetFrame()

	if a.watcher != nil && a.watcher.Pending() {
		a.reload()
	}

	func() { defer profiling.Track("renderer.Render")(); a.renderer.Render(a.camera) }()
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if fps, ok := a.frames.Tick(time.Now()); ok {
		a.logger.Debug("frame",
			"fps", fmt.Sprintf("%.1f", fps),
			"render", profiling.FormatMs(profiling.SumWithPrefix("renderer.")),
			"glfw", profiling.FormatMs(profiling.SumWithPrefix("glfw.")),
			"top", profiling.TopN(3),
		)
	}

	a.limiter.Wait()
}

func (a *App) reload() {
	defer profiling.Track("texture.Reload")()
	if err := a.cube.Reload(); err != nil {
		a.logger.Error("reload textures", "err", err)
		return
	}
	a.logger.Info("textures reloaded")
}

func (a *App) shutdown() {
	if a.state == StateClosed {
		return
	}
	if err := a.Close(); err != nil {
		a.logger.Warn("close watcher", "err", err)
	}
	a.renderer.Dispose()
	a.window.Destroy()
	a.window = nil
	a.state = StateClosed
	a.logger.Info("closed")
}

// Close stops the texture watcher. It may be called more than once.
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// Terminate releases the window if it is still open and shuts down glfw.
func (a *App) Terminate() {
	a.shutdown()
	glfw.Terminate()
}
