package app

import (
	"cube-mapping/internal/controls"
	"cube-mapping/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func (a *App) setupInputHandlers() {
	a.window.SetKeyCallback(a.onKey)
	a.window.SetMouseButtonCallback(a.onMouseButton)
	a.window.SetCursorPosCallback(a.onCursorPos)
	a.window.SetScrollCallback(a.onScroll)
	a.window.SetFramebufferSizeCallback(a.onFramebufferSize)
}

func (a *App) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	a.inputManager.HandleKeyEvent(key, action, a.controller.HandleAction)
}

func (a *App) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := input.MouseButton(button)
	if !ok || action == glfw.Repeat {
		return
	}
	x, y := w.GetCursorPos()
	a.controller.MouseButton(b, action == glfw.Press, x, y)
}

func (a *App) onCursorPos(w *glfw.Window, xpos, ypos float64) {
	rightHeld := w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press
	a.controller.CursorMoved(xpos, ypos, rightHeld)
}

func (a *App) onScroll(w *glfw.Window, xoff, yoff float64) {
	a.controller.Scroll(yoff)
}

// Framebuffer size drives both the viewport and the aspect ratio; on HiDPI
// displays it differs from the window size.
func (a *App) onFramebufferSize(w *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.controller.Resize(width, height)
}

func (a *App) hooks() controls.Hooks {
	return controls.Hooks{
		Quit:          func() { a.window.SetShouldClose(true) },
		PrintPosition: a.console.Position,
		Viewport:      a.renderer.SetViewport,
	}
}
