package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the set of camera commands the controller drives.
type Camera interface {
	MoveForward()
	MoveBackward()
	MoveLeft()
	MoveRight()
	MoveUp()
	MoveDown()
	Dolly(steps int, scale float32)
	Pitch(angle int)
	Yaw(angle int)
	RotateAroundWorldY(angle int)
	ZoomIn()
	ZoomOut()
	Reset()
	UpdateWindowSize(width, height int)
	MovingState() bool
	SetMovingState(moving bool)
	Position() mgl32.Vec3
}

// Hooks are the side effects a controller may trigger outside the camera.
type Hooks struct {
	// Quit is called for ActionQuit.
	Quit func()
	// PrintPosition receives the eye position for ActionPrintPosition.
	PrintPosition func(pos mgl32.Vec3)
	// Viewport is called after a resize with the new framebuffer size.
	Viewport func(width, height int)
}

// Controller translates window events into camera commands.
// It is not safe for concurrent use; callbacks arrive on the render thread.
type Controller struct {
	cam        Camera
	scheme     Scheme
	dollyScale float32
	hooks      Hooks

	anchorX, anchorY int
}

// NewController returns a controller for cam. dollyScale converts a pixel of
// vertical drag into move steps in the orbit scheme.
func NewController(cam Camera, scheme Scheme, dollyScale float32, hooks Hooks) *Controller {
	return &Controller{
		cam:        cam,
		scheme:     scheme,
		dollyScale: dollyScale,
		hooks:      hooks,
	}
}

// Scheme returns the active control scheme.
func (c *Controller) Scheme() Scheme {
	return c.scheme
}

// HandleAction runs one logical action. Unknown actions are ignored.
func (c *Controller) HandleAction(a Action) {
	switch a {
	case ActionMoveForward:
		c.cam.MoveForward()
	case ActionMoveBackward:
		c.cam.MoveBackward()
	case ActionMoveLeft:
		c.cam.MoveLeft()
	case ActionMoveRight:
		c.cam.MoveRight()
	case ActionMoveUp:
		c.cam.MoveUp()
	case ActionMoveDown:
		c.cam.MoveDown()
	case ActionResetCamera:
		c.cam.Reset()
	case ActionPrintPosition:
		if c.hooks.PrintPosition != nil {
			c.hooks.PrintPosition(c.cam.Position())
		}
	case ActionQuit:
		if c.hooks.Quit != nil {
			c.hooks.Quit()
		}
	}
}

// MouseButton records the drag anchor on left press and toggles the moving state.
func (c *Controller) MouseButton(b Button, pressed bool, x, y float64) {
	if b != ButtonLeft {
		return
	}
	if pressed {
		c.anchorX, c.anchorY = round(x), round(y)
	}
	c.cam.SetMovingState(pressed)
}

// CursorMoved applies the drag since the previous cursor event.
func (c *Controller) CursorMoved(x, y float64, rightHeld bool) {
	if !c.cam.MovingState() {
		return
	}
	px, py := round(x), round(y)
	dx := px - c.anchorX
	dy := py - c.anchorY

	switch c.scheme {
	case SchemeOrbit:
		c.cam.Dolly(-dy, c.dollyScale)
		c.cam.RotateAroundWorldY(-dx)
		if rightHeld {
			c.cam.Pitch(-dy)
		}
	default:
		c.cam.Pitch(dy)
		c.cam.Yaw(dx)
	}

	// Per-event deltas: the anchor follows the cursor instead of staying at the press point.
	c.anchorX, c.anchorY = px, py
}

// Scroll zooms in on a non-negative vertical offset and out otherwise.
func (c *Controller) Scroll(yoffset float64) {
	if yoffset >= 0 {
		c.cam.ZoomIn()
	} else {
		c.cam.ZoomOut()
	}
}

// Resize updates the camera aspect ratio and the viewport.
func (c *Controller) Resize(width, height int) {
	c.cam.UpdateWindowSize(width, height)
	if c.hooks.Viewport != nil {
		c.hooks.Viewport(width, height)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
