package input

import (
	"fmt"
	"strings"

	"cube-mapping/internal/controls"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputManager maps physical keys and mouse buttons to logical controls.
// It is only touched from glfw callbacks on the main thread.
type InputManager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]controls.Action
}

// NewInputManager creates an InputManager with the default key bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]controls.Action),
	}

	im.BindKey(glfw.KeyUp, controls.ActionMoveForward)
	im.BindKey(glfw.KeyDown, controls.ActionMoveBackward)
	im.BindKey(glfw.KeyLeft, controls.ActionMoveLeft)
	im.BindKey(glfw.KeyRight, controls.ActionMoveRight)
	im.BindKey(glfw.KeyW, controls.ActionMoveUp)
	im.BindKey(glfw.KeyS, controls.ActionMoveDown)
	im.BindKey(glfw.KeyI, controls.ActionResetCamera)
	im.BindKey(glfw.KeyP, controls.ActionPrintPosition)
	im.BindKey(glfw.KeyQ, controls.ActionQuit)
	im.BindKey(glfw.KeyEscape, controls.ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action (e.g. Q and Escape).
func (im *InputManager) BindKey(key glfw.Key, action controls.Action) {
	if action < 0 || action >= controls.ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindAction removes action from every key.
func (im *InputManager) UnbindAction(action controls.Action) {
	for key, actions := range im.keyToActions {
		kept := actions[:0]
		for _, a := range actions {
			if a != action {
				kept = append(kept, a)
			}
		}
		if len(kept) == 0 {
			delete(im.keyToActions, key)
		} else {
			im.keyToActions[key] = kept
		}
	}
}

// ApplyBindings replaces the keys of every action named in bindings.
func (im *InputManager) ApplyBindings(bindings map[string][]string) error {
	for name, keys := range bindings {
		action, err := controls.ParseAction(name)
		if err != nil {
			return err
		}
		parsed := make([]glfw.Key, 0, len(keys))
		for _, k := range keys {
			key, err := ParseKey(k)
			if err != nil {
				return fmt.Errorf("binding %s: %w", name, err)
			}
			parsed = append(parsed, key)
		}
		im.UnbindAction(action)
		for _, key := range parsed {
			im.BindKey(key, action)
		}
	}
	return nil
}

// HandleKeyEvent dispatches the actions bound to key on a press.
// Repeats and releases are ignored.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action, dispatch func(controls.Action)) {
	if action != glfw.Press {
		return
	}
	for _, act := range im.keyToActions[key] {
		dispatch(act)
	}
}

// MouseButton converts a glfw mouse button. ok is false for buttons the
// controls do not use.
func MouseButton(b glfw.MouseButton) (controls.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return controls.ButtonLeft, true
	case glfw.MouseButtonRight:
		return controls.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return controls.ButtonMiddle, true
	}
	return 0, false
}

var namedKeys = map[string]glfw.Key{
	"UP":        glfw.KeyUp,
	"DOWN":      glfw.KeyDown,
	"LEFT":      glfw.KeyLeft,
	"RIGHT":     glfw.KeyRight,
	"ESCAPE":    glfw.KeyEscape,
	"ESC":       glfw.KeyEscape,
	"SPACE":     glfw.KeySpace,
	"ENTER":     glfw.KeyEnter,
	"TAB":       glfw.KeyTab,
	"BACKSPACE": glfw.KeyBackspace,
	"HOME":      glfw.KeyHome,
	"END":       glfw.KeyEnd,
	"PAGEUP":    glfw.KeyPageUp,
	"PAGEDOWN":  glfw.KeyPageDown,
}

// ParseKey resolves a key name: a letter, a digit, F1-F12, or one of the
// names in namedKeys. Case does not matter.
func ParseKey(name string) (glfw.Key, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if k, ok := namedKeys[n]; ok {
		return k, nil
	}
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return glfw.KeyA + glfw.Key(c-'A'), nil
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}
	var f int
	if _, err := fmt.Sscanf(n, "F%d", &f); err == nil && f >= 1 && f <= 12 && n == fmt.Sprintf("F%d", f) {
		return glfw.KeyF1 + glfw.Key(f-1), nil
	}
	return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
}
