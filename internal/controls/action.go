package controls

import (
	"fmt"
	"strings"
)

// Action represents a logical camera command, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionResetCamera
	ActionPrintPosition
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveForward:   "move_forward",
	ActionMoveBackward:  "move_backward",
	ActionMoveLeft:      "move_left",
	ActionMoveRight:     "move_right",
	ActionMoveUp:        "move_up",
	ActionMoveDown:      "move_down",
	ActionResetCamera:   "reset_camera",
	ActionPrintPosition: "print_position",
	ActionQuit:          "quit",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction resolves a config name such as "move_forward".
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range actionNames {
		if s == n {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Button is a mouse button, decoupled from the windowing library.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Scheme selects how mouse drags steer the camera.
type Scheme int

const (
	// SchemeLook pitches and yaws around the camera's own axes.
	SchemeLook Scheme = iota
	// SchemeOrbit dollies on vertical drag and spins around world Y on
	// horizontal drag; holding the right button also pitches.
	SchemeOrbit
)

func (s Scheme) String() string {
	switch s {
	case SchemeLook:
		return "look"
	case SchemeOrbit:
		return "orbit"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme resolves "look" or "orbit".
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "look", "":
		return SchemeLook, nil
	case "orbit":
		return SchemeOrbit, nil
	}
	return 0, fmt.Errorf("unknown control scheme %q", name)
}
