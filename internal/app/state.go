package app

// State is the lifecycle state of an App.
type State int

const (
	// StateRunning means the window is open and GPU resources are live.
	StateRunning State = iota
	// StateClosed means the window and GPU resources have been released.
	// Play starts over from here.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}
