package picker

import "fmt"

// State is the lifecycle state of a Controller
type State int

const (
	StateIdle State = iota
	StateReady
	StateDragging
	StateConfirmed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateDragging:
		return "dragging"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Target is the control a drag or a keyboard nudge acts on
type Target int

const (
	TargetNone Target = iota
	TargetWheel
	TargetSaturation
	TargetLightness
)

func (t Target) String() string {
	switch t {
	case TargetNone:
		return "none"
	case TargetWheel:
		return "wheel"
	case TargetSaturation:
		return "saturation"
	case TargetLightness:
		return "lightness"
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// ContractError is the panic value raised when the host calls an operation
// the current state does not allow
type ContractError struct {
	Op    string
	State State
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("picker: %s is not allowed in state %s", e.Op, e.State)
}
