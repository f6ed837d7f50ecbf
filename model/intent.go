package model

type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionRotate
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionRotate:
		return "rotate"
	default:
		return "none"
	}
}

// Intent is the single player action for one frame. Forward is read only for
// ActionMove and Clockwise only for ActionRotate.
type Intent struct {
	Action    Action
	Forward   bool
	Clockwise bool
}

func MoveIntent(forward bool) Intent {
	return Intent{Action: ActionMove, Forward: forward}
}

func RotateIntent(clockwise bool) Intent {
	return Intent{Action: ActionRotate, Clockwise: clockwise}
}

// Input is the held state of the movement keys sampled once per frame.
type Input struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
}

// IntentFor derives this frame's intent from a fresh input snapshot. Moving
// wins over turning, and opposite keys held together cancel out.
func IntentFor(in Input) Intent {
	switch {
	case in.Forward != in.Backward:
		return MoveIntent(in.Forward)
	case in.TurnLeft != in.TurnRight:
		return RotateIntent(in.TurnRight)
	default:
		return Intent{}
	}
}

// Apply performs at most one mutation for the frame.
func (p *Player) Apply(g *Grid, dt float64, in Intent) {
	switch in.Action {
	case ActionMove:
		p.Move(g, dt, in.Forward)
	case ActionRotate:
		p.Rotate(dt, in.Clockwise)
	}
}
