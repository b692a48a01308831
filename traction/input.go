package traction

import (
	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/vmath"
)

// Input is one tick's worth of commands
// Pressed/Released fields are edges; Move applies to the tick that consumes it, Aim persists until replaced
type Input struct {
	GripPressed    bool
	GripReleased   bool
	JumpPressed    bool
	ChargePressed  bool
	ChargeReleased bool

	// Move is the desired climb direction in world space; magnitude above 1 is clamped
	// Resubmit every tick to keep climbing
	Move vmath.Vec3F

	// Aim is the sweep direction for surface grips; zero keeps the previous aim
	Aim vmath.Vec3F
}

// merge folds a later submission into pending input so no edge is lost between ticks
func (in *Input) merge(next Input) {
	in.GripPressed = in.GripPressed || next.GripPressed
	in.GripReleased = in.GripReleased || next.GripReleased
	in.JumpPressed = in.JumpPressed || next.JumpPressed
	in.ChargePressed = in.ChargePressed || next.ChargePressed
	in.ChargeReleased = in.ChargeReleased || next.ChargeReleased
	in.Move = next.Move
	if !vmath.V3FIsZero(next.Aim) {
		in.Aim = next.Aim
	}
}

// State is the attachment state
type State uint8

const (
	StateDetached State = iota
	StateAttached
)

func (s State) String() string {
	if s == StateAttached {
		return "attached"
	}
	return "detached"
}

// Code classifies a command outcome
type Code uint8

const (
	// ResultNone means the command was not issued this tick
	ResultNone Code = iota
	ResultOK
	ResultGripFailed
	ResultAttackDenied
	ResultInvalidTransition
)

func (c Code) String() string {
	switch c {
	case ResultNone:
		return "none"
	case ResultOK:
		return "ok"
	case ResultGripFailed:
		return "grip_failed"
	case ResultAttackDenied:
		return "attack_denied"
	case ResultInvalidTransition:
		return "invalid_transition"
	default:
		return "unknown"
	}
}

// Result is the outcome of one command; denials are values, never errors
type Result struct {
	Code   Code
	Reason event.DenyReason
}

// OK reports a command that took effect
func (r Result) OK() bool {
	return r.Code == ResultOK
}

func ok() Result {
	return Result{Code: ResultOK}
}

func deny(code Code, reason event.DenyReason) Result {
	return Result{Code: code, Reason: reason}
}

// AttackReport describes a charge resolved this tick
type AttackReport struct {
	Resolved      bool
	ChargePercent float64
	Damage        float64
	Dealt         float64
	StaminaCost   float64
}

// Report collects the outcomes of one Update
type Report struct {
	Grip          Result
	Release       Result
	Jump          Result
	Charge        Result
	ChargeRelease Result
	Attack        AttackReport

	// Detached is set when any detach path ran this tick
	Detached     bool
	DetachReason event.DetachReason
}
