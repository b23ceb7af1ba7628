// Package plan implements the per-cycle energy management plan: a
// time-ordered collection of device-agnostic control instructions with a
// derived validity window and temporal and device-scoped queries.
//
// A Plan is created once per management cycle, filled incrementally with
// AddInstruction, and cleared at the next cycle boundary. It is not safe
// for concurrent use; the cycle owning a plan must hold exclusive access.
package plan

import (
	"sort"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// ControlInstruction is a paradigm-agnostic device command produced by
// the scheduling layer. Exactly one of Power, FillLevel, or Enable is
// typically set, depending on the control paradigm that produced it.
type ControlInstruction struct {
	ControlID s2.ID `json:"control_id"`

	// TargetDevice identifies the device the instruction applies to.
	TargetDevice string `json:"target_device"`

	Quantity s2.CommodityQuantity `json:"commodity_quantity"`

	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`

	// Power is the power setpoint in Watt, for power-based control.
	Power *float64 `json:"power,omitempty"`

	// FillLevel is the target fill level, for storage-based control.
	FillLevel *float64 `json:"fill_level,omitempty"`

	// Enable switches the device on or off, for on/off control.
	Enable *bool `json:"enable,omitempty"`
}

// IsPowerControl reports whether the instruction carries a power
// setpoint.
func (in ControlInstruction) IsPowerControl() bool { return in.Power != nil }

// IsFillLevelControl reports whether the instruction carries a fill
// level target.
func (in ControlInstruction) IsFillLevelControl() bool { return in.FillLevel != nil }

// IsEnableDisable reports whether the instruction switches the device on
// or off.
func (in ControlInstruction) IsEnableDisable() bool { return in.Enable != nil }

// EndTime returns the instant the instruction stops applying.
func (in ControlInstruction) EndTime() time.Time {
	return in.StartTime.Add(in.Duration)
}

// ActiveAt reports whether the instruction applies at the given instant:
// start time inclusive, end time exclusive.
func (in ControlInstruction) ActiveAt(at time.Time) bool {
	return !in.StartTime.After(at) && at.Before(in.EndTime())
}

// Plan is the per-cycle container of control instructions. Instructions
// are kept sorted ascending by start time; the validity window is
// recomputed after every mutation.
type Plan struct {
	// ID is unique per management cycle.
	ID s2.ID `json:"plan_id"`

	// GeneratedAt is when the plan was created.
	GeneratedAt time.Time `json:"generated_at"`

	// Comment is free-form diagnostic text.
	Comment string `json:"comment,omitempty"`

	validFrom    time.Time
	validUntil   time.Time
	instructions []ControlInstruction

	// now is the clock used when a query gets no explicit instant.
	now func() time.Time
}

// NewPlan returns an empty plan. The validity window starts collapsed at
// the creation instant.
func NewPlan(id s2.ID) *Plan {
	now := time.Now()
	return &Plan{
		ID:          id,
		GeneratedAt: now,
		validFrom:   now,
		validUntil:  now,
		now:         time.Now,
	}
}

// SetClock replaces the wall clock used for queries without an explicit
// instant. Tests use this to pin time.
func (p *Plan) SetClock(clock func() time.Time) {
	p.now = clock
}

// AddInstruction appends an instruction, re-sorts the list ascending by
// start time (stable, ties keep insertion order), and recomputes the
// validity window. Duplicate control IDs are permitted.
func (p *Plan) AddInstruction(in ControlInstruction) {
	p.instructions = append(p.instructions, in)
	sort.SliceStable(p.instructions, func(i, j int) bool {
		return p.instructions[i].StartTime.Before(p.instructions[j].StartTime)
	})
	p.recomputeWindow()
}

// Clear empties the plan and collapses the validity window to the
// current instant.
func (p *Plan) Clear() {
	p.instructions = nil
	now := p.now()
	p.validFrom = now
	p.validUntil = now
}

// recomputeWindow derives validFrom and validUntil from the contained
// instructions: earliest start to latest end.
func (p *Plan) recomputeWindow() {
	if len(p.instructions) == 0 {
		now := p.now()
		p.validFrom = now
		p.validUntil = now
		return
	}
	from := p.instructions[0].StartTime
	until := p.instructions[0].EndTime()
	for _, in := range p.instructions[1:] {
		if in.StartTime.Before(from) {
			from = in.StartTime
		}
		if in.EndTime().After(until) {
			until = in.EndTime()
		}
	}
	p.validFrom = from
	p.validUntil = until
}

// ValidFrom returns the earliest instruction start, or the last mutation
// instant for an empty plan.
func (p *Plan) ValidFrom() time.Time { return p.validFrom }

// ValidUntil returns the latest instruction end, or the last mutation
// instant for an empty plan.
func (p *Plan) ValidUntil() time.Time { return p.validUntil }

// Len returns the number of contained instructions.
func (p *Plan) Len() int { return len(p.instructions) }

// Instructions returns a copy of the instruction list in plan order.
func (p *Plan) Instructions() []ControlInstruction {
	if len(p.instructions) == 0 {
		return nil
	}
	out := make([]ControlInstruction, len(p.instructions))
	copy(out, p.instructions)
	return out
}

// ActiveInstructions returns the instructions applying at the given
// instant, in plan order, or nil when none apply. The zero time means
// "now".
func (p *Plan) ActiveInstructions(at time.Time) []ControlInstruction {
	if at.IsZero() {
		at = p.now()
	}
	var active []ControlInstruction
	for _, in := range p.instructions {
		if in.ActiveAt(at) {
			active = append(active, in)
		}
	}
	return active
}

// NextInstruction returns the instruction with the earliest start time
// strictly after the given instant. Ties keep insertion order. The zero
// time means "now"; the second return is false when nothing is upcoming.
func (p *Plan) NextInstruction(at time.Time) (ControlInstruction, bool) {
	if at.IsZero() {
		at = p.now()
	}
	for _, in := range p.instructions {
		if in.StartTime.After(at) {
			return in, true
		}
	}
	return ControlInstruction{}, false
}

// InstructionsForDevice returns the instructions targeting the given
// device, in plan order.
func (p *Plan) InstructionsForDevice(device string) []ControlInstruction {
	var out []ControlInstruction
	for _, in := range p.instructions {
		if in.TargetDevice == device {
			out = append(out, in)
		}
	}
	return out
}
