package s2

import "time"

// InstructionStatus is the lifecycle state of a dispatched control
// instruction.
type InstructionStatus string

const (
	// InstructionNew marks a freshly created instruction.
	InstructionNew InstructionStatus = "NEW"

	// InstructionAccepted marks an instruction the device agreed to execute.
	InstructionAccepted InstructionStatus = "ACCEPTED"

	// InstructionRejected marks a device-side refusal. Terminal.
	InstructionRejected InstructionStatus = "REJECTED"

	// InstructionRevoked marks a CEC-side cancellation. Terminal.
	InstructionRevoked InstructionStatus = "REVOKED"

	// InstructionStarted marks an instruction under execution.
	InstructionStarted InstructionStatus = "STARTED"

	// InstructionSucceeded marks successful completion. Terminal.
	InstructionSucceeded InstructionStatus = "SUCCEEDED"

	// InstructionAborted marks a device-side execution failure. Terminal.
	InstructionAborted InstructionStatus = "ABORTED"
)

// IsValid returns true for a known status.
func (s InstructionStatus) IsValid() bool {
	switch s {
	case InstructionNew, InstructionAccepted, InstructionRejected,
		InstructionRevoked, InstructionStarted, InstructionSucceeded,
		InstructionAborted:
		return true
	}
	return false
}

// IsTerminal returns true if no further status updates are allowed.
func (s InstructionStatus) IsTerminal() bool {
	switch s {
	case InstructionRejected, InstructionSucceeded, InstructionAborted,
		InstructionRevoked:
		return true
	}
	return false
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle step.
func (s InstructionStatus) CanTransitionTo(next InstructionStatus) bool {
	switch s {
	case InstructionNew:
		return next == InstructionAccepted || next == InstructionRejected
	case InstructionAccepted:
		return next == InstructionStarted || next == InstructionRevoked
	case InstructionStarted:
		return next == InstructionSucceeded || next == InstructionAborted ||
			next == InstructionRevoked
	}
	return false
}

// InstructionStatusUpdate advances the lifecycle of one instruction. It is
// advisory data reported by the simulation side, not an RPC; no response
// is modeled.
type InstructionStatusUpdate struct {
	// InstructionID is the instruction ID as issued by the CEC.
	InstructionID ID `json:"instruction_id"`

	// Status is the present status of the instruction.
	Status InstructionStatus `json:"status_type"`

	// Timestamp is when the status last changed.
	Timestamp time.Time `json:"timestamp"`
}
