// Package simulation defines the device-side contract of the protocol: a
// Resource Simulation receives control type activations and paradigm
// instructions from the CEC and reports instruction progress back through
// status updates.
//
// Concrete simulations embed UnimplementedSimulation and override the
// operations for the paradigms they support. The package also provides
// Tracker, a state machine guarding the instruction lifecycle against
// out-of-order status updates.
package simulation

import (
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/ddbc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/frbc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/ombc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/pebc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/ppbc"
)

// InstructionKind identifies the concrete paradigm instruction carried by
// an Instruction value.
type InstructionKind string

const (
	KindPEBC                  InstructionKind = "PEBC"
	KindPPBCSchedule          InstructionKind = "PPBC_SCHEDULE"
	KindPPBCStartInterruption InstructionKind = "PPBC_START_INTERRUPTION"
	KindPPBCEndInterruption   InstructionKind = "PPBC_END_INTERRUPTION"
	KindOMBC                  InstructionKind = "OMBC"
	KindFRBC                  InstructionKind = "FRBC"
	KindDDBC                  InstructionKind = "DDBC"
)

// Instruction is one paradigm instruction sent from the CEC to a
// simulation. The set of implementations is closed; type-switch on the
// concrete wrapper to dispatch.
type Instruction interface {
	Kind() InstructionKind

	// ID is the instruction identifier used in status updates and
	// revocations.
	ID() s2.ID

	// ExecutionTime is when the instruction should take effect.
	ExecutionTime() time.Time
}

// PEBCInstruction wraps a power envelope instruction.
type PEBCInstruction struct {
	Instruction pebc.Instruction
}

// PPBCScheduleInstruction wraps a sequence scheduling instruction.
type PPBCScheduleInstruction struct {
	Instruction ppbc.ScheduleInstruction
}

// PPBCStartInterruptionInstruction wraps a sequence interruption.
type PPBCStartInterruptionInstruction struct {
	Instruction ppbc.StartInterruptionInstruction
}

// PPBCEndInterruptionInstruction wraps a sequence resumption.
type PPBCEndInterruptionInstruction struct {
	Instruction ppbc.EndInterruptionInstruction
}

// OMBCInstruction wraps an operation mode activation.
type OMBCInstruction struct {
	Instruction ombc.Instruction
}

// FRBCInstruction wraps a fill rate actuator instruction.
type FRBCInstruction struct {
	Instruction frbc.Instruction
}

// DDBCInstruction wraps a demand driven actuator instruction.
type DDBCInstruction struct {
	Instruction ddbc.Instruction
}

func (in PEBCInstruction) Kind() InstructionKind { return KindPEBC }
func (in PEBCInstruction) ID() s2.ID { return in.Instruction.ID }
func (in PEBCInstruction) ExecutionTime() time.Time {
	return in.Instruction.ExecutionTime
}

func (in PPBCScheduleInstruction) Kind() InstructionKind { return KindPPBCSchedule }
func (in PPBCScheduleInstruction) ID() s2.ID { return in.Instruction.ID }
func (in PPBCScheduleInstruction) ExecutionTime() time.Time {
	return in.Instruction.ExecutionTime
}

func (in PPBCStartInterruptionInstruction) Kind() InstructionKind { return KindPPBCStartInterruption }
func (in PPBCStartInterruptionInstruction) ID() s2.ID { return in.Instruction.ID }
func (in PPBCStartInterruptionInstruction) ExecutionTime() time.Time {
	return in.Instruction.ExecutionTime
}

func (in PPBCEndInterruptionInstruction) Kind() InstructionKind { return KindPPBCEndInterruption }
func (in PPBCEndInterruptionInstruction) ID() s2.ID { return in.Instruction.ID }
func (in PPBCEndInterruptionInstruction) ExecutionTime() time.Time {
	return in.Instruction.ExecutionTime
}

func (in OMBCInstruction) Kind() InstructionKind { return KindOMBC }
func (in OMBCInstruction) ID() s2.ID { return in.Instruction.ID }
func (in OMBCInstruction) ExecutionTime() time.Time {
	return in.Instruction.ExecutionTime
}

func (in FRBCInstruction) Kind() InstructionKind { return KindFRBC }
func (in FRBCInstruction) ID() s2.ID { return in.Instruction.ID }
func (in FRBCInstruction) ExecutionTime() time.Time {
	return in.Instruction.ExecutionTime
}

func (in DDBCInstruction) Kind() InstructionKind { return KindDDBC }
func (in DDBCInstruction) ID() s2.ID { return in.Instruction.ID }
func (in DDBCInstruction) ExecutionTime() time.Time {
	return in.Instruction.ExecutionTime
}

// Simulation is the device-side contract. ProcessInstruction answers with
// the initial lifecycle state the device assigns; further progress
// travels as s2.InstructionStatusUpdate outside this interface. The error
// return carries s2.ErrNotImplemented when the simulation does not
// provide the operation at all, as opposed to a REJECTED outcome with a
// nil error for a business rejection.
type Simulation interface {
	// ActivateControlType switches the simulation to the given control
	// paradigm.
	ActivateControlType(controlType s2.ControlType) (s2.ReceptionStatus, error)

	// ProcessInstruction handles one paradigm instruction and reports the
	// initial lifecycle state, typically ACCEPTED or REJECTED.
	ProcessInstruction(instruction Instruction) (s2.InstructionStatus, error)

	RevokePEBCInstruction(instructionID s2.ID) (s2.ReceptionStatus, error)
	RevokePPBCInstruction(instructionID s2.ID) (s2.ReceptionStatus, error)
	RevokeOMBCInstruction(instructionID s2.ID) (s2.ReceptionStatus, error)
	RevokeFRBCInstruction(instructionID s2.ID) (s2.ReceptionStatus, error)
	RevokeDDBCInstruction(instructionID s2.ID) (s2.ReceptionStatus, error)
}

// UnimplementedSimulation rejects every operation with
// s2.ErrNotImplemented. Embed it in concrete simulations and override
// the operations the device supports.
type UnimplementedSimulation struct{}

var _ Simulation = UnimplementedSimulation{}

func (UnimplementedSimulation) ActivateControlType(s2.ControlType) (s2.ReceptionStatus, error) {
	return s2.Rejected("not implemented"), s2.ErrNotImplemented
}

func (UnimplementedSimulation) ProcessInstruction(Instruction) (s2.InstructionStatus, error) {
	return s2.InstructionRejected, s2.ErrNotImplemented
}

func (UnimplementedSimulation) RevokePEBCInstruction(s2.ID) (s2.ReceptionStatus, error) {
	return s2.Rejected("not implemented"), s2.ErrNotImplemented
}

func (UnimplementedSimulation) RevokePPBCInstruction(s2.ID) (s2.ReceptionStatus, error) {
	return s2.Rejected("not implemented"), s2.ErrNotImplemented
}

func (UnimplementedSimulation) RevokeOMBCInstruction(s2.ID) (s2.ReceptionStatus, error) {
	return s2.Rejected("not implemented"), s2.ErrNotImplemented
}

func (UnimplementedSimulation) RevokeFRBCInstruction(s2.ID) (s2.ReceptionStatus, error) {
	return s2.Rejected("not implemented"), s2.ErrNotImplemented
}

func (UnimplementedSimulation) RevokeDDBCInstruction(s2.ID) (s2.ReceptionStatus, error) {
	return s2.Rejected("not implemented"), s2.ErrNotImplemented
}
