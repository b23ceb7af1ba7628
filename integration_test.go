package s2flex_test

import (
	"errors"
	"testing"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/capability"
	"github.com/s2flex-protocol/s2flex-go/pkg/controller"
	"github.com/s2flex-protocol/s2flex-go/pkg/plan"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/frbc"
	"github.com/s2flex-protocol/s2flex-go/pkg/simulation"
	"github.com/s2flex-protocol/s2flex-go/pkg/wire"
)

// frbcCEC accepts simulation details and FRBC artifacts.
type frbcCEC struct {
	controller.UnimplementedController

	details      map[s2.ID]s2.SimulationDetails
	descriptions map[s2.ID]frbc.SystemDescription
}

func newFRBCCEC() *frbcCEC {
	return &frbcCEC{
		details:      make(map[s2.ID]s2.SimulationDetails),
		descriptions: make(map[s2.ID]frbc.SystemDescription),
	}
}

func (c *frbcCEC) ProcessSimulationUpdate(simID s2.ID, update controller.SimulationUpdate) (s2.ReceptionStatus, error) {
	switch u := update.(type) {
	case controller.DetailsUpdate:
		if err := u.Details.Validate(); err != nil {
			return s2.Rejected(err.Error()), nil
		}
		c.details[simID] = u.Details
		return s2.Accepted(), nil
	case controller.FRBCSystemDescriptionUpdate:
		if err := u.Description.Validate(); err != nil {
			return s2.Rejected(err.Error()), nil
		}
		c.descriptions[simID] = u.Description
		return s2.Accepted(), nil
	default:
		return s2.Rejected("unsupported update kind"), nil
	}
}

// frbcSim executes FRBC instructions against one actuator.
type frbcSim struct {
	simulation.UnimplementedSimulation

	description frbc.SystemDescription
	active      s2.ControlType
}

func (f *frbcSim) ActivateControlType(ct s2.ControlType) (s2.ReceptionStatus, error) {
	if ct != s2.ControlTypeFillRate && ct != s2.ControlTypeNoSelection {
		return s2.Rejected("only FRBC supported"), nil
	}
	f.active = ct
	return s2.Accepted(), nil
}

func (f *frbcSim) ProcessInstruction(in simulation.Instruction) (s2.InstructionStatus, error) {
	fi, ok := in.(simulation.FRBCInstruction)
	if !ok {
		return s2.InstructionRejected, nil
	}
	actuator, found := f.description.Actuator(fi.Instruction.ActuatorID)
	if !found {
		return s2.InstructionRejected, nil
	}
	if _, found := actuator.Mode(fi.Instruction.OperationModeID); !found {
		return s2.InstructionRejected, nil
	}
	return s2.InstructionAccepted, nil
}

func batteryDescription(now time.Time) frbc.SystemDescription {
	mode := func(id s2.ID, rate, power float64) frbc.OperationMode {
		return frbc.OperationMode{
			ID: id,
			Elements: []frbc.OperationModeElement{{
				FillLevelRange: s2.NumberRange{Start: 0, End: 100},
				FillRate:       s2.NumberRange{Start: 0, End: rate},
				PowerRanges: []s2.PowerRange{
					{Start: 0, End: power, Quantity: s2.ElectricPower3PhaseSym},
				},
			}},
		}
	}
	return frbc.SystemDescription{
		ValidFrom: now,
		Actuators: []frbc.ActuatorDescription{{
			ID:                   "inverter",
			SupportedCommodities: []s2.Commodity{s2.CommodityElectricity},
			Status:               frbc.ActuatorStatus{ActiveOperationModeID: "idle"},
			OperationModes: []frbc.OperationMode{
				mode("idle", 0, 0),
				mode("charge", 0.01, 5000),
			},
			Transitions: []s2.Transition{
				{ID: "idle-charge", From: "idle", To: "charge"},
				{ID: "charge-idle", From: "charge", To: "idle"},
			},
		}},
		Storage: frbc.StorageDescription{
			FillLevelLabel: "%",
			FillLevelRange: s2.NumberRange{Start: 0, End: 100},
			Status:         frbc.StorageStatus{PresentFillLevel: 35},
		},
	}
}

func batteryDetails() s2.SimulationDetails {
	return s2.SimulationDetails{
		SimulationID: "battery-1",
		Name:         "Home Battery",
		Roles: []s2.Role{
			{Role: s2.RoleTypeEnergyStorage, Commodity: s2.CommodityElectricity},
		},
		InstructionProcessingDelay:    time.Second,
		AvailableControlTypes:         []s2.ControlType{s2.ControlTypeFillRate},
		ProvidesPowerMeasurementTypes: []s2.CommodityQuantity{s2.ElectricPower3PhaseSym},
	}
}

// TestManagementCycle drives one full cycle: announcement, control type
// activation, system description, instruction dispatch, lifecycle
// tracking, and plan construction.
func TestManagementCycle(t *testing.T) {
	now := time.Date(2026, time.March, 1, 6, 0, 0, 0, time.UTC)
	cec := newFRBCCEC()
	sim := &frbcSim{description: batteryDescription(now)}

	// Announcement.
	status, err := cec.ProcessSimulationUpdate("battery-1", controller.DetailsUpdate{Details: batteryDetails()})
	if err != nil || !status.IsSuccess() {
		t.Fatalf("details = %+v, %v", status, err)
	}

	// Activation.
	if status, _ := sim.ActivateControlType(s2.ControlTypeFillRate); !status.IsSuccess() {
		t.Fatalf("activation rejected: %s", status.DiagnosticLabel)
	}

	// System description.
	status, err = cec.ProcessSimulationUpdate("battery-1",
		controller.FRBCSystemDescriptionUpdate{Description: sim.description})
	if err != nil || !status.IsSuccess() {
		t.Fatalf("system description = %+v, %v", status, err)
	}

	// Dispatch and lifecycle.
	instr := frbc.Instruction{
		ID:              s2.NewID(),
		ActuatorID:      "inverter",
		OperationModeID: "charge",
		Factor:          0.8,
		ExecutionTime:   now.Add(time.Minute),
	}
	tracker := simulation.NewTracker()
	if err := tracker.Register(instr.ID); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	st, err := sim.ProcessInstruction(simulation.FRBCInstruction{Instruction: instr})
	if err != nil {
		t.Fatalf("ProcessInstruction() error = %v", err)
	}
	if st != s2.InstructionAccepted {
		t.Fatalf("status = %q, want ACCEPTED", st)
	}
	for _, next := range []s2.InstructionStatus{
		s2.InstructionAccepted, s2.InstructionStarted, s2.InstructionSucceeded,
	} {
		if err := tracker.Apply(s2.InstructionStatusUpdate{
			InstructionID: instr.ID, Status: next, Timestamp: now,
		}); err != nil {
			t.Fatalf("Apply(%s) error = %v", next, err)
		}
	}

	// Plan.
	power := 4000.0
	p := plan.NewPlan("cycle-1")
	p.AddInstruction(plan.ControlInstruction{
		ControlID:    instr.ID,
		TargetDevice: "battery-1",
		Quantity:     s2.ElectricPower3PhaseSym,
		StartTime:    instr.ExecutionTime,
		Duration:     2 * time.Hour,
		Power:        &power,
	})
	if got := p.InstructionsForDevice("battery-1"); len(got) != 1 {
		t.Errorf("InstructionsForDevice() = %v, want one entry", got)
	}
	if want := instr.ExecutionTime.Add(2 * time.Hour); !p.ValidUntil().Equal(want) {
		t.Errorf("ValidUntil() = %v, want %v", p.ValidUntil(), want)
	}
}

// TestWrongParadigmInstruction checks that a simulation refuses an
// instruction for a mode it never declared, without tearing down the
// session.
func TestWrongParadigmInstruction(t *testing.T) {
	now := time.Now()
	sim := &frbcSim{description: batteryDescription(now)}

	st, err := sim.ProcessInstruction(simulation.FRBCInstruction{Instruction: frbc.Instruction{
		ID:              s2.NewID(),
		ActuatorID:      "inverter",
		OperationModeID: "discharge",
		ExecutionTime:   now,
	}})
	if err != nil {
		t.Fatalf("business rejection must not carry an error, got %v", err)
	}
	if st != s2.InstructionRejected {
		t.Errorf("status = %q, want REJECTED", st)
	}

	// Unimplemented revocation still reports the sentinel.
	if _, err := sim.RevokeOMBCInstruction("in-1"); !errors.Is(err, s2.ErrNotImplemented) {
		t.Errorf("error = %v, want ErrNotImplemented", err)
	}
}

// TestArtifactsOverWire frames a system description, carries it through
// the codec, and feeds it into a controller.
func TestArtifactsOverWire(t *testing.T) {
	now := time.Date(2026, time.March, 1, 6, 0, 0, 0, time.UTC)
	desc := batteryDescription(now)

	frame, err := wire.Encode(wire.TypeFRBCSystemDescription, "battery-1", desc)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	env, err := wire.Decode(frame)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if env.Type != wire.TypeFRBCSystemDescription {
		t.Fatalf("Type = %d, want TypeFRBCSystemDescription", env.Type)
	}

	var received frbc.SystemDescription
	if err := env.DecodePayload(&received); err != nil {
		t.Fatalf("DecodePayload() error = %v", err)
	}

	cec := newFRBCCEC()
	status, err := cec.ProcessSimulationUpdate(env.SimulationID,
		controller.FRBCSystemDescriptionUpdate{Description: received})
	if err != nil || !status.IsSuccess() {
		t.Fatalf("decoded description rejected: %+v, %v", status, err)
	}
	if got := cec.descriptions["battery-1"].Storage.Status.PresentFillLevel; got != 35 {
		t.Errorf("fill level after round trip = %v, want 35", got)
	}
}

// TestConformanceGate checks announced details against a conformance
// statement before admitting the simulation.
func TestConformanceGate(t *testing.T) {
	statement := `
device:
  name: "Home Battery"
control_types:
  - FILL_RATE_BASED_CONTROL
measurement_types:
  - ELECTRIC.POWER.3_PHASE_SYM
`
	st, err := capability.Parse([]byte(statement))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if err := st.Check(batteryDetails()); err != nil {
		t.Fatalf("conforming details rejected: %v", err)
	}

	over := batteryDetails()
	over.AvailableControlTypes = append(over.AvailableControlTypes, s2.ControlTypeOperationMode)
	if err := st.Check(over); !errors.Is(err, capability.ErrUndeclaredControl) {
		t.Errorf("error = %v, want ErrUndeclaredControl", err)
	}
}
