// Command cec-example demonstrates one management cycle between a
// Central Energy Controller and a battery simulation.
//
// This example shows how to:
//   - Announce simulation details and activate a control paradigm
//   - Push an FRBC system description to a controller
//   - Dispatch an instruction and track its lifecycle
//   - Build the per-cycle energy management plan
//   - Frame artifacts with the wire codec
//
// Usage:
//
//	go run ./cmd/cec-example
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/controller"
	"github.com/s2flex-protocol/s2flex-go/pkg/plan"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/frbc"
	"github.com/s2flex-protocol/s2flex-go/pkg/simulation"
	"github.com/s2flex-protocol/s2flex-go/pkg/wire"
)

// batteryCEC accepts FRBC system descriptions and measurements.
type batteryCEC struct {
	controller.UnimplementedController

	descriptions map[s2.ID]frbc.SystemDescription
}

func (c *batteryCEC) ProcessSimulationUpdate(simID s2.ID, update controller.SimulationUpdate) (s2.ReceptionStatus, error) {
	switch u := update.(type) {
	case controller.DetailsUpdate:
		if err := u.Details.Validate(); err != nil {
			return s2.Rejected(err.Error()), nil
		}
		return s2.Accepted(), nil
	case controller.FRBCSystemDescriptionUpdate:
		if err := u.Description.Validate(); err != nil {
			return s2.Rejected(err.Error()), nil
		}
		c.descriptions[simID] = u.Description
		return s2.Accepted(), nil
	default:
		return s2.Rejected(fmt.Sprintf("unsupported update kind %s", update.Kind())), nil
	}
}

func (c *batteryCEC) ProcessPowerMeasurement(simID s2.ID, m s2.PowerMeasurement) (s2.ReceptionStatus, error) {
	if err := m.Validate(); err != nil {
		return s2.Rejected(err.Error()), nil
	}
	return s2.Accepted(), nil
}

// batterySim executes FRBC instructions.
type batterySim struct {
	simulation.UnimplementedSimulation
}

func (batterySim) ActivateControlType(ct s2.ControlType) (s2.ReceptionStatus, error) {
	if ct != s2.ControlTypeFillRate {
		return s2.Rejected("only FRBC supported"), nil
	}
	return s2.Accepted(), nil
}

func (batterySim) ProcessInstruction(in simulation.Instruction) (s2.InstructionStatus, error) {
	if _, ok := in.(simulation.FRBCInstruction); !ok {
		return s2.InstructionRejected, nil
	}
	return s2.InstructionAccepted, nil
}

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.Println("CEC Example Cycle")
	log.Println("=================")

	const simID = s2.ID("battery-1")
	cec := &batteryCEC{descriptions: make(map[s2.ID]frbc.SystemDescription)}
	sim := batterySim{}
	now := time.Now()

	// 1. The simulation announces itself.
	details := s2.SimulationDetails{
		SimulationID: simID,
		Name:         "Home Battery",
		Roles: []s2.Role{
			{Role: s2.RoleTypeEnergyStorage, Commodity: s2.CommodityElectricity},
		},
		InstructionProcessingDelay:    time.Second,
		AvailableControlTypes:         []s2.ControlType{s2.ControlTypeFillRate},
		ProvidesForecast:              true,
		ProvidesPowerMeasurementTypes: []s2.CommodityQuantity{s2.ElectricPower3PhaseSym},
	}
	status, err := cec.ProcessSimulationUpdate(simID, controller.DetailsUpdate{Details: details})
	if err != nil {
		log.Fatalf("details update failed: %v", err)
	}
	log.Printf("details: %s", status.Outcome)

	// 2. The CEC activates fill rate based control.
	if status, _ = sim.ActivateControlType(s2.ControlTypeFillRate); !status.IsSuccess() {
		log.Fatalf("control type activation rejected: %s", status.DiagnosticLabel)
	}
	log.Printf("activated %s", s2.ControlTypeFillRate)

	// 3. The simulation pushes its system description.
	desc := frbc.SystemDescription{
		ValidFrom: now,
		Actuators: []frbc.ActuatorDescription{{
			ID:                   "inverter",
			SupportedCommodities: []s2.Commodity{s2.CommodityElectricity},
			Status:               frbc.ActuatorStatus{ActiveOperationModeID: "idle"},
			OperationModes: []frbc.OperationMode{
				batteryMode("idle", 0, 0),
				batteryMode("charge", 0.01, 5000),
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
	status, err = cec.ProcessSimulationUpdate(simID, controller.FRBCSystemDescriptionUpdate{Description: desc})
	if err != nil || !status.IsSuccess() {
		log.Fatalf("system description rejected: %s (%v)", status.DiagnosticLabel, err)
	}
	log.Printf("system description: %s, fill level %.0f%%",
		status.Outcome, desc.Storage.Status.PresentFillLevel)

	// 4. The CEC issues a charge instruction and tracks its lifecycle.
	instr := frbc.Instruction{
		ID:              s2.NewID(),
		ActuatorID:      "inverter",
		OperationModeID: "charge",
		Factor:          0.8,
		ExecutionTime:   now.Add(time.Minute),
	}
	tracker := simulation.NewTracker()
	if err := tracker.Register(instr.ID); err != nil {
		log.Fatalf("register: %v", err)
	}
	st, err := sim.ProcessInstruction(simulation.FRBCInstruction{Instruction: instr})
	if err != nil {
		log.Fatalf("instruction dispatch failed: %v", err)
	}
	if err := tracker.Apply(s2.InstructionStatusUpdate{
		InstructionID: instr.ID,
		Status:        st,
		Timestamp:     now,
	}); err != nil {
		log.Fatalf("lifecycle update: %v", err)
	}
	log.Printf("instruction %s: %s", instr.ID, st)

	// 5. The scheduling layer records the decision in the cycle plan.
	power := 4000.0
	p := plan.NewPlan("cycle-1")
	p.AddInstruction(plan.ControlInstruction{
		ControlID:    instr.ID,
		TargetDevice: string(simID),
		Quantity:     s2.ElectricPower3PhaseSym,
		StartTime:    instr.ExecutionTime,
		Duration:     2 * time.Hour,
		Power:        &power,
	})
	log.Printf("plan valid %s - %s, %d instruction(s)",
		p.ValidFrom().Format(time.TimeOnly), p.ValidUntil().Format(time.TimeOnly), p.Len())

	// 6. Frame a measurement the way it would travel between processes.
	measurement := s2.PowerMeasurement{
		Timestamp: now,
		Values: []s2.PowerValue{
			{Value: 3950, Quantity: s2.ElectricPower3PhaseSym},
		},
	}
	frame, err := wire.Encode(wire.TypePowerMeasurement, simID, measurement)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	env, err := wire.Decode(frame)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	var received s2.PowerMeasurement
	if err := env.DecodePayload(&received); err != nil {
		log.Fatalf("payload: %v", err)
	}
	status, _ = cec.ProcessPowerMeasurement(env.SimulationID, received)
	v, _ := received.Value(s2.ElectricPower3PhaseSym)
	log.Printf("measurement over wire (%d bytes): %.0f W, %s", len(frame), v, status.Outcome)

	log.Println("cycle complete")
}

func batteryMode(id s2.ID, rate, power float64) frbc.OperationMode {
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
