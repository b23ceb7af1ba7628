package wire

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// Envelope errors.
var (
	ErrUnknownMessageType  = errors.New("unknown message type")
	ErrMissingSimulationID = errors.New("envelope needs a simulation ID")
)

// MessageType tags the payload carried by an envelope.
type MessageType uint8

const (
	// TypeSimulationDetails carries s2.SimulationDetails.
	TypeSimulationDetails MessageType = iota + 1

	// TypeControlTypeSelection carries an s2.ControlType.
	TypeControlTypeSelection

	// TypePowerMeasurement carries an s2.PowerMeasurement.
	TypePowerMeasurement

	// TypePowerForecast carries an s2.PowerForecast.
	TypePowerForecast

	// TypeReceptionStatus carries an s2.ReceptionStatus acknowledgement.
	TypeReceptionStatus

	// TypeInstructionStatusUpdate carries an s2.InstructionStatusUpdate.
	TypeInstructionStatusUpdate

	// TypePEBCPowerConstraints carries pebc.PowerConstraints.
	TypePEBCPowerConstraints

	// TypePEBCEnergyConstraints carries pebc.EnergyConstraints.
	TypePEBCEnergyConstraints

	// TypePEBCInstruction carries a pebc.Instruction.
	TypePEBCInstruction

	// TypePPBCProfileDefinition carries a ppbc.PowerProfileDefinition.
	TypePPBCProfileDefinition

	// TypePPBCProfileStatus carries a ppbc.ProfileStatus.
	TypePPBCProfileStatus

	// TypePPBCScheduleInstruction carries a ppbc.ScheduleInstruction.
	TypePPBCScheduleInstruction

	// TypePPBCStartInterruption carries a ppbc.StartInterruptionInstruction.
	TypePPBCStartInterruption

	// TypePPBCEndInterruption carries a ppbc.EndInterruptionInstruction.
	TypePPBCEndInterruption

	// TypeOMBCSystemDescription carries an ombc.SystemDescription.
	TypeOMBCSystemDescription

	// TypeOMBCStatus carries an ombc.Status.
	TypeOMBCStatus

	// TypeOMBCInstruction carries an ombc.Instruction.
	TypeOMBCInstruction

	// TypeFRBCSystemDescription carries an frbc.SystemDescription.
	TypeFRBCSystemDescription

	// TypeFRBCActuatorStatus carries an frbc.ActuatorStatus.
	TypeFRBCActuatorStatus

	// TypeFRBCStorageStatus carries an frbc.StorageStatus.
	TypeFRBCStorageStatus

	// TypeFRBCLeakageBehaviour carries an frbc.LeakageBehaviour.
	TypeFRBCLeakageBehaviour

	// TypeFRBCUsageForecast carries an frbc.UsageForecast.
	TypeFRBCUsageForecast

	// TypeFRBCFillLevelTargetProfile carries an frbc.FillLevelTargetProfile.
	TypeFRBCFillLevelTargetProfile

	// TypeFRBCInstruction carries an frbc.Instruction.
	TypeFRBCInstruction

	// TypeDDBCSystemDescription carries a ddbc.SystemDescription.
	TypeDDBCSystemDescription

	// TypeDDBCActuatorStatus carries a ddbc.ActuatorStatus.
	TypeDDBCActuatorStatus

	// TypeDDBCDemandRateForecast carries a ddbc.AverageDemandRateForecast.
	TypeDDBCDemandRateForecast

	// TypeDDBCInstruction carries a ddbc.Instruction.
	TypeDDBCInstruction

	// TypeRevocation carries a Revocation.
	TypeRevocation
)

// IsValid returns true for a known message type.
func (t MessageType) IsValid() bool {
	return t >= TypeSimulationDetails && t <= TypeRevocation
}

// Envelope frames one protocol artifact for transport or storage by the
// caller. The payload stays CBOR-encoded until the receiver knows the
// concrete type from the tag.
type Envelope struct {
	Type         MessageType     `cbor:"1,keyasint"`
	SimulationID s2.ID           `cbor:"2,keyasint"`
	Payload      cbor.RawMessage `cbor:"3,keyasint"`
}

// Validate checks the tag and the simulation reference.
func (e Envelope) Validate() error {
	if !e.Type.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownMessageType, e.Type)
	}
	if !e.SimulationID.IsValid() {
		return ErrMissingSimulationID
	}
	return nil
}

// DecodePayload decodes the framed payload into v, which must match the
// envelope's type tag.
func (e Envelope) DecodePayload(v any) error {
	return Unmarshal(e.Payload, v)
}

// Encode frames a payload and encodes the whole envelope to CBOR bytes.
func Encode(t MessageType, simulationID s2.ID, payload any) ([]byte, error) {
	raw, err := Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	env := Envelope{Type: t, SimulationID: simulationID, Payload: raw}
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}
	return Marshal(env)
}

// Decode decodes CBOR bytes into an envelope, leaving the payload raw.
func Decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}
	return &env, nil
}

// Revocation withdraws a previously transmitted artifact. ArtifactID is
// empty for the single-artifact-per-simulation kinds (leakage behaviour,
// usage forecast, fill level target profile).
type Revocation struct {
	// ArtifactType is the message type of the artifact being revoked.
	ArtifactType MessageType `cbor:"1,keyasint"`

	ArtifactID s2.ID `cbor:"2,keyasint,omitempty"`
}
