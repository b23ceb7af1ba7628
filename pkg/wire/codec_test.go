package wire

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/ombc"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	m := s2.PowerMeasurement{
		Timestamp: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		Values: []s2.PowerValue{
			{Value: 1234.5, Quantity: s2.ElectricPower3PhaseSym},
		},
	}

	data, err := Encode(TypePowerMeasurement, "sim-1", m)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	env, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if env.Type != TypePowerMeasurement {
		t.Errorf("Type = %d, want TypePowerMeasurement", env.Type)
	}
	if env.SimulationID != "sim-1" {
		t.Errorf("SimulationID = %q, want sim-1", env.SimulationID)
	}

	var got s2.PowerMeasurement
	if err := env.DecodePayload(&got); err != nil {
		t.Fatalf("DecodePayload() error = %v", err)
	}
	if !got.Timestamp.Equal(m.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, m.Timestamp)
	}
	if v, ok := got.Value(s2.ElectricPower3PhaseSym); !ok || v != 1234.5 {
		t.Errorf("Value() = %v, %v, want 1234.5", v, ok)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	in := ombc.Instruction{
		ID:              "in-1",
		OperationModeID: "heat",
		Factor:          0.75,
		ExecutionTime:   time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}

	a, err := Encode(TypeOMBCInstruction, "sim-1", in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	b, err := Encode(TypeOMBCInstruction, "sim-1", in)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding the same artifact twice must yield identical bytes")
	}
}

func TestEnvelopeValidate(t *testing.T) {
	t.Run("MissingSimulationID", func(t *testing.T) {
		if _, err := Encode(TypePowerMeasurement, "", s2.PowerMeasurement{}); !errors.Is(err, ErrMissingSimulationID) {
			t.Errorf("error = %v, want ErrMissingSimulationID", err)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		if _, err := Encode(MessageType(0), "sim-1", struct{}{}); !errors.Is(err, ErrUnknownMessageType) {
			t.Errorf("error = %v, want ErrUnknownMessageType", err)
		}
	})

	t.Run("DecodeRejectsInvalid", func(t *testing.T) {
		data, err := Marshal(Envelope{Type: MessageType(200), SimulationID: "sim-1"})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if _, err := Decode(data); !errors.Is(err, ErrUnknownMessageType) {
			t.Errorf("error = %v, want ErrUnknownMessageType", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := Decode([]byte{0xff, 0x00, 0x01}); err == nil {
			t.Error("Decode() should fail on malformed CBOR")
		}
	})
}

func TestRevocationRoundTrip(t *testing.T) {
	rev := Revocation{ArtifactType: TypePPBCProfileDefinition, ArtifactID: "profile-1"}

	data, err := Encode(TypeRevocation, "sim-1", rev)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	env, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var got Revocation
	if err := env.DecodePayload(&got); err != nil {
		t.Fatalf("DecodePayload() error = %v", err)
	}
	if got != rev {
		t.Errorf("round trip = %+v, want %+v", got, rev)
	}
}

func TestStreamEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	updates := []s2.InstructionStatusUpdate{
		{InstructionID: "in-1", Status: s2.InstructionAccepted, Timestamp: time.Unix(1750000000, 0).UTC()},
		{InstructionID: "in-1", Status: s2.InstructionStarted, Timestamp: time.Unix(1750000060, 0).UTC()},
	}
	for _, u := range updates {
		if err := enc.Encode(u); err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i := range updates {
		var got s2.InstructionStatusUpdate
		if err := dec.Decode(&got); err != nil {
			t.Fatalf("Decode() %d error = %v", i, err)
		}
		if got.Status != updates[i].Status {
			t.Errorf("update %d status = %q, want %q", i, got.Status, updates[i].Status)
		}
	}
}
