package frbc

import (
	"errors"
	"testing"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

func batteryMode(id s2.ID, rate float64) OperationMode {
	return OperationMode{
		ID: id,
		Elements: []OperationModeElement{
			{
				FillLevelRange: s2.NumberRange{Start: 0, End: 50},
				FillRate:       s2.NumberRange{Start: 0, End: rate},
				PowerRanges: []s2.PowerRange{
					{Start: 0, End: 5000, Quantity: s2.ElectricPower3PhaseSym},
				},
			},
			{
				FillLevelRange: s2.NumberRange{Start: 50, End: 100},
				FillRate:       s2.NumberRange{Start: 0, End: rate / 2},
				PowerRanges: []s2.PowerRange{
					{Start: 0, End: 2500, Quantity: s2.ElectricPower3PhaseSym},
				},
			},
		},
	}
}

func validSystem() SystemDescription {
	now := time.Now()
	return SystemDescription{
		ValidFrom: now.Add(-time.Minute),
		Actuators: []ActuatorDescription{
			{
				ID:                   "inverter",
				SupportedCommodities: []s2.Commodity{s2.CommodityElectricity},
				Status:               ActuatorStatus{ActiveOperationModeID: "idle", Factor: 0},
				OperationModes: []OperationMode{
					batteryMode("idle", 0),
					batteryMode("charge", 0.01),
				},
				Transitions: []s2.Transition{
					{ID: "idle-charge", From: "idle", To: "charge", StartTimers: []s2.ID{"ramp"}},
					{ID: "charge-idle", From: "charge", To: "idle", BlockingTimers: []s2.ID{"ramp"}},
				},
				Timers: []s2.Timer{
					{ID: "ramp", Duration: 30 * time.Second, FinishedAt: now.Add(-time.Hour)},
				},
			},
		},
		Storage: StorageDescription{
			FillLevelLabel: "%",
			FillLevelRange: s2.NumberRange{Start: 0, End: 100},
			Status:         StorageStatus{PresentFillLevel: 42},
		},
	}
}

func TestSystemDescriptionValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := validSystem().Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
	})

	t.Run("NoActuators", func(t *testing.T) {
		d := SystemDescription{}
		if err := d.Validate(); !errors.Is(err, ErrNoActuators) {
			t.Errorf("error = %v, want ErrNoActuators", err)
		}
	})

	t.Run("DanglingTransition", func(t *testing.T) {
		d := validSystem()
		d.Actuators[0].Transitions[0].To = "discharge"
		if err := d.Validate(); !errors.Is(err, s2.ErrUnknownOperationMode) {
			t.Errorf("error = %v, want ErrUnknownOperationMode", err)
		}
	})

	t.Run("FillLevelOutsideRange", func(t *testing.T) {
		d := validSystem()
		d.Storage.Status.PresentFillLevel = 150
		if err := d.Validate(); !errors.Is(err, ErrFillLevelOutOfRange) {
			t.Errorf("error = %v, want ErrFillLevelOutOfRange", err)
		}
	})

	t.Run("DuplicateActuatorID", func(t *testing.T) {
		d := validSystem()
		d.Actuators = append(d.Actuators, d.Actuators[0])
		if err := d.Validate(); !errors.Is(err, s2.ErrDuplicateID) {
			t.Errorf("error = %v, want ErrDuplicateID", err)
		}
	})
}

func TestOperationModeContiguity(t *testing.T) {
	t.Run("Gap", func(t *testing.T) {
		m := batteryMode("gap", 0.01)
		m.Elements[1].FillLevelRange.Start = 60
		if err := m.Validate(); !errors.Is(err, ErrElementsNotContiguous) {
			t.Errorf("error = %v, want ErrElementsNotContiguous", err)
		}
	})

	t.Run("Overlap", func(t *testing.T) {
		m := batteryMode("overlap", 0.01)
		m.Elements[1].FillLevelRange.Start = 40
		if err := m.Validate(); !errors.Is(err, ErrElementsNotContiguous) {
			t.Errorf("error = %v, want ErrElementsNotContiguous", err)
		}
	})

	t.Run("ElementLookup", func(t *testing.T) {
		m := batteryMode("m", 0.01)
		e, ok := m.ElementForFillLevel(75)
		if !ok {
			t.Fatal("ElementForFillLevel(75) not found")
		}
		if e.FillLevelRange.Start != 50 {
			t.Errorf("wrong element: range starts at %v, want 50", e.FillLevelRange.Start)
		}
		if _, ok := m.ElementForFillLevel(150); ok {
			t.Error("fill level outside all elements should not resolve")
		}
	})
}

func TestLeakageBehaviourValidate(t *testing.T) {
	lb := LeakageBehaviour{
		ValidFrom: time.Now(),
		Elements: []LeakageBehaviourElement{
			{FillLevelRange: s2.NumberRange{Start: 0, End: 50}, LeakageRate: 0.001},
			{FillLevelRange: s2.NumberRange{Start: 50, End: 100}, LeakageRate: 0.002},
		},
	}
	if err := lb.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	lb.Elements[1].FillLevelRange.Start = 55
	if err := lb.Validate(); !errors.Is(err, ErrElementsNotContiguous) {
		t.Errorf("error = %v, want ErrElementsNotContiguous", err)
	}

	empty := LeakageBehaviour{ValidFrom: time.Now()}
	if err := empty.Validate(); !errors.Is(err, ErrNoElements) {
		t.Errorf("error = %v, want ErrNoElements", err)
	}
}

func TestInstructionValidate(t *testing.T) {
	in := Instruction{
		ID:              s2.NewID(),
		ActuatorID:      "inverter",
		OperationModeID: "charge",
		Factor:          0.8,
		ExecutionTime:   time.Now().Add(time.Minute),
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	in.Factor = 1.2
	if err := in.Validate(); !errors.Is(err, ErrFactorOutOfRange) {
		t.Errorf("error = %v, want ErrFactorOutOfRange", err)
	}

	in.Factor = 0.8
	in.ActuatorID = ""
	if err := in.Validate(); err == nil {
		t.Error("Validate() should reject missing actuator ID")
	}
}

func TestProfileValidate(t *testing.T) {
	t.Run("UsageForecast", func(t *testing.T) {
		f := UsageForecast{
			StartTime: time.Now(),
			Elements: []UsageForecastElement{
				{Duration: time.Hour, UsageRateExpected: -0.002},
			},
		}
		if err := f.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		f.Elements[0].Duration = 0
		if err := f.Validate(); err == nil {
			t.Error("Validate() should reject zero-duration element")
		}
	})

	t.Run("FillLevelTargetProfile", func(t *testing.T) {
		p := FillLevelTargetProfile{
			StartTime: time.Now(),
			Elements: []FillLevelTargetProfileElement{
				{Duration: time.Hour, FillLevelRange: s2.NumberRange{Start: 80, End: 100}},
			},
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		p.Elements[0].FillLevelRange = s2.NumberRange{Start: 100, End: 80}
		if err := p.Validate(); !errors.Is(err, s2.ErrInvalidRange) {
			t.Errorf("error = %v, want ErrInvalidRange", err)
		}
	})
}
