package controller

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/ombc"
	"github.com/s2flex-protocol/s2flex-go/pkg/s2/pebc"
)

// ombcOnlyController accepts OMBC system descriptions and measurements,
// nothing else.
type ombcOnlyController struct {
	UnimplementedController

	lastDescription ombc.SystemDescription
}

func (c *ombcOnlyController) ProcessSimulationUpdate(simulationID s2.ID, update SimulationUpdate) (s2.ReceptionStatus, error) {
	switch u := update.(type) {
	case OMBCSystemDescriptionUpdate:
		if err := u.Description.Validate(); err != nil {
			return s2.Rejected(fmt.Sprintf("invalid system description: %v", err)), nil
		}
		c.lastDescription = u.Description
		return s2.Accepted(), nil
	default:
		return s2.Rejected("unsupported update kind"), nil
	}
}

func (c *ombcOnlyController) ProcessPowerMeasurement(simulationID s2.ID, m s2.PowerMeasurement) (s2.ReceptionStatus, error) {
	if err := m.Validate(); err != nil {
		return s2.Rejected(err.Error()), nil
	}
	return s2.Accepted(), nil
}

func TestUnimplementedControllerRejectsEverything(t *testing.T) {
	var c UnimplementedController

	status, err := c.ProcessSimulationUpdate("sim-1", DetailsUpdate{})
	if !errors.Is(err, s2.ErrNotImplemented) {
		t.Errorf("error = %v, want ErrNotImplemented", err)
	}
	if status.IsSuccess() {
		t.Error("unimplemented operation must not report success")
	}

	ops := map[string]func() (s2.ReceptionStatus, error){
		"ProcessPowerMeasurement": func() (s2.ReceptionStatus, error) {
			return c.ProcessPowerMeasurement("sim-1", s2.PowerMeasurement{})
		},
		"ProcessPowerForecast": func() (s2.ReceptionStatus, error) {
			return c.ProcessPowerForecast("sim-1", "f-1", s2.PowerForecast{})
		},
		"RevokePowerForecast": func() (s2.ReceptionStatus, error) {
			return c.RevokePowerForecast("sim-1", "f-1")
		},
		"RevokePowerConstraints": func() (s2.ReceptionStatus, error) {
			return c.RevokePowerConstraints("sim-1", "pc-1")
		},
		"RevokeEnergyConstraints": func() (s2.ReceptionStatus, error) {
			return c.RevokeEnergyConstraints("sim-1", "ec-1")
		},
		"RevokePowerProfileDefinition": func() (s2.ReceptionStatus, error) {
			return c.RevokePowerProfileDefinition("sim-1", "ppd-1")
		},
		"RevokeOMBCSystemDescription": func() (s2.ReceptionStatus, error) {
			return c.RevokeOMBCSystemDescription("sim-1", "sd-1")
		},
		"RevokeFRBCSystemDescription": func() (s2.ReceptionStatus, error) {
			return c.RevokeFRBCSystemDescription("sim-1", "sd-1")
		},
		"RevokeDDBCSystemDescription": func() (s2.ReceptionStatus, error) {
			return c.RevokeDDBCSystemDescription("sim-1", "sd-1")
		},
		"RevokeDemandRateForecast": func() (s2.ReceptionStatus, error) {
			return c.RevokeDemandRateForecast("sim-1", "f-1")
		},
		"RevokeLeakageBehaviour": func() (s2.ReceptionStatus, error) {
			return c.RevokeLeakageBehaviour("sim-1")
		},
		"RevokeUsageForecast": func() (s2.ReceptionStatus, error) {
			return c.RevokeUsageForecast("sim-1")
		},
		"RevokeFillLevelTargetProfile": func() (s2.ReceptionStatus, error) {
			return c.RevokeFillLevelTargetProfile("sim-1")
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			status, err := op()
			if !errors.Is(err, s2.ErrNotImplemented) {
				t.Errorf("error = %v, want ErrNotImplemented", err)
			}
			if status.Outcome != s2.ReceptionRejected {
				t.Errorf("outcome = %q, want REJECTED", status.Outcome)
			}
		})
	}
}

func TestNotImplementedDistinctFromBusinessRejection(t *testing.T) {
	c := &ombcOnlyController{}

	// A supported update kind with invalid content: business rejection,
	// no error.
	status, err := c.ProcessSimulationUpdate("sim-1", OMBCSystemDescriptionUpdate{})
	if err != nil {
		t.Fatalf("business rejection must not carry an error, got %v", err)
	}
	if status.IsSuccess() {
		t.Error("invalid description should be rejected")
	}

	// An operation the controller never overrode: ErrNotImplemented.
	if _, err := c.RevokePowerConstraints("sim-1", "pc-1"); !errors.Is(err, s2.ErrNotImplemented) {
		t.Errorf("error = %v, want ErrNotImplemented", err)
	}
}

func TestOverriddenHandlerAccepts(t *testing.T) {
	c := &ombcOnlyController{}

	desc := ombc.SystemDescription{
		ValidFrom: time.Now(),
		OperationModes: []ombc.OperationMode{
			{
				ID: "on",
				PowerRanges: []s2.PowerRange{
					{Start: 0, End: 2000, Quantity: s2.ElectricPower3PhaseSym},
				},
			},
		},
		Status: ombc.Status{ActiveOperationModeID: "on", Factor: 1},
	}

	status, err := c.ProcessSimulationUpdate("sim-1", OMBCSystemDescriptionUpdate{Description: desc})
	if err != nil {
		t.Fatalf("ProcessSimulationUpdate() error = %v", err)
	}
	if !status.IsSuccess() {
		t.Fatalf("status = %+v, want SUCCEEDED", status)
	}
	if c.lastDescription.Status.ActiveOperationModeID != "on" {
		t.Error("accepted description was not stored")
	}
}

func TestUpdateKinds(t *testing.T) {
	cases := []struct {
		update SimulationUpdate
		want   UpdateKind
	}{
		{DetailsUpdate{}, UpdateDetails},
		{ControlTypeSelection{ControlType: s2.ControlTypeOperationMode}, UpdateControlTypeSelection},
		{PEBCPowerConstraintsUpdate{Constraints: pebc.PowerConstraints{}}, UpdatePEBCPowerConstraints},
		{PEBCEnergyConstraintsUpdate{}, UpdatePEBCEnergyConstraints},
		{PPBCProfileDefinitionUpdate{}, UpdatePPBCProfileDefinition},
		{OMBCSystemDescriptionUpdate{}, UpdateOMBCSystemDescription},
		{FRBCSystemDescriptionUpdate{}, UpdateFRBCSystemDescription},
		{FRBCLeakageBehaviourUpdate{}, UpdateFRBCLeakageBehaviour},
		{FRBCUsageForecastUpdate{}, UpdateFRBCUsageForecast},
		{FRBCFillLevelTargetUpdate{}, UpdateFRBCFillLevelTarget},
		{DDBCSystemDescriptionUpdate{}, UpdateDDBCSystemDescription},
		{DDBCDemandRateForecastUpdate{}, UpdateDDBCDemandRateForecast},
	}
	for _, tc := range cases {
		if got := tc.update.Kind(); got != tc.want {
			t.Errorf("%T.Kind() = %q, want %q", tc.update, got, tc.want)
		}
	}
}
