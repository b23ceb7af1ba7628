// Package ddbc implements Demand Driven Based Control descriptors and
// instructions. The simulation publishes actuators whose operation modes
// supply a demand rate; the CEC combines modes to match the present
// demand.
package ddbc

import (
	"errors"
	"fmt"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// Validation errors.
var (
	ErrNoActuators       = errors.New("system description needs at least one actuator")
	ErrNoOperationModes  = errors.New("actuator needs at least one operation mode")
	ErrNoElements        = errors.New("forecast needs at least one element")
	ErrFactorOutOfRange  = errors.New("operation mode factor outside [0, 1]")
	ErrUnknownActiveMode = errors.New("status references unknown operation mode")
)

// OperationMode is one way to operate a DDBC actuator: its power cost and
// the supply rate it can contribute toward the demand rate.
type OperationMode struct {
	// ID is unique within the actuator description.
	ID s2.ID `json:"id"`

	// DiagnosticLabel is for diagnostics only, never HMI.
	DiagnosticLabel string `json:"diagnostic_label,omitempty"`

	// PowerRanges hold power per commodity quantity, at least one entry.
	PowerRanges []s2.PowerRange `json:"power_ranges"`

	// SupplyRange is the supply rate the mode can match, mapped from
	// factor 0 to 1.
	SupplyRange s2.NumberRange `json:"supply_range"`

	// RunningCosts is the additional cost per second excluding commodity
	// cost; the range expresses uncertainty.
	RunningCosts s2.NumberRange `json:"running_costs"`

	// AbnormalConditionOnly restricts the mode to abnormal conditions.
	AbnormalConditionOnly bool `json:"abnormal_condition_only,omitempty"`
}

// Validate checks identity and all ranges.
func (m OperationMode) Validate() error {
	if !m.ID.IsValid() {
		return fmt.Errorf("operation mode: %w", s2.ErrMissingID)
	}
	if len(m.PowerRanges) == 0 {
		return fmt.Errorf("operation mode %q: no power ranges", m.ID)
	}
	if err := s2.ValidatePowerRanges(m.PowerRanges); err != nil {
		return fmt.Errorf("operation mode %q: %w", m.ID, err)
	}
	if err := m.SupplyRange.Validate(); err != nil {
		return fmt.Errorf("operation mode %q supply range: %w", m.ID, err)
	}
	if err := m.RunningCosts.Validate(); err != nil {
		return fmt.Errorf("operation mode %q running costs: %w", m.ID, err)
	}
	return nil
}

// ActuatorStatus is the current state of one actuator.
type ActuatorStatus struct {
	ActiveOperationModeID s2.ID `json:"active_operation_mode_id"`

	// Factor is the configuration of the active mode, between 0 and 1.
	Factor float64 `json:"operation_mode_factor"`

	PreviousOperationModeID s2.ID `json:"previous_operation_mode_id,omitempty"`

	TransitionTimestamp *time.Time `json:"transition_timestamp,omitempty"`
}

// Validate checks the active mode reference and the factor range.
func (s ActuatorStatus) Validate() error {
	if !s.ActiveOperationModeID.IsValid() {
		return fmt.Errorf("actuator status: %w", s2.ErrMissingID)
	}
	if s.Factor < 0 || s.Factor > 1 {
		return fmt.Errorf("actuator status: %w: %v", ErrFactorOutOfRange, s.Factor)
	}
	return nil
}

// ActuatorDescription declares a DDBC actuator with its modes,
// transitions, and timers.
type ActuatorDescription struct {
	// ID is unique within the simulation session.
	ID s2.ID `json:"id"`

	// DiagnosticLabel is for diagnostics only, never HMI.
	DiagnosticLabel string `json:"diagnostic_label,omitempty"`

	// SupportedCommodities lists the commodities this actuator operates
	// on. At least one.
	SupportedCommodities []s2.Commodity `json:"supported_commodities"`

	Status ActuatorStatus `json:"status"`

	OperationModes []OperationMode `json:"operation_modes"`
	Transitions    []s2.Transition `json:"transitions"`
	Timers         []s2.Timer      `json:"timers"`
}

// Validate checks identity, commodities, modes, cross-references, and the
// status.
func (a ActuatorDescription) Validate() error {
	if !a.ID.IsValid() {
		return fmt.Errorf("actuator: %w", s2.ErrMissingID)
	}
	if len(a.SupportedCommodities) == 0 {
		return fmt.Errorf("actuator %q: no supported commodities", a.ID)
	}
	for _, c := range a.SupportedCommodities {
		if !c.IsValid() {
			return fmt.Errorf("actuator %q: unknown commodity %q", a.ID, c)
		}
	}
	if len(a.OperationModes) == 0 {
		return fmt.Errorf("actuator %q: %w", a.ID, ErrNoOperationModes)
	}
	modeIDs := make([]s2.ID, 0, len(a.OperationModes))
	for _, m := range a.OperationModes {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("actuator %q: %w", a.ID, err)
		}
		modeIDs = append(modeIDs, m.ID)
	}
	if err := s2.ValidateTransitions(modeIDs, a.Transitions, a.Timers); err != nil {
		return fmt.Errorf("actuator %q: %w", a.ID, err)
	}
	if err := a.Status.Validate(); err != nil {
		return fmt.Errorf("actuator %q: %w", a.ID, err)
	}
	if _, ok := a.Mode(a.Status.ActiveOperationModeID); !ok {
		return fmt.Errorf("actuator %q: %w: %q", a.ID, ErrUnknownActiveMode,
			a.Status.ActiveOperationModeID)
	}
	return nil
}

// Mode returns the operation mode with the given ID.
func (a ActuatorDescription) Mode(id s2.ID) (OperationMode, bool) {
	for _, m := range a.OperationModes {
		if m.ID == id {
			return m, true
		}
	}
	return OperationMode{}, false
}

// SystemDescription is the top-level DDBC artifact. A newer ValidFrom
// supersedes older descriptions.
type SystemDescription struct {
	// ValidFrom is when this description becomes authoritative. Now or in
	// the past if immediately applicable.
	ValidFrom time.Time `json:"valid_from"`

	Actuators []ActuatorDescription `json:"actuators"`

	// PresentDemandRate is the demand the system currently needs to
	// satisfy.
	PresentDemandRate s2.NumberRange `json:"present_demand_rate"`

	// ProvidesAverageDemandRateForecast indicates the simulation publishes
	// AverageDemandRateForecast artifacts.
	ProvidesAverageDemandRateForecast bool `json:"provides_average_demand_rate_forecast"`
}

// Validate checks actuator presence, per-actuator consistency, actuator
// ID uniqueness, and the demand rate.
func (d SystemDescription) Validate() error {
	if len(d.Actuators) == 0 {
		return ErrNoActuators
	}
	seen := make(map[s2.ID]struct{}, len(d.Actuators))
	for _, a := range d.Actuators {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("actuator %q: %w", a.ID, s2.ErrDuplicateID)
		}
		seen[a.ID] = struct{}{}
	}
	if err := d.PresentDemandRate.Validate(); err != nil {
		return fmt.Errorf("present demand rate: %w", err)
	}
	return nil
}

// Actuator returns the actuator with the given ID.
func (d SystemDescription) Actuator(id s2.ID) (ActuatorDescription, bool) {
	for _, a := range d.Actuators {
		if a.ID == id {
			return a, true
		}
	}
	return ActuatorDescription{}, false
}

// Instruction activates an operation mode on one actuator at a given
// time.
type Instruction struct {
	// ID is unique within the simulation scope.
	ID s2.ID `json:"id"`

	ExecutionTime time.Time `json:"execution_time"`

	AbnormalCondition bool `json:"abnormal_condition"`

	// ActuatorID is the actuator this instruction applies to.
	ActuatorID s2.ID `json:"actuator_id"`

	// OperationModeID is the mode to apply.
	OperationModeID s2.ID `json:"operation_mode_id"`

	// Factor configures the mode, between 0 and 1.
	Factor float64 `json:"operation_mode_factor"`
}

// Validate checks identity, references, and the factor range.
func (in Instruction) Validate() error {
	if !in.ID.IsValid() {
		return fmt.Errorf("ddbc instruction: %w", s2.ErrMissingID)
	}
	if !in.ActuatorID.IsValid() {
		return fmt.Errorf("ddbc instruction %q: missing actuator ID", in.ID)
	}
	if !in.OperationModeID.IsValid() {
		return fmt.Errorf("ddbc instruction %q: missing operation mode ID", in.ID)
	}
	if in.Factor < 0 || in.Factor > 1 {
		return fmt.Errorf("ddbc instruction %q: %w: %v", in.ID, ErrFactorOutOfRange, in.Factor)
	}
	return nil
}

// AverageDemandRateForecastElement is the expected demand rate for one
// duration, with optional probability bands.
type AverageDemandRateForecastElement struct {
	Duration time.Duration `json:"duration"`

	DemandRateUpperLimit *float64 `json:"demand_rate_upper_limit,omitempty"`
	DemandRateUpper95PPR *float64 `json:"demand_rate_upper_95PPR,omitempty"`
	DemandRateUpper68PPR *float64 `json:"demand_rate_upper_68PPR,omitempty"`
	DemandRateExpected   float64  `json:"demand_rate_expected"`
	DemandRateLower68PPR *float64 `json:"demand_rate_lower_68PPR,omitempty"`
	DemandRateLower95PPR *float64 `json:"demand_rate_lower_95PPR,omitempty"`
	DemandRateLowerLimit *float64 `json:"demand_rate_lower_limit,omitempty"`
}

// AverageDemandRateForecast is a chronological series of expected demand
// rates.
type AverageDemandRateForecast struct {
	StartTime time.Time                          `json:"start_time"`
	Elements  []AverageDemandRateForecastElement `json:"elements"`
}

// Validate checks element presence and durations.
func (f AverageDemandRateForecast) Validate() error {
	if len(f.Elements) == 0 {
		return ErrNoElements
	}
	for i, e := range f.Elements {
		if e.Duration <= 0 {
			return fmt.Errorf("forecast element %d: non-positive duration %v", i, e.Duration)
		}
	}
	return nil
}
