// Package frbc implements Fill Rate Based Control descriptors and
// instructions. An FRBC system couples actuators, whose operation modes
// change a storage fill level, with the storage itself and its leakage,
// usage, and fill-level-target characteristics.
package frbc

import (
	"errors"
	"fmt"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// Validation errors.
var (
	ErrNoActuators           = errors.New("system description needs at least one actuator")
	ErrNoOperationModes      = errors.New("actuator needs at least one operation mode")
	ErrNoElements            = errors.New("needs at least one element")
	ErrFactorOutOfRange      = errors.New("operation mode factor outside [0, 1]")
	ErrUnknownActiveMode     = errors.New("status references unknown operation mode")
	ErrElementsNotContiguous = errors.New("fill level elements not contiguous or overlapping")
	ErrFillLevelOutOfRange   = errors.New("fill level outside declared range")
)

// OperationModeElement describes actuator behavior within one fill level
// range: the achievable fill rate and the power cost of running there.
type OperationModeElement struct {
	// FillLevelRange is the storage fill interval this element applies to.
	FillLevelRange s2.NumberRange `json:"fill_level_range"`

	// FillRate is the change in fill level per second, mapped from factor
	// 0 to 1.
	FillRate s2.NumberRange `json:"fill_rate"`

	// PowerRanges hold produced or consumed power per commodity quantity.
	PowerRanges []s2.PowerRange `json:"power_ranges"`

	// RunningCosts is the additional cost per second excluding commodity
	// cost.
	RunningCosts *s2.NumberRange `json:"running_costs,omitempty"`
}

// Validate checks the ranges of one element.
func (e OperationModeElement) Validate() error {
	if err := e.FillLevelRange.Validate(); err != nil {
		return fmt.Errorf("fill level range: %w", err)
	}
	if err := e.FillRate.Validate(); err != nil {
		return fmt.Errorf("fill rate: %w", err)
	}
	if len(e.PowerRanges) == 0 {
		return errors.New("no power ranges")
	}
	if err := s2.ValidatePowerRanges(e.PowerRanges); err != nil {
		return err
	}
	if e.RunningCosts != nil {
		if err := e.RunningCosts.Validate(); err != nil {
			return fmt.Errorf("running costs: %w", err)
		}
	}
	return nil
}

// validateContiguous checks that fill level ranges are ordered,
// non-overlapping, and contiguous: each element starts where the previous
// one ended.
func validateContiguous(ranges []s2.NumberRange) error {
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Start != ranges[i-1].End {
			return fmt.Errorf("%w: element %d starts at %v, previous ends at %v",
				ErrElementsNotContiguous, i, ranges[i].Start, ranges[i-1].End)
		}
	}
	return nil
}

// OperationMode is one way to operate an actuator, with properties that
// vary by storage fill level.
type OperationMode struct {
	// ID is unique within the actuator description.
	ID s2.ID `json:"id"`

	// DiagnosticLabel is for diagnostics only, never HMI.
	DiagnosticLabel string `json:"diagnostic_label,omitempty"`

	// Elements hold the fill-level-dependent properties. Their fill level
	// ranges must be contiguous and non-overlapping.
	Elements []OperationModeElement `json:"elements"`

	// AbnormalConditionOnly restricts the mode to abnormal conditions.
	AbnormalConditionOnly bool `json:"abnormal_condition_only"`
}

// Validate checks identity, each element, and the contiguity of the fill
// level ranges.
func (m OperationMode) Validate() error {
	if !m.ID.IsValid() {
		return fmt.Errorf("operation mode: %w", s2.ErrMissingID)
	}
	if len(m.Elements) == 0 {
		return fmt.Errorf("operation mode %q: %w", m.ID, ErrNoElements)
	}
	ranges := make([]s2.NumberRange, 0, len(m.Elements))
	for i, e := range m.Elements {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("operation mode %q element %d: %w", m.ID, i, err)
		}
		ranges = append(ranges, e.FillLevelRange)
	}
	if err := validateContiguous(ranges); err != nil {
		return fmt.Errorf("operation mode %q: %w", m.ID, err)
	}
	return nil
}

// ElementForFillLevel returns the element applying to the given fill
// level.
func (m OperationMode) ElementForFillLevel(level float64) (OperationModeElement, bool) {
	for _, e := range m.Elements {
		if e.FillLevelRange.Contains(level) {
			return e, true
		}
	}
	return OperationModeElement{}, false
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

// ActuatorDescription declares an actuator: its operation modes, allowed
// transitions, timers, and current status.
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

// StorageStatus is the current fill level of the storage.
type StorageStatus struct {
	PresentFillLevel float64 `json:"present_fill_level"`
}

// LeakageBehaviourElement gives the leakage rate within one fill level
// range.
type LeakageBehaviourElement struct {
	FillLevelRange s2.NumberRange `json:"fill_level_range"`

	// LeakageRate is the fill level decrease per second.
	LeakageRate float64 `json:"leakage_rate"`
}

// LeakageBehaviour models how the storage loses content over time. A
// newer ValidFrom supersedes older behaviours.
type LeakageBehaviour struct {
	ValidFrom time.Time                 `json:"valid_from"`
	Elements  []LeakageBehaviourElement `json:"elements"`
}

// Validate checks element presence and contiguity.
func (l LeakageBehaviour) Validate() error {
	if len(l.Elements) == 0 {
		return fmt.Errorf("leakage behaviour: %w", ErrNoElements)
	}
	ranges := make([]s2.NumberRange, 0, len(l.Elements))
	for i, e := range l.Elements {
		if err := e.FillLevelRange.Validate(); err != nil {
			return fmt.Errorf("leakage behaviour element %d: %w", i, err)
		}
		ranges = append(ranges, e.FillLevelRange)
	}
	if err := validateContiguous(ranges); err != nil {
		return fmt.Errorf("leakage behaviour: %w", err)
	}
	return nil
}

// UsageForecastElement is the expected usage rate for one duration, with
// optional probability bands.
type UsageForecastElement struct {
	Duration time.Duration `json:"duration"`

	UsageRateUpperLimit *float64 `json:"usage_rate_upper_limit,omitempty"`
	UsageRateUpper95PPR *float64 `json:"usage_rate_upper_95PPR,omitempty"`
	UsageRateUpper68PPR *float64 `json:"usage_rate_upper_68PPR,omitempty"`
	UsageRateExpected   float64  `json:"usage_rate_expected"`
	UsageRateLower68PPR *float64 `json:"usage_rate_lower_68PPR,omitempty"`
	UsageRateLower95PPR *float64 `json:"usage_rate_lower_95PPR,omitempty"`
	UsageRateLowerLimit *float64 `json:"usage_rate_lower_limit,omitempty"`
}

// UsageForecast is a chronological series of expected usage rates.
type UsageForecast struct {
	StartTime time.Time              `json:"start_time"`
	Elements  []UsageForecastElement `json:"elements"`
}

// Validate checks element presence and durations.
func (f UsageForecast) Validate() error {
	if len(f.Elements) == 0 {
		return fmt.Errorf("usage forecast: %w", ErrNoElements)
	}
	for i, e := range f.Elements {
		if e.Duration <= 0 {
			return fmt.Errorf("usage forecast element %d: non-positive duration %v", i, e.Duration)
		}
	}
	return nil
}

// FillLevelTargetProfileElement is a target fill level range for one
// duration.
type FillLevelTargetProfileElement struct {
	Duration       time.Duration  `json:"duration"`
	FillLevelRange s2.NumberRange `json:"fill_level_range"`
}

// FillLevelTargetProfile is a chronological series of target fill level
// ranges for the control system to achieve.
type FillLevelTargetProfile struct {
	StartTime time.Time                       `json:"start_time"`
	Elements  []FillLevelTargetProfileElement `json:"elements"`
}

// Validate checks element presence, durations, and ranges.
func (p FillLevelTargetProfile) Validate() error {
	if len(p.Elements) == 0 {
		return fmt.Errorf("fill level target profile: %w", ErrNoElements)
	}
	for i, e := range p.Elements {
		if e.Duration <= 0 {
			return fmt.Errorf("fill level target element %d: non-positive duration %v", i, e.Duration)
		}
		if err := e.FillLevelRange.Validate(); err != nil {
			return fmt.Errorf("fill level target element %d: %w", i, err)
		}
	}
	return nil
}

// StorageDescription declares the storage: its fill level range, status,
// and which behavioral artifacts the simulation can provide.
type StorageDescription struct {
	// DiagnosticLabel is for diagnostics only, never HMI.
	DiagnosticLabel string `json:"diagnostic_label,omitempty"`

	// FillLevelLabel describes the fill level unit, e.g. "%" or "degC".
	FillLevelLabel string `json:"fill_level_label,omitempty"`

	ProvidesLeakageBehaviour       bool `json:"provides_leakage_behaviour"`
	ProvidesFillLevelTargetProfile bool `json:"provides_fill_level_target_profile"`
	ProvidesUsageForecast          bool `json:"provides_usage_forecast"`

	// FillLevelRange is the interval the fill level should stay within.
	FillLevelRange s2.NumberRange `json:"fill_level_range"`

	Status StorageStatus `json:"status"`

	LeakageBehaviour *LeakageBehaviour `json:"leakage_behaviour,omitempty"`
}

// Validate checks the fill level range, the present fill level, and any
// attached leakage behaviour.
func (d StorageDescription) Validate() error {
	if err := d.FillLevelRange.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if !d.FillLevelRange.Contains(d.Status.PresentFillLevel) {
		return fmt.Errorf("storage: %w: %v not in [%v, %v]", ErrFillLevelOutOfRange,
			d.Status.PresentFillLevel, d.FillLevelRange.Start, d.FillLevelRange.End)
	}
	if d.LeakageBehaviour != nil {
		if err := d.LeakageBehaviour.Validate(); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}
	return nil
}

// SystemDescription is the top-level FRBC artifact: all actuators plus
// the storage. A newer ValidFrom supersedes older descriptions.
type SystemDescription struct {
	ValidFrom time.Time             `json:"valid_from"`
	Actuators []ActuatorDescription `json:"actuators"`
	Storage   StorageDescription    `json:"storage"`
}

// Validate checks actuator presence, per-actuator consistency, actuator
// ID uniqueness, and the storage.
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
	return d.Storage.Validate()
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
	// ID is unique within the simulation session.
	ID s2.ID `json:"id"`

	// ActuatorID is the actuator this instruction applies to.
	ActuatorID s2.ID `json:"actuator_id"`

	// OperationModeID is the mode to activate.
	OperationModeID s2.ID `json:"operation_mode"`

	// Factor configures the mode, between 0 and 1.
	Factor float64 `json:"operation_mode_factor"`

	ExecutionTime time.Time `json:"execution_time"`

	AbnormalCondition bool `json:"abnormal_condition"`
}

// Validate checks identity, references, and the factor range.
func (in Instruction) Validate() error {
	if !in.ID.IsValid() {
		return fmt.Errorf("frbc instruction: %w", s2.ErrMissingID)
	}
	if !in.ActuatorID.IsValid() {
		return fmt.Errorf("frbc instruction %q: missing actuator ID", in.ID)
	}
	if !in.OperationModeID.IsValid() {
		return fmt.Errorf("frbc instruction %q: missing operation mode ID", in.ID)
	}
	if in.Factor < 0 || in.Factor > 1 {
		return fmt.Errorf("frbc instruction %q: %w: %v", in.ID, ErrFactorOutOfRange, in.Factor)
	}
	return nil
}
