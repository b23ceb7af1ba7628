// Package ombc implements Operation Mode Based Control descriptors and
// instructions. The simulation publishes its operation modes, allowed
// transitions and timers; the CEC activates one mode at a time with a
// configuration factor.
package ombc

import (
	"errors"
	"fmt"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// Validation errors.
var (
	ErrNoOperationModes  = errors.New("system description needs at least one operation mode")
	ErrFactorOutOfRange  = errors.New("operation mode factor outside [0, 1]")
	ErrUnknownActiveMode = errors.New("status references unknown operation mode")
)

// OperationMode is one discrete behavior the device can be commanded
// into. Power characteristics scale with the operation mode factor over
// the declared ranges.
type OperationMode struct {
	// ID is unique within the system description.
	ID s2.ID `json:"id"`

	// DiagnosticLabel is for diagnostics only, never HMI.
	DiagnosticLabel string `json:"diagnostic_label,omitempty"`

	// PowerRanges map factor 0..1 to consumption or production, at most
	// one range per commodity quantity.
	PowerRanges []s2.PowerRange `json:"power_ranges"`

	// RunningCosts is the estimated additional cost per second excluding
	// commodity cost; the range expresses uncertainty.
	RunningCosts *s2.NumberRange `json:"running_costs,omitempty"`

	// AbnormalConditionOnly restricts the mode to abnormal conditions.
	AbnormalConditionOnly bool `json:"abnormal_condition_only"`
}

// Validate checks identity, power ranges, and running costs.
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
	if m.RunningCosts != nil {
		if err := m.RunningCosts.Validate(); err != nil {
			return fmt.Errorf("operation mode %q running costs: %w", m.ID, err)
		}
	}
	return nil
}

// Status is the current operational state of an OMBC-controlled device.
type Status struct {
	ActiveOperationModeID s2.ID `json:"active_operation_mode_id"`

	// Factor is the configuration of the active mode, between 0 and 1.
	Factor float64 `json:"operation_mode_factor"`

	PreviousOperationModeID s2.ID `json:"previous_operation_mode_id,omitempty"`

	// TransitionTimestamp is when the active mode was entered, if known.
	TransitionTimestamp *time.Time `json:"transition_timestamp,omitempty"`
}

// Validate checks the active mode reference and the factor range.
func (s Status) Validate() error {
	if !s.ActiveOperationModeID.IsValid() {
		return fmt.Errorf("ombc status: %w", s2.ErrMissingID)
	}
	if s.Factor < 0 || s.Factor > 1 {
		return fmt.Errorf("ombc status: %w: %v", ErrFactorOutOfRange, s.Factor)
	}
	return nil
}

// SystemDescription is the complete operational framework of an
// OMBC-controlled device. A newer ValidFrom supersedes older
// descriptions.
type SystemDescription struct {
	// ValidFrom is when this description becomes authoritative. Now or in
	// the past if immediately applicable.
	ValidFrom time.Time `json:"valid_from"`

	OperationModes []OperationMode `json:"operation_modes"`
	Transitions    []s2.Transition `json:"transitions"`
	Timers         []s2.Timer      `json:"timers"`

	// Status is the current state snapshot.
	Status Status `json:"status"`
}

// Validate checks the modes, the transition/timer cross-references, and
// that the status points at a declared mode. A description with dangling
// references is rejected as a whole.
func (d SystemDescription) Validate() error {
	if len(d.OperationModes) == 0 {
		return ErrNoOperationModes
	}
	modeIDs := make([]s2.ID, 0, len(d.OperationModes))
	for _, m := range d.OperationModes {
		if err := m.Validate(); err != nil {
			return err
		}
		modeIDs = append(modeIDs, m.ID)
	}
	if err := s2.ValidateTransitions(modeIDs, d.Transitions, d.Timers); err != nil {
		return err
	}
	if err := d.Status.Validate(); err != nil {
		return err
	}
	if _, ok := d.Mode(d.Status.ActiveOperationModeID); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActiveMode, d.Status.ActiveOperationModeID)
	}
	return nil
}

// Mode returns the operation mode with the given ID.
func (d SystemDescription) Mode(id s2.ID) (OperationMode, bool) {
	for _, m := range d.OperationModes {
		if m.ID == id {
			return m, true
		}
	}
	return OperationMode{}, false
}

// Instruction activates an operation mode at a given time.
type Instruction struct {
	// ID is unique within the simulation session.
	ID s2.ID `json:"id"`

	ExecutionTime time.Time `json:"execution_time"`

	OperationModeID s2.ID `json:"operation_mode_id"`

	// Factor configures the mode, between 0 and 1.
	Factor float64 `json:"operation_mode_factor"`

	AbnormalCondition bool `json:"abnormal_condition"`
}

// Validate checks identity, the mode reference, and the factor range.
func (in Instruction) Validate() error {
	if !in.ID.IsValid() {
		return fmt.Errorf("ombc instruction: %w", s2.ErrMissingID)
	}
	if !in.OperationModeID.IsValid() {
		return fmt.Errorf("ombc instruction %q: missing operation mode ID", in.ID)
	}
	if in.Factor < 0 || in.Factor > 1 {
		return fmt.Errorf("ombc instruction %q: %w: %v", in.ID, ErrFactorOutOfRange, in.Factor)
	}
	return nil
}
