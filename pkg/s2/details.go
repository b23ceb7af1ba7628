package s2

import (
	"errors"
	"fmt"
	"time"
)

// Simulation detail errors.
var (
	ErrMissingCurrency = errors.New("currency required when cost information is published")
	ErrNoRoles         = errors.New("simulation must provide at least one role")
)

// Role links a role type to the commodity it applies to.
type Role struct {
	Role      RoleType  `json:"role"`
	Commodity Commodity `json:"commodity"`
}

// Validate checks both enumeration values.
func (r Role) Validate() error {
	if !r.Role.IsValid() {
		return fmt.Errorf("unknown role type %q", r.Role)
	}
	if !r.Commodity.IsValid() {
		return fmt.Errorf("unknown commodity %q", r.Commodity)
	}
	return nil
}

// SimulationDetails describes a Resource Simulation's identity and
// capabilities. It is the first artifact a simulation publishes to the
// CEC.
type SimulationDetails struct {
	// SimulationID is unique within the scope of the CEC.
	SimulationID ID `json:"simulation_id"`

	// Name is a human readable name given by the user.
	Name string `json:"name,omitempty"`

	// Roles lists the energy roles this simulation provides.
	Roles []Role `json:"roles"`

	Manufacturer    string `json:"manufacturer,omitempty"`
	Model           string `json:"model,omitempty"`
	SerialNumber    string `json:"serial_number,omitempty"`
	FirmwareVersion string `json:"firmware_version,omitempty"`

	// InstructionProcessingDelay is the average time the simulation needs
	// to process and execute an instruction.
	InstructionProcessingDelay time.Duration `json:"instruction_processing_delay"`

	// AvailableControlTypes lists the control paradigms this simulation
	// supports.
	AvailableControlTypes []ControlType `json:"available_control_types"`

	// Currency applies to all cost information. Mandatory if cost
	// information is published.
	Currency Currency `json:"currency,omitempty"`

	// PublishesCosts indicates that cost information will be published,
	// which makes Currency mandatory.
	PublishesCosts bool `json:"publishes_costs,omitempty"`

	// ProvidesForecast indicates the simulation can provide PowerForecasts.
	ProvidesForecast bool `json:"provides_forecast"`

	// ProvidesPowerMeasurementTypes lists every commodity quantity this
	// simulation can measure.
	ProvidesPowerMeasurementTypes []CommodityQuantity `json:"provides_power_measurement_types"`
}

// Validate checks identity, roles, control types, and the currency rule.
func (d SimulationDetails) Validate() error {
	if !d.SimulationID.IsValid() {
		return fmt.Errorf("simulation details: %w", ErrMissingID)
	}
	if len(d.Roles) == 0 {
		return ErrNoRoles
	}
	for i, r := range d.Roles {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("role %d: %w", i, err)
		}
	}
	for _, ct := range d.AvailableControlTypes {
		if !ct.IsValid() {
			return fmt.Errorf("unknown control type %q", ct)
		}
	}
	for _, q := range d.ProvidesPowerMeasurementTypes {
		if !q.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidQuantity, q)
		}
	}
	if d.PublishesCosts && !d.Currency.IsValid() {
		return ErrMissingCurrency
	}
	if d.Currency != "" && !d.Currency.IsValid() {
		return fmt.Errorf("unknown currency %q", d.Currency)
	}
	return nil
}

// SupportsControlType returns true if the given control type is listed as
// available.
func (d SimulationDetails) SupportsControlType(ct ControlType) bool {
	for _, c := range d.AvailableControlTypes {
		if c == ct {
			return true
		}
	}
	return false
}
