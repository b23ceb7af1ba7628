// Package capability parses and checks conformance statements: YAML
// documents declaring which control paradigms and data artifacts a
// simulation implementation claims to support. A statement is checked
// against the SimulationDetails the implementation actually announces,
// catching drift between documentation and behavior before deployment.
package capability

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// Statement errors.
var (
	ErrNoControlTypes     = errors.New("statement declares no control types")
	ErrUndeclaredControl  = errors.New("control type not declared in statement")
	ErrForecastMismatch   = errors.New("forecast provisioning differs from statement")
	ErrCurrencyMismatch   = errors.New("cost publication differs from statement")
	ErrUndeclaredQuantity = errors.New("measurement quantity not declared in statement")
)

// DeviceInfo identifies the simulation a statement applies to.
type DeviceInfo struct {
	Name         string `yaml:"name"`
	Manufacturer string `yaml:"manufacturer"`
	Model        string `yaml:"model"`
	Version      string `yaml:"version"`
}

// StorageCapabilities lists the optional FRBC storage artifacts the
// simulation provides.
type StorageCapabilities struct {
	ProvidesLeakageBehaviour       bool `yaml:"provides_leakage_behaviour"`
	ProvidesUsageForecast          bool `yaml:"provides_usage_forecast"`
	ProvidesFillLevelTargetProfile bool `yaml:"provides_fill_level_target_profile"`
}

// Statement is one parsed conformance statement.
type Statement struct {
	Device DeviceInfo `yaml:"device"`

	// ControlTypes lists the paradigms the simulation claims to support.
	ControlTypes []s2.ControlType `yaml:"control_types"`

	// ProvidesForecast declares power forecast provisioning.
	ProvidesForecast bool `yaml:"provides_forecast"`

	// PublishesCosts declares cost publication; Currency is then
	// mandatory.
	PublishesCosts bool        `yaml:"publishes_costs"`
	Currency       s2.Currency `yaml:"currency"`

	// MeasurementTypes lists every quantity the simulation claims to
	// measure.
	MeasurementTypes []s2.CommodityQuantity `yaml:"measurement_types"`

	// Storage is only meaningful when FILL_RATE_BASED_CONTROL is
	// declared.
	Storage StorageCapabilities `yaml:"storage"`
}

// Parse parses a YAML conformance statement.
func Parse(data []byte) (*Statement, error) {
	var st Statement
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := st.validate(); err != nil {
		return nil, err
	}
	return &st, nil
}

// ParseFile parses a YAML conformance statement from a file.
func ParseFile(path string) (*Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}
	return Parse(data)
}

func (st Statement) validate() error {
	if len(st.ControlTypes) == 0 {
		return ErrNoControlTypes
	}
	for _, ct := range st.ControlTypes {
		if !ct.IsValid() {
			return fmt.Errorf("unknown control type %q", ct)
		}
	}
	for _, q := range st.MeasurementTypes {
		if !q.IsValid() {
			return fmt.Errorf("unknown measurement quantity %q", q)
		}
	}
	if st.PublishesCosts && !st.Currency.IsValid() {
		return s2.ErrMissingCurrency
	}
	return nil
}

// Supports returns true if the statement declares the given control
// type.
func (st Statement) Supports(ct s2.ControlType) bool {
	for _, c := range st.ControlTypes {
		if c == ct {
			return true
		}
	}
	return false
}

// Check verifies that announced simulation details stay within the
// statement: no undeclared control types, measurement quantities, or
// capability flags. The details may announce less than the statement
// declares; announcing more is a conformance failure.
func (st Statement) Check(details s2.SimulationDetails) error {
	if err := details.Validate(); err != nil {
		return fmt.Errorf("invalid simulation details: %w", err)
	}
	for _, ct := range details.AvailableControlTypes {
		if !ct.IsControllable() {
			continue
		}
		if !st.Supports(ct) {
			return fmt.Errorf("%w: %q", ErrUndeclaredControl, ct)
		}
	}
	if details.ProvidesForecast && !st.ProvidesForecast {
		return ErrForecastMismatch
	}
	if details.PublishesCosts && !st.PublishesCosts {
		return ErrCurrencyMismatch
	}
	for _, q := range details.ProvidesPowerMeasurementTypes {
		if !st.measures(q) {
			return fmt.Errorf("%w: %q", ErrUndeclaredQuantity, q)
		}
	}
	return nil
}

func (st Statement) measures(q s2.CommodityQuantity) bool {
	for _, m := range st.MeasurementTypes {
		if m == q {
			return true
		}
	}
	return false
}
