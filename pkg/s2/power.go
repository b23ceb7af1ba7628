package s2

import (
	"errors"
	"fmt"
	"time"
)

// Power collection errors.
var (
	ErrDuplicateQuantity = errors.New("more than one value for commodity quantity")
	ErrEmptyCollection   = errors.New("collection must contain at least one element")
)

// PowerValue is a power value tagged with the commodity quantity it
// refers to.
type PowerValue struct {
	Quantity CommodityQuantity `json:"commodity_quantity"`

	// Value is expressed in the unit associated with the quantity.
	Value float64 `json:"value"`
}

// Validate checks the commodity quantity.
func (v PowerValue) Validate() error {
	if !v.Quantity.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuantity, v.Quantity)
	}
	return nil
}

// PowerForecastValue is a forecasted power value with optional confidence
// bands. The bands are 68%, 95% and absolute (100%) boundaries around the
// expected value; unset bands are nil.
type PowerForecastValue struct {
	UpperLimit *float64          `json:"value_upper_limit,omitempty"`
	Upper95PPR *float64          `json:"value_upper_95PPR,omitempty"`
	Upper68PPR *float64          `json:"value_upper_68PPR,omitempty"`
	Expected   float64           `json:"value_expected"`
	Lower68PPR *float64          `json:"value_lower_68PPR,omitempty"`
	Lower95PPR *float64          `json:"value_lower_95PPR,omitempty"`
	LowerLimit *float64          `json:"value_lower_limit,omitempty"`
	Quantity   CommodityQuantity `json:"commodity_quantity"`
}

// Validate checks the commodity quantity.
func (v PowerForecastValue) Validate() error {
	if !v.Quantity.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuantity, v.Quantity)
	}
	return nil
}

/// ValidateForecastValues checks a forecast value list: at least one value,
// each valid, at most one per commodity quantity.
func ValidateForecastValues(values []PowerForecastValue) error {
	if len(values) == 0 {
		return ErrEmptyCollection
	}
	seen := make(map[CommodityQuantity]struct{}, len(values))
	for i, v := range values {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("power value %d: %w", i, err)
		}
		if _, dup := seen[v.Quantity]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateQuantity, v.Quantity)
		}
		seen[v.Quantity] = struct{}{}
	}
	return nil
}

// PowerMeasurement is a set of power values measured at one instant.
// It contains at least one value and at most one per commodity quantity.
type PowerMeasurement struct {
	Timestamp time.Time    `json:"measurement_timestamp"`
	Values    []PowerValue `json:"values"`
}

// Validate checks the value set.
func (m PowerMeasurement) Validate() error {
	if len(m.Values) == 0 {
		return ErrEmptyCollection
	}
	seen := make(map[CommodityQuantity]struct{}, len(m.Values))
	for i, v := range m.Values {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		if _, dup := seen[v.Quantity]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateQuantity, v.Quantity)
		}
		seen[v.Quantity] = struct{}{}
	}
	return nil
}

// Value returns the measured value for the given quantity.
func (m PowerMeasurement) Value(q CommodityQuantity) (float64, bool) {
	for _, v := range m.Values {
		if v.Quantity == q {
			return v.Value, true
		}
	}
	return 0, false
}

// PowerForecastElement is a forecast segment covering one duration.
type PowerForecastElement struct {
	Duration time.Duration `json:"duration"`

	// Values holds the expected power for the window, at most one per
	// commodity quantity.
	Values []PowerForecastValue `json:"power_values"`
}

// Validate checks the segment duration and value set.
func (e PowerForecastElement) Validate() error {
	if e.Duration <= 0 {
		return fmt.Errorf("non-positive duration %v", e.Duration)
	}
	return ValidateForecastValues(e.Values)
}

// PowerForecast is a chronological series of forecast elements starting at
// StartTime.
type PowerForecast struct {
	StartTime time.Time              `json:"start_time"`
	Elements  []PowerForecastElement `json:"elements"`
}

// Validate checks that the forecast has at least one valid element.
func (f PowerForecast) Validate() error {
	if len(f.Elements) == 0 {
		return ErrEmptyCollection
	}
	for i, e := range f.Elements {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// TotalDuration returns the summed duration of all elements.
func (f PowerForecast) TotalDuration() time.Duration {
	var total time.Duration
	for _, e := range f.Elements {
		total += e.Duration
	}
	return total
}
