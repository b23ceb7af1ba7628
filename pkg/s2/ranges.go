package s2

import (
	"errors"
	"fmt"
)

// Range errors.
var (
	ErrInvalidRange    = errors.New("start of range is after end of range")
	ErrInvalidQuantity = errors.New("unknown commodity quantity")
)

// NumberRange is a generic numeric range. Used for prices, fill levels,
// supply rates, and other unit-agnostic ranges.
type NumberRange struct {
	// Start is the inclusive start of the range.
	Start float64 `json:"start_of_range"`

	// End is the inclusive end of the range.
	End float64 `json:"end_of_range"`
}

// NewNumberRange returns a validated number range.
func NewNumberRange(start, end float64) (NumberRange, error) {
	r := NumberRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return NumberRange{}, err
	}
	return r, nil
}

// Validate checks the range ordering.
func (r NumberRange) Validate() error {
	if r.Start > r.End {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Contains returns true if v lies within the range (inclusive).
func (r NumberRange) Contains(v float64) bool {
	return v >= r.Start && v <= r.End
}

// Overlaps returns true if the two ranges share any point.
func (r NumberRange) Overlaps(o NumberRange) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// PowerRange is a range of power values for a specific commodity quantity.
type PowerRange struct {
	Start    float64           `json:"start_of_range"`
	End      float64           `json:"end_of_range"`
	Quantity CommodityQuantity `json:"commodity_quantity"`
}

// NewPowerRange returns a validated power range.
func NewPowerRange(start, end float64, quantity CommodityQuantity) (PowerRange, error) {
	r := PowerRange{Start: start, End: end, Quantity: quantity}
	if err := r.Validate(); err != nil {
		return PowerRange{}, err
	}
	return r, nil
}

// Validate checks the range ordering and the commodity quantity.
func (r PowerRange) Validate() error {
	if r.Start > r.End {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, r.Start, r.End)
	}
	if !r.Quantity.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuantity, r.Quantity)
	}
	return nil
}

// ValidatePowerRanges checks a power range list: every range must be valid
// and there is at most one range per commodity quantity.
func ValidatePowerRanges(ranges []PowerRange) error {
	seen := make(map[CommodityQuantity]struct{}, len(ranges))
	for i, r := range ranges {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("power range %d: %w", i, err)
		}
		if _, dup := seen[r.Quantity]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateQuantity, r.Quantity)
		}
		seen[r.Quantity] = struct{}{}
	}
	return nil
}
