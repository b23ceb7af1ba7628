// Package pebc implements Power Envelope Based Control descriptors and
// instructions. The simulation publishes the constraint sets it accepts;
// the CEC answers with power envelopes the device must stay within.
package pebc

import (
	"errors"
	"fmt"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// Validation errors.
var (
	ErrNoLimitRanges   = errors.New("power constraints need at least one UPPER_LIMIT and one LOWER_LIMIT range")
	ErrNoEnvelopes     = errors.New("instruction needs at least one power envelope")
	ErrNoElements      = errors.New("power envelope needs at least one element")
	ErrInvalidWindow   = errors.New("valid_until not after valid_from")
	ErrAveragesSwapped = errors.New("lower average power above upper average power")
)

// LimitType distinguishes the two boundaries of a power envelope.
type LimitType string

const (
	// UpperLimit marks the upper boundary of a power envelope.
	UpperLimit LimitType = "UPPER_LIMIT"

	// LowerLimit marks the lower boundary of a power envelope.
	LowerLimit LimitType = "LOWER_LIMIT"
)

// IsValid returns true for a known limit type.
func (l LimitType) IsValid() bool {
	return l == UpperLimit || l == LowerLimit
}

// Consequence describes what happens to load or generation that gets
// limited.
type Consequence string

const (
	// ConsequenceVanish means limited load or generation is lost and does
	// not reappear.
	ConsequenceVanish Consequence = "VANISH"

	// ConsequenceDefer means limited load or generation is postponed to a
	// later moment.
	ConsequenceDefer Consequence = "DEFER"
)

// IsValid returns true for a known consequence type.
func (c Consequence) IsValid() bool {
	return c == ConsequenceVanish || c == ConsequenceDefer
}

// AllowedLimitRange is the range of values the CEC may pick for one
// envelope limit.
type AllowedLimitRange struct {
	Quantity s2.CommodityQuantity `json:"commodity_quantity"`

	// LimitType says whether this range constrains the upper or lower
	// envelope limit.
	LimitType LimitType `json:"limit_type"`

	// RangeBoundary bounds the values the CEC can choose.
	RangeBoundary s2.NumberRange `json:"range_boundary"`

	// AbnormalConditionOnly restricts the range to abnormal conditions.
	AbnormalConditionOnly bool `json:"abnormal_condition_only,omitempty"`
}

// Validate checks the limit range fields.
func (r AllowedLimitRange) Validate() error {
	if !r.Quantity.IsValid() {
		return fmt.Errorf("allowed limit range: %w: %q", s2.ErrInvalidQuantity, r.Quantity)
	}
	if !r.LimitType.IsValid() {
		return fmt.Errorf("allowed limit range: unknown limit type %q", r.LimitType)
	}
	if err := r.RangeBoundary.Validate(); err != nil {
		return fmt.Errorf("allowed limit range: %w", err)
	}
	return nil
}

// PowerConstraints describes the envelope limits a CEC may set during a
// validity window, and the consequence of limiting.
type PowerConstraints struct {
	ID s2.ID `json:"id"`

	ValidFrom  time.Time  `json:"valid_from"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`

	// Consequence is what limiting power does to the curtailed energy.
	Consequence Consequence `json:"consequence_type"`

	// AllowedLimitRanges must contain at least one UPPER_LIMIT and one
	// LOWER_LIMIT entry.
	AllowedLimitRanges []AllowedLimitRange `json:"allowed_limit_ranges"`
}

// Validate checks identity, window, consequence, and the limit range set.
func (c PowerConstraints) Validate() error {
	if !c.ID.IsValid() {
		return fmt.Errorf("power constraints: %w", s2.ErrMissingID)
	}
	if c.ValidUntil != nil && !c.ValidUntil.After(c.ValidFrom) {
		return fmt.Errorf("power constraints %q: %w", c.ID, ErrInvalidWindow)
	}
	if !c.Consequence.IsValid() {
		return fmt.Errorf("power constraints %q: unknown consequence %q", c.ID, c.Consequence)
	}
	var uppers, lowers int
	for i, r := range c.AllowedLimitRanges {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("power constraints %q range %d: %w", c.ID, i, err)
		}
		switch r.LimitType {
		case UpperLimit:
			uppers++
		case LowerLimit:
			lowers++
		}
	}
	if uppers == 0 || lowers == 0 {
		return fmt.Errorf("power constraints %q: %w", c.ID, ErrNoLimitRanges)
	}
	return nil
}

// EnergyConstraints bounds the average power over a window, which derives
// minimum and maximum energy content.
type EnergyConstraints struct {
	ID s2.ID `json:"id"`

	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`

	// UpperAveragePower is the maximum average power over the window.
	UpperAveragePower float64 `json:"upper_average_power"`

	// LowerAveragePower is the minimum average power over the window.
	LowerAveragePower float64 `json:"lower_average_power"`

	Quantity s2.CommodityQuantity `json:"commodity_quantity"`
}

// Validate checks identity, window, averages, and the quantity.
func (c EnergyConstraints) Validate() error {
	if !c.ID.IsValid() {
		return fmt.Errorf("energy constraints: %w", s2.ErrMissingID)
	}
	if !c.ValidUntil.After(c.ValidFrom) {
		return fmt.Errorf("energy constraints %q: %w", c.ID, ErrInvalidWindow)
	}
	if c.LowerAveragePower > c.UpperAveragePower {
		return fmt.Errorf("energy constraints %q: %w", c.ID, ErrAveragesSwapped)
	}
	if !c.Quantity.IsValid() {
		return fmt.Errorf("energy constraints %q: %w: %q", c.ID, s2.ErrInvalidQuantity, c.Quantity)
	}
	return nil
}

// PowerEnvelopeElement is one segment of a power envelope.
type PowerEnvelopeElement struct {
	Duration time.Duration `json:"duration"`

	// UpperLimit and LowerLimit bound device power for the duration. They
	// must fall within the matching AllowedLimitRange of the governing
	// PowerConstraints.
	UpperLimit float64 `json:"upper_limit"`
	LowerLimit float64 `json:"lower_limit"`
}

// Validate checks segment duration and limit ordering.
func (e PowerEnvelopeElement) Validate() error {
	if e.Duration <= 0 {
		return fmt.Errorf("envelope element: non-positive duration %v", e.Duration)
	}
	if e.LowerLimit > e.UpperLimit {
		return fmt.Errorf("envelope element: lower limit %v above upper limit %v",
			e.LowerLimit, e.UpperLimit)
	}
	return nil
}

// PowerEnvelope is a chronological series of power limits for one
// commodity quantity.
type PowerEnvelope struct {
	// ID is unique within the simulation scope.
	ID s2.ID `json:"id"`

	Quantity s2.CommodityQuantity `json:"commodity_quantity"`

	// Elements hold the time-varying limits, in chronological order.
	Elements []PowerEnvelopeElement `json:"power_envelope_elements"`
}

// Validate checks identity, quantity, and the element series.
func (p PowerEnvelope) Validate() error {
	if !p.ID.IsValid() {
		return fmt.Errorf("power envelope: %w", s2.ErrMissingID)
	}
	if !p.Quantity.IsValid() {
		return fmt.Errorf("power envelope %q: %w: %q", p.ID, s2.ErrInvalidQuantity, p.Quantity)
	}
	if len(p.Elements) == 0 {
		return fmt.Errorf("power envelope %q: %w", p.ID, ErrNoElements)
	}
	for i, e := range p.Elements {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("power envelope %q element %d: %w", p.ID, i, err)
		}
	}
	return nil
}

// TotalDuration returns the summed duration of all elements.
func (p PowerEnvelope) TotalDuration() time.Duration {
	var total time.Duration
	for _, e := range p.Elements {
		total += e.Duration
	}
	return total
}

// Instruction commands a device to follow power envelopes from a given
// execution time.
type Instruction struct {
	// ID is unique within the simulation scope.
	ID s2.ID `json:"id"`

	ExecutionTime time.Time `json:"execution_time"`

	// AbnormalCondition marks instructions issued under abnormal grid
	// conditions.
	AbnormalCondition bool `json:"abnormal_condition"`

	// PowerConstraintsID references the PowerConstraints the envelopes were
	// derived from.
	PowerConstraintsID s2.ID `json:"power_constraints_id"`

	// PowerEnvelopes holds the envelopes to follow, at most one per
	// commodity quantity.
	PowerEnvelopes []PowerEnvelope `json:"power_envelopes"`
}

// Validate checks identity, the constraints reference, and the envelope
// set (at most one envelope per commodity quantity).
func (in Instruction) Validate() error {
	if !in.ID.IsValid() {
		return fmt.Errorf("pebc instruction: %w", s2.ErrMissingID)
	}
	if !in.PowerConstraintsID.IsValid() {
		return fmt.Errorf("pebc instruction %q: missing power constraints ID", in.ID)
	}
	if len(in.PowerEnvelopes) == 0 {
		return fmt.Errorf("pebc instruction %q: %w", in.ID, ErrNoEnvelopes)
	}
	seen := make(map[s2.CommodityQuantity]struct{}, len(in.PowerEnvelopes))
	for i, p := range in.PowerEnvelopes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pebc instruction %q envelope %d: %w", in.ID, i, err)
		}
		if _, dup := seen[p.Quantity]; dup {
			return fmt.Errorf("pebc instruction %q: %w: %q", in.ID, s2.ErrDuplicateQuantity, p.Quantity)
		}
		seen[p.Quantity] = struct{}{}
	}
	return nil
}
