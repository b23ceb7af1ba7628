package s2

import (
	"errors"
	"fmt"
	"time"
)

// Cross-reference errors for system and actuator descriptions.
var (
	ErrMissingID            = errors.New("missing ID")
	ErrDuplicateID          = errors.New("duplicate ID")
	ErrUnknownOperationMode = errors.New("transition references unknown operation mode")
	ErrUnknownTimer         = errors.New("transition references unknown timer")
)

// Transition describes an allowed move between two operation modes, gated
// by timers.
type Transition struct {
	// ID is unique within the containing system or actuator description.
	ID ID `json:"id"`

	// From is the operation mode being switched away from.
	From ID `json:"from"`

	// To is the operation mode being switched to.
	To ID `json:"to"`

	// StartTimers are (re)started when this transition is initiated.
	StartTimers []ID `json:"start_timers"`

	// BlockingTimers block this transition while any of them is unfinished.
	BlockingTimers []ID `json:"blocking_timers"`

	// Costs is the absolute cost of the transition in the currency declared
	// in the simulation details, if any.
	Costs *float64 `json:"transition_costs,omitempty"`

	// Duration is the time between initiating the transition and the device
	// behaving according to the target mode. Negligible if nil.
	Duration *time.Duration `json:"transition_duration,omitempty"`

	// AbnormalConditionOnly restricts the transition to abnormal conditions.
	AbnormalConditionOnly bool `json:"abnormal_condition_only"`
}

// Validate checks the transition's own fields. Cross-references to modes
// and timers are checked by ValidateTransitions.
func (t Transition) Validate() error {
	if !t.ID.IsValid() {
		return fmt.Errorf("transition: %w", ErrMissingID)
	}
	if !t.From.IsValid() || !t.To.IsValid() {
		return fmt.Errorf("transition %q: missing from/to operation mode", t.ID)
	}
	return nil
}

// Blocked reports whether the transition is blocked at the given instant,
// looking up its blocking timers in the provided set.
func (t Transition) Blocked(timers map[ID]Timer, at time.Time) bool {
	for _, id := range t.BlockingTimers {
		if tm, ok := timers[id]; ok && !tm.Finished(at) {
			return true
		}
	}
	return false
}

// ValidateTransitions checks a mode/transition/timer set for dangling
// cross-references and duplicate IDs. modeIDs is the set of operation mode
// IDs declared in the same description.
func ValidateTransitions(modeIDs []ID, transitions []Transition, timers []Timer) error {
	modes := make(map[ID]struct{}, len(modeIDs))
	for _, id := range modeIDs {
		if !id.IsValid() {
			return fmt.Errorf("operation mode: %w", ErrMissingID)
		}
		if _, dup := modes[id]; dup {
			return fmt.Errorf("operation mode %q: %w", id, ErrDuplicateID)
		}
		modes[id] = struct{}{}
	}

	timerIDs := make(map[ID]struct{}, len(timers))
	for _, tm := range timers {
		if err := tm.Validate(); err != nil {
			return err
		}
		if _, dup := timerIDs[tm.ID]; dup {
			return fmt.Errorf("timer %q: %w", tm.ID, ErrDuplicateID)
		}
		timerIDs[tm.ID] = struct{}{}
	}

	seen := make(map[ID]struct{}, len(transitions))
	for _, tr := range transitions {
		if err := tr.Validate(); err != nil {
			return err
		}
		if _, dup := seen[tr.ID]; dup {
			return fmt.Errorf("transition %q: %w", tr.ID, ErrDuplicateID)
		}
		seen[tr.ID] = struct{}{}

		if _, ok := modes[tr.From]; !ok {
			return fmt.Errorf("transition %q from %q: %w", tr.ID, tr.From, ErrUnknownOperationMode)
		}
		if _, ok := modes[tr.To]; !ok {
			return fmt.Errorf("transition %q to %q: %w", tr.ID, tr.To, ErrUnknownOperationMode)
		}
		for _, id := range tr.StartTimers {
			if _, ok := timerIDs[id]; !ok {
				return fmt.Errorf("transition %q start timer %q: %w", tr.ID, id, ErrUnknownTimer)
			}
		}
		for _, id := range tr.BlockingTimers {
			if _, ok := timerIDs[id]; !ok {
				return fmt.Errorf("transition %q blocking timer %q: %w", tr.ID, id, ErrUnknownTimer)
			}
		}
	}
	return nil
}
