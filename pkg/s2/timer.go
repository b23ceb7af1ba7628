package s2

import (
	"fmt"
	"time"
)

// Timer is a timing constraint gating transitions between operation modes.
// A timer is finished when FinishedAt is not in the future relative to the
// evaluation instant; unfinished timers block the transitions that list
// them.
type Timer struct {
	// ID is unique within the containing system or actuator description.
	ID ID `json:"id"`

	// DiagnosticLabel is a human readable name for diagnostics only, never
	// for HMI use.
	DiagnosticLabel string `json:"diagnostic_label,omitempty"`

	// Duration is the time the timer takes to finish after being started.
	Duration time.Duration `json:"duration"`

	// FinishedAt is when the timer will be (or was) finished. A timer that
	// was never started carries an arbitrary timestamp in the past.
	FinishedAt time.Time `json:"finished_at"`
}

// Validate checks the timer fields.
func (t Timer) Validate() error {
	if !t.ID.IsValid() {
		return fmt.Errorf("timer: %w", ErrMissingID)
	}
	if t.Duration < 0 {
		return fmt.Errorf("timer %q: negative duration %v", t.ID, t.Duration)
	}
	return nil
}

// Finished reports whether the timer is finished at the given instant.
func (t Timer) Finished(at time.Time) bool {
	return !t.FinishedAt.After(at)
}

// Started returns a copy of the timer restarted at the given instant.
func (t Timer) Started(at time.Time) Timer {
	t.FinishedAt = at.Add(t.Duration)
	return t
}
