// Package ppbc implements Power Profile Based Control descriptors and
// instructions. The simulation publishes a power profile definition made
// of sequence containers; the CEC schedules one alternative sequence per
// container and may interrupt and resume interruptible sequences.
package ppbc

import (
	"errors"
	"fmt"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// Validation errors.
var (
	ErrNoContainers    = errors.New("power profile definition needs at least one sequence container")
	ErrNoSequences     = errors.New("sequence container needs at least one power sequence")
	ErrNoElements      = errors.New("power sequence needs at least one element")
	ErrInvalidWindow   = errors.New("end_time not after start_time")
	ErrUnknownSequence = errors.New("unknown sequence reference")
)

// SequenceStatus is the execution status of a power sequence.
type SequenceStatus string

const (
	SequenceNotScheduled SequenceStatus = "NOT_SCHEDULED"
	SequenceScheduled    SequenceStatus = "SCHEDULED"
	SequenceExecuting    SequenceStatus = "EXECUTING"
	SequenceInterrupted  SequenceStatus = "INTERRUPTED"
	SequenceFinished     SequenceStatus = "FINISHED"
	SequenceAborted      SequenceStatus = "ABORTED"
)

// IsValid returns true for a known sequence status.
func (s SequenceStatus) IsValid() bool {
	switch s {
	case SequenceNotScheduled, SequenceScheduled, SequenceExecuting,
		SequenceInterrupted, SequenceFinished, SequenceAborted:
		return true
	}
	return false
}

// PowerSequenceElement is a time segment of a power sequence with its
// forecasted power values.
type PowerSequenceElement struct {
	Duration time.Duration `json:"duration"`

	// Values hold forecasted power for the duration, at most one per
	// commodity quantity.
	Values []s2.PowerForecastValue `json:"power_values"`
}

// Validate checks the segment duration and value set.
func (e PowerSequenceElement) Validate() error {
	if e.Duration <= 0 {
		return fmt.Errorf("sequence element: non-positive duration %v", e.Duration)
	}
	return s2.ValidateForecastValues(e.Values)
}

// PowerSequence is one alternative power behavior pattern over time.
type PowerSequence struct {
	// ID is unique within the containing sequence container.
	ID s2.ID `json:"id"`

	// Elements hold the power behavior, in chronological order.
	Elements []PowerSequenceElement `json:"elements"`

	// IsInterruptible marks sequences the CEC may interrupt.
	IsInterruptible bool `json:"is_interruptible"`

	// MaxPauseBefore bounds the pause between the previous sequence and
	// this one. Nil means unbounded.
	MaxPauseBefore *time.Duration `json:"max_pause_before,omitempty"`

	// AbnormalConditionOnly restricts the sequence to abnormal conditions.
	AbnormalConditionOnly bool `json:"abnormal_condition_only"`
}

// Validate checks identity and the element series.
func (p PowerSequence) Validate() error {
	if !p.ID.IsValid() {
		return fmt.Errorf("power sequence: %w", s2.ErrMissingID)
	}
	if len(p.Elements) == 0 {
		return fmt.Errorf("power sequence %q: %w", p.ID, ErrNoElements)
	}
	for i, e := range p.Elements {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("power sequence %q element %d: %w", p.ID, i, err)
		}
	}
	if p.MaxPauseBefore != nil && *p.MaxPauseBefore < 0 {
		return fmt.Errorf("power sequence %q: negative max pause", p.ID)
	}
	return nil
}

// TotalDuration returns the summed duration of all elements.
func (p PowerSequence) TotalDuration() time.Duration {
	var total time.Duration
	for _, e := range p.Elements {
		total += e.Duration
	}
	return total
}

// PowerSequenceContainer groups alternative sequences for one operational
// phase; the CEC selects exactly one.
type PowerSequenceContainer struct {
	// ID is unique within the containing power profile definition.
	ID s2.ID `json:"id"`

	Sequences []PowerSequence `json:"power_sequences"`
}

// Validate checks identity and the alternative set, including sequence ID
// uniqueness within the container.
func (c PowerSequenceContainer) Validate() error {
	if !c.ID.IsValid() {
		return fmt.Errorf("sequence container: %w", s2.ErrMissingID)
	}
	if len(c.Sequences) == 0 {
		return fmt.Errorf("sequence container %q: %w", c.ID, ErrNoSequences)
	}
	seen := make(map[s2.ID]struct{}, len(c.Sequences))
	for _, seq := range c.Sequences {
		if err := seq.Validate(); err != nil {
			return fmt.Errorf("sequence container %q: %w", c.ID, err)
		}
		if _, dup := seen[seq.ID]; dup {
			return fmt.Errorf("sequence container %q sequence %q: %w", c.ID, seq.ID, s2.ErrDuplicateID)
		}
		seen[seq.ID] = struct{}{}
	}
	return nil
}

// PowerProfileDefinition is the complete profile the simulation offers:
// chronologically ordered containers of alternative sequences plus the
// window they must execute within.
type PowerProfileDefinition struct {
	// ID is unique within the simulation session.
	ID s2.ID `json:"id"`

	// StartTime is the earliest possible start of the first sequence.
	StartTime time.Time `json:"start_time"`

	// EndTime is the latest completion of the last sequence.
	EndTime time.Time `json:"end_time"`

	Containers []PowerSequenceContainer `json:"power_sequences_containers"`
}

// Validate checks identity, the execution window, container IDs, and each
// container.
func (d PowerProfileDefinition) Validate() error {
	if !d.ID.IsValid() {
		return fmt.Errorf("power profile definition: %w", s2.ErrMissingID)
	}
	if !d.EndTime.After(d.StartTime) {
		return fmt.Errorf("power profile definition %q: %w", d.ID, ErrInvalidWindow)
	}
	if len(d.Containers) == 0 {
		return fmt.Errorf("power profile definition %q: %w", d.ID, ErrNoContainers)
	}
	seen := make(map[s2.ID]struct{}, len(d.Containers))
	for _, c := range d.Containers {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("power profile definition %q: %w", d.ID, err)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("power profile definition %q container %q: %w", d.ID, c.ID, s2.ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

// FindSequence resolves a (container, sequence) reference inside the
// definition.
func (d PowerProfileDefinition) FindSequence(containerID, sequenceID s2.ID) (PowerSequence, error) {
	for _, c := range d.Containers {
		if c.ID != containerID {
			continue
		}
		for _, seq := range c.Sequences {
			if seq.ID == sequenceID {
				return seq, nil
			}
		}
		return PowerSequence{}, fmt.Errorf("container %q sequence %q: %w",
			containerID, sequenceID, ErrUnknownSequence)
	}
	return PowerSequence{}, fmt.Errorf("container %q: %w", containerID, ErrUnknownSequence)
}

// ContainerStatus reports execution progress for one sequence container.
type ContainerStatus struct {
	PowerProfileID s2.ID `json:"power_profile_id"`
	ContainerID    s2.ID `json:"sequence_container_id"`

	// SelectedSequenceID is the sequence picked by the CEC, if any.
	SelectedSequenceID s2.ID `json:"selected_sequence_id,omitempty"`

	// Progress is the elapsed time since the selected sequence started.
	Progress *time.Duration `json:"progress,omitempty"`

	Status SequenceStatus `json:"status"`
}

// Validate checks references and the status value.
func (s ContainerStatus) Validate() error {
	if !s.PowerProfileID.IsValid() || !s.ContainerID.IsValid() {
		return fmt.Errorf("container status: %w", s2.ErrMissingID)
	}
	if !s.Status.IsValid() {
		return fmt.Errorf("container status %q: unknown status %q", s.ContainerID, s.Status)
	}
	return nil
}

// ProfileStatus reports the status of every container in a profile
// definition.
type ProfileStatus struct {
	ContainerStatuses []ContainerStatus `json:"sequence_container_status"`
}

// Validate checks each contained status.
func (s ProfileStatus) Validate() error {
	for i, cs := range s.ContainerStatuses {
		if err := cs.Validate(); err != nil {
			return fmt.Errorf("profile status %d: %w", i, err)
		}
	}
	return nil
}

// sequenceRef identifies a sequence within a profile definition. Shared by
// the three instruction kinds.
type sequenceRef struct {
	PowerProfileID s2.ID `json:"power_profile_id"`
	ContainerID    s2.ID `json:"sequence_container_id"`
	SequenceID     s2.ID `json:"power_sequence_id"`
}

func (r sequenceRef) validate(kind string, id s2.ID) error {
	if !r.PowerProfileID.IsValid() || !r.ContainerID.IsValid() || !r.SequenceID.IsValid() {
		return fmt.Errorf("%s %q: incomplete sequence reference", kind, id)
	}
	return nil
}

// ScheduleInstruction schedules the execution of one selected sequence.
type ScheduleInstruction struct {
	ID s2.ID `json:"id"`
	sequenceRef
	ExecutionTime     time.Time `json:"execution_time"`
	AbnormalCondition bool      `json:"abnormal_condition"`
}

// Validate checks identity and the sequence reference.
func (in ScheduleInstruction) Validate() error {
	if !in.ID.IsValid() {
		return fmt.Errorf("ppbc schedule instruction: %w", s2.ErrMissingID)
	}
	return in.sequenceRef.validate("ppbc schedule instruction", in.ID)
}

// StartInterruptionInstruction interrupts a running interruptible
// sequence.
type StartInterruptionInstruction struct {
	ID s2.ID `json:"id"`
	sequenceRef
	ExecutionTime     time.Time `json:"execution_time"`
	AbnormalCondition bool      `json:"abnormal_condition"`
}

// Validate checks identity and the sequence reference.
func (in StartInterruptionInstruction) Validate() error {
	if !in.ID.IsValid() {
		return fmt.Errorf("ppbc start interruption: %w", s2.ErrMissingID)
	}
	return in.sequenceRef.validate("ppbc start interruption", in.ID)
}

// EndInterruptionInstruction resumes a previously interrupted sequence.
type EndInterruptionInstruction struct {
	ID s2.ID `json:"id"`
	sequenceRef
	ExecutionTime     time.Time `json:"execution_time"`
	AbnormalCondition bool      `json:"abnormal_condition"`
}

// Validate checks identity and the sequence reference.
func (in EndInterruptionInstruction) Validate() error {
	if !in.ID.IsValid() {
		return fmt.Errorf("ppbc end interruption: %w", s2.ErrMissingID)
	}
	return in.sequenceRef.validate("ppbc end interruption", in.ID)
}
