package simulation

import (
	"errors"
	"fmt"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

// Tracker errors.
var (
	ErrUnknownInstruction = errors.New("instruction not tracked")
	ErrInvalidTransition  = errors.New("invalid lifecycle transition")
)

// Tracker guards the instruction lifecycle: it records every issued
// instruction and rejects status updates that violate the state machine.
// Terminal states accept no further updates.
//
// A Tracker belongs to one management cycle and is not safe for
// concurrent use.
type Tracker struct {
	states map[s2.ID]s2.InstructionStatus
	order  []s2.ID
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{states: make(map[s2.ID]s2.InstructionStatus)}
}

// Register starts tracking an instruction in state NEW. Registering an
// already tracked ID fails.
func (t *Tracker) Register(id s2.ID) error {
	if !id.IsValid() {
		return s2.ErrMissingID
	}
	if _, ok := t.states[id]; ok {
		return fmt.Errorf("instruction %q: %w", id, s2.ErrDuplicateID)
	}
	t.states[id] = s2.InstructionNew
	t.order = append(t.order, id)
	return nil
}

// Apply advances an instruction according to a status update. Updates for
// untracked instructions fail with ErrUnknownInstruction; updates that
// the state machine forbids fail with ErrInvalidTransition and leave the
// recorded state unchanged.
func (t *Tracker) Apply(update s2.InstructionStatusUpdate) error {
	current, ok := t.states[update.InstructionID]
	if !ok {
		return fmt.Errorf("instruction %q: %w", update.InstructionID, ErrUnknownInstruction)
	}
	if !update.Status.IsValid() {
		return fmt.Errorf("instruction %q: unknown status %q", update.InstructionID, update.Status)
	}
	if !current.CanTransitionTo(update.Status) {
		return fmt.Errorf("instruction %q: %w: %s -> %s",
			update.InstructionID, ErrInvalidTransition, current, update.Status)
	}
	t.states[update.InstructionID] = update.Status
	return nil
}

// Revoke moves an instruction to REVOKED. Revoking an instruction that is
// already terminal is a no-op success; revocation is idempotent.
func (t *Tracker) Revoke(id s2.ID, at time.Time) error {
	current, ok := t.states[id]
	if !ok {
		return fmt.Errorf("instruction %q: %w", id, ErrUnknownInstruction)
	}
	if current.IsTerminal() {
		return nil
	}
	return t.Apply(s2.InstructionStatusUpdate{
		InstructionID: id,
		Status:        s2.InstructionRevoked,
		Timestamp:     at,
	})
}

// Status returns the recorded state of an instruction.
func (t *Tracker) Status(id s2.ID) (s2.InstructionStatus, bool) {
	st, ok := t.states[id]
	return st, ok
}

// Active returns the IDs of all non-terminal instructions in registration
// order.
func (t *Tracker) Active() []s2.ID {
	var active []s2.ID
	for _, id := range t.order {
		if !t.states[id].IsTerminal() {
			active = append(active, id)
		}
	}
	return active
}

// Len returns the number of tracked instructions, terminal ones included.
func (t *Tracker) Len() int { return len(t.states) }
