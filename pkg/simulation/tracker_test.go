package simulation

import (
	"errors"
	"testing"
	"time"

	"github.com/s2flex-protocol/s2flex-go/pkg/s2"
)

func update(id s2.ID, status s2.InstructionStatus) s2.InstructionStatusUpdate {
	return s2.InstructionStatusUpdate{
		InstructionID: id,
		Status:        status,
		Timestamp:     time.Now(),
	}
}

func TestTrackerHappyPath(t *testing.T) {
	tr := NewTracker()
	if err := tr.Register("in-1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if st, ok := tr.Status("in-1"); !ok || st != s2.InstructionNew {
		t.Fatalf("Status() = %q, %v, want NEW", st, ok)
	}

	for _, next := range []s2.InstructionStatus{
		s2.InstructionAccepted, s2.InstructionStarted, s2.InstructionSucceeded,
	} {
		if err := tr.Apply(update("in-1", next)); err != nil {
			t.Fatalf("Apply(%s) error = %v", next, err)
		}
	}

	if st, _ := tr.Status("in-1"); st != s2.InstructionSucceeded {
		t.Errorf("final status = %q, want SUCCEEDED", st)
	}
	if active := tr.Active(); active != nil {
		t.Errorf("Active() = %v, want nil after terminal state", active)
	}
}

func TestTrackerRejectsOutOfOrderUpdates(t *testing.T) {
	t.Run("SkipAccepted", func(t *testing.T) {
		tr := NewTracker()
		tr.Register("in-1")
		if err := tr.Apply(update("in-1", s2.InstructionStarted)); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("error = %v, want ErrInvalidTransition", err)
		}
		if st, _ := tr.Status("in-1"); st != s2.InstructionNew {
			t.Errorf("rejected update must not change state, got %q", st)
		}
	})

	t.Run("UpdateAfterTerminal", func(t *testing.T) {
		tr := NewTracker()
		tr.Register("in-1")
		tr.Apply(update("in-1", s2.InstructionRejected))
		if err := tr.Apply(update("in-1", s2.InstructionAccepted)); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("UnknownInstruction", func(t *testing.T) {
		tr := NewTracker()
		if err := tr.Apply(update("ghost", s2.InstructionAccepted)); !errors.Is(err, ErrUnknownInstruction) {
			t.Errorf("error = %v, want ErrUnknownInstruction", err)
		}
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		tr := NewTracker()
		tr.Register("in-1")
		if err := tr.Apply(update("in-1", "PAUSED")); err == nil {
			t.Error("Apply() should reject unknown status values")
		}
	})
}

func TestTrackerRegister(t *testing.T) {
	tr := NewTracker()
	if err := tr.Register("in-1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := tr.Register("in-1"); !errors.Is(err, s2.ErrDuplicateID) {
		t.Errorf("error = %v, want ErrDuplicateID", err)
	}
	if err := tr.Register(""); !errors.Is(err, s2.ErrMissingID) {
		t.Errorf("error = %v, want ErrMissingID", err)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestTrackerRevoke(t *testing.T) {
	now := time.Now()

	t.Run("Accepted", func(t *testing.T) {
		tr := NewTracker()
		tr.Register("in-1")
		tr.Apply(update("in-1", s2.InstructionAccepted))
		if err := tr.Revoke("in-1", now); err != nil {
			t.Fatalf("Revoke() error = %v", err)
		}
		if st, _ := tr.Status("in-1"); st != s2.InstructionRevoked {
			t.Errorf("status = %q, want REVOKED", st)
		}
	})

	t.Run("IdempotentOnTerminal", func(t *testing.T) {
		tr := NewTracker()
		tr.Register("in-1")
		tr.Apply(update("in-1", s2.InstructionAccepted))
		tr.Apply(update("in-1", s2.InstructionStarted))
		tr.Apply(update("in-1", s2.InstructionSucceeded))

		// Revoking an already finished instruction is a no-op success.
		if err := tr.Revoke("in-1", now); err != nil {
			t.Fatalf("Revoke() on terminal error = %v", err)
		}
		if st, _ := tr.Status("in-1"); st != s2.InstructionSucceeded {
			t.Errorf("status = %q, terminal state must be preserved", st)
		}
	})

	t.Run("NewCannotBeRevoked", func(t *testing.T) {
		// The lifecycle has no NEW -> REVOKED edge; a NEW instruction is
		// rejected or accepted first.
		tr := NewTracker()
		tr.Register("in-1")
		if err := tr.Revoke("in-1", now); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		tr := NewTracker()
		if err := tr.Revoke("ghost", now); !errors.Is(err, ErrUnknownInstruction) {
			t.Errorf("error = %v, want ErrUnknownInstruction", err)
		}
	})
}

func TestTrackerActiveOrder(t *testing.T) {
	tr := NewTracker()
	for _, id := range []s2.ID{"c", "a", "b"} {
		tr.Register(id)
	}
	tr.Apply(update("a", s2.InstructionRejected))

	active := tr.Active()
	if len(active) != 2 || active[0] != "c" || active[1] != "b" {
		t.Errorf("Active() = %v, want [c b] in registration order", active)
	}
}
