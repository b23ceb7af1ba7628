package s2

import "errors"

// ErrNotImplemented signals that an implementation does not provide the
// invoked operation at all. It is distinct from a business rejection: a
// REJECTED reception status without this error means the handler ran and
// refused the data.
var ErrNotImplemented = errors.New("operation not implemented")

// ReceptionOutcome is the outcome of a data submission.
type ReceptionOutcome string

const (
	// ReceptionSucceeded means the data was received, complete, and
	// consistent.
	ReceptionSucceeded ReceptionOutcome = "SUCCEEDED"

	// ReceptionRejected means the data could not be parsed or was
	// incomplete or inconsistent.
	ReceptionRejected ReceptionOutcome = "REJECTED"
)

// IsValid returns true for a known outcome.
func (o ReceptionOutcome) IsValid() bool {
	return o == ReceptionSucceeded || o == ReceptionRejected
}

// ReceptionStatus acknowledges a data submission. It applies to data
// artifacts (descriptions, forecasts, constraints), not to instructions;
// instruction outcomes travel as InstructionStatusUpdate.
type ReceptionStatus struct {
	Outcome ReceptionOutcome `json:"status"`

	// DiagnosticLabel carries free text for operators and logs. It must
	// never reach an end-user-facing display.
	DiagnosticLabel string `json:"diagnostic_label,omitempty"`
}

// Accepted returns a SUCCEEDED reception status.
func Accepted() ReceptionStatus {
	return ReceptionStatus{Outcome: ReceptionSucceeded}
}

// Rejected returns a REJECTED reception status with a diagnostic label.
func Rejected(label string) ReceptionStatus {
	return ReceptionStatus{Outcome: ReceptionRejected, DiagnosticLabel: label}
}

// IsSuccess returns true if the submission was accepted.
func (s ReceptionStatus) IsSuccess() bool {
	return s.Outcome == ReceptionSucceeded
}
