// Package s2 provides the basic value types of the S2 energy-flexibility
// protocol as exchanged between a Central Energy Controller (CEC) and
// Resource Simulations.
//
// # Value Types
//
// The package defines identifiers, enumerations, numeric and power ranges,
// power values and measurements, forecasts, timers, and operation-mode
// transitions. All types are plain value containers; validation happens
// eagerly via Validate methods and constructor helpers, never lazily at use
// time.
//
// # Instruction Lifecycle
//
// InstructionStatus models the lifecycle of a dispatched control
// instruction:
//
//	NEW -> ACCEPTED -> STARTED -> SUCCEEDED
//	NEW -> REJECTED
//	ACCEPTED/STARTED -> REVOKED
//	STARTED -> ABORTED
//
// REJECTED, SUCCEEDED, ABORTED, and REVOKED are terminal. Use
// [InstructionStatus.CanTransitionTo] to guard updates.
//
// # Concurrency
//
// Types in this package are not internally synchronized. A single
// management cycle is expected to hold exclusive access to any given value
// for the duration of the cycle.
package s2
