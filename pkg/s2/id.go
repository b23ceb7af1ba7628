package s2

import "github.com/google/uuid"

// ID is an opaque identifier. Uniqueness scope is documented per entity;
// for example a Transition ID is unique within its containing system or
// actuator description, while a simulation ID is unique within the CEC.
type ID string

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// IsValid returns true if the ID is non-empty.
func (id ID) IsValid() bool {
	return id != ""
}

// String returns the ID as a plain string.
func (id ID) String() string {
	return string(id)
}
