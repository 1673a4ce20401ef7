package qreg

import "errors"

// Validation errors reported by the register. A failed call leaves the
// register untouched; none of these indicate corrupted state.
var (
	// ErrIndexOutOfRange is returned when a gate or measurement names a
	// qubit index at or beyond the register length.
	ErrIndexOutOfRange = errors.New("qubit index out of range")

	// ErrInvalidArity is returned when a gate is applied with the wrong
	// number of operand indices.
	ErrInvalidArity = errors.New("wrong operand count for gate")

	// ErrMissingParameter is returned when a gate that requires a
	// parameter (phase angle) is applied without one.
	ErrMissingParameter = errors.New("required gate parameter missing")

	// ErrAlreadyBound is returned by bind only when StrictBind is set and
	// both qubits already belong to distinct entanglement groups.
	ErrAlreadyBound = errors.New("qubits already bound to distinct groups")
)
