// Package domainerrors provides the error type shared across services and
// transport. Errors carry a machine-readable code so handlers can translate
// them into HTTP statuses without string matching.
package domainerrors

import "errors"

// Code classifies a domain error.
type Code string

const (
	// CodeInvalidInput marks malformed identifiers or parameters at trust
	// boundaries (e.g. a client ID that is not a UUID).
	CodeInvalidInput Code = "invalid_input"
	// CodeValidation marks requests that parse but violate business rules.
	CodeValidation Code = "validation_error"
	// CodeInvariantViolation marks model invariants broken during construction.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeNotFound marks lookups for entities that do not exist.
	CodeNotFound Code = "not_found"
	// CodeUnauthorized marks missing or invalid credentials.
	CodeUnauthorized Code = "unauthorized"
	// CodeUnavailable marks failures of external collaborators (ledger store,
	// broker). Callers should surface these as generic service errors.
	CodeUnavailable Code = "unavailable"
	// CodeInternal marks unexpected failures. Descriptions are never shown to
	// end users.
	CodeInternal Code = "internal_error"
)

// Error is a domain error with a code, a human-readable message, and an
// optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates err with a code and a stable message prefix. The cause stays
// reachable through errors.Is/As.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) is a domain error with
// the given code.
func HasCode(err error, code Code) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// non-domain errors.
func CodeOf(err error) Code {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return CodeInternal
}
