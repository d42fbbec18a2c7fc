package types

import "errors"

// Sentinel errors for the failure modes the CLI distinguishes. Callers
// wrap them with context via fmt.Errorf and %w; command handlers test
// with errors.Is to pick exit behavior.
var (
	// ErrNotFound means no ticket matches a reference.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous means a partial reference matched more than one ticket.
	ErrAmbiguous = errors.New("ambiguous reference")

	// ErrValidation means an argument or field value was rejected.
	ErrValidation = errors.New("validation failed")

	// ErrParse means a stored value (typically a timestamp) is malformed.
	// Non-fatal during bulk scans: the affected ticket is skipped.
	ErrParse = errors.New("parse error")

	// ErrIO wraps file create/write/delete failures.
	ErrIO = errors.New("io error")
)
