package util

import (
	"errors"
	"fmt"
)

// ErrAmountMismatch is returned when recomputed billing totals disagree with
// the caller-declared totals beyond the accepted tolerance.
var ErrAmountMismatch = errors.New(AMOUNTS_DO_NOT_MATCH)

// ErrDuplicateBillNumber is returned when the unique index on billNumber
// rejects an insert, even after one regenerate-and-retry.
var ErrDuplicateBillNumber = errors.New(DUPLICATE_BILL_NUMBER)

// ValidationError marks a malformed or missing request field. Handlers map it
// to a 400 with no persistence attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidationError reports whether err is a ValidationError anywhere in its
// chain.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// SequenceLookupError wraps a persistence failure that occurred while looking
// up the latest bill number. It maps to a 500; no partial record is written.
type SequenceLookupError struct {
	Cause error
}

func (e *SequenceLookupError) Error() string {
	return fmt.Sprintf("bill number lookup failed: %v", e.Cause)
}

func (e *SequenceLookupError) Unwrap() error { return e.Cause }
