package translate

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes translation errors.
type ErrorCode string

const (
	// ErrCodeUnknownOperation indicates an operation absent from the
	// signature table.
	ErrCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"

	// ErrCodeEmptyComposition indicates a composition with no elements.
	ErrCodeEmptyComposition ErrorCode = "EMPTY_COMPOSITION"

	// ErrCodeArityMismatch indicates adjacent composition legs whose
	// output and input counts differ.
	ErrCodeArityMismatch ErrorCode = "ARITY_MISMATCH"
)

// Error represents a failure detected while translating an expression
// into a hypergraph. Translation aborts on the first failure; no
// partial graph is returned.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Operation is the offending name (for UNKNOWN_OPERATION).
	Operation string

	// Expected and Actual are the mismatched counts (for
	// ARITY_MISMATCH): outputs available vs inputs required.
	Expected int
	Actual   int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownOperation reports whether err is an unknown-operation error.
// Uses errors.As to handle wrapped errors.
func IsUnknownOperation(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Code == ErrCodeUnknownOperation
}

// IsEmptyComposition reports whether err is an empty-composition error.
func IsEmptyComposition(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Code == ErrCodeEmptyComposition
}

// IsArityMismatch reports whether err is a composition arity mismatch.
func IsArityMismatch(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Code == ErrCodeArityMismatch
}

// NewUnknownOperationError creates an Error for a name missing from the
// signature table.
func NewUnknownOperationError(name string) *Error {
	return &Error{
		Code:      ErrCodeUnknownOperation,
		Message:   fmt.Sprintf("unknown operation: %q", name),
		Operation: name,
	}
}

// NewEmptyCompositionError creates an Error for an empty composition.
func NewEmptyCompositionError() *Error {
	return &Error{
		Code:    ErrCodeEmptyComposition,
		Message: "empty composition",
	}
}

// NewArityMismatchError creates an Error for a composition whose legs
// do not line up: expected outputs feeding actual inputs.
func NewArityMismatchError(expected, actual int) *Error {
	return &Error{
		Code:     ErrCodeArityMismatch,
		Message:  fmt.Sprintf("composition mismatch: %d outputs to %d inputs", expected, actual),
		Expected: expected,
		Actual:   actual,
	}
}
