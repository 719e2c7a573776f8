package compiler

import (
	"errors"
	"fmt"

	"github.com/hexlang/hexc/internal/graph"
	"github.com/hexlang/hexc/internal/infer"
	"github.com/hexlang/hexc/internal/parser"
	"github.com/hexlang/hexc/internal/translate"
)

// UnresolvedError reports wires whose types inference could not
// determine: their equivalence classes contained no resolved label.
type UnresolvedError struct {
	Nodes []graph.NodeID
}

func (e *UnresolvedError) Error() string {
	if len(e.Nodes) == 1 {
		return "UNRESOLVED_TYPE: 1 wire remains untyped after inference"
	}
	return fmt.Sprintf("UNRESOLVED_TYPE: %d wires remain untyped after inference", len(e.Nodes))
}

// IsUnresolved reports whether err is an UnresolvedError.
// Uses errors.As to handle wrapped errors.
func IsUnresolved(err error) bool {
	var ue *UnresolvedError
	return errors.As(err, &ue)
}

// NewUnresolvedError creates an UnresolvedError for the given wires.
func NewUnresolvedError(nodes []graph.NodeID) *UnresolvedError {
	return &UnresolvedError{Nodes: nodes}
}

// Pipeline error codes, one per failure mode, stable across the CLI
// and scenario harness.
const (
	CodeParseError       = "PARSE_ERROR"
	CodeUnknownOperation = string(translate.ErrCodeUnknownOperation)
	CodeEmptyComposition = string(translate.ErrCodeEmptyComposition)
	CodeArityMismatch    = string(translate.ErrCodeArityMismatch)
	CodeTypeConflict     = "TYPE_CONFLICT"
	CodeUnresolvedType   = "UNRESOLVED_TYPE"
	CodeInternal         = "INTERNAL"
)

// ErrorCode maps a pipeline error to its stable code string. Unknown
// errors map to INTERNAL.
func ErrorCode(err error) string {
	switch {
	case parser.IsParseError(err):
		return CodeParseError
	case infer.IsConflict(err):
		return CodeTypeConflict
	case IsUnresolved(err):
		return CodeUnresolvedType
	}
	var te *translate.Error
	if errors.As(err, &te) {
		return string(te.Code)
	}
	return CodeInternal
}
