package harness

import (
	"fmt"
	"reflect"

	"github.com/hexlang/hexc/internal/compiler"
)

// Result captures the outcome of running one scenario.
type Result struct {
	// Scenario is the scenario name.
	Scenario string

	// Passed is true when every check succeeded.
	Passed bool

	// Failures lists human-readable check failures.
	Failures []string

	// Diagram is the compiled diagram when compilation succeeded, nil
	// otherwise.
	Diagram *compiler.Diagram

	// ErrorCode is the pipeline error code when compilation failed,
	// empty otherwise.
	ErrorCode string
}

func (r *Result) fail(format string, args ...any) {
	r.Passed = false
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// Run compiles the scenario's expression against its signature table
// and evaluates the expected outcome. A returned error indicates a
// harness problem; scenario check failures land in Result.Failures.
func Run(sc *Scenario) (*Result, error) {
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("run scenario %s: %w", sc.Name, err)
	}

	result := &Result{Scenario: sc.Name, Passed: true}

	diagram, err := compiler.Compile(sc.Expr, sc.Table())
	if err != nil {
		result.ErrorCode = compiler.ErrorCode(err)
		if sc.Error == "" {
			result.fail("unexpected error %s: %v", result.ErrorCode, err)
		} else if result.ErrorCode != sc.Error {
			result.fail("expected error %s, got %s: %v", sc.Error, result.ErrorCode, err)
		}
		return result, nil
	}

	result.Diagram = diagram
	if sc.Error != "" {
		result.fail("expected error %s, compilation succeeded", sc.Error)
		return result, nil
	}

	checkExpectation(result, sc.Expect, diagram)
	return result, nil
}

func checkExpectation(result *Result, expect *Expectation, d *compiler.Diagram) {
	if expect == nil {
		return
	}
	if expect.Nodes != nil && len(d.Nodes) != *expect.Nodes {
		result.fail("expected %d nodes, got %d", *expect.Nodes, len(d.Nodes))
	}
	if expect.Edges != nil && len(d.Edges) != *expect.Edges {
		result.fail("expected %d edges, got %d", *expect.Edges, len(d.Edges))
	}
	if expect.SourcesSet {
		if got := d.SourceTypes(); !typesEqual(got, expect.Sources) {
			result.fail("expected sources %v, got %v", expect.Sources, got)
		}
	}
	if expect.TargetsSet {
		if got := d.TargetTypes(); !typesEqual(got, expect.Targets) {
			result.fail("expected targets %v, got %v", expect.Targets, got)
		}
	}
}

func typesEqual(a, b []string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}
