package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlang/hexc/internal/sig"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, "basic.yaml", `
name: basic
signatures:
  f:
    inputs: [a]
    outputs: [b]
expr: "(f)"
expect:
  nodes: 2
  edges: 1
  sources: [a]
  targets: [b]
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "basic", sc.Name)
	assert.Equal(t, "(f)", sc.Expr)
	require.NotNil(t, sc.Expect)
	require.NotNil(t, sc.Expect.Nodes)
	assert.Equal(t, 2, *sc.Expect.Nodes)
	assert.True(t, sc.Expect.SourcesSet)
	assert.True(t, sc.Expect.TargetsSet)
	assert.Equal(t, []string{"a"}, sc.Expect.Sources)
}

func TestLoadScenario_NameDefaultsToFilename(t *testing.T) {
	path := writeScenario(t, "no-name.yaml", `
expr: "(f)"
error: UNKNOWN_OPERATION
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "no-name", sc.Name)
}

func TestLoadScenario_ExpectAndErrorConflict(t *testing.T) {
	path := writeScenario(t, "bad.yaml", `
expr: "(f)"
error: TYPE_CONFLICT
expect:
  nodes: 1
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestLoadScenario_MissingExpr(t *testing.T) {
	path := writeScenario(t, "empty.yaml", `
error: PARSE_ERROR
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expr is required")
}

func TestLoadScenarios_Directory(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.Len(t, scenarios, 4)

	// Directory entries load in sorted filename order.
	assert.Equal(t, "compose-pipeline", scenarios[0].Name)
	assert.Equal(t, "tensor-stack", scenarios[1].Name)
	assert.Equal(t, "type-conflict", scenarios[2].Name)
	assert.Equal(t, "unresolved-wire", scenarios[3].Name)
}

func TestRun_ExpectationPasses(t *testing.T) {
	nodes, edges := 4, 2
	sc := &Scenario{
		Name: "pipeline",
		Signatures: map[string]sig.Signature{
			"f": {Inputs: []string{"a"}, Outputs: []string{"b"}},
			"g": {Inputs: []string{"b"}, Outputs: []string{"c"}},
		},
		Expr: "(f g)",
		Expect: &Expectation{
			Nodes:      &nodes,
			Edges:      &edges,
			Sources:    []string{"a"},
			Targets:    []string{"c"},
			SourcesSet: true,
			TargetsSet: true,
		},
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Failures)
	require.NotNil(t, result.Diagram)
}

func TestRun_ExpectationMismatch(t *testing.T) {
	nodes := 7
	sc := &Scenario{
		Name: "wrong-count",
		Signatures: map[string]sig.Signature{
			"f": {Inputs: []string{"a"}, Outputs: []string{"b"}},
		},
		Expr:   "(f)",
		Expect: &Expectation{Nodes: &nodes},
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "expected 7 nodes")
}

func TestRun_ExpectedError(t *testing.T) {
	sc := &Scenario{
		Name:  "missing-op",
		Expr:  "(f)",
		Error: "UNKNOWN_OPERATION",
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Equal(t, "UNKNOWN_OPERATION", result.ErrorCode)
	assert.Nil(t, result.Diagram)
}

func TestRun_WrongErrorCode(t *testing.T) {
	sc := &Scenario{
		Name:  "wrong-code",
		Expr:  "(f",
		Error: "TYPE_CONFLICT",
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	assert.Equal(t, "PARSE_ERROR", result.ErrorCode)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "expected error TYPE_CONFLICT")
}

func TestRun_UnexpectedError(t *testing.T) {
	nodes := 2
	sc := &Scenario{
		Name:   "surprise",
		Expr:   "(f)",
		Expect: &Expectation{Nodes: &nodes},
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "unexpected error UNKNOWN_OPERATION")
}

func TestRun_ErrorExpectedButCompiled(t *testing.T) {
	sc := &Scenario{
		Name: "should-fail",
		Signatures: map[string]sig.Signature{
			"f": {Inputs: []string{"a"}, Outputs: []string{"b"}},
		},
		Expr:  "(f)",
		Error: "TYPE_CONFLICT",
	}

	result, err := Run(sc)
	require.NoError(t, err)
	assert.False(t, result.Passed)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "compilation succeeded")
}
