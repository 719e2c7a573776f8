// Package translate builds an open hypergraph from an H-expression
// AST, driving the wire-identity quotient as it goes.
//
// Variable binding is global to one Translate call: a named variable
// used twice anywhere in the diagram is the same wire, regardless of
// nesting. A Translator must not be shared across concurrent runs;
// construct one per diagram.
package translate

import (
	"fmt"

	"github.com/hexlang/hexc/internal/ast"
	"github.com/hexlang/hexc/internal/graph"
	"github.com/hexlang/hexc/internal/sig"
)

// Translator converts one AST into one OpenHypergraph using an
// operation signature table supplied by the caller.
type Translator struct {
	sigs *sig.Table
	vars map[string]graph.NodeID
	g    *graph.OpenHypergraph
}

// New returns a Translator using the given signature table. A nil
// table is treated as empty.
func New(table *sig.Table) *Translator {
	if table == nil {
		table = sig.NewTable()
	}
	return &Translator{sigs: table}
}

// Translate builds the open hypergraph for expr. The variable binding
// table is scoped to this call: bindings reset between calls, so one
// Translator instance never leaks unification across diagrams.
func (t *Translator) Translate(expr ast.Expr) (*graph.OpenHypergraph, error) {
	t.vars = make(map[string]graph.NodeID)
	t.g = graph.NewOpen()

	sources, targets, err := t.translateExpr(expr)
	if err != nil {
		return nil, err
	}
	t.g.Sources = sources
	t.g.Targets = targets
	return t.g, nil
}

func (t *Translator) translateExpr(expr ast.Expr) (sources, targets []graph.NodeID, err error) {
	switch e := expr.(type) {
	case *ast.Operation:
		return t.translateOperation(e.Name)
	case *ast.Frobenius:
		return t.translateFrobenius(e)
	case *ast.Composition:
		return t.translateComposition(e.Exprs)
	case *ast.Tensor:
		return t.translateTensor(e.Exprs)
	default:
		return nil, nil, fmt.Errorf("unsupported expression type %T", expr)
	}
}

// translateOperation allocates fresh wires labeled by the operation's
// signature and one hyperedge connecting them.
func (t *Translator) translateOperation(name string) ([]graph.NodeID, []graph.NodeID, error) {
	signature, ok := t.sigs.Get(name)
	if !ok {
		return nil, nil, NewUnknownOperationError(name)
	}

	inputs := make([]graph.NodeID, len(signature.Inputs))
	for i, typeName := range signature.Inputs {
		inputs[i] = t.g.NewNode(graph.Resolved(typeName))
	}
	outputs := make([]graph.NodeID, len(signature.Outputs))
	for i, typeName := range signature.Outputs {
		outputs[i] = t.g.NewNode(graph.Resolved(typeName))
	}

	t.g.NewEdge(sig.Normalize(name), inputs, outputs)
	return inputs, outputs, nil
}

// translateFrobenius resolves wiring variables to wires. No hyperedge
// is created: a Frobenius node is pure structure, the copy/merge/unit/
// discard combinations of a commutative comonoid.
func (t *Translator) translateFrobenius(f *ast.Frobenius) ([]graph.NodeID, []graph.NodeID, error) {
	return t.resolveVariables(f.Inputs), t.resolveVariables(f.Outputs), nil
}

func (t *Translator) resolveVariables(vars []ast.Variable) []graph.NodeID {
	nodes := make([]graph.NodeID, len(vars))
	for i, v := range vars {
		if v.Anonymous() {
			// Every anonymous occurrence is a distinct wire.
			nodes[i] = t.g.NewNode(graph.Unresolved())
			continue
		}
		name := sig.Normalize(v.Name)
		if bound, ok := t.vars[name]; ok {
			// Repeated name: the occurrences are one wire.
			nodes[i] = bound
			continue
		}
		node := t.g.NewNode(graph.Unresolved())
		t.vars[name] = node
		nodes[i] = node
	}
	return nodes
}

// translateComposition folds left to right, unifying each leg's
// outputs with the next leg's inputs position by position.
func (t *Translator) translateComposition(exprs []ast.Expr) ([]graph.NodeID, []graph.NodeID, error) {
	if len(exprs) == 0 {
		return nil, nil, NewEmptyCompositionError()
	}

	firstIn, runningOut, err := t.translateExpr(exprs[0])
	if err != nil {
		return nil, nil, err
	}

	for _, expr := range exprs[1:] {
		nextIn, nextOut, err := t.translateExpr(expr)
		if err != nil {
			return nil, nil, err
		}
		if len(runningOut) != len(nextIn) {
			return nil, nil, NewArityMismatchError(len(runningOut), len(nextIn))
		}
		for i := range runningOut {
			t.g.Unify(runningOut[i], nextIn[i])
		}
		runningOut = nextOut
	}

	return firstIn, runningOut, nil
}

// translateTensor translates each element independently and
// concatenates the interfaces. Nothing is unified across elements.
func (t *Translator) translateTensor(exprs []ast.Expr) ([]graph.NodeID, []graph.NodeID, error) {
	var allIn, allOut []graph.NodeID
	for _, expr := range exprs {
		in, out, err := t.translateExpr(expr)
		if err != nil {
			return nil, nil, err
		}
		allIn = append(allIn, in...)
		allOut = append(allOut, out...)
	}
	return allIn, allOut, nil
}
