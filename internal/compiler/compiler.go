// Package compiler orchestrates the diagram pipeline: parse an
// H-expression, translate it to an open hypergraph, resolve wire types
// over the quotient, and finalize into a Diagram whose labels are
// plain concrete type names.
//
// Every stage returns a typed error and the first failure aborts the
// run; no partial diagram is ever returned. The resolved/unresolved
// label duality is internal to the pipeline and not exposed past
// Finalize.
package compiler

import (
	"github.com/hexlang/hexc/internal/ast"
	"github.com/hexlang/hexc/internal/graph"
	"github.com/hexlang/hexc/internal/infer"
	"github.com/hexlang/hexc/internal/parser"
	"github.com/hexlang/hexc/internal/sig"
	"github.com/hexlang/hexc/internal/translate"
)

// Compile runs the full pipeline on H-expression source text. The
// signature table may be nil or empty; diagrams made only of Frobenius
// wiring then finalize with an UnresolvedError.
func Compile(src string, table *sig.Table) (*Diagram, error) {
	expr, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return CompileExpr(src, expr, table)
}

// CompileExpr runs translation, inference and finalization on an
// already-parsed expression. src is recorded on the Diagram for
// reporting; pass expr.String() when no original text exists.
func CompileExpr(src string, expr ast.Expr, table *sig.Table) (*Diagram, error) {
	g, err := translate.New(table).Translate(expr)
	if err != nil {
		return nil, err
	}
	if err := infer.Resolve(g); err != nil {
		return nil, err
	}
	return Finalize(src, g)
}

// Finalize checks that inference resolved every wire and strips the
// label wrapper, producing a Diagram of concrete type names. Any
// surviving unresolved label fails with an UnresolvedError.
func Finalize(src string, g *graph.OpenHypergraph) (*Diagram, error) {
	var unresolved []graph.NodeID
	nodes := make([]string, len(g.Nodes))
	for i, label := range g.Nodes {
		if !label.Known {
			unresolved = append(unresolved, graph.NodeID(i))
			continue
		}
		nodes[i] = label.Type
	}
	if len(unresolved) > 0 {
		return nil, NewUnresolvedError(unresolved)
	}

	d := &Diagram{
		Source:      src,
		Nodes:       nodes,
		Edges:       append([]graph.Edge(nil), g.Edges...),
		Sources:     append([]graph.NodeID(nil), g.Sources...),
		Targets:     append([]graph.NodeID(nil), g.Targets...),
		Coequalizer: g.Coequalizer(),
	}
	return d, nil
}
