// Package ast defines the abstract syntax tree for H-expressions.
//
// An H-expression describes one string diagram: sequential composition,
// parallel (tensor) placement, Frobenius wiring nodes that identify
// wires by variable name, and named primitive operations. The tree is
// immutable once built; the parser produces it and the translator
// consumes it. ast imports nothing internal.
package ast

import "strings"

// Expr is the interface implemented by all H-expression nodes.
type Expr interface {
	exprNode()
	String() string
}

// Composition is the sequential composition (e1 e2 ... en): the outputs
// of each element feed the inputs of the next, left to right.
type Composition struct {
	Exprs []Expr
}

// Tensor is the parallel placement {e1 e2 ... en}: elements sit side by
// side with no interaction, interfaces concatenated in order.
type Tensor struct {
	Exprs []Expr
}

// Frobenius is a pure wiring node [in... . out...]. Repeated variable
// names identify wires; it carries no operation.
type Frobenius struct {
	Inputs  []Variable
	Outputs []Variable
}

// Operation names a primitive operation whose arity and types come from
// the signature table at translation time.
type Operation struct {
	Name string
}

func (*Composition) exprNode() {}
func (*Tensor) exprNode()      {}
func (*Frobenius) exprNode()   {}
func (*Operation) exprNode()   {}

// Variable identifies a wire inside a Frobenius node. The zero value is
// the anonymous variable, written "_", which never unifies with
// anything.
type Variable struct {
	Name string
}

// Named returns a named variable.
func Named(name string) Variable {
	return Variable{Name: name}
}

// Anonymous reports whether v is the anonymous variable.
func (v Variable) Anonymous() bool {
	return v.Name == ""
}

func (v Variable) String() string {
	if v.Anonymous() {
		return "_"
	}
	return v.Name
}

func (c *Composition) String() string {
	return "(" + joinExprs(c.Exprs) + ")"
}

func (t *Tensor) String() string {
	return "{" + joinExprs(t.Exprs) + "}"
}

func (f *Frobenius) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range f.Inputs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteString(" . ")
	for i, v := range f.Outputs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (o *Operation) String() string {
	return o.Name
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}
