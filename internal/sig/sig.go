// Package sig models operation signatures: the declared ordered input
// and output types whose lengths fix an operation's arity.
//
// Operation and type names are NFC-normalized at the table boundary so
// that visually identical Unicode spellings (ℝ, composed vs decomposed
// accents) refer to the same operation or type everywhere downstream.
package sig

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// Signature declares an operation's ordered input and output types.
type Signature struct {
	Inputs  []string `json:"inputs" yaml:"inputs"`
	Outputs []string `json:"outputs" yaml:"outputs"`
}

// Normalize returns the NFC normal form of a name. All names stored in
// or looked up from a Table pass through here.
func Normalize(name string) string {
	return norm.NFC.String(name)
}

func (s Signature) normalized() Signature {
	out := Signature{
		Inputs:  make([]string, len(s.Inputs)),
		Outputs: make([]string, len(s.Outputs)),
	}
	for i, t := range s.Inputs {
		out.Inputs[i] = Normalize(t)
	}
	for i, t := range s.Outputs {
		out.Outputs[i] = Normalize(t)
	}
	return out
}

// Table maps operation names to signatures. It may be extended with
// Add before translation; lookups during translation treat a missing
// name as an unknown operation.
type Table struct {
	ops map[string]Signature
}

// NewTable returns an empty signature table.
func NewTable() *Table {
	return &Table{ops: make(map[string]Signature)}
}

// Add registers or replaces the signature for an operation name.
func (t *Table) Add(name string, s Signature) {
	t.ops[Normalize(name)] = s.normalized()
}

// Get looks up the signature for an operation name.
func (t *Table) Get(name string) (Signature, bool) {
	s, ok := t.ops[Normalize(name)]
	return s, ok
}

// Len returns the number of registered operations.
func (t *Table) Len() int {
	return len(t.ops)
}

// Names returns the registered operation names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.ops))
	for name := range t.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
