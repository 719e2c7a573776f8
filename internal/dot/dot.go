// Package dot renders a compiled diagram as Graphviz DOT text.
//
// Wires become point-ish nodes labeled with their type, operation
// hyperedges become boxes, and the diagram's external interface is
// marked with plaintext in/out anchors. Output is deterministic for a
// given diagram, so it is suitable for golden-file comparison.
package dot

import (
	"fmt"
	"strings"

	"github.com/hexlang/hexc/internal/compiler"
)

// Options control rendering.
type Options struct {
	// Rankdir is the Graphviz layout direction. Defaults to "LR",
	// matching the left-to-right reading of composition.
	Rankdir string

	// Minimize collapses wire equivalence classes to one node per
	// wire before rendering, instead of showing every arena node.
	Minimize bool
}

// Render produces DOT text for a compiled diagram.
func Render(d *compiler.Diagram, opts Options) string {
	rankdir := opts.Rankdir
	if rankdir == "" {
		rankdir = "LR"
	}

	g := d.Graph()
	if opts.Minimize {
		g.Minimize()
	}

	var b strings.Builder
	b.WriteString("digraph {\n")
	fmt.Fprintf(&b, "  rankdir=%s;\n", rankdir)
	b.WriteString("  node [fontname=\"Helvetica\"];\n")

	for i, label := range g.Nodes {
		fmt.Fprintf(&b, "  w%d [shape=circle, width=0.15, label=%s];\n", i, quote(label.String()))
	}
	for i, e := range g.Edges {
		fmt.Fprintf(&b, "  e%d [shape=box, style=filled, fillcolor=lightgrey, label=%s];\n", i, quote(e.Op))
		for _, n := range e.Sources {
			fmt.Fprintf(&b, "  w%d -> e%d;\n", n, i)
		}
		for _, n := range e.Targets {
			fmt.Fprintf(&b, "  e%d -> w%d;\n", i, n)
		}
	}
	for i, n := range g.Sources {
		fmt.Fprintf(&b, "  in%d [shape=plaintext, label=%s];\n", i, quote(fmt.Sprintf("in %d", i)))
		fmt.Fprintf(&b, "  in%d -> w%d;\n", i, n)
	}
	for i, n := range g.Targets {
		fmt.Fprintf(&b, "  out%d [shape=plaintext, label=%s];\n", i, quote(fmt.Sprintf("out %d", i)))
		fmt.Fprintf(&b, "  w%d -> out%d;\n", n, i)
	}
	b.WriteString("}\n")
	return b.String()
}

// quote escapes a label for a double-quoted DOT string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
