package compiler

import "github.com/hexlang/hexc/internal/graph"

// Diagram is a fully compiled and resolved open hypergraph: every wire
// carries a concrete type name, every edge an operation name, and the
// external interface is the ordered source/target wire lists. It is
// what renderers and downstream consumers see.
type Diagram struct {
	Source  string         `json:"source"`
	Nodes   []string       `json:"nodes"`
	Edges   []graph.Edge   `json:"edges"`
	Sources []graph.NodeID `json:"sources"`
	Targets []graph.NodeID `json:"targets"`

	// Coequalizer maps every node to its wire-class representative.
	// Node identities are preserved through finalization, so this is
	// how consumers recover which nodes are the same wire.
	Coequalizer []graph.NodeID `json:"coequalizer"`
}

// SourceTypes returns the type names of the diagram's external inputs,
// in interface order.
func (d *Diagram) SourceTypes() []string {
	return d.wireTypes(d.Sources)
}

// TargetTypes returns the type names of the diagram's external
// outputs, in interface order.
func (d *Diagram) TargetTypes() []string {
	return d.wireTypes(d.Targets)
}

func (d *Diagram) wireTypes(wires []graph.NodeID) []string {
	types := make([]string, len(wires))
	for i, n := range wires {
		types[i] = d.Nodes[n]
	}
	return types
}

// Graph rebuilds an open hypergraph with resolved labels, replaying
// the coequalizer so the wire-identity quotient matches the one the
// diagram was compiled with. Useful for structure passes such as
// Minimize that operate on the graph form.
func (d *Diagram) Graph() *graph.OpenHypergraph {
	g := graph.NewOpen()
	for _, typeName := range d.Nodes {
		g.NewNode(graph.Resolved(typeName))
	}
	for _, e := range d.Edges {
		g.NewEdge(e.Op, append([]graph.NodeID(nil), e.Sources...), append([]graph.NodeID(nil), e.Targets...))
	}
	g.Sources = append([]graph.NodeID(nil), d.Sources...)
	g.Targets = append([]graph.NodeID(nil), d.Targets...)
	// Representative first, so the replayed classes keep the original
	// representatives.
	for i, rep := range d.Coequalizer {
		g.Unify(rep, graph.NodeID(i))
	}
	return g
}
