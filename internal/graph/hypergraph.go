package graph

import "fmt"

// NodeID is an opaque handle to one wire. IDs are assigned
// monotonically per graph and never reused.
type NodeID int

// Label is the object type attached to a wire. The zero value is the
// unresolved label, written "?", which the inference pass tries to
// replace with a concrete type name.
type Label struct {
	Type  string `json:"type,omitempty"`
	Known bool   `json:"known"`
}

// Resolved returns a label carrying a concrete type name.
func Resolved(typeName string) Label {
	return Label{Type: typeName, Known: true}
}

// Unresolved returns the not-yet-known label.
func Unresolved() Label {
	return Label{}
}

func (l Label) String() string {
	if !l.Known {
		return "?"
	}
	return l.Type
}

// Edge is one hyperedge: an operation applied to ordered source wires,
// producing ordered target wires.
type Edge struct {
	Op      string   `json:"op"`
	Sources []NodeID `json:"sources"`
	Targets []NodeID `json:"targets"`
}

// Hypergraph is the node table, edge list and wire-identity quotient
// for one diagram.
type Hypergraph struct {
	Nodes []Label
	Edges []Edge

	quot quotient
}

// OpenHypergraph is a Hypergraph plus the diagram's external
// interface: ordered source and target wire lists.
type OpenHypergraph struct {
	Hypergraph
	Sources []NodeID
	Targets []NodeID
}

// NewOpen returns an empty open hypergraph.
func NewOpen() *OpenHypergraph {
	return &OpenHypergraph{}
}

// NewNode adds a fresh wire with the given label and returns its
// handle. The wire starts in its own equivalence class.
func (g *Hypergraph) NewNode(l Label) NodeID {
	g.Nodes = append(g.Nodes, l)
	return g.quot.Add()
}

// NewEdge appends a hyperedge. All endpoints must already exist.
func (g *Hypergraph) NewEdge(op string, sources, targets []NodeID) {
	g.Edges = append(g.Edges, Edge{Op: op, Sources: sources, Targets: targets})
}

// Unify declares wires a and b identical, merging their equivalence
// classes. Tolerates a == b.
func (g *Hypergraph) Unify(a, b NodeID) {
	g.quot.Union(a, b)
}

// Coequalizer returns, for every node, the canonical member of its
// class. Two nodes share a representative iff they are connected by
// the transitive closure of all Unify calls so far.
func (g *Hypergraph) Coequalizer() []NodeID {
	reps := make([]NodeID, len(g.Nodes))
	for i := range g.Nodes {
		reps[i] = g.quot.Find(NodeID(i))
	}
	return reps
}

// Classes groups node indices by equivalence class, keyed by the
// canonical representative.
func (g *Hypergraph) Classes() map[NodeID][]NodeID {
	classes := make(map[NodeID][]NodeID)
	for i := range g.Nodes {
		rep := g.quot.Find(NodeID(i))
		classes[rep] = append(classes[rep], NodeID(i))
	}
	return classes
}

// Minimize destructively collapses the quotient so each equivalence
// class becomes one node, remapping every edge endpoint and the
// external interface. Each surviving node keeps the label of its class
// representative; run inference first if consistent labels matter.
// After Minimize the quotient is discrete again.
func (g *OpenHypergraph) Minimize() {
	reps := g.Coequalizer()

	// Dense renumbering in first-seen node order, so minimized ids
	// stay stable across runs.
	remap := make(map[NodeID]NodeID, len(reps))
	var nodes []Label
	for _, rep := range reps {
		if _, seen := remap[rep]; !seen {
			remap[rep] = NodeID(len(nodes))
			nodes = append(nodes, g.Nodes[rep])
		}
	}

	for e := range g.Edges {
		for i, n := range g.Edges[e].Sources {
			g.Edges[e].Sources[i] = remap[reps[n]]
		}
		for i, n := range g.Edges[e].Targets {
			g.Edges[e].Targets[i] = remap[reps[n]]
		}
	}
	for i, n := range g.Sources {
		g.Sources[i] = remap[reps[n]]
	}
	for i, n := range g.Targets {
		g.Targets[i] = remap[reps[n]]
	}

	g.Nodes = nodes
	g.quot = quotient{}
	for range g.Nodes {
		g.quot.Add()
	}
}

// Validate checks the structural invariants: every edge endpoint and
// every interface wire refers to an existing node, and the quotient
// arena covers exactly the node table.
func (g *OpenHypergraph) Validate() error {
	if g.quot.Len() != len(g.Nodes) {
		return fmt.Errorf("quotient arena has %d entries for %d nodes", g.quot.Len(), len(g.Nodes))
	}
	for i, e := range g.Edges {
		for _, n := range e.Sources {
			if err := g.checkNode(n); err != nil {
				return fmt.Errorf("edge %d (%s) source: %w", i, e.Op, err)
			}
		}
		for _, n := range e.Targets {
			if err := g.checkNode(n); err != nil {
				return fmt.Errorf("edge %d (%s) target: %w", i, e.Op, err)
			}
		}
	}
	for _, n := range g.Sources {
		if err := g.checkNode(n); err != nil {
			return fmt.Errorf("interface source: %w", err)
		}
	}
	for _, n := range g.Targets {
		if err := g.checkNode(n); err != nil {
			return fmt.Errorf("interface target: %w", err)
		}
	}
	return nil
}

func (g *Hypergraph) checkNode(n NodeID) error {
	if n < 0 || int(n) >= len(g.Nodes) {
		return fmt.Errorf("node %d out of range [0, %d)", n, len(g.Nodes))
	}
	return nil
}
