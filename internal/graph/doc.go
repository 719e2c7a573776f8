// Package graph provides the open hypergraph intermediate
// representation for compiled diagrams.
//
// A Hypergraph holds a node table (one wire per NodeID, labeled with a
// resolved or unresolved object type), an edge list (one hyperedge per
// operation application, with ordered source and target wires) and a
// quotient: a union-find structure recording which wires have been
// declared identical. An OpenHypergraph adds the diagram's external
// interface, ordered source and target wire lists.
//
// NodeIDs are assigned monotonically and never reused or deleted.
// Unification never renumbers nodes; Minimize is the only operation
// that collapses equivalence classes, and it is destructive.
package graph
