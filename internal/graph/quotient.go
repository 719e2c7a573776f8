package graph

// quotient is an arena union-find over node indices. Each node starts
// in its own singleton class; Union merges classes and Find returns the
// canonical member with path compression. Correctness matters more
// than throughput here: diagrams are interactive-tool-sized.
//
// The quotient tracks identity only. Labels live in the node table and
// are reconciled by the inference pass, never by this structure.
type quotient struct {
	parent []NodeID
	rank   []uint8
}

// Add appends a fresh singleton class and returns its handle.
func (q *quotient) Add() NodeID {
	id := NodeID(len(q.parent))
	q.parent = append(q.parent, id)
	q.rank = append(q.rank, 0)
	return id
}

// Find returns the canonical member of n's class.
func (q *quotient) Find(n NodeID) NodeID {
	root := n
	for q.parent[root] != root {
		root = q.parent[root]
	}
	for q.parent[n] != root {
		q.parent[n], n = root, q.parent[n]
	}
	return root
}

// Union merges the classes of a and b. Commutative, idempotent, and a
// no-op when a == b already holds up to the relation.
func (q *quotient) Union(a, b NodeID) {
	ra, rb := q.Find(a), q.Find(b)
	if ra == rb {
		return
	}
	if q.rank[ra] < q.rank[rb] {
		ra, rb = rb, ra
	}
	q.parent[rb] = ra
	if q.rank[ra] == q.rank[rb] {
		q.rank[ra]++
	}
}

// Len returns the number of nodes in the arena.
func (q *quotient) Len() int {
	return len(q.parent)
}
