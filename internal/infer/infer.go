// Package infer resolves wire type labels over the equivalence classes
// recorded in a hypergraph's quotient.
//
// Translation leaves resolved labels (from operation signatures) and
// unresolved labels (from Frobenius wiring) co-mingled inside classes.
// Resolve assigns one consistent label per class or fails: two
// distinct resolved type names unified into one class is a type
// conflict. Resolve reads the quotient but never merges classes.
package infer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hexlang/hexc/internal/graph"
)

// ConflictError reports two distinct resolved types forced into one
// equivalence class.
type ConflictError struct {
	TypeA string
	TypeB string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("TYPE_CONFLICT: cannot unify %s with %s in the same equivalence class", e.TypeA, e.TypeB)
}

// IsConflict reports whether err is a ConflictError.
// Uses errors.As to handle wrapped errors.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// Resolve rewrites every node label to its class's resolved type. A
// class with no resolved member stays unresolved; detecting that is
// finalization's job, not inference's. Resolve is idempotent: a second
// run changes nothing. On conflict the graph is left partially
// rewritten and must be discarded by the caller.
func Resolve(g *graph.OpenHypergraph) error {
	classes := g.Classes()

	// Deterministic class order so conflict reports are stable.
	reps := make([]graph.NodeID, 0, len(classes))
	for rep := range classes {
		reps = append(reps, rep)
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i] < reps[j] })

	for _, rep := range reps {
		members := classes[rep]

		label, err := classLabel(g, members)
		if err != nil {
			return err
		}
		if !label.Known {
			continue
		}
		for _, n := range members {
			g.Nodes[n] = label
		}
	}
	return nil
}

// classLabel scans one class's member labels. At most one distinct
// resolved type name may appear; it wins over any unresolved members.
func classLabel(g *graph.OpenHypergraph, members []graph.NodeID) (graph.Label, error) {
	found := graph.Unresolved()
	for _, n := range members {
		label := g.Nodes[n]
		if !label.Known {
			continue
		}
		if found.Known && found.Type != label.Type {
			return graph.Label{}, &ConflictError{TypeA: found.Type, TypeB: label.Type}
		}
		found = label
	}
	return found, nil
}
