package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlang/hexc/internal/graph"
)

func TestResolve_PropagatesToClass(t *testing.T) {
	g := graph.NewOpen()
	a := g.NewNode(graph.Unresolved())
	b := g.NewNode(graph.Resolved("ℝ"))
	c := g.NewNode(graph.Unresolved())
	g.Unify(a, b)
	g.Unify(b, c)

	require.NoError(t, Resolve(g))

	for _, n := range []graph.NodeID{a, b, c} {
		assert.Equal(t, graph.Resolved("ℝ"), g.Nodes[n])
	}
}

func TestResolve_UntouchedClassesKeepLabels(t *testing.T) {
	g := graph.NewOpen()
	a := g.NewNode(graph.Resolved("ℝ"))
	b := g.NewNode(graph.Resolved("𝔹"))

	require.NoError(t, Resolve(g))

	// Separate classes, separate types: no conflict.
	assert.Equal(t, graph.Resolved("ℝ"), g.Nodes[a])
	assert.Equal(t, graph.Resolved("𝔹"), g.Nodes[b])
}

func TestResolve_AllUnresolvedStaysUnresolved(t *testing.T) {
	g := graph.NewOpen()
	a := g.NewNode(graph.Unresolved())
	b := g.NewNode(graph.Unresolved())
	g.Unify(a, b)

	require.NoError(t, Resolve(g))

	assert.False(t, g.Nodes[a].Known)
	assert.False(t, g.Nodes[b].Known)
}

func TestResolve_Conflict(t *testing.T) {
	g := graph.NewOpen()
	a := g.NewNode(graph.Resolved("ℝ"))
	b := g.NewNode(graph.Resolved("𝔹"))
	g.Unify(a, b)

	err := Resolve(g)
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.ElementsMatch(t, []string{"ℝ", "𝔹"}, []string{ce.TypeA, ce.TypeB})
	assert.Contains(t, err.Error(), "TYPE_CONFLICT: cannot unify")
}

func TestResolve_ConflictEitherOrder(t *testing.T) {
	// The conflict fires regardless of which label was assigned first.
	build := func(first, second string) error {
		g := graph.NewOpen()
		a := g.NewNode(graph.Resolved(first))
		b := g.NewNode(graph.Resolved(second))
		g.Unify(a, b)
		return Resolve(g)
	}

	assert.True(t, IsConflict(build("ℝ", "𝔹")))
	assert.True(t, IsConflict(build("𝔹", "ℝ")))
}

func TestResolve_TransitiveConflict(t *testing.T) {
	g := graph.NewOpen()
	a := g.NewNode(graph.Resolved("ℝ"))
	mid := g.NewNode(graph.Unresolved())
	b := g.NewNode(graph.Resolved("𝔹"))
	g.Unify(a, mid)
	g.Unify(mid, b)

	assert.True(t, IsConflict(Resolve(g)))
}

func TestResolve_Idempotent(t *testing.T) {
	g := graph.NewOpen()
	a := g.NewNode(graph.Unresolved())
	b := g.NewNode(graph.Resolved("ℝ"))
	g.NewNode(graph.Unresolved())
	g.Unify(a, b)

	require.NoError(t, Resolve(g))
	first := append([]graph.Label(nil), g.Nodes...)

	require.NoError(t, Resolve(g))
	assert.Equal(t, first, g.Nodes)
}

func TestResolve_SameTypeNoConflict(t *testing.T) {
	g := graph.NewOpen()
	a := g.NewNode(graph.Resolved("ℝ"))
	b := g.NewNode(graph.Resolved("ℝ"))
	g.Unify(a, b)

	require.NoError(t, Resolve(g))
	assert.Equal(t, graph.Resolved("ℝ"), g.Nodes[a])
	assert.Equal(t, graph.Resolved("ℝ"), g.Nodes[b])
}
