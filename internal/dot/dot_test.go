package dot

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexlang/hexc/internal/compiler"
	"github.com/hexlang/hexc/internal/sig"
)

func pipelineDiagram(t *testing.T) *compiler.Diagram {
	t.Helper()
	table := sig.NewTable()
	table.Add("f", sig.Signature{Inputs: []string{"a"}, Outputs: []string{"b"}})
	table.Add("g", sig.Signature{Inputs: []string{"b"}, Outputs: []string{"c"}})

	d, err := compiler.Compile("(f g)", table)
	require.NoError(t, err)
	return d
}

func TestRender_Golden(t *testing.T) {
	d := pipelineDiagram(t)
	g := goldie.New(t, goldie.WithNameSuffix(".golden"))

	g.Assert(t, "pipeline", []byte(Render(d, Options{})))
	g.Assert(t, "pipeline_minimized", []byte(Render(d, Options{Minimize: true})))
}

func TestRender_Rankdir(t *testing.T) {
	d := pipelineDiagram(t)

	assert.Contains(t, Render(d, Options{}), "rankdir=LR;")
	assert.Contains(t, Render(d, Options{Rankdir: "TB"}), "rankdir=TB;")
}

func TestRender_MinimizeCollapsesSharedWires(t *testing.T) {
	d := pipelineDiagram(t)

	full := Render(d, Options{})
	minimized := Render(d, Options{Minimize: true})

	assert.Contains(t, full, "w3")
	assert.NotContains(t, minimized, "w3")
	// Rendering never mutates the diagram.
	assert.Len(t, d.Nodes, 4)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"plain"`, quote("plain"))
	assert.Equal(t, `"a\"b"`, quote(`a"b`))
	assert.Equal(t, `"a\\b"`, quote(`a\b`))
}
