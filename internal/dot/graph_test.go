package dot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToRendersNodesAndEdges(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: "Root", Label: "Root", DefinedAt: "main.go:1"})
	g.AddNode(&Node{ID: "A", Label: "A"})
	g.AddEdge(&Edge{From: "Root", To: "A", DefPath: "main.go:2"})

	var b strings.Builder
	n, err := g.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, int64(b.Len()), n)

	out := b.String()
	assert.Contains(t, out, `"Root" [label="Root\nmain.go:1"]`)
	assert.Contains(t, out, `"A" [label="A"]`)
	assert.Contains(t, out, `"Root" -> "A" [label="main.go:2"]`)
}

func TestWriteToGroupsClusters(t *testing.T) {
	g := NewGraph()
	g.AddNode(&Node{ID: "P", Label: "P", Cluster: "Cycle 1"})
	g.AddNode(&Node{ID: "Q", Label: "Q", Cluster: "Cycle 1"})
	g.AddEdge(&Edge{From: "P", To: "Q", DefPath: "x.go:1"})
	g.AddEdge(&Edge{From: "Q", To: "P", DefPath: "x.go:2"})

	var b strings.Builder
	_, err := g.WriteTo(&b)
	require.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, "subgraph cluster_0")
	assert.Contains(t, out, `label = "Cycle 1"`)
}
