package saddle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualizeRendersCallEdge(t *testing.T) {
	g := NewGraph()
	g.AnnotateScope("Root", ScopeMeta{Name: "Root"})
	g.AnnotateScope("A", ScopeMeta{Name: "A"})
	g.PushCallEdge("Root", "A", CallMeta{DefPath: "main.go:3"})

	var b strings.Builder
	require.NoError(t, g.Visualize(&b))

	out := b.String()
	assert.Contains(t, out, "digraph saddle")
	assert.Contains(t, out, `"Root" -> "A"`)
}

func TestVisualizeGroupsCycleCluster(t *testing.T) {
	g := NewGraph()
	g.PushCallEdge("P", "Q", CallMeta{DefPath: "x.go:1"})
	g.PushCallEdge("Q", "P", CallMeta{DefPath: "x.go:2"})

	var b strings.Builder
	require.NoError(t, g.Visualize(&b))

	assert.Contains(t, b.String(), "subgraph cluster_0")
}
