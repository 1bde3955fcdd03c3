package saddle

import (
	"io"
	"sort"
	"strconv"

	"github.com/radbuglet/saddle-go/internal/dot"
	"github.com/radbuglet/saddle-go/internal/graph"
)

// Visualize renders g as a Graphviz digraph: one node per scope, one edge
// per call site, with every scope that belongs to a reported cycle drawn
// inside a shared "Cycle N" cluster so the SCC that caused a rejection is
// visible without re-reading the text diagnostic.
func (g *Graph) Visualize(w io.Writer) error {
	idx, names := g.index()
	view := &graphView{g: g, idx: idx, names: names}

	cluster := make(map[ScopeID]string)
	n := 0
	for _, scc := range graph.Tarjan(view) {
		if len(scc) == 1 && !g.hasSelfLoop(names[scc[0]]) {
			continue
		}
		n++
		label := sprintCycleLabel(n)
		for _, i := range scc {
			cluster[names[i]] = label
		}
	}

	dg := dot.NewGraph()
	for _, id := range names {
		node := g.scopes[id]
		definedAt := ""
		if node.meta != nil {
			definedAt = node.meta.DefinedAt
		}
		dg.AddNode(&dot.Node{
			ID:        string(id),
			Label:     g.scopeLabel(id),
			DefinedAt: definedAt,
			Cluster:   cluster[id],
		})
	}

	for _, id := range names {
		node := g.scopes[id]
		edges := append([]callEdge(nil), node.out...)
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].to != edges[j].to {
				return edges[i].to < edges[j].to
			}
			return edges[i].meta.DefPath < edges[j].meta.DefPath
		})
		for _, e := range edges {
			dg.AddEdge(&dot.Edge{From: string(e.from), To: string(e.to), DefPath: e.meta.DefPath})
		}
	}

	_, err := dg.WriteTo(w)
	return err
}

func sprintCycleLabel(n int) string {
	return "Cycle " + strconv.Itoa(n)
}
