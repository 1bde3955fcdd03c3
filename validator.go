package saddle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/radbuglet/saddle-go/internal/graph"
)

const indentStep = 4

// Validate runs the propagation-and-conflict algorithm over g and returns
// nil on success. On failure it returns an *Error whose Kind is Cycle or
// BorrowConflict and whose Message is the full diagnostic body.
//
// Validate never mutates g. A Graph is meant to be built once, frozen, and
// validated once, but Validate itself is a pure function of g's contents
// and nothing here prevents calling it again.
func (g *Graph) Validate() error {
	idx, names := g.index()
	view := &graphView{g: g, idx: idx, names: names}

	order, ok := graph.Toposort(view)
	if !ok {
		return g.cycleError(view, names)
	}

	return g.propagate(order, names)
}

// index assigns each scope a deterministic integer index by sorting scope
// ids lexically, so that the topological and SCC algorithms - and, in
// turn, diagnostic ordering - never depend on Go's randomized map
// iteration order.
func (g *Graph) index() (idx map[ScopeID]int, names []ScopeID) {
	names = make([]ScopeID, 0, len(g.scopes))
	for id := range g.scopes {
		names = append(names, id)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	idx = make(map[ScopeID]int, len(names))
	for i, id := range names {
		idx[id] = i
	}
	return idx, names
}

// graphView adapts Graph to internal/graph.Graph, deduping parallel edges
// since the SCC/topological pass only needs reachability; PBS propagation
// likewise visits each distinct callee once, since repeating an edge is
// idempotent under Strictest.
type graphView struct {
	g     *Graph
	idx   map[ScopeID]int
	names []ScopeID
}

func (v *graphView) Order() int { return len(v.idx) }

func (v *graphView) EdgesFrom(u int) []int {
	n := v.g.scopes[v.names[u]]
	seen := make(map[int]bool, len(n.out))
	var out []int
	for _, e := range n.out {
		j := v.idx[e.to]
		if !seen[j] {
			seen[j] = true
			out = append(out, j)
		}
	}
	return out
}

// cycleError builds the diagnostic for a graph that failed toposort: one
// numbered block per strongly connected component that is a real cycle
// (size > 1, or size 1 with a self-loop). SCCs of size 1 without a
// self-loop are not cycles and are suppressed.
func (g *Graph) cycleError(view *graphView, names []ScopeID) error {
	var b strings.Builder
	b.WriteString("the scope graph contains cycles; analysis is only defined on a DAG\n")

	n := 0
	for _, scc := range graph.Tarjan(view) {
		ids := make([]ScopeID, len(scc))
		for i, idx := range scc {
			ids[i] = names[idx]
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		if len(ids) == 1 && !g.hasSelfLoop(ids[0]) {
			continue
		}

		n++
		memberSet := make(map[ScopeID]bool, len(ids))
		for _, id := range ids {
			memberSet[id] = true
		}

		fmt.Fprintf(&b, "\nCycle %d:\n", n)
		for _, id := range ids {
			node := g.scopes[id]
			fmt.Fprintf(&b, "  - %s\n", g.scopeLabel(id))

			type internalEdge struct {
				to      ScopeID
				defPath string
			}
			var edges []internalEdge
			for _, e := range node.out {
				if memberSet[e.to] {
					edges = append(edges, internalEdge{e.to, e.meta.DefPath})
				}
			}
			sort.Slice(edges, func(i, j int) bool {
				if edges[i].to != edges[j].to {
					return edges[i].to < edges[j].to
				}
				return edges[i].defPath < edges[j].defPath
			})
			for _, e := range edges {
				fmt.Fprintf(&b, "      calls %s at %s\n", g.scopeLabel(e.to), e.defPath)
			}
		}
	}

	return &Error{Kind: Cycle, Message: b.String()}
}

// hasSelfLoop reports whether id has an edge to itself.
func (g *Graph) hasSelfLoop(id ScopeID) bool {
	for _, e := range g.scopes[id].out {
		if e.to == id {
			return true
		}
	}
	return false
}

// scopeLabel renders a scope's name plus its defined_at, falling back to
// the raw id and "<unknown>" when no ScopeMeta was ever attached.
func (g *Graph) scopeLabel(id ScopeID) string {
	n := g.scopes[id]
	name := string(id)
	definedAt := "<unknown>"
	if n.meta != nil {
		if n.meta.Name != "" {
			name = n.meta.Name
		}
		if n.meta.DefinedAt != "" {
			definedAt = n.meta.DefinedAt
		}
	}
	return fmt.Sprintf("%s (defined at %s)", name, definedAt)
}

// componentLabel renders a component's name, falling back to its raw id.
func (g *Graph) componentLabel(id ComponentID) string {
	if meta, ok := g.components[id]; ok && meta != nil && meta.Name != "" {
		return meta.Name
	}
	return string(id)
}

func indent(level int) string {
	return strings.Repeat(" ", level)
}
