package saddle

import (
	"fmt"
	"sort"
	"strings"
)

// propagate runs the PBS propagation pass over scopes in the given
// topological order, validates each scope's borrows against its PBS as it
// is reached, and aggregates every conflict into a single error. It does
// not short-circuit: every offending (scope, component) pair is reported
// exactly once, sorted by scope name, then component name.
func (g *Graph) propagate(order []int, names []ScopeID) error {
	idx := make(map[ScopeID]int, len(names))
	for i, id := range names {
		idx[id] = i
	}

	callersOf := g.reverseEdges()

	pbs := make([]map[ComponentID]Mutability, len(names))
	for i := range pbs {
		pbs[i] = make(map[ComponentID]Mutability)
	}

	type conflict struct {
		scope     ScopeID
		component ComponentID
		body      string
	}
	var conflicts []conflict

	for _, vi := range order {
		vID := names[vi]
		v := g.scopes[vID]

		for _, cID := range sortedComponentIDs(v.borrows) {
			req := v.borrows[cID]
			held, ok := pbs[vi][cID]
			if !ok || Compatible(held, req.mutability) {
				continue
			}
			body := g.conflictBody(idx, pbs, callersOf, vID, cID, req.mutability, held)
			conflicts = append(conflicts, conflict{scope: vID, component: cID, body: body})
		}

		for cID, a := range v.borrows {
			pbs[vi][cID] = Strictest(pbs[vi][cID], a.mutability)
		}

		seen := make(map[ScopeID]bool, len(v.out))
		for _, e := range v.out {
			if seen[e.to] {
				continue
			}
			seen[e.to] = true

			ui := idx[e.to]
			u := g.scopes[e.to]
			for cID, m := range pbs[vi] {
				mPrime := m
				if grant, ok := u.grants[cID]; ok {
					if grant.mutability == Mutable {
						continue
					}
					mPrime = Immutable
				}
				pbs[ui][cID] = Strictest(pbs[ui][cID], mPrime)
			}
		}
	}

	if len(conflicts) == 0 {
		return nil
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].scope != conflicts[j].scope {
			return conflicts[i].scope < conflicts[j].scope
		}
		return conflicts[i].component < conflicts[j].component
	})

	var b strings.Builder
	b.WriteString("one or more scopes may be entered while a borrowed component is already held incompatibly\n")
	for _, c := range conflicts {
		b.WriteString("\n")
		b.WriteString(c.body)
	}

	return &Error{Kind: BorrowConflict, Message: b.String()}
}

// reverseEdges indexes every call edge by its target, for the caller walk
// the conflict diagnostic tree performs.
func (g *Graph) reverseEdges() map[ScopeID][]callEdge {
	rev := make(map[ScopeID][]callEdge)
	for _, n := range g.scopes {
		for _, e := range n.out {
			rev[e.to] = append(rev[e.to], e)
		}
	}
	return rev
}

// conflictBody builds the header and diagnostic subtree for a single
// conflict: scope target borrows component at mReq while PBS[target][component]
// is already mHeld.
func (g *Graph) conflictBody(
	idx map[ScopeID]int,
	pbs []map[ComponentID]Mutability,
	callersOf map[ScopeID][]callEdge,
	target ScopeID,
	component ComponentID,
	mReq Mutability,
	mHeld Mutability,
) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The scope %s borrows the component %s %s, but it may already be held %s on entry.\n",
		g.scopeLabel(target), g.componentLabel(component), mReq.Adjective(), mHeld.Adjective())

	visited := make(map[ScopeID]bool)
	g.traceOrigin(&b, idx, pbs, callersOf, component, mReq, target, indentStep, visited)
	return b.String()
}

// traceOrigin recursively walks the predecessors of target to explain why
// component may be held at an incompatible mutability on entry, per the
// direct/indirect contribution split: sites declared on target itself,
// then callers whose own PBS entry for component is still incompatible
// with mReq, each visited at most once for the whole trace.
func (g *Graph) traceOrigin(
	b *strings.Builder,
	idx map[ScopeID]int,
	pbs []map[ComponentID]Mutability,
	callersOf map[ScopeID][]callEdge,
	component ComponentID,
	mReq Mutability,
	target ScopeID,
	depth int,
	visited map[ScopeID]bool,
) {
	node := g.scopes[target]
	if a, ok := node.borrows[component]; ok {
		for _, site := range a.sites {
			fmt.Fprintf(b, "%s- %s could itself borrow the component %s at %s.\n",
				indent(depth), g.scopeLabel(target), site.Mutability.Adjective(), site.DefPath)
		}
	}

	groups := make(map[ScopeID][]string)
	var callerOrder []ScopeID
	for _, e := range callersOf[target] {
		if _, ok := groups[e.from]; !ok {
			callerOrder = append(callerOrder, e.from)
		}
		groups[e.from] = append(groups[e.from], e.meta.DefPath)
	}
	sort.Slice(callerOrder, func(i, j int) bool { return callerOrder[i] < callerOrder[j] })

	for _, caller := range callerOrder {
		if visited[caller] {
			continue
		}
		held, ok := pbs[idx[caller]][component]
		if !ok || Compatible(held, mReq) {
			continue
		}
		visited[caller] = true

		fmt.Fprintf(b, "%s- %s may call it while holding the component %s:\n",
			indent(depth), g.scopeLabel(caller), held.Adjective())

		defPaths := append([]string(nil), groups[caller]...)
		sort.Strings(defPaths)
		for _, dp := range defPaths {
			fmt.Fprintf(b, "%s  at %s\n", indent(depth), dp)
		}

		g.traceOrigin(b, idx, pbs, callersOf, component, mReq, caller, depth+indentStep, visited)
	}
}

// sortedComponentIDs returns m's keys sorted, so iteration over a scope's
// borrow map never depends on Go's randomized map order.
func sortedComponentIDs(m map[ComponentID]*access) []ComponentID {
	ids := make([]ComponentID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
