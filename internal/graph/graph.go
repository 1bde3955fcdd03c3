// Package graph implements the index-based graph algorithms the validator
// runs over a scope graph: topological ordering and Tarjan's strongly
// connected components. It operates over a minimal integer-indexed
// interface rather than any concrete node type, so the same algorithms
// serve any caller willing to assign its nodes dense indices.
package graph

// Graph is the minimal view algorithms in this package need: an integer
// node-count and, for each node index, the indices of its out-neighbors.
// Callers that want deterministic output must assign indices in a
// deterministic order themselves (e.g. sorted by a stable key); this
// package does not reorder anything on its own.
type Graph interface {
	// Order returns the number of nodes, indices [0, Order()).
	Order() int
	// EdgesFrom returns the out-neighbors of node u. Implementations may
	// dedupe parallel edges; the algorithms here only need reachability.
	EdgesFrom(u int) []int
}

// Toposort attempts a topological ordering of g's nodes using Kahn's
// algorithm. ok is false iff the graph contains a cycle (including a
// self-loop, which always leaves its node's in-degree above zero). The
// returned order is deterministic given a deterministic EdgesFrom and a
// deterministic iteration of indices [0, Order()), which this
// implementation always uses.
func Toposort(g Graph) (order []int, ok bool) {
	n := g.Order()
	indegree := make([]int, n)
	for u := 0; u < n; u++ {
		for _, v := range g.EdgesFrom(u) {
			indegree[v]++
		}
	}

	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if indegree[u] == 0 {
			queue = append(queue, u)
		}
	}

	order = make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		for _, v := range g.EdgesFrom(u) {
			indegree[v]--
			if indegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return order, len(order) == n
}

// Tarjan returns the strongly connected components of g, each as a slice
// of node indices. A component of size 1 is included even when its node
// has no self-loop; callers that only care about real cycles should check
// for size > 1 or a self-loop edge separately, since that decision is
// about interpretation, not about what a "strongly connected component" is.
func Tarjan(g Graph) [][]int {
	t := &tarjanState{
		g:       g,
		index:   make([]int, g.Order()),
		lowlink: make([]int, g.Order()),
		onStack: make([]bool, g.Order()),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for v := 0; v < g.Order(); v++ {
		if t.index[v] == -1 {
			t.strongconnect(v)
		}
	}
	return t.sccs
}

type tarjanState struct {
	g       Graph
	index   []int
	lowlink []int
	onStack []bool
	stack   []int
	counter int
	sccs    [][]int
}

// strongconnect is the textbook recursive formulation of Tarjan's
// algorithm. Recursion depth is bounded by the longest simple path in the
// scope graph, which in practice tracks call-stack depth of the analyzed
// program and is not a concern at the sizes this analyzer targets.
func (t *tarjanState) strongconnect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.EdgesFrom(v) {
		switch {
		case t.index[w] == -1:
			t.strongconnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		case t.onStack[w]:
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}

	var scc []int
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		scc = append(scc, w)
		if w == v {
			break
		}
	}
	t.sccs = append(t.sccs, scc)
}
