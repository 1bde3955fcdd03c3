package saddle

// Graph is the Graph Builder of the analyzer: it accumulates scopes,
// components, call edges, borrows, and grants into a directed multigraph
// keyed by textual identifiers. A Graph is built once by repeated calls to
// its Push*/Annotate* methods, then frozen and handed to Validate. No
// mutation happens during validation; the zero value is not usable, use
// NewGraph.
type Graph struct {
	scopes     map[ScopeID]*scopeNode
	components map[ComponentID]*ComponentMeta
}

// NewGraph returns an empty Graph Builder.
func NewGraph() *Graph {
	return &Graph{
		scopes:     make(map[ScopeID]*scopeNode),
		components: make(map[ComponentID]*ComponentMeta),
	}
}

// scope finds or creates the node for id, registering it if new.
func (g *Graph) scope(id ScopeID) *scopeNode {
	n, ok := g.scopes[id]
	if !ok {
		n = newScopeNode(id)
		g.scopes[id] = n
	}
	return n
}

// component registers id if new, without requiring metadata: a component
// may be referenced by id alone until (if ever) annotated.
func (g *Graph) component(id ComponentID) {
	if _, ok := g.components[id]; !ok {
		g.components[id] = nil
	}
}

// AnnotateScope registers id if new and overwrites its metadata.
func (g *Graph) AnnotateScope(id ScopeID, meta ScopeMeta) {
	n := g.scope(id)
	m := meta
	n.meta = &m
}

// AnnotateComponent registers id if new and overwrites its metadata.
func (g *Graph) AnnotateComponent(id ComponentID, meta ComponentMeta) {
	m := meta
	g.components[id] = &m
}

// PushCallEdge registers both endpoints if new and appends a call edge.
// Duplicate edges between the same ordered pair are permitted: each
// represents a distinct syntactic call site.
func (g *Graph) PushCallEdge(from, to ScopeID, meta CallMeta) {
	g.scope(to) // register the callee even if it never borrows anything
	src := g.scope(from)
	src.out = append(src.out, callEdge{from: from, to: to, meta: meta})
}

// PushAccess registers both nodes if new and updates scope's borrow-map
// entry for component with the strictest of the existing and requested
// mutability, appending site to the entry's ordered site list.
func (g *Graph) PushAccess(scope ScopeID, component ComponentID, requested Mutability, site BorrowSite) {
	g.component(component)
	n := g.scope(scope)
	a, ok := n.borrows[component]
	if !ok {
		a = &access{}
		n.borrows[component] = a
	}
	a.push(requested, site)
}

// PushGrant registers both nodes if new and updates scope's grant-map
// entry the same way PushAccess updates its borrow-map entry.
func (g *Graph) PushGrant(scope ScopeID, component ComponentID, requested Mutability, site BorrowSite) {
	g.component(component)
	n := g.scope(scope)
	a, ok := n.grants[component]
	if !ok {
		a = &access{}
		n.grants[component] = a
	}
	a.push(requested, site)
}
