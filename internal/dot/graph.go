// Package dot builds a Graphviz DOT-format rendering of a scope graph:
// scopes become nodes, call edges become arrows, and scopes that belong to
// the same strongly connected component are drawn inside a shared cluster
// so a reviewer can see why the validator rejected a graph at a glance.
package dot

import (
	"fmt"
	"io"
	"strconv"
)

// Node is a single scope in the rendered graph.
type Node struct {
	ID        string
	Label     string
	DefinedAt string
	// Cluster groups nodes that belong to the same strongly connected
	// component. Nodes with no cluster (the empty string) are rendered
	// standalone.
	Cluster string
}

// Edge is a single call edge in the rendered graph.
type Edge struct {
	From    string
	To      string
	DefPath string
}

// Graph is the DOT-format rendering of a scope graph.
type Graph struct {
	Nodes []*Node
	Edges []*Edge
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends n to the graph.
func (g *Graph) AddNode(n *Node) {
	g.Nodes = append(g.Nodes, n)
}

// AddEdge appends e to the graph.
func (g *Graph) AddEdge(e *Edge) {
	g.Edges = append(g.Edges, e)
}

// WriteTo renders g as a Graphviz digraph.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	fmt.Fprintf(cw, "digraph saddle {\n\trankdir=LR;\n\tnode [shape=box];\n\n")

	clusters := make(map[string][]*Node)
	var clusterOrder []string
	var standalone []*Node
	for _, n := range g.Nodes {
		if n.Cluster == "" {
			standalone = append(standalone, n)
			continue
		}
		if _, ok := clusters[n.Cluster]; !ok {
			clusterOrder = append(clusterOrder, n.Cluster)
		}
		clusters[n.Cluster] = append(clusters[n.Cluster], n)
	}

	for i, cluster := range clusterOrder {
		fmt.Fprintf(cw, "\tsubgraph cluster_%d {\n\t\tlabel = %s;\n\t\tcolor = red;\n", i, strconv.Quote(cluster))
		for _, n := range clusters[cluster] {
			writeNode(cw, n)
		}
		fmt.Fprintf(cw, "\t}\n")
	}

	for _, n := range standalone {
		writeNode(cw, n)
	}

	fmt.Fprintf(cw, "\n")
	for _, e := range g.Edges {
		fmt.Fprintf(cw, "\t%s -> %s [label=%s];\n", strconv.Quote(e.From), strconv.Quote(e.To), strconv.Quote(e.DefPath))
	}

	fmt.Fprintf(cw, "}\n")
	return cw.n, cw.err
}

func writeNode(w io.Writer, n *Node) {
	label := n.Label
	if n.DefinedAt != "" {
		label = n.Label + "\n" + n.DefinedAt
	}
	fmt.Fprintf(w, "\t\t%s [label=%s];\n", strconv.Quote(n.ID), strconv.Quote(label))
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
