// Package domain contains the core domain models of the testbed topology:
// inventory records, the undirected topology graph and the cache layout.
package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Node kinds produced by the graph builders.
const (
	KindRenater = "renater"
	KindSwitch  = "switch"
	KindRouter  = "router"
	KindUnknown = "unknown"
	KindHost    = "node"
)

// Node is a vertex of a topology graph.
type Node struct {
	ID    string   `json:"id" yaml:"id"`
	Kind  string   `json:"kind" yaml:"kind"`
	Power *float64 `json:"power,omitempty" yaml:"power,omitempty"`
	Cores *int     `json:"core,omitempty" yaml:"core,omitempty"`
}

// Edge is an undirected link between two nodes.
type Edge struct {
	A         string   `json:"a" yaml:"a"`
	B         string   `json:"b" yaml:"b"`
	Bandwidth float64  `json:"bandwidth" yaml:"bandwidth"`
	Latency   float64  `json:"latency" yaml:"latency"`
	Weight    *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// EdgeKey identifies an unordered node pair.
type EdgeKey struct {
	A, B string
}

// NewEdgeKey normalizes the pair so that (u, v) and (v, u) share a key.
func NewEdgeKey(u, v string) EdgeKey {
	if u > v {
		u, v = v, u
	}
	return EdgeKey{A: u, B: v}
}

// Graph is an undirected graph with attributed nodes and edges.
// Iteration follows insertion order so that output is reproducible.
type Graph struct {
	nodes     map[string]*Node
	edges     map[EdgeKey]*Edge
	nodeOrder []string
	edgeOrder []EdgeKey
	adjacency map[string][]string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[EdgeKey]*Edge),
		adjacency: make(map[string][]string),
	}
}

// AddNode inserts n unless a node with the same id exists.
// The first write wins; it reports whether n was inserted.
func (g *Graph) AddNode(n Node) bool {
	if _, exists := g.nodes[n.ID]; exists {
		return false
	}
	g.nodes[n.ID] = &n
	g.nodeOrder = append(g.nodeOrder, n.ID)
	return true
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns a copy of the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// HasEdge reports whether u and v are linked, in either direction.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.edges[NewEdgeKey(u, v)]
	return ok
}

// Edge returns a copy of the edge between u and v.
func (g *Graph) Edge(u, v string) (Edge, bool) {
	e, ok := g.edges[NewEdgeKey(u, v)]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// AddEdge inserts e. Both endpoints must already be nodes.
// An existing edge between the same pair is left untouched; added reports whether e was inserted.
func (g *Graph) AddEdge(e Edge) (added bool, err error) {
	for _, id := range []string{e.A, e.B} {
		if !g.HasNode(id) {
			return false, zerr.With(zerr.With(zerr.Wrap(ErrUnknownNode, "cannot link "+e.A+" and "+e.B), "node", id), "edge", e.A+" - "+e.B)
		}
	}

	key := NewEdgeKey(e.A, e.B)
	if _, exists := g.edges[key]; exists {
		return false, nil
	}

	g.edges[key] = &e
	g.edgeOrder = append(g.edgeOrder, key)
	g.adjacency[e.A] = append(g.adjacency[e.A], e.B)
	if e.A != e.B {
		g.adjacency[e.B] = append(g.adjacency[e.B], e.A)
	}
	return true, nil
}

// AddBandwidth increases the bandwidth of the edge between u and v by delta.
// It reports false when no such edge exists.
func (g *Graph) AddBandwidth(u, v string, delta float64) bool {
	e, ok := g.edges[NewEdgeKey(u, v)]
	if !ok {
		return false
	}
	e.Bandwidth += delta
	return true
}

// Neighbors returns the ids linked to id, sorted.
func (g *Graph) Neighbors(id string) []string {
	out := slices.Clone(g.adjacency[id])
	slices.Sort(out)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes yields the nodes in insertion order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, id := range g.nodeOrder {
			if !yield(*g.nodes[id]) {
				return
			}
		}
	}
}

// Edges yields the edges in insertion order.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, key := range g.edgeOrder {
			if !yield(*g.edges[key]) {
				return
			}
		}
	}
}

// Float returns a pointer to v, for optional attributes.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for optional attributes.
func Int(v int) *int {
	return &v
}
