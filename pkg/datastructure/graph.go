package datastructure

import (
	"campusnav/pkg/server"
)

type Edge[N comparable] struct {
	To     N
	Weight float64
}

func NewEdge[N comparable](to N, weight float64) Edge[N] {
	return Edge[N]{To: to, Weight: weight}
}

// Graph is a weighted adjacency-list graph over any comparable node identity.
// An undirected connection is stored as two directed edges of equal weight.
// Parallel edges between the same pair are kept as-is, not deduplicated.
// Not safe for concurrent mutation.
type Graph[N comparable] struct {
	adjacency map[N][]Edge[N]
	nodeOrder []N
}

func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{
		adjacency: make(map[N][]Edge[N]),
		nodeOrder: make([]N, 0),
	}
}

// AddNode inserts n, no-op when already present.
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.adjacency[n]; ok {
		return
	}
	g.adjacency[n] = make([]Edge[N], 0)
	g.nodeOrder = append(g.nodeOrder, n)
}

// AddEdge adds a directed edge, auto-inserting both endpoints. Weight is the
// caller's responsibility and is not validated.
func (g *Graph[N]) AddEdge(from, to N, weight float64) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], NewEdge(to, weight))
}

func (g *Graph[N]) AddUndirectedEdge(a, b N, weight float64) {
	g.AddEdge(a, b, weight)
	g.AddEdge(b, a, weight)
}

// Neighbors returns the outgoing edges of n in insertion order, empty when n
// is absent.
func (g *Graph[N]) Neighbors(n N) []Edge[N] {
	edges, ok := g.adjacency[n]
	if !ok {
		return []Edge[N]{}
	}
	return edges
}

func (g *Graph[N]) HasNode(n N) bool {
	_, ok := g.adjacency[n]
	return ok
}

func (g *Graph[N]) HasEdge(from, to N) bool {
	for _, edge := range g.adjacency[from] {
		if edge.To == to {
			return true
		}
	}
	return false
}

// EdgeWeight returns the weight of the first from→to edge.
func (g *Graph[N]) EdgeWeight(from, to N) (float64, error) {
	edges, ok := g.adjacency[from]
	if !ok {
		return 0, server.NewErrorf(server.ErrNotFound, "source node not found in graph")
	}
	for _, edge := range edges {
		if edge.To == to {
			return edge.Weight, nil
		}
	}
	return 0, server.NewErrorf(server.ErrNotFound, "edge not found in graph")
}

// AllNodes returns a snapshot of node identities in node insertion order.
func (g *Graph[N]) AllNodes() []N {
	nodes := make([]N, len(g.nodeOrder))
	copy(nodes, g.nodeOrder)
	return nodes
}

func (g *Graph[N]) NodeCount() int {
	return len(g.adjacency)
}

func (g *Graph[N]) EdgeCount() int {
	count := 0
	for _, edges := range g.adjacency {
		count += len(edges)
	}
	return count
}

// RemoveNode deletes n and strips every edge referencing it from the other
// adjacency lists.
func (g *Graph[N]) RemoveNode(n N) {
	if _, ok := g.adjacency[n]; !ok {
		return
	}
	delete(g.adjacency, n)
	for i, node := range g.nodeOrder {
		if node == n {
			g.nodeOrder = append(g.nodeOrder[:i], g.nodeOrder[i+1:]...)
			break
		}
	}
	for from, edges := range g.adjacency {
		kept := edges[:0]
		for _, edge := range edges {
			if edge.To != n {
				kept = append(kept, edge)
			}
		}
		g.adjacency[from] = kept
	}
}

// RemoveEdge deletes every from→to edge, parallel copies included.
func (g *Graph[N]) RemoveEdge(from, to N) {
	edges, ok := g.adjacency[from]
	if !ok {
		return
	}
	kept := edges[:0]
	for _, edge := range edges {
		if edge.To != to {
			kept = append(kept, edge)
		}
	}
	g.adjacency[from] = kept
}

func (g *Graph[N]) Clear() {
	g.adjacency = make(map[N][]Edge[N])
	g.nodeOrder = g.nodeOrder[:0]
}
