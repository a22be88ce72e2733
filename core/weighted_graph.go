package core

import (
	"fmt"
	"strings"
)

// WeightedNeighbor pairs a neighboring vertex value with the weight of the
// connection leading to it.
type WeightedNeighbor[V comparable] struct {
	Vertex V
	Weight float64
}

// String renders the pair as "(<vertex>, <weight>)".
func (n WeightedNeighbor[V]) String() string {
	return fmt.Sprintf("(%v, %g)", n.Vertex, n.Weight)
}

// WeightedGraph is an undirected graph whose connections carry float64
// weights. It shares its storage layout, query surface, and invariants
// with Graph; only edge insertion and weighted queries differ.
type WeightedGraph[V comparable] struct {
	adjacency[V, WeightedEdge]
}

// NewWeightedGraph returns a WeightedGraph seeded with the given vertices,
// indexed in argument order.
func NewWeightedGraph[V comparable](vertices ...V) *WeightedGraph[V] {
	g := &WeightedGraph[V]{}
	for _, v := range vertices {
		g.AddVertex(v)
	}

	return g
}

// AddEdgeByIndices connects the vertices at indices u and v with the given
// weight. Weights are stored as-is; consumers that require non-negative
// weights enforce that themselves.
func (g *WeightedGraph[V]) AddEdgeByIndices(u, v int, weight float64) error {
	return g.AddEdge(WeightedEdge{U: u, V: v, Weight: weight})
}

// AddEdgeByVertices connects two vertices by value at the given weight,
// resolving each with IndexOf.
func (g *WeightedGraph[V]) AddEdgeByVertices(first, second V, weight float64) error {
	u, err := g.IndexOf(first)
	if err != nil {
		return err
	}
	v, err := g.IndexOf(second)
	if err != nil {
		return err
	}

	return g.AddEdgeByIndices(u, v, weight)
}

// NeighborsForIndexWithWeights returns the (vertex, weight) pairs at the
// far end of every edge entry of index i, in adjacency-list order.
func (g *WeightedGraph[V]) NeighborsForIndexWithWeights(i int) ([]WeightedNeighbor[V], error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}

	return g.weightedNeighborsAt(i), nil
}

// String renders one line per vertex, in index order:
//
//	<vertex> -> [(<neighbor>, <weight>) ...]
func (g *WeightedGraph[V]) String() string {
	var b strings.Builder
	for i, v := range g.vertices {
		fmt.Fprintf(&b, "%v -> %v\n", v, g.weightedNeighborsAt(i))
	}

	return b.String()
}

// weightedNeighborsAt builds the (vertex, weight) pairs of a valid index i.
func (g *WeightedGraph[V]) weightedNeighborsAt(i int) []WeightedNeighbor[V] {
	out := make([]WeightedNeighbor[V], 0, len(g.edges[i]))
	for _, e := range g.edges[i] {
		out = append(out, WeightedNeighbor[V]{Vertex: g.vertices[e.V], Weight: e.Weight})
	}

	return out
}
