package core

import (
	"fmt"
	"strings"
)

// Graph is an undirected graph over vertices of a comparable type V,
// addressed primarily by insertion index. The zero value is unusable;
// construct with NewGraph.
type Graph[V comparable] struct {
	adjacency[V, Edge]
}

// NewGraph returns a Graph seeded with the given vertices, indexed in
// argument order. Edges are added afterwards.
func NewGraph[V comparable](vertices ...V) *Graph[V] {
	g := &Graph[V]{}
	for _, v := range vertices {
		g.AddVertex(v)
	}

	return g
}

// AddEdgeByIndices connects the vertices at indices u and v.
func (g *Graph[V]) AddEdgeByIndices(u, v int) error {
	return g.AddEdge(Edge{U: u, V: v})
}

// AddEdgeByVertices connects two vertices by value, resolving each with
// IndexOf. When a value occupies several indices, the lowest one is used.
func (g *Graph[V]) AddEdgeByVertices(first, second V) error {
	u, err := g.IndexOf(first)
	if err != nil {
		return err
	}
	v, err := g.IndexOf(second)
	if err != nil {
		return err
	}

	return g.AddEdgeByIndices(u, v)
}

// String renders one line per vertex, in index order:
//
//	<vertex> -> [<neighbor> <neighbor> ...]
func (g *Graph[V]) String() string {
	var b strings.Builder
	for i, v := range g.vertices {
		fmt.Fprintf(&b, "%v -> %v\n", v, g.neighborsAt(i))
	}

	return b.String()
}
