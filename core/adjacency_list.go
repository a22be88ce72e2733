package core

import "fmt"

// endpointed constrains the edge entry types an adjacency store can hold.
// Endpoints reports the origin and destination indices; Reversed produces
// the mirror entry appended to the destination's list.
type endpointed[E any] interface {
	Endpoints() (int, int)
	Reversed() E
}

// adjacency is the storage shared by Graph and WeightedGraph: an ordered
// vertex sequence plus one edge list per vertex, held in parallel slices
// so that vertices[i] owns edges[i].
//
// The store is append-only and performs no synchronization; a graph built
// on it belongs to a single goroutine unless guarded externally.
type adjacency[V comparable, E endpointed[E]] struct {
	vertices []V
	edges    [][]E
}

// AddVertex appends v with an empty adjacency list and returns its index.
// Duplicate values are allowed; each occupies its own index.
//
// Complexity: O(1) amortized.
func (a *adjacency[V, E]) AddVertex(v V) int {
	a.vertices = append(a.vertices, v)
	a.edges = append(a.edges, nil)

	return len(a.vertices) - 1
}

// AddEdge validates both endpoints of e, then appends e to the origin's
// list and e.Reversed() to the destination's list. A self-loop appends
// both entries to the same list. On error the store is left unchanged.
//
// Complexity: O(1) amortized.
func (a *adjacency[V, E]) AddEdge(e E) error {
	u, v := e.Endpoints()
	if err := a.checkIndex(u); err != nil {
		return err
	}
	if err := a.checkIndex(v); err != nil {
		return err
	}

	a.edges[u] = append(a.edges[u], e)
	a.edges[v] = append(a.edges[v], e.Reversed())

	return nil
}

// VertexAt returns the value stored at index i.
func (a *adjacency[V, E]) VertexAt(i int) (V, error) {
	if err := a.checkIndex(i); err != nil {
		var zero V
		return zero, err
	}

	return a.vertices[i], nil
}

// IndexOf scans the vertex sequence for v and returns the first matching
// index, or -1 with ErrVertexNotFound.
//
// Complexity: O(V); the store keeps no reverse lookup table.
func (a *adjacency[V, E]) IndexOf(v V) (int, error) {
	for i, cur := range a.vertices {
		if cur == v {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
}

// NeighborsForIndex returns the values at the far end of every edge entry
// of index i, in adjacency-list order. The slice is freshly allocated;
// callers may keep or modify it.
func (a *adjacency[V, E]) NeighborsForIndex(i int) ([]V, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}

	return a.neighborsAt(i), nil
}

// NeighborsForVertex resolves v with IndexOf and returns its neighbors.
func (a *adjacency[V, E]) NeighborsForVertex(v V) ([]V, error) {
	i, err := a.IndexOf(v)
	if err != nil {
		return nil, err
	}

	return a.neighborsAt(i), nil
}

// EdgesForIndex returns the adjacency list of index i itself, as a read
// view: callers must not modify the returned slice.
func (a *adjacency[V, E]) EdgesForIndex(i int) ([]E, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}

	return a.edges[i], nil
}

// EdgesForVertex resolves v with IndexOf and returns its adjacency list,
// under the same read-view rule as EdgesForIndex.
func (a *adjacency[V, E]) EdgesForVertex(v V) ([]E, error) {
	i, err := a.IndexOf(v)
	if err != nil {
		return nil, err
	}

	return a.edges[i], nil
}

// VertexCount returns the number of vertices.
func (a *adjacency[V, E]) VertexCount() int { return len(a.vertices) }

// EdgeCount returns the sum of all adjacency-list lengths. Because every
// connection is stored as two directional entries, each undirected edge
// (self-loops included) contributes 2 to this total.
func (a *adjacency[V, E]) EdgeCount() int {
	total := 0
	for _, list := range a.edges {
		total += len(list)
	}

	return total
}

// checkIndex rejects indices outside [0, VertexCount).
func (a *adjacency[V, E]) checkIndex(i int) error {
	if i < 0 || i >= len(a.vertices) {
		return fmt.Errorf("%w: index %d, have %d vertices", ErrIndexOutOfRange, i, len(a.vertices))
	}

	return nil
}

// neighborsAt builds the neighbor values of a valid index i.
func (a *adjacency[V, E]) neighborsAt(i int) []V {
	out := make([]V, 0, len(a.edges[i]))
	for _, e := range a.edges[i] {
		_, v := e.Endpoints()
		out = append(out, a.vertices[v])
	}

	return out
}
