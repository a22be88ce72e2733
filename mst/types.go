package mst

import (
	"errors"
	"fmt"
)

// Sentinel errors for spanning-tree computation.
var (
	// ErrNilArcs is returned when no arcs function is supplied.
	ErrNilArcs = errors.New("mst: arcs function is nil")

	// ErrBadVertexCount is returned for a negative vertex count.
	ErrBadVertexCount = errors.New("mst: vertex count cannot be negative")

	// ErrVertexOutOfRange is returned when a vertex index falls outside [0, n).
	ErrVertexOutOfRange = errors.New("mst: vertex index out of range")

	// ErrDisconnected is returned when no spanning tree covers every vertex.
	ErrDisconnected = errors.New("mst: structure is not connected")
)

// Arc is one connection: a target vertex and the weight of reaching it.
type Arc struct {
	To     int
	Weight float64
}

// Arcs returns the connections of vertex u. Returning a nil or empty slice
// means u has no connections. This is the only capability the algorithm
// requires from the underlying structure.
type Arcs func(u int) []Arc

// Edge is one accepted tree connection, oriented from the vertex that was
// already in the tree to the one it pulled in.
type Edge struct {
	From, To int
	Weight   float64
}

// String renders the edge as "From Weight> To".
func (e Edge) String() string {
	return fmt.Sprintf("%d %g> %d", e.From, e.Weight, e.To)
}

// Result holds a finished spanning tree:
//   - Edges: the n-1 accepted connections, in growth order from the root.
//   - Parent: predecessor of each vertex in the tree, -1 for the root.
//   - Total: sum of the accepted weights.
type Result struct {
	Edges  []Edge
	Parent []int
	Total  float64
}
