package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for shortest-path computation.
var (
	// ErrNilArcs is returned when no arcs function is supplied.
	ErrNilArcs = errors.New("dijkstra: arcs function is nil")

	// ErrBadVertexCount is returned for a negative vertex count.
	ErrBadVertexCount = errors.New("dijkstra: vertex count cannot be negative")

	// ErrVertexOutOfRange is returned when a vertex index falls outside [0, n).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrNegativeWeight is returned when relaxation meets a negative arc.
	ErrNegativeWeight = errors.New("dijkstra: negative arc weight encountered")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("dijkstra: no path to vertex")
)

// Arc is one outgoing connection: a target vertex and a non-negative weight.
type Arc struct {
	To     int
	Weight float64
}

// Arcs returns the outgoing arcs of vertex u. Returning a nil or empty
// slice means u has no outgoing arcs. This is the only capability the
// algorithm requires from the underlying structure.
type Arcs func(u int) []Arc

// Result holds the outcome of a single-source run:
//   - Dist[v]: total weight of the lightest path from the source to v,
//     or +Inf if v was not reached.
//   - Parent[v]: predecessor of v on that path, or -1 for the source and
//     for unreached vertices.
type Result struct {
	Dist   []float64
	Parent []int
}

// PathTo reconstructs the lightest path from the source to dest by walking
// predecessor links. Returns ErrVertexOutOfRange for a bad index and
// ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: index %d, have %d vertices", ErrVertexOutOfRange, dest, len(r.Dist))
	}
	if math.IsInf(r.Dist[dest], 1) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}

	// walk back to the source, then reverse
	path := []int{}
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
