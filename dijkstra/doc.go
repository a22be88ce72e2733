// Package dijkstra computes single-source shortest paths over non-negative
// arc weights.
//
// The algorithm consumes the graph through an Arcs function: given a vertex
// index u it returns the outgoing arcs of u as (target, weight) pairs. Any
// structure able to answer that query can be searched; an undirected graph
// simply reports each connection from both endpoints. Vertices are dense
// indices in [0, n), which keeps the frontier heap and the settled set
// index-addressed.
//
// # Result
//
// ShortestPaths returns the full distance and predecessor arrays. Unreached
// vertices carry +Inf distance and -1 predecessor; Result.PathTo
// reconstructs a concrete route on demand.
//
// # Determinism
//
// Arc relaxation follows the order the Arcs function reports, and a vertex
// is settled exactly once at its final distance. Distances are therefore
// reproducible across runs. When several shortest paths tie, the reported
// predecessor is the first one that reached the vertex at its final
// distance.
//
// # Complexity
//
// O((V + E) log V) time with the indexed heap, O(V) extra space.
//
// # Errors
//
//   - ErrNilArcs: no arcs function supplied.
//   - ErrBadVertexCount: negative vertex count.
//   - ErrVertexOutOfRange: source, arc target, or path destination outside
//     [0, n).
//   - ErrNegativeWeight: an arc with negative weight was encountered.
//   - ErrNoPath: PathTo called for a vertex the search never reached.
package dijkstra
