// Package core provides generic, index-addressed, undirected graphs:
// Graph for plain connections and WeightedGraph for float64-weighted ones.
//
// Model
//
//   - Vertices are values of any comparable type V, kept in insertion order.
//     The index returned by AddVertex is the vertex's permanent identity.
//   - Every vertex owns an adjacency list of directional edge entries.
//     Inserting one undirected connection appends two entries: the edge at
//     its origin and its mirror (Reversed) at its destination. A self-loop
//     appends both entries to the same list.
//   - Storage is append-only. There is no vertex or edge removal, so indices
//     never shift and returned indices stay valid for the graph's lifetime.
//
// Consequences worth knowing
//
//   - EdgeCount sums adjacency-list lengths, so every undirected connection
//     counts twice. Halve it for the number of distinct connections.
//   - IndexOf is a linear O(V) scan; duplicate values resolve to the lowest
//     index. There is no reverse lookup table.
//   - Parallel edges are allowed and stored separately.
//   - Neither graph type is safe for concurrent use without external
//     synchronization.
//
// Errors
//
//   - ErrIndexOutOfRange for index arguments outside [0, VertexCount).
//   - ErrVertexNotFound for value lookups that match no vertex.
//
// Validation happens before mutation: an operation that returns an error
// leaves the graph exactly as it was.
//
// Search algorithms are deliberately kept out of this package. They consume
// the neighbor-query surface (NeighborsForIndex, EdgesForIndex, ...) from
// the outside; the bfs, dfs, dijkstra, and mst packages are such consumers.
package core
