// Package mst grows minimum spanning trees with Prim's algorithm.
//
// The algorithm consumes the graph through an Arcs function: given a vertex
// index u it returns the connections of u as (target, weight) pairs. An
// undirected graph reports each connection from both endpoints, which is
// exactly what tree growth needs. Vertices are dense indices in [0, n).
//
// Unlike shortest-path relaxation, tree growth keys the frontier on the
// weight of the single connecting arc, not on accumulated distance, and it
// tolerates negative weights.
//
// # Result
//
// Prim returns the tree as an edge list in growth order plus a predecessor
// array rooted at the chosen vertex. A structure that cannot be spanned
// from the root yields ErrDisconnected rather than a partial tree.
//
// # Determinism
//
// Arc inspection follows the order the Arcs function reports. When several
// arcs of equal weight compete for the frontier minimum, the tree total is
// still the minimum; only the reported edge choice may differ between
// equally cheap trees.
//
// # Complexity
//
// O((V + E) log V) time with the indexed heap, O(V) extra space.
//
// # Errors
//
//   - ErrNilArcs: no arcs function supplied.
//   - ErrBadVertexCount: negative vertex count.
//   - ErrVertexOutOfRange: root or arc target outside [0, n).
//   - ErrDisconnected: not every vertex is reachable from the root.
package mst
