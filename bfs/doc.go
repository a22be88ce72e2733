// Package bfs provides breadth-first search over a successor function,
// returning visit order, unweighted distances, parent links, and
// optionally the first vertex satisfying a goal test.
//
// The search is decoupled from any particular graph representation: it
// asks a Successors function for the neighbors of each vertex and
// compares vertices by value. Any structure that can answer "who are the
// neighbors of v?" is searchable by closing over it:
//
//	g := core.NewGraph("A", "B", "C")
//	// ... add edges ...
//	next := func(v string) []string {
//		nbrs, err := g.NeighborsForVertex(v)
//		if err != nil {
//			return nil
//		}
//		return nbrs
//	}
//	res, err := bfs.BFS("A", nil, next)
//
// Determinism
//
//	Vertices are visited in non-decreasing distance from the start, and
//	neighbors are expanded in the order the Successors function returns
//	them, so the visit sequence is fully reproducible for a deterministic
//	successor order.
//
// Goal search
//
//	A non-nil goal test stops the scan at the first dequeued vertex that
//	satisfies it (Result.Found / Result.Goal); combine with PathTo for the
//	fewest-hop route. A nil goal traverses the whole reachable component.
//
// Complexity (V = reached vertices, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier, visited set, and result maps
//
// Errors
//
//   - ErrNilSuccessors    if no successor function is supplied.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxDepth).
//   - ErrNoPath           from PathTo, for a vertex the search never reached.
package bfs
