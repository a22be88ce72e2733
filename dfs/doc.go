// Package dfs implements depth-first search over any structure that can
// answer a successors query.
//
// The traversal consumes the graph through a Successors function; it is the
// same contract the breadth-first sibling uses, so the two searches are
// interchangeable at the call site:
//
//	next := func(v string) []string {
//		nbrs, err := g.NeighborsForVertex(v)
//		if err != nil {
//			return nil
//		}
//		return nbrs
//	}
//	res, err := dfs.DFS("A", nil, next)
//
// The frontier is a stack: the search dives along the most recently
// discovered branch before backtracking. A vertex is marked the moment it
// is pushed, so each one appears in Result.Order at most once.
//
// # Goal search
//
// A non-nil goal test stops the walk at the first popped vertex that
// satisfies it. Result.PathTo then reconstructs the discovery path. Unlike
// the breadth-first variant, that path is whatever branch reached the
// vertex first, not the fewest-hop route.
//
// # Determinism
//
// Successor slices are pushed in the order reported, and the stack pops
// them back to front. Runs over the same structure produce identical
// Results.
//
// # Complexity
//
// O(V + E) time, O(V) space for the stack and the bookkeeping maps.
//
// # Errors
//
//   - ErrNilSuccessors: no successors function supplied.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNoPath: PathTo called for a vertex the walk never reached.
package dfs
