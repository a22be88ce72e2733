// Package networkinggraph is a toolkit for road-map style networks: a
// generic undirected graph core plus algorithm packages that run against
// it from the outside.
//
// The packages share one design rule: algorithms never see the container.
// The core answers neighbor queries, and every algorithm consumes those
// queries through a small function contract, so the same search runs
// unchanged over a city graph or a procedurally generated lattice.
//
//	core      undirected adjacency-list graphs over any comparable
//	          vertex type, plain and weighted
//	bfs       breadth-first search, fewest-hop orders and routes
//	dfs       depth-first search over the same successor contract
//	dijkstra  single-source shortest paths over non-negative weights
//	mst       minimum spanning trees grown with Prim's algorithm
//
// Wiring a search to a graph is a closure:
//
//	g := core.NewGraph("A", "B", "C")
//	_ = g.AddEdgeByVertices("A", "B")
//
//	next := func(v string) []string {
//		nbrs, err := g.NeighborsForVertex(v)
//		if err != nil {
//			return nil
//		}
//		return nbrs
//	}
//	res, err := bfs.BFS("A", nil, next)
//
// The weighted algorithms work in the index domain instead, consuming
// (target, weight) pairs from an arcs closure over
// core.WeightedGraph.EdgesForIndex.
//
// Every package reports failures as wrapped sentinel errors and keeps
// results deterministic: identical inputs always produce identical output.
package networkinggraph
