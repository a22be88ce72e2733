package mst

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// grower encapsulates mutable run state: the weight-ordered frontier, the
// set of vertices already in the tree, and the result under construction.
// best[v] is the cheapest arc weight seen so far for a candidate v.
type grower struct {
	arcs     Arcs
	frontier *yagh.IntMap[float64]
	inTree   *sparsesets.Set
	best     []float64
	res      *Result
}

// Prim grows a minimum spanning tree from root over a structure of n
// vertices, inspecting connections through arcs.
//
// Returns ErrVertexOutOfRange for a root or arc target outside [0, n) and
// ErrDisconnected when some vertex cannot be reached from root. On any
// error the partial state is discarded and the result is nil.
func Prim(n, root int, arcs Arcs) (*Result, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root %d, have %d vertices", ErrVertexOutOfRange, root, n)
	}
	if arcs == nil {
		return nil, ErrNilArcs
	}

	g := &grower{
		arcs:     arcs,
		frontier: yagh.New[float64](n),
		inTree:   sparsesets.New(n),
		best:     make([]float64, n),
		res: &Result{
			Edges:  make([]Edge, 0, n-1),
			Parent: make([]int, n),
		},
	}
	for i := range g.best {
		g.best[i] = math.Inf(1)
		g.res.Parent[i] = -1
	}

	// Seed the frontier with the root at weight zero, then drain it
	g.best[root] = 0
	g.frontier.Put(root, 0)
	if err := g.run(root); err != nil {
		return nil, err
	}
	if len(g.res.Edges) < n-1 {
		return nil, fmt.Errorf("%w: spanned %d of %d vertices", ErrDisconnected, len(g.res.Edges)+1, n)
	}

	return g.res, nil
}

// run pulls the cheapest candidate into the tree until no candidates
// remain. A popped vertex carries the weight of its connecting arc.
func (g *grower) run(root int) error {
	for g.frontier.Size() > 0 {
		entry := g.frontier.Pop()
		g.inTree.Insert(entry.Elem)
		if entry.Elem != root {
			g.res.Edges = append(g.res.Edges, Edge{
				From:   g.res.Parent[entry.Elem],
				To:     entry.Elem,
				Weight: entry.Cost,
			})
			g.res.Total += entry.Cost
		}
		if err := g.offer(entry.Elem); err != nil {
			return err
		}
	}

	return nil
}

// offer proposes every connection of u to the frontier, keeping only the
// cheapest arc per candidate vertex.
func (g *grower) offer(u int) error {
	for _, a := range g.arcs(u) {
		if a.To < 0 || a.To >= len(g.best) {
			return fmt.Errorf("%w: arc %d -> %d, have %d vertices", ErrVertexOutOfRange, u, a.To, len(g.best))
		}
		if g.inTree.Contains(a.To) {
			continue
		}
		if a.Weight < g.best[a.To] {
			g.best[a.To] = a.Weight
			g.res.Parent[a.To] = u
			g.frontier.Put(a.To, a.Weight)
		}
	}

	return nil
}
