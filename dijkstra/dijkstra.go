package dijkstra

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// solver encapsulates mutable run state: the cost-ordered frontier, the
// settled set, and the result arrays under construction.
type solver struct {
	arcs     Arcs
	frontier *yagh.IntMap[float64]
	settled  *sparsesets.Set
	res      *Result
}

// ShortestPaths runs Dijkstra's algorithm from source over a structure of n
// vertices, expanding outgoing connections through arcs.
//
// Weights must be non-negative; the run aborts with ErrNegativeWeight as
// soon as a negative arc is seen, and with ErrVertexOutOfRange for an arc
// target outside [0, n). On any error the partial state is discarded and
// the result is nil.
func ShortestPaths(n, source int, arcs Arcs) (*Result, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d, have %d vertices", ErrVertexOutOfRange, source, n)
	}
	if arcs == nil {
		return nil, ErrNilArcs
	}

	s := &solver{
		arcs:     arcs,
		frontier: yagh.New[float64](n),
		settled:  sparsesets.New(n),
		res:      newResult(n),
	}

	// Seed the frontier with the source at cost zero, then drain it
	s.res.Dist[source] = 0
	s.frontier.Put(source, 0)
	if err := s.run(); err != nil {
		return nil, err
	}

	return s.res, nil
}

// newResult allocates distance and predecessor arrays in their
// "unreached" state.
func newResult(n int) *Result {
	r := &Result{
		Dist:   make([]float64, n),
		Parent: make([]int, n),
	}
	for i := range r.Dist {
		r.Dist[i] = math.Inf(1)
		r.Parent[i] = -1
	}

	return r
}

// run settles vertices in cost order until the frontier drains. A popped
// vertex carries its final distance.
func (s *solver) run() error {
	for s.frontier.Size() > 0 {
		entry := s.frontier.Pop()
		s.settled.Insert(entry.Elem)
		if err := s.relax(entry.Elem, entry.Cost); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every outgoing arc of u to the frontier, recording each
// strict improvement in Dist and Parent.
func (s *solver) relax(u int, base float64) error {
	for _, a := range s.arcs(u) {
		if a.To < 0 || a.To >= len(s.res.Dist) {
			return fmt.Errorf("%w: arc %d -> %d, have %d vertices", ErrVertexOutOfRange, u, a.To, len(s.res.Dist))
		}
		if a.Weight < 0 {
			return fmt.Errorf("%w: arc %d -> %d weighs %g", ErrNegativeWeight, u, a.To, a.Weight)
		}
		if s.settled.Contains(a.To) {
			continue
		}
		if next := base + a.Weight; next < s.res.Dist[a.To] {
			s.res.Dist[a.To] = next
			s.res.Parent[a.To] = u
			s.frontier.Put(a.To, next)
		}
	}

	return nil
}
