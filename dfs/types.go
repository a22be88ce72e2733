package dfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrNilSuccessors is returned when no successor function is supplied.
	ErrNilSuccessors = errors.New("dfs: successors function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the walk never reached.
	ErrNoPath = errors.New("dfs: no path to vertex")
)

// Successors returns the neighbors of v, in stable order. Returning a nil
// or empty slice means v has no neighbors. This is the only capability the
// walk requires from the underlying structure.
type Successors[V comparable] func(v V) []V

// Option configures DFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when DFS is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a walk.
type Options struct {
	// MaxDepth, if > 0, stops diving beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a clear error slot.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		err:      nil,
	}
}

// WithMaxDepth stops the walk at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option, surfaced as ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a depth-first walk:
//   - Order: vertices in visit sequence, starting with the start vertex.
//   - Depth: discovery depth from the start, for every reached vertex.
//   - Parent: predecessor in the walk tree, for every reached vertex
//     except the start.
//   - Goal, Found: the first popped vertex satisfying the goal test, if
//     one was supplied and matched; Goal is meaningless when Found is false.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
	Goal   V
	Found  bool
}

// PathTo reconstructs the discovery path from the start vertex to dest by
// walking parent links. The path follows the branch that first reached
// dest; it is not necessarily the shortest. Returns ErrNoPath if dest was
// not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}

	// build reversed path
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
