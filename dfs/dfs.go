package dfs

// stackItem pairs a vertex with its discovery depth from the start.
type stackItem[V comparable] struct {
	vertex V
	depth  int
}

// walker encapsulates mutable DFS state.
type walker[V comparable] struct {
	next    Successors[V]
	opts    Options
	stack   []stackItem[V]
	visited map[V]bool
	res     *Result[V]
}

// DFS runs depth-first search from start, expanding neighbors through next
// and applying any number of functional Options.
//
// A non-nil goal stops the walk at the first popped vertex for which goal
// returns true; the match is recorded in Result.Goal and Result.Found. A
// nil goal walks the entire component reachable from start.
//
// Returns ErrNilSuccessors when next is nil, or ErrOptionViolation for
// invalid options. An unsatisfied goal is not an error: inspect
// Result.Found.
func DFS[V comparable](start V, goal func(V) bool, next Successors[V], opts ...Option) (*Result[V], error) {
	if next == nil {
		return nil, ErrNilSuccessors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V]{
		next:    next,
		opts:    o,
		visited: make(map[V]bool),
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}

	// Seed the stack with the start vertex, then drain it
	w.push(start, 0)
	w.run(goal)

	return w.res, nil
}

// run processes the stack until it drains or the goal is satisfied.
func (w *walker[V]) run(goal func(V) bool) {
	for len(w.stack) > 0 {
		item := w.pop()
		w.res.Order = append(w.res.Order, item.vertex)
		if goal != nil && goal(item.vertex) {
			w.res.Goal = item.vertex
			w.res.Found = true
			return
		}
		w.expand(item)
	}
}

// push marks v visited at depth d and puts it on top of the stack.
func (w *walker[V]) push(v V, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.stack = append(w.stack, stackItem[V]{vertex: v, depth: d})
}

// pop takes the stack's top item.
func (w *walker[V]) pop() stackItem[V] {
	item := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	return item
}

// expand pushes every unseen successor of item, honoring MaxDepth.
// Duplicate successors are ignored via the visited set.
func (w *walker[V]) expand(item stackItem[V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.vertex) {
		if w.visited[nbr] {
			continue
		}
		w.push(nbr, nextDepth)
		w.res.Parent[nbr] = item.vertex
	}
}
