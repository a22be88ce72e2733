package bfs

// queueItem pairs a vertex with its depth from the start.
type queueItem[V comparable] struct {
	vertex V
	depth  int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	next    Successors[V]
	opts    Options
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search from start, expanding neighbors through
// next and applying any number of functional Options.
//
// A non-nil goal stops the search at the first dequeued vertex for which
// goal returns true; the match is recorded in Result.Goal and Result.Found.
// A nil goal traverses the entire component reachable from start.
//
// Returns ErrNilSuccessors when next is nil, or ErrOptionViolation for
// invalid options. An unsatisfied goal is not an error: inspect
// Result.Found.
func BFS[V comparable](start V, goal func(V) bool, next Successors[V], opts ...Option) (*Result[V], error) {
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

	// Seed queue with the start vertex, then drain it
	w.enqueue(start, 0)
	w.run(goal)

	return w.res, nil
}

// run processes the queue until it drains or the goal is satisfied.
func (w *walker[V]) run(goal func(V) bool) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.vertex)
		if goal != nil && goal(item.vertex) {
			w.res.Goal = item.vertex
			w.res.Found = true
			return
		}
		w.expand(item)
	}
}

// enqueue marks v visited at depth d and appends it to the frontier.
func (w *walker[V]) enqueue(v V, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem[V]{vertex: v, depth: d})
}

// dequeue pops the frontier's first item.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// expand enqueues every unseen successor of item, honoring MaxDepth.
// Duplicate successors are ignored via the visited set.
func (w *walker[V]) expand(item queueItem[V]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.next(item.vertex) {
		if w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, nextDepth)
		w.res.Parent[nbr] = item.vertex
	}
}
