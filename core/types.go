package core

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by Graph and WeightedGraph operations.
var (
	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrVertexNotFound indicates a value lookup that matched no vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is one directional entry of an undirected connection, identified by
// the indices of its endpoints. Every stored edge has a mirror entry (see
// Reversed) in the destination's adjacency list.
type Edge struct {
	U int // index of the origin vertex
	V int // index of the destination vertex
}

// Endpoints returns the origin and destination indices of e.
func (e Edge) Endpoints() (int, int) { return e.U, e.V }

// Reversed returns the mirror entry of e, pointing from V back to U.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

// String renders e as "U -> V".
func (e Edge) String() string { return fmt.Sprintf("%d -> %d", e.U, e.V) }

// WeightedEdge is an edge entry carrying a float64 weight. Mirror entries
// agree on weight, so a connection costs the same in both directions.
type WeightedEdge struct {
	U      int // index of the origin vertex
	V      int // index of the destination vertex
	Weight float64
}

// Endpoints returns the origin and destination indices of e.
func (e WeightedEdge) Endpoints() (int, int) { return e.U, e.V }

// Reversed returns the mirror entry of e with the same weight.
func (e WeightedEdge) Reversed() WeightedEdge {
	return WeightedEdge{U: e.V, V: e.U, Weight: e.Weight}
}

// Less orders edges by weight alone, lowest first, so priority-queue and
// spanning-tree consumers can rank connections without touching endpoints.
func (e WeightedEdge) Less(other WeightedEdge) bool { return e.Weight < other.Weight }

// String renders e as "U W> V", e.g. "0 5> 1".
func (e WeightedEdge) String() string { return fmt.Sprintf("%d %g> %d", e.U, e.Weight, e.V) }
