package graph

import "fmt"

// Builder accumulates edges for a graph of a fixed vertex count before
// freezing them into an immutable *Graph. It is the mutable counterpart to
// Graph: callers assemble edges incrementally and Freeze hands the result
// to BMSSP, which never sees a mutable graph.
type Builder struct {
	n     int
	edges [][]Edge
	err   error
}

// NewBuilder starts a Builder for a graph with n vertices, numbered
// 0..n-1. n must be non-negative; a negative n is recorded and surfaced
// by Freeze rather than panicking, so call chains can be built fluently.
func NewBuilder(n int) *Builder {
	b := &Builder{n: n}
	if n < 0 {
		b.err = ErrNegativeVertices
		return b
	}
	b.edges = make([][]Edge, n)

	return b
}

// AddEdge appends a directed edge u->v with the given non-negative weight.
// AddEdge returns the receiver so calls can be chained; the first
// validation failure is latched and reported by Freeze, matching the
// teacher's fluent-builder error-latching convention (see
// builder.Option chains in the wider corpus).
func (b *Builder) AddEdge(u, v int, weight float64) *Builder {
	if b.err != nil {
		return b
	}
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		b.err = fmt.Errorf("%w: edge %d->%d, n=%d", ErrVertexOutOfRange, u, v, b.n)
		return b
	}
	if weight < 0 {
		b.err = fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, u, v, weight)
		return b
	}

	b.edges[u] = append(b.edges[u], Edge{Dest: v, Weight: weight})

	return b
}

// Freeze finalizes the accumulated edges into an immutable *Graph and
// derives k and t from the vertex count. It returns the first error
// latched by NewBuilder or AddEdge, if any.
func (b *Builder) Freeze() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}

	k, t := computeParams(b.n)

	return &Graph{adj: b.edges, k: k, t: t}, nil
}
