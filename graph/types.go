package graph

import "iter"

// Edge is a single outgoing connection from some implicit source vertex to
// Dest, carrying a non-negative Weight.
type Edge struct {
	Dest   int
	Weight float64
}

// Graph is an immutable directed adjacency store over vertices numbered
// 0..N()-1. It is safe for concurrent read access from multiple
// goroutines (nothing about it ever mutates after Freeze), though a single
// BMSSP run itself is strictly single-threaded.
//
// Self-loops and parallel edges are permitted; every BMSSP consumer treats
// them correctly by construction (a self-loop of non-negative weight never
// improves a distance, and parallel edges are just extra relaxation
// candidates).
type Graph struct {
	adj [][]Edge
	k   int
	t   int
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.adj) }

// K returns the graph's derived pivot-forest-size threshold, k = floor((ln n)^(1/3)), clamped to >= 1.
func (g *Graph) K() int { return g.k }

// T returns the graph's derived level-sizing exponent, t = floor((ln n)^(2/3)), clamped to >= 1.
func (g *Graph) T() int { return g.t }

// Neighbors returns a lazy, restartable sequence of the out-edges of u.
// It performs no allocation: iteration ranges directly over the frozen
// backing slice for u.
//
// Behavior is undefined if u is outside [0, N()); callers must validate u
// themselves.
func (g *Graph) Neighbors(u int) iter.Seq[Edge] {
	edges := g.adj[u]

	return func(yield func(Edge) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}
