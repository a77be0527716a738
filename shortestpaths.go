package bmssp

import (
	"math"

	"github.com/katalvlaran/bmssp/distance"
	"github.com/katalvlaran/bmssp/graph"
)

// ShortestPaths computes shortest-path distances (and predecessors) from a
// single source vertex src across g, using the BMSSP algorithm end to end.
//
// It derives the top-level recursion depth ℓ = ⌈log n / t⌉, seeds
// arena.Dist[src] = 0, and runs the recursive driver with B = +∞ and
// S = {src}.
func ShortestPaths(g *graph.Graph, src int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if src < 0 || src >= g.N() {
		return nil, ErrInvalidSource
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	arena := distance.New(g.N())
	arena.Seed(src)

	level := topLevel(g)
	run(g, arena, level, math.Inf(1), []int{src}, cfg.Logger)

	return &Result{arena: arena}, nil
}

// Run exposes the recursive BMSSP driver directly, for callers who need to
// drive the recursion themselves — resuming a partially completed run, or
// starting from a non-trivial pre-seeded arena — rather than through
// ShortestPaths' single-source convenience setup.
//
// The caller owns arena's lifetime and must have already seeded whatever
// initial distances the run should build on.
func Run(g *graph.Graph, arena *distance.Arena, level int, bound float64, s []int, opts ...Option) (float64, []int) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return run(g, arena, level, bound, s, cfg.Logger)
}

// topLevel computes ℓ = ⌈log n / t⌉, clamped to at least 1 so even a
// single-vertex graph makes one recursive call.
func topLevel(g *graph.Graph) int {
	n := g.N()
	if n <= 1 {
		return 1
	}

	l := int(math.Ceil(math.Log(float64(n)) / float64(g.T())))
	if l < 1 {
		l = 1
	}

	return l
}
