package bmssp

import "github.com/katalvlaran/bmssp/distance"

// Result exposes the outcome of a completed ShortestPaths run: the
// finalized distance and predecessor arena, read-only from the caller's
// perspective.
type Result struct {
	arena *distance.Arena
}

// Distance returns the shortest known distance from the source(s) to v.
// It is +Inf if v is unreachable.
func (r *Result) Distance(v int) float64 { return r.arena.Dist[v] }

// Path reconstructs the shortest path to v as a sequence of vertices
// starting at a source and ending at v. ok is false if v is unreachable.
func (r *Result) Path(v int) (path []int, ok bool) { return r.arena.Path(v) }
