// Package distance holds the shared mutable distance/predecessor arena
// threaded, by reference, through every recursive BMSSP call.
//
// A single Arena is allocated once per full run. Every subsystem — BaseCase, FindPivots, and the BMSSP driver itself —
// mutates the same Arena in place; nothing is cloned across recursive
// frames. This package owns only the arena and the invariants on it
// (monotone non-increasing distances, triangle-consistent predecessors);
// it has no notion of levels, bounds, or pivots.
package distance
