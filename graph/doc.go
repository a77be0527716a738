// Package graph defines the read-only adjacency store consumed by every
// BMSSP subsystem, plus the derived parameters k and t that size the
// batch heap and the recursion's target vertex counts.
//
// A Graph is immutable once frozen: vertices are numbered 0..n-1, edges
// carry non-negative weights, and self-loops and parallel edges are
// permitted (relaxation naturally never improves on a shorter path, so
// no consumer needs to special-case them).
//
// Construction goes through Builder, which accumulates edges and
// validates them before producing a frozen Graph via Freeze. This
// separation keeps the Graph type itself free of mutation paths, so
// every BMSSP subsystem can hold a *Graph without locking.
package graph
