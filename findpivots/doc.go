// Package findpivots selects a small "pivot" subset of a frontier set that
// is safe to recurse on, by growing a bounded Bellman-Ford forest outward
// from the frontier and keeping only the roots whose tree grew large
// enough to be worth the recursive cost.
package findpivots
