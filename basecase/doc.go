// Package basecase implements BMSSP's recursion floor: a Dijkstra run from
// a single source that stops early, once k+1 vertices have settled, rather
// than exhausting the whole reachable graph.
//
// Complexity: O((k + touched-edges) log k) per call, dominated by heap
// operations over at most k+1 settlements.
package basecase
