package basecase

import (
	"container/heap"
	"sort"

	"github.com/katalvlaran/bmssp/bmssplog"
	"github.com/katalvlaran/bmssp/distance"
	"github.com/katalvlaran/bmssp/graph"
)

// Run executes a bounded Dijkstra from src over g, writing improved
// distances and predecessors directly into arena. It stops as soon as k+1
// distinct vertices have settled (or the frontier empties first), where
// k = g.K(). A visited guard keeps settled free of duplicates even when
// parallel equal-weight edges or an equal-cost reconvergence push more
// than one non-stale entry for the same vertex through the heap.
//
// It returns a possibly-tightened bound B and the set of settled vertices
// U reachable under it:
//
//   - If at most k vertices settled, B is returned unchanged and U holds
//     every settled vertex.
//   - If more than k vertices settled, B becomes the k-th smallest
//     settled distance and U is trimmed to vertices at or under that
//     distance — discarding the single settlement, if any, that pushed
//     the frontier past k.
//
// Run trusts arena.Dist[src] as already correct on entry — the top-level
// driver seeds true sources to 0 before the first call, and at deeper
// recursion levels src's distance was already tightened by an enclosing
// frame's relaxation against the same shared arena.
func Run(g *graph.Graph, arena *distance.Arena, src int, bound float64, logger bmssplog.Logger) (float64, []int) {
	if logger == nil {
		logger = bmssplog.Noop()
	}
	k := g.K()

	pq := make(nodePQ, 0, k+1)
	heap.Push(&pq, &nodeItem{id: src, dist: arena.Dist[src]})

	settled := make([]int, 0, k+1)
	visited := make(map[int]bool, k+1)

	for pq.Len() > 0 && len(settled) < k+1 {
		top := heap.Pop(&pq).(*nodeItem)
		if top.dist > arena.Dist[top.id] {
			continue // stale lazy-decrease-key entry
		}
		if visited[top.id] {
			continue // already settled via an earlier, equal-or-better pop
		}
		visited[top.id] = true

		settled = append(settled, top.id)
		logger.Debug("basecase settle", "vertex", top.id, "dist", top.dist)

		for e := range g.Neighbors(top.id) {
			newDist := top.dist + e.Weight
			if newDist <= arena.Dist[e.Dest] && newDist < bound {
				arena.Dist[e.Dest] = newDist
				arena.Pred[e.Dest] = top.id
				heap.Push(&pq, &nodeItem{id: e.Dest, dist: newDist})
			}
		}
	}

	if len(settled) <= k {
		return bound, settled
	}

	distances := make([]float64, len(settled))
	for i, v := range settled {
		distances[i] = arena.Dist[v]
	}
	sort.Float64s(distances)
	newBound := distances[k-1]

	u := make([]int, 0, k)
	for _, v := range settled {
		if arena.Dist[v] <= newBound {
			u = append(u, v)
		}
	}

	return newBound, u
}
