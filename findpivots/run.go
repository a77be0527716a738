package findpivots

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/bmssp/bmssplog"
	"github.com/katalvlaran/bmssp/distance"
	"github.com/katalvlaran/bmssp/graph"
)

// noParent marks a vertex with no local forest parent recorded during this
// call, distinct from distance.NoPredecessor on the shared arena: FindPivots
// deliberately keeps its own parent bookkeeping (see Run) and never touches
// arena.Pred.
const noParent = -1

// Run grows a k-step Bellman-Ford forest from the frontier s, relaxing
// edges directly into arena.Dist (permanently — FindPivots is
// monotone-improving) while tracking parentage in a local structure that
// never touches arena.Pred.
//
// It returns pivots, the subset of s whose forest subtree reached size >=
// g.K(), and nearby, every vertex discovered within bound along the way
// (including s itself). If the frontier grows past k*|s| before k rounds
// complete, Run exits early and returns (s, nearby) unchanged: at that
// point pruning would not save recursive work.
func Run(g *graph.Graph, arena *distance.Arena, bound float64, s mapset.Set[int], logger bmssplog.Logger) (pivots, nearby mapset.Set[int]) {
	if logger == nil {
		logger = bmssplog.Noop()
	}
	k := g.K()

	w := s.Clone()
	parent := make(map[int]int, s.Cardinality())
	s.Each(func(v int) bool {
		parent[v] = noParent
		return false
	})

	frontier := s.ToSlice()
	for step := 1; step <= k; step++ {
		var next []int
		for _, u := range frontier {
			for e := range g.Neighbors(u) {
				newDist := arena.Dist[u] + e.Weight
				if newDist <= arena.Dist[e.Dest] {
					arena.Dist[e.Dest] = newDist
					parent[e.Dest] = u
					if newDist < bound {
						next = append(next, e.Dest)
					}
				}
			}
		}
		for _, v := range next {
			w.Add(v)
		}
		frontier = next

		if w.Cardinality() > k*s.Cardinality() {
			logger.Debug("findpivots early exit", "step", step, "w_size", w.Cardinality())
			return s, w
		}
	}

	treeSize := make(map[int]int)
	w.Each(func(v int) bool {
		root := v
		for parent[root] != noParent {
			root = parent[root]
		}
		treeSize[root]++
		return false
	})

	p := mapset.NewSet[int]()
	for root, size := range treeSize {
		if size >= k {
			p.Add(root)
		}
	}

	return p, w
}
