// Package refdijkstra is an unoptimized, unbounded Dijkstra used only by
// this module's own tests, to cross-check BMSSP's output against a
// straightforward baseline.
package refdijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/bmssp/graph"
)

// Run computes shortest distances from src to every reachable vertex in g.
// Unreachable vertices hold +Inf.
func Run(g *graph.Graph, src int) []float64 {
	dist := make([]float64, g.N())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	pq := make(nodePQ, 0, g.N())
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*nodeItem)
		if top.dist > dist[top.id] {
			continue
		}
		for e := range g.Neighbors(top.id) {
			nd := top.dist + e.Weight
			if nd < dist[e.Dest] {
				dist[e.Dest] = nd
				heap.Push(&pq, &nodeItem{id: e.Dest, dist: nd})
			}
		}
	}

	return dist
}

type nodeItem struct {
	id   int
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
