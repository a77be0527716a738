package basecase

// nodeItem represents a vertex and its distance from src at the moment it
// was pushed. It is stored in the priority queue to order vertices by
// increasing distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Like a
// classic Dijkstra run, it uses a lazy-decrease-key strategy: relaxing an
// edge pushes a fresh entry rather than mutating one already in the heap,
// and stale entries are skipped on pop by comparing against the arena's
// current best distance.
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
