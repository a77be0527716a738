package bmssp

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/bmssp/basecase"
	"github.com/katalvlaran/bmssp/batchheap"
	"github.com/katalvlaran/bmssp/bmssplog"
	"github.com/katalvlaran/bmssp/distance"
	"github.com/katalvlaran/bmssp/findpivots"
	"github.com/katalvlaran/bmssp/graph"
)

// run is the recursive BMSSP driver. level is the recursion depth
// remaining (ℓ), bound is the current upper bound B, and s is the frontier
// for this call. It returns a possibly-tightened bound and the sequence of
// vertices it finalized, in first-discovered order.
//
// Every recursive frame shares arena: distances and predecessors are
// mutated in place across the whole call tree, never cloned.
func run(g *graph.Graph, arena *distance.Arena, level int, bound float64, s []int, logger bmssplog.Logger) (float64, []int) {
	if level == 0 {
		return runBaseCaseLevel(g, arena, bound, s, logger)
	}

	sSet := mapset.NewSet[int](s...)
	pivots, w := findpivots.Run(g, arena, bound, sSet, logger)

	m := pow2((level - 1) * g.T())
	d, err := batchheap.New(m, bound)
	if err != nil {
		// m is derived from level and g.T(), both always >= well-formed
		// positive inputs (see pow2); a construction failure here would
		// mean the driver itself is miswired, not a caller error.
		panic(err)
	}

	pivots.Each(func(x int) bool {
		d.Insert(x, arena.Dist[x])
		return false
	})

	b0 := bound
	if pivots.Cardinality() > 0 {
		b0 = minDistanceOf(arena, pivots)
	}

	target := g.K() * pow2(level*g.T())
	if target > g.N() {
		target = g.N()
	}

	u := newOrderedSet()
	for u.len() < target {
		pull := d.Pull()
		if len(pull.Keys) == 0 {
			break
		}
		bi := pull.NewBound

		bPrimeI, ui := run(g, arena, level-1, bi, pull.Keys, logger)
		u.addAll(ui)

		var k []batchheap.Item
		for _, uu := range ui {
			for e := range g.Neighbors(uu) {
				nd := arena.Dist[uu] + e.Weight
				if nd < arena.Dist[e.Dest] {
					arena.Dist[e.Dest] = nd
					arena.Pred[e.Dest] = uu
					switch {
					case nd >= bi && nd < bound:
						d.Insert(e.Dest, nd)
					case nd >= bPrimeI && nd < bi:
						k = append(k, batchheap.Item{Key: e.Dest, Value: nd})
					}
				}
			}
		}
		for _, x := range pull.Keys {
			if arena.Dist[x] >= bPrimeI && arena.Dist[x] < bi {
				k = append(k, batchheap.Item{Key: x, Value: arena.Dist[x]})
			}
		}
		if len(k) > 0 {
			d.BatchPrepend(k)
		}
	}

	finalBound := bound
	if maxU, ok := maxDistanceOf(arena, u.items); ok && maxU < finalBound {
		finalBound = maxU
	}
	if pivots.Cardinality() > 0 && b0 < finalBound {
		finalBound = b0
	}

	w.Each(func(x int) bool {
		if arena.Dist[x] <= finalBound {
			u.add(x)
		}
		return false
	})

	return finalBound, u.items
}

// runBaseCaseLevel implements the level == 0 fold: run BaseCase
// independently for every source in s, union the results in
// first-discovered order, and keep the smallest returned bound.
func runBaseCaseLevel(g *graph.Graph, arena *distance.Arena, bound float64, s []int, logger bmssplog.Logger) (float64, []int) {
	bPrime := bound
	u := newOrderedSet()

	for _, src := range s {
		bi, ui := basecase.Run(g, arena, src, bound, logger)
		if bi < bPrime {
			bPrime = bi
		}
		u.addAll(ui)
	}

	return bPrime, u.items
}

// minDistanceOf returns the smallest arena.Dist value among xs. Callers
// must ensure xs is non-empty.
func minDistanceOf(arena *distance.Arena, xs mapset.Set[int]) float64 {
	best := 0.0
	first := true
	xs.Each(func(x int) bool {
		if first || arena.Dist[x] < best {
			best = arena.Dist[x]
			first = false
		}
		return false
	})

	return best
}

// maxDistanceOf returns the largest arena.Dist value among xs, and whether
// xs was non-empty.
func maxDistanceOf(arena *distance.Arena, xs []int) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	best := arena.Dist[xs[0]]
	for _, x := range xs[1:] {
		if arena.Dist[x] > best {
			best = arena.Dist[x]
		}
	}

	return best, true
}

// pow2 computes 2^exp for exp >= 0, clamping at 1<<62 to stay within a
// signed 64-bit int rather than overflowing for pathologically large
// recursion parameters.
func pow2(exp int) int {
	if exp <= 0 {
		return 1
	}
	if exp >= 62 {
		return 1 << 62
	}

	return 1 << uint(exp)
}

// orderedSet accumulates vertex ids in first-insertion order while
// silently dropping duplicates, preserving U's first-discovered-first
// ordering guarantee.
type orderedSet struct {
	items []int
	seen  map[int]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[int]bool)}
}

func (o *orderedSet) add(v int) {
	if o.seen[v] {
		return
	}
	o.seen[v] = true
	o.items = append(o.items, v)
}

func (o *orderedSet) addAll(vs []int) {
	for _, v := range vs {
		o.add(v)
	}
}

func (o *orderedSet) len() int { return len(o.items) }
