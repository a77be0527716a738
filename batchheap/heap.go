package batchheap

import "sort"

// Heap is a block-structured priority queue keyed by int, holding pairs
// with value <= B̂ (the heap's upper bound). Each key appears at most once:
// the latest insert with a lower value wins (see Insert).
//
// A Heap is allocated fresh per BMSSP recursive frame and discarded on
// return; it holds no references into graph data beyond vertex ids.
type Heap struct {
	m    int
	bHat float64
	d0   []*block // unsorted prefix side, populated by BatchPrepend
	d1   []*block // sorted side, ordered ascending by upperBound
	idx  map[int]location
}

// New builds a Heap with block-size threshold m and global upper bound
// bHat. It seeds D1 with a single empty block whose upper bound is bHat.
func New(m int, bHat float64) (*Heap, error) {
	if m <= 0 {
		return nil, ErrNonPositiveBatchSize
	}

	h := &Heap{
		m:    m,
		bHat: bHat,
		idx:  make(map[int]location),
	}
	h.d1 = append(h.d1, &block{upperBound: bHat})

	return h, nil
}

// Insert records (key, value) if it improves on any existing record for
// key and value is within range. Ties keep the existing record (old <=
// new is a no-op).
func (h *Heap) Insert(key int, value float64) {
	if loc, ok := h.idx[key]; ok {
		if loc.blk.items[loc.slot].Value <= value {
			return
		}
		h.del(key)
	}

	// Locate the D1 block whose upper bound is the smallest that is >=
	// value (a lower_bound search over the ascending-sorted D1 blocks).
	i := sort.Search(len(h.d1), func(i int) bool { return h.d1[i].upperBound >= value })
	if i == len(h.d1) {
		if value > h.bHat {
			// value is outside the heap's range: the heap is bounded by
			// bHat and this insert falls outside it.
			return
		}
		// Deletions have removed the D1 block(s) that covered value;
		// open a new top block bounded by bHat to hold it.
		h.d1 = append(h.d1, &block{upperBound: h.bHat})
	}

	blk := h.d1[i]
	blk.items = append(blk.items, Item{Key: key, Value: value})
	h.idx[key] = location{inD1: true, blk: blk, slot: len(blk.items) - 1}

	if len(blk.items) > h.m {
		h.split(i)
	}
}

// split divides the over-full D1 block at index i around its median value
// (found via Quickselect), replacing it with two blocks: the smaller half
// keeps the median as its new upper bound, the larger half keeps the
// original upper bound.
func (h *Heap) split(i int) {
	blk := h.d1[i]
	tmp := append([]Item(nil), blk.items...)
	mid := len(tmp) / 2
	nthElement(tmp, mid)
	medianValue := tmp[mid].Value

	smaller := &block{upperBound: medianValue, items: append([]Item(nil), tmp[:mid]...)}
	larger := &block{upperBound: blk.upperBound, items: append([]Item(nil), tmp[mid:]...)}

	next := make([]*block, 0, len(h.d1)+1)
	next = append(next, h.d1[:i]...)
	next = append(next, smaller, larger)
	next = append(next, h.d1[i+1:]...)
	h.d1 = next

	for slot, it := range smaller.items {
		h.idx[it.Key] = location{inD1: true, blk: smaller, slot: slot}
	}
	for slot, it := range larger.items {
		h.idx[it.Key] = location{inD1: true, blk: larger, slot: slot}
	}
}

// BatchPrepend inserts items known to be smaller than every existing pair
// in the heap, prepending them ahead of D1 in key order. Blocks larger
// than m are recursively split by median until every chunk holds at most
// ceil(m/2) elements.
func (h *Heap) BatchPrepend(items []Item) {
	if len(items) == 0 {
		return
	}

	var chunks [][]Item
	if len(items) <= h.m {
		chunks = [][]Item{append([]Item(nil), items...)}
	} else {
		maxChunk := (h.m + 1) / 2 // ceil(m/2)
		current := [][]Item{append([]Item(nil), items...)}
		for len(current) > 0 {
			var next [][]Item
			for _, c := range current {
				if len(c) <= maxChunk {
					chunks = append(chunks, c)
					continue
				}
				mid := len(c) / 2
				nthElement(c, mid)
				left := c[:mid]
				right := c[mid:]
				if len(left) > 0 {
					next = append(next, left)
				}
				if len(right) > 0 {
					next = append(next, right)
				}
			}
			current = next
		}
	}

	// Push each chunk as its own block at the front of D0. Order among
	// D0 sub-blocks is irrelevant: they all dominate the rest of the heap.
	for _, chunk := range chunks {
		blk := &block{items: chunk}
		h.d0 = append([]*block{blk}, h.d0...)
		for slot, it := range blk.items {
			h.idx[it.Key] = location{inD1: false, blk: blk, slot: slot}
		}
	}
}

// Pull returns up to M smallest-value keys currently in the heap and a new
// bound: B̂ if the heap has been fully drained, otherwise the smallest
// value remaining anywhere in the heap afterward. Returned keys are
// removed from the heap.
func (h *Heap) Pull() PullResult {
	s0 := collectPrefix(h.d0, h.m)
	s1 := collectPrefix(h.d1, h.m)

	combined := make([]Item, 0, len(s0)+len(s1))
	combined = append(combined, s0...)
	combined = append(combined, s1...)

	// combined already holds no more than one prefix's worth per side, so
	// "select everything" and "select the M smallest" agree whenever
	// len(combined) <= M. Either way, the prefix cap on each side can leave
	// pairs behind inside D0/D1 even when combined itself fits under M — so
	// new_bound is always computed by scanning for whatever is left, never
	// assumed from the size of combined alone.
	var selected, leftoverFromCombined []Item
	if len(combined) <= h.m {
		selected = combined
	} else {
		nthElement(combined, h.m)
		selected = combined[:h.m]
		leftoverFromCombined = combined[h.m:]
	}

	minRemaining := h.bHat
	found := false
	consider := func(v float64) {
		found = true
		if v < minRemaining {
			minRemaining = v
		}
	}
	for _, it := range leftoverFromCombined {
		consider(it.Value)
	}
	scanBeyondPrefix(h.d0, h.m, consider)
	scanBeyondPrefix(h.d1, h.m, consider)

	keys := make([]int, len(selected))
	for i, it := range selected {
		keys[i] = it.Key
	}
	for _, k := range keys {
		h.del(k)
	}

	newBound := h.bHat
	if found {
		newBound = minRemaining
	}

	return PullResult{Keys: keys, NewBound: newBound}
}

// collectPrefix gathers up to limit items across blocks, in block order
// then in-block order, without mutating the heap.
func collectPrefix(blocks []*block, limit int) []Item {
	var out []Item
	for _, blk := range blocks {
		if len(out) >= limit {
			break
		}
		for _, it := range blk.items {
			if len(out) >= limit {
				break
			}
			out = append(out, it)
		}
	}

	return out
}

// scanBeyondPrefix walks every item across blocks in the same order
// collectPrefix would, invoking consider for every item at or beyond
// position limit. It is used to find the smallest value left behind by a
// Pull once the first M items per side have already been accounted for.
func scanBeyondPrefix(blocks []*block, limit int, consider func(float64)) {
	count := 0
	for _, blk := range blocks {
		for _, it := range blk.items {
			if count >= limit {
				consider(it.Value)
			}
			count++
		}
	}
}

// del removes key from the heap in O(1): the key's slot is filled by
// swapping in its block's last element (rewriting that element's index
// entry), then the slot is truncated. If this empties a D1 block, the
// block itself is dropped; empty D0 blocks are left in place.
func (h *Heap) del(key int) {
	loc, ok := h.idx[key]
	if !ok {
		return
	}

	blk := loc.blk
	last := len(blk.items) - 1
	if loc.slot != last {
		blk.items[loc.slot] = blk.items[last]
		moved := blk.items[loc.slot].Key
		h.idx[moved] = location{inD1: loc.inD1, blk: blk, slot: loc.slot}
	}
	blk.items = blk.items[:last]
	delete(h.idx, key)

	if loc.inD1 && len(blk.items) == 0 {
		for i, b := range h.d1 {
			if b == blk {
				h.d1 = append(h.d1[:i], h.d1[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of keys currently held by the heap. It exists
// mainly for tests exercising the "no leakage" property: every inserted
// key eventually drains via Pull.
func (h *Heap) Len() int { return len(h.idx) }
