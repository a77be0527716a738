package batchheap

// Item is a single (key, value) pair held by the heap.
type Item struct {
	Key   int
	Value float64
}

// PullResult is the outcome of a Pull call: up to M keys and the new lower
// bound below which nothing smaller remains in the heap (or the heap's
// original upper bound, B̂, if the heap has been fully drained).
type PullResult struct {
	Keys     []int
	NewBound float64
}

// block is a contiguous bucket of pairs. For a D1 block, upperBound is an
// inclusive upper bound on every value inside it; D1 blocks are kept sorted
// ascending by upperBound. D0 blocks ignore upperBound (every D0 pair is
// known to precede everything currently in the heap).
type block struct {
	upperBound float64
	items      []Item
}

// location is the address-book entry backing O(1) deletion: which block a
// key lives in, and its slot within that block's items slice.
type location struct {
	inD1 bool
	blk  *block
	slot int
}
