// Package batchheap implements the block-structured priority queue at the
// heart of BMSSP: a unique-keyed structure supporting Insert, BatchPrepend,
// and Pull of the M smallest keys, each in amortized sublinear-per-element
// time.
//
// Internally two ordered sequences of blocks hold (key, value) pairs:
//
//   - D1, the "sorted" side: blocks ordered by ascending upper bound, each
//     holding pairs with value <= its upper bound and >= the previous
//     block's upper bound. Blocks larger than M split around their median
//     value via quickselect.
//   - D0, the "unsorted prefix" side: blocks pushed by BatchPrepend,
//     holding pairs known to be smaller than everything already in the
//     heap. D0 blocks always logically precede D1 in key order.
//
// A hash index from key to (block, slot) gives O(1) deletion: the deleted
// slot is filled by swapping in the block's last element, so no block ever
// needs to shift its remaining elements.
package batchheap
