package batchheap

// nthElement rearranges items in place so that items[k] holds the value it
// would hold if items were fully sorted ascending by Value, with every
// element before k no greater and every element after k no smaller. This
// is Quickselect (Hoare 1961) using Lomuto partitioning around the last
// element of each range — deterministic (no randomized pivot), so that
// repeated runs over identical input produce identical partitions and
// identical Pull results.
//
// Complexity: O(len(items)) expected, O(len(items)^2) worst case on
// adversarial input; BMSSP's block sizes are bounded by M so this is not a
// practical concern.
func nthElement(items []Item, k int) {
	lo, hi := 0, len(items)-1
	for lo < hi {
		p := partition(items, lo, hi)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition performs a Lomuto partition of items[lo:hi+1] around
// items[hi].Value, returning the pivot's final index.
func partition(items []Item, lo, hi int) int {
	pivot := items[hi].Value
	i := lo
	for j := lo; j < hi; j++ {
		if items[j].Value < pivot {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[hi] = items[hi], items[i]

	return i
}
