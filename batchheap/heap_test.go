package batchheap_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/bmssp/batchheap"
)

func TestNew_RejectsNonPositiveM(t *testing.T) {
	if _, err := batchheap.New(0, 10); err != batchheap.ErrNonPositiveBatchSize {
		t.Fatalf("New(0, 10) error = %v, want ErrNonPositiveBatchSize", err)
	}
	if _, err := batchheap.New(-1, 10); err != batchheap.ErrNonPositiveBatchSize {
		t.Fatalf("New(-1, 10) error = %v, want ErrNonPositiveBatchSize", err)
	}
}

// TestPull_WorkedExample reproduces the M=3, B̂=10 scenario: insert
// (1,1),(2,2),(3,3),(4,4); the first pull must return {1,2,3} with new
// bound 4, the second must return {4} with new bound 10.
func TestPull_WorkedExample(t *testing.T) {
	h, err := batchheap.New(3, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for k := 1; k <= 4; k++ {
		h.Insert(k, float64(k))
	}

	first := h.Pull()
	assertKeySet(t, first.Keys, []int{1, 2, 3})
	if first.NewBound != 4 {
		t.Fatalf("first pull new_bound = %v, want 4", first.NewBound)
	}

	second := h.Pull()
	assertKeySet(t, second.Keys, []int{4})
	if second.NewBound != 10 {
		t.Fatalf("second pull new_bound = %v, want 10", second.NewBound)
	}

	if h.Len() != 0 {
		t.Fatalf("Len() after draining = %d, want 0", h.Len())
	}
}

func TestPull_EmptyHeapReturnsBound(t *testing.T) {
	h, err := batchheap.New(3, 7)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := h.Pull()
	if len(res.Keys) != 0 {
		t.Fatalf("Pull on empty heap returned keys %v, want none", res.Keys)
	}
	if res.NewBound != 7 {
		t.Fatalf("Pull on empty heap new_bound = %v, want 7", res.NewBound)
	}
}

func TestInsert_KeepsLowerValueOnDuplicateKey(t *testing.T) {
	h, err := batchheap.New(4, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.Insert(1, 5)
	h.Insert(1, 9) // must not overwrite: 9 > 5
	h.Insert(1, 2) // improves: 2 < 5

	res := h.Pull()
	assertKeySet(t, res.Keys, []int{1})
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after draining single key", h.Len())
	}
}

func TestInsert_ValueBeyondUpperBoundIsDiscarded(t *testing.T) {
	h, err := batchheap.New(4, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.Insert(1, 25) // strictly greater than every block's bound: dropped
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after out-of-range insert", h.Len())
	}
}

func TestNoLeakage_AllInsertedKeysEventuallyDrain(t *testing.T) {
	h, err := batchheap.New(3, 1000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	const n = 37
	for k := 0; k < n; k++ {
		h.Insert(k, float64(n-k))
	}
	if h.Len() != n {
		t.Fatalf("Len() after %d inserts = %d, want %d", n, h.Len(), n)
	}

	drained := make(map[int]bool)
	for h.Len() > 0 {
		res := h.Pull()
		if len(res.Keys) == 0 {
			t.Fatalf("Pull returned no keys while heap still had %d entries", h.Len())
		}
		for _, k := range res.Keys {
			if drained[k] {
				t.Fatalf("key %d drained twice", k)
			}
			drained[k] = true
		}
	}
	if len(drained) != n {
		t.Fatalf("drained %d distinct keys, want %d", len(drained), n)
	}
}

func TestPull_ReturnsSmallestValuesFirst(t *testing.T) {
	h, err := batchheap.New(2, 1000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	values := map[int]float64{10: 50, 20: 10, 30: 30, 40: 20, 50: 40}
	for k, v := range values {
		h.Insert(k, v)
	}

	var order []float64
	for h.Len() > 0 {
		res := h.Pull()
		for _, k := range res.Keys {
			order = append(order, values[k])
		}
	}
	if !sort.Float64sAreSorted(order) {
		t.Fatalf("pull order %v is not ascending", order)
	}
}

func TestBatchPrepend_ItemsPrecedeExistingHeapContents(t *testing.T) {
	h, err := batchheap.New(2, 1000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.Insert(100, 50)
	h.Insert(200, 60)

	h.BatchPrepend([]batchheap.Item{{Key: 1, Value: 1}, {Key: 2, Value: 2}, {Key: 3, Value: 3}})

	if h.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", h.Len())
	}

	first := h.Pull()
	for _, k := range first.Keys {
		if k == 100 || k == 200 {
			t.Fatalf("first pull returned pre-existing key %d ahead of prepended keys", k)
		}
	}
}

func TestBatchPrepend_Empty(t *testing.T) {
	h, err := batchheap.New(4, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.BatchPrepend(nil)
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after prepending nothing", h.Len())
	}
}

func assertKeySet(t *testing.T, got []int, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	sortedGot := append([]int(nil), got...)
	sortedWant := append([]int(nil), want...)
	sort.Ints(sortedGot)
	sort.Ints(sortedWant)
	for i := range sortedGot {
		if sortedGot[i] != sortedWant[i] {
			t.Fatalf("keys = %v, want %v", got, want)
		}
	}
}
