package batchheap

import "errors"

// ErrNonPositiveBatchSize indicates New was called with M <= 0; a
// zero-or-negative block size threshold makes splitting meaningless.
var ErrNonPositiveBatchSize = errors.New("batchheap: M must be positive")
