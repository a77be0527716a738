package graph

import "errors"

// Sentinel errors returned by the graph package.
var (
	// ErrNegativeVertices indicates a Builder was constructed with n < 0.
	ErrNegativeVertices = errors.New("graph: number of vertices must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint fell outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates an edge was added with weight < 0.
	// BMSSP is defined only over non-negative edge weights.
	ErrNegativeWeight = errors.New("graph: negative edge weight is not supported")
)
