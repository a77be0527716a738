package bmssp

import "errors"

// ErrInvalidSource indicates ShortestPaths was called with a source vertex
// outside the graph's vertex range.
var ErrInvalidSource = errors.New("bmssp: source vertex out of range")

// ErrNilGraph indicates a nil *graph.Graph was passed where one is
// required.
var ErrNilGraph = errors.New("bmssp: graph must not be nil")
