// Package bmssp implements the Bounded Multi-Source Shortest Path (BMSSP)
// algorithm: a recursive, level-indexed refinement of Dijkstra's algorithm
// that finalizes shortest-path distances in batches bounded below
// O(m·log^(2/3) n) work on the full single-source shortest path problem.
//
// 🚀 What is bmssp?
//
//	A focused, single-purpose engine that brings together:
//		• Graph: an immutable directed adjacency store with derived k/t parameters
//		• BatchHeap: a block-structured priority queue with O(1) key deletion
//		• BaseCase: a bounded Dijkstra variant that stops after k+1 settlements
//		• FindPivots: k-step Bellman-Ford frontier expansion and pivot selection
//		• BMSSP: the recursive driver composing all of the above
//
// ✨ Why a dedicated engine instead of plain Dijkstra?
//
//   - Plain Dijkstra settles one vertex per heap pop; BMSSP settles vertices
//     in level-sized batches, trading a small amount of bookkeeping for a
//     provably better asymptotic bound on sparse graphs.
//   - Pure Go, no cgo. The only third-party dependencies are a vertex-id
//     set type used by FindPivots and BMSSP, and testify in the test suite.
//
// Under the hood, this package is the recursive driver and top-level
// ShortestPaths entry point; the supporting pieces live in their own
// focused subpackages:
//
//	graph/      — immutable adjacency store, k/t parameter derivation
//	distance/   — shared mutable distance/predecessor arena
//	batchheap/  — block-structured priority queue (Insert/BatchPrepend/Pull)
//	basecase/   — bounded multi-step Dijkstra
//	findpivots/ — k-step Bellman-Ford pivot selection
//	bmssplog/   — structured logging façade (silent by default)
//
// Quick example:
//
//	g, _ := graph.NewBuilder(5).
//		AddEdge(0, 1, 1).
//		AddEdge(1, 2, 1).
//		AddEdge(2, 3, 1).
//		AddEdge(3, 4, 1).
//		Freeze()
//	result, _ := bmssp.ShortestPaths(g, 0)
//	fmt.Println(result.Distance(4)) // 4
//
//	go get github.com/katalvlaran/bmssp
package bmssp
