// Package fibonacciheap is a mergeable priority queue library built around a
// Fibonacci heap, plus the graph algorithms that benefit from it.
//
// What is in the box?
//
//	fibheap/       the heap: Insert, Merge, PeekMin, ExtractMin, DecreaseKey, Delete
//	core/          thread-safe in-memory Graph, Vertex and Edge types
//	builder/       deterministic graph fixtures (Path, Cycle, Complete, random)
//	dijkstra/      single-source shortest paths with true decrease-key
//	prim_kruskal/  Minimum Spanning Trees (Prim, Kruskal) fed from the heap
//	cmd/fibbench/  CLI that prints, benchmarks and exercises all of the above
//
// Why a Fibonacci heap?
//
//   - Insert, Merge, PeekMin and DecreaseKey run in O(1) amortized time.
//   - ExtractMin and Delete run in O(log n) amortized time.
//   - Handles returned by Insert stay valid across Merge.
//
// Quick example:
//
//	h := fibheap.New[int]()
//	n := h.Insert(42)
//	h.Insert(7)
//	_ = h.DecreaseKey(n, 1)
//	k, _ := h.ExtractMin() // 1
//
// The heap is not safe for concurrent use; guard it with a mutex if shared.
//
//	go get github.com/medycynka/Fibonacci-Heap/fibheap
package fibonacciheap
