// Package fibheap implements a Fibonacci heap: a mergeable min-priority queue
// with amortized O(1) Insert, PeekMin, Merge and DecreaseKey, and amortized
// O(log n) ExtractMin and Delete.
//
// Overview:
//
//   - Elements live in heap-ordered multi-way trees whose roots form a
//     circular, doubly linked root list. Every child list is circular too.
//   - Insert and Merge only splice lists; all the restructuring work is
//     deferred to ExtractMin, which consolidates the root list so that no two
//     roots share a degree.
//   - DecreaseKey cuts a node that violates heap order and walks up the
//     "marked" ancestors (cascading cut), which keeps the size of a subtree of
//     degree d at least Fib(d+2).
//
// When to use:
//
//   - Algorithms dominated by decrease-key: Dijkstra, Prim, and friends
//     (see the dijkstra and prim_kruskal packages of this module).
//   - Workloads that merge many queues.
//
// Handles:
//
// Insert returns a *Node handle. It stays valid until the node is removed by
// ExtractMin, Delete or Clear. Merge moves every node of the consumed heap to
// the receiver, and existing handles keep working with the receiver. Passing a
// removed handle, or a handle owned by another heap, yields ErrInvalidHandle.
//
// Errors (sentinel):
//
//   - ErrEmptyHeap     PeekMin/ExtractMin on an empty heap.
//   - ErrInvalidKey    DecreaseKey with a key greater than the current one.
//   - ErrInvalidHandle handle not live in this heap.
//   - ErrNilHeap       Merge with a nil heap.
//   - ErrSelfMerge     Merge of a heap into itself.
//   - ErrCorrupt       reported by Validate when an invariant is broken.
//
// A Heap is not safe for concurrent use.
//
// Example:
//
//	h := fibheap.New[int]()
//	a := h.Insert(5)
//	h.Insert(3)
//	_ = h.DecreaseKey(a, 1)
//	k, _ := h.ExtractMin() // 1
package fibheap
