package fibheap

import "slices"

// Walk visits every node in pre-order: each root of the root list (depth 0)
// followed by its subtree. It stops early when fn returns false.
//
// The traversal uses an explicit stack, so tree depth is not limited by the
// goroutine stack. fn must not mutate the heap.
//
// Complexity: O(n).
func (h *Heap[K]) Walk(fn func(n *Node[K], depth int) bool) {
	if h.min == nil {
		return
	}

	type frame struct {
		first *Node[K] // head of the sibling list being walked
		next  *Node[K] // next sibling to visit
		depth int
	}
	stack := []frame{{first: h.min, next: h.min}}

	var (
		top *frame
		n   *Node[K]
	)
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		if top.next == nil {
			stack = stack[:len(stack)-1]
			continue
		}

		n = top.next
		top.next = n.right
		if top.next == top.first {
			top.next = nil
		}

		if !fn(n, top.depth) {
			return
		}
		if n.child != nil {
			stack = append(stack, frame{first: n.child, next: n.child, depth: top.depth + 1})
		}
	}
}

// Find returns the first node whose key equals key, searching depth-first
// from the minimum root. It is a linear-time utility, outside the amortized
// bounds of the other operations.
//
// Complexity: O(n).
func (h *Heap[K]) Find(key K) (*Node[K], bool) {
	var found *Node[K]
	h.Walk(func(n *Node[K], _ int) bool {
		if h.equal(n.key, key) {
			found = n
			return false
		}

		return true
	})

	return found, found != nil
}

// Keys returns a snapshot of every key in ascending order. The slice is a
// copy; later heap operations do not affect it.
//
// Complexity: O(n log n).
func (h *Heap[K]) Keys() []K {
	keys := make([]K, 0, h.size)
	h.Walk(func(n *Node[K], _ int) bool {
		keys = append(keys, n.key)
		return true
	})
	slices.SortStableFunc(keys, func(a, b K) int {
		switch {
		case h.less(a, b):
			return -1
		case h.less(b, a):
			return 1
		default:
			return 0
		}
	})

	return keys
}

// Max returns the largest key, scanning every node. With several equal
// largest keys the first one met by Walk is returned.
//
// Returns ErrEmptyHeap if the heap is empty.
//
// Complexity: O(n).
func (h *Heap[K]) Max() (K, error) {
	var top K
	if h.min == nil {
		return top, ErrEmptyHeap
	}
	top = h.min.key
	h.Walk(func(n *Node[K], _ int) bool {
		if h.less(top, n.key) {
			top = n.key
		}
		return true
	})

	return top, nil
}
