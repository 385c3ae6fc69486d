package fibheap

// Insert adds key to the heap and returns its handle.
//
// Steps:
//  1. Create a singleton node owned by h.
//  2. Splice it into the root list.
//  3. Move the min pointer if the heap was empty or key is strictly smaller.
//
// Complexity: O(1).
func (h *Heap[K]) Insert(key K) *Node[K] {
	n := newNode(key, h.id)
	if h.min == nil {
		h.min = n
	} else {
		splice(h.min, n)
		if h.less(key, h.min.key) {
			h.min = n
		}
	}
	h.size++

	return n
}

// Merge moves every element of other into h. On equal minimums h keeps its own.
// Afterwards other is an empty heap; handles obtained from other remain valid
// and now belong to h.
//
// Complexity: O(1).
func (h *Heap[K]) Merge(other *Heap[K]) error {
	if other == nil {
		return ErrNilHeap
	}
	if other == h {
		return ErrSelfMerge
	}

	if other.min != nil {
		if h.min == nil {
			h.min = other.min
		} else {
			splice(h.min, other.min)
			if h.less(other.min.key, h.min.key) {
				h.min = other.min
			}
		}
		h.size += other.size
	}

	// Forward other's nodes to h and give other a fresh identity.
	other.id.next = h.id
	other.id = &owner{}
	other.min = nil
	other.size = 0

	return nil
}

// PeekMin returns the minimum key without removing it.
// Complexity: O(1).
func (h *Heap[K]) PeekMin() (K, error) {
	if h.min == nil {
		var zero K
		return zero, ErrEmptyHeap
	}

	return h.min.key, nil
}

// Min returns the handle of the minimum node, or nil if the heap is empty.
func (h *Heap[K]) Min() *Node[K] { return h.min }

// ExtractMin removes the minimum element and returns its key.
//
// Steps:
//  1. Promote the children of the minimum root m into the root list.
//  2. Detach m. If nothing is left, the heap is empty.
//  3. Otherwise consolidate the root list and pick the new minimum.
//  4. Invalidate m's handle.
//
// Complexity: amortized O(log n).
func (h *Heap[K]) ExtractMin() (K, error) {
	m := h.min
	if m == nil {
		var zero K
		return zero, ErrEmptyHeap
	}
	h.removeRoot(m)

	return m.key, nil
}

// removeRoot unlinks the root m, repairs the root list and frees m.
func (h *Heap[K]) removeRoot(m *Node[K]) {
	promoteChildren(m)
	if m.right == m {
		h.min = nil
	} else {
		h.min = m.right
		detach(m)
		h.consolidate()
	}
	h.size--
	release(m)
}

// Clear removes every element. Outstanding handles become invalid.
// Complexity: O(1); the nodes are left to the garbage collector.
func (h *Heap[K]) Clear() {
	h.id = &owner{}
	h.min = nil
	h.size = 0
	h.roots = nil
	h.degrees = nil
	h.orders = nil
}

// Roots returns the number of trees in the root list.
// Complexity: O(number of roots).
func (h *Heap[K]) Roots() int {
	if h.min == nil {
		return 0
	}
	count := 0
	x := h.min
	for {
		count++
		x = x.right
		if x == h.min {
			break
		}
	}

	return count
}
