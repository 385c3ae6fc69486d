package fibheap

// DecreaseKey lowers the key of n to key.
//
// Errors (checked before any mutation):
//   - ErrInvalidHandle if n is not a live node of h.
//   - ErrInvalidKey    if key is greater than n's current key.
//
// Steps:
//  1. Store the new key.
//  2. If n is a child and now sorts before its parent, cut n to the root list
//     and cascade the cut through marked ancestors.
//  3. If n is a root that now sorts before the minimum, it becomes the minimum.
//
// Complexity: amortized O(1).
func (h *Heap[K]) DecreaseKey(n *Node[K], key K) error {
	if !h.owns(n) {
		return ErrInvalidHandle
	}
	if h.less(n.key, key) {
		return ErrInvalidKey
	}

	n.key = key
	if p := n.parent; p != nil && h.less(key, p.key) {
		h.cut(n)
		h.cascadingCut(p)
	}
	if n.parent == nil && h.less(key, h.min.key) {
		h.min = n
	}

	return nil
}

// Delete removes n from the heap. Its handle becomes invalid.
//
// No key can be driven below every other key for a generic K, so removal is
// done directly:
//   - the minimum goes through the ExtractMin path;
//   - any other node is cut from its parent (with cascading cut), its children
//     are promoted, and it is unlinked. The minimum cannot change: every child
//     of n sorts at or after n, which sorts at or after the minimum.
//
// Complexity: amortized O(log n) for the minimum, amortized O(1) + degree(n) otherwise.
func (h *Heap[K]) Delete(n *Node[K]) error {
	if !h.owns(n) {
		return ErrInvalidHandle
	}
	if n == h.min {
		h.removeRoot(n)
		return nil
	}

	if p := n.parent; p != nil {
		h.cut(n)
		h.cascadingCut(p)
	}
	promoteChildren(n)
	detach(n)
	h.size--
	release(n)

	return nil
}

// cut detaches the child n from its parent and splices it into the root list
// as an unmarked root.
func (h *Heap[K]) cut(n *Node[K]) {
	p := n.parent
	if n.right == n {
		p.child = nil
	} else {
		if p.child == n {
			p.child = n.right
		}
		detach(n)
	}
	p.degree--

	n.parent = nil
	n.marked = false
	splice(h.min, n)
	if h.less(n.key, h.min.key) {
		h.min = n
	}
}

// cascadingCut walks up from p, the parent that just lost a child. Marked
// ancestors have now lost two children and are cut in turn; the first
// unmarked non-root ancestor gets marked. Roots are never marked.
func (h *Heap[K]) cascadingCut(p *Node[K]) {
	var next *Node[K]
	for p.parent != nil {
		if !p.marked {
			p.marked = true
			return
		}
		next = p.parent
		h.cut(p)
		p = next
	}
}
