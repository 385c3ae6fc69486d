package fibheap

// consolidate links roots of equal degree until every degree in the root list
// is unique, then points h.min at the smallest root.
//
// Linking only ever joins two trees of the same degree d into one of degree
// d+1, which is what keeps a degree-d subtree at least Fib(d+2) nodes large.
// On equal keys the root met first in the scan stays on top, including when
// a tree built by an earlier link meets a later-scanned table occupant.
//
// Preconditions: h.min is any node of a non-empty root list whose nodes all
// have parent == nil and marked == false.
//
// Complexity: O(roots + log n).
func (h *Heap[K]) consolidate() {
	// 1) Snapshot the root list. Linking rewires sibling pointers, so walking
	//    the live list while mutating it is not an option.
	roots := h.roots[:0]
	x := h.min
	for {
		roots = append(roots, x)
		x = x.right
		if x == h.min {
			break
		}
	}

	// 2) Degree table, grown on demand, with the scan position of each
	//    occupant's root. Slots are empty between calls.
	table := h.degrees
	order := h.orders

	// 3) Insert every root, linking on collisions.
	var (
		d      int
		pos    int
		t      *Node[K]
		parent *Node[K]
		child  *Node[K]
	)
	for i := range roots {
		x, pos = roots[i], i
		d = x.degree
		for {
			for d >= len(table) {
				table = append(table, nil)
				order = append(order, 0)
			}
			t = table[d]
			if t == nil {
				break
			}
			// Equal keys: the root scanned first becomes the parent.
			parent, child = x, t
			if h.less(t.key, x.key) || (!h.less(x.key, t.key) && order[d] < pos) {
				parent, child = t, x
				pos = order[d]
			}
			detach(child)
			makeChild(parent, child)
			table[d] = nil
			x = parent
			d++
		}
		table[d] = x
		order[d] = pos
	}

	// 4) Rescan the surviving roots for the minimum, emptying the table.
	h.min = nil
	for i := range table {
		t = table[i]
		if t == nil {
			continue
		}
		table[i] = nil
		if h.min == nil || h.less(t.key, h.min.key) {
			h.min = t
		}
	}

	// Drop references so released nodes are not retained by the buffers.
	for i := range roots {
		roots[i] = nil
	}
	h.roots = roots[:0]
	h.degrees = table
	h.orders = order
}
