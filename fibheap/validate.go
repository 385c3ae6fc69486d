package fibheap

import "fmt"

// Validate checks the structural invariants of h and returns an error
// wrapping ErrCorrupt for the first violation found:
//
//   - every sibling list is circular and doubly linked;
//   - roots have no parent and are unmarked; children point at their parent;
//   - parent keys never sort after child keys;
//   - degree equals the length of the child list;
//   - a degree-d node roots a subtree of at least Fib(d+2) nodes;
//   - every node is owned by h;
//   - the min pointer is a root holding the smallest key, nil iff empty;
//   - the node count equals Size().
//
// Intended for tests and diagnostics. Complexity: O(n).
func (h *Heap[K]) Validate() error {
	if h.min == nil {
		if h.size != 0 {
			return fmt.Errorf("%w: nil minimum with size %d", ErrCorrupt, h.size)
		}
		return nil
	}
	if h.min.parent != nil {
		return fmt.Errorf("%w: minimum is not a root", ErrCorrupt)
	}

	// 1) Per-node checks in pre-order. order keeps the visit sequence for the
	//    subtree-size pass below.
	var (
		order []*Node[K]
		err   error
	)
	h.Walk(func(x *Node[K], depth int) bool {
		if len(order) >= h.size {
			err = fmt.Errorf("%w: more than %d nodes reachable", ErrCorrupt, h.size)
			return false
		}
		if depth == 0 && x.parent != nil {
			err = fmt.Errorf("%w: node %v in root list has a parent", ErrCorrupt, x.key)
			return false
		}
		order = append(order, x)
		err = h.checkNode(x)

		return err == nil
	})
	if err != nil {
		return err
	}
	if len(order) != h.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrCorrupt, len(order), h.size)
	}

	// 2) Subtree sizes in reverse pre-order: every child is sized before its parent.
	sizes := make(map[*Node[K]]int, len(order))
	var (
		x   *Node[K]
		sub int
	)
	for i := len(order) - 1; i >= 0; i-- {
		x = order[i]
		sub = 1
		if c := x.child; c != nil {
			for {
				sub += sizes[c]
				c = c.right
				if c == x.child {
					break
				}
			}
		}
		if sub < fib(x.degree+2) {
			return fmt.Errorf("%w: node %v of degree %d roots only %d nodes", ErrCorrupt, x.key, x.degree, sub)
		}
		sizes[x] = sub
	}

	return nil
}

// checkNode verifies the local invariants of x.
func (h *Heap[K]) checkNode(x *Node[K]) error {
	if x.right.left != x || x.left.right != x {
		return fmt.Errorf("%w: broken sibling links at %v", ErrCorrupt, x.key)
	}
	if x.owner == nil || x.owner.resolve() != h.id {
		return fmt.Errorf("%w: node %v not owned by heap", ErrCorrupt, x.key)
	}

	if p := x.parent; p == nil {
		if x.marked {
			return fmt.Errorf("%w: root %v is marked", ErrCorrupt, x.key)
		}
		if h.less(x.key, h.min.key) {
			return fmt.Errorf("%w: root %v sorts before minimum %v", ErrCorrupt, x.key, h.min.key)
		}
	} else if h.less(x.key, p.key) {
		return fmt.Errorf("%w: child %v sorts before parent %v", ErrCorrupt, x.key, p.key)
	}

	children := 0
	if c := x.child; c != nil {
		for {
			if c.parent != x {
				return fmt.Errorf("%w: child %v does not point at parent %v", ErrCorrupt, c.key, x.key)
			}
			children++
			if children > h.size {
				return fmt.Errorf("%w: child list of %v is not circular", ErrCorrupt, x.key)
			}
			c = c.right
			if c == x.child {
				break
			}
		}
	}
	if children != x.degree {
		return fmt.Errorf("%w: node %v has degree %d but %d children", ErrCorrupt, x.key, x.degree, children)
	}

	return nil
}

// fib returns the k-th Fibonacci number, saturating instead of overflowing.
func fib(k int) int {
	a, b := 0, 1
	for i := 0; i < k; i++ {
		if b < 0 {
			return a
		}
		a, b = b, a+b
	}

	return a
}
