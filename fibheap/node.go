package fibheap

// newNode returns a singleton-list node owned by o.
func newNode[K any](key K, o *owner) *Node[K] {
	n := &Node[K]{key: key, owner: o}
	n.left = n
	n.right = n

	return n
}

// splice joins the circular list holding a with the circular list holding b.
// Neither list's head changes. Complexity: O(1).
//
//	before:  a → an … a      b … bl → b
//	after:   a → b … bl → an … a
func splice[K any](a, b *Node[K]) {
	an := a.right
	bl := b.left
	a.right = b
	b.left = a
	an.left = bl
	bl.right = an
}

// detach removes n from whatever circular list holds it, leaving n as a
// singleton. The caller must read n.right first if it keeps walking the list.
func detach[K any](n *Node[K]) {
	n.left.right = n.right
	n.right.left = n.left
	n.left = n
	n.right = n
}

// makeChild links the singleton c under p. The mark of c is cleared since it
// has just become a child.
func makeChild[K any](p, c *Node[K]) {
	c.parent = p
	c.marked = false
	p.degree++
	if p.child == nil {
		p.child = c
		return
	}
	splice(p.child, c)
}

// promoteChildren moves every child of the root n into the root list next to
// n, clearing parent and mark on each.
func promoteChildren[K any](n *Node[K]) {
	c := n.child
	if c == nil {
		return
	}
	x := c
	for {
		x.parent = nil
		x.marked = false
		x = x.right
		if x == c {
			break
		}
	}
	n.child = nil
	n.degree = 0
	splice(n, c)
}

// release invalidates a removed node and drops its links so it cannot pin
// other nodes in memory.
func release[K any](n *Node[K]) {
	n.owner = nil
	n.parent = nil
	n.child = nil
	n.left = n
	n.right = n
	n.degree = 0
	n.marked = false
}
