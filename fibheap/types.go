package fibheap

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrEmptyHeap indicates PeekMin or ExtractMin on a heap with no elements.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")

	// ErrInvalidKey indicates DecreaseKey was given a key greater than the node's current key.
	ErrInvalidKey = errors.New("fibheap: new key is greater than current key")

	// ErrInvalidHandle indicates a node handle that is nil, already removed,
	// or owned by another heap.
	ErrInvalidHandle = errors.New("fibheap: handle is not live in this heap")

	// ErrNilHeap indicates Merge was called with a nil heap.
	ErrNilHeap = errors.New("fibheap: heap is nil")

	// ErrSelfMerge indicates an attempt to merge a heap into itself.
	ErrSelfMerge = errors.New("fibheap: cannot merge heap into itself")

	// ErrCorrupt is returned by Validate when a structural invariant does not hold.
	ErrCorrupt = errors.New("fibheap: invariant violated")
)

// LessFunc reports whether a must sort before b. It must be a strict weak order.
type LessFunc[K any] func(a, b K) bool

// Node is a heap element and the handle returned by Insert.
//
// left/right link the node into the circular list it currently belongs to:
// the root list for roots, its parent's child list otherwise.
type Node[K any] struct {
	key    K
	degree int
	marked bool

	parent *Node[K]
	child  *Node[K]
	left   *Node[K]
	right  *Node[K]

	// owner is nil once the node has been removed from its heap.
	owner *owner
}

// Key returns the node's current key.
func (n *Node[K]) Key() K { return n.key }

// Degree returns the number of direct children.
func (n *Node[K]) Degree() int { return n.degree }

// Marked reports whether the node lost a child since it last became a child.
func (n *Node[K]) Marked() bool { return n.marked }

// IsRoot reports whether the node currently sits in the root list.
func (n *Node[K]) IsRoot() bool { return n.parent == nil }

// owner identifies the heap that owns a set of nodes. Merge forwards the
// consumed heap's owner to the receiver, so ownership checks follow the chain.
type owner struct {
	next *owner
}

// resolve returns the final owner of the chain, compressing the path on the way.
func (o *owner) resolve() *owner {
	root := o
	for root.next != nil {
		root = root.next
	}
	for o != root {
		next := o.next
		o.next = root
		o = next
	}

	return root
}

// Heap is a Fibonacci min-heap of keys K.
type Heap[K any] struct {
	less LessFunc[K]
	min  *Node[K] // minimum root; entry point into the root list
	size int
	id   *owner

	// scratch buffers reused by consolidate.
	roots   []*Node[K]
	degrees []*Node[K]
	orders  []int
}

// New returns an empty heap ordered by the natural order of K.
func New[K cmp.Ordered]() *Heap[K] {
	return NewFunc[K](cmp.Less[K])
}

// NewFunc returns an empty heap ordered by less.
// Panics if less is nil.
func NewFunc[K any](less LessFunc[K]) *Heap[K] {
	if less == nil {
		panic("fibheap: nil LessFunc")
	}

	return &Heap[K]{
		less: less,
		id:   &owner{},
	}
}

// Size returns the number of live elements.
func (h *Heap[K]) Size() int { return h.size }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[K]) IsEmpty() bool { return h.size == 0 }

// owns reports whether n is a live node of h.
func (h *Heap[K]) owns(n *Node[K]) bool {
	if n == nil || n.owner == nil {
		return false
	}
	n.owner = n.owner.resolve()

	return n.owner == h.id
}

// equal reports key equivalence under the heap's order.
func (h *Heap[K]) equal(a, b K) bool {
	return !h.less(a, b) && !h.less(b, a)
}
