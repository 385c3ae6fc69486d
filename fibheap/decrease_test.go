package fibheap_test

import (
	"testing"

	"github.com/medycynka/Fibonacci-Heap/fibheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, h *fibheap.Heap[int]) []int {
	t.Helper()
	out := make([]int, 0, h.Size())
	for !h.IsEmpty() {
		k, err := h.ExtractMin()
		require.NoError(t, err)
		out = append(out, k)
	}

	return out
}

func TestDecreaseKey_RootBecomesMinimum(t *testing.T) {
	h := fibheap.New[int]()
	h.Insert(5)
	h.Insert(3)
	n8 := h.Insert(8)

	require.NoError(t, h.DecreaseKey(n8, 1))
	k, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Same(t, n8, h.Min())
	assert.NoError(t, h.Validate())
}

func TestDecreaseKey_EqualKeyIsAccepted(t *testing.T) {
	h, nodes := buildSingleTree(t)

	require.NoError(t, h.DecreaseKey(nodes[8], 8))
	assert.False(t, nodes[8].IsRoot())
	assert.Equal(t, 1, h.Roots())
	assert.NoError(t, h.Validate())
}

func TestDecreaseKey_GreaterKeyRejected(t *testing.T) {
	h, nodes := buildSingleTree(t)
	before := h.Keys()

	err := h.DecreaseKey(nodes[4], 40)
	assert.ErrorIs(t, err, fibheap.ErrInvalidKey)

	assert.Equal(t, 4, nodes[4].Key())
	assert.Equal(t, 8, h.Size())
	assert.Equal(t, before, h.Keys())
	k, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, drain(t, h))
}

func TestDecreaseKey_NoViolationStaysInPlace(t *testing.T) {
	h, nodes := buildSingleTree(t)

	// 7 → 6 keeps 7 above its parent 5: no cut.
	require.NoError(t, h.DecreaseKey(nodes[7], 6))
	assert.False(t, nodes[7].IsRoot())
	assert.False(t, nodes[5].Marked())
	assert.Equal(t, 1, h.Roots())
	assert.NoError(t, h.Validate())
}

func TestDecreaseKey_CutMarksParent(t *testing.T) {
	h, nodes := buildSingleTree(t)

	// 6 < 5 violates heap order: 6 is cut, 5 loses its first child.
	require.NoError(t, h.DecreaseKey(nodes[6], -1))

	assert.True(t, nodes[6].IsRoot())
	assert.False(t, nodes[6].Marked())
	assert.True(t, nodes[5].Marked())
	assert.False(t, nodes[1].Marked(), "roots are never marked")
	assert.Equal(t, 1, nodes[5].Degree())
	assert.Same(t, nodes[6], h.Min())
	assert.Equal(t, 2, h.Roots())
	assert.NoError(t, h.Validate())
}

func TestDecreaseKey_CascadingCut(t *testing.T) {
	h, nodes := buildSingleTree(t)

	require.NoError(t, h.DecreaseKey(nodes[6], -1))
	require.True(t, nodes[5].Marked())

	// 5 now loses its second child: 7 is cut, then 5 itself is cut.
	require.NoError(t, h.DecreaseKey(nodes[7], -2))

	assert.True(t, nodes[7].IsRoot())
	assert.True(t, nodes[5].IsRoot())
	assert.False(t, nodes[5].Marked())
	assert.False(t, nodes[7].Marked())
	assert.Equal(t, 0, nodes[5].Degree())
	assert.Equal(t, 1, nodes[7].Degree(), "7 keeps its own child")
	assert.Equal(t, 2, nodes[1].Degree())
	assert.Equal(t, 4, h.Roots())
	assert.Same(t, nodes[7], h.Min())
	assert.NoError(t, h.Validate())

	assert.Equal(t, []int{-2, -1, 1, 2, 3, 4, 5, 8}, drain(t, h))
}

func TestDecreaseKey_InvalidHandles(t *testing.T) {
	h := fibheap.New[int]()
	other := fibheap.New[int]()
	a := h.Insert(1)
	foreign := other.Insert(1)

	assert.ErrorIs(t, h.DecreaseKey(nil, 0), fibheap.ErrInvalidHandle)
	assert.ErrorIs(t, h.DecreaseKey(foreign, 0), fibheap.ErrInvalidHandle)

	_, err := h.ExtractMin()
	require.NoError(t, err)
	assert.ErrorIs(t, h.DecreaseKey(a, 0), fibheap.ErrInvalidHandle)
	assert.Equal(t, 1, foreign.Key(), "rejected call must not touch the node")
}

func TestDelete_Minimum(t *testing.T) {
	h, nodes := buildSingleTree(t)

	require.NoError(t, h.Delete(nodes[1]))
	assert.Equal(t, 7, h.Size())
	assert.NoError(t, h.Validate())
	assert.ErrorIs(t, h.Delete(nodes[1]), fibheap.ErrInvalidHandle)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, drain(t, h))
}

func TestDelete_InnerNode(t *testing.T) {
	h, nodes := buildSingleTree(t)

	// 5 has children 6 and 7; they are promoted to roots.
	require.NoError(t, h.Delete(nodes[5]))
	assert.Equal(t, 7, h.Size())
	assert.True(t, nodes[6].IsRoot())
	assert.True(t, nodes[7].IsRoot())
	assert.Equal(t, 2, nodes[1].Degree())
	assert.Same(t, nodes[1], h.Min())
	assert.NoError(t, h.Validate())
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8}, drain(t, h))
}

func TestDelete_CascadesMarks(t *testing.T) {
	h, nodes := buildSingleTree(t)

	require.NoError(t, h.Delete(nodes[8]))
	assert.True(t, nodes[7].Marked())
	require.NoError(t, h.Delete(nodes[6]))
	assert.True(t, nodes[5].Marked())
	assert.NoError(t, h.Validate())

	// 4 is the only child of 3; 3 is unmarked so it gets marked.
	require.NoError(t, h.Delete(nodes[4]))
	assert.True(t, nodes[3].Marked())
	assert.NoError(t, h.Validate())
	assert.Equal(t, []int{1, 2, 3, 5, 7}, drain(t, h))
}

func TestDelete_NonMinimumRoot(t *testing.T) {
	h := fibheap.New[int]()
	h.Insert(1)
	n := h.Insert(2)
	h.Insert(3)

	require.NoError(t, h.Delete(n))
	assert.Equal(t, 2, h.Size())
	assert.NoError(t, h.Validate())
	assert.Equal(t, []int{1, 3}, drain(t, h))
}

func TestDelete_LastElement(t *testing.T) {
	h := fibheap.New[int]()
	n := h.Insert(1)

	require.NoError(t, h.Delete(n))
	assert.True(t, h.IsEmpty())
	assert.Nil(t, h.Min())
	assert.NoError(t, h.Validate())
}
