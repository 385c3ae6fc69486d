package prim_kruskal

import (
	"github.com/medycynka/Fibonacci-Heap/core"
	"github.com/medycynka/Fibonacci-Heap/fibheap"
)

// Prim computes the Minimum Spanning Tree of an undirected, weighted graph by
// growing a tree from root.
//
// Error Conditions:
//   - ErrInvalidGraph        : graph is nil, directed, or unweighted.
//   - ErrDisconnected        : |V| == 0, or the graph is not connected.
//   - core.ErrVertexNotFound : root is missing (single-vertex graph with another ID included).
//   - ErrEmptyRoot           : root is "" on a graph with more than one vertex.
//
// Steps:
//  1. Validate the graph; handle |V| ≤ 1.
//  2. Queue every neighbor of root keyed by its cheapest edge into the tree.
//  3. Extract the cheapest frontier vertex v, add its edge to the MST.
//  4. For every edge v—x with x outside the tree: insert x, or DecreaseKey it
//     if this edge is cheaper than its queued one.
//  5. Stop at |V|-1 edges; fewer means the graph is disconnected.
//
// Complexity: O(E + V log V) time, O(V) memory.
func Prim(graph *core.Graph, root string) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		if vertices[0] != root {
			return nil, 0, core.ErrVertexNotFound
		}
		return []core.Edge{}, 0, nil
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	n := len(vertices)
	inTree := make(map[string]bool, n)
	queued := make(map[string]*fibheap.Node[edgeKey], n)
	pq := fibheap.NewFunc[edgeKey](lessEdge)
	mst := make([]core.Edge, 0, n-1)
	var total int64

	// offer records e as a candidate edge into the tree for vertex x.
	offer := func(x string, e *core.Edge) error {
		key := edgeKey{weight: e.Weight, edge: e}
		if h, ok := queued[x]; ok {
			if lessEdge(key, h.Key()) {
				return pq.DecreaseKey(h, key)
			}
			return nil
		}
		queued[x] = pq.Insert(key)

		return nil
	}
	// grow adds v to the tree and offers its edges to outside vertices.
	grow := func(v string) error {
		inTree[v] = true
		edges, err := graph.Neighbors(v)
		if err != nil {
			return err
		}
		var x string
		for _, e := range edges {
			x = e.Opposite(v)
			if inTree[x] {
				continue
			}
			if err = offer(x, e); err != nil {
				return err
			}
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}
	var (
		key edgeKey
		v   string
		err error
	)
	for !pq.IsEmpty() && len(mst) < n-1 {
		if key, err = pq.ExtractMin(); err != nil {
			return nil, 0, err
		}
		// The endpoint outside the tree is the vertex this entry was queued for.
		v = key.edge.To
		if inTree[v] {
			v = key.edge.From
		}
		delete(queued, v)

		mst = append(mst, *key.edge)
		total += key.weight
		if err = grow(v); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
