package prim_kruskal

import (
	"github.com/medycynka/Fibonacci-Heap/core"
	"github.com/medycynka/Fibonacci-Heap/fibheap"
)

// Kruskal computes the Minimum Spanning Tree of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil, directed, or unweighted.
//   - ErrDisconnected : |V| == 0, or the graph is not connected.
//
// Steps:
//  1. Validate; |V| == 1 yields an empty MST.
//  2. Insert every non-loop edge into a Fibonacci heap keyed by (weight, ID).
//  3. Extract edges in order; keep an edge when its endpoints lie in different
//     union-find components, and merge them.
//  4. Stop at |V|-1 edges; fewer means the graph is disconnected.
//
// Complexity: O(E log E) time (only the extracted prefix is paid for), O(E + V) memory.
func Kruskal(graph *core.Graph) ([]core.Edge, int64, error) {
	if err := validate(graph); err != nil {
		return nil, 0, err
	}

	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	pq := fibheap.NewFunc[edgeKey](lessEdge)
	for _, e := range graph.Edges() {
		if e.From == e.To {
			continue
		}
		pq.Insert(edgeKey{weight: e.Weight, edge: e})
	}

	ds := newDisjointSet(vertices)
	n := len(vertices)
	mst := make([]core.Edge, 0, n-1)
	var (
		total int64
		key   edgeKey
		err   error
	)
	for !pq.IsEmpty() && len(mst) < n-1 {
		if key, err = pq.ExtractMin(); err != nil {
			return nil, 0, err
		}
		if ds.union(key.edge.From, key.edge.To) {
			mst = append(mst, *key.edge)
			total += key.weight
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find with path compression and union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	ds := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find returns the representative of u, halving the path as it goes.
func (ds *disjointSet) find(u string) string {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; it reports false if they were already joined.
func (ds *disjointSet) union(u, v string) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
