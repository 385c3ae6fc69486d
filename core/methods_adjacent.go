package core

import "sort"

// Neighbors returns the edges leaving id: outgoing directed edges and every
// incident undirected edge (self-loops once). Use Edge.Opposite(id) to get
// the vertex on the other side.
//
// Errors:
//   - ErrEmptyVertexID  if id == "".
//   - ErrVertexNotFound if the vertex does not exist.
//
// Determinism: sorted by Edge.ID ascending.
// Complexity: O(d log d) for d incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, e := range g.adjacency[id] {
		out = append(out, e)
	}
	sortByEdgeID(out)

	return out, nil
}

// NeighborIDs returns the unique vertex IDs reachable over one edge from id,
// sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	var other string
	for _, e := range edges {
		other = e.Opposite(id)
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sort.Strings(out)

	return out, nil
}
