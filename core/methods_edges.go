package core

import (
	"sort"
	"strconv"
)

// AddEdge creates a new edge from → to and returns its ID.
// Missing endpoints are added first.
//
// Errors:
//   - ErrEmptyVertexID       if from or to is empty.
//   - ErrBadWeight           if the graph is unweighted and weight != 0.
//   - ErrLoopNotAllowed      if from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed if from→to already exists without WithMultiEdges.
//
// Complexity: O(1) amortized, O(deg(from)) for the multi-edge check.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges[e.ID] = e
	g.adjacency[from][e.ID] = e
	if !e.Directed {
		g.adjacency[to][e.ID] = e
	}

	return e.ID, nil
}

// HasEdge reports whether at least one edge from → to exists.
// For undirected graphs the order of endpoints does not matter.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// hasEdgeLocked must be called with muEdgeAdj held.
func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if e.From == from && e.To == to {
			return true
		}
		if !e.Directed && e.From == to && e.To == from {
			return true
		}
	}

	return false
}

// Edges returns every edge sorted by numeric ID ascending ("e1", "e2", ..., "e10").
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortByEdgeID(out)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether any stored edge is one-way.
func (g *Graph) HasDirectedEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// sortByEdgeID orders edges by the numeric suffix of their IDs.
func sortByEdgeID(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i].ID, edges[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return a < b
	})
}
