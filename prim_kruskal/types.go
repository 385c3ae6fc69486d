// Package prim_kruskal computes Minimum Spanning Trees of undirected, weighted
// *core.Graph values with Prim's and Kruskal's algorithms.
//
// Both algorithms draw their candidates from a Fibonacci heap:
//
//   - Prim keeps one heap entry per frontier vertex, keyed by the cheapest
//     known edge into the tree, and lowers it with DecreaseKey.
//     Time O(E + V log V).
//   - Kruskal inserts every edge in O(1) and extracts them in weight order,
//     merging components with a union-find. Time O(E log E).
//
// Ties between equal weights are broken by Edge.ID, so results are deterministic.
package prim_kruskal

import (
	"errors"

	"github.com/medycynka/Fibonacci-Heap/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected, weighted graph.
// Returned when graph is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Also returned for |V| == 0.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that MSTOptions.Method names no algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (edges in weight order and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute runs the MST algorithm selected by opts.
//
// Returns the MST edges (empty for a single vertex), their total weight, and
// ErrUnknownMethod for an unrecognized method, or the algorithm's own error.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, cfg.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// validate applies the checks shared by both algorithms.
func validate(graph *core.Graph) error {
	if graph == nil || !graph.Weighted() || graph.Directed() || graph.HasDirectedEdges() {
		return ErrInvalidGraph
	}

	return nil
}

// edgeKey orders edges by weight, then by numeric edge ID.
type edgeKey struct {
	weight int64
	edge   *core.Edge
}

func lessEdge(a, b edgeKey) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	ai, bi := a.edge.ID, b.edge.ID
	if len(ai) != len(bi) {
		return len(ai) < len(bi)
	}

	return ai < bi
}
