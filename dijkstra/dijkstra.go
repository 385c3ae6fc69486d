package dijkstra

import (
	"fmt"
	"math"

	"github.com/medycynka/Fibonacci-Heap/core"
	"github.com/medycynka/Fibonacci-Heap/fibheap"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath is set, nil otherwise.
//     prev[v] == u means the shortest path to v goes through u; "" for the
//     source and for unreachable vertices.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity: O(E + V log V) time, O(V) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// Fail fast on negative weights before touching any state.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// item is the heap key: tentative distance, then vertex ID for a stable order
// among equal distances.
type item struct {
	dist int64
	id   string
}

func lessItem(a, b item) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.id < b.id
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool

	pq      *fibheap.Heap[item]
	handles map[string]*fibheap.Node[item] // queued vertex → heap node
}

// newRunner sets dist[v] = +∞ for every vertex, dist[Source] = 0, and
// queues the source.
func newRunner(g *core.Graph, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      fibheap.NewFunc[item](lessItem),
		handles: make(map[string]*fibheap.Node[item]),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}

	r.dist[cfg.Source] = 0
	r.handles[cfg.Source] = r.pq.Insert(item{dist: 0, id: cfg.Source})

	return r
}

// process repeatedly settles the closest queued vertex and relaxes its edges
// until the queue is empty or the closest distance exceeds MaxDistance.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		top, err := r.pq.ExtractMin()
		if err != nil {
			return err
		}
		delete(r.handles, top.id)

		if top.dist > r.options.MaxDistance {
			break
		}
		r.visited[top.id] = true

		if err = r.relax(top.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unsettled neighbor of u.
// A vertex already in the queue is moved forward with DecreaseKey; a newly
// discovered one is inserted.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	var (
		v       string
		w       int64
		newDist int64
	)
	for _, e := range neighbors {
		v = e.Opposite(u)
		w = e.Weight
		if r.visited[v] || w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}
		// Saturate instead of overflowing on huge weights.
		if w > math.MaxInt64-du {
			continue
		}

		newDist = du + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		if n, queued := r.handles[v]; queued {
			if err = r.pq.DecreaseKey(n, item{dist: newDist, id: v}); err != nil {
				return fmt.Errorf("dijkstra: decrease %q: %w", v, err)
			}
			continue
		}
		r.handles[v] = r.pq.Insert(item{dist: newDist, id: v})
	}

	return nil
}
