package builder

import (
	"fmt"

	"github.com/medycynka/Fibonacci-Heap/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodRandomEdges  = "RandomEdges"

	minPathNodes  = 2
	minCycleNodes = 3
)

// Path builds a simple path P_n: edges (i-1)→i for i = 1..n-1 (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds a simple cycle C_n: edges i→(i+1) mod n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1). Directed graphs get both i→j and j→i.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}

		var u, v string
		for i := 0; i < n; i++ {
			u = cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				v = cfg.idFn(j)
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(g, cfg, methodComplete, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse samples an Erdős–Rényi graph: every admissible pair (i<j, or
// every ordered pair i≠j when directed) is joined with probability p.
// The RNG is required unless p is 0 or 1.
// Complexity: O(n²) trials in a fixed order.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		directed := g.Directed()
		hit := func() bool {
			if cfg.rng == nil {
				return p == 1
			}
			return cfg.rng.Float64() < p
		}
		var start int
		for i := 0; i < n; i++ {
			start = i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomEdges adds m new distinct edges between random pairs of the graph's
// existing vertices, skipping loops and pairs already joined. Compose it
// after Path to get a connected random graph of a given density.
// Complexity: expected O(m) while the graph stays sparse.
func RandomEdges(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if m < 0 {
			return fmt.Errorf("%s: m=%d < min=0: %w", methodRandomEdges, m, ErrTooFewVertices)
		}
		if m == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomEdges, ErrNeedRandSource)
		}

		ids := g.Vertices()
		n := len(ids)
		capacity := n * (n - 1)
		if !g.Directed() {
			capacity /= 2
		}
		if g.EdgeCount()+m > capacity {
			return fmt.Errorf("%s: %d existing + %d new > %d pairs: %w",
				methodRandomEdges, g.EdgeCount(), m, capacity, ErrTooManyEdges)
		}

		var u, v string
		for added := 0; added < m; {
			u, v = ids[cfg.rng.Intn(n)], ids[cfg.rng.Intn(n)]
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if err := addEdge(g, cfg, methodRandomEdges, u, v); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
