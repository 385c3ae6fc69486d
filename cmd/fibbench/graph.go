package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/medycynka/Fibonacci-Heap/builder"
	"github.com/medycynka/Fibonacci-Heap/core"
	"github.com/medycynka/Fibonacci-Heap/dijkstra"
	"github.com/medycynka/Fibonacci-Heap/prim_kruskal"
	"github.com/spf13/cobra"
)

var (
	errGraphShape  = errors.New("fibbench: impossible graph shape")
	errMSTMismatch = errors.New("fibbench: prim and kruskal disagree")
)

// graphResult summarizes one graph run.
type graphResult struct {
	Reachable int
	MaxDist   int64
	MSTWeight int64
	Dijkstra  time.Duration
	Prim      time.Duration
	Kruskal   time.Duration
}

func newGraphCommand(a *app) *cobra.Command {
	var (
		vertices int
		edges    int
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Runs Dijkstra, Prim and Kruskal on a random connected graph.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := randomGraph(vertices, edges, seed)
			if err != nil {
				return err
			}
			a.log.Info().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).Msg("built graph")

			res, err := runGraph(g)
			if err != nil {
				return err
			}
			a.log.Info().
				Dur("dijkstra", res.Dijkstra).
				Dur("prim", res.Prim).
				Dur("kruskal", res.Kruskal).
				Msg("finished graph")

			fmt.Fprintf(a.out, "reachable: %d, max distance: %d\n", res.Reachable, res.MaxDist)
			fmt.Fprintf(a.out, "mst weight: %d\n", res.MSTWeight)

			return nil
		},
	}
	cmd.Flags().IntVar(&vertices, "vertices", 1000, "number of vertices")
	cmd.Flags().IntVar(&edges, "edges", 5000, "number of undirected edges, at least vertices-1")
	cmd.Flags().Int64Var(&seed, "seed", 1234, "seed for the random number generator")

	return cmd
}

// randomGraph builds a connected, weighted, undirected graph: a path
// V0—V1—…—V(n-1) plus distinct random edges up to m in total.
func randomGraph(n, m int, seed int64) (*core.Graph, error) {
	if n < 1 || m < n-1 || m > n*(n-1)/2 {
		return nil, fmt.Errorf("%w: %d vertices, %d edges", errGraphShape, n, m)
	}

	spine := builder.Complete(1)
	if n > 1 {
		spine = builder.Path(n)
	}

	return builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithIDScheme(builder.PrefixIDFn("V")),
			builder.WithUniformWeight(1, 100),
		},
		spine,
		builder.RandomEdges(m-(n-1)),
	)
}

func runGraph(g *core.Graph) (graphResult, error) {
	var res graphResult

	start := time.Now()
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("V0"))
	if err != nil {
		return res, err
	}
	res.Dijkstra = time.Since(start)
	for _, d := range dist {
		if d == math.MaxInt64 {
			continue
		}
		res.Reachable++
		res.MaxDist = max(res.MaxDist, d)
	}

	start = time.Now()
	_, primTotal, err := prim_kruskal.Prim(g, "V0")
	if err != nil {
		return res, err
	}
	res.Prim = time.Since(start)

	start = time.Now()
	_, kruskalTotal, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return res, err
	}
	res.Kruskal = time.Since(start)

	if primTotal != kruskalTotal {
		return res, fmt.Errorf("%w: %d != %d", errMSTMismatch, primTotal, kruskalTotal)
	}
	res.MSTWeight = primTotal

	return res, nil
}
