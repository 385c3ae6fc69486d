package builder_test

import (
	"math/rand"
	"testing"

	"github.com/medycynka/Fibonacci-Heap/builder"
	"github.com/medycynka/Fibonacci-Heap/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

func edgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}

	return m
}

var weighted = []core.GraphOption{core.WithWeighted()}

func TestBuilders_Functional(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		want  []edgeKey
	}{
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			want: []edgeKey{{"0", "1"}, {"1", "2"}, {"2", "3"}}},
		{name: "Cycle(3)", ctor: builder.Cycle(3), wantV: 3, wantE: 3,
			want: []edgeKey{{"0", "1"}, {"1", "2"}, {"2", "0"}}},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			want: []edgeKey{{"0", "4"}, {"3", "4"}}},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
		{name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15},
		{name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(weighted, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())

			edges := edgeWeights(g)
			for _, k := range tc.want {
				assert.Equal(t, builder.DefaultEdgeWeight, edges[k], "edge %v", k)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	cases := map[string]struct {
		ctor builder.Constructor
		want error
	}{
		"path":       {builder.Path(1), builder.ErrTooFewVertices},
		"cycle":      {builder.Cycle(2), builder.ErrTooFewVertices},
		"complete":   {builder.Complete(0), builder.ErrTooFewVertices},
		"sparse-p":   {builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		"sparse-rng": {builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		"edges-rng":  {builder.RandomEdges(1), builder.ErrNeedRandSource},
		"edges-neg":  {builder.RandomEdges(-1), builder.ErrTooFewVertices},
		"nil-ctor":   {nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		_, err := builder.BuildGraph(weighted, nil, tc.ctor)
		assert.ErrorIs(t, err, tc.want, name)
	}
}

func TestRandomEdges(t *testing.T) {
	g, err := builder.BuildGraph(weighted,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithIDScheme(builder.PrefixIDFn("V"))},
		builder.Path(20), builder.RandomEdges(50))
	require.NoError(t, err)
	assert.Equal(t, 20, g.VertexCount())
	assert.Equal(t, 69, g.EdgeCount())
	assert.True(t, g.HasVertex("V19"))

	_, err = builder.BuildGraph(weighted, []builder.BuilderOption{builder.WithSeed(3)},
		builder.Path(4), builder.RandomEdges(4))
	assert.ErrorIs(t, err, builder.ErrTooManyEdges)

	// Filling every remaining pair must terminate.
	g, err = builder.BuildGraph(weighted, []builder.BuilderOption{builder.WithSeed(3)},
		builder.Path(5), builder.RandomEdges(6))
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount())
}

func TestDeterminism(t *testing.T) {
	build := func() map[edgeKey]int64 {
		g, err := builder.BuildGraph(weighted,
			[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(1, 100)},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return edgeWeights(g)
	}
	first := build()
	assert.Equal(t, first, build())
	for k, w := range first {
		assert.True(t, w >= 1 && w <= 100, "weight of %v", k)
	}
}

func TestDirectedComplete(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithWeighted(), core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithConstantWeight(4)}, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())
	assert.Equal(t, int64(4), edgeWeights(g)[edgeKey{"3", "0"}])
}

func TestUnweightedGetsZero(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(9)}, builder.Path(3))
	require.NoError(t, err)
	for _, w := range edgeWeights(g) {
		assert.Zero(t, w)
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}

func TestUniformWeightFn_NoRNG(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 8)(nil))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 3)(rand.New(rand.NewSource(1))))
}
