package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCommand(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "extracted min: 0\n")
	// 10 keys consolidate into binomial trees of 2 and 8 nodes: 1(2) and 3(…).
	assert.Contains(t, out, "size: 10, roots: 2\n")
	assert.Contains(t, out, "1 (degree 1)\n  2 (degree 0)\n3 (degree 3)\n")
}

func TestDemo_BadCount(t *testing.T) {
	_, err := execute(t, "demo", "--count", "0")
	assert.Error(t, err)
}

func TestLogFlags(t *testing.T) {
	_, err := execute(t, "demo", "--log-format", "xml")
	assert.ErrorIs(t, err, errLogFormat)

	_, err = execute(t, "demo", "--log-level", "loud")
	assert.Error(t, err)
}

func TestRunOne(t *testing.T) {
	m := newBenchMetrics()
	res, err := runOne(zerolog.Nop(), m, 1000, Plan{Decrease: true, Verify: true, Seed: 1})
	require.NoError(t, err)

	assert.Equal(t, 1000, res.Size)
	assert.Equal(t, 250, res.Decreased, "every fourth of 999 survivors")
	assert.Positive(t, res.Roots)
	assert.Equal(t, float64(1000), testutil.ToFloat64(m.ops.WithLabelValues("insert")))
	assert.Equal(t, float64(1000), testutil.ToFloat64(m.ops.WithLabelValues("extract")))
	assert.Equal(t, float64(250), testutil.ToFloat64(m.ops.WithLabelValues("decrease_key")))
	assert.Equal(t, float64(res.Roots), testutil.ToFloat64(m.roots))
}

func TestRunOne_SingleKey(t *testing.T) {
	res, err := runOne(zerolog.Nop(), newBenchMetrics(), 1, Plan{Decrease: true, Verify: true})
	require.NoError(t, err)
	assert.Zero(t, res.Roots)
	assert.Zero(t, res.Decreased)
}

func TestRun_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.prom")
	out, err := execute(t, "run", "--sizes", "100,2000", "--decrease", "--verify",
		"--metrics-out", path, "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "2,000 keys")

	bz, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(bz)
	assert.Contains(t, text, `fibbench_operations_total{op="insert"} 2100`)
	assert.Contains(t, text, `fibbench_operations_total{op="extract"} 2100`)
	assert.Contains(t, text, "fibbench_phase_duration_seconds_bucket")
	assert.Contains(t, text, "# TYPE fibbench_heap_roots gauge")
}

func TestRun_BadSize(t *testing.T) {
	_, err := execute(t, "run", "--sizes", "10,-1")
	assert.ErrorIs(t, err, errBadPlan)
}

func writePlan(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadPlan(t *testing.T) {
	p, err := loadPlan(writePlan(t, "sizes: [10, 20]\ndecrease: true\nseed: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, Plan{Sizes: []int{10, 20}, Decrease: true, Seed: 9}, p)

	_, err = loadPlan(writePlan(t, "sizes: [0]\n"))
	assert.ErrorIs(t, err, errBadPlan)

	_, err = loadPlan(writePlan(t, "sizes: nope\n"))
	assert.Error(t, err)

	_, err = loadPlan(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergePlan(t *testing.T) {
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	var flags Plan
	fs.IntSliceVar(&flags.Sizes, "sizes", []int{1}, "")
	fs.BoolVar(&flags.Decrease, "decrease", false, "")
	fs.BoolVar(&flags.Verify, "verify", false, "")
	fs.Int64Var(&flags.Seed, "seed", 1, "")
	require.NoError(t, fs.Parse([]string{"--sizes", "5", "--seed", "3"}))

	file := Plan{Sizes: []int{100, 200}, Decrease: true, Verify: true, Seed: 42}
	got := mergePlan(fs, flags, file)
	assert.Equal(t, Plan{Sizes: []int{5}, Decrease: true, Verify: true, Seed: 3}, got)
}

func TestRun_WithPlan(t *testing.T) {
	path := writePlan(t, "sizes: [300]\nverify: true\n")
	out, err := execute(t, "run", "--plan", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "300 keys")
	assert.NotContains(t, out, "10,000 keys")
}

func TestGraph(t *testing.T) {
	out, err := execute(t, "graph", "--vertices", "60", "--edges", "240", "--seed", "3", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "reachable: 60,")
	assert.Contains(t, out, "mst weight: ")
}

func TestRandomGraph(t *testing.T) {
	g, err := randomGraph(30, 100, 5)
	require.NoError(t, err)
	assert.Equal(t, 30, g.VertexCount())
	assert.Equal(t, 100, g.EdgeCount())

	_, err = randomGraph(10, 5, 1)
	assert.ErrorIs(t, err, errGraphShape)
	_, err = randomGraph(4, 7, 1)
	assert.ErrorIs(t, err, errGraphShape)
}

func TestRunGraph_ChainOnly(t *testing.T) {
	g, err := randomGraph(5, 4, 1)
	require.NoError(t, err)

	res, err := runGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Reachable)

	var chain int64
	for _, e := range g.Edges() {
		chain += e.Weight
	}
	assert.Equal(t, chain, res.MSTWeight, "a tree is its own MST")
	assert.Equal(t, chain, res.MaxDist, "the far end of a chain")
}
