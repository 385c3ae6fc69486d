package main

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/medycynka/Fibonacci-Heap/fibheap"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errOrder = errors.New("fibbench: keys extracted out of order")

type runInput struct {
	plan       Plan
	planPath   string
	metricsOut string
}

// runResult summarizes one heap size.
type runResult struct {
	Size      int
	Decreased int
	Roots     int
	Insert    time.Duration
	Decrease  time.Duration
	Extract   time.Duration
}

func newRunCommand(a *app) *cobra.Command {
	in := &runInput{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs insert, decrease-key and extract benchmarks for each heap size.",
		Args:  cobra.NoArgs,
	}
	fs := cmd.Flags()
	fs.IntSliceVar(&in.plan.Sizes, "sizes", []int{10_000, 100_000}, "heap sizes to benchmark")
	fs.BoolVar(&in.plan.Decrease, "decrease", false, "decrease every fourth key before extracting")
	fs.BoolVar(&in.plan.Verify, "verify", false, "validate the heap structure and the extraction order")
	fs.Int64Var(&in.plan.Seed, "seed", 1234, "seed for the random number generator")
	fs.StringVar(&in.planPath, "plan", "", "YAML plan file; explicit flags override its values")
	fs.StringVar(&in.metricsOut, "metrics-out", "", "write prometheus metrics to this file when done")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		plan := in.plan
		if in.planPath != "" {
			file, err := loadPlan(in.planPath)
			if err != nil {
				return err
			}
			plan = mergePlan(cmd.Flags(), plan, file)
		}
		if err := plan.check(); err != nil {
			return err
		}

		m := newBenchMetrics()
		for _, size := range plan.Sizes {
			res, err := runOne(a.log, m, size, plan)
			if err != nil {
				return fmt.Errorf("error running size %d: %w", size, err)
			}
			fmt.Fprintf(a.out, "%s keys: insert %s, decrease %s (%d), extract %s\n",
				humanize.Comma(int64(res.Size)), res.Insert, res.Decrease, res.Decreased, res.Extract)
		}

		if in.metricsOut != "" {
			if err := m.writeFile(in.metricsOut); err != nil {
				return err
			}
			a.log.Info().Str("file", in.metricsOut).Msg("wrote metrics")
		}

		return nil
	}

	return cmd
}

// runOne fills a heap with size random keys, optionally lowers a quarter of
// them, and drains it.
func runOne(log zerolog.Logger, m *benchMetrics, size int, plan Plan) (runResult, error) {
	res := runResult{Size: size}
	r := rand.New(rand.NewSource(plan.Seed))
	h := fibheap.New[int64]()
	handles := make([]*fibheap.Node[int64], size)

	// 1) Insert
	start := time.Now()
	for i := range handles {
		handles[i] = h.Insert(r.Int63n(1 << 40))
	}
	res.Insert = time.Since(start)
	m.ops.WithLabelValues("insert").Add(float64(size))
	m.phase.WithLabelValues("insert").Observe(res.Insert.Seconds())

	// 2) The first extraction consolidates the n singleton roots.
	var (
		prev int64
		k    int64
		err  error
	)
	start = time.Now()
	if prev, err = h.ExtractMin(); err != nil {
		return res, err
	}
	first := time.Since(start)
	handles = handles[:0]
	res.Roots = h.Roots()
	m.roots.Set(float64(res.Roots))
	m.ops.WithLabelValues("extract").Inc()

	// 3) Decrease-key on every fourth surviving node.
	if plan.Decrease {
		h.Walk(func(n *fibheap.Node[int64], _ int) bool {
			handles = append(handles, n)
			return true
		})
		start = time.Now()
		for i := 0; i < len(handles); i += 4 {
			k = handles[i].Key() - r.Int63n(1<<20)
			if k < prev {
				k = prev
			}
			if err = h.DecreaseKey(handles[i], k); err != nil {
				return res, err
			}
			res.Decreased++
		}
		res.Decrease = time.Since(start)
		m.ops.WithLabelValues("decrease_key").Add(float64(res.Decreased))
		m.phase.WithLabelValues("decrease_key").Observe(res.Decrease.Seconds())
	}

	if plan.Verify {
		if err = h.Validate(); err != nil {
			return res, err
		}
	}

	// 4) Drain.
	start = time.Now()
	for !h.IsEmpty() {
		if k, err = h.ExtractMin(); err != nil {
			return res, err
		}
		if plan.Verify && k < prev {
			return res, fmt.Errorf("%w: %d after %d", errOrder, k, prev)
		}
		prev = k
	}
	res.Extract = first + time.Since(start)
	m.ops.WithLabelValues("extract").Add(float64(size - 1))
	m.phase.WithLabelValues("extract").Observe(res.Extract.Seconds())

	var opsPerSec int64
	if secs := res.Extract.Seconds(); secs > 0 {
		opsPerSec = int64(float64(size) / secs)
	}
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	log.Info().
		Int("size", size).
		Dur("insert", res.Insert).
		Dur("decrease", res.Decrease).
		Dur("extract", res.Extract).
		Int("roots_after_consolidate", res.Roots).
		Str("extract_ops_per_sec", humanize.Comma(opsPerSec)).
		Str("mem_allocs", humanize.Bytes(memStats.Alloc)).
		Str("mem_num_gc", humanize.Comma(int64(memStats.NumGC))).
		Msg("finished size")

	return res, nil
}
