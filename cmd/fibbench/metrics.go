package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// benchMetrics holds the collectors of one fibbench process. They live in a
// private registry that is dumped in the text exposition format at the end.
type benchMetrics struct {
	reg   *prometheus.Registry
	ops   *prometheus.CounterVec
	phase *prometheus.HistogramVec
	roots prometheus.Gauge
}

func newBenchMetrics() *benchMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &benchMetrics{
		reg: reg,
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fibbench_operations_total",
			Help: "number of heap operations performed",
		}, []string{"op"}),
		phase: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fibbench_phase_duration_seconds",
			Help:    "wall time of one benchmark phase",
			Buckets: prometheus.ExponentialBuckets(1e-4, 4, 10),
		}, []string{"phase"}),
		roots: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fibbench_heap_roots",
			Help: "root list length after the first consolidation of the last run",
		}),
	}
}

func (m *benchMetrics) writeFile(path string) error {
	families, err := m.reg.Gather()
	if err != nil {
		return fmt.Errorf("error gathering metrics: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating metrics file: %w", err)
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.FmtText)
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return fmt.Errorf("error encoding %s: %w", mf.GetName(), err)
		}
	}

	return f.Sync()
}
