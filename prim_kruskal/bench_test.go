package prim_kruskal_test

import (
	"testing"

	"github.com/medycynka/Fibonacci-Heap/prim_kruskal"
)

// BenchmarkKruskal measures a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the same graph, starting from "V0".
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, "V0")
	}
}
