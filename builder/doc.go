// Package builder assembles deterministic *core.Graph fixtures for tests,
// examples and the fibbench graph workload.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates the graph,
// resolves the functional options into a builderConfig and applies every
// Constructor in order. Stochastic constructors draw from the seeded RNG, so
// the same inputs, seed and constructor order always yield the same graph.
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 100)},
//		builder.Path(1000),
//		builder.RandomEdges(4000),
//	)
//
// Constructors never panic; they return the sentinels in errors.go wrapped
// with the constructor name. Option constructors panic on meaningless input.
package builder
