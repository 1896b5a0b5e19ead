// Package fwpath computes all-pairs shortest paths on small directed,
// weighted graphs and exposes them through an interactive text menu.
//
// Layout:
//
//	core/       — Graph, Vertex, Edge: keyed vertices, at most one edge per ordered pair
//	matrix/     — Square: dense row-major n×n table used by the engine
//	floyd/      — Floyd–Warshall: distance table, next-hop table, path reconstruction
//	config/     — YAML configuration, graph seed files, zerolog construction
//	menu/       — command parser and interactive session
//	cmd/fwpath/ — the binary
//
// Quick start:
//
//	g := core.NewGraph[int, int64]()
//	_ = g.AddVertex(1)
//	_ = g.AddVertex(2)
//	_ = g.AddEdge(1, 2, 3)
//
//	dist, next := floyd.Run(g)
//	d, ok := dist.At(1, 2)           // 3, true
//	for k := range next.Path(1, 2) { // 1, 2
//		_ = k
//	}
//
// "No path" is never encoded as a numeric sentinel: Distances.At reports it
// with ok == false. A path whose length does not fit the weight type
// (integer wrap-around, float ±Inf) is dropped during relaxation, so such a
// pair reads as unreachable unless a representable path exists.
//
// Negative edge weights are accepted. Negative cycles are not detected;
// distances on such graphs are unspecified, but path walks always terminate.
package fwpath
