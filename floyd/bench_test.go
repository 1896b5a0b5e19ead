package floyd_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fwpath/core"
	"github.com/katalvlaran/fwpath/floyd"
)

// buildRandomGraph creates n vertices and roughly n*deg random edges.
// The generator is seeded for reproducibility.
func buildRandomGraph(n, deg int) *core.Graph[int, int64] {
	g := core.NewGraph[int, int64]()
	for k := 0; k < n; k++ {
		_ = g.AddVertex(k)
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < n*deg; i++ {
		_ = g.AddEdge(r.Intn(n), r.Intn(n), int64(1+r.Intn(100)))
	}

	return g
}

func benchmarkRun(b *testing.B, n int) {
	g := buildRandomGraph(n, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		floyd.Run(g)
	}
}

func BenchmarkRun_32(b *testing.B)  { benchmarkRun(b, 32) }
func BenchmarkRun_128(b *testing.B) { benchmarkRun(b, 128) }
