// SPDX-License-Identifier: MIT
// Package: floyd
//
// Purpose:
//   - Floyd–Warshall APSP over a core.Graph snapshot with next-hop tracking.
//   - Deterministic loop order p → u → w; strict improvement only.
//
// Contract:
//   - Total over any graph (nil is treated as empty); never returns an error.
//   - Negative weights are accepted; negative cycles are not detected.

package floyd

import (
	"math"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/fwpath/core"
	"github.com/katalvlaran/fwpath/matrix"
)

// Run computes all-pairs shortest paths of g and returns the distance and
// next-hop tables.
//
// Implementation:
//   - Stage 1: Snapshot the vertex order of g (insertion order).
//   - Stage 2: Every cell starts unreachable with no next hop.
//   - Stage 3: Each edge (u, v, w) sets D[u][v] = w and N[u][v] = v.
//   - Stage 4: Each diagonal cell becomes D[v][v] = 0 with no next hop,
//     overriding any self-loop.
//   - Stage 5: For each intermediate p in snapshot order, for each u, w:
//     if D[u][p] + D[p][w] < D[u][w] then D[u][w] = that sum and
//     N[u][w] = N[u][p].
//
// Behavior highlights:
//   - A candidate is only formed when both halves are reachable, so
//     "infinity" never takes part in arithmetic.
//   - A candidate whose sum does not fit W (integer wrap-around or a float
//     sum reaching ±Inf) is discarded, never stored.
//   - The returned tables are immutable snapshots; mutate g afterwards and
//     they stay as they were.
//
// Complexity:
//   - Time O(V³), Space O(V²).
func Run[K comparable, W core.Weight](g *core.Graph[K, W], opts ...Option) (*Distances[K, W], *NextHops[K]) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	start := time.Now()

	// Stage 1: snapshot.
	var keys []K
	edges := 0
	if g != nil {
		keys = make([]K, 0, g.VertexCount())
		for v := range g.Vertices() {
			keys = append(keys, v.Key())
		}
		edges = g.EdgeCount()
	}
	n := len(keys)

	// Stage 2: blank tables. NewSquare only fails for n < 0.
	dist, _ := matrix.NewSquare[W](n, 0)
	next, _ := matrix.NewSquare(n, noHop)
	reach := bitset.New(uint(n * n))

	var (
		u, p, w    int
		du, dp     []W   // rows of D for u and p
		nu         []int // row of N for u
		dup, cand  W
		hop        int
		cell       uint
		ok         bool
		relaxCount int
		overflows  int
	)

	// Stage 3: direct edges. Snapshot position equals core arena index.
	for u = 0; u < n; u++ {
		v, _ := g.VertexAt(u)
		du, _ = dist.Row(u)
		nu, _ = next.Row(u)
		for nb, weight := range v.Neighbors() {
			w = nb.Index()
			du[w] = weight
			nu[w] = w
			reach.Set(uint(u*n + w))
		}
	}

	// Stage 4: zero diagonal, no next hop.
	for u = 0; u < n; u++ {
		_ = dist.Set(u, u, 0)
		_ = next.Set(u, u, noHop)
		reach.Set(uint(u*n + u))
	}

	// Stage 5: relaxation. Each p pass completes before the next begins.
	for p = 0; p < n; p++ {
		dp, _ = dist.Row(p)
		for u = 0; u < n; u++ {
			if !reach.Test(uint(u*n + p)) { // u cannot reach p
				continue
			}
			du, _ = dist.Row(u)
			nu, _ = next.Row(u)
			dup = du[p]
			hop = nu[p]
			for w = 0; w < n; w++ {
				if !reach.Test(uint(p*n + w)) { // p cannot reach w
					continue
				}
				if cand, ok = addWeights(dup, dp[w]); !ok {
					overflows++
					continue
				}
				cell = uint(u*n + w)
				if reach.Test(cell) && !(cand < du[w]) {
					continue
				}
				du[w] = cand
				nu[w] = hop
				reach.Set(cell)
				relaxCount++
			}
		}
	}

	cfg.Logger.Debug().
		Int("vertices", n).
		Int("edges", edges).
		Int("relaxations", relaxCount).
		Int("overflows", overflows).
		Dur("elapsed", time.Since(start)).
		Msg("floyd-warshall complete")

	idx := newKeyIndex(keys)

	return &Distances[K, W]{idx: idx, dist: dist, reach: reach},
		&NextHops[K]{idx: idx, next: next}
}

// addWeights returns a+b and whether the sum is representable in W.
// Integer sums that wrap and float sums that reach ±Inf report false.
func addWeights[W core.Weight](a, b W) (W, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return sum, false
	}
	if math.IsInf(float64(sum), 0) {
		return sum, false
	}

	return sum, true
}
