package floyd

import (
	"iter"

	"github.com/katalvlaran/fwpath/core"
)

// Path returns a lazy sequence of vertex keys from u to v inclusive,
// following u → N[u][v] → N[N[u][v]][v] → … → v.
//
// Shape of the sequence:
//   - u == v: [u].
//   - no recorded first hop: [u, v]. Check PathExists before trusting it.
//   - otherwise every vertex of the shortest path.
//   - unknown key: empty.
//
// The walk stops after |V| hops. That bound is only reachable when the
// graph holds a negative cycle; v is still yielded last.
func (n *NextHops[K]) Path(u, v K) iter.Seq[K] {
	return func(yield func(K) bool) {
		ui, vi, ok := n.idx.pair(u, v)
		if !ok {
			return
		}
		if !yield(u) || ui == vi {
			return
		}

		order := len(n.idx.keys)
		cur := ui
		for steps := 0; steps < order; steps++ {
			hop, _ := n.next.At(cur, vi)
			if hop == noHop || hop == vi {
				break
			}
			if !yield(n.idx.keys[hop]) {
				return
			}
			cur = hop
		}
		yield(v)
	}
}

// ReconstructPath is the package-level form of NextHops.Path.
func ReconstructPath[K comparable](next *NextHops[K], u, v K) iter.Seq[K] {
	return next.Path(u, v)
}

// PathExists reports whether a directed path from u to v was found:
// u == v (both known), or a finite distance or a first hop is recorded.
func PathExists[K comparable, W core.Weight](next *NextHops[K], dist *Distances[K, W], u, v K) bool {
	if _, _, ok := dist.idx.pair(u, v); !ok {
		return false
	}
	if u == v {
		return true
	}
	if _, ok := dist.At(u, v); ok {
		return true
	}
	_, ok := next.At(u, v)

	return ok
}

// EdgeWeight returns the shortest-path length from u to v, or false for
// "no path".
func EdgeWeight[K comparable, W core.Weight](dist *Distances[K, W], u, v K) (W, bool) {
	return dist.At(u, v)
}
