// Package floyd defines the tables and options of the Floyd–Warshall
// all-pairs shortest-path engine.
package floyd

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/fwpath/core"
	"github.com/katalvlaran/fwpath/matrix"
	"github.com/rs/zerolog"
)

// noHop marks "no next hop" in the successor table.
const noHop = -1

// Options configures a Run.
//
// Logger – receives one debug record per run (vertices, edges, relaxations, overflows,
// elapsed). Default is zerolog.Nop().
type Options struct {
	Logger zerolog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger routes run diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// keyIndex maps vertex keys to table positions for one snapshot.
// It is shared by the distance and next-hop tables of the same run.
type keyIndex[K comparable] struct {
	keys []K
	pos  map[K]int
}

func newKeyIndex[K comparable](keys []K) *keyIndex[K] {
	pos := make(map[K]int, len(keys))
	for i, k := range keys {
		pos[k] = i
	}

	return &keyIndex[K]{keys: keys, pos: pos}
}

// pair resolves both keys, reporting false if either is unknown.
func (x *keyIndex[K]) pair(u, v K) (int, int, bool) {
	i, ok := x.pos[u]
	if !ok {
		return 0, 0, false
	}
	j, ok := x.pos[v]
	if !ok {
		return 0, 0, false
	}

	return i, j, true
}

// Distances is the read-only |V|×|V| shortest-path length table of one run.
//
// "No path" is carried by a reachability bit per cell, never by a numeric
// sentinel, so unreachable cells can not overflow into finite values.
type Distances[K comparable, W core.Weight] struct {
	idx   *keyIndex[K]
	dist  *matrix.Square[W]
	reach *bitset.BitSet // bit u*n+w set ⇔ dist(u,w) is finite
}

// NextHops is the read-only |V|×|V| successor table of one run.
// Cell (u, v) holds the position of the first hop on the shortest u→v path,
// or noHop.
type NextHops[K comparable] struct {
	idx  *keyIndex[K]
	next *matrix.Square[int]
}

// Order returns |V| at snapshot time.
func (d *Distances[K, W]) Order() int { return len(d.idx.keys) }

// Keys returns the snapshot vertex keys in table order.
func (d *Distances[K, W]) Keys() []K { return slices.Clone(d.idx.keys) }

// At returns the shortest distance from u to v. The boolean is false when
// no path exists or either key was not a vertex at snapshot time.
// Complexity: O(1).
func (d *Distances[K, W]) At(u, v K) (W, bool) {
	var zero W
	i, j, ok := d.idx.pair(u, v)
	if !ok || !d.reach.Test(uint(i*len(d.idx.keys)+j)) {
		return zero, false
	}
	w, _ := d.dist.At(i, j)

	return w, true
}

// Equal reports whether both tables hold the same keys and cells.
func (d *Distances[K, W]) Equal(other *Distances[K, W]) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !slices.Equal(d.idx.keys, other.idx.keys) || !d.reach.Equal(other.reach) {
		return false
	}
	// Only finite cells are meaningful; unreachable cells hold zero in both.
	return d.dist.Equal(other.dist)
}

// Order returns |V| at snapshot time.
func (n *NextHops[K]) Order() int { return len(n.idx.keys) }

// Keys returns the snapshot vertex keys in table order.
func (n *NextHops[K]) Keys() []K { return slices.Clone(n.idx.keys) }

// At returns the first hop on the shortest u→v path. The boolean is false
// for "none": u == v, no path, or an unknown key.
// Complexity: O(1).
func (n *NextHops[K]) At(u, v K) (K, bool) {
	var zero K
	i, j, ok := n.idx.pair(u, v)
	if !ok {
		return zero, false
	}
	hop, _ := n.next.At(i, j)
	if hop == noHop {
		return zero, false
	}

	return n.idx.keys[hop], true
}

// Equal reports whether both tables hold the same keys and cells.
func (n *NextHops[K]) Equal(other *NextHops[K]) bool {
	if n == nil || other == nil {
		return n == other
	}

	return slices.Equal(n.idx.keys, other.idx.keys) && n.next.Equal(other.next)
}
