// Package floyd computes all-pairs shortest paths with the Floyd–Warshall
// dynamic program and reconstructs the paths from a successor table.
//
// Given a core.Graph snapshot with vertex order V, Run fills two |V|×|V|
// tables:
//
//	D[u][w] – length of the shortest directed path u→w ("no path" if none)
//	N[u][w] – first hop on that path ("none" for u == w or no path)
//
// using intermediate vertices p in the fixed order of V. Paths found at pass
// p only route through intermediates already processed.
//
// Complexity:
//
//	– Time:  O(V³)
//	– Space: O(V²)
//
// Numeric semantics:
//
//	– "No path" is a reachability bit, not a numeric value, so integer weights
//	  never wrap through an infinity sentinel.
//	– Relaxation uses strict "<"; ties keep the earlier path.
//	– Negative weights are allowed. Negative cycles are not detected; their
//	  distances reflect only the bounded passes of the algorithm.
//	– D[v][v] = 0 and N[v][v] = none for every vertex; self-loop edges carry
//	  no path information.
//
// Queries:
//
//	Distances.At(u, v) / EdgeWeight(dist, u, v)     – (length, true) or (zero, false)
//	NextHops.At(u, v)                               – (first hop, true) or (zero, false)
//	NextHops.Path(u, v) / ReconstructPath(next,u,v) – iter.Seq of keys u … v
//	PathExists(next, dist, u, v)                    – u == v, or a path was found
//
// Example usage:
//
//	dist, next := floyd.Run(g)
//	if floyd.PathExists(next, dist, 1, 4) {
//	    d, _ := dist.At(1, 4)
//	    for k := range next.Path(1, 4) {
//	        fmt.Print(k, " ")
//	    }
//	    fmt.Println("distance", d)
//	}
package floyd
