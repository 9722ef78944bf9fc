// Package graphgen generates random graphs for property-based testing of
// the search engines, outside the core's own scope. Grounded on lvlath's
// seeded random-graph builder contract and on gonum's distuv distributions
// for the per-edge coin flip.
package graphgen

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dendrolab/parasolve/pkg/bitgraph"
)

// ErdosRenyi builds an undirected graph on n vertices where each of the
// n*(n-1)/2 possible edges is included independently with probability p.
// seed makes the result reproducible across calls and across processes.
func ErdosRenyi(n int, p float64, seed uint64) *bitgraph.Graph {
	coin := distuv.Bernoulli{P: p, Src: rand.NewSource(seed)}

	g := bitgraph.NewGraph(n, false)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if coin.Rand() == 1 {
				_ = g.AddEdge(i, j)
			}
		}
	}
	return g
}
