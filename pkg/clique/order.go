package clique

import (
	"sort"

	"github.com/dendrolab/parasolve/pkg/bitgraph"
)

// OrderFunction names an initial vertex-ordering heuristic applied to the
// dynamic Graph before it is recoded into a BitGraph. The colouring bound
// (pkg/cco) re-orders the candidate set at every level regardless, but a
// good initial order still shrinks the search by putting likely-high-degree
// vertices where the colouring bound bites hardest first.
type OrderFunction int

const (
	// Degree sorts vertices by descending static degree.
	Degree OrderFunction = iota
	// MinWidth repeatedly removes the minimum-degree remaining vertex and
	// reverses the removal order, the classic "min-width" elimination
	// ordering used for graph colouring and treewidth heuristics.
	MinWidth
	// ExDegree sorts by descending (degree + sum of neighbours' degrees),
	// a static second-order degree heuristic.
	ExDegree
	// DynExDegree recomputes degree and ex-degree against the shrinking
	// set of not-yet-placed vertices at every step, instead of once
	// up front.
	DynExDegree
)

func (o OrderFunction) String() string {
	switch o {
	case Degree:
		return "Degree"
	case MinWidth:
		return "MinWidth"
	case ExDegree:
		return "ExDegree"
	case DynExDegree:
		return "DynExDegree"
	default:
		return "Unknown"
	}
}

// VertexOrder computes a permutation of [0, g.Size()) under fn, suitable as
// the order argument to bitgraph.FromGraphWithOrder.
func VertexOrder(g *bitgraph.Graph, fn OrderFunction) []int {
	switch fn {
	case MinWidth:
		return minWidthOrder(g)
	case ExDegree:
		return exDegreeOrder(g)
	case DynExDegree:
		return dynExDegreeOrder(g)
	default:
		return degreeOrder(g)
	}
}

// degreeOrder sorts vertices by descending degree, ties broken by
// ascending id so repeated calls over the same graph are deterministic.
func degreeOrder(g *bitgraph.Graph) []int {
	n := g.Size()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if di, dj := g.Degree(i), g.Degree(j); di != dj {
			return di > dj
		}
		return i < j
	})
	return order
}

// minWidthOrder removes, one at a time, the lowest-degree vertex still
// remaining (ties broken by lowest id), against the degree induced by the
// vertices not yet removed, then reverses the removal sequence.
func minWidthOrder(g *bitgraph.Graph) []int {
	n := g.Size()
	active := make([]bool, n)
	degree := make([]int, n)
	neighbours := make([][]int, n)
	for v := 0; v < n; v++ {
		active[v] = true
		degree[v] = g.Degree(v)
		neighbours[v] = g.Neighbours(v)
	}

	removal := make([]int, 0, n)
	for len(removal) < n {
		best := -1
		for v := 0; v < n; v++ {
			if !active[v] {
				continue
			}
			if best == -1 || degree[v] < degree[best] {
				best = v
			}
		}
		active[best] = false
		removal = append(removal, best)
		for _, u := range neighbours[best] {
			if active[u] {
				degree[u]--
			}
		}
	}

	order := make([]int, n)
	for i, v := range removal {
		order[n-1-i] = v
	}
	return order
}

// exDegreeOrder sorts by descending (degree + sum of neighbour degrees),
// computed once over the whole graph, ties broken by degree then id.
func exDegreeOrder(g *bitgraph.Graph) []int {
	n := g.Size()
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = g.Degree(v)
	}
	exdeg := make([]int, n)
	for v := 0; v < n; v++ {
		sum := 0
		for _, u := range g.Neighbours(v) {
			sum += degree[u]
		}
		exdeg[v] = degree[v] + sum
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if exdeg[i] != exdeg[j] {
			return exdeg[i] > exdeg[j]
		}
		if degree[i] != degree[j] {
			return degree[i] > degree[j]
		}
		return i < j
	})
	return order
}

// dynExDegreeOrder repeatedly picks the not-yet-placed vertex with the
// highest (degree + ex-degree) computed against only the other not-yet
// -placed vertices, recomputing both at every step.
func dynExDegreeOrder(g *bitgraph.Graph) []int {
	n := g.Size()
	active := make([]bool, n)
	neighbours := make([][]int, n)
	for v := 0; v < n; v++ {
		active[v] = true
		neighbours[v] = g.Neighbours(v)
	}

	order := make([]int, 0, n)
	degree := make([]int, n)
	for len(order) < n {
		for v := 0; v < n; v++ {
			if !active[v] {
				continue
			}
			d := 0
			for _, u := range neighbours[v] {
				if active[u] {
					d++
				}
			}
			degree[v] = d
		}

		best, bestScore, bestDeg := -1, -1, -1
		for v := 0; v < n; v++ {
			if !active[v] {
				continue
			}
			exsum := 0
			for _, u := range neighbours[v] {
				if active[u] {
					exsum += degree[u]
				}
			}
			score := degree[v] + exsum
			if best == -1 || score > bestScore || (score == bestScore && degree[v] > bestDeg) {
				best, bestScore, bestDeg = v, score, degree[v]
			}
		}
		active[best] = false
		order = append(order, best)
	}
	return order
}
