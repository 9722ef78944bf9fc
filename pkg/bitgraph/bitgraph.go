package bitgraph

import "github.com/dendrolab/parasolve/pkg/bitset"

// BitGraph is a square adjacency bitmatrix: n vertices, each row a
// FixedBitSet of exactly w words (spec §3 BitGraph<W>). row[i] contains j
// iff i and j are adjacent; a self-loop is stored iff the edge i==i was
// added explicitly. Only columns [0,n) of a row are meaningful.
type BitGraph struct {
	n    int
	w    int
	rows []bitset.FixedBitSet
}

// NewBitGraph allocates an empty (n=0) BitGraph whose rows, once Resize is
// called, will each be backed by exactly w words.
func NewBitGraph(w int) *BitGraph {
	return &BitGraph{w: w}
}

// Resize grows the graph to exactly n vertices, zero-initialising every
// row. n must not exceed w*bitset.WordBits.
func (bg *BitGraph) Resize(n int) {
	bg.n = n
	bg.rows = make([]bitset.FixedBitSet, n)
	for i := range bg.rows {
		bg.rows[i] = bitset.New(bg.w)
	}
}

// N returns the vertex count.
func (bg *BitGraph) N() int { return bg.n }

// W returns the per-row word count.
func (bg *BitGraph) W() int { return bg.w }

// AddEdge sets both directions of the undirected edge (i,j). i==j records
// a self-loop.
func (bg *BitGraph) AddEdge(i, j int) {
	bg.rows[i].Set(j)
	bg.rows[j].Set(i)
}

// Adjacent reports whether i and j are adjacent (or i==j has a loop).
func (bg *BitGraph) Adjacent(i, j int) bool {
	return bg.rows[i].Test(j)
}

// Degree returns the popcount of row i restricted to [0,n) — valid because
// rows are allocated with bits beyond n never set.
func (bg *BitGraph) Degree(i int) int {
	return bg.rows[i].Popcount()
}

// Row returns the live FixedBitSet for vertex i. Mutating the result
// mutates the graph; callers that need an independent copy must Clone it.
func (bg *BitGraph) Row(i int) bitset.FixedBitSet {
	return bg.rows[i]
}

// IntersectWithRow sets q &= row[i].
func (bg *BitGraph) IntersectWithRow(i int, q bitset.FixedBitSet) {
	q.IntersectWith(bg.rows[i])
}

// IntersectWithRowComplement sets q &= ^row[i], masked to [0,n) by
// construction since q itself never carries bits at or beyond n once it
// was produced via SetUpTo or another masked bitset.
func (bg *BitGraph) IntersectWithRowComplement(i int, q bitset.FixedBitSet) {
	q.IntersectWithComplement(bg.rows[i])
}

// FullSet returns a FixedBitSet with bits [0,n) set, suitable as the
// initial candidate set P for a branch-and-bound search over this graph.
func (bg *BitGraph) FullSet() bitset.FixedBitSet {
	b := bitset.New(bg.w)
	b.SetUpTo(bg.n)
	return b
}

// FromGraph recodes g into a BitGraph using the identity vertex order.
// It is a thin wrapper over FromGraphWithOrder kept for callers (SGI, MCS)
// that have no reason to reorder vertices.
func FromGraph(g *Graph) (*BitGraph, DispatchResult, error) {
	order := make([]int, g.Size())
	for i := range order {
		order[i] = i
	}
	return FromGraphWithOrder(g, order)
}

// FromGraphWithOrder recodes g into a BitGraph whose vertex i is
// g's vertex order[i]. order must be a permutation of [0, g.Size()).
// Returns the DispatchResult used to size the BitGraph so callers can
// detect the "too large" condition (spec §4.1) without inspecting the
// BitGraph itself.
func FromGraphWithOrder(g *Graph, order []int) (*BitGraph, DispatchResult, error) {
	d := Dispatch(g.Size())
	if d.TooLarge {
		return nil, d, nil
	}
	bg := NewBitGraph(d.W)
	bg.Resize(g.Size())

	// newIndex[original] = position in order
	newIndex := make([]int, g.Size())
	for pos, orig := range order {
		newIndex[orig] = pos
	}

	for pos, orig := range order {
		if g.HasLoop(orig) {
			bg.AddEdge(pos, pos)
		}
		for _, nb := range g.Neighbours(orig) {
			npos := newIndex[nb]
			if npos > pos {
				bg.AddEdge(pos, npos)
			}
		}
	}
	return bg, d, nil
}
