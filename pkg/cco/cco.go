// Package cco implements the six colour-class ordering variants used as
// the Tomita-style upper bound inside the max-clique branch-and-bound
// (spec §4.2). Each variant produces two parallel arrays over a candidate
// set P: p_order, a permutation of P's members, and p_bounds, a
// non-decreasing colour count such that the clique extensible from the
// first i+1 entries of p_order is bounded by current_depth + p_bounds[i].
//
// Bodies are grounded on original_source/cco/cco_mixin.hh's six
// colour_class_order overloads, with the template bool inverse_ and the
// thread_local auxiliary buffer replaced by a runtime Config.Inverse flag
// and internal/scratch's pool respectively.
package cco

import (
	"errors"

	"github.com/dendrolab/parasolve/internal/scratch"
	"github.com/dendrolab/parasolve/pkg/bitset"
)

// Variant selects one of the six named colour-class ordering strategies.
// RepairAll/RepairSelected each also offer a Defer1 tail-holding flavour,
// so eight concrete tags exist under the six strategies spec §4.2 names.
type Variant int

const (
	None Variant = iota
	Defer1
	RepairAll
	RepairAllDefer1
	RepairSelected
	RepairSelectedDefer1
	RepairSelectedFast
	RepairAllFast
)

func (v Variant) String() string {
	switch v {
	case None:
		return "None"
	case Defer1:
		return "Defer1"
	case RepairAll:
		return "RepairAll"
	case RepairAllDefer1:
		return "RepairAllDefer1"
	case RepairSelected:
		return "RepairSelected"
	case RepairSelectedDefer1:
		return "RepairSelectedDefer1"
	case RepairSelectedFast:
		return "RepairSelectedFast"
	case RepairAllFast:
		return "RepairAllFast"
	default:
		return "Unknown"
	}
}

func (v Variant) usesRepair() bool {
	switch v {
	case RepairAll, RepairAllDefer1, RepairSelected, RepairSelectedDefer1, RepairSelectedFast, RepairAllFast:
		return true
	default:
		return false
	}
}

// ErrInverseRepairUnsupported is returned when Config.Inverse is combined
// with a repair-based Variant. spec §9's open question leaves this
// combination unimplemented in the source this module is grounded on;
// this module keeps the same restriction rather than guessing semantics.
var ErrInverseRepairUnsupported = errors.New("cco: inverse mode with a repair-based variant is not implemented")

// Adjacency is the graph surface a colouring call needs: adjacency test
// plus row intersection against a live candidate set. *bitgraph.BitGraph
// satisfies this directly.
type Adjacency interface {
	Adjacent(i, j int) bool
	IntersectWithRow(i int, q bitset.FixedBitSet)
	IntersectWithRowComplement(i int, q bitset.FixedBitSet)
}

// Config selects a variant and its parameters.
type Config struct {
	Variant Variant
	// Inverse colours by adjacency instead of non-adjacency (clique vs.
	// independent-set framing). Unsupported together with a repair
	// variant; see ErrInverseRepairUnsupported.
	Inverse bool
	// Delta is the colour-class-count threshold below which
	// RepairSelected/RepairSelectedDefer1/RepairSelectedFast skip the
	// repair step entirely. Unused by the non-selective variants.
	Delta int
}

// Order runs cfg.Variant over candidate set p, returning p_order and
// p_bounds, both of length p.Popcount(). p is read-only; the variants
// that need a mutable working copy clone it internally.
func Order(g Adjacency, p bitset.FixedBitSet, cfg Config) ([]int, []int, error) {
	if cfg.Inverse && cfg.Variant.usesRepair() {
		return nil, nil, ErrInverseRepairUnsupported
	}
	switch cfg.Variant {
	case None:
		o, b := greedyOrder(g, p, cfg.Inverse)
		return o, b, nil
	case Defer1:
		o, b := defer1Order(g, p, cfg.Inverse)
		return o, b, nil
	case RepairAll:
		o, b := repairOrder(g, p, cfg.Delta, false, false)
		return o, b, nil
	case RepairAllDefer1:
		o, b := repairOrder(g, p, cfg.Delta, false, true)
		return o, b, nil
	case RepairSelected:
		o, b := repairOrder(g, p, cfg.Delta, true, false)
		return o, b, nil
	case RepairSelectedDefer1:
		o, b := repairOrder(g, p, cfg.Delta, true, true)
		return o, b, nil
	case RepairSelectedFast:
		o, b := repairFastOrder(g, p, cfg.Delta, true)
		return o, b, nil
	case RepairAllFast:
		o, b := repairFastOrder(g, p, cfg.Delta, false)
		return o, b, nil
	default:
		return nil, nil, errors.New("cco: unknown variant")
	}
}

// greedyOrder is the "None" variant: repeatedly pick the lowest-index
// uncoloured vertex, open a colour, and extend it with every remaining
// non-neighbour (neighbour, in inverse mode).
func greedyOrder(g Adjacency, p bitset.FixedBitSet, inverse bool) ([]int, []int) {
	n := p.Popcount()
	order := make([]int, 0, n)
	bounds := make([]int, 0, n)

	pLeft := p.Clone()
	q := bitset.New(pLeft.Words())
	colour := 0
	for !pLeft.Empty() {
		colour++
		q.CopyFrom(pLeft)
		for !q.Empty() {
			v := q.FirstSetBit()
			pLeft.Unset(v)
			q.Unset(v)
			if inverse {
				g.IntersectWithRow(v, q)
			} else {
				g.IntersectWithRowComplement(v, q)
			}
			order = append(order, v)
			bounds = append(bounds, colour)
		}
	}
	return order, bounds
}

// defer1Order is "None" with every singleton colour class held back and
// appended at the end under a fresh colour, so the easiest-to-prune
// vertices are examined first during the branch-and-bound's reverse walk.
func defer1Order(g Adjacency, p bitset.FixedBitSet, inverse bool) ([]int, []int) {
	n := p.Popcount()
	order := make([]int, 0, n)
	bounds := make([]int, 0, n)
	var deferred []int

	pLeft := p.Clone()
	q := bitset.New(pLeft.Words())
	colour := 0
	for !pLeft.Empty() {
		colour++
		q.CopyFrom(pLeft)
		start := len(order)
		for !q.Empty() {
			v := q.FirstSetBit()
			pLeft.Unset(v)
			q.Unset(v)
			if inverse {
				g.IntersectWithRow(v, q)
			} else {
				g.IntersectWithRowComplement(v, q)
			}
			order = append(order, v)
			bounds = append(bounds, colour)
		}
		if len(order)-start == 1 {
			deferred = append(deferred, order[start])
			order = order[:start]
			bounds = bounds[:start]
			colour--
		}
	}
	for _, v := range deferred {
		colour++
		order = append(order, v)
		bounds = append(bounds, colour)
	}
	return order, bounds
}

// repairOrder implements RepairAll/RepairAllDefer1/RepairSelected/
// RepairSelectedDefer1: bucket-assign colour by colour, but when a vertex
// would need a new colour, first search earlier classes for one with
// exactly one conflicting member that can be relocated forwards into a
// later, still-conflict-free class. selective gates the repair attempt on
// having already opened at least delta classes; doDefer holds singleton
// classes back to the tail as in Defer1.
func repairOrder(g Adjacency, p bitset.FixedBitSet, delta int, selective, doDefer bool) ([]int, []int) {
	buf := scratch.Get()
	defer scratch.Put(buf)

	pLeft := p.Clone()
	for !pLeft.Empty() {
		v := pLeft.FirstSetBit()
		pLeft.Unset(v)

		coloured := false
		for c := 0; c < buf.ActiveClasses(); c++ {
			conflict := false
			for _, u := range buf.Members(c) {
				if g.Adjacent(v, u) {
					conflict = true
					break
				}
			}
			if !conflict {
				buf.Append(c, v)
				coloured = true
				break
			}
		}
		if coloured {
			continue
		}

		repaired := false
		if !selective || buf.ActiveClasses() >= delta {
			for c := 0; c < buf.ActiveClasses()-1 && !repaired; c++ {
				nConflicts := 0
				vertexToMove, vertexToMovePos := -1, -1
				for pos, u := range buf.Members(c) {
					if g.Adjacent(v, u) {
						vertexToMove, vertexToMovePos = u, pos
						nConflicts++
						if nConflicts > 1 {
							break
						}
					}
				}
				if nConflicts != 1 {
					continue
				}
				for nc := c + 1; nc < buf.ActiveClasses(); nc++ {
					conflict := false
					for _, u := range buf.Members(nc) {
						if g.Adjacent(vertexToMove, u) {
							conflict = true
							break
						}
					}
					if conflict {
						continue
					}
					buf.RemoveAt(c, vertexToMovePos)
					buf.Append(c, v)
					buf.Append(nc, vertexToMove)
					repaired = true
					break
				}
			}
		}

		if !repaired {
			nc := buf.NewClass()
			buf.Append(nc, v)
		}
	}

	order := make([]int, 0, p.Popcount())
	bounds := make([]int, 0, p.Popcount())
	colour := 0
	var deferred []int
	for c := 0; c < buf.ActiveClasses(); c++ {
		members := buf.Members(c)
		if doDefer && len(members) == 1 {
			deferred = append(deferred, members[0])
			continue
		}
		colour++
		for _, u := range members {
			order = append(order, u)
			bounds = append(bounds, colour)
		}
	}
	for _, v := range deferred {
		colour++
		order = append(order, v)
		bounds = append(bounds, colour)
	}
	return order, bounds
}

// repairFastOrder implements RepairSelectedFast/RepairAllFast: the
// in-place variant that splices directly into the p_order/p_bounds
// slices being built, without the auxiliary per-class buffers repairOrder
// uses.
func repairFastOrder(g Adjacency, p bitset.FixedBitSet, delta int, selective bool) ([]int, []int) {
	n := p.Popcount()
	order := make([]int, 0, n)
	bounds := make([]int, 0, n)

	pLeft := p.Clone()
	q := bitset.New(pLeft.Words())
	colour := 0
	for !pLeft.Empty() {
		if !selective || colour >= delta {
			if recolourInPlace(g, pLeft, &order, &bounds) {
				continue
			}
		}
		colour++
		q.CopyFrom(pLeft)
		for !q.Empty() {
			v := q.FirstSetBit()
			pLeft.Unset(v)
			q.Unset(v)
			g.IntersectWithRowComplement(v, q)
			order = append(order, v)
			bounds = append(bounds, colour)
		}
	}
	return order, bounds
}

type classRange struct {
	start, end, colour int
}

func classRanges(bounds []int) []classRange {
	var out []classRange
	n := len(bounds)
	for i := 0; i < n; {
		j := i + 1
		for j < n && bounds[j] == bounds[i] {
			j++
		}
		out = append(out, classRange{start: i, end: j, colour: bounds[i]})
		i = j
	}
	return out
}

func insertAt(s []int, at, v int) []int {
	s = append(s, 0)
	copy(s[at+1:], s[at:])
	s[at] = v
	return s
}

// recolourInPlace tries to seat pLeft's lowest-index vertex into an
// already-open colour class by relocating its single conflicting member
// forward into a later, still-conflict-free class. On success it mutates
// pLeft/order/bounds and returns true; on failure it leaves them
// untouched.
func recolourInPlace(g Adjacency, pLeft bitset.FixedBitSet, order, bounds *[]int) bool {
	v := pLeft.FirstSetBit()
	ords, bnds := *order, *bounds
	classes := classRanges(bnds)

	for ci, c := range classes {
		nConflicts := 0
		movePos := -1
		for pos := c.start; pos < c.end; pos++ {
			if g.Adjacent(v, ords[pos]) {
				nConflicts++
				movePos = pos
				if nConflicts > 1 {
					break
				}
			}
		}
		if nConflicts != 1 {
			continue
		}
		vertexToMove := ords[movePos]

		for _, nc := range classes[ci+1:] {
			conflict := false
			for pos := nc.start; pos < nc.end; pos++ {
				if g.Adjacent(vertexToMove, ords[pos]) {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}

			ords = append(ords[:movePos], ords[movePos+1:]...)
			bnds = append(bnds[:movePos], bnds[movePos+1:]...)

			ords = insertAt(ords, nc.end-1, vertexToMove)
			bnds = insertAt(bnds, nc.end-1, nc.colour)

			ords = insertAt(ords, c.end-1, v)
			bnds = insertAt(bnds, c.end-1, c.colour)

			pLeft.Unset(v)
			*order, *bounds = ords, bnds
			return true
		}
	}
	return false
}
