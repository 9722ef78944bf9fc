package bitgraph

import "github.com/dendrolab/parasolve/pkg/bitset"

// SupportedWordCounts is the closed set of per-row word counts this build
// advertises (spec §4.1): every BitGraph is backed by rows of exactly one
// of these widths, chosen by Dispatch as the smallest that fits the input.
var SupportedWordCounts = []int{1, 2, 4, 8, 16, 32, 64}

// DispatchResult reports which word count Dispatch chose, or that the
// input exceeds every supported width.
type DispatchResult struct {
	W        int
	TooLarge bool
}

// Capacity returns the bit capacity of the chosen W, or 0 if TooLarge.
func (d DispatchResult) Capacity() int {
	if d.TooLarge {
		return 0
	}
	return d.W * bitset.WordBits
}

// Dispatch picks the smallest supported word count W such that
// n <= W*WordBits. If n exceeds the largest supported width, it reports
// TooLarge so callers can return the well-defined "too large" result
// (empty witness, zero nodes) named in spec §4.1 rather than overflow.
func Dispatch(n int) DispatchResult {
	for _, w := range SupportedWordCounts {
		if n <= w*bitset.WordBits {
			return DispatchResult{W: w}
		}
	}
	return DispatchResult{TooLarge: true}
}

// MaxSupportedVertices is the largest n accepted by Dispatch.
func MaxSupportedVertices() int {
	return SupportedWordCounts[len(SupportedWordCounts)-1] * bitset.WordBits
}
