package graphgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErdosRenyiDeterministicGivenSeed(t *testing.T) {
	a := ErdosRenyi(12, 0.4, 42)
	b := ErdosRenyi(12, 0.4, 42)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			assert.Equal(t, a.HasEdge(i, j), b.HasEdge(i, j))
		}
	}
}

func TestErdosRenyiProbabilityExtremes(t *testing.T) {
	empty := ErdosRenyi(8, 0, 1)
	for i := 0; i < 8; i++ {
		assert.Equal(t, 0, empty.Degree(i))
	}

	complete := ErdosRenyi(8, 1, 1)
	for i := 0; i < 8; i++ {
		assert.Equal(t, 7, complete.Degree(i))
	}
}

func TestErdosRenyiDifferentSeedsCanDiffer(t *testing.T) {
	a := ErdosRenyi(20, 0.5, 1)
	b := ErdosRenyi(20, 0.5, 2)
	same := true
	for i := 0; i < 20 && same; i++ {
		for j := 0; j < 20; j++ {
			if a.HasEdge(i, j) != b.HasEdge(i, j) {
				same = false
				break
			}
		}
	}
	assert.False(t, same, "two different seeds produced an identical graph")
}
