package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUnsetTestRoundTrip(t *testing.T) {
	b := New(2) // 128 bits
	model := map[int]bool{}

	ops := []int{0, 1, 63, 64, 65, 127, 17, 17, 63}
	for i, idx := range ops {
		if i%2 == 0 {
			b.Set(idx)
			model[idx] = true
		} else {
			b.Unset(idx)
			model[idx] = false
		}
	}

	for i := 0; i < b.Capacity(); i++ {
		want := model[i]
		assert.Equalf(t, want, b.Test(i), "bit %d", i)
	}
}

func TestPopcountMatchesDistinctSetIndices(t *testing.T) {
	b := New(4)
	indices := []int{0, 5, 63, 64, 200, 255}
	for _, i := range indices {
		b.Set(i)
	}
	assert.Equal(t, len(indices), b.Popcount())
}

func TestFirstSetBitIsMinimum(t *testing.T) {
	b := New(3)
	assert.Equal(t, -1, b.FirstSetBit())

	b.Set(150)
	b.Set(10)
	b.Set(189)
	assert.Equal(t, 10, b.FirstSetBit())
}

func TestSetUpTo(t *testing.T) {
	b := New(2)
	b.Set(100)
	b.SetUpTo(70)

	for i := 0; i < 70; i++ {
		require.Truef(t, b.Test(i), "bit %d should be set", i)
	}
	for i := 70; i < b.Capacity(); i++ {
		require.Falsef(t, b.Test(i), "bit %d should be clear", i)
	}
}

func TestIntersectWithRowSemantics(t *testing.T) {
	a := New(1)
	for _, i := range []int{1, 2, 3, 4} {
		a.Set(i)
	}
	row := New(1)
	for _, i := range []int{2, 3, 10} {
		row.Set(i)
	}

	got := a.Clone()
	got.IntersectWith(row)

	for i := 0; i < got.Capacity(); i++ {
		want := a.Test(i) && row.Test(i)
		assert.Equal(t, want, got.Test(i))
	}
}

func TestIntersectWithComplementIsExactComplement(t *testing.T) {
	a := New(1)
	a.SetUpTo(40)
	row := New(1)
	for _, i := range []int{1, 5, 39} {
		row.Set(i)
	}

	got := a.Clone()
	got.IntersectWithComplement(row)

	for i := 0; i < got.Capacity(); i++ {
		want := a.Test(i) && !row.Test(i)
		assert.Equal(t, want, got.Test(i))
	}
}

func TestEmptyAndUnsetAll(t *testing.T) {
	b := New(2)
	assert.True(t, b.Empty())
	b.Set(90)
	assert.False(t, b.Empty())
	b.UnsetAll()
	assert.True(t, b.Empty())
}

func TestCloneIsIndependent(t *testing.T) {
	a := New(1)
	a.Set(3)
	c := a.Clone()
	c.Set(4)
	assert.False(t, a.Test(4))
	assert.True(t, c.Test(4))
}

func TestForEachSetBitAscendingAndComplete(t *testing.T) {
	a := New(2)
	want := []int{1, 64, 90, 127}
	for _, i := range want {
		a.Set(i)
	}
	var got []int
	a.ForEachSetBit(func(i int) { got = append(got, i) })
	assert.Equal(t, want, got)
}

func TestSubsetOf(t *testing.T) {
	small := New(1)
	small.Set(3)
	small.Set(5)
	big := New(1)
	big.SetUpTo(10)

	assert.True(t, small.SubsetOf(big))
	big.Unset(3)
	assert.False(t, small.SubsetOf(big))
}
