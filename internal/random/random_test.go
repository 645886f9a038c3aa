package random

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollerSeededIsReproducible(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
	assert.Equal(t, a.Perm(6), b.Perm(6))
}

func TestRollerPermIsPermutation(t *testing.T) {
	r := New(nil)
	for n := 0; n <= 6; n++ {
		perm := r.Perm(n)
		sorted := make([]int, len(perm))
		copy(sorted, perm)
		sort.Ints(sorted)
		want := make([]int, n)
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, sorted)
	}
}

func TestRollerPermEmpty(t *testing.T) {
	r := New(&Config{Seed: 3})
	assert.Equal(t, []int{}, r.Perm(0))
	assert.Equal(t, []int{}, r.Perm(-1))
}

func TestRollerIntnBounds(t *testing.T) {
	r := New(&Config{Seed: 1})
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	for i := 0; i < 100; i++ {
		v := r.Intn(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
	}
}
