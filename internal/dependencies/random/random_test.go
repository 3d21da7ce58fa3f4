package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntnStaysInRange(t *testing.T) {
	r := New()

	for i := 0; i < 1000; i++ {
		n := r.Intn(26)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 26)
	}

	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-5))
}

func TestPermIsAPermutation(t *testing.T) {
	r := New()

	for i := 0; i < 100; i++ {
		perm := r.Perm(26)
		require.Len(t, perm, 26)

		seen := make(map[int]bool, 26)
		for _, p := range perm {
			assert.GreaterOrEqual(t, p, 0)
			assert.Less(t, p, 26)
			assert.False(t, seen[p], "value %d repeated", p)
			seen[p] = true
		}
	}
}

func TestPermVaries(t *testing.T) {
	r := New()

	// 26! orderings; two identical consecutive draws would indicate a
	// broken shuffle rather than bad luck
	first := r.Perm(26)
	for i := 0; i < 10; i++ {
		next := r.Perm(26)
		if !assert.ObjectsAreEqual(first, next) {
			return
		}
	}
	t.Fatal("Perm returned the same ordering 11 times")
}

func TestString(t *testing.T) {
	r := New()

	s := r.String(8, "AB")
	require.Len(t, s, 8)
	for _, c := range s {
		assert.Contains(t, "AB", string(c))
	}

	assert.Equal(t, "", r.String(0, "AB"))
	assert.Equal(t, "", r.String(5, ""))
}
