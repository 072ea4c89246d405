package lav

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestApproxEqualSlicesMatchesScalar(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))
	lanes := MaxLanes[float64]()
	for _, n := range []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2, 257} {
		a := randomBits64(r, n)
		b := make([]float64, n)
		for i := range b {
			if r.IntN(2) == 0 {
				b[i] = a[i]
			} else {
				b[i] = math.Nextafter(a[i], math.Inf(1))
			}
		}

		want := make([]bool, n)
		count := 0
		for i := range a {
			want[i] = ApproxEqual64(a[i], b[i], 0, 1)
			if want[i] {
				count++
			}
		}

		got := make([]bool, n)
		ApproxEqualSlices(got, a, b, 0, 1)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ApproxEqualSlices n=%d mismatch (-want +got):\n%s", n, diff)
		}
		assert.Equal(t, count, CountApproxEqual(a, b, 0, 1), "n=%d", n)
		assert.Equal(t, count == n, AllApproxEqualSlices(a, b, 0, 1), "n=%d", n)
	}
}

func TestApproxEqualSlicesFloat32Tail(t *testing.T) {
	lanes := MaxLanes[float32]()
	n := 2*lanes + 3
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(i) + 0.5
		b[i] = a[i]
	}
	// Break the last element so only the tail differs.
	b[n-1] = a[n-1] + 1

	assert.False(t, AllApproxEqualSlices(a, b, 0, 0))
	assert.True(t, AllApproxEqualSlices(a, b, 1, 0))
	assert.Equal(t, n-1, CountApproxEqual(a, b, 0, 4))

	got := make([]bool, n)
	ApproxEqualSlices(got, a, b, 0, 4)
	assert.False(t, got[n-1])
	assert.True(t, got[0])
}

func TestApproxEqualSlicesPanics(t *testing.T) {
	assert.Panics(t, func() {
		ApproxEqualSlices(make([]bool, 3), []float64{1, 2, 3}, []float64{1, 2}, 0, 0)
	})
	assert.Panics(t, func() {
		ApproxEqualSlices(make([]bool, 1), []float64{1, 2}, []float64{1, 2}, 0, 0)
	})
	assert.Panics(t, func() {
		CountApproxEqual([]float32{1}, []float32{}, 0, 0)
	})
	assert.False(t, AllApproxEqualSlices([]float64{1}, []float64{1, 2}, 1, 1))
}

func TestProcessWithTail(t *testing.T) {
	lanes := MaxLanes[float64]()
	size := 2*lanes + 1

	var full []int
	tailOffset, tailCount := -1, -1
	ProcessWithTail[float64](size,
		func(offset int) { full = append(full, offset) },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)

	assert.Equal(t, []int{0, lanes}, full)
	assert.Equal(t, 2*lanes, tailOffset)
	assert.Equal(t, 1, tailCount)
	assert.Equal(t, 3*lanes, AlignedSize[float64](size))
	assert.Equal(t, 2*lanes, AlignedSize[float64](2*lanes))
}
