package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupCounts(t *testing.T) {
	tests := []struct {
		n     int
		wantX uint32
		wantY uint32
	}{
		{1, 1, 1},
		{63, 1, 1},
		{64, 1, 1},
		{65, 2, 1},
		{4096, 64, 1},
		{65535, 1024, 1},  // largest single-row dispatch
		{65536, 1024, 2},  // first wrap into y
		{70000, 1024, 2},  // spec scenario exceeding one row
		{131070, 1024, 2}, // exactly two full rows
		{131071, 1024, 3},
	}

	for _, tt := range tests {
		gotX, gotY := groupCounts(tt.n)
		assert.Equal(t, tt.wantX, gotX, "n=%d groupsX", tt.n)
		assert.Equal(t, tt.wantY, gotY, "n=%d groupsY", tt.n)
	}
}

func TestGroupCountsCoverage(t *testing.T) {
	for _, n := range []int{1, 64, 65, 65535, 65536, 70000, 200000} {
		gx, gy := groupCounts(n)
		// Each y row contributes at most maxColumns usable columns.
		usablePerRow := int(gx) * workgroupSize
		if usablePerRow > maxColumns {
			usablePerRow = maxColumns
		}
		assert.GreaterOrEqual(t, usablePerRow*int(gy), n, "n=%d", n)
	}
}

// TestGridWritesEachIndexExactlyOnce simulates the kernel's indexing over the
// dispatched grid: every invocation computes idx = y*65535 + x, discards
// columns >= 65535 and indices >= n, and "writes" its slot. Every index in
// [0, n) must be written exactly once and nothing outside it at all.
func TestGridWritesEachIndexExactlyOnce(t *testing.T) {
	for _, n := range []int{1, 63, 64, 65, 65534, 65535, 65536, 70000, 131071} {
		gx, gy := groupCounts(n)
		writes := make([]uint8, n)

		for y := 0; y < int(gy); y++ {
			for x := 0; x < int(gx)*workgroupSize; x++ {
				if x >= maxColumns {
					continue // column guard
				}
				idx := y*maxColumns + x
				if idx >= n {
					continue // bounds guard
				}
				writes[idx]++
			}
		}

		for idx, count := range writes {
			if count != 1 {
				t.Fatalf("n=%d: index %d written %d times", n, idx, count)
			}
		}
	}
}

// TestGridBoundary checks the edges of the bounds guard: the invocation for
// FlatIndex n-1 writes, the one for FlatIndex n does not.
func TestGridBoundary(t *testing.T) {
	n := 70000
	gx, gy := groupCounts(n)

	covered := func(idx int) bool {
		y := idx / maxColumns
		x := idx % maxColumns
		return y < int(gy) && x < int(gx)*workgroupSize && idx < n
	}

	assert.True(t, covered(n-1))
	assert.False(t, covered(n))
}
