// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hilbertIndexOneDigit is a reference implementation processing a
// single 2-bit digit per step directly from the packed 4-bit table.
// The batched table transform must agree with it everywhere.
func hilbertIndexOneDigit(x, y uint32, m int) uint64 {
	z := MortonIndex(x, y)
	var h, i uint64
	for m = 2 * m; m != 0; {
		m -= 2
		i = (i & 0xc) | ((z >> uint(m)) & 3)
		i = (hilbertLUT1 >> (i * 4)) & 0xf
		h = (h << 2) | (i & 3)
	}
	return h
}

func TestExpandLUT(t *testing.T) {
	// Spot values of the expanded tables, from the reference tables of
	// the original Hamilton-derived implementation.
	expectedForward := []uint8{0x40, 0xc3, 0x01, 0x02, 0x04, 0x45, 0x87, 0x46}
	expectedInverse := []uint8{0x40, 0x02, 0x03, 0xc1, 0x04, 0x45, 0x47, 0x86}
	for i := range expectedForward {
		assert.Equal(t, expectedForward[i], hilbertLUT3[i], "forward entry %d", i)
		assert.Equal(t, expectedInverse[i], hilbertInverseLUT3[i], "inverse entry %d", i)
	}
	assert.Equal(t, uint8(0x80), hilbertLUT3[255])
	assert.Equal(t, uint8(0x15), hilbertInverseLUT3[255])
}

func TestHilbertIndex_KnownValues(t *testing.T) {
	testCases := []struct {
		x, y     uint32
		m        int
		expected uint64
	}{
		{0, 0, 1, 0},
		{0, 1, 1, 1},
		{1, 1, 1, 2},
		{1, 0, 1, 3},
		{0, 0, 0, 0},
	}

	for _, testCase := range testCases {
		t.Run(fmt.Sprintf("(%d,%d)m=%d", testCase.x, testCase.y, testCase.m), func(t *testing.T) {
			assert.Equal(t, testCase.expected, HilbertIndex(testCase.x, testCase.y, testCase.m))
		})
	}
}

func TestHilbertIndex_MatchesOneDigit(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for m := 0; m <= 32; m++ {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			mask := uint32(1)<<uint(m) - 1
			if m == 32 {
				mask = 0xffffffff
			}
			for i := 0; i < 200; i++ {
				x, y := rng.Uint32()&mask, rng.Uint32()&mask
				assert.Equal(t, hilbertIndexOneDigit(x, y, m), HilbertIndex(x, y, m))
			}
		})
	}
}

func TestHilbertIndex_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for m := 0; m <= 32; m++ {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			mask := uint32(1)<<uint(m) - 1
			if m == 32 {
				mask = 0xffffffff
			}
			for i := 0; i < 200; i++ {
				x, y := rng.Uint32()&mask, rng.Uint32()&mask
				h := HilbertIndex(x, y, m)
				if m < 32 {
					assert.Less(t, h, uint64(1)<<uint(2*m))
				}
				gotX, gotY := HilbertIndexInverse(h, m)
				require.Equal(t, x, gotX)
				require.Equal(t, y, gotY)
			}
		})
	}
}

func TestHilbertIndex_Bijective(t *testing.T) {
	for m := 1; m <= 5; m++ {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			side := uint32(1) << uint(m)
			seen := make([]bool, uint64(side)*uint64(side))
			for x := uint32(0); x < side; x++ {
				for y := uint32(0); y < side; y++ {
					h := HilbertIndex(x, y, m)
					require.Less(t, h, uint64(len(seen)))
					require.False(t, seen[h], "collision at (%d,%d)", x, y)
					seen[h] = true
				}
			}
		})
	}
}

func TestHilbertIndex_Locality(t *testing.T) {
	// Consecutive Hilbert indexes always map to 4-adjacent grid cells.
	const m = 6
	prevX, prevY := HilbertIndexInverse(0, m)
	for h := uint64(1); h < 1<<(2*m); h++ {
		x, y := HilbertIndexInverse(h, m)
		dx := int64(x) - int64(prevX)
		dy := int64(y) - int64(prevY)
		require.Equal(t, int64(1), dx*dx+dy*dy, "jump between h=%d and h=%d", h-1, h)
		prevX, prevY = x, y
	}
}

func TestMortonToHilbert_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for m := 0; m <= 32; m++ {
		var mask uint64 = 1<<uint(2*m) - 1
		if m == 32 {
			mask = 0xffffffffffffffff
		}
		for i := 0; i < 100; i++ {
			z := rng.Uint64() & mask
			assert.Equal(t, z, HilbertToMorton(MortonToHilbert(z, m), m))
		}
	}
}

func TestHilbertIndex_OrderOutOfRange(t *testing.T) {
	assert.Panics(t, func() { HilbertIndex(0, 0, -1) })
	assert.Panics(t, func() { HilbertIndex(0, 0, 33) })
	assert.Panics(t, func() { HilbertIndexInverse(0, 33) })
	assert.Panics(t, func() { MortonToHilbert(0, -1) })
	assert.Panics(t, func() { HilbertToMorton(0, 33) })
}
