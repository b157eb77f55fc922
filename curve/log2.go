// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package curve

// The log2 functions find the index of the most significant 1 bit via
// a multiply-and-shift perfect hash, as presented in:
//
//	Using de Bruijn Sequences to Index a 1 in a Computer Word.
//	C. E. Leiserson, H. Prokop, and K. H. Randall.
//	http://supertech.csail.mit.edu/papers/debruijn.pdf
//
// The input is first spread into a trailing run of ones and reduced to
// the isolated most significant bit, so that multiplying by the de
// Bruijn sequence left-shifts it by the bit index; the top bits of the
// product are then distinct for every index and recover it through a
// small table. Branch-free, O(1).

const (
	deBruijn64 uint64 = 0x0218a392cd3d5dbf
	deBruijn32 uint32 = 0x07c4acdd
)

var perfectHash64 = [64]uint8{
	0, 1, 2, 7, 3, 13, 8, 19, 4, 25, 14, 28, 9, 34, 20, 40,
	5, 17, 26, 38, 15, 46, 29, 48, 10, 31, 35, 54, 21, 50, 41, 57,
	63, 6, 12, 18, 24, 27, 33, 39, 16, 37, 45, 47, 30, 53, 49, 56,
	62, 11, 23, 32, 36, 44, 52, 55, 61, 22, 43, 51, 60, 42, 59, 58,
}

var perfectHash32 = [32]uint8{
	0, 9, 1, 10, 13, 21, 2, 29, 11, 14, 16, 18, 22, 25, 3, 30,
	8, 12, 20, 28, 15, 17, 24, 7, 19, 27, 23, 6, 26, 5, 4, 31,
}

// Log2 returns the index of the most significant 1 bit in x. If x is
// 0, the return value is 0.
func Log2(x uint64) uint8 {
	// Set all bits below the MSB, then subtract them away.
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	x -= x >> 1
	return perfectHash64[(deBruijn64*x)>>58]
}

// Log2Uint32 returns the index of the most significant 1 bit in x. If
// x is 0, the return value is 0.
//
// Unlike Log2, the 32-bit hash table is keyed directly on the trailing
// run of ones; see
// https://graphics.stanford.edu/~seander/bithacks.html#IntegerLogDeBruijn
func Log2Uint32(x uint32) uint8 {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return perfectHash32[(deBruijn32*x)>>27]
}
