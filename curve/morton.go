// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package curve

// MortonIndex interleaves the bits of x and y: bit k of x becomes bit
// 2k of the result and bit k of y becomes bit 2k+1. This is the
// z-value of (x, y) defined by the Morton (Z-order) curve.
func MortonIndex(x, y uint32) uint64 {
	a := uint64(x)
	b := uint64(y)
	a = (a | (a << 16)) & 0x0000ffff0000ffff
	b = (b | (b << 16)) & 0x0000ffff0000ffff
	a = (a | (a << 8)) & 0x00ff00ff00ff00ff
	b = (b | (b << 8)) & 0x00ff00ff00ff00ff
	a = (a | (a << 4)) & 0x0f0f0f0f0f0f0f0f
	b = (b | (b << 4)) & 0x0f0f0f0f0f0f0f0f
	a = (a | (a << 2)) & 0x3333333333333333
	b = (b | (b << 2)) & 0x3333333333333333
	a = (a | (a << 1)) & 0x5555555555555555
	b = (b | (b << 1)) & 0x5555555555555555
	return a | (b << 1)
}

// MortonIndexInverse separates the even and odd bits of z, returning
// the 32 even bits as x and the 32 odd bits as y. It is the exact
// inverse of MortonIndex over the full 64-bit domain.
func MortonIndexInverse(z uint64) (x, y uint32) {
	a := z & 0x5555555555555555
	b := (z >> 1) & 0x5555555555555555
	a = (a | (a >> 1)) & 0x3333333333333333
	b = (b | (b >> 1)) & 0x3333333333333333
	a = (a | (a >> 2)) & 0x0f0f0f0f0f0f0f0f
	b = (b | (b >> 2)) & 0x0f0f0f0f0f0f0f0f
	a = (a | (a >> 4)) & 0x00ff00ff00ff00ff
	b = (b | (b >> 4)) & 0x00ff00ff00ff00ff
	a = (a | (a >> 8)) & 0x0000ffff0000ffff
	b = (b | (b >> 8)) & 0x0000ffff0000ffff
	return uint32(a | (a >> 16)), uint32(b | (b >> 16))
}
