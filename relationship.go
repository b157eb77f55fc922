// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

// Relationship is a bitmask classifying how one region A relates to
// another region B.
//
// Exactly one of the following combinations is produced by Relate:
// Disjoint, Contains, Within, Contains|Within (only when A and B cover
// the same points), or Intersects. Disjoint is never combined with
// Contains or Within, and Intersects is reported only when neither
// disjointness nor containment applies.
type Relationship uint8

const (
	// Disjoint means A and B have no points in common.
	Disjoint Relationship = 1 << iota
	// Intersects means A and B have common points, but neither
	// contains the other.
	Intersects
	// Contains means every point of B is a point of A.
	Contains
	// Within means every point of A is a point of B.
	Within
)

// Invert swaps the Contains and Within bits of r, leaving the others
// unchanged. For any two regions, Relate(A, B) == Invert(Relate(B, A)),
// which lets each unordered pair of region types share a single direct
// implementation.
func Invert(r Relationship) Relationship {
	inv := r &^ (Contains | Within)
	if r&Contains != 0 {
		inv |= Within
	}
	if r&Within != 0 {
		inv |= Contains
	}
	return inv
}
