// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sphgeom

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
)

// ConvexHull returns the unique minimal convex polygon containing the
// given set of points. Though points are supplied in a slice, they are
// conceptually a set: the result is invariant under permutation of the
// input.
//
// ConvexHull fails with an error wrapping ErrDegenerateInput when no
// valid hull exists: fewer than 3 distinct directions, all points
// coplanar with the origin, or a hull that would span more than a
// hemisphere (which would violate the antipodal exclusion invariant).
// Runtime is O(n log n) in the number of points.
func ConvexHull(points []UnitVector3d) (*ConvexPolygon, error) {
	pts := dedupPoints(points)
	if len(pts) < 3 {
		return nil, degenerateErr("hull of %d distinct points", len(pts))
	}

	// The sweep pivot must be a hull vertex. Since pts is sorted, the
	// choice is deterministic and permutation-invariant; hull validity
	// is verified after the sweep rather than assumed.
	pi := hullPivot(pts)
	pivot := pts[pi]
	rest := make([]UnitVector3d, 0, len(pts)-1)
	rest = append(rest, pts[:pi]...)
	rest = append(rest, pts[pi+1:]...)

	// Angularly sort the remaining points around the pivot, projected
	// onto its tangent plane.
	u := pivot.Ortho()
	w := pivot.Cross(u)
	angles := make([]float64, len(rest))
	for i, v := range rest {
		angles[i] = math.Atan2(v.Dot(w), v.Dot(u))
	}
	order := make([]int, len(rest))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		ai, aj := angles[order[i]], angles[order[j]]
		if ai != aj {
			return ai < aj
		}
		// Points at the same tangent angle are coplanar with the
		// pivot; sweep the nearer one first so the farther survives.
		return rest[order[i]].Dot(pivot.Vector) > rest[order[j]].Dot(pivot.Vector)
	})

	// If the pivot is on the hull, the tangent angles of the other
	// points span at most a half turn. Start the sweep just past the
	// largest angular gap so the span does not straddle the atan2
	// discontinuity.
	start := 0
	maxGap := 2*math.Pi + angles[order[0]] - angles[order[len(order)-1]]
	for i := 1; i < len(order); i++ {
		if gap := angles[order[i]] - angles[order[i-1]]; gap > maxGap {
			maxGap = gap
			start = i
		}
	}

	// Gift-wrapping sweep: discard stack tops that fail the strict
	// left-turn test. Coplanar triples are discarded here too.
	hull := make([]UnitVector3d, 1, len(pts))
	hull[0] = pivot
	for i := 0; i < len(order); i++ {
		q := rest[order[(start+i)%len(order)]]
		for len(hull) >= 2 && Orientation(hull[len(hull)-2], hull[len(hull)-1], q) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, q)
	}
	// Close the loop back to the pivot.
	for len(hull) >= 3 && Orientation(hull[len(hull)-2], hull[len(hull)-1], hull[0]) <= 0 {
		hull = hull[:len(hull)-1]
	}
	if len(hull) < 3 {
		return nil, degenerateErr("all points coplanar with the origin")
	}

	p := &ConvexPolygon{vertices: hull}
	n := len(hull)
	for i := 0; i < n; i++ {
		if Orientation(hull[i], hull[(i+1)%n], hull[(i+2)%n]) != 1 {
			return nil, degenerateErr("hull is not strictly convex")
		}
	}
	for _, q := range pts {
		if !p.Contains(q) {
			return nil, degenerateErr("hull would span more than a hemisphere")
		}
	}
	return p, nil
}

// hullPivot returns the index of the point at maximal angular distance
// from the mean direction of the set. Any hull contained in an open
// hemisphere has that point as a vertex; in particular an extreme
// coordinate value is no guide, since the point with, say, the smallest
// x-coordinate can lie in the hull interior. A zero mean, or a pivot
// invalidated by a hull near a full hemisphere, surfaces as a
// post-sweep validation failure.
func hullPivot(pts []UnitVector3d) int {
	var m r3.Vector
	for _, v := range pts {
		m = m.Add(v.Vector)
	}
	if m.Norm2() == 0 {
		return 0
	}
	best := 0
	minDot := pts[0].Dot(m)
	for i := 1; i < len(pts); i++ {
		if d := pts[i].Dot(m); d < minDot {
			minDot = d
			best = i
		}
	}
	return best
}

// dedupPoints returns the distinct input points sorted
// lexicographically by (x, y, z).
func dedupPoints(points []UnitVector3d) []UnitVector3d {
	pts := make([]UnitVector3d, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		a, b := pts[i], pts[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	out := pts[:0]
	for i, v := range pts {
		if i == 0 || v != pts[i-1] {
			out = append(out, v)
		}
	}
	return out
}
