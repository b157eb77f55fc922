// Copyright 2026 The sphgeom (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rangeset provides sets of uint64 values stored as sorted
// lists of disjoint ranges. Such sets hold the space-filling-curve
// index ranges produced by spatial region queries.
package rangeset

import (
	"fmt"
	"strings"
)

// RangeSet is a set of uint64 values.
//
// Ranges reported by the API are closed: [Lo, Hi] with Lo ≤ Hi. Range
// insertion and lookup additionally accept a modular half-open form
// (first, last): if first < last it denotes [first, last); if
// first > last it wraps through the top of the uint64 domain; and
// (n, n) denotes the entire domain.
//
// The zero value is an empty set ready for use.
type RangeSet struct {
	// ranges holds inclusive [lo, hi] bound pairs, flattened, sorted,
	// disjoint and non-adjacent.
	ranges []uint64
}

const maxUint64 = 1<<64 - 1

// New returns an empty set.
func New() *RangeSet {
	return &RangeSet{}
}

// FromValue returns the set containing only v.
func FromValue(v uint64) *RangeSet {
	return &RangeSet{ranges: []uint64{v, v}}
}

// FromRange returns the set of integers in the modular half-open range
// (first, last).
func FromRange(first, last uint64) *RangeSet {
	s := New()
	s.InsertRange(first, last)
	return s
}

// Full returns the set containing every uint64.
func Full() *RangeSet {
	return &RangeSet{ranges: []uint64{0, maxUint64}}
}

// Clone returns an independent copy of s.
func (s *RangeSet) Clone() *RangeSet {
	c := &RangeSet{ranges: make([]uint64, len(s.ranges))}
	copy(c.ranges, s.ranges)
	return c
}

func (s *RangeSet) IsEmpty() bool {
	return len(s.ranges) == 0
}

func (s *RangeSet) IsFull() bool {
	return len(s.ranges) == 2 && s.ranges[0] == 0 && s.ranges[1] == maxUint64
}

// Size returns the number of disjoint ranges in s.
func (s *RangeSet) Size() int {
	return len(s.ranges) / 2
}

// Cardinality returns the number of integers in s, saturating at
// the maximum uint64 value when the set is full.
func (s *RangeSet) Cardinality() uint64 {
	var n uint64
	for i := 0; i < len(s.ranges); i += 2 {
		c := s.ranges[i+1] - s.ranges[i] + 1
		if c == 0 || n+c < n {
			// A single full-domain range, or an overflowing sum.
			return maxUint64
		}
		n += c
	}
	return n
}

// Range is a closed range of uint64 values.
type Range struct {
	Lo, Hi uint64
}

// Ranges returns the disjoint closed ranges of s in increasing order.
func (s *RangeSet) Ranges() []Range {
	out := make([]Range, 0, len(s.ranges)/2)
	for i := 0; i < len(s.ranges); i += 2 {
		out = append(out, Range{Lo: s.ranges[i], Hi: s.ranges[i+1]})
	}
	return out
}

// Equal reports whether s and o contain the same integers.
func (s *RangeSet) Equal(o *RangeSet) bool {
	if len(s.ranges) != len(o.ranges) {
		return false
	}
	for i, v := range s.ranges {
		if v != o.ranges[i] {
			return false
		}
	}
	return true
}

// Insert adds the single value v to s.
func (s *RangeSet) Insert(v uint64) {
	s.insertClosed(v, v)
}

// InsertRange adds the modular half-open range (first, last) to s.
func (s *RangeSet) InsertRange(first, last uint64) {
	lo, hi, lo2, hi2, wrapped := splitModular(first, last)
	s.insertClosed(lo, hi)
	if wrapped {
		s.insertClosed(lo2, hi2)
	}
}

// Erase removes the single value v from s.
func (s *RangeSet) Erase(v uint64) {
	s.eraseClosed(v, v)
}

// EraseRange removes the modular half-open range (first, last) from s.
func (s *RangeSet) EraseRange(first, last uint64) {
	lo, hi, lo2, hi2, wrapped := splitModular(first, last)
	s.eraseClosed(lo, hi)
	if wrapped {
		s.eraseClosed(lo2, hi2)
	}
}

// splitModular converts a modular half-open range into one or two
// closed ranges. The second range is valid only if wrapped is true.
func splitModular(first, last uint64) (lo, hi, lo2, hi2 uint64, wrapped bool) {
	if first == last {
		return 0, maxUint64, 0, 0, false
	}
	if first < last {
		return first, last - 1, 0, 0, false
	}
	if last == 0 {
		return first, maxUint64, 0, 0, false
	}
	return first, maxUint64, 0, last - 1, true
}

func (s *RangeSet) insertClosed(lo, hi uint64) {
	merged := make([]uint64, 0, len(s.ranges)+2)
	i := 0
	// Ranges entirely below [lo, hi] with a gap of at least one value.
	for ; i < len(s.ranges) && s.ranges[i+1] < lo && lo-s.ranges[i+1] > 1; i += 2 {
		merged = append(merged, s.ranges[i], s.ranges[i+1])
	}
	// Absorb every range overlapping or adjacent to [lo, hi].
	for ; i < len(s.ranges); i += 2 {
		rlo, rhi := s.ranges[i], s.ranges[i+1]
		if rlo > hi && rlo-hi > 1 {
			break
		}
		if rlo < lo {
			lo = rlo
		}
		if rhi > hi {
			hi = rhi
		}
	}
	merged = append(merged, lo, hi)
	merged = append(merged, s.ranges[i:]...)
	s.ranges = merged
}

func (s *RangeSet) eraseClosed(lo, hi uint64) {
	out := make([]uint64, 0, len(s.ranges)+2)
	for i := 0; i < len(s.ranges); i += 2 {
		rlo, rhi := s.ranges[i], s.ranges[i+1]
		if rhi < lo || rlo > hi {
			out = append(out, rlo, rhi)
			continue
		}
		if rlo < lo {
			out = append(out, rlo, lo-1)
		}
		if rhi > hi {
			out = append(out, hi+1, rhi)
		}
	}
	s.ranges = out
}

// Complement replaces s with its complement.
func (s *RangeSet) Complement() {
	if len(s.ranges) == 0 {
		s.ranges = []uint64{0, maxUint64}
		return
	}
	out := make([]uint64, 0, len(s.ranges)+2)
	if s.ranges[0] > 0 {
		out = append(out, 0, s.ranges[0]-1)
	}
	for i := 1; i+1 < len(s.ranges); i += 2 {
		out = append(out, s.ranges[i]+1, s.ranges[i+1]-1)
	}
	if last := s.ranges[len(s.ranges)-1]; last < maxUint64 {
		out = append(out, last+1, maxUint64)
	}
	s.ranges = out
}

// Complemented returns the complement of s as a new set.
func (s *RangeSet) Complemented() *RangeSet {
	c := s.Clone()
	c.Complement()
	return c
}

// Union returns the set of integers in s or o.
func (s *RangeSet) Union(o *RangeSet) *RangeSet {
	u := s.Clone()
	for i := 0; i < len(o.ranges); i += 2 {
		u.insertClosed(o.ranges[i], o.ranges[i+1])
	}
	return u
}

// Intersection returns the set of integers in both s and o.
func (s *RangeSet) Intersection(o *RangeSet) *RangeSet {
	out := New()
	i, j := 0, 0
	for i < len(s.ranges) && j < len(o.ranges) {
		lo := s.ranges[i]
		if o.ranges[j] > lo {
			lo = o.ranges[j]
		}
		hi := s.ranges[i+1]
		if o.ranges[j+1] < hi {
			hi = o.ranges[j+1]
		}
		if lo <= hi {
			out.ranges = append(out.ranges, lo, hi)
		}
		if s.ranges[i+1] < o.ranges[j+1] {
			i += 2
		} else {
			j += 2
		}
	}
	return out
}

// Difference returns the set of integers in s but not in o.
func (s *RangeSet) Difference(o *RangeSet) *RangeSet {
	return s.Intersection(o.Complemented())
}

// ContainsValue reports whether s contains v.
func (s *RangeSet) ContainsValue(v uint64) bool {
	i := 0
	for ; i < len(s.ranges); i += 2 {
		if v < s.ranges[i] {
			return false
		}
		if v <= s.ranges[i+1] {
			return true
		}
	}
	return false
}

// ContainsRange reports whether s contains every integer of the
// modular half-open range (first, last).
func (s *RangeSet) ContainsRange(first, last uint64) bool {
	lo, hi, lo2, hi2, wrapped := splitModular(first, last)
	if !s.containsClosed(lo, hi) {
		return false
	}
	return !wrapped || s.containsClosed(lo2, hi2)
}

// ContainsSet reports whether s contains every integer of o.
func (s *RangeSet) ContainsSet(o *RangeSet) bool {
	for i := 0; i < len(o.ranges); i += 2 {
		if !s.containsClosed(o.ranges[i], o.ranges[i+1]) {
			return false
		}
	}
	return true
}

func (s *RangeSet) containsClosed(lo, hi uint64) bool {
	for i := 0; i < len(s.ranges); i += 2 {
		if lo < s.ranges[i] {
			return false
		}
		if lo <= s.ranges[i+1] {
			return hi <= s.ranges[i+1]
		}
	}
	return false
}

// IntersectsRange reports whether s contains any integer of the
// modular half-open range (first, last).
func (s *RangeSet) IntersectsRange(first, last uint64) bool {
	lo, hi, lo2, hi2, wrapped := splitModular(first, last)
	if s.intersectsClosed(lo, hi) {
		return true
	}
	return wrapped && s.intersectsClosed(lo2, hi2)
}

// IntersectsSet reports whether s and o have any integer in common.
func (s *RangeSet) IntersectsSet(o *RangeSet) bool {
	i, j := 0, 0
	for i < len(s.ranges) && j < len(o.ranges) {
		if s.ranges[i+1] < o.ranges[j] {
			i += 2
		} else if o.ranges[j+1] < s.ranges[i] {
			j += 2
		} else {
			return true
		}
	}
	return false
}

func (s *RangeSet) intersectsClosed(lo, hi uint64) bool {
	for i := 0; i < len(s.ranges); i += 2 {
		if s.ranges[i] > hi {
			return false
		}
		if s.ranges[i+1] >= lo {
			return true
		}
	}
	return false
}

// IsWithinSet reports whether every integer of s is contained in o.
func (s *RangeSet) IsWithinSet(o *RangeSet) bool {
	return o.ContainsSet(s)
}

// IsWithinRange reports whether every integer of s is contained in the
// modular half-open range (first, last).
func (s *RangeSet) IsWithinRange(first, last uint64) bool {
	return FromRange(first, last).ContainsSet(s)
}

// IsDisjointFromSet reports whether s and o have no integer in common.
func (s *RangeSet) IsDisjointFromSet(o *RangeSet) bool {
	return !s.IntersectsSet(o)
}

// IsDisjointFromRange reports whether s contains no integer of the
// modular half-open range (first, last).
func (s *RangeSet) IsDisjointFromRange(first, last uint64) bool {
	return !s.IntersectsRange(first, last)
}

// String returns the ranges of s in interval notation, single-value
// ranges as bare integers.
func (s *RangeSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < len(s.ranges); i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}
		if s.ranges[i] == s.ranges[i+1] {
			fmt.Fprintf(&b, "%d", s.ranges[i])
		} else {
			fmt.Fprintf(&b, "[%d, %d]", s.ranges[i], s.ranges[i+1])
		}
	}
	b.WriteByte('}')
	return b.String()
}

// Simplified returns a copy of s with all range bounds rounded outward
// to multiples of 2^n, coarsening the set for cheaper downstream range
// scans. n of 64 or more yields the full set unless s is empty.
func (s *RangeSet) Simplified(n uint32) *RangeSet {
	if n == 0 || s.IsEmpty() {
		return s.Clone()
	}
	if n >= 64 {
		return Full()
	}
	mask := uint64(1)<<n - 1
	out := New()
	for i := 0; i < len(s.ranges); i += 2 {
		out.insertClosed(s.ranges[i]&^mask, s.ranges[i+1]|mask)
	}
	return out
}
